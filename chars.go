package esregex

func lowerASCII(c rune) rune {
	return c | ('a' - 'A')
}

func isDecimalDigit(c rune) bool {
	return uint32(c)-'0' <= 9
}

func isOctalDigit(c rune) bool {
	return uint32(c)-'0' <= 7
}

func isHexDigit(c rune) bool {
	return isDecimalDigit(c) || (uint32(lowerASCII(c))-'a' <= 'f'-'a')
}

func isLatinLetter(c rune) bool {
	return uint32(lowerASCII(c))-'a' <= 'z'-'a'
}

// parseHexDigit expects c to satisfy isHexDigit.
func parseHexDigit(c rune) rune {
	return (c & 0b1111) + (c>>6)*9
}

func isSyntaxCharacter(c rune) bool {
	switch c {
	case '^', '$', '\\', '.', '*', '+', '?', '(', ')', '[', ']', '{', '}', '|':
		return true
	}
	return false
}

func isLineTerminator(c rune) bool {
	return c == '\n' || c == '\r' || c == 0x2028 || c == 0x2029
}

func isPropertyNameCharacter(c rune) bool {
	return isLatinLetter(c) || c == '_'
}

func isPropertyValueCharacter(c rune) bool {
	return isPropertyNameCharacter(c) || isDecimalDigit(c)
}
