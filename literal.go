package esregex

import "unicode/utf16"

// ValidateLiteral checks a complete regular expression literal such as
// /ab+c/gi: the body, the flags, and the body again under the grammar the
// flags select.
func (v *Validator) ValidateLiteral(literal string) error {
	return v.ValidateLiteralUtf16(utf16.Encode([]rune(literal)))
}

// ValidateLiteralUtf16 is like ValidateLiteral but takes the literal as
// UTF-16 code units.
func (v *Validator) ValidateLiteralUtf16(literal []uint16) error {
	v.unicode, v.named = false, false
	v.start = 0
	v.r.reset(literal, 0, len(literal), false)
	if v.r.eat('/') {
		ok, err := v.eatRegExpBody()
		if err != nil {
			return err
		}
		if ok && v.r.eat('/') {
			flagStart := v.r.index()
			flags, err := v.ParseFlags(v.r.stringInRange(flagStart, len(literal)))
			if err != nil {
				return err
			}
			return v.validatePattern(literal, 1, flagStart-1, flags&FlagUnicode != 0)
		}
	}
	if len(literal) == 0 {
		return v.raise(ErrEmptyLiteral)
	}
	return v.newSyntaxError(ErrUnexpectedCharacter, v.r.current())
}

// eatRegExpBody scans up to the slash that closes the body. It only tracks
// escapes and classes, the grammar is checked later.
func (v *Validator) eatRegExpBody() (bool, error) {
	start := v.r.index()
	inClass, escaped := false, false
	for {
		cp := v.r.current()
		if cp == eof || isLineTerminator(cp) {
			if inClass {
				return false, v.raise(ErrUnterminatedCharacterClass)
			}
			return false, v.raise(ErrUnterminatedLiteral)
		}
		switch {
		case escaped:
			escaped = false
		case cp == '\\':
			escaped = true
		case cp == '[':
			inClass = true
		case cp == ']':
			inClass = false
		case cp == '/' && !inClass, cp == '*' && v.r.index() == start:
			return v.r.index() != start, nil
		}
		v.r.advance()
	}
}
