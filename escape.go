package esregex

import (
	"strings"
	"unicode"
	"unicode/utf16"
)

// consumeAtomEscape matches what follows a backslash outside a class.
func (v *Validator) consumeAtomEscape() (bool, error) {
	if ok, err := v.consumeBackreference(); ok || err != nil {
		return ok, err
	}
	if ok, err := v.consumeCharacterClassEscape(); ok || err != nil {
		return ok, err
	}
	if _, ok, err := v.consumeCharacterEscape(); ok || err != nil {
		return ok, err
	}
	if v.named {
		if ok, err := v.consumeKGroupName(); ok || err != nil {
			return ok, err
		}
	}
	if v.strictMode() {
		return false, v.raise(ErrInvalidEscape)
	}
	return false, nil
}

// consumeBackreference matches \N. With Annex B a number above the group
// count is not a backreference; the caller then reads it as an octal or
// identity escape.
func (v *Validator) consumeBackreference() (bool, error) {
	start := v.r.index()
	if c := v.r.current(); c < '1' || c > '9' {
		return false, nil
	}
	n, _ := v.eatDecimalDigits()
	if n <= v.numCapturingParens {
		return true, nil
	}
	if v.strictMode() {
		return false, v.raise(ErrInvalidEscape)
	}
	v.r.rewind(start)
	return false, nil
}

func (v *Validator) consumeCharacterClassEscape() (bool, error) {
	switch v.r.current() {
	case 'd', 'D', 's', 'S', 'w', 'W':
		v.r.advance()
		return true, nil
	case 'p', 'P':
		if !v.unicode || v.edition < ES2018 {
			return false, nil
		}
		v.r.advance()
		if v.r.eat('{') {
			ok, err := v.eatUnicodePropertyValueExpression()
			if err != nil {
				return false, err
			}
			if ok && v.r.eat('}') {
				return true, nil
			}
		}
		return false, v.raise(ErrInvalidPropertyName)
	}
	return false, nil
}

func (v *Validator) eatUnicodePropertyValueExpression() (bool, error) {
	start := v.r.index()
	if name, ok := v.eatWhile(isPropertyNameCharacter); ok && v.r.eat('=') {
		if value, ok := v.eatWhile(isPropertyValueCharacter); ok {
			if v.props.IsValidProperty(v.edition, name, value) {
				return true, nil
			}
			return false, v.raise(ErrInvalidPropertyName)
		}
	}
	v.r.rewind(start)

	value, ok := v.eatWhile(isPropertyValueCharacter)
	if !ok {
		return false, nil
	}
	if v.props.IsValidProperty(v.edition, "General_Category", value) ||
		v.props.IsValidLoneProperty(v.edition, value) {
		return true, nil
	}
	return false, v.raise(ErrInvalidPropertyName)
}

func (v *Validator) eatWhile(accept func(rune) bool) (string, bool) {
	start := v.r.index()
	for accept(v.r.current()) {
		v.r.advance()
	}
	if v.r.index() == start {
		return "", false
	}
	return v.r.stringInRange(start, v.r.index()), true
}

// consumeCharacterEscape matches an escape standing for one character and
// returns its value.
func (v *Validator) consumeCharacterEscape() (rune, bool, error) {
	if c, ok := v.eatControlEscape(); ok {
		return c, true, nil
	}
	if c, ok := v.eatCControlLetter(); ok {
		return c, true, nil
	}
	if v.eatZero() {
		return 0, true, nil
	}
	if c, ok, err := v.eatHexEscapeSequence(); ok || err != nil {
		return c, ok, err
	}
	if c, ok, err := v.eatUnicodeEscapeSequence(false); ok || err != nil {
		return c, ok, err
	}
	if !v.strictMode() {
		if c, ok := v.eatLegacyOctalEscapeSequence(); ok {
			return c, true, nil
		}
	}
	if c, ok := v.eatIdentityEscape(); ok {
		return c, true, nil
	}
	return 0, false, nil
}

func (v *Validator) eatControlEscape() (rune, bool) {
	var c rune
	switch v.r.current() {
	case 'f':
		c = '\f'
	case 'n':
		c = '\n'
	case 'r':
		c = '\r'
	case 't':
		c = '\t'
	case 'v':
		c = '\v'
	default:
		return 0, false
	}
	v.r.advance()
	return c, true
}

func (v *Validator) eatCControlLetter() (rune, bool) {
	if v.r.current() != 'c' || !isLatinLetter(v.r.peek(1)) {
		return 0, false
	}
	v.r.advance()
	c := v.r.current()
	v.r.advance()
	return c % 0x20, true
}

func (v *Validator) eatZero() bool {
	if v.r.current() == '0' && !isDecimalDigit(v.r.peek(1)) {
		v.r.advance()
		return true
	}
	return false
}

func (v *Validator) eatHexEscapeSequence() (rune, bool, error) {
	start := v.r.index()
	if !v.r.eat('x') {
		return 0, false, nil
	}
	if c, ok := v.eatFixedHexDigits(2); ok {
		return c, true, nil
	}
	if v.strictMode() {
		return 0, false, v.raise(ErrInvalidEscape)
	}
	v.r.rewind(start)
	return 0, false, nil
}

// eatUnicodeEscapeSequence matches the part of a \u escape after the
// backslash. force enables the u mode forms, surrogate pair escapes and
// \u{...}, outside of u mode.
func (v *Validator) eatUnicodeEscapeSequence(force bool) (rune, bool, error) {
	start := v.r.index()
	if !v.r.eat('u') {
		return 0, false, nil
	}
	unicodeMode := force || v.unicode
	if unicodeMode {
		if c, ok := v.eatUnicodeSurrogatePairEscape(); ok {
			return c, true, nil
		}
	}
	if c, ok := v.eatFixedHexDigits(4); ok {
		return c, true, nil
	}
	if unicodeMode {
		if c, ok := v.eatUnicodeCodePointEscape(); ok {
			return c, true, nil
		}
	}
	if v.strictMode() || unicodeMode {
		return 0, false, v.raise(ErrInvalidUnicodeEscape)
	}
	v.r.rewind(start)
	return 0, false, nil
}

func (v *Validator) eatUnicodeSurrogatePairEscape() (rune, bool) {
	start := v.r.index()
	lead, ok := v.eatFixedHexDigits(4)
	if !ok {
		return 0, false
	}
	if isHighSurrogate(lead) && v.r.eat2('\\', 'u') {
		if trail, ok := v.eatFixedHexDigits(4); ok && isLowSurrogate(trail) {
			return utf16.DecodeRune(lead, trail), true
		}
	}
	v.r.rewind(start)
	return 0, false
}

func (v *Validator) eatUnicodeCodePointEscape() (rune, bool) {
	start := v.r.index()
	if v.r.eat('{') {
		if c, ok := v.eatHexDigits(); ok && v.r.eat('}') && c <= unicode.MaxRune {
			return c, true
		}
	}
	v.r.rewind(start)
	return 0, false
}

func (v *Validator) eatLegacyOctalEscapeSequence() (rune, bool) {
	n1, ok := v.eatOctalDigit()
	if !ok {
		return 0, false
	}
	n2, ok := v.eatOctalDigit()
	if !ok {
		return n1, true
	}
	if n1 <= 3 {
		if n3, ok := v.eatOctalDigit(); ok {
			return n1*64 + n2*8 + n3, true
		}
	}
	return n1*8 + n2, true
}

func (v *Validator) eatOctalDigit() (rune, bool) {
	c := v.r.current()
	if !isOctalDigit(c) {
		return 0, false
	}
	v.r.advance()
	return c - '0', true
}

func (v *Validator) eatIdentityEscape() (rune, bool) {
	c := v.r.current()
	if !v.isValidIdentityEscape(c) {
		return 0, false
	}
	v.r.advance()
	return c, true
}

func (v *Validator) isValidIdentityEscape(c rune) bool {
	switch {
	case c == eof:
		return false
	case v.unicode:
		return isSyntaxCharacter(c) || c == '/'
	case v.strict:
		return !v.ids.IsIDContinue(c)
	case v.named:
		return c != 'c' && c != 'k'
	default:
		return c != 'c'
	}
}

func (v *Validator) eatFixedHexDigits(n int) (rune, bool) {
	start := v.r.index()
	var res rune
	for i := 0; i < n; i++ {
		c := v.r.current()
		if !isHexDigit(c) {
			v.r.rewind(start)
			return 0, false
		}
		res = res<<4 | parseHexDigit(c)
		v.r.advance()
	}
	return res, true
}

// eatHexDigits saturates just above unicode.MaxRune.
func (v *Validator) eatHexDigits() (rune, bool) {
	start := v.r.index()
	var res rune
	for c := v.r.current(); isHexDigit(c); c = v.r.current() {
		res = min(res<<4|parseHexDigit(c), unicode.MaxRune+1)
		v.r.advance()
	}
	return res, v.r.index() != start
}

func (v *Validator) consumeKGroupName() (bool, error) {
	if !v.r.eat('k') {
		return false, nil
	}
	name, ok, err := v.eatGroupName()
	if err != nil {
		return false, err
	}
	if !ok {
		return false, v.raise(ErrInvalidNamedReference)
	}
	v.backreferenceNames[name] = struct{}{}
	return true, nil
}

// eatGroupName matches <name>. A malformed name after '<' is an error.
func (v *Validator) eatGroupName() (string, bool, error) {
	if !v.r.eat('<') {
		return "", false, nil
	}
	name, ok, err := v.eatIdentifierName()
	if err != nil {
		return "", false, err
	}
	if !ok || !v.r.eat('>') {
		return "", false, v.raise(ErrInvalidGroupName)
	}
	return name, true, nil
}

func (v *Validator) eatIdentifierName() (string, bool, error) {
	c, ok, err := v.eatIdentifierChar(v.isIdentifierStart)
	if !ok || err != nil {
		return "", false, err
	}
	var name strings.Builder
	name.WriteRune(c)
	for {
		c, ok, err := v.eatIdentifierChar(v.isIdentifierPart)
		if err != nil {
			return "", false, err
		}
		if !ok {
			return name.String(), true, nil
		}
		name.WriteRune(c)
	}
}

// eatIdentifierChar reads one identifier character, which may be spelled as
// a \u escape. From ES2020 names may hold astral characters written as a
// surrogate pair or a \u{...} escape even outside of u mode.
func (v *Validator) eatIdentifierChar(accept func(rune) bool) (rune, bool, error) {
	start := v.r.index()
	forceUnicode := !v.unicode && v.edition >= ES2020
	c := v.r.current()
	if c == eof {
		return 0, false, nil
	}
	v.r.advance()
	if c == '\\' {
		escaped, ok, err := v.eatUnicodeEscapeSequence(forceUnicode)
		if err != nil {
			return 0, false, err
		}
		if ok {
			c = escaped
		}
	} else if forceUnicode && isHighSurrogate(c) && isLowSurrogate(v.r.current()) {
		c = utf16.DecodeRune(c, v.r.current())
		v.r.advance()
	}
	if accept(c) {
		return c, true, nil
	}
	if v.r.index() != start {
		v.r.rewind(start)
	}
	return 0, false, nil
}

func (v *Validator) isIdentifierStart(c rune) bool {
	return c == '$' || c == '_' || v.ids.IsIDStart(c)
}

func (v *Validator) isIdentifierPart(c rune) bool {
	return c == '$' || c == '_' || c == 0x200c || c == 0x200d || v.ids.IsIDContinue(c)
}
