package esregex

// classEscapeSet is the value of a class atom that stands for a set of
// characters, such as \d or \p{L}, and so cannot bound a range.
const classEscapeSet rune = -1

func (v *Validator) consumeAtom() (bool, error) {
	if v.consumePatternCharacter() || v.consumeDot() {
		return true, nil
	}
	if ok, err := v.consumeReverseSolidusAtomEscape(); ok || err != nil {
		return ok, err
	}
	if ok, err := v.consumeCharacterClass(); ok || err != nil {
		return ok, err
	}
	if ok, err := v.consumeUncapturingGroup(); ok || err != nil {
		return ok, err
	}
	return v.consumeCapturingGroup()
}

// consumeExtendedAtom is the Annex B counterpart of consumeAtom.
func (v *Validator) consumeExtendedAtom() (bool, error) {
	if v.consumeDot() {
		return true, nil
	}
	if ok, err := v.consumeReverseSolidusAtomEscape(); ok || err != nil {
		return ok, err
	}
	if v.consumeReverseSolidusFollowedByC() {
		return true, nil
	}
	if ok, err := v.consumeCharacterClass(); ok || err != nil {
		return ok, err
	}
	if ok, err := v.consumeUncapturingGroup(); ok || err != nil {
		return ok, err
	}
	if ok, err := v.consumeCapturingGroup(); ok || err != nil {
		return ok, err
	}
	if err := v.consumeInvalidBracedQuantifier(); err != nil {
		return false, err
	}
	return v.consumeExtendedPatternCharacter(), nil
}

func (v *Validator) consumePatternCharacter() bool {
	cp := v.r.current()
	if cp == eof || isSyntaxCharacter(cp) {
		return false
	}
	v.r.advance()
	return true
}

func (v *Validator) consumeExtendedPatternCharacter() bool {
	switch cp := v.r.current(); cp {
	case eof, '^', '$', '\\', '.', '*', '+', '?', '(', ')', '[', '|':
		return false
	}
	v.r.advance()
	return true
}

func (v *Validator) consumeDot() bool {
	return v.r.eat('.')
}

func (v *Validator) consumeReverseSolidusAtomEscape() (bool, error) {
	start := v.r.index()
	if !v.r.eat('\\') {
		return false, nil
	}
	ok, err := v.consumeAtomEscape()
	if ok || err != nil {
		return ok, err
	}
	v.r.rewind(start)
	return false, nil
}

// consumeReverseSolidusFollowedByC matches the backslash of a \c that does
// not start a control escape. The backslash is a literal character then.
func (v *Validator) consumeReverseSolidusFollowedByC() bool {
	if v.r.current() == '\\' && v.r.peek(1) == 'c' {
		v.r.advance()
		return true
	}
	return false
}

func (v *Validator) consumeInvalidBracedQuantifier() error {
	ok, err := v.eatBracedQuantifier(true)
	if err != nil {
		return err
	}
	if ok {
		return v.raise(ErrNothingToRepeat)
	}
	return nil
}

func (v *Validator) consumeUncapturingGroup() (bool, error) {
	if !v.r.eat3('(', '?', ':') {
		return false, nil
	}
	if err := v.consumeDisjunction(); err != nil {
		return false, err
	}
	if !v.r.eat(')') {
		return false, v.raise(ErrUnterminatedGroup)
	}
	return true, nil
}

func (v *Validator) consumeCapturingGroup() (bool, error) {
	if !v.r.eat('(') {
		return false, nil
	}
	if v.edition >= ES2018 {
		if err := v.consumeGroupSpecifier(); err != nil {
			return false, err
		}
	} else if v.r.current() == '?' {
		return false, v.raise(ErrInvalidGroup)
	}
	if err := v.consumeDisjunction(); err != nil {
		return false, err
	}
	if !v.r.eat(')') {
		return false, v.raise(ErrUnterminatedGroup)
	}
	return true, nil
}

func (v *Validator) consumeGroupSpecifier() error {
	if !v.r.eat('?') {
		return nil
	}
	name, ok, err := v.eatGroupName()
	if err != nil {
		return err
	}
	if !ok {
		return v.raise(ErrInvalidGroup)
	}
	if _, dup := v.groupNames[name]; dup {
		return v.raise(ErrDuplicateGroupName)
	}
	v.groupNames[name] = struct{}{}
	return nil
}

func (v *Validator) consumeCharacterClass() (bool, error) {
	if !v.r.eat('[') {
		return false, nil
	}
	v.r.eat('^')
	if err := v.consumeClassRanges(); err != nil {
		return false, err
	}
	if !v.r.eat(']') {
		return false, v.raise(ErrUnterminatedCharacterClass)
	}
	return true, nil
}

func (v *Validator) consumeClassRanges() error {
	for {
		lo, ok, err := v.consumeClassAtom()
		if !ok || err != nil {
			return err
		}
		if !v.r.eat('-') {
			continue
		}
		hi, ok, err := v.consumeClassAtom()
		if !ok || err != nil {
			return err
		}
		if lo == classEscapeSet || hi == classEscapeSet {
			if v.strictMode() {
				return v.raise(ErrInvalidCharacterClass)
			}
			continue
		}
		if lo > hi {
			return v.raise(ErrRangeOutOfOrder)
		}
	}
}

func (v *Validator) consumeClassAtom() (rune, bool, error) {
	start := v.r.index()
	cp := v.r.current()
	if cp != eof && cp != '\\' && cp != ']' {
		v.r.advance()
		return cp, true, nil
	}
	if !v.r.eat('\\') {
		return 0, false, nil
	}
	if c, ok, err := v.consumeClassEscape(); ok || err != nil {
		return c, ok, err
	}
	if !v.strictMode() && v.r.current() == 'c' {
		return '\\', true, nil
	}
	if v.strictMode() {
		return 0, false, v.raise(ErrInvalidEscape)
	}
	v.r.rewind(start)
	return 0, false, nil
}

func (v *Validator) consumeClassEscape() (rune, bool, error) {
	if v.r.eat('b') {
		return '\b', true, nil
	}
	if v.unicode && v.r.eat('-') {
		return '-', true, nil
	}
	if !v.strictMode() && v.r.current() == 'c' {
		if c := v.r.peek(1); isDecimalDigit(c) || c == '_' {
			v.r.advance()
			v.r.advance()
			return c % 0x20, true, nil
		}
	}
	if ok, err := v.consumeCharacterClassEscape(); ok || err != nil {
		return classEscapeSet, ok, err
	}
	return v.consumeCharacterEscape()
}
