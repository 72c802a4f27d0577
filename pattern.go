package esregex

import "math"

func (v *Validator) validatePattern(src []uint16, start, end int, unicode bool) error {
	v.unicode = unicode && v.edition >= ES2015
	// Without Annex B there is no identity escape \k to fall back to, so
	// named backreferences are always on.
	v.named = (unicode || v.strict) && v.edition >= ES2018
	v.start = start
	v.r.reset(src, start, end, v.unicode)
	if err := v.consumePattern(); err != nil {
		return err
	}
	// Whether \k<name> is a backreference depends on the whole pattern
	// containing a named group, so a pattern that declares one is parsed
	// again with named backreferences enabled.
	if !v.named && v.edition >= ES2018 && len(v.groupNames) > 0 {
		v.named = true
		v.r.rewind(start)
		return v.consumePattern()
	}
	return nil
}

func (v *Validator) consumePattern() error {
	v.numCapturingParens = v.countCapturingParens()
	clear(v.groupNames)
	clear(v.backreferenceNames)

	if err := v.consumeDisjunction(); err != nil {
		return err
	}
	switch cp := v.r.current(); cp {
	case eof:
	case ')':
		return v.raise(ErrUnmatchedParen)
	case '\\':
		return v.raise(ErrTrailingBackslash)
	case ']', '}':
		return v.raise(ErrLoneQuantifierBrackets)
	default:
		return v.newSyntaxError(ErrUnexpectedCharacter, cp)
	}
	for name := range v.backreferenceNames {
		if _, ok := v.groupNames[name]; !ok {
			return v.raise(ErrUnknownNamedReference)
		}
	}
	return nil
}

// countCapturingParens scans the rest of the pattern without moving the
// cursor. Decimal backreferences are checked against its result, so it
// must know about groups that appear after the reference.
func (v *Validator) countCapturingParens() int {
	start := v.r.index()
	inClass, escaped := false, false
	count := 0
	for cp := v.r.current(); cp != eof; cp = v.r.current() {
		switch {
		case escaped:
			escaped = false
		case cp == '\\':
			escaped = true
		case cp == '[':
			inClass = true
		case cp == ']':
			inClass = false
		case cp == '(' && !inClass:
			if v.r.peek(1) != '?' ||
				(v.r.peek(2) == '<' && v.r.peek(3) != '=' && v.r.peek(3) != '!') {
				count++
			}
		}
		v.r.advance()
	}
	v.r.rewind(start)
	return count
}

func (v *Validator) consumeDisjunction() error {
	for {
		if err := v.consumeAlternative(); err != nil {
			return err
		}
		if !v.r.eat('|') {
			break
		}
	}
	ok, err := v.consumeQuantifier(true)
	if err != nil {
		return err
	}
	if ok {
		return v.raise(ErrNothingToRepeat)
	}
	if v.r.eat('{') {
		return v.raise(ErrLoneQuantifierBrackets)
	}
	return nil
}

func (v *Validator) consumeAlternative() error {
	for v.r.current() != eof {
		ok, err := v.consumeTerm()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return nil
}

func (v *Validator) consumeTerm() (bool, error) {
	if v.strictMode() {
		ok, _, err := v.consumeAssertion()
		if ok || err != nil {
			return ok, err
		}
		ok, err = v.consumeAtom()
		if !ok || err != nil {
			return false, err
		}
		return true, v.consumeOptionalQuantifier()
	}

	ok, quantifiable, err := v.consumeAssertion()
	if err != nil {
		return false, err
	}
	if ok {
		if quantifiable {
			return true, v.consumeOptionalQuantifier()
		}
		return true, nil
	}
	ok, err = v.consumeExtendedAtom()
	if !ok || err != nil {
		return false, err
	}
	return true, v.consumeOptionalQuantifier()
}

func (v *Validator) consumeOptionalQuantifier() error {
	_, err := v.consumeQuantifier(false)
	return err
}

// consumeAssertion also reports whether the assertion may carry a
// quantifier, which Annex B allows for lookaheads only.
func (v *Validator) consumeAssertion() (ok, quantifiable bool, err error) {
	start := v.r.index()
	if v.r.eat('^') || v.r.eat('$') || v.r.eat2('\\', 'B') || v.r.eat2('\\', 'b') {
		return true, false, nil
	}
	if v.r.eat2('(', '?') {
		lookbehind := v.edition >= ES2018 && v.r.eat('<')
		if v.r.eat('=') || v.r.eat('!') {
			if err := v.consumeDisjunction(); err != nil {
				return false, false, err
			}
			if !v.r.eat(')') {
				return false, false, v.raise(ErrUnterminatedGroup)
			}
			return true, !lookbehind && !v.strictMode(), nil
		}
		v.r.rewind(start)
	}
	return false, false, nil
}

// consumeQuantifier with noConsume set only probes for a quantifier and
// never fails on a malformed braced one.
func (v *Validator) consumeQuantifier(noConsume bool) (bool, error) {
	if !v.r.eat('*') && !v.r.eat('+') && !v.r.eat('?') {
		ok, err := v.eatBracedQuantifier(noConsume)
		if !ok || err != nil {
			return false, err
		}
	}
	v.r.eat('?') // lazy
	return true, nil
}

func (v *Validator) eatBracedQuantifier(noError bool) (bool, error) {
	start := v.r.index()
	if !v.r.eat('{') {
		return false, nil
	}
	if lo, ok := v.eatDecimalDigits(); ok {
		hi := lo
		if v.r.eat(',') {
			hi = math.MaxInt
			if n, ok := v.eatDecimalDigits(); ok {
				hi = n
			}
		}
		if v.r.eat('}') {
			if !noError && hi < lo {
				return false, v.raise(ErrQuantifierOutOfOrder)
			}
			return true, nil
		}
	}
	if !noError && v.strictMode() {
		return false, v.raise(ErrIncompleteQuantifier)
	}
	v.r.rewind(start)
	return false, nil
}

// eatDecimalDigits saturates at math.MaxInt.
func (v *Validator) eatDecimalDigits() (int, bool) {
	start := v.r.index()
	n := 0
	for c := v.r.current(); isDecimalDigit(c); c = v.r.current() {
		d := int(c - '0')
		if n > (math.MaxInt-d)/10 {
			n = math.MaxInt
		} else {
			n = n*10 + d
		}
		v.r.advance()
	}
	return n, v.r.index() != start
}
