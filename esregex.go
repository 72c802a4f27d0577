// Package esregex validates ECMAScript regular expression patterns and flags
// against a selectable edition of the language, from ES5 to ES2021.
//
// Patterns are only checked, never compiled. A Validator accepts exactly the
// inputs the RegExp grammar of its edition accepts, including the Annex B
// web compatibility syntax unless Strict is given, and rejects everything
// else with a SyntaxError or a FlagError describing the first problem.
package esregex

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Edition is an ECMAScript language edition. Editions are ordered, a grammar
// feature introduced in some edition is available in every later one.
type Edition int

const (
	ES5    Edition = 5
	ES2015 Edition = 2015
	ES2016 Edition = 2016
	ES2017 Edition = 2017
	ES2018 Edition = 2018
	ES2019 Edition = 2019
	ES2020 Edition = 2020
	ES2021 Edition = 2021

	// Latest is the newest supported edition.
	Latest = ES2021
)

func (e Edition) String() string {
	if e == ES5 || (e >= ES2015 && e <= Latest) {
		return "ES" + strconv.Itoa(int(e))
	}
	return "Edition(" + strconv.Itoa(int(e)) + ")"
}

// ParseEdition parses edition names as they appear in configuration files:
// "es5", "ES2018", "2018", "es6" (an alias of ES2015) or "latest".
func ParseEdition(s string) (Edition, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "latest" {
		return Latest, nil
	}
	n, err := strconv.Atoi(strings.TrimPrefix(name, "es"))
	if err != nil {
		return 0, fmt.Errorf("esregex: invalid edition %q", s)
	}
	if n >= 6 && n < int(ES2015) {
		n += int(ES2015) - 6
	}
	e := Edition(n)
	if e != ES5 && (e < ES2015 || e > Latest) {
		return 0, fmt.Errorf("esregex: unsupported edition %q", s)
	}
	return e, nil
}

// Option configures a Validator.
type Option func(*Validator)

// Strict disables the Annex B additions, as if the pattern were parsed by
// an implementation without web compatibility syntax.
func Strict() Option {
	return func(v *Validator) {
		v.strict = true
	}
}

// WithProperties replaces the table consulted for \p{...} escapes.
func WithProperties(p PropertyTable) Option {
	return func(v *Validator) {
		if p != nil {
			v.props = p
		}
	}
}

// WithIdentifiers replaces the classifier used for capture group names.
func WithIdentifiers(c IdentifierClassifier) Option {
	return func(v *Validator) {
		if c != nil {
			v.ids = c
		}
	}
}

// Validator checks patterns against one edition. It may be reused for any
// number of patterns but is not safe for concurrent use; give each goroutine
// its own Validator.
type Validator struct {
	edition Edition
	strict  bool
	props   PropertyTable
	ids     IdentifierClassifier

	r     reader
	start int

	// unicode is set in u mode, named once \k<name> is a named backreference.
	unicode bool
	named   bool

	numCapturingParens int
	groupNames         map[string]struct{}
	backreferenceNames map[string]struct{}
}

// New returns a Validator for edition.
func New(edition Edition, opts ...Option) *Validator {
	v := &Validator{
		edition:            edition,
		props:              DefaultProperties,
		ids:                DefaultIdentifiers,
		groupNames:         map[string]struct{}{},
		backreferenceNames: map[string]struct{}{},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Edition returns the edition v validates against.
func (v *Validator) Edition() Edition {
	return v.edition
}

// ValidatePattern checks the body of a regular expression, the text between
// the slashes of a literal or the first argument of the RegExp constructor.
// unicode reports whether the u flag is present.
func (v *Validator) ValidatePattern(source string, unicode bool) error {
	return v.ValidatePatternUtf16(utf16.Encode([]rune(source)), unicode)
}

// ValidatePatternUtf16 is like ValidatePattern but takes the pattern as
// UTF-16 code units, which may hold unpaired surrogates.
func (v *Validator) ValidatePatternUtf16(source []uint16, unicode bool) error {
	return v.validatePattern(source, 0, len(source), unicode)
}

// Validate checks flags and then source, validating source in u mode when
// flags contain u.
func (v *Validator) Validate(source, flags string) error {
	f, err := v.ParseFlags(flags)
	if err != nil {
		return err
	}
	return v.ValidatePattern(source, f&FlagUnicode != 0)
}

func (v *Validator) strictMode() bool {
	return v.strict || v.unicode
}

func (v *Validator) newSyntaxError(kind ErrorKind, char rune) SyntaxError {
	return SyntaxError{
		Kind:    kind,
		Pattern: v.r.stringInRange(v.start, v.r.end),
		Unicode: v.unicode,
		Index:   v.r.index(),
		Char:    char,
	}
}

func (v *Validator) raise(kind ErrorKind) error {
	return v.newSyntaxError(kind, 0)
}
