package esregex

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"gotest.tools/v3/assert"
)

func TestParseEdition(t *testing.T) {
	for _, tc := range []struct {
		in      string
		out     Edition
		wantErr string
	}{
		{in: "es5", out: ES5},
		{in: "ES5", out: ES5},
		{in: "5", out: ES5},
		{in: "es6", out: ES2015},
		{in: "es9", out: ES2018},
		{in: "es11", out: ES2020},
		{in: "es12", out: ES2021},
		{in: "ES2018", out: ES2018},
		{in: "2019", out: ES2019},
		{in: " es2017 ", out: ES2017},
		{in: "latest", out: Latest},
		{in: "Latest", out: Latest},
		{in: "es4", wantErr: `esregex: unsupported edition "es4"`},
		{in: "es13", wantErr: `esregex: unsupported edition "es13"`},
		{in: "es2022", wantErr: `esregex: unsupported edition "es2022"`},
		{in: "2014", wantErr: `esregex: unsupported edition "2014"`},
		{in: "", wantErr: `esregex: invalid edition ""`},
		{in: "esnext", wantErr: `esregex: invalid edition "esnext"`},
	} {
		t.Run(tc.in, func(t *testing.T) {
			e, err := ParseEdition(tc.in)
			if tc.wantErr != "" {
				assert.Error(t, err, tc.wantErr)
				return
			}
			assert.NilError(t, err)
			assert.Equal(t, e, tc.out)
		})
	}
}

func TestEditionString(t *testing.T) {
	assert.Equal(t, ES5.String(), "ES5")
	assert.Equal(t, ES2015.String(), "ES2015")
	assert.Equal(t, Latest.String(), "ES2021")
	assert.Equal(t, Edition(2010).String(), "Edition(2010)")
	assert.Equal(t, Edition(2022).String(), "Edition(2022)")
	assert.Equal(t, New(ES2019).Edition(), ES2019)
}

func syntaxError(t *testing.T, err error) SyntaxError {
	t.Helper()
	var se SyntaxError
	assert.Assert(t, errors.As(err, &se), "unexpected error %v", err)
	return se
}

func TestSyntaxErrorDetails(t *testing.T) {
	v := New(ES2018)

	se := syntaxError(t, v.ValidatePattern("[z-a]", false))
	assert.DeepEqual(t, se, SyntaxError{Kind: ErrRangeOutOfOrder, Pattern: "[z-a]", Index: 4})

	se = syntaxError(t, v.ValidatePattern("a)", false))
	assert.DeepEqual(t, se, SyntaxError{Kind: ErrUnmatchedParen, Pattern: "a)", Index: 1})
	assert.Error(t, se, "invalid regular expression: /a)/: unmatched ')'")

	se = syntaxError(t, v.ValidatePattern("[a", false))
	assert.Equal(t, se.Kind, ErrUnterminatedCharacterClass)
	assert.Equal(t, se.Index, 2)

	se = syntaxError(t, v.ValidatePattern("x{2,1}", false))
	assert.Equal(t, se.Kind, ErrQuantifierOutOfOrder)
	assert.Equal(t, se.Index, 6)

	se = syntaxError(t, v.ValidatePattern("(?<a>x)(?<a>y)", false))
	assert.Equal(t, se.Kind, ErrDuplicateGroupName)
	assert.Equal(t, se.Index, 12)

	se = syntaxError(t, v.ValidatePattern("(", true))
	assert.DeepEqual(t, se, SyntaxError{Kind: ErrUnterminatedGroup, Pattern: "(", Unicode: true},
		cmpopts.IgnoreFields(SyntaxError{}, "Index"))
	assert.Error(t, se, "invalid regular expression: /(/u: unterminated group")

	// Indices count UTF-16 code units.
	se = syntaxError(t, v.ValidatePattern("😀)", true))
	assert.Equal(t, se.Index, 2)
	assert.Equal(t, se.Pattern, "😀)")

	// The u flag is only reported where it changes the grammar.
	se = syntaxError(t, New(ES5).ValidatePattern("(", true))
	assert.Equal(t, se.Unicode, false)
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, ErrNothingToRepeat.String(), "nothing to repeat")
	assert.Equal(t, ErrTrailingBackslash.String(), `\ at end of pattern`)
	assert.Equal(t, ErrorKind(0).String(), "ErrorKind(0)")
	assert.Equal(t, ErrorKind(200).String(), "ErrorKind(200)")

	err := SyntaxError{Kind: ErrUnexpectedCharacter, Pattern: "abc", Char: 'a'}
	assert.Error(t, err, "invalid regular expression: /abc/: unexpected character 'a'")
}

func TestValidate(t *testing.T) {
	v := New(ES2018)
	assert.NilError(t, v.Validate("a", ""))
	assert.NilError(t, v.Validate("a", "gimsuy"))
	assert.NilError(t, v.Validate(`\u{1F600}`, "u"))
	assert.NilError(t, v.Validate(`\1`, "g"))
	assert.Equal(t, syntaxError(t, v.Validate(`\1`, "gu")).Kind, ErrInvalidEscape)
	assert.DeepEqual(t, v.Validate("a", "gg"), FlagError{Kind: FlagDuplicated, Flag: 'g'})
	// Flags are checked before the pattern.
	assert.DeepEqual(t, v.Validate("(", "x"), FlagError{Kind: FlagInvalid, Flag: 'x'})
}

func TestValidatorReuse(t *testing.T) {
	v := New(ES2018)
	for i := 0; i < 3; i++ {
		assert.NilError(t, v.ValidatePattern(`(?<a>x)\k<a>`, false))
		// Group names of the previous pattern are forgotten.
		assert.NilError(t, v.ValidatePattern(`\k<a>`, false))
		assert.Equal(t, syntaxError(t, v.ValidatePattern(`\k<a>`, true)).Kind, ErrUnknownNamedReference)
		assert.NilError(t, v.ValidatePattern(`(a)\1`, true))
		assert.Equal(t, syntaxError(t, v.ValidatePattern(`\1`, true)).Kind, ErrInvalidEscape)
		assert.NilError(t, v.ValidatePattern(`\a`, false))
	}
}

type fakeProperties struct {
	editions []Edition
}

func (p *fakeProperties) IsValidProperty(edition Edition, name, value string) bool {
	p.editions = append(p.editions, edition)
	return name == "Foo" && value == "Bar"
}

func (p *fakeProperties) IsValidLoneProperty(edition Edition, name string) bool {
	p.editions = append(p.editions, edition)
	return name == "Foo"
}

// asciiIdentifiers indexes a table, so it must only see code points.
type asciiIdentifiers struct{}

var asciiIDContinue = func() (t [128]bool) {
	for c := 'a'; c <= 'z'; c++ {
		t[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = true
	}
	return t
}()

func (asciiIdentifiers) IsIDStart(r rune) bool {
	return r < 128 && asciiIDContinue[r] && (r < '0' || r > '9')
}

func (asciiIdentifiers) IsIDContinue(r rune) bool {
	return r < 128 && asciiIDContinue[r]
}

type lowercaseIdentifiers struct{}

func (lowercaseIdentifiers) IsIDStart(r rune) bool    { return r >= 'a' && r <= 'z' }
func (lowercaseIdentifiers) IsIDContinue(r rune) bool { return r >= 'a' && r <= 'z' }

func TestOptions(t *testing.T) {
	t.Run("properties", func(t *testing.T) {
		props := &fakeProperties{}
		v := New(ES2019, WithProperties(props))
		assert.NilError(t, v.ValidatePattern(`\p{Foo}`, true))
		assert.NilError(t, v.ValidatePattern(`\P{Foo=Bar}`, true))
		assert.Equal(t, syntaxError(t, v.ValidatePattern(`\p{L}`, true)).Kind, ErrInvalidPropertyName)
		assert.Assert(t, len(props.editions) > 0)
		for _, e := range props.editions {
			assert.Equal(t, e, ES2019)
		}
	})

	t.Run("nil properties", func(t *testing.T) {
		v := New(ES2018, WithProperties(nil))
		assert.NilError(t, v.ValidatePattern(`\p{L}`, true))
	})

	t.Run("identifiers", func(t *testing.T) {
		v := New(ES2018, WithIdentifiers(lowercaseIdentifiers{}))
		assert.NilError(t, v.ValidatePattern(`(?<abc>x)\k<abc>`, true))
		assert.NilError(t, v.ValidatePattern(`(?<$_>x)`, true))
		assert.Equal(t, syntaxError(t, v.ValidatePattern(`(?<A>x)`, true)).Kind, ErrInvalidGroupName)
		assert.Equal(t, syntaxError(t, v.ValidatePattern(`(?<π>x)`, false)).Kind, ErrInvalidGroupName)
	})

	t.Run("strict identity escapes", func(t *testing.T) {
		v := New(ES2018, Strict(), WithIdentifiers(lowercaseIdentifiers{}))
		assert.NilError(t, v.ValidatePattern(`\A`, false))
		assert.Equal(t, syntaxError(t, v.ValidatePattern(`\a`, false)).Kind, ErrInvalidEscape)
	})

	t.Run("identifiers at end of input", func(t *testing.T) {
		for _, unicode := range []bool{false, true} {
			v := New(ES2020, WithIdentifiers(asciiIdentifiers{}))
			assert.NilError(t, v.ValidatePattern(`(?<a1>x)\k<a1>`, unicode))
			for _, p := range []string{`(?<`, `(?<a`, `(?<a>x)\k<`, `(?<a>x)\k<a`} {
				assert.Equal(t, syntaxError(t, v.ValidatePattern(p, unicode)).Kind, ErrInvalidGroupName, p)
			}
		}
	})

	t.Run("nil identifiers", func(t *testing.T) {
		v := New(ES2018, WithIdentifiers(nil))
		assert.NilError(t, v.ValidatePattern(`(?<π>x)`, false))
	})
}
