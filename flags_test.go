package esregex

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestParseFlags(t *testing.T) {
	v := New(ES2018)

	f, err := v.ParseFlags("gimsuy")
	assert.NilError(t, err)
	assert.Equal(t, f, FlagGlobal|FlagIgnoreCase|FlagMultiline|FlagDotAll|FlagUnicode|FlagSticky)

	f, err = v.ParseFlags("yug")
	assert.NilError(t, err)
	assert.Equal(t, f, FlagGlobal|FlagUnicode|FlagSticky)

	f, err = v.ParseFlags("")
	assert.NilError(t, err)
	assert.Equal(t, f, Flag(0))
}

func TestValidateFlags(t *testing.T) {
	v := New(ES2018)
	for _, flags := range []string{"", "gimuys", "gimuy", "gim", "g", "i", "m", "s", "u", "y"} {
		assert.NilError(t, v.ValidateFlags(flags), flags)
	}

	for _, tc := range []struct {
		flags string
		err   FlagError
	}{
		{"gimgu", FlagError{Kind: FlagDuplicated, Flag: 'g'}},
		{"migg", FlagError{Kind: FlagDuplicated, Flag: 'g'}},
		{"igi", FlagError{Kind: FlagDuplicated, Flag: 'i'}},
		{"ii", FlagError{Kind: FlagDuplicated, Flag: 'i'}},
		{"mm", FlagError{Kind: FlagDuplicated, Flag: 'm'}},
		{"ss", FlagError{Kind: FlagDuplicated, Flag: 's'}},
		{"uu", FlagError{Kind: FlagDuplicated, Flag: 'u'}},
		{"yy", FlagError{Kind: FlagDuplicated, Flag: 'y'}},
		{"gimuf", FlagError{Kind: FlagInvalid, Flag: 'f'}},
		{"gI", FlagError{Kind: FlagInvalid, Flag: 'I'}},
		{"a", FlagError{Kind: FlagInvalid, Flag: 'a'}},
		{"1", FlagError{Kind: FlagInvalid, Flag: '1'}},
		{"d", FlagError{Kind: FlagInvalid, Flag: 'd'}},
		{"v", FlagError{Kind: FlagInvalid, Flag: 'v'}},
		{"gé", FlagError{Kind: FlagInvalid, Flag: 'é'}},
	} {
		t.Run(tc.flags, func(t *testing.T) {
			assert.DeepEqual(t, v.ValidateFlags(tc.flags), tc.err)
		})
	}
}

func TestFlagsByEdition(t *testing.T) {
	es5 := New(ES5)
	assert.NilError(t, es5.ValidateFlags("gim"))
	for _, c := range "suy" {
		assert.DeepEqual(t, es5.ValidateFlags(string(c)), FlagError{Kind: FlagInvalid, Flag: c})
	}

	es2015 := New(ES2015)
	assert.NilError(t, es2015.ValidateFlags("gimuy"))
	assert.DeepEqual(t, es2015.ValidateFlags("gs"), FlagError{Kind: FlagInvalid, Flag: 's'})
	assert.DeepEqual(t, New(ES2017).ValidateFlags("s"), FlagError{Kind: FlagInvalid, Flag: 's'})

	assert.NilError(t, New(ES2018).ValidateFlags("s"))
	assert.NilError(t, New(Latest).ValidateFlags("s"))
}

func TestFlagString(t *testing.T) {
	assert.Equal(t, Flag(0).String(), "")
	assert.Equal(t, (FlagGlobal | FlagUnicode | FlagSticky).String(), "guy")
	assert.Equal(t, (FlagSticky | FlagDotAll | FlagIgnoreCase).String(), "isy")

	f, err := New(Latest).ParseFlags("yusmig")
	assert.NilError(t, err)
	assert.Equal(t, f.String(), "gimsuy")
}

func TestFlagErrorMessage(t *testing.T) {
	assert.Error(t, FlagError{Kind: FlagDuplicated, Flag: 'g'}, "duplicated flag g")
	assert.Error(t, FlagError{Kind: FlagInvalid, Flag: 'f'}, "invalid flag f")
}
