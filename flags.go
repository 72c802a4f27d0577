package esregex

// Flag is a bitmask of RegExp flags.
// The zero value corresponds to /pattern/ with no flags.
type Flag uint8

const (
	// Global search ("g" flag).
	FlagGlobal Flag = 1 << iota

	// Case-insensitive matching ("i" flag).
	FlagIgnoreCase

	// "^" and "$" match line boundaries ("m" flag).
	FlagMultiline

	// "." matches line terminators ("s" flag). Since ES2018.
	FlagDotAll

	// Unicode-aware mode ("u" flag). Since ES2015.
	FlagUnicode

	// Sticky match from current position ("y" flag). Since ES2015.
	FlagSticky
)

// Listed in the order RegExp.prototype.flags renders them.
var flagLetters = [...]struct {
	flag   Flag
	letter rune
	since  Edition
}{
	{FlagGlobal, 'g', ES5},
	{FlagIgnoreCase, 'i', ES5},
	{FlagMultiline, 'm', ES5},
	{FlagDotAll, 's', ES2018},
	{FlagUnicode, 'u', ES2015},
	{FlagSticky, 'y', ES2015},
}

// String returns the flag letters of f in canonical order, e.g. "gimsuy".
func (f Flag) String() string {
	res := make([]byte, 0, len(flagLetters))
	for _, l := range flagLetters {
		if f&l.flag != 0 {
			res = append(res, byte(l.letter))
		}
	}
	return string(res)
}

// ParseFlags validates a flag string and returns the flags it sets. Flags
// may appear in any order but at most once.
func (v *Validator) ParseFlags(flags string) (Flag, error) {
	var res Flag
	for _, c := range flags {
		f := v.lookupFlag(c)
		if f == 0 {
			return 0, FlagError{Kind: FlagInvalid, Flag: c}
		}
		if res&f != 0 {
			return 0, FlagError{Kind: FlagDuplicated, Flag: c}
		}
		res |= f
	}
	return res, nil
}

// ValidateFlags reports whether flags is a valid flag string for the
// edition of v.
func (v *Validator) ValidateFlags(flags string) error {
	_, err := v.ParseFlags(flags)
	return err
}

func (v *Validator) lookupFlag(c rune) Flag {
	for _, l := range flagLetters {
		if l.letter == c && v.edition >= l.since {
			return l.flag
		}
	}
	return 0
}
