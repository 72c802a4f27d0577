// Package unicodeid classifies code points by the Unicode ID_Start and
// ID_Continue derived properties (UAX #31).
package unicodeid

import "unicode"

func isASCIILetter(r rune) bool {
	return uint32(r|0x20)-'a' <= 'z'-'a'
}

// IsStart reports whether r has the ID_Start property.
func IsStart(r rune) bool {
	if r < 0x80 {
		return r >= 0 && isASCIILetter(r)
	}
	return unicode.In(r,
		unicode.L,
		unicode.Nl, // Number, letter.
		unicode.Other_ID_Start,
	) && !unicode.In(r,
		unicode.Pattern_Syntax,
		unicode.Pattern_White_Space,
	)
}

// IsContinue reports whether r has the ID_Continue property.
func IsContinue(r rune) bool {
	if r < 0x80 {
		return r >= 0 && (isASCIILetter(r) || uint32(r)-'0' <= 9 || r == '_')
	}
	return unicode.In(r,
		unicode.L,
		unicode.Nl,
		unicode.Other_ID_Start,
		unicode.Mn, // Mark, nonspacing.
		unicode.Mc, // Mark, spacing combining.
		unicode.Nd, // Number, decimal digit.
		unicode.Pc, // Punctuation, connector.
		unicode.Other_ID_Continue,
	) && !unicode.In(r,
		unicode.Pattern_Syntax,
		unicode.Pattern_White_Space,
	)
}
