package esregex

import (
	"github.com/auvred/esregex/internal/unicodeid"
	"github.com/auvred/esregex/internal/unicodeprop"
)

// PropertyTable decides which \p{...} and \P{...} expressions are known.
type PropertyTable interface {
	// IsValidProperty reports whether name=value is a valid property
	// expression, such as Script=Greek.
	IsValidProperty(edition Edition, name, value string) bool
	// IsValidLoneProperty reports whether name is a binary property that
	// may appear without a value, such as ASCII.
	IsValidLoneProperty(edition Edition, name string) bool
}

// IdentifierClassifier classifies code points for capture group names.
type IdentifierClassifier interface {
	IsIDStart(r rune) bool
	IsIDContinue(r rune) bool
}

var (
	// DefaultProperties knows the property names and values of each edition
	// up to ES2021.
	DefaultProperties PropertyTable = unicodeProperties{}

	// DefaultIdentifiers classifies code points with the Unicode tables of
	// the Go runtime.
	DefaultIdentifiers IdentifierClassifier = unicodeIdentifiers{}
)

type unicodeProperties struct{}

func (unicodeProperties) IsValidProperty(edition Edition, name, value string) bool {
	return unicodeprop.IsValid(int(edition), name, value)
}

func (unicodeProperties) IsValidLoneProperty(edition Edition, name string) bool {
	return unicodeprop.IsValidLone(int(edition), name)
}

type unicodeIdentifiers struct{}

func (unicodeIdentifiers) IsIDStart(r rune) bool    { return unicodeid.IsStart(r) }
func (unicodeIdentifiers) IsIDContinue(r rune) bool { return unicodeid.IsContinue(r) }
