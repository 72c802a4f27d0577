package esregex

import (
	"strconv"
	"strings"
)

// ErrorKind identifies why a pattern was rejected.
type ErrorKind uint8

const (
	ErrUnmatchedParen ErrorKind = iota + 1
	ErrTrailingBackslash
	ErrLoneQuantifierBrackets
	ErrUnexpectedCharacter
	ErrNothingToRepeat
	ErrUnterminatedGroup
	ErrInvalidGroup
	ErrUnterminatedCharacterClass
	ErrUnterminatedLiteral
	ErrEmptyLiteral

	ErrQuantifierOutOfOrder
	ErrIncompleteQuantifier

	ErrRangeOutOfOrder
	ErrInvalidCharacterClass

	ErrInvalidEscape
	ErrInvalidUnicodeEscape
	ErrInvalidPropertyName
	ErrInvalidGroupName
	ErrInvalidNamedReference

	ErrDuplicateGroupName
	ErrUnknownNamedReference
)

var errorMessages = [...]string{
	ErrUnmatchedParen:             "unmatched ')'",
	ErrTrailingBackslash:          `\ at end of pattern`,
	ErrLoneQuantifierBrackets:     "lone quantifier brackets",
	ErrUnexpectedCharacter:        "unexpected character",
	ErrNothingToRepeat:            "nothing to repeat",
	ErrUnterminatedGroup:          "unterminated group",
	ErrInvalidGroup:               "invalid group",
	ErrUnterminatedCharacterClass: "unterminated character class",
	ErrUnterminatedLiteral:        "unterminated regular expression",
	ErrEmptyLiteral:               "empty",
	ErrQuantifierOutOfOrder:       "numbers out of order in {} quantifier",
	ErrIncompleteQuantifier:       "incomplete quantifier",
	ErrRangeOutOfOrder:            "range out of order in character class",
	ErrInvalidCharacterClass:      "invalid character class",
	ErrInvalidEscape:              "invalid escape",
	ErrInvalidUnicodeEscape:       "invalid unicode escape",
	ErrInvalidPropertyName:        "invalid property name",
	ErrInvalidGroupName:           "invalid capture group name",
	ErrInvalidNamedReference:      "invalid named reference",
	ErrDuplicateGroupName:         "duplicate capture group name",
	ErrUnknownNamedReference:      "invalid named capture referenced",
}

// String returns the bare diagnostic message for k.
func (k ErrorKind) String() string {
	if int(k) < len(errorMessages) && errorMessages[k] != "" {
		return errorMessages[k]
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// SyntaxError reports the first grammar or semantic violation found in a
// pattern. Only one SyntaxError is produced per validation.
type SyntaxError struct {
	Kind ErrorKind
	// Pattern is the validated source, decoded from UTF-16.
	Pattern string
	// Unicode reports whether the pattern was validated in unicode mode.
	Unicode bool
	// Index is the UTF-16 code unit offset at which the error was raised.
	Index int
	// Char is the offending code point for ErrUnexpectedCharacter, otherwise 0.
	Char rune
}

func (e SyntaxError) Error() string {
	var b strings.Builder
	b.WriteString("invalid regular expression: /")
	b.WriteString(e.Pattern)
	b.WriteByte('/')
	if e.Unicode {
		b.WriteByte('u')
	}
	b.WriteString(": ")
	b.WriteString(e.Kind.String())
	if e.Kind == ErrUnexpectedCharacter {
		b.WriteString(" '")
		b.WriteRune(e.Char)
		b.WriteByte('\'')
	}
	return b.String()
}

var _ error = (*SyntaxError)(nil)

// FlagErrorKind distinguishes the two ways a flag string can be invalid.
type FlagErrorKind uint8

const (
	// FlagDuplicated means the flag character appeared more than once.
	FlagDuplicated FlagErrorKind = iota + 1
	// FlagInvalid means the character is not a flag, or not one the
	// configured edition knows about.
	FlagInvalid
)

// FlagError reports the first bad character of a flag string.
type FlagError struct {
	Kind FlagErrorKind
	Flag rune
}

func (e FlagError) Error() string {
	if e.Kind == FlagDuplicated {
		return "duplicated flag " + string(e.Flag)
	}
	return "invalid flag " + string(e.Flag)
}

var _ error = (*FlagError)(nil)
