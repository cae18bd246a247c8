package refined

import (
	"strings"

	"github.com/typekit-go/typekit/pkg/validation"
)

// NonEmptyString wraps a string that is guaranteed to have at least one
// character, blank or not.
type NonEmptyString struct {
	value string
}

// ValidateNonEmptyString reports whether v would make a valid NonEmptyString.
func ValidateNonEmptyString(v string) *validation.Error {
	return Check("NonEmptyString",
		Rule{
			Check:   func() bool { return len(v) > 0 },
			Message: "string must not be empty",
		},
	)
}

// NewNonEmptyString wraps v, or returns the validation error for an empty
// input.
func NewNonEmptyString(v string) (NonEmptyString, error) {
	if err := ValidateNonEmptyString(v); err != nil {
		return NonEmptyString{}, err
	}
	return NonEmptyString{value: v}, nil
}

// MustNonEmptyString wraps v and panics with the validation error for an
// empty input.
func MustNonEmptyString(v string) NonEmptyString {
	s, err := NewNonEmptyString(v)
	if err != nil {
		panic(err)
	}
	return s
}

// Value returns the wrapped string unchanged.
func (s NonEmptyString) Value() string { return s.value }

// String implements fmt.Stringer.
func (s NonEmptyString) String() string { return s.value }

// Compare orders lexicographically by the wrapped string.
func (s NonEmptyString) Compare(other NonEmptyString) int {
	return strings.Compare(s.value, other.value)
}

// NonBlankString wraps a string that is guaranteed to contain at least one
// non-whitespace character.
type NonBlankString struct {
	value string
}

// ValidateNonBlankString reports whether v would make a valid NonBlankString.
// Both predicates are always evaluated: an empty input violates the
// non-empty and the non-blank condition at once.
func ValidateNonBlankString(v string) *validation.Error {
	return Check("NonBlankString",
		Rule{
			Check:   func() bool { return len(v) > 0 },
			Message: "string must not be empty",
		},
		Rule{
			Check:   func() bool { return strings.TrimSpace(v) != "" },
			Message: "string must not be blank",
		},
	)
}

// NewNonBlankString wraps v, or returns the validation error for a blank
// input.
func NewNonBlankString(v string) (NonBlankString, error) {
	if err := ValidateNonBlankString(v); err != nil {
		return NonBlankString{}, err
	}
	return NonBlankString{value: v}, nil
}

// MustNonBlankString wraps v and panics with the validation error for a blank
// input.
func MustNonBlankString(v string) NonBlankString {
	s, err := NewNonBlankString(v)
	if err != nil {
		panic(err)
	}
	return s
}

// Value returns the wrapped string unchanged, whitespace included.
func (s NonBlankString) Value() string { return s.value }

// String implements fmt.Stringer.
func (s NonBlankString) String() string { return s.value }

// Compare orders lexicographically by the wrapped string.
func (s NonBlankString) Compare(other NonBlankString) int {
	return strings.Compare(s.value, other.value)
}
