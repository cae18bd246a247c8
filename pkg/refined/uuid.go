package refined

import (
	"strings"

	"github.com/google/uuid"

	"github.com/typekit-go/typekit/pkg/validation"
)

// UUIDString wraps a string that is guaranteed to be a parseable, non-nil
// UUID. The original textual form is stored unchanged; use UUID for the
// parsed value.
type UUIDString struct {
	value string
}

// ValidateUUIDString reports whether v would make a valid UUIDString. The
// nil-UUID predicate only applies when v parses at all; an unparseable input
// reports the parse failure, not nilness.
func ValidateUUIDString(v string) *validation.Error {
	parsed, parseErr := uuid.Parse(v)
	return Check("UUIDString",
		Rule{
			Check:   func() bool { return strings.TrimSpace(v) != "" },
			Message: "string must not be empty",
		},
		Rule{
			Check:   func() bool { return parseErr == nil },
			Message: "string must be a valid UUID",
		},
		Rule{
			Check:   func() bool { return parseErr != nil || parsed != uuid.Nil },
			Message: "UUID must not be nil",
		},
	)
}

// NewUUIDString wraps v, or returns the validation error for a malformed or
// nil UUID.
func NewUUIDString(v string) (UUIDString, error) {
	if err := ValidateUUIDString(v); err != nil {
		return UUIDString{}, err
	}
	return UUIDString{value: v}, nil
}

// MustUUIDString wraps v and panics with the validation error for a malformed
// or nil UUID.
func MustUUIDString(v string) UUIDString {
	s, err := NewUUIDString(v)
	if err != nil {
		panic(err)
	}
	return s
}

// Value returns the wrapped string unchanged.
func (s UUIDString) Value() string { return s.value }

// String implements fmt.Stringer.
func (s UUIDString) String() string { return s.value }

// UUID returns the parsed form of the wrapped string.
func (s UUIDString) UUID() uuid.UUID {
	parsed, _ := uuid.Parse(s.value)
	return parsed
}

// Compare orders lexicographically by the wrapped textual form.
func (s UUIDString) Compare(other UUIDString) int {
	return strings.Compare(s.value, other.value)
}
