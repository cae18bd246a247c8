package refined

import (
	"cmp"
	"fmt"
	"strconv"

	"github.com/typekit-go/typekit/pkg/validation"
)

// PosInt wraps an integer that is guaranteed to be strictly greater than
// zero.
type PosInt struct {
	value int
}

// ValidatePosInt reports whether v would make a valid PosInt.
func ValidatePosInt(v int) *validation.Error {
	return Check("PosInt",
		Rule{
			Check:   func() bool { return v > 0 },
			Message: fmt.Sprintf("value [%d] must be greater than 0", v),
		},
	)
}

// NewPosInt wraps v, or returns the validation error for a non-positive
// input.
func NewPosInt(v int) (PosInt, error) {
	if err := ValidatePosInt(v); err != nil {
		return PosInt{}, err
	}
	return PosInt{value: v}, nil
}

// MustPosInt wraps v and panics with the validation error for a non-positive
// input.
func MustPosInt(v int) PosInt {
	n, err := NewPosInt(v)
	if err != nil {
		panic(err)
	}
	return n
}

// Value returns the wrapped integer.
func (n PosInt) Value() int { return n.value }

// String implements fmt.Stringer.
func (n PosInt) String() string { return strconv.Itoa(n.value) }

// Compare orders numerically by the wrapped integer.
func (n PosInt) Compare(other PosInt) int {
	return cmp.Compare(n.value, other.value)
}

// NonNegInt wraps an integer that is guaranteed to be zero or greater.
type NonNegInt struct {
	value int
}

// ValidateNonNegInt reports whether v would make a valid NonNegInt.
func ValidateNonNegInt(v int) *validation.Error {
	return Check("NonNegInt",
		Rule{
			Check:   func() bool { return v >= 0 },
			Message: fmt.Sprintf("value [%d] must be greater than or equal to 0", v),
		},
	)
}

// NewNonNegInt wraps v, or returns the validation error for a negative input.
func NewNonNegInt(v int) (NonNegInt, error) {
	if err := ValidateNonNegInt(v); err != nil {
		return NonNegInt{}, err
	}
	return NonNegInt{value: v}, nil
}

// MustNonNegInt wraps v and panics with the validation error for a negative
// input.
func MustNonNegInt(v int) NonNegInt {
	n, err := NewNonNegInt(v)
	if err != nil {
		panic(err)
	}
	return n
}

// Value returns the wrapped integer.
func (n NonNegInt) Value() int { return n.value }

// String implements fmt.Stringer.
func (n NonNegInt) String() string { return strconv.Itoa(n.value) }

// Compare orders numerically by the wrapped integer.
func (n NonNegInt) Compare(other NonNegInt) int {
	return cmp.Compare(n.value, other.value)
}
