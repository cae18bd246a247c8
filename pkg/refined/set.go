package refined

import (
	"iter"

	"github.com/typekit-go/typekit/pkg/collection"
	"github.com/typekit-go/typekit/pkg/validation"
)

// NonEmptySet wraps a collection.Set that is guaranteed to hold at least one
// element and to be structurally unmodifiable.
type NonEmptySet[E comparable] struct {
	set collection.Set[E]
}

// ValidateNonEmptySet reports whether s would make a valid NonEmptySet,
// using the same empirical unmodifiability probe as the list refinement.
func ValidateNonEmptySet[E comparable](s collection.Set[E]) *validation.Error {
	return Check("NonEmptySet[E]",
		Rule{
			Check:   func() bool { return s != nil && s.Len() > 0 },
			Message: "set must not be empty",
		},
		Rule{
			Check:   func() bool { return collection.IsUnmodifiableSet(s) },
			Message: "set must be unmodifiable",
		},
	)
}

// NewNonEmptySet wraps s, or returns the validation error for an empty or
// modifiable set.
func NewNonEmptySet[E comparable](s collection.Set[E]) (NonEmptySet[E], error) {
	if err := ValidateNonEmptySet(s); err != nil {
		return NonEmptySet[E]{}, err
	}
	return NonEmptySet[E]{set: s}, nil
}

// MustNonEmptySet wraps s and panics with the validation error for an empty
// or modifiable set.
func MustNonEmptySet[E comparable](s collection.Set[E]) NonEmptySet[E] {
	nes, err := NewNonEmptySet(s)
	if err != nil {
		panic(err)
	}
	return nes
}

// Value returns the wrapped unmodifiable set.
func (s NonEmptySet[E]) Value() collection.Set[E] { return s.set }

// Len returns the element count; always at least 1 for a constructed value.
func (s NonEmptySet[E]) Len() int { return s.set.Len() }

// Has reports membership.
func (s NonEmptySet[E]) Has(item E) bool { return s.set.Has(item) }

// Slice returns the elements in first-insertion order.
func (s NonEmptySet[E]) Slice() []E { return s.set.Slice() }

// All iterates the elements in first-insertion order.
func (s NonEmptySet[E]) All() iter.Seq[E] { return s.set.All() }
