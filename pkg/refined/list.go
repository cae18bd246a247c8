package refined

import (
	"iter"

	"github.com/typekit-go/typekit/pkg/collection"
	"github.com/typekit-go/typekit/pkg/validation"
)

// NonEmptyList wraps a collection.List that is guaranteed to hold at least
// one element and to be structurally unmodifiable.
type NonEmptyList[E any] struct {
	list collection.List[E]
}

// ValidateNonEmptyList reports whether l would make a valid NonEmptyList.
// Unmodifiability is verified empirically: a zero-element append is attempted
// against l, and a list that accepts the no-op is classified modifiable. Both
// predicates are always evaluated.
func ValidateNonEmptyList[E any](l collection.List[E]) *validation.Error {
	return Check("NonEmptyList[E]",
		Rule{
			Check:   func() bool { return l != nil && l.Len() > 0 },
			Message: "list must not be empty",
		},
		Rule{
			Check:   func() bool { return collection.IsUnmodifiableList(l) },
			Message: "list must be unmodifiable",
		},
	)
}

// NewNonEmptyList wraps l, or returns the validation error for an empty or
// modifiable list. The list is wrapped as-is, not copied: validation has
// already proven it cannot change.
func NewNonEmptyList[E any](l collection.List[E]) (NonEmptyList[E], error) {
	if err := ValidateNonEmptyList(l); err != nil {
		return NonEmptyList[E]{}, err
	}
	return NonEmptyList[E]{list: l}, nil
}

// MustNonEmptyList wraps l and panics with the validation error for an empty
// or modifiable list.
func MustNonEmptyList[E any](l collection.List[E]) NonEmptyList[E] {
	nel, err := NewNonEmptyList(l)
	if err != nil {
		panic(err)
	}
	return nel
}

// Value returns the wrapped unmodifiable list.
func (l NonEmptyList[E]) Value() collection.List[E] { return l.list }

// Len returns the element count; always at least 1 for a constructed value.
func (l NonEmptyList[E]) Len() int { return l.list.Len() }

// At returns the element at index i.
func (l NonEmptyList[E]) At(i int) E { return l.list.At(i) }

// Head returns the first element.
func (l NonEmptyList[E]) Head() E { return l.list.At(0) }

// Slice returns a defensive copy of the elements.
func (l NonEmptyList[E]) Slice() []E { return l.list.Slice() }

// All iterates the elements in order.
func (l NonEmptyList[E]) All() iter.Seq[E] { return l.list.All() }
