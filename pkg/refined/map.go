package refined

import (
	"iter"

	"github.com/typekit-go/typekit/pkg/collection"
	"github.com/typekit-go/typekit/pkg/validation"
)

// NonEmptyMap wraps a collection.Map that is guaranteed to hold at least one
// entry and to be structurally unmodifiable.
type NonEmptyMap[K comparable, V any] struct {
	m collection.Map[K, V]
}

// ValidateNonEmptyMap reports whether m would make a valid NonEmptyMap,
// using the same empirical unmodifiability probe as the list refinement.
func ValidateNonEmptyMap[K comparable, V any](m collection.Map[K, V]) *validation.Error {
	return Check("NonEmptyMap[K, V]",
		Rule{
			Check:   func() bool { return m != nil && m.Len() > 0 },
			Message: "map must not be empty",
		},
		Rule{
			Check:   func() bool { return collection.IsUnmodifiableMap(m) },
			Message: "map must be unmodifiable",
		},
	)
}

// NewNonEmptyMap wraps m, or returns the validation error for an empty or
// modifiable map.
func NewNonEmptyMap[K comparable, V any](m collection.Map[K, V]) (NonEmptyMap[K, V], error) {
	if err := ValidateNonEmptyMap(m); err != nil {
		return NonEmptyMap[K, V]{}, err
	}
	return NonEmptyMap[K, V]{m: m}, nil
}

// MustNonEmptyMap wraps m and panics with the validation error for an empty
// or modifiable map.
func MustNonEmptyMap[K comparable, V any](m collection.Map[K, V]) NonEmptyMap[K, V] {
	nem, err := NewNonEmptyMap(m)
	if err != nil {
		panic(err)
	}
	return nem
}

// Value returns the wrapped unmodifiable map.
func (m NonEmptyMap[K, V]) Value() collection.Map[K, V] { return m.m }

// Len returns the entry count; always at least 1 for a constructed value.
func (m NonEmptyMap[K, V]) Len() int { return m.m.Len() }

// Get looks up a key.
func (m NonEmptyMap[K, V]) Get(key K) (V, bool) { return m.m.Get(key) }

// Keys returns the keys in first-insertion order.
func (m NonEmptyMap[K, V]) Keys() []K { return m.m.Keys() }

// Entries iterates the entries in key-insertion order.
func (m NonEmptyMap[K, V]) Entries() iter.Seq2[K, V] { return m.m.Entries() }
