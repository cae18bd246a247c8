package collection

import (
	"iter"
	"slices"
)

// Set is an unordered-membership container that nevertheless iterates in
// first-insertion order, so Slice and All are deterministic. Add reports
// whether the insertion was accepted.
type Set[E comparable] interface {
	Len() int
	Has(item E) bool
	Slice() []E
	All() iter.Seq[E]
	Add(items ...E) bool
}

// NewSet returns a growable set seeded with items; duplicates collapse to the
// first occurrence.
func NewSet[E comparable](items ...E) Set[E] {
	s := &mutableSet[E]{seen: make(map[E]struct{}, len(items))}
	s.Add(items...)
	return s
}

// UnmodifiableSet returns a frozen set holding the distinct items in
// first-occurrence order.
func UnmodifiableSet[E comparable](items ...E) Set[E] {
	return frozenSet[E]{items: Dedupe(items)}
}

// FreezeSet returns an unmodifiable snapshot of s. A nil set freezes to an
// empty one.
func FreezeSet[E comparable](s Set[E]) Set[E] {
	if s == nil {
		return frozenSet[E]{items: []E{}}
	}
	return frozenSet[E]{items: s.Slice()}
}

// IsUnmodifiableSet probes s by attempting a zero-element add and reports
// whether the set rejected it. A nil set is not unmodifiable.
func IsUnmodifiableSet[E comparable](s Set[E]) bool {
	if s == nil {
		return false
	}
	return !s.Add()
}

type mutableSet[E comparable] struct {
	items []E
	seen  map[E]struct{}
}

func (s *mutableSet[E]) Len() int         { return len(s.items) }
func (s *mutableSet[E]) Slice() []E       { return copyItems(s.items) }
func (s *mutableSet[E]) All() iter.Seq[E] { return slices.Values(s.items) }

func (s *mutableSet[E]) Has(item E) bool {
	_, ok := s.seen[item]
	return ok
}

func (s *mutableSet[E]) Add(items ...E) bool {
	for _, item := range items {
		if _, ok := s.seen[item]; !ok {
			s.seen[item] = struct{}{}
			s.items = append(s.items, item)
		}
	}
	return true
}

type frozenSet[E comparable] struct {
	items []E
}

func (s frozenSet[E]) Len() int         { return len(s.items) }
func (s frozenSet[E]) Slice() []E       { return copyItems(s.items) }
func (s frozenSet[E]) All() iter.Seq[E] { return slices.Values(s.items) }
func (s frozenSet[E]) Add(...E) bool    { return false }

func (s frozenSet[E]) Has(item E) bool {
	return slices.Contains(s.items, item)
}
