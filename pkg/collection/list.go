package collection

import (
	"iter"
	"slices"
)

// List is a minimal ordered container. Append reports whether the insertion
// was accepted; unmodifiable lists reject every insertion, including the
// zero-element no-op.
type List[E any] interface {
	Len() int
	At(i int) E
	Slice() []E
	All() iter.Seq[E]
	Append(items ...E) bool
}

// NewList returns a growable list seeded with a copy of items.
func NewList[E any](items ...E) List[E] {
	return &mutableList[E]{items: copyItems(items)}
}

// UnmodifiableList returns a frozen list holding a copy of items.
func UnmodifiableList[E any](items ...E) List[E] {
	return frozenList[E]{items: copyItems(items)}
}

// Freeze returns an unmodifiable snapshot of l. A nil list freezes to an
// empty one.
func Freeze[E any](l List[E]) List[E] {
	if l == nil {
		return frozenList[E]{items: []E{}}
	}
	return frozenList[E]{items: l.Slice()}
}

// IsUnmodifiableList probes l by attempting a zero-element append and reports
// whether the list rejected it. A nil list is not unmodifiable: it cannot
// reject anything.
func IsUnmodifiableList[E any](l List[E]) bool {
	if l == nil {
		return false
	}
	return !l.Append()
}

type mutableList[E any] struct {
	items []E
}

func (l *mutableList[E]) Len() int         { return len(l.items) }
func (l *mutableList[E]) At(i int) E       { return l.items[i] }
func (l *mutableList[E]) Slice() []E       { return copyItems(l.items) }
func (l *mutableList[E]) All() iter.Seq[E] { return slices.Values(l.items) }

func (l *mutableList[E]) Append(items ...E) bool {
	l.items = append(l.items, items...)
	return true
}

type frozenList[E any] struct {
	items []E
}

func (l frozenList[E]) Len() int         { return len(l.items) }
func (l frozenList[E]) At(i int) E       { return l.items[i] }
func (l frozenList[E]) Slice() []E       { return copyItems(l.items) }
func (l frozenList[E]) All() iter.Seq[E] { return slices.Values(l.items) }
func (l frozenList[E]) Append(...E) bool { return false }

func copyItems[E any](items []E) []E {
	out := make([]E, len(items))
	copy(out, items)
	return out
}
