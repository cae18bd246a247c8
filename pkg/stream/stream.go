package stream

import (
	"iter"
	"slices"

	"github.com/typekit-go/typekit/pkg/tuple"
)

// FromSlice returns a sequence over s. A nil slice yields an empty sequence.
func FromSlice[E any](s []E) iter.Seq[E] {
	return slices.Values(s)
}

// Collect drains seq into a freshly allocated slice. The result is never nil.
func Collect[E any](seq iter.Seq[E]) []E {
	out := []E{}
	for v := range seq {
		out = append(out, v)
	}
	return out
}

// Filter yields only the elements for which keep returns true.
func Filter[E any](seq iter.Seq[E], keep func(E) bool) iter.Seq[E] {
	return func(yield func(E) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// Map yields fn applied to every element.
func Map[A, B any](seq iter.Seq[A], fn func(A) B) iter.Seq[B] {
	return func(yield func(B) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Reduce folds seq into a single value, starting from init.
func Reduce[E, A any](seq iter.Seq[E], init A, fn func(A, E) A) A {
	acc := init
	for v := range seq {
		acc = fn(acc, v)
	}
	return acc
}

// Take yields at most n elements. A non-positive n yields nothing.
func Take[E any](seq iter.Seq[E], n int) iter.Seq[E] {
	return func(yield func(E) bool) {
		if n <= 0 {
			return
		}
		remaining := n
		for v := range seq {
			if !yield(v) {
				return
			}
			remaining--
			if remaining == 0 {
				return
			}
		}
	}
}

// Distinct drops repeated elements, yielding each value on its first
// occurrence only.
func Distinct[E comparable](seq iter.Seq[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		seen := make(map[E]struct{})
		for v := range seq {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// Compact drops zero values (empty strings, nil pointers, zero numbers).
func Compact[E comparable](seq iter.Seq[E]) iter.Seq[E] {
	var zero E
	return Filter(seq, func(v E) bool { return v != zero })
}

// Zip2 pairs elements positionally, stopping at the shorter input.
func Zip2[A, B any](sa iter.Seq[A], sb iter.Seq[B]) iter.Seq[tuple.T2[A, B]] {
	return func(yield func(tuple.T2[A, B]) bool) {
		next, stop := iter.Pull(sb)
		defer stop()
		for a := range sa {
			b, ok := next()
			if !ok {
				return
			}
			if !yield(tuple.Of2(a, b)) {
				return
			}
		}
	}
}

// Pairs converts a two-value sequence into a sequence of tuples.
func Pairs[K, V any](seq iter.Seq2[K, V]) iter.Seq[tuple.T2[K, V]] {
	return func(yield func(tuple.T2[K, V]) bool) {
		for k, v := range seq {
			if !yield(tuple.Of2(k, v)) {
				return
			}
		}
	}
}
