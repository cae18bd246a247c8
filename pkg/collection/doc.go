// Package collection provides small container abstractions with explicit
// modifiability semantics, plus nil-safe slice and map helpers.
//
// The List, Set and Map interfaces expose a single mutation entry point
// (Append, Add, Put) that reports whether the container accepted the
// insertion. Growable containers built with NewList/NewSet/NewMap accept
// every insertion, including the zero-element no-op; unmodifiable containers
// built with UnmodifiableList/UnmodifiableSet/UnmodifiableMap (or frozen with
// Freeze/FreezeSet/FreezeMap) reject all of them. That makes modifiability an
// observable capability rather than a type-level promise, which is exactly
// what the IsUnmodifiable* probes rely on:
//
//	l := collection.UnmodifiableList(1, 2, 3)
//	collection.IsUnmodifiableList(l) // true: the zero-element append was rejected
//
// The probe performs one harmless zero-element insertion attempt per call. It
// is a behavioral heuristic, not a static guarantee: a container implemented
// outside this package could in principle accept no-op insertions while
// rejecting real ones.
//
// Sets and maps preserve first-insertion order so that iteration and Slice/
// Keys output are deterministic.
//
// The free helpers (CopySlice, MergeMaps, Dedupe, WithoutZero, ...) treat nil
// slices and maps as empty and always return freshly allocated storage.
package collection
