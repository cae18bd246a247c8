package collection

// CopySlice returns a defensive copy of s. A nil slice copies to an empty,
// non-nil one.
func CopySlice[E any](s []E) []E {
	return copyItems(s)
}

// CopyMap returns a defensive copy of m. A nil map copies to an empty,
// non-nil one.
func CopyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Concat joins slices into a single freshly allocated slice, skipping nil
// inputs.
func Concat[E any](slices ...[]E) []E {
	total := 0
	for _, s := range slices {
		total += len(s)
	}
	out := make([]E, 0, total)
	for _, s := range slices {
		out = append(out, s...)
	}
	return out
}

// MergeMaps combines maps left to right into a new map; on key collision the
// later value wins. Nil maps are skipped.
func MergeMaps[K comparable, V any](ms ...map[K]V) map[K]V {
	out := make(map[K]V)
	for _, m := range ms {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// Dedupe drops repeated values, preserving first-occurrence order.
func Dedupe[E comparable](s []E) []E {
	seen := make(map[E]struct{}, len(s))
	out := make([]E, 0, len(s))
	for _, item := range s {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// WithoutZero drops zero values (empty strings, nil pointers, zero numbers)
// from s, preserving order.
func WithoutZero[E comparable](s []E) []E {
	var zero E
	out := make([]E, 0, len(s))
	for _, item := range s {
		if item != zero {
			out = append(out, item)
		}
	}
	return out
}
