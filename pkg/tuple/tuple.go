package tuple

import (
	"fmt"
	"strings"
)

// T1 is a single-value tuple.
type T1[A any] struct {
	V1 A
}

// T2 is a pair.
type T2[A, B any] struct {
	V1 A
	V2 B
}

// T3 is a triple.
type T3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

// T4 is a quadruple.
type T4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

// T5 is a quintuple.
type T5[A, B, C, D, E any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
}

// T6 is a sextuple.
type T6[A, B, C, D, E, F any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
}

// T7 is a septuple.
type T7[A, B, C, D, E, F, G any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
}

// T8 is an octuple.
type T8[A, B, C, D, E, F, G, H any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
	V8 H
}

// T9 is a nonuple.
type T9[A, B, C, D, E, F, G, H, I any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
	V8 H
	V9 I
}

// T10 is a decuple.
type T10[A, B, C, D, E, F, G, H, I, J any] struct {
	V1  A
	V2  B
	V3  C
	V4  D
	V5  E
	V6  F
	V7  G
	V8  H
	V9  I
	V10 J
}

// Of1 builds a T1.
func Of1[A any](v1 A) T1[A] {
	return T1[A]{V1: v1}
}

// Of2 builds a T2.
func Of2[A, B any](v1 A, v2 B) T2[A, B] {
	return T2[A, B]{V1: v1, V2: v2}
}

// Of3 builds a T3.
func Of3[A, B, C any](v1 A, v2 B, v3 C) T3[A, B, C] {
	return T3[A, B, C]{V1: v1, V2: v2, V3: v3}
}

// Of4 builds a T4.
func Of4[A, B, C, D any](v1 A, v2 B, v3 C, v4 D) T4[A, B, C, D] {
	return T4[A, B, C, D]{V1: v1, V2: v2, V3: v3, V4: v4}
}

// Of5 builds a T5.
func Of5[A, B, C, D, E any](v1 A, v2 B, v3 C, v4 D, v5 E) T5[A, B, C, D, E] {
	return T5[A, B, C, D, E]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5}
}

// Of6 builds a T6.
func Of6[A, B, C, D, E, F any](v1 A, v2 B, v3 C, v4 D, v5 E, v6 F) T6[A, B, C, D, E, F] {
	return T6[A, B, C, D, E, F]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5, V6: v6}
}

// Of7 builds a T7.
func Of7[A, B, C, D, E, F, G any](v1 A, v2 B, v3 C, v4 D, v5 E, v6 F, v7 G) T7[A, B, C, D, E, F, G] {
	return T7[A, B, C, D, E, F, G]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5, V6: v6, V7: v7}
}

// Of8 builds a T8.
func Of8[A, B, C, D, E, F, G, H any](v1 A, v2 B, v3 C, v4 D, v5 E, v6 F, v7 G, v8 H) T8[A, B, C, D, E, F, G, H] {
	return T8[A, B, C, D, E, F, G, H]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5, V6: v6, V7: v7, V8: v8}
}

// Of9 builds a T9.
func Of9[A, B, C, D, E, F, G, H, I any](v1 A, v2 B, v3 C, v4 D, v5 E, v6 F, v7 G, v8 H, v9 I) T9[A, B, C, D, E, F, G, H, I] {
	return T9[A, B, C, D, E, F, G, H, I]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5, V6: v6, V7: v7, V8: v8, V9: v9}
}

// Of10 builds a T10.
func Of10[A, B, C, D, E, F, G, H, I, J any](v1 A, v2 B, v3 C, v4 D, v5 E, v6 F, v7 G, v8 H, v9 I, v10 J) T10[A, B, C, D, E, F, G, H, I, J] {
	return T10[A, B, C, D, E, F, G, H, I, J]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5, V6: v6, V7: v7, V8: v8, V9: v9, V10: v10}
}

// Values flattens the tuple into positional order.
func (t T1[A]) Values() []any { return []any{t.V1} }

func (t T2[A, B]) Values() []any { return []any{t.V1, t.V2} }

func (t T3[A, B, C]) Values() []any { return []any{t.V1, t.V2, t.V3} }

func (t T4[A, B, C, D]) Values() []any { return []any{t.V1, t.V2, t.V3, t.V4} }

func (t T5[A, B, C, D, E]) Values() []any { return []any{t.V1, t.V2, t.V3, t.V4, t.V5} }

func (t T6[A, B, C, D, E, F]) Values() []any { return []any{t.V1, t.V2, t.V3, t.V4, t.V5, t.V6} }

func (t T7[A, B, C, D, E, F, G]) Values() []any {
	return []any{t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7}
}

func (t T8[A, B, C, D, E, F, G, H]) Values() []any {
	return []any{t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7, t.V8}
}

func (t T9[A, B, C, D, E, F, G, H, I]) Values() []any {
	return []any{t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7, t.V8, t.V9}
}

func (t T10[A, B, C, D, E, F, G, H, I, J]) Values() []any {
	return []any{t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7, t.V8, t.V9, t.V10}
}

// String renders the tuple as "(v1, v2, ...)".
func (t T1[A]) String() string { return render(t.Values()) }

func (t T2[A, B]) String() string { return render(t.Values()) }

func (t T3[A, B, C]) String() string { return render(t.Values()) }

func (t T4[A, B, C, D]) String() string { return render(t.Values()) }

func (t T5[A, B, C, D, E]) String() string { return render(t.Values()) }

func (t T6[A, B, C, D, E, F]) String() string { return render(t.Values()) }

func (t T7[A, B, C, D, E, F, G]) String() string { return render(t.Values()) }

func (t T8[A, B, C, D, E, F, G, H]) String() string { return render(t.Values()) }

func (t T9[A, B, C, D, E, F, G, H, I]) String() string { return render(t.Values()) }

func (t T10[A, B, C, D, E, F, G, H, I, J]) String() string { return render(t.Values()) }

func render(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
