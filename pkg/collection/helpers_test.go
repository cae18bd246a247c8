package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/typekit-go/typekit/pkg/collection"
)

func TestCopySlice(t *testing.T) {
	t.Run("returns an independent copy", func(t *testing.T) {
		src := []int{1, 2, 3}
		out := collection.CopySlice(src)
		out[0] = 99
		assert.Equal(t, []int{1, 2, 3}, src)
	})

	t.Run("nil copies to empty non-nil", func(t *testing.T) {
		out := collection.CopySlice[int](nil)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})
}

func TestCopyMap(t *testing.T) {
	t.Run("returns an independent copy", func(t *testing.T) {
		src := map[string]int{"a": 1}
		out := collection.CopyMap(src)
		out["a"] = 99
		assert.Equal(t, 1, src["a"])
	})

	t.Run("nil copies to empty non-nil", func(t *testing.T) {
		out := collection.CopyMap[string, int](nil)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})
}

func TestConcat(t *testing.T) {
	t.Run("joins slices in order", func(t *testing.T) {
		out := collection.Concat([]int{1}, []int{2, 3}, []int{4})
		assert.Equal(t, []int{1, 2, 3, 4}, out)
	})

	t.Run("skips nil slices", func(t *testing.T) {
		out := collection.Concat([]string{"a"}, nil, []string{"b"})
		assert.Equal(t, []string{"a", "b"}, out)
	})

	t.Run("no inputs yields empty", func(t *testing.T) {
		assert.Empty(t, collection.Concat[int]())
	})
}

func TestMergeMaps(t *testing.T) {
	t.Run("later values win on collision", func(t *testing.T) {
		out := collection.MergeMaps(
			map[string]int{"a": 1, "b": 1},
			map[string]int{"b": 2},
		)
		assert.Equal(t, map[string]int{"a": 1, "b": 2}, out)
	})

	t.Run("skips nil maps", func(t *testing.T) {
		out := collection.MergeMaps(nil, map[string]int{"a": 1}, nil)
		assert.Equal(t, map[string]int{"a": 1}, out)
	})
}

func TestDedupe(t *testing.T) {
	t.Run("preserves first-occurrence order", func(t *testing.T) {
		out := collection.Dedupe([]string{"b", "a", "b", "c", "a"})
		assert.Equal(t, []string{"b", "a", "c"}, out)
	})

	t.Run("nil yields empty", func(t *testing.T) {
		assert.Empty(t, collection.Dedupe[int](nil))
	})
}

func TestWithoutZero(t *testing.T) {
	t.Run("drops empty strings", func(t *testing.T) {
		out := collection.WithoutZero([]string{"a", "", "b", ""})
		assert.Equal(t, []string{"a", "b"}, out)
	})

	t.Run("drops nil pointers", func(t *testing.T) {
		one := 1
		out := collection.WithoutZero([]*int{&one, nil})
		assert.Equal(t, []*int{&one}, out)
	})

	t.Run("drops zero numbers", func(t *testing.T) {
		out := collection.WithoutZero([]int{0, 1, 0, 2})
		assert.Equal(t, []int{1, 2}, out)
	})
}
