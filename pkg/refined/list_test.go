package refined_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typekit-go/typekit/pkg/collection"
	"github.com/typekit-go/typekit/pkg/refined"
)

func TestNonEmptyList(t *testing.T) {
	t.Run("validate passes for a non-empty unmodifiable list", func(t *testing.T) {
		assert.Nil(t, refined.ValidateNonEmptyList(collection.UnmodifiableList(1, 2, 3)))
	})

	t.Run("empty unmodifiable list fails the emptiness predicate", func(t *testing.T) {
		err := refined.ValidateNonEmptyList(collection.UnmodifiableList[int]())
		require.NotNil(t, err)
		assert.Equal(t, "NonEmptyList[E] invalid parameter(s)", err.Message())
		assert.Equal(t, []string{"list must not be empty"}, err.SubMessages())
	})

	t.Run("mutable non-empty list fails the unmodifiability predicate", func(t *testing.T) {
		err := refined.ValidateNonEmptyList(collection.NewList(1, 2))
		require.NotNil(t, err)
		assert.Equal(t, []string{"list must be unmodifiable"}, err.SubMessages())
	})

	t.Run("empty mutable list fails both predicates in order", func(t *testing.T) {
		err := refined.ValidateNonEmptyList(collection.NewList[int]())
		require.NotNil(t, err)
		assert.Equal(t, []string{
			"list must not be empty",
			"list must be unmodifiable",
		}, err.SubMessages())
	})

	t.Run("nil list fails both predicates", func(t *testing.T) {
		err := refined.ValidateNonEmptyList[int](nil)
		require.NotNil(t, err)
		assert.Equal(t, []string{
			"list must not be empty",
			"list must be unmodifiable",
		}, err.SubMessages())
	})

	t.Run("validation does not change the probed list", func(t *testing.T) {
		l := collection.NewList(1, 2)
		refined.ValidateNonEmptyList(l)
		assert.Equal(t, []int{1, 2}, l.Slice())
	})

	t.Run("new wraps the list and exposes its contents", func(t *testing.T) {
		nel, err := refined.NewNonEmptyList(collection.UnmodifiableList("a", "b"))
		require.NoError(t, err)
		assert.Equal(t, 2, nel.Len())
		assert.Equal(t, "a", nel.Head())
		assert.Equal(t, "b", nel.At(1))
		assert.Equal(t, []string{"a", "b"}, nel.Slice())

		var collected []string
		for item := range nel.All() {
			collected = append(collected, item)
		}
		assert.Equal(t, []string{"a", "b"}, collected)
	})

	t.Run("freezing a mutable list makes it acceptable", func(t *testing.T) {
		l := collection.NewList(1, 2)
		_, err := refined.NewNonEmptyList(l)
		require.Error(t, err)

		nel, err := refined.NewNonEmptyList(collection.Freeze(l))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, nel.Slice())
	})

	t.Run("must panics with the validation error", func(t *testing.T) {
		assert.PanicsWithError(t,
			"NonEmptyList[E] invalid parameter(s) - Parameter Validation Failures: [list must not be empty]",
			func() { refined.MustNonEmptyList(collection.UnmodifiableList[string]()) })
	})

	t.Run("the wrapped list still rejects insertions", func(t *testing.T) {
		nel := refined.MustNonEmptyList(collection.UnmodifiableList(1))
		assert.False(t, nel.Value().Append(2))
		assert.Equal(t, 1, nel.Len())
	})
}
