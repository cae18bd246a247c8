package result_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typekit-go/typekit/pkg/result"
)

func TestOk(t *testing.T) {
	t.Run("populates the success arm", func(t *testing.T) {
		r := result.Ok(42)
		assert.True(t, r.IsOk())
		assert.False(t, r.IsErr())
		assert.NoError(t, r.Err())

		v, err := r.Value()
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("MustValue returns the value", func(t *testing.T) {
		assert.Equal(t, "hello", result.Ok("hello").MustValue())
	})
}

func TestErr(t *testing.T) {
	t.Run("populates the failure arm", func(t *testing.T) {
		boom := errors.New("boom")
		r := result.Err[int](boom)
		assert.False(t, r.IsOk())
		assert.True(t, r.IsErr())
		assert.ErrorIs(t, r.Err(), boom)

		v, err := r.Value()
		assert.Zero(t, v)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("nil error is normalized to ErrNoValue", func(t *testing.T) {
		r := result.Err[int](nil)
		assert.True(t, r.IsErr())
		assert.ErrorIs(t, r.Err(), result.ErrNoValue)
	})

	t.Run("MustValue panics with the failure arm's error", func(t *testing.T) {
		boom := errors.New("boom")
		assert.PanicsWithError(t, "boom", func() {
			result.Err[int](boom).MustValue()
		})
	})

	t.Run("ValueOr falls back", func(t *testing.T) {
		assert.Equal(t, 7, result.Err[int](errors.New("boom")).ValueOr(7))
		assert.Equal(t, 3, result.Ok(3).ValueOr(7))
	})
}

func TestOf(t *testing.T) {
	t.Run("nil error yields success", func(t *testing.T) {
		r := result.Of(10, nil)
		assert.True(t, r.IsOk())
		assert.Equal(t, 10, r.MustValue())
	})

	t.Run("non-nil error yields failure and discards the value", func(t *testing.T) {
		boom := errors.New("boom")
		r := result.Of(10, boom)
		assert.True(t, r.IsErr())
		assert.Equal(t, 0, r.ValueOr(0))
	})

	t.Run("bridges a function returning a pair", func(t *testing.T) {
		r := result.Of(strconv.Atoi("123"))
		assert.True(t, r.IsOk())
		assert.Equal(t, 123, r.MustValue())

		r = result.Of(strconv.Atoi("nope"))
		assert.True(t, r.IsErr())
	})
}

func TestMap(t *testing.T) {
	t.Run("transforms the success arm", func(t *testing.T) {
		r := result.Map(result.Ok(21), func(v int) int { return v * 2 })
		assert.Equal(t, 42, r.MustValue())
	})

	t.Run("changes the value type", func(t *testing.T) {
		r := result.Map(result.Ok(42), strconv.Itoa)
		assert.Equal(t, "42", r.MustValue())
	})

	t.Run("carries failures through untouched", func(t *testing.T) {
		boom := errors.New("boom")
		r := result.Map(result.Err[int](boom), strconv.Itoa)
		assert.True(t, r.IsErr())
		assert.ErrorIs(t, r.Err(), boom)
	})
}

func TestMapErr(t *testing.T) {
	t.Run("wraps the failure arm", func(t *testing.T) {
		boom := errors.New("boom")
		r := result.Err[int](boom).MapErr(func(err error) error {
			return errors.Join(errors.New("context"), err)
		})
		assert.ErrorIs(t, r.Err(), boom)
		assert.Contains(t, r.Err().Error(), "context")
	})

	t.Run("success passes through unchanged", func(t *testing.T) {
		called := false
		r := result.Ok(1).MapErr(func(err error) error { called = true; return err })
		assert.True(t, r.IsOk())
		assert.False(t, called)
	})

	t.Run("fn returning nil keeps the original error", func(t *testing.T) {
		boom := errors.New("boom")
		r := result.Err[int](boom).MapErr(func(error) error { return nil })
		assert.ErrorIs(t, r.Err(), boom)
	})
}
