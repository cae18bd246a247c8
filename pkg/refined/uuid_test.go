package refined_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typekit-go/typekit/pkg/refined"
)

const validUUID = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

func TestUUIDString(t *testing.T) {
	t.Run("validate passes for a well-formed non-nil UUID", func(t *testing.T) {
		assert.Nil(t, refined.ValidateUUIDString(validUUID))
	})

	t.Run("validate fails for malformed input", func(t *testing.T) {
		err := refined.ValidateUUIDString("not-a-uuid")
		require.NotNil(t, err)
		assert.Equal(t, "UUIDString invalid parameter(s)", err.Message())
		assert.Equal(t, []string{"string must be a valid UUID"}, err.SubMessages())
	})

	t.Run("empty input fails the emptiness and parse predicates", func(t *testing.T) {
		err := refined.ValidateUUIDString("")
		require.NotNil(t, err)
		assert.Equal(t, []string{
			"string must not be empty",
			"string must be a valid UUID",
		}, err.SubMessages())
	})

	t.Run("the nil UUID is rejected", func(t *testing.T) {
		err := refined.ValidateUUIDString("00000000-0000-0000-0000-000000000000")
		require.NotNil(t, err)
		assert.Equal(t, []string{"UUID must not be nil"}, err.SubMessages())
	})

	t.Run("new stores the original textual form", func(t *testing.T) {
		upper := "6BA7B810-9DAD-11D1-80B4-00C04FD430C8"
		s, err := refined.NewUUIDString(upper)
		require.NoError(t, err)
		assert.Equal(t, upper, s.Value())
	})

	t.Run("UUID returns the parsed value", func(t *testing.T) {
		s := refined.MustUUIDString(validUUID)
		assert.Equal(t, uuid.MustParse(validUUID), s.UUID())
		assert.NotEqual(t, uuid.Nil, s.UUID())
	})

	t.Run("must panics for malformed input", func(t *testing.T) {
		assert.PanicsWithError(t,
			"UUIDString invalid parameter(s) - Parameter Validation Failures: [string must be a valid UUID]",
			func() { refined.MustUUIDString("nope") })
	})

	t.Run("ordering follows the wrapped textual form", func(t *testing.T) {
		a := refined.MustUUIDString("16ab0fa4-3c9b-4f2e-8d3a-111111111111")
		b := refined.MustUUIDString("26ab0fa4-3c9b-4f2e-8d3a-222222222222")
		assert.Negative(t, a.Compare(b))
		assert.Positive(t, b.Compare(a))
		assert.Zero(t, a.Compare(a))
	})
}
