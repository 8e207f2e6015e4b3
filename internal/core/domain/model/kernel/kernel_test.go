package kernel_test

import (
	"testing"

	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderID(t *testing.T) {
	t.Run("should create unique order IDs", func(t *testing.T) {
		id1 := kernel.NewOrderID()
		id2 := kernel.NewOrderID()

		require.NoError(t, id1.Validate())
		assert.False(t, id1.IsEqual(id2))
	})

	t.Run("should parse a valid string", func(t *testing.T) {
		id, err := kernel.OrderIDFromString("550e8400-e29b-41d4-a716-446655440000")

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("should reject malformed strings", func(t *testing.T) {
		_, err := kernel.OrderIDFromString("order-42")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		_, err := kernel.OrderIDFromString(uuid.Nil.String())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = kernel.OrderIDFromUUID(uuid.Nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.OrderID
		assert.Equal(t, kernel.ErrOrderIDIsNotConstructed, id.Validate())
	})

	t.Run("should round-trip through text", func(t *testing.T) {
		id := kernel.NewOrderID()
		text, err := id.MarshalText()
		require.NoError(t, err)

		var parsed kernel.OrderID
		require.NoError(t, parsed.UnmarshalText(text))
		assert.True(t, id.IsEqual(parsed))
	})

	t.Run("can be used as a map key", func(t *testing.T) {
		id := kernel.NewOrderID()
		copyOfID, err := kernel.OrderIDFromUUID(id.UUID())
		require.NoError(t, err)

		m := map[kernel.OrderID]int{id: 1}
		assert.Equal(t, 1, m[copyOfID])
	})
}

func TestRoundWeight(t *testing.T) {
	assert.InDelta(t, 0.3, kernel.RoundWeight(0.1+0.2), 0)
	assert.InDelta(t, 1.23456789, kernel.RoundWeight(1.234567891), 0)
	assert.InDelta(t, 1.23456790, kernel.RoundWeight(1.234567895), 1e-12)
}

func TestWeightArithmetic(t *testing.T) {
	t.Run("add and subtract are exact to eight places", func(t *testing.T) {
		w := 0.0
		for range 10 {
			w = kernel.AddWeight(w, 0.1)
		}
		assert.InDelta(t, 1.0, w, 0)

		for range 10 {
			w = kernel.SubWeight(w, 0.1)
		}
		assert.InDelta(t, 0.0, w, 0)
	})

	t.Run("sum of no weights is zero", func(t *testing.T) {
		assert.Zero(t, kernel.SumWeights())
	})

	t.Run("sum rounds once", func(t *testing.T) {
		assert.InDelta(t, 0.6, kernel.SumWeights(0.1, 0.2, 0.3), 0)
	})
}

func TestParseDimensions(t *testing.T) {
	testCases := []struct {
		input    string
		expected kernel.Dimensions
	}{
		{"10 x 5.5 x 2", kernel.Dimensions{Length: 10, Width: 5.5, Height: 2}},
		{"10X5X2", kernel.Dimensions{Length: 10, Width: 5, Height: 2}},
		{"10 x 5", kernel.Dimensions{Length: 10, Width: 5}},
		{"", kernel.Dimensions{}},
		{"a x b x c", kernel.Dimensions{}},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, kernel.ParseDimensions(tc.input))
		})
	}

	assert.True(t, kernel.Dimensions{}.IsZero())
	assert.False(t, kernel.Dimensions{Height: 1}.IsZero())
}

func TestParseNumber(t *testing.T) {
	assert.InDelta(t, 12.5, kernel.ParseNumber("12.5"), 0)
	assert.InDelta(t, 12.5, kernel.ParseNumber(" 12.5kg "), 0)
	assert.InDelta(t, -3.0, kernel.ParseNumber("-3"), 0)
	assert.InDelta(t, 7.0, kernel.ParseNumber("7."), 0)
	assert.Zero(t, kernel.ParseNumber("heavy"))
	assert.Zero(t, kernel.ParseNumber(""))
	assert.Zero(t, kernel.ParseNumber("-"))
}
