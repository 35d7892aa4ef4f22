package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePrice(t *testing.T) {
	tests := []struct {
		name     string
		base     int64
		discount float64
		want     int64
	}{
		{"no discount", 1000, 0, 1000},
		{"twenty percent", 1000, 20, 800},
		{"full discount", 1000, 100, 0},
		{"half-up rounding", 999, 50, 500},
		{"fraction below half rounds down", 1003, 25, 752},
		{"zero base", 0, 50, 0},
		{"discount clamped below zero", 1000, -10, 1000},
		{"discount clamped above hundred", 1000, 150, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputePrice(tt.base, tt.discount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputePrice_NegativeBase(t *testing.T) {
	_, err := ComputePrice(-1, 10)
	assert.ErrorIs(t, err, ErrNegativeBasePrice)
}

// The sellable price never exceeds MRP and never increases as the discount
// grows.
func TestComputePrice_MonotoneInDiscount(t *testing.T) {
	bases := []int64{0, 1, 99, 100, 999, 1000, 123456}

	for _, base := range bases {
		prev := base + 1
		for d := 0; d <= 100; d++ {
			price, err := ComputePrice(base, float64(d))
			require.NoError(t, err)
			assert.LessOrEqual(t, price, base, "price above MRP for base=%d d=%d", base, d)
			assert.LessOrEqual(t, price, prev, "price increased for base=%d d=%d", base, d)
			prev = price
		}
	}
}

func TestLineTotal(t *testing.T) {
	assert.Equal(t, int64(400), LineTotal(200, 2))
	assert.Equal(t, int64(0), LineTotal(150, 0))
}

func TestCartTotal(t *testing.T) {
	assert.Equal(t, int64(0), CartTotal(nil), "empty cart totals to zero")

	lines := []Line{
		{Price: 150, Quantity: 1},
		{Price: 200, Quantity: 2},
	}
	assert.Equal(t, int64(550), CartTotal(lines))
}
