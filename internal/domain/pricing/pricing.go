// internal/domain/pricing/pricing.go
package pricing

import (
	"fmt"
	"math"
)

// ErrNegativeBasePrice is returned when a sellable price is requested for a
// negative list price. Discount values outside [0,100] are clamped instead,
// so a sloppy admin form can never produce a price above MRP.
var ErrNegativeBasePrice = fmt.Errorf("base price cannot be negative")

// Line is a priced quantity, the unit the cart total is computed from.
type Line struct {
	Price    int64
	Quantity int
}

// ComputePrice computes the sellable price from the list price and discount
// percentage. Prices are whole currency units; rounding is half-up.
func ComputePrice(basePrice int64, discountPercent float64) (int64, error) {
	if basePrice < 0 {
		return 0, ErrNegativeBasePrice
	}
	discountPercent = ClampDiscount(discountPercent)
	price := int64(math.Round(float64(basePrice) * (1 - discountPercent/100)))
	return price, nil
}

// ClampDiscount clamps a discount percentage into [0,100].
func ClampDiscount(discountPercent float64) float64 {
	if discountPercent < 0 {
		return 0
	}
	if discountPercent > 100 {
		return 100
	}
	return discountPercent
}

// LineTotal returns price * quantity for a single line.
func LineTotal(price int64, quantity int) int64 {
	return price * int64(quantity)
}

// CartTotal sums the line totals of already-priced lines. Each line price is
// rounded once at compute time; the total is an exact sum, never re-rounded.
func CartTotal(lines []Line) int64 {
	var total int64
	for _, line := range lines {
		total += LineTotal(line.Price, line.Quantity)
	}
	return total
}
