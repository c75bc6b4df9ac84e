// Package discount prices products after a fractional discount.
package discount

import (
	"github.com/sjaensch/guards/err"
)

// Product is an item for sale. Price is kept in minor currency units (cents)
// to avoid rounding issues.
type Product struct {
	Name  string
	Price int64
}

// Shoes is the sample product used by the demo.
var Shoes = Product{Name: "Fancy Shoes", Price: 14900}

// ApplyDiscount returns the price of p after taking off the given fraction,
// truncated toward zero. A discount of 0.25 takes off a quarter of the price.
//
// The result is checked to lie within [0, p.Price]. A discount outside [0, 1]
// breaks that check and panics in non-release builds; callers that accept
// discounts from users have to range-check them first.
func ApplyDiscount(p Product, discount float64) int64 {
	price := int64(float64(p.Price) * (1.0 - discount))
	err.Assertf(0 <= price && price <= p.Price, "discounted price %d of %q outside [0, %d]", price, p.Name, p.Price)
	return price
}
