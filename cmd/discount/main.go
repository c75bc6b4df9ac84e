package main

import (
	"fmt"

	"github.com/sjaensch/guards/discount"
)

func main() {
	fmt.Println(discount.ApplyDiscount(discount.Shoes, 0.25))

	// Taking off twice the price breaks the invariant and aborts.
	fmt.Println(discount.ApplyDiscount(discount.Shoes, 2.0))
}
