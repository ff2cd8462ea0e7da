package model

import "math"

// Monetary aggregation runs in integer cents. Prices are stored as decimals,
// but summing price*stock in floating point drifts once the dataset grows;
// converting each price to cents once and accumulating in int64 keeps the
// inventory-value figures exact.

// Cents converts a decimal price to integer cents, rounding half away from
// zero.
func Cents(price float64) int64 {
	return int64(math.Round(price * 100))
}

// InventoryValueCents sums price*stock over the given items, in cents.
func InventoryValueCents(items []Item) int64 {
	var total int64
	for _, it := range items {
		total += Cents(it.Price) * int64(it.Stock)
	}
	return total
}
