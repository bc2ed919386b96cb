// Package economy contains the vendor restock policy.
// Ranges and counts live here as named constants so the restocker can be
// tuned and tested without touching engine code.
package economy

import "math/rand"

const (
	// MinVendorCount is the vendor floor every server is topped up to.
	MinVendorCount = 3

	// StockMin and StockMax bound the number of pooches a vendor offers
	// after a restock, inclusive.
	StockMin = 2
	StockMax = 5

	// PriceMin and PriceMax bound the price of a stocked pooch, inclusive.
	PriceMin = 50
	PriceMax = 150

	// HealthyBaseMin and HealthyBaseMax bound the base health of a freshly
	// generated pooch, inclusive. Newborns draw from the same range.
	HealthyBaseMin = 8
	HealthyBaseMax = 12
)

// RollStockSize draws a vendor stock size within [StockMin, StockMax].
func RollStockSize(rng *rand.Rand) int {
	return StockMin + rng.Intn(StockMax-StockMin+1)
}

// RollPrice draws a stock price within [PriceMin, PriceMax].
func RollPrice(rng *rand.Rand) int {
	return PriceMin + rng.Intn(PriceMax-PriceMin+1)
}

// RollBaseHealth draws a base health within [HealthyBaseMin, HealthyBaseMax].
func RollBaseHealth(rng *rand.Rand) int {
	return HealthyBaseMin + rng.Intn(HealthyBaseMax-HealthyBaseMin+1)
}
