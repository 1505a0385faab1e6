package catalog

import (
	"math"

	"storedash/internal/client/models"
)

// Stats is a derived aggregate over a product snapshot. It is computed on
// demand and never stored, so it cannot diverge from the list it was
// derived from.
type Stats struct {
	// Count of products in the snapshot.
	Count int
	// Categories is the number of distinct categories.
	Categories int
	// AveragePrice is the arithmetic mean price, rounded to 2 decimals.
	// Zero for an empty snapshot.
	AveragePrice float64
}

// ComputeStats aggregates the given snapshot.
func ComputeStats(items []models.Product) Stats {
	if len(items) == 0 {
		return Stats{}
	}

	categories := make(map[string]struct{}, len(items))
	var sum float64
	for _, p := range items {
		categories[p.Category] = struct{}{}
		sum += p.Price
	}

	avg := math.Round(sum/float64(len(items))*100) / 100

	return Stats{
		Count:        len(items),
		Categories:   len(categories),
		AveragePrice: avg,
	}
}
