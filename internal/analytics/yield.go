package analytics

import "yieldboard/server/internal/models"

// ComputeYield derives the gross rental yield metrics from one filtered
// pair of subsets. Averages are 0 for empty input; the yield is computed
// only when both averages are strictly positive, otherwise it stays 0.
// Callers must check YieldStats.HasData before presenting the yield.
func ComputeYield(sales []models.SaleRecord, rentals []models.RentalRecord) models.YieldStats {
	stats := models.YieldStats{
		SaleCount:   len(sales),
		RentalCount: len(rentals),
	}

	if len(sales) > 0 {
		var total float64
		for _, s := range sales {
			total += s.Price
		}
		stats.AvgSalePrice = total / float64(len(sales))
	}

	if len(rentals) > 0 {
		var total float64
		for _, r := range rentals {
			total += r.AnnualAmount
		}
		stats.AvgRentPrice = total / float64(len(rentals))
	}

	if stats.AvgSalePrice > 0 && stats.AvgRentPrice > 0 {
		stats.GrossYieldPct = stats.AvgRentPrice / stats.AvgSalePrice * 100
	}

	return stats
}
