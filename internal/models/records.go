package models

import "time"

// SaleRecord is one property sale transaction from the Sales dataset.
// String fields are trimmed at load time.
type SaleRecord struct {
	Date         time.Time `json:"date"`
	Area         string    `json:"area"`
	PropertyType string    `json:"property_type"`
	Rooms        string    `json:"rooms"`
	Price        float64   `json:"price"`
}

// RentalRecord is one rental contract from the Rentals dataset.
type RentalRecord struct {
	StartDate    time.Time `json:"start_date"`
	Area         string    `json:"area"`
	PropertyType string    `json:"property_type"`
	Rooms        string    `json:"rooms"`
	AnnualAmount float64   `json:"annual_amount"`
}

// YieldStats holds the headline metrics for one filtered query.
type YieldStats struct {
	AvgSalePrice  float64 `json:"avg_sale_price"`
	AvgRentPrice  float64 `json:"avg_rent_price"`
	GrossYieldPct float64 `json:"gross_yield_pct"`
	SaleCount     int     `json:"sale_count"`
	RentalCount   int     `json:"rental_count"`
}

// HasData reports whether the stats were computed from at least one sale
// and one rental contract. A false value must be rendered as "no data",
// never as a 0% yield.
func (s YieldStats) HasData() bool {
	return s.SaleCount > 0 && s.RentalCount > 0
}

// MonthlyPoint is the average sale price for one calendar month.
type MonthlyPoint struct {
	Month    time.Time `json:"month"`
	AvgPrice float64   `json:"avg_price"`
	Count    int       `json:"count"`
}

// ComparisonRow is one long-form row of the multi-area comparison.
type ComparisonRow struct {
	Month    time.Time `json:"month"`
	Area     string    `json:"area"`
	YieldPct float64   `json:"yield_pct"`
}

// ComparisonMatrix is the pivoted chart shape: one row per month, one
// column per area. Values[i][j] is the yield for Months[i] and Areas[j],
// nil where the area has no sales in that month.
type ComparisonMatrix struct {
	Months []time.Time  `json:"months"`
	Areas  []string     `json:"areas"`
	Values [][]*float64 `json:"values"`
}
