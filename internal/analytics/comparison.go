package analytics

import (
	"sort"
	"time"

	"yieldboard/server/internal/models"
)

// BuildComparison computes the monthly yield series for each requested
// area, in input order. An area with no matching sales contributes no
// rows. The monthly yield divides the area's rental average over the whole
// window by that month's average sale price.
func BuildComparison(sales []models.SaleRecord, rentals []models.RentalRecord, areas []string, propertyType, rooms string, minDate time.Time) []models.ComparisonRow {
	rows := make([]models.ComparisonRow, 0)

	for _, area := range areas {
		criteria := Criteria{
			Area:         area,
			PropertyType: propertyType,
			Rooms:        rooms,
			MinDate:      minDate,
		}

		areaSales := FilterSales(sales, criteria)
		if len(areaSales) == 0 {
			continue
		}

		var avgRent float64
		if areaRentals := FilterRentals(rentals, criteria); len(areaRentals) > 0 {
			var total float64
			for _, r := range areaRentals {
				total += r.AnnualAmount
			}
			avgRent = total / float64(len(areaRentals))
		}

		for _, point := range AggregateMonthly(areaSales) {
			var yieldPct float64
			if avgRent > 0 && point.AvgPrice > 0 {
				yieldPct = avgRent / point.AvgPrice * 100
			}
			rows = append(rows, models.ComparisonRow{
				Month:    point.Month,
				Area:     area,
				YieldPct: yieldPct,
			})
		}
	}

	return rows
}

// Pivot reshapes long-form comparison rows into the month-by-area matrix
// the multi-series chart consumes. Months are sorted ascending; areas keep
// their first-appearance order; cells without a value stay nil.
func Pivot(rows []models.ComparisonRow) models.ComparisonMatrix {
	matrix := models.ComparisonMatrix{
		Months: []time.Time{},
		Areas:  []string{},
		Values: [][]*float64{},
	}
	if len(rows) == 0 {
		return matrix
	}

	monthSet := make(map[time.Time]struct{})
	areaIndex := make(map[string]int)
	for _, row := range rows {
		monthSet[row.Month] = struct{}{}
		if _, ok := areaIndex[row.Area]; !ok {
			areaIndex[row.Area] = len(matrix.Areas)
			matrix.Areas = append(matrix.Areas, row.Area)
		}
	}

	for month := range monthSet {
		matrix.Months = append(matrix.Months, month)
	}
	sort.Slice(matrix.Months, func(i, j int) bool {
		return matrix.Months[i].Before(matrix.Months[j])
	})

	monthIndex := make(map[time.Time]int, len(matrix.Months))
	for i, month := range matrix.Months {
		monthIndex[month] = i
	}

	matrix.Values = make([][]*float64, len(matrix.Months))
	for i := range matrix.Values {
		matrix.Values[i] = make([]*float64, len(matrix.Areas))
	}
	for _, row := range rows {
		value := row.YieldPct
		matrix.Values[monthIndex[row.Month]][areaIndex[row.Area]] = &value
	}

	return matrix
}
