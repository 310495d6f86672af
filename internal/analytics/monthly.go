package analytics

import (
	"sort"
	"time"

	"yieldboard/server/internal/models"
)

// AggregateMonthly groups sales by calendar month and averages the price
// per group. The result is ordered chronologically with exactly one point
// per distinct month present in the input.
func AggregateMonthly(sales []models.SaleRecord) []models.MonthlyPoint {
	type bucket struct {
		total float64
		count int
	}

	buckets := make(map[time.Time]*bucket)
	for _, s := range sales {
		month := TruncateToMonth(s.Date)
		b := buckets[month]
		if b == nil {
			b = &bucket{}
			buckets[month] = b
		}
		b.total += s.Price
		b.count++
	}

	points := make([]models.MonthlyPoint, 0, len(buckets))
	for month, b := range buckets {
		points = append(points, models.MonthlyPoint{
			Month:    month,
			AvgPrice: b.total / float64(b.count),
			Count:    b.count,
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Month.Before(points[j].Month)
	})
	return points
}

// TruncateToMonth normalizes a date to the first of its month in UTC.
func TruncateToMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
