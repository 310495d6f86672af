package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"yieldboard/server/internal/models"
)

func TestAggregateMonthly_GroupsAndSorts(t *testing.T) {
	// Deliberately unordered input spanning three months.
	sales := []models.SaleRecord{
		{Date: date(2024, 9, 15), Price: 1200000},
		{Date: date(2024, 7, 1), Price: 1000000},
		{Date: date(2024, 9, 2), Price: 1400000},
		{Date: date(2024, 8, 20), Price: 1100000},
		{Date: date(2024, 7, 28), Price: 1200000},
	}

	points := AggregateMonthly(sales)

	assert.Len(t, points, 3)
	assert.Equal(t, date(2024, 7, 1), points[0].Month)
	assert.Equal(t, date(2024, 8, 1), points[1].Month)
	assert.Equal(t, date(2024, 9, 1), points[2].Month)

	assert.InDelta(t, 1100000, points[0].AvgPrice, 1e-9)
	assert.Equal(t, 2, points[0].Count)
	assert.InDelta(t, 1100000, points[1].AvgPrice, 1e-9)
	assert.Equal(t, 1, points[1].Count)
	assert.InDelta(t, 1300000, points[2].AvgPrice, 1e-9)
	assert.Equal(t, 2, points[2].Count)
}

func TestAggregateMonthly_OneRowPerDistinctMonth(t *testing.T) {
	sales := []models.SaleRecord{
		{Date: date(2024, 3, 1), Price: 500000},
		{Date: date(2024, 3, 31), Price: 700000},
	}

	points := AggregateMonthly(sales)
	assert.Len(t, points, 1)
	assert.Equal(t, date(2024, 3, 1), points[0].Month)
	assert.InDelta(t, 600000, points[0].AvgPrice, 1e-9)
}

func TestAggregateMonthly_Empty(t *testing.T) {
	points := AggregateMonthly(nil)
	assert.Empty(t, points)
}

func TestTruncateToMonth(t *testing.T) {
	truncated := TruncateToMonth(time.Date(2024, 9, 17, 13, 45, 2, 0, time.UTC))
	assert.Equal(t, date(2024, 9, 1), truncated)
}
