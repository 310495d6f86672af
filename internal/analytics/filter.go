package analytics

import (
	"strings"
	"time"

	"yieldboard/server/internal/models"
)

// Criteria describes one dashboard query. Area, property type and room
// category are matched case-insensitively against fields that were trimmed
// at load time; MinDate is inclusive.
type Criteria struct {
	Area         string
	PropertyType string
	Rooms        string
	MinDate      time.Time
}

// FilterSales returns every sale matching the criteria. An empty result is
// a valid empty slice, never an error.
func FilterSales(records []models.SaleRecord, c Criteria) []models.SaleRecord {
	matched := make([]models.SaleRecord, 0)
	for _, r := range records {
		if c.matches(r.Area, r.PropertyType, r.Rooms, r.Date) {
			matched = append(matched, r)
		}
	}
	return matched
}

// FilterRentals returns every rental contract matching the criteria.
func FilterRentals(records []models.RentalRecord, c Criteria) []models.RentalRecord {
	matched := make([]models.RentalRecord, 0)
	for _, r := range records {
		if c.matches(r.Area, r.PropertyType, r.Rooms, r.StartDate) {
			matched = append(matched, r)
		}
	}
	return matched
}

func (c Criteria) matches(area, propertyType, rooms string, date time.Time) bool {
	return strings.EqualFold(area, c.Area) &&
		strings.EqualFold(propertyType, c.PropertyType) &&
		strings.EqualFold(rooms, c.Rooms) &&
		!date.Before(c.MinDate)
}
