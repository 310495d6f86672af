package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSales(t *testing.T) {
	path := writeTempCSV(t, "Sales.csv",
		"transaction_id,instance_date,master_project_en,property_sub_type_en,rooms_en,actual_worth\n"+
			"1,2024-09-10, Business Bay ,Apartment, Studio ,1100000\n"+
			"2,2024-08-02,Dubai Marina,Apartment,1 B/R,1500000.50\n")

	records, err := LoadSales(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Fields are trimmed once at load time.
	assert.Equal(t, "Business Bay", records[0].Area)
	assert.Equal(t, "Studio", records[0].Rooms)
	assert.Equal(t, time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC), records[0].Date)
	assert.Equal(t, 1100000.0, records[0].Price)
	assert.Equal(t, 1500000.50, records[1].Price)
}

func TestLoadSales_MissingColumn(t *testing.T) {
	path := writeTempCSV(t, "Sales.csv",
		"instance_date,master_project_en,rooms_en,actual_worth\n"+
			"2024-09-10,Business Bay,Studio,1100000\n")

	_, err := LoadSales(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "property_sub_type_en")
}

func TestLoadSales_MalformedDateFailsWholeLoad(t *testing.T) {
	path := writeTempCSV(t, "Sales.csv",
		"instance_date,master_project_en,property_sub_type_en,rooms_en,actual_worth\n"+
			"2024-09-10,Business Bay,Apartment,Studio,1100000\n"+
			"not-a-date,Business Bay,Apartment,Studio,1200000\n")

	_, err := LoadSales(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
}

func TestLoadSales_NegativePriceRejected(t *testing.T) {
	path := writeTempCSV(t, "Sales.csv",
		"instance_date,master_project_en,property_sub_type_en,rooms_en,actual_worth\n"+
			"2024-09-10,Business Bay,Apartment,Studio,-5\n")

	_, err := LoadSales(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative amount")
}

func TestLoadRentals(t *testing.T) {
	path := writeTempCSV(t, "Rentals.csv",
		"contract_start_date,master_project_en,ejari_property_type_en,ejari_property_sub_type_id,annual_amount\n"+
			"2024-09-03, Business Bay ,Apartment, Studio ,84000\n")

	records, err := LoadRentals(path)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "Business Bay", records[0].Area)
	assert.Equal(t, "Apartment", records[0].PropertyType)
	assert.Equal(t, "Studio", records[0].Rooms)
	assert.Equal(t, time.Date(2024, 9, 3, 0, 0, 0, 0, time.UTC), records[0].StartDate)
	assert.Equal(t, 84000.0, records[0].AnnualAmount)
}

func TestLoadRentals_MissingFile(t *testing.T) {
	_, err := LoadRentals(filepath.Join(t.TempDir(), "Rentals.csv"))
	assert.Error(t, err)
}

func TestParseDate_Layouts(t *testing.T) {
	tests := []struct {
		value    string
		expected time.Time
	}{
		{"2024-09-10", time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC)},
		{"2024-09-10 14:30:00", time.Date(2024, 9, 10, 14, 30, 0, 0, time.UTC)},
		{" 2024-09-10 ", time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		parsed, err := parseDate(tt.value)
		assert.NoError(t, err)
		assert.Equal(t, tt.expected, parsed)
	}

	_, err := parseDate("10/09/2024")
	assert.Error(t, err)
}

func TestParseAmount_ThousandsSeparators(t *testing.T) {
	amount, err := parseAmount("1,200,000")
	assert.NoError(t, err)
	assert.Equal(t, 1200000.0, amount)
}
