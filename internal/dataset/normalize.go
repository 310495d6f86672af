package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"yieldboard/server/internal/models"
)

const (
	SalesFilename   = "Sales.csv"
	RentalsFilename = "Rentals.csv"
)

// Column names are the upstream export's compatibility contract.
const (
	colInstanceDate    = "instance_date"
	colMasterProject   = "master_project_en"
	colPropertySubType = "property_sub_type_en"
	colRooms           = "rooms_en"
	colActualWorth     = "actual_worth"

	colContractStart  = "contract_start_date"
	colEjariType      = "ejari_property_type_en"
	colEjariSubTypeID = "ejari_property_sub_type_id"
	colAnnualAmount   = "annual_amount"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// LoadSales parses the sales CSV into normalized records. Dates are parsed
// and string fields trimmed here, once, so filters can match user-selected
// option strings exactly. Any malformed row fails the whole load; silently
// dropping rows would skew the averages.
func LoadSales(path string) ([]models.SaleRecord, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, fmt.Errorf("sales dataset: %w", err)
	}

	idx, err := indexHeader(rows[0], colInstanceDate, colMasterProject, colPropertySubType, colRooms, colActualWorth)
	if err != nil {
		return nil, fmt.Errorf("sales dataset: %w", err)
	}

	records := make([]models.SaleRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		date, err := parseDate(row[idx[colInstanceDate]])
		if err != nil {
			return nil, fmt.Errorf("sales dataset row %d: %w", i+2, err)
		}
		price, err := parseAmount(row[idx[colActualWorth]])
		if err != nil {
			return nil, fmt.Errorf("sales dataset row %d: %w", i+2, err)
		}
		records = append(records, models.SaleRecord{
			Date:         date,
			Area:         strings.TrimSpace(row[idx[colMasterProject]]),
			PropertyType: strings.TrimSpace(row[idx[colPropertySubType]]),
			Rooms:        strings.TrimSpace(row[idx[colRooms]]),
			Price:        price,
		})
	}
	return records, nil
}

// LoadRentals parses the rentals CSV into normalized records.
func LoadRentals(path string) ([]models.RentalRecord, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, fmt.Errorf("rentals dataset: %w", err)
	}

	idx, err := indexHeader(rows[0], colContractStart, colMasterProject, colEjariType, colEjariSubTypeID, colAnnualAmount)
	if err != nil {
		return nil, fmt.Errorf("rentals dataset: %w", err)
	}

	records := make([]models.RentalRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		startDate, err := parseDate(row[idx[colContractStart]])
		if err != nil {
			return nil, fmt.Errorf("rentals dataset row %d: %w", i+2, err)
		}
		amount, err := parseAmount(row[idx[colAnnualAmount]])
		if err != nil {
			return nil, fmt.Errorf("rentals dataset row %d: %w", i+2, err)
		}
		records = append(records, models.RentalRecord{
			StartDate:    startDate,
			Area:         strings.TrimSpace(row[idx[colMasterProject]]),
			PropertyType: strings.TrimSpace(row[idx[colEjariType]]),
			Rooms:        strings.TrimSpace(row[idx[colEjariSubTypeID]]),
			AnnualAmount: amount,
		})
	}
	return records, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s contains no header row", path)
	}
	return rows, nil
}

func indexHeader(header []string, required ...string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return idx, nil
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}

func parseAmount(value string) (float64, error) {
	value = strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("non-numeric amount %q", value)
	}
	if amount < 0 {
		return 0, fmt.Errorf("negative amount %q", value)
	}
	return amount, nil
}
