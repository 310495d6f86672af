package config

// Window represents a selectable look-back period
type Window struct {
	Months int    `json:"months"`
	Label  string `json:"label"`
}

// SupportedWindows is the fixed set of look-back periods offered by the dashboard
var SupportedWindows = []Window{
	{Months: 1, Label: "1 month"},
	{Months: 3, Label: "3 months"},
	{Months: 6, Label: "6 months"},
	{Months: 12, Label: "1 year"},
	{Months: 24, Label: "2 years"},
	{Months: 36, Label: "3 years"},
	{Months: 60, Label: "5 years"},
}

// WindowMonths returns the month counts of all supported windows
func WindowMonths() []int {
	months := make([]int, len(SupportedWindows))
	for i, w := range SupportedWindows {
		months[i] = w.Months
	}
	return months
}

// WindowByMonths returns a window configuration by its month count
func WindowByMonths(months int) *Window {
	for _, w := range SupportedWindows {
		if w.Months == months {
			return &w
		}
	}
	return nil
}
