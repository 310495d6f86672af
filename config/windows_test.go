package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupportedWindows(t *testing.T) {
	assert.Equal(t, []int{1, 3, 6, 12, 24, 36, 60}, WindowMonths())
}

func TestWindowByMonths(t *testing.T) {
	tests := []struct {
		name     string
		months   int
		expected *Window
	}{
		{
			name:     "One month window",
			months:   1,
			expected: &Window{Months: 1, Label: "1 month"},
		},
		{
			name:     "One year window",
			months:   12,
			expected: &Window{Months: 12, Label: "1 year"},
		},
		{
			name:     "Five year window",
			months:   60,
			expected: &Window{Months: 60, Label: "5 years"},
		},
		{
			name:     "Unsupported window",
			months:   7,
			expected: nil,
		},
		{
			name:     "Zero months",
			months:   0,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WindowByMonths(tt.months))
		})
	}
}
