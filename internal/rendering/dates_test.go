package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDateRange(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected string
	}{
		{"start and end", "2020", "2024", "2020 -- 2024"},
		{"present literal", "Jun 2023", "Present", "Jun 2023 -- Present"},
		{"present lowercase", "Jun 2023", "present", "Jun 2023 -- Present"},
		{"current literal", "Jan 2022", "Current", "Jan 2022 -- Present"},
		{"no end date", "2023", "", "2023"},
		{"no start date", "", "2024", ""},
		{"whitespace end", "2023", "  ", "2023"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDateRange(tt.start, tt.end))
		})
	}
}
