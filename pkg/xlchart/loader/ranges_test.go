package loader

import (
	"errors"
	"testing"

	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		input    string
		expected models.CellRange
	}{
		{"A1:D10", models.CellRange{R1: 1, C1: 1, R2: 10, C2: 4}},
		{"$A$1:$D$10", models.CellRange{R1: 1, C1: 1, R2: 10, C2: 4}},
		{"Sheet1!B2:C3", models.CellRange{Sheet: "Sheet1", R1: 2, C1: 2, R2: 3, C2: 3}},
		{"'My Sheet'!$A$1:$B$2", models.CellRange{Sheet: "My Sheet", R1: 1, C1: 1, R2: 2, C2: 2}},
		{"D10:A1", models.CellRange{R1: 1, C1: 1, R2: 10, C2: 4}},
		{"C5", models.CellRange{R1: 5, C1: 3, R2: 5, C2: 3}},
	}

	for _, tt := range tests {
		result, err := ParseRange(tt.input)
		if err != nil {
			t.Errorf("ParseRange(%q) failed: %v", tt.input, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseRange(%q) = %+v, expected %+v", tt.input, result, tt.expected)
		}
	}
}

func TestParseRangeInvalid(t *testing.T) {
	for _, input := range []string{"", "A1:B2:C3", "1A:B2", "Sheet1!"} {
		if _, err := ParseRange(input); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("ParseRange(%q) expected ErrInvalidRange, got %v", input, err)
		}
	}
}

func TestFormatRange(t *testing.T) {
	tests := []struct {
		input    models.CellRange
		expected string
	}{
		{models.CellRange{R1: 2, C1: 1, R2: 7, C2: 1}, "$A$2:$A$7"},
		{models.CellRange{Sheet: "Chart", R1: 2, C1: 2, R2: 7, C2: 2}, "Chart!$B$2:$B$7"},
		{models.CellRange{Sheet: "My Sheet", R1: 1, C1: 1, R2: 1, C2: 2}, "'My Sheet'!$A$1:$B$1"},
		{models.CellRange{Sheet: "Bob's", R1: 1, C1: 1, R2: 1, C2: 1}, "'Bob''s'!$A$1:$A$1"},
	}

	for _, tt := range tests {
		if result := FormatRange(tt.input); result != tt.expected {
			t.Errorf("FormatRange(%+v) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}
