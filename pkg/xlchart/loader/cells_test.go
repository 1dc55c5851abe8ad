package loader

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadSheetRows(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "A3", "Text")

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	rows, err := ReadSheetRows(f2, sheetName)
	if err != nil {
		t.Fatalf("ReadSheetRows failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "Header1" {
		t.Errorf("Expected 'Header1', got %v", rows[0][0])
	}
	if parseValue(rows[1][0]) != int64(100) {
		t.Errorf("Expected int64(100), got %v (type: %T)", parseValue(rows[1][0]), parseValue(rows[1][0]))
	}
	if parseValue(rows[1][1]) != 200.5 {
		t.Errorf("Expected 200.5, got %v", parseValue(rows[1][1]))
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", nil},
		{"  ", nil},
		{"NaN", "NaN"},
		{"inf", "inf"},
		{"-Infinity", "-Infinity"},
		{"1e400", "1e400"},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestIsDateFormat(t *testing.T) {
	tests := []struct {
		code     string
		expected bool
	}{
		{"yyyy-mm-dd", true},
		{"d/m/yy h:mm", true},
		{"[$-409]mmmm d, yyyy", true},
		{"hh:mm:ss", true},
		{"General", false},
		{"#,##0.00", false},
		{"0.00E+00", false},
		{`#,##0 "days"`, false},
		{"[Red]0.00", false},
		{`0\h`, false},
	}

	for _, tt := range tests {
		if result := isDateFormat(tt.code); result != tt.expected {
			t.Errorf("isDateFormat(%q) = %v, expected %v", tt.code, result, tt.expected)
		}
	}
}

func TestIsBuiltInDateFormat(t *testing.T) {
	for _, id := range []int{14, 22, 45, 47} {
		if !isBuiltInDateFormat(id) {
			t.Errorf("Expected format %d to be a date format", id)
		}
	}
	for _, id := range []int{0, 1, 3, 10, 49} {
		if isBuiltInDateFormat(id) {
			t.Errorf("Expected format %d not to be a date format", id)
		}
	}
}
