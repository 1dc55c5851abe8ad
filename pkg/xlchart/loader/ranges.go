package loader

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a range reference such as A1:D10, $A$1:$D$10 or
// 'Sheet Name'!A1:D10. A single cell reference selects one cell.
func ParseRange(ref string) (models.CellRange, error) {
	var area models.CellRange
	ref = strings.TrimSpace(ref)

	// Split by ! to separate sheet name and range
	rangeStr := ref
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		area.Sheet = strings.ReplaceAll(strings.Trim(ref[:idx], "'"), "''", "'")
		rangeStr = ref[idx+1:]
	}

	// Remove $ signs
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return area, fmt.Errorf("%w: %q", ErrInvalidRange, ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return area, fmt.Errorf("%w: %q: %v", ErrInvalidRange, ref, err)
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return area, fmt.Errorf("%w: %q: %v", ErrInvalidRange, ref, err)
	}

	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	area.R1, area.C1, area.R2, area.C2 = startRow, startCol, endRow, endCol
	return area, nil
}

// FormatRange renders area as an absolute reference like Data!$A$1:$B$7.
// Sheet names other than letters, digits and underscores are quoted.
func FormatRange(area models.CellRange) string {
	start, _ := excelize.CoordinatesToCellName(area.C1, area.R1, true)
	end, _ := excelize.CoordinatesToCellName(area.C2, area.R2, true)
	ref := start + ":" + end
	if area.Sheet == "" {
		return ref
	}
	if strings.IndexFunc(area.Sheet, needsQuote) >= 0 {
		return "'" + strings.ReplaceAll(area.Sheet, "'", "''") + "'!" + ref
	}
	return area.Sheet + "!" + ref
}

func needsQuote(r rune) bool {
	return !(r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r))
}
