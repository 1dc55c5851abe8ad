package loader

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
)

// findDataBounds finds the bounding box of non-empty cells (0-based).
// minRow is -1 when the grid has no data.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// tableRange returns the 1-based range covering all non-empty cells.
func tableRange(rows [][]string) (models.CellRange, bool) {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return models.CellRange{}, false
	}
	return models.CellRange{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}, true
}

// cellAt returns the cell at 1-based coordinates, or "" outside the grid.
func cellAt(rows [][]string, r, c int) string {
	if r < 1 || r > len(rows) {
		return ""
	}
	row := rows[r-1]
	if c < 1 || c > len(row) {
		return ""
	}
	return row[c-1]
}

// buildDataset turns the grid inside area into a dataset.
// The first row of the area is the header; fully blank data rows are skipped.
func buildDataset(name string, rows [][]string, area models.CellRange) (*models.Dataset, error) {
	area = clipToGrid(area, rows)
	if area.R2 < area.R1 || area.C2 < area.C1 {
		return nil, ErrNoData
	}

	width := area.C2 - area.C1 + 1
	headers := make([]string, width)
	for i := range headers {
		headers[i] = cellAt(rows, area.R1, area.C1+i)
	}
	headers = uniqueHeaders(headers)

	columns := make([]models.Column, width)
	for i, h := range headers {
		columns[i] = models.Column{Name: h, Cells: []interface{}{}}
	}

	for r := area.R1 + 1; r <= area.R2; r++ {
		values := make([]interface{}, width)
		blank := true
		for i := range values {
			values[i] = parseValue(cellAt(rows, r, area.C1+i))
			if values[i] != nil {
				blank = false
			}
		}
		if blank {
			continue
		}
		for i, v := range values {
			columns[i].Cells = append(columns[i].Cells, v)
		}
	}

	return models.NewDataset(name, columns)
}

// clipToGrid intersects area with the extent of the loaded grid. Cells past
// the grid are blank, so clipping never changes the columns that hold data.
func clipToGrid(area models.CellRange, rows [][]string) models.CellRange {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if area.R2 > len(rows) {
		area.R2 = len(rows)
	}
	if area.C2 > width {
		area.C2 = width
	}
	return area
}

// uniqueHeaders names blank headers "Unnamed: <idx>" and suffixes repeats
// with ".1", ".2", ... so every column name is unique.
func uniqueHeaders(headers []string) []string {
	out := make([]string, len(headers))
	used := make(map[string]bool, len(headers))
	next := make(map[string]int, len(headers))

	for i, h := range headers {
		if h == "" {
			h = "Unnamed: " + strconv.Itoa(i)
		}
		name := h
		for used[name] {
			next[h]++
			name = fmt.Sprintf("%s.%d", h, next[h])
		}
		used[name] = true
		out[i] = name
	}
	return out
}
