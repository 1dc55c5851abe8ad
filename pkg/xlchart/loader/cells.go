package loader

import (
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DateLayout is the text form of cells carrying a date number format.
const DateLayout = "2006-01-02 15:04:05"

// ReadSheetRows reads the raw cell grid of a sheet.
// Cell values are returned unformatted so number formats do not hide numbers,
// except date-formatted numbers, which are rendered with DateLayout.
func ReadSheetRows(f *excelize.File, sheetName string) ([][]string, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	var date1904 bool
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	dates := make(map[int]bool)
	for r, row := range rows {
		for c, v := range row {
			serial, err := strconv.ParseFloat(v, 64)
			if err != nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			if !isDateCell(f, sheetName, cell, dates) {
				continue
			}
			if t, err := excelize.ExcelDateToTime(serial, date1904); err == nil {
				row[c] = t.Format(DateLayout)
			}
		}
	}
	return rows, nil
}

// isDateCell reports whether a numeric cell is styled with a date or time
// number format. Results are cached per style index.
func isDateCell(f *excelize.File, sheetName, cell string, cache map[int]bool) bool {
	switch typ, _ := f.GetCellType(sheetName, cell); typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return false
	}
	idx, err := f.GetCellStyle(sheetName, cell)
	if err != nil || idx == 0 {
		return false
	}
	if isDate, ok := cache[idx]; ok {
		return isDate
	}
	isDate := false
	if style, err := f.GetStyle(idx); err == nil {
		if style.CustomNumFmt != nil {
			isDate = isDateFormat(*style.CustomNumFmt)
		} else {
			isDate = isBuiltInDateFormat(style.NumFmt)
		}
	}
	cache[idx] = isDate
	return isDate
}

// isBuiltInDateFormat reports whether a built-in number format ID is a date
// or time format.
func isBuiltInDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormat reports whether a custom number format code contains date or
// time tokens outside quoted literals and bracketed sections.
func isDateFormat(code string) bool {
	inQuote, inBracket, escaped := false, false, false
	for _, r := range strings.ToLower(code) {
		switch {
		case escaped:
			escaped = false
		case inQuote:
			inQuote = r != '"'
		case inBracket:
			inBracket = r != ']'
		case r == '\\':
			escaped = true
		case r == '"':
			inQuote = true
		case r == '[':
			inBracket = true
		case strings.ContainsRune("ymdhs", r):
			return true
		}
	}
	return false
}

// parseValue attempts to parse a string value as a number.
// Returns nil for empty cells, int64 for integers, float64 for finite
// decimals, or the original string. NaN and Inf spellings stay text.
func parseValue(s string) interface{} {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	return s
}
