// Package loader reads CSV files and workbooks into datasets.
package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat indicates a file extension the loader cannot read.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrNoData indicates the selected sheet or range holds no header row.
var ErrNoData = errors.New("no data found")

// ErrSheetNotFound indicates the requested sheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrInvalidRange indicates a malformed range reference.
var ErrInvalidRange = errors.New("invalid range")

// Format is a supported input format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// DetectFormat maps a file name to its input format.
func DetectFormat(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: .csv, .xlsx, .xlsm)", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

// Options configures how a table is located in the input.
type Options struct {
	// Sheet selects the workbook sheet. Empty selects the first sheet.
	Sheet string
	// Range restricts the table to a cell range (e.g. "A1:D10").
	// Empty selects the bounding box of all non-empty cells.
	Range string
}

// LoadFile loads a dataset from a file on disk.
func LoadFile(path string, opts Options) (*models.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f, filepath.Base(path), opts)
}

// Load loads a dataset from r, choosing the format from filename.
func Load(r io.Reader, filename string, opts Options) (*models.Dataset, error) {
	format, err := DetectFormat(filename)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatCSV:
		return LoadCSV(r, filename, opts)
	default:
		return LoadWorkbook(r, filename, opts)
	}
}

// LoadCSV loads a comma-separated table whose first non-empty row is the header.
func LoadCSV(r io.Reader, name string, opts Options) (*models.Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	return datasetFromGrid(name, rows, opts.Range)
}

// LoadWorkbook loads a sheet of an xlsx workbook.
func LoadWorkbook(r io.Reader, name string, opts Options) (*models.Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName := opts.Sheet
	rangeRef := opts.Range
	if rangeRef != "" {
		area, err := ParseRange(rangeRef)
		if err != nil {
			return nil, err
		}
		if area.Sheet != "" {
			sheetName = area.Sheet
		}
	}

	sheetName, err = resolveSheet(f, sheetName)
	if err != nil {
		return nil, err
	}

	rows, err := ReadSheetRows(f, sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	return datasetFromGrid(name, rows, rangeRef)
}

// SheetNames lists the sheets of a workbook in order.
func SheetNames(r io.Reader) ([]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return f.GetSheetList(), nil
}

func resolveSheet(f *excelize.File, want string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", ErrNoData
	}
	if want == "" {
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == want {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrSheetNotFound, want)
}

func datasetFromGrid(name string, rows [][]string, rangeRef string) (*models.Dataset, error) {
	var area models.CellRange
	if rangeRef != "" {
		var err error
		if area, err = ParseRange(rangeRef); err != nil {
			return nil, err
		}
	} else {
		var ok bool
		if area, ok = tableRange(rows); !ok {
			return nil, ErrNoData
		}
	}

	return buildDataset(name, rows, area)
}
