// Package workbook writes datasets with native charts to xlsx files and
// lists the charts stored in existing workbooks.
package workbook

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/ukaji3/xlchart-go/pkg/xlchart"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/loader"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
	"github.com/xuri/excelize/v2"
)

const (
	// DataSheet holds the full input dataset.
	DataSheet = "Data"
	// ChartSheet holds the charted series and the chart itself.
	ChartSheet = "Chart"
	// ChartAnchor is the top-left cell of the chart on ChartSheet.
	ChartAnchor = "D2"
)

// ChartTypes maps chart kinds to excelize chart types.
// Histograms are written as column charts over their bins.
var ChartTypes = map[models.Kind]excelize.ChartType{
	models.KindBar:       excelize.Col,
	models.KindLine:      excelize.Line,
	models.KindPie:       excelize.Pie,
	models.KindDoughnut:  excelize.Doughnut,
	models.KindScatter:   excelize.Scatter,
	models.KindArea:      excelize.Area,
	models.KindHistogram: excelize.Col,
}

// Write writes ds and a native chart described by spec as an xlsx workbook.
func Write(w io.Writer, ds *models.Dataset, spec *models.ChartSpec) error {
	chartType, ok := ChartTypes[spec.Kind]
	if !ok {
		return fmt.Errorf("%w: %q", xlchart.ErrUnknownKind, spec.Kind)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), DataSheet); err != nil {
		return err
	}
	if err := writeDataset(f, ds); err != nil {
		return fmt.Errorf("failed to write data sheet: %w", err)
	}

	if _, err := f.NewSheet(ChartSheet); err != nil {
		return err
	}
	header, rows := chartRows(spec)
	if err := writeRows(f, ChartSheet, header, rows); err != nil {
		return fmt.Errorf("failed to write chart sheet: %w", err)
	}

	n := len(rows)
	series := excelize.ChartSeries{
		Name:       loader.FormatRange(models.CellRange{Sheet: ChartSheet, R1: 1, C1: 2, R2: 1, C2: 2}),
		Categories: loader.FormatRange(models.CellRange{Sheet: ChartSheet, R1: 2, C1: 1, R2: n + 1, C2: 1}),
		Values:     loader.FormatRange(models.CellRange{Sheet: ChartSheet, R1: 2, C1: 2, R2: n + 1, C2: 2}),
	}
	if spec.Markers {
		series.Marker = excelize.ChartMarker{Symbol: "circle", Size: 6}
	}

	chart := &excelize.Chart{
		Type:      chartType,
		Series:    []excelize.ChartSeries{series},
		Title:     []excelize.RichTextRun{{Text: spec.Title}},
		Legend:    excelize.ChartLegend{Position: "bottom"},
		Dimension: excelize.ChartDimension{Width: 640, Height: 360},
	}
	if spec.Hole > 0 {
		chart.HoleSize = int(spec.Hole * 100)
	}
	if err := f.AddChart(ChartSheet, ChartAnchor, chart); err != nil {
		return fmt.Errorf("failed to add chart: %w", err)
	}

	f.SetActiveSheet(1)
	_, err := f.WriteTo(w)
	return err
}

// chartRows returns the two-column table the chart reads from.
func chartRows(spec *models.ChartSpec) ([]interface{}, [][]interface{}) {
	if spec.Kind == models.KindHistogram {
		bins := xlchart.Bins(spec.Values, 0)
		rows := make([][]interface{}, len(bins))
		for i, b := range bins {
			rows[i] = []interface{}{b.Label(), b.Count}
		}
		return []interface{}{spec.YLabel, "Count"}, rows
	}

	rows := make([][]interface{}, len(spec.Values))
	for i, v := range spec.Values {
		rows[i] = []interface{}{spec.Categories[i], v}
	}
	return []interface{}{spec.XLabel, spec.YLabel}, rows
}

func writeDataset(f *excelize.File, ds *models.Dataset) error {
	header := make([]interface{}, len(ds.Columns))
	for i, name := range ds.ColumnNames() {
		header[i] = name
	}

	rows := make([][]interface{}, ds.Len())
	for i := range rows {
		row := ds.Row(i)
		for j, cell := range row {
			row[j] = cellValue(cell)
		}
		rows[i] = row
	}
	return writeRows(f, DataSheet, header, rows)
}

func writeRows(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}

// cellValue turns decoded JSON numbers back into numeric cells.
func cellValue(v interface{}) interface{} {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return string(n)
}
