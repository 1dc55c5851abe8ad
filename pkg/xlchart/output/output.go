// Package output serializes chart specifications and datasets.
package output

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/ukaji3/xlchart-go/pkg/xlchart"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
	"gopkg.in/yaml.v3"
)

// ToJSON serializes v as JSON, indented when pretty is set.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ToYAML serializes v as YAML.
func ToYAML(v interface{}) ([]byte, error) {
	return yaml.Marshal(v)
}

// WriteCSV writes the dataset as CSV: a header row, then one line per row.
// Missing cells are written as empty fields.
func WriteCSV(w io.Writer, ds *models.Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ds.ColumnNames()); err != nil {
		return err
	}

	record := make([]string, len(ds.Columns))
	for i := 0; i < ds.Len(); i++ {
		for j, cell := range ds.Row(i) {
			record[j] = xlchart.CellText(cell)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Preview returns the column names and the first n rows of ds as text.
func Preview(ds *models.Dataset, n int) models.Preview {
	if n > ds.Len() || n < 0 {
		n = ds.Len()
	}

	p := models.Preview{
		Name:      ds.Name,
		Columns:   ds.ColumnNames(),
		TotalRows: ds.Len(),
		Rows:      make([][]string, n),
	}
	for i := 0; i < n; i++ {
		row := ds.Row(i)
		text := make([]string, len(row))
		for j, cell := range row {
			text[j] = xlchart.CellText(cell)
		}
		p.Rows[i] = text
	}
	return p
}
