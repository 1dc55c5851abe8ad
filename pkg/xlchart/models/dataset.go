// Package models defines the data structures shared by loaders, the chart
// builder and the exporters.
package models

import (
	"errors"
	"fmt"
)

// ErrDuplicateColumn indicates two columns share a name.
var ErrDuplicateColumn = errors.New("duplicate column name")

// ErrRaggedColumns indicates columns of different lengths.
var ErrRaggedColumns = errors.New("columns have different lengths")

// Column is a named, ordered sequence of cell values.
type Column struct {
	// Name is the header text of the column.
	Name string `json:"name" yaml:"name"`
	// Cells holds raw cell values: nil, string, int64, float64, bool or json.Number.
	Cells []interface{} `json:"cells" yaml:"cells"`
}

// Dataset is a rectangular table of named columns.
// A Dataset is never mutated after construction; a new upload replaces it.
type Dataset struct {
	// Name describes where the data came from (file name or fixture name).
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Columns are the table columns in display order.
	Columns []Column `json:"columns" yaml:"columns"`
}

// NewDataset validates the columns and returns a Dataset.
func NewDataset(name string, columns []Column) (*Dataset, error) {
	seen := make(map[string]bool, len(columns))
	for i, c := range columns {
		if seen[c.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name)
		}
		seen[c.Name] = true
		if i > 0 && len(c.Cells) != len(columns[0].Cells) {
			return nil, fmt.Errorf("%w: %q has %d cells, %q has %d",
				ErrRaggedColumns, c.Name, len(c.Cells), columns[0].Name, len(columns[0].Cells))
		}
	}
	return &Dataset{Name: name, Columns: columns}, nil
}

// Column returns the column with the given name.
func (d *Dataset) Column(name string) (*Column, bool) {
	for i := range d.Columns {
		if d.Columns[i].Name == name {
			return &d.Columns[i], true
		}
	}
	return nil, false
}

// ColumnNames returns the column names in order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name
	}
	return names
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	if len(d.Columns) == 0 {
		return 0
	}
	return len(d.Columns[0].Cells)
}

// Row returns the cells of row i across all columns.
func (d *Dataset) Row(i int) []interface{} {
	row := make([]interface{}, len(d.Columns))
	for j, c := range d.Columns {
		row[j] = c.Cells[i]
	}
	return row
}
