package models

// Preview is the head of a dataset as shown before a chart is built.
type Preview struct {
	// Name is the dataset name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Columns are the column names in order.
	Columns []string `json:"columns" yaml:"columns"`
	// TotalRows is the row count of the whole dataset.
	TotalRows int `json:"total_rows" yaml:"total_rows"`
	// Rows holds the first rows, each cell coerced to text.
	Rows [][]string `json:"rows" yaml:"rows"`
}
