package models

// CellRange represents cell coordinate bounds on a sheet.
type CellRange struct {
	// Sheet is the sheet the range refers to (empty when unqualified).
	Sheet string `json:"sheet,omitempty" yaml:"sheet,omitempty"`
	// R1 is the start row (1-based).
	R1 int `json:"r1" yaml:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1" yaml:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2" yaml:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2" yaml:"c2"`
}
