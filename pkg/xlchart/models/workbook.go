package models

// WorkbookCharts lists the sheets of a workbook and the charts on each.
type WorkbookCharts struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name" yaml:"book_name"`
	// Sheets are the sheet names in workbook order.
	Sheets []string `json:"sheets" yaml:"sheets"`
	// Charts maps sheet name to its charts.
	Charts map[string][]Chart `json:"charts,omitempty" yaml:"charts,omitempty"`
}
