package models

// ChartSpec is a normalized, renderer-agnostic description of a chart.
type ChartSpec struct {
	// Kind is the rendering mode.
	Kind Kind `json:"kind" yaml:"kind"`
	// Title is the chart title (never empty).
	Title string `json:"title" yaml:"title"`
	// XLabel is the name of the column the categories came from.
	XLabel string `json:"x_label" yaml:"x_label"`
	// YLabel is the name of the column the values came from.
	YLabel string `json:"y_label" yaml:"y_label"`
	// Categories are the x cells as text, parallel to Values.
	Categories []string `json:"categories" yaml:"categories"`
	// Values are the numeric y cells.
	Values []float64 `json:"values" yaml:"values"`
	// Dropped counts rows removed because their y cell was not numeric.
	Dropped int `json:"dropped,omitempty" yaml:"dropped,omitempty"`
	// Markers asks the renderer to draw point markers on lines.
	Markers bool `json:"markers,omitempty" yaml:"markers,omitempty"`
	// Hole is the inner radius ratio for doughnut charts (0 for none).
	Hole float64 `json:"hole,omitempty" yaml:"hole,omitempty"`
}

// ChartSeries represents series metadata for a chart stored in a workbook.
type ChartSeries struct {
	// Name is the series display name.
	Name string `json:"name" yaml:"name"`
	// NameRange is the range reference for the series name.
	NameRange string `json:"name_range,omitempty" yaml:"name_range,omitempty"`
	// XRange is the range reference for X axis values.
	XRange string `json:"x_range,omitempty" yaml:"x_range,omitempty"`
	// YRange is the range reference for Y axis values.
	YRange string `json:"y_range,omitempty" yaml:"y_range,omitempty"`
}

// Chart describes a native chart found inside a workbook.
type Chart struct {
	// Name is the drawing object name.
	Name string `json:"name" yaml:"name"`
	// ChartType is the chart type label (e.g., Bar, Line, Doughnut).
	ChartType string `json:"chart_type" yaml:"chart_type"`
	// Title is the chart title.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	// Series is the list of series included in the chart.
	Series []ChartSeries `json:"series" yaml:"series"`
}
