package models

// Kind is the rendering mode requested for a chart.
type Kind string

const (
	// KindBar draws one bar per category.
	KindBar Kind = "bar"
	// KindLine draws a line through the values with point markers.
	KindLine Kind = "line"
	// KindPie draws values as slice magnitudes labelled by category.
	KindPie Kind = "pie"
	// KindDoughnut is a pie with an inner hole.
	KindDoughnut Kind = "doughnut"
	// KindScatter draws unconnected points.
	KindScatter Kind = "scatter"
	// KindArea draws a filled line.
	KindArea Kind = "area"
	// KindHistogram ignores categories and rebins the values.
	KindHistogram Kind = "histogram"
)
