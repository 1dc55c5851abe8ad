// Package xlchart maps tabular data and a few user choices to a chart specification.
package xlchart

import (
	"fmt"
	"strings"

	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
)

// Kind is the chart rendering mode.
type Kind = models.Kind

const (
	KindBar       = models.KindBar
	KindLine      = models.KindLine
	KindPie       = models.KindPie
	KindDoughnut  = models.KindDoughnut
	KindScatter   = models.KindScatter
	KindArea      = models.KindArea
	KindHistogram = models.KindHistogram
)

// DefaultTitle is used when a request carries an empty title.
const DefaultTitle = "My Chart"

// DoughnutHole is the inner radius ratio attached to doughnut charts.
const DoughnutHole = 0.4

var kinds = []Kind{KindBar, KindLine, KindPie, KindDoughnut, KindScatter, KindArea, KindHistogram}

// Kinds returns every supported chart kind in selector order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// ValidKind reports whether k is a supported chart kind.
func ValidKind(k Kind) bool {
	for _, v := range kinds {
		if v == k {
			return true
		}
	}
	return false
}

// ParseKind parses a chart kind name, ignoring case and surrounding space.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !ValidKind(k) {
		return "", fmt.Errorf("%w: %q (must be one of %s)", ErrUnknownKind, s, kindList())
	}
	return k, nil
}

func kindList() string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// Request is the set of user choices for a chart.
type Request struct {
	// Kind is the chart kind.
	Kind Kind `json:"kind"`
	// XColumn names the category column.
	XColumn string `json:"x_column"`
	// YColumn names the value column.
	YColumn string `json:"y_column"`
	// Title is the chart title; empty selects Options.DefaultTitle.
	Title string `json:"title"`
}

// Options configures the builder.
type Options struct {
	// DefaultTitle replaces an empty request title.
	// If empty, DefaultTitle (the package constant) is used.
	DefaultTitle string
}

// DefaultOptions returns default builder options.
func DefaultOptions() Options {
	return Options{
		DefaultTitle: DefaultTitle,
	}
}

func (o Options) title(requested string) string {
	if requested != "" {
		return requested
	}
	if o.DefaultTitle != "" {
		return o.DefaultTitle
	}
	return DefaultTitle
}
