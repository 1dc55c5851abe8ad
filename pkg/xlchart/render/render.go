// Package render draws chart specifications as PNG images.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNegativeSlice indicates a pie or doughnut value below zero.
var ErrNegativeSlice = errors.New("pie slices must not be negative")

// ErrEmptyPie indicates a pie or doughnut whose values are all zero.
var ErrEmptyPie = errors.New("pie has no non-zero slices")

// ErrEmptySpec indicates a spec without values.
var ErrEmptySpec = errors.New("chart has no values")

var (
	primary = drawing.ColorFromHex("2563eb")
	accent  = drawing.ColorFromHex("764ba2")
)

// Options sets the image size in pixels.
type Options struct {
	Width  int
	Height int
}

// DefaultOptions returns the default image size.
func DefaultOptions() Options {
	return Options{Width: 1024, Height: 500}
}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	return o
}

// Filename returns the download file name for a chart title.
func Filename(title string) string {
	name := strings.ReplaceAll(strings.TrimSpace(title), " ", "_")
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`/\:*?"<>|`, r) {
			return '_'
		}
		return r
	}, name)
	if name == "" {
		name = "chart"
	}
	return name + ".png"
}

// PNG renders spec to w.
func PNG(w io.Writer, spec *models.ChartSpec, opts Options) error {
	if spec == nil || len(spec.Values) == 0 {
		return ErrEmptySpec
	}
	opts = opts.normalized()

	switch spec.Kind {
	case models.KindBar:
		return barChart(spec, opts).Render(chart.PNG, w)
	case models.KindLine, models.KindScatter, models.KindArea:
		return seriesChart(spec, opts).Render(chart.PNG, w)
	case models.KindPie, models.KindDoughnut:
		values, err := slices(spec)
		if err != nil {
			return err
		}
		if spec.Kind == models.KindDoughnut || spec.Hole > 0 {
			return chart.DonutChart{
				Title:  spec.Title,
				Width:  opts.Width,
				Height: opts.Height,
				Values: values,
			}.Render(chart.PNG, w)
		}
		return chart.PieChart{
			Title:  spec.Title,
			Width:  opts.Width,
			Height: opts.Height,
			Values: values,
		}.Render(chart.PNG, w)
	case models.KindHistogram:
		return histogram(w, spec, opts)
	default:
		return fmt.Errorf("cannot render chart kind %q", spec.Kind)
	}
}

func barChart(spec *models.ChartSpec, opts Options) chart.BarChart {
	const spacing = 10
	bars := make([]chart.Value, len(spec.Values))
	for i, v := range spec.Values {
		bars[i] = chart.Value{Label: spec.Categories[i], Value: v}
	}

	barWidth := (opts.Width-120)/len(bars) - spacing
	if barWidth < 4 {
		barWidth = 4
	}
	if barWidth > 80 {
		barWidth = 80
	}

	return chart.BarChart{
		Title:      spec.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		BarWidth:   barWidth,
		BarSpacing: spacing,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		XAxis: chart.Style{},
		YAxis: chart.YAxis{
			Name:  spec.YLabel,
			Range: valueRange(spec.Values, true),
		},
		Bars: bars,
	}
}

func seriesChart(spec *models.ChartSpec, opts Options) chart.Chart {
	n := len(spec.Values)
	xs := make([]float64, n)
	ys := spec.Values
	// go-chart takes the x range from the ticks, so blank edge ticks keep a
	// half-slot margin and a non-zero span for a single category.
	ticks := make([]chart.Tick, 0, n+2)
	ticks = append(ticks, chart.Tick{Value: -0.5})
	for i := range xs {
		xs[i] = float64(i)
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: spec.Categories[i]})
	}
	ticks = append(ticks, chart.Tick{Value: float64(n) - 0.5})
	if n == 1 && spec.Kind != models.KindScatter {
		xs = []float64{-0.5, 0.5}
		ys = []float64{spec.Values[0], spec.Values[0]}
	}

	style := chart.Style{StrokeColor: primary, StrokeWidth: 2}
	switch spec.Kind {
	case models.KindScatter:
		style = chart.Style{StrokeWidth: chart.Disabled, DotColor: primary, DotWidth: 5}
	case models.KindArea:
		style.FillColor = primary.WithAlpha(96)
	}
	if spec.Markers {
		style.DotColor = accent
		style.DotWidth = 4
	}

	return chart.Chart{
		Title:  spec.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20},
		},
		XAxis: chart.XAxis{
			Name:  spec.XLabel,
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: -0.5, Max: float64(n) - 0.5},
		},
		YAxis: chart.YAxis{
			Name:  spec.YLabel,
			Range: valueRange(spec.Values, spec.Kind == models.KindArea),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    spec.YLabel,
				Style:   style,
				XValues: xs,
				YValues: ys,
			},
		},
	}
}

// valueRange pads the value axis so a flat series still has a visible span.
// includeZero anchors filled charts at the baseline.
func valueRange(values []float64, includeZero bool) *chart.ContinuousRange {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if includeZero {
		if lo > 0 {
			lo = 0
		}
		if hi < 0 {
			hi = 0
		}
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	pad := (hi - lo) * 0.05
	if includeZero && lo == 0 {
		return &chart.ContinuousRange{Min: 0, Max: hi + pad}
	}
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

func slices(spec *models.ChartSpec) ([]chart.Value, error) {
	values := make([]chart.Value, 0, len(spec.Values))
	for i, v := range spec.Values {
		if v < 0 {
			return nil, fmt.Errorf("%w: %q is %v", ErrNegativeSlice, spec.Categories[i], v)
		}
		if v == 0 {
			continue
		}
		values = append(values, chart.Value{Label: spec.Categories[i], Value: v})
	}
	if len(values) == 0 {
		return nil, ErrEmptyPie
	}
	return values, nil
}
