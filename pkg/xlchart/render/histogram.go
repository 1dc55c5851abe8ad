package render

import (
	"image/color"
	"io"

	"github.com/ukaji3/xlchart-go/pkg/xlchart"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// pixelsToPoints converts pixels at 96 DPI to typographic points.
func pixelsToPoints(px int) vg.Length {
	return vg.Points(float64(px) * 72 / 96)
}

// histogram draws the binned values; categories are ignored.
func histogram(w io.Writer, spec *models.ChartSpec, opts Options) error {
	bins := xlchart.Bins(spec.Values, 0)

	h := &plotter.Histogram{
		Bins:      make([]plotter.HistogramBin, len(bins)),
		Width:     bins[0].High - bins[0].Low,
		FillColor: color.RGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff},
		LineStyle: plotter.DefaultLineStyle,
	}
	for i, b := range bins {
		h.Bins[i] = plotter.HistogramBin{Min: b.Low, Max: b.High, Weight: float64(b.Count)}
	}

	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.YLabel
	p.Y.Label.Text = "count"
	p.Add(h)

	wt, err := p.WriterTo(pixelsToPoints(opts.Width), pixelsToPoints(opts.Height), "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
