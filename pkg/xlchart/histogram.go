package xlchart

import (
	"math"
	"strconv"
)

// Bin is one bucket of a histogram.
type Bin struct {
	// Low is the inclusive lower edge.
	Low float64 `json:"low"`
	// High is the upper edge (inclusive for the last bin only).
	High float64 `json:"high"`
	// Count is the number of values in the bin.
	Count int `json:"count"`
}

// Label returns the bin as "low-high".
func (b Bin) Label() string {
	return strconv.FormatFloat(b.Low, 'g', 6, 64) + "-" + strconv.FormatFloat(b.High, 'g', 6, 64)
}

// SturgesBins returns the number of bins Sturges' rule picks for n values.
func SturgesBins(n int) int {
	if n <= 1 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}

// Bins groups values into n equal-width bins spanning their range.
// n <= 0 selects SturgesBins(len(values)).
func Bins(values []float64, n int) []Bin {
	if len(values) == 0 {
		return nil
	}
	if n <= 0 {
		n = SturgesBins(len(values))
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		return []Bin{{Low: lo - 0.5, High: hi + 0.5, Count: len(values)}}
	}

	// hi/n - lo/n stays finite where hi - lo would overflow.
	width := hi/float64(n) - lo/float64(n)
	bins := make([]Bin, n)
	for i := range bins {
		bins[i].Low = binEdge(lo, hi, i, n)
		bins[i].High = binEdge(lo, hi, i+1, n)
	}
	bins[0].Low = lo
	bins[n-1].High = hi

	for _, v := range values {
		idx := int(v/width - lo/width)
		if idx < 0 {
			idx = 0
		}
		if idx >= n {
			idx = n - 1
		}
		bins[idx].Count++
	}
	return bins
}

func binEdge(lo, hi float64, i, n int) float64 {
	f := float64(i) / float64(n)
	return lo*(1-f) + hi*f
}
