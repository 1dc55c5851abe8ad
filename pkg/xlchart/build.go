package xlchart

import (
	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
)

// Build maps a dataset and a request to a chart specification using default options.
func Build(ds *models.Dataset, req Request) (*models.ChartSpec, error) {
	return BuildWithOptions(ds, req, DefaultOptions())
}

// BuildWithOptions maps a dataset and a request to a chart specification.
//
// Every x cell becomes a category label. Rows whose y cell is not numeric are
// dropped from both sequences, keeping the order of the remaining rows. The
// returned error is always a *BuildError.
func BuildWithOptions(ds *models.Dataset, req Request, opts Options) (*models.ChartSpec, error) {
	var missing []string
	var xCol, yCol *models.Column
	if ds != nil {
		xCol, _ = ds.Column(req.XColumn)
		yCol, _ = ds.Column(req.YColumn)
	}
	if xCol == nil {
		missing = append(missing, req.XColumn)
	}
	if yCol == nil && req.YColumn != req.XColumn {
		missing = append(missing, req.YColumn)
	}
	if len(missing) > 0 {
		return nil, NewBuildError(CodeColumnNotFound, ErrColumnNotFound, missing...)
	}

	if !ValidKind(req.Kind) {
		return nil, NewBuildError(CodeUnknownKind, ErrUnknownKind)
	}

	n := len(yCol.Cells)
	if len(xCol.Cells) < n {
		n = len(xCol.Cells)
	}

	categories := make([]string, 0, n)
	values := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		v, ok := TryParseNumber(yCol.Cells[i])
		if !ok {
			continue
		}
		categories = append(categories, CellText(xCol.Cells[i]))
		values = append(values, v)
	}

	if len(values) == 0 {
		return nil, NewBuildError(CodeNoValidNumericData, ErrNoValidNumericData, req.YColumn)
	}

	spec := &models.ChartSpec{
		Kind:       req.Kind,
		Title:      opts.title(req.Title),
		XLabel:     req.XColumn,
		YLabel:     req.YColumn,
		Categories: categories,
		Values:     values,
		Dropped:    n - len(values),
	}
	switch req.Kind {
	case KindLine:
		spec.Markers = true
	case KindDoughnut:
		spec.Hole = DoughnutHole
	}
	return spec, nil
}
