package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/ukaji3/xlchart-go/pkg/xlchart"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/render"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/workbook"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type chartRequest struct {
	Kind    string `json:"kind"`
	XColumn string `json:"x_column"`
	YColumn string `json:"y_column"`
	Title   string `json:"title"`
}

func (c chartRequest) request() xlchart.Request {
	return xlchart.Request{
		Kind:    xlchart.Kind(strings.ToLower(strings.TrimSpace(c.Kind))),
		XColumn: c.XColumn,
		YColumn: c.YColumn,
		Title:   c.Title,
	}
}

func queryRequest(r *http.Request) chartRequest {
	q := r.URL.Query()
	return chartRequest{
		Kind:    q.Get("kind"),
		XColumn: q.Get("x"),
		YColumn: q.Get("y"),
		Title:   q.Get("title"),
	}
}

// BuildChart returns the chart specification for a JSON request.
func (h *Handler) BuildChart(w http.ResponseWriter, r *http.Request) {
	var body chartRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp(CodeValidation, "Invalid request body", r))
		return
	}

	spec, ok := h.build(w, r, body.request())
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, spec)
}

// ChartPNG renders the requested chart as a PNG attachment.
func (h *Handler) ChartPNG(w http.ResponseWriter, r *http.Request) {
	spec, ok := h.build(w, r, queryRequest(r).request())
	if !ok {
		return
	}

	start := time.Now()
	var buf bytes.Buffer
	err := render.PNG(&buf, spec, h.renderOptions())
	h.metrics.ObserveRender("png", start)
	if err != nil {
		h.writeRenderError(w, r, err)
		return
	}
	writeAttachment(w, "image/png", render.Filename(spec.Title), buf.Bytes())
}

// ChartXLSX exports the session dataset with a native chart.
func (h *Handler) ChartXLSX(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.loadDataset(w, r)
	if !ok {
		return
	}
	spec, ok := h.buildFrom(w, r, ds, queryRequest(r).request())
	if !ok {
		return
	}

	start := time.Now()
	var buf bytes.Buffer
	err := workbook.Write(&buf, ds, spec)
	h.metrics.ObserveRender("xlsx", start)
	if err != nil {
		h.writeRenderError(w, r, err)
		return
	}
	filename := strings.TrimSuffix(render.Filename(spec.Title), ".png") + ".xlsx"
	writeAttachment(w, xlsxContentType, filename, buf.Bytes())
}

func (h *Handler) build(w http.ResponseWriter, r *http.Request, req xlchart.Request) (*models.ChartSpec, bool) {
	ds, ok := h.loadDataset(w, r)
	if !ok {
		return nil, false
	}
	return h.buildFrom(w, r, ds, req)
}

func (h *Handler) buildFrom(w http.ResponseWriter, r *http.Request, ds *models.Dataset, req xlchart.Request) (*models.ChartSpec, bool) {
	spec, err := xlchart.BuildWithOptions(ds, req, h.buildOptions())
	h.metrics.ChartBuilt(kindLabel(req.Kind), err)
	if err != nil {
		h.logger.Info("chart build rejected", "kind", req.Kind, "x", req.XColumn, "y", req.YColumn, "error", err)
		writeBuildError(w, r, err)
		return nil, false
	}
	h.logger.Debug("chart built", "kind", spec.Kind, "points", len(spec.Values), "dropped", spec.Dropped)
	return spec, true
}

// kindLabel bounds the metrics label to the known chart kinds.
func kindLabel(kind models.Kind) string {
	if !xlchart.ValidKind(kind) {
		return "unknown"
	}
	return string(kind)
}

func writeBuildError(w http.ResponseWriter, r *http.Request, err error) {
	be, ok := xlchart.AsBuildError(err)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, errorResp(CodeInternal, "An unexpected error occurred", r))
		return
	}

	status := http.StatusUnprocessableEntity
	if be.Code == xlchart.CodeUnknownKind {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, errorRespWithColumns(string(be.Code), be.Error(), be.Columns, r))
}

func (h *Handler) writeRenderError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, render.ErrNegativeSlice) || errors.Is(err, render.ErrEmptyPie) || errors.Is(err, render.ErrEmptySpec) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResp(CodeRenderFailed, err.Error(), r))
		return
	}
	h.logger.Error("failed to render chart", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResp(CodeInternal, "An unexpected error occurred", r))
}
