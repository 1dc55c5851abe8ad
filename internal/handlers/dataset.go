package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ukaji3/xlchart-go/internal/fixtures"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/loader"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/output"
)

// multipartMemory is the part of an upload kept in memory before spilling to disk.
const multipartMemory = 32 << 20

// UploadDataset replaces the session dataset with an uploaded CSV or workbook.
func (h *Handler) UploadDataset(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.metrics.Upload("unknown", err)
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResp(CodeFileTooLarge, "File exceeds the upload limit", r))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResp(CodeValidation, "Expected a multipart form with a file field", r))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp(CodeValidation, "File is required", r))
		return
	}
	defer file.Close()

	format := "unknown"
	if f, err := loader.DetectFormat(header.Filename); err == nil {
		format = string(f)
	}

	ds, err := loader.Load(file, header.Filename, loader.Options{
		Sheet: r.FormValue("sheet"),
		Range: r.FormValue("range"),
	})
	h.metrics.Upload(format, err)
	if err != nil {
		h.logger.Warn("upload rejected", "file", header.Filename, "format", format, "error", err)
		h.writeLoadError(w, r, err)
		return
	}

	if !h.saveDataset(w, r, ds) {
		return
	}
	h.logger.Info("dataset uploaded", "file", header.Filename, "rows", ds.Len(), "columns", len(ds.Columns))
	writeJSON(w, http.StatusOK, output.Preview(ds, PreviewRows))
}

func (h *Handler) writeLoadError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, loader.ErrUnsupportedFormat):
		writeJSON(w, http.StatusBadRequest, errorResp(CodeUnsupportedFormat, err.Error(), r))
	case errors.Is(err, loader.ErrSheetNotFound):
		writeJSON(w, http.StatusBadRequest, errorResp(CodeSheetNotFound, err.Error(), r))
	case errors.Is(err, loader.ErrInvalidRange):
		writeJSON(w, http.StatusBadRequest, errorResp(CodeInvalidRange, err.Error(), r))
	case errors.Is(err, loader.ErrNoData):
		writeJSON(w, http.StatusUnprocessableEntity, errorResp(CodeNoData, err.Error(), r))
	default:
		writeJSON(w, http.StatusBadRequest, errorResp(CodeInvalidFile, "Error reading file: "+err.Error(), r))
	}
}

// LoadDemo replaces the session dataset with a built-in fixture.
func (h *Handler) LoadDemo(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	ds, err := fixtures.Get(name)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResp(CodeUnknownDemo, err.Error(), r))
		return
	}

	if !h.saveDataset(w, r, ds) {
		return
	}
	writeJSON(w, http.StatusOK, output.Preview(ds, PreviewRows))
}

// GetDataset returns a preview of the session dataset. The optional rows
// query parameter overrides the preview length; a negative value returns all rows.
func (h *Handler) GetDataset(w http.ResponseWriter, r *http.Request) {
	n := PreviewRows
	if v := r.URL.Query().Get("rows"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResp(CodeValidation, "rows must be an integer", r))
			return
		}
		n = parsed
	}

	ds, ok := h.loadDataset(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, output.Preview(ds, n))
}

// DownloadCSV serves the session dataset as chart_data.csv.
func (h *Handler) DownloadCSV(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.loadDataset(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := output.WriteCSV(&buf, ds); err != nil {
		h.logger.Error("failed to write csv", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResp(CodeInternal, "An unexpected error occurred", r))
		return
	}
	writeAttachment(w, "text/csv", "chart_data.csv", buf.Bytes())
}
