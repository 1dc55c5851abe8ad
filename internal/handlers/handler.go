// Package handlers implements the HTTP API over the session dataset.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/ukaji3/xlchart-go/internal/metrics"
	"github.com/ukaji3/xlchart-go/internal/session"
	"github.com/ukaji3/xlchart-go/pkg/xlchart"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/render"
)

// SessionCookie names the cookie carrying the session id.
const SessionCookie = "xlchart_session"

// PreviewRows is the number of rows returned in dataset previews.
const PreviewRows = 10

// Options configures a Handler.
type Options struct {
	DefaultTitle   string
	ChartWidth     int
	ChartHeight    int
	MaxUploadBytes int64
	SessionTTL     time.Duration
}

// Handler serves the dataset and chart endpoints for browser sessions.
type Handler struct {
	store   session.Store
	metrics *metrics.Metrics
	logger  *slog.Logger
	opts    Options
}

// New creates a Handler, filling unset Options with defaults.
func New(store session.Store, m *metrics.Metrics, logger *slog.Logger, opts Options) *Handler {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 200 << 20
	}
	if opts.DefaultTitle == "" {
		opts.DefaultTitle = xlchart.DefaultTitle
	}
	return &Handler{store: store, metrics: m, logger: logger, opts: opts}
}

func (h *Handler) buildOptions() xlchart.Options {
	return xlchart.Options{DefaultTitle: h.opts.DefaultTitle}
}

func (h *Handler) renderOptions() render.Options {
	return render.Options{Width: h.opts.ChartWidth, Height: h.opts.ChartHeight}
}

// sessionID returns the caller's session id, issuing a new cookie when
// create is set and none is present. It returns "" otherwise.
func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request, create bool) string {
	if c, err := r.Cookie(SessionCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}
	if !create {
		return ""
	}

	id := uuid.NewString()
	cookie := &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if h.opts.SessionTTL > 0 {
		cookie.MaxAge = int(h.opts.SessionTTL.Seconds())
	}
	http.SetCookie(w, cookie)
	return id
}

// loadDataset returns the session dataset or writes the error response.
func (h *Handler) loadDataset(w http.ResponseWriter, r *http.Request) (*models.Dataset, bool) {
	id := h.sessionID(w, r, false)
	if id == "" {
		writeJSON(w, http.StatusNotFound, errorResp(CodeNoDataset, "No dataset loaded; upload a file or load a demo first", r))
		return nil, false
	}

	ds, err := h.store.Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorResp(CodeNoDataset, "No dataset loaded; upload a file or load a demo first", r))
			return nil, false
		}
		h.logger.Error("failed to load session dataset", "session", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResp(CodeInternal, "An unexpected error occurred", r))
		return nil, false
	}
	return ds, true
}

// saveDataset stores ds as the caller's dataset.
func (h *Handler) saveDataset(w http.ResponseWriter, r *http.Request, ds *models.Dataset) bool {
	id := h.sessionID(w, r, true)
	if err := h.store.Save(r.Context(), id, ds); err != nil {
		h.logger.Error("failed to save session dataset", "session", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResp(CodeInternal, "An unexpected error occurred", r))
		return false
	}
	return true
}
