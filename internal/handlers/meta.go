package handlers

import (
	"net/http"

	"github.com/ukaji3/xlchart-go/internal/fixtures"
	"github.com/ukaji3/xlchart-go/pkg/xlchart"
)

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Kinds(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"kinds": xlchart.Kinds()})
}

func (h *Handler) Demos(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"demos": fixtures.List()})
}
