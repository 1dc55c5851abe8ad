package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/ukaji3/xlchart-go/internal/handlers"
)

func New(h *handlers.Handler, metricsHandler http.Handler) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", h.Health)
	r.Handle("/metrics", metricsHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/kinds", h.Kinds)
		r.Get("/demos", h.Demos)

		r.Route("/dataset", func(r chi.Router) {
			r.Get("/", h.GetDataset)
			r.Post("/", h.UploadDataset)
			r.Get("/csv", h.DownloadCSV)
			r.Post("/demo/{name}", h.LoadDemo)
		})

		r.Post("/chart", h.BuildChart)
		r.Get("/chart.png", h.ChartPNG)
		r.Get("/chart.xlsx", h.ChartXLSX)
	})

	return r
}
