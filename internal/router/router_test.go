package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlchart-go/internal/handlers"
	"github.com/ukaji3/xlchart-go/internal/logging"
	"github.com/ukaji3/xlchart-go/internal/metrics"
	"github.com/ukaji3/xlchart-go/internal/session"
)

func newTestRouter() http.Handler {
	m := metrics.New()
	h := handlers.New(session.NewMemoryStore(), m, logging.NewNop(), handlers.Options{})
	return New(h, m.Handler())
}

func TestRoutes(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/api/v1/kinds", http.StatusOK},
		{http.MethodGet, "/api/v1/demos", http.StatusOK},
		{http.MethodGet, "/api/v1/dataset", http.StatusNotFound},
		{http.MethodGet, "/api/v1/dataset/csv", http.StatusNotFound},
		{http.MethodGet, "/api/v1/chart.png?kind=bar&x=a&y=b", http.StatusNotFound},
		{http.MethodGet, "/api/v1/chart.xlsx?kind=bar&x=a&y=b", http.StatusNotFound},
		{http.MethodDelete, "/api/v1/dataset", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/v1/unknown", http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, tc.status, rr.Code)
		})
	}
}

func TestDemoToChartFlow(t *testing.T) {
	r := newTestRouter()

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/dataset/demo/sales-demo", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	cookies := rr.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chart",
		strings.NewReader(`{"kind":"histogram","x_column":"Month","y_column":"Units Sold","title":"Units"}`))
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), `"kind":"histogram"`)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rr.Body.String(), `xlchart_charts_built_total{kind="histogram",outcome="ok"} 1`)
}

func TestRequestIDInErrors(t *testing.T) {
	r := newTestRouter()

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/dataset", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), `"request_id":"`)
}
