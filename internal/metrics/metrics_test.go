package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(m *Metrics) *echo.Echo {
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/brands", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []string{})
	})
	e.POST("/brands", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "Name is required")
	})
	return e
}

func TestMiddleware_CountsByRouteAndStatus(t *testing.T) {
	m := New()
	e := newTestEcho(m)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/brands", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/brands", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestTotal.WithLabelValues(http.MethodGet, "/brands", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestTotal.WithLabelValues(http.MethodPost, "/brands", "400")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.RequestInFlight))
}

func TestHandler_ExposesServiceMetrics(t *testing.T) {
	m := New()
	e := newTestEcho(m)
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/brands", nil))
	m.EventPublishFailures.WithLabelValues("catalog_events").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "http_requests_total")
	assert.Contains(t, body, "http_request_duration_seconds")
	assert.Contains(t, body, "http_requests_in_flight")
	assert.Contains(t, body, `events_publish_failures_total{topic="catalog_events"} 1`)
	assert.Contains(t, body, "go_goroutines")
}
