package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bakery/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerMetrics_Middleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewServerMetrics(reg, "api")

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/orders/:id", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders/42", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	assert.InDelta(t, 1, testutil.ToFloat64(m.Requests.WithLabelValues("/api/orders/:id", "404")), 0)
}

func TestOrderMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewOrderMetrics(reg, "worker")

	m.Placed.Inc()
	m.Processed.WithLabelValues("completed").Inc()
	m.Processed.WithLabelValues("completed").Inc()

	assert.InDelta(t, 1, testutil.ToFloat64(m.Placed), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.Processed.WithLabelValues("completed")), 0)
}
