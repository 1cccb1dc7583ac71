package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the content API.
type Metrics struct {
	requestsTotal  *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	notFoundTotal  *prometheus.CounterVec
}

// NewMetrics creates and registers all API metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		requestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "content_api_requests_total",
				Help: "Total number of API requests",
			},
			[]string{"method", "path", "status"},
		),
		requestLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "content_api_request_latency_ms",
				Help:    "Latency of API requests in milliseconds",
				Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
			},
			[]string{"method", "path"},
		),
		notFoundTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "content_api_not_found_total",
				Help: "Total number of identifier lookups that resolved to no document",
			},
			[]string{"path"},
		),
	}
}

// Middleware records request totals and latency for every route. Routes are
// labeled by their registered pattern, not the raw URL, to keep the label
// cardinality bounded.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		path := c.Route().Path

		m.requestsTotal.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		m.requestLatency.WithLabelValues(c.Method(), path).
			Observe(float64(time.Since(start).Microseconds()) / 1000.0)
		if status == fiber.StatusNotFound {
			m.notFoundTotal.WithLabelValues(path).Inc()
		}
		return err
	}
}
