package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "studyspotter",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "studyspotter",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"method", "path"})

	// Pipeline metrics
	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "studyspotter",
		Subsystem: "search",
		Name:      "total",
		Help:      "Total search pipelines run, by outcome status",
	}, []string{"status"})

	SearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "studyspotter",
		Subsystem: "search",
		Name:      "duration_seconds",
		Help:      "End-to-end duration of the aggregation pipeline",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
	})

	SpotsPerSearch = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "studyspotter",
		Subsystem: "search",
		Name:      "spots_returned",
		Help:      "Deduplicated venues produced per search",
		Buckets:   []float64{0, 5, 10, 20, 40, 60, 100},
	})

	EnrichmentFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "studyspotter",
		Subsystem: "search",
		Name:      "enrichment_failures_total",
		Help:      "Per-venue detail lookups that soft-failed to defaults",
	})

	// Upstream places service metrics
	PlacesRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "studyspotter",
		Subsystem: "places",
		Name:      "requests_total",
		Help:      "Outbound requests to the places service, by endpoint and status",
	}, []string{"endpoint", "status"})

	PlacesRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "studyspotter",
		Subsystem: "places",
		Name:      "request_duration_seconds",
		Help:      "Latency of outbound places service requests",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"endpoint"})
)

// Middleware records request metrics.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())
		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		method := c.Method()

		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(duration)

		return err
	}
}

// Handler returns a Fiber handler serving the Prometheus /metrics endpoint.
func Handler() fiber.Handler {
	handler := promhttp.Handler()
	return func(c *fiber.Ctx) error {
		fasthttpadaptor.NewFastHTTPHandler(handler)(c.Context())
		return nil
	}
}
