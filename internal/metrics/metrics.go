// Package metrics provides Prometheus metrics for the gdrive server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gdrive_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gdrive_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Drive operation metrics
	driveOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gdrive_operations_total",
			Help: "Total facade operations by result",
		},
		[]string{"operation", "result"},
	)

	// Streaming metrics
	streamedBytesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gdrive_streamed_bytes_total",
			Help: "Total bytes streamed to clients",
		},
	)

	streamsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gdrive_streams_total",
			Help: "Total stream responses by result",
		},
		[]string{"result"},
	)
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordHTTPRequest records an HTTP request metric.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordOperation records the outcome of a facade operation.
func RecordOperation(operation string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	driveOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordStream records a finished stream. Result is one of "complete", "not_modified" or "aborted".
func RecordStream(result string, bytes int64) {
	streamedBytesTotal.Add(float64(bytes))
	streamsTotal.WithLabelValues(result).Inc()
}

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// Middleware returns HTTP middleware that records request metrics.
// Requests are labelled with the matched route pattern.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)
		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		RecordHTTPRequest(r.Method, route, rw.statusCode, time.Since(start))
	})
}
