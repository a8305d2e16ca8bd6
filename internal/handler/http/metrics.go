package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"summary-api/internal/handler/http/responsewriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// unmatchedPath labels requests that no route matched, keeping the path
// label bounded no matter what clients request.
const unmatchedPath = "unmatched"

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// Buckets extend to 60s because /process waits on the summarization provider.
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)

	httpRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_size_bytes",
			Help:    "HTTP request size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	httpResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)
)

// MetricsMiddleware records request count, duration, size and in-flight
// gauge. It must wrap the ServeMux directly: the path label is taken from the
// route pattern the mux stores on the request.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		rw := responsewriter.Wrap(w)
		start := time.Now()
		completed := false
		// panic 時も記録する。recover はしないので Recover にそのまま伝わる
		defer func() {
			code := rw.StatusCode()
			if !completed && !rw.HeaderWritten() {
				code = http.StatusInternalServerError
			}
			observeRequest(r, rw, code, time.Since(start))
		}()

		next.ServeHTTP(rw, r)
		completed = true
	})
}

func observeRequest(r *http.Request, rw *responsewriter.ResponseWriter, code int, elapsed time.Duration) {
	path := routePath(r)
	status := strconv.Itoa(code)
	httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
	httpRequestDuration.WithLabelValues(r.Method, path, status).Observe(elapsed.Seconds())
	if r.ContentLength > 0 {
		httpRequestSize.WithLabelValues(r.Method, path).Observe(float64(r.ContentLength))
	}
	httpResponseSize.WithLabelValues(r.Method, path).Observe(float64(rw.BytesWritten()))
}

// routePath returns the path part of the matched pattern ("POST /process" -> "/process").
func routePath(r *http.Request) string {
	if r.Pattern == "" {
		return unmatchedPath
	}
	if _, path, ok := strings.Cut(r.Pattern, " "); ok {
		return strings.TrimSpace(path)
	}
	return r.Pattern
}

// MetricsHandler returns an HTTP handler for the Prometheus metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
