package middle

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "seqspec",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests by route pattern and status",
	}, []string{"method", "route", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "seqspec",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "route"})
)

// MetricsMiddleware counts requests per route pattern of mux, not per raw
// path, so assay ids do not become label values.
func MetricsMiddleware(mux *http.ServeMux) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := wrapResponseWriter(w)

			_, route := mux.Handler(r)
			if route == "" {
				route = "unmatched"
			}

			// a panic passing through is counted as a 500 and re-raised
			defer func() {
				status := wrapped.Status()
				p := recover()
				if p != nil {
					status = http.StatusInternalServerError
				}
				requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
				requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
				if p != nil {
					panic(p)
				}
			}()

			next.ServeHTTP(wrapped, r)
		})
	}
}
