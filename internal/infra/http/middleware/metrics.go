package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	leadIntakes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lead_intakes_total",
			Help: "Total number of lead intake records created",
		},
	)

	quotesFinalized = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quotes_finalized_total",
			Help: "Total number of quotes finalized",
		},
	)

	notificationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_errors_total",
			Help: "Total number of failed or timed out notification emails",
		},
		[]string{"recipient"},
	)

	storeTimeouts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "store_timeouts_total",
			Help: "Total number of store operations that exceeded their deadline",
		},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordLeadIntake() {
	leadIntakes.Inc()
}

func RecordQuoteFinalized() {
	quotesFinalized.Inc()
}

// RecordNotificationError counts a failed or abandoned email; recipient is
// "client" or "admin".
func RecordNotificationError(recipient string) {
	notificationErrors.WithLabelValues(recipient).Inc()
}

func RecordStoreTimeout() {
	storeTimeouts.Inc()
}
