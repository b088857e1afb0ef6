package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
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
			Help:    "Duration of HTTP requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	httpActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Current number of active HTTP requests",
		},
	)

	remindersCompletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reminders_completed_total",
			Help: "Total number of reminders marked complete",
		},
	)

	remindersGeneratedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reminders_generated_total",
			Help: "Total number of reminders created by the generator",
		},
	)
)

// MetricsMiddleware records request counts, durations, and in-flight requests.
// The path label uses the chi route pattern rather than the raw URL so that
// /plants/123 and /plants/456 share a series.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		httpActiveRequests.Inc()
		defer httpActiveRequests.Dec()

		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		path := r.URL.Path
		if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
			if pattern := routeCtx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}

		httpRequestsTotal.WithLabelValues(
			r.Method, path, strconv.Itoa(ww.Status())).Inc()
		httpRequestDuration.WithLabelValues(
			r.Method, path).Observe(time.Since(start).Seconds())
	})
}

// TrackReminderCompleted increments the completed-reminder counter.
func TrackReminderCompleted() {
	remindersCompletedTotal.Inc()
}

// TrackRemindersGenerated adds the given number of newly generated reminders.
func TrackRemindersGenerated(count int) {
	remindersGeneratedTotal.Add(float64(count))
}
