// Package metrics provides Prometheus instrumentation for the judging
// platform.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	scoreSubmits    *prometheus.CounterVec
	sessionsStarted prometheus.Counter
	eventsActivated prometheus.Counter
}

// New registers the platform's metrics in the global Prometheus registry.
// Call once per process.
func New() *Metrics {
	return &Metrics{
		httpRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kultoura_http_requests_total",
				Help: "Total number of HTTP requests served.",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "kultoura_http_request_duration_seconds",
				Help:    "HTTP request latency by route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		scoreSubmits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kultoura_score_submissions_total",
				Help: "Total number of score submissions.",
			},
			[]string{"outcome"},
		),
		sessionsStarted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "kultoura_scoring_sessions_started_total",
				Help: "Total number of scoring sessions opened.",
			},
		),
		eventsActivated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "kultoura_events_activated_total",
				Help: "Total number of events made live for judging.",
			},
		),
	}
}

func (m *Metrics) EventActivated() {
	m.eventsActivated.Inc()
}

func (m *Metrics) SessionStarted() {
	m.sessionsStarted.Inc()
}

func (m *Metrics) ScoreSubmitted(ok bool) {
	outcome := "success"
	if !ok {
		outcome = "failure"
	}
	m.scoreSubmits.WithLabelValues(outcome).Inc()
}

// Middleware records request counts and latency per chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		m.httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// Handler exposes the /metrics scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
