// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Evaluations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sarrisk_evaluations_total",
		Help: "Evaluations computed, by questionnaire type and whether a range matched",
	}, []string{"type", "matched"})

	EntriesScored = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sarrisk_entries_scored_total",
		Help: "Entry score changes, by questionnaire type",
	}, []string{"type"})

	AssessmentsStarted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sarrisk_assessments_started_total",
		Help: "Assessments started, by questionnaire type",
	}, []string{"type"})

	AssessmentsFinalized = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sarrisk_assessments_finalized_total",
		Help: "Assessments finalized, by questionnaire type and color token of the result",
	}, []string{"type", "color"})

	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sarrisk_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method", "status"})

	WSConnections = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "sarrisk_ws_connections",
		Help: "Open coordinator WebSocket connections",
	})
)

// Registry holds every collector above
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(
		Evaluations,
		EntriesScored,
		AssessmentsStarted,
		AssessmentsFinalized,
		HTTPDuration,
		WSConnections,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
}

// Handler serves the registry in the Prometheus exposition format
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}

// Matched renders a bool label value
func Matched(ok bool) string {
	if ok {
		return "true"
	}
	return "false"
}
