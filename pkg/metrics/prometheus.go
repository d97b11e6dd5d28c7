package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain repository.Metrics using Prometheus.
type Recorder struct {
	fetchDuration    *prometheus.HistogramVec
	forecastDuration *prometheus.HistogramVec
	failuresTotal    *prometheus.CounterVec
	cacheLookups     *prometheus.CounterVec
	viewsRendered    *prometheus.CounterVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		fetchDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stockcast_fetch_duration_seconds",
				Help:    "Duration of provider fetches in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"symbol"},
		),
		forecastDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stockcast_forecast_duration_seconds",
				Help:    "Duration of model fit and predict in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"symbol"},
		),
		failuresTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockcast_pipeline_failures_total",
				Help: "Pipeline stage failures by kind",
			},
			[]string{"kind"},
		),
		cacheLookups: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockcast_cache_lookups_total",
				Help: "Memoization cache lookups by outcome",
			},
			[]string{"outcome"},
		),
		viewsRendered: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockcast_views_rendered_total",
				Help: "Chart specs rendered by view",
			},
			[]string{"view"},
		),
	}
}

// RecordFetch records a provider fetch duration.
func (r *Recorder) RecordFetch(symbol string, seconds float64) {
	r.fetchDuration.WithLabelValues(symbol).Observe(seconds)
}

// RecordForecast records a fit/predict duration.
func (r *Recorder) RecordForecast(symbol string, seconds float64) {
	r.forecastDuration.WithLabelValues(symbol).Observe(seconds)
}

// RecordFailure records a pipeline stage failure.
func (r *Recorder) RecordFailure(kind string) {
	r.failuresTotal.WithLabelValues(kind).Inc()
}

// RecordCacheHit records a memoization lookup outcome ("hit" or "miss").
func (r *Recorder) RecordCacheHit(outcome string) {
	r.cacheLookups.WithLabelValues(outcome).Inc()
}

// RecordViewRendered records a rendered chart by view.
func (r *Recorder) RecordViewRendered(view string) {
	r.viewsRendered.WithLabelValues(view).Inc()
}
