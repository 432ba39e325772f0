package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "presenter"

// Metrics holds the Prometheus counters, histograms, and gauges for the presenter.
type Metrics struct {
	MessagesConsumed prometheus.Counter
	MessagesProduced prometheus.Counter
	TransformErrors  prometheus.Counter
	PipelineRunning  prometheus.Gauge

	// Batch processing metrics.
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// Rendering metrics.
	PresentationsRendered *prometheus.CounterVec // labels: view_style, kind={widget,notification}
	RenderFallbacks       *prometheus.CounterVec // labels: reason={view_style,condition,zone}
	SettingsFallbacks     *prometheus.CounterVec // labels: key
	ZoneCache             *prometheus.CounterVec // labels: result={hit,miss}
	SettingsLookup        prometheus.Histogram
	PreviewRequests       *prometheus.CounterVec // labels: outcome={success,invalid}
}

// NewMetrics creates and registers all presenter metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.MessagesConsumed,
		m.MessagesProduced,
		m.TransformErrors,
		m.PipelineRunning,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.PresentationsRendered,
		m.RenderFallbacks,
		m.SettingsFallbacks,
		m.ZoneCache,
		m.SettingsLookup,
		m.PreviewRequests,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid "already
// registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		MessagesConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_consumed_total",
			Help:      "Total snapshot messages read from the source topic.",
		}),
		MessagesProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_produced_total",
			Help:      "Total presentation messages written to the sink topic.",
		}),
		TransformErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transform_errors_total",
			Help:      "Total snapshots that could not be parsed or rendered.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      "Number of messages per batch extracted from Kafka.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-render-load cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		PresentationsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "presentations_rendered_total",
			Help:      "Presentations rendered by effective view style and surface kind.",
		}, []string{"view_style", "kind"}),
		RenderFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "render_fallbacks_total",
			Help:      "Renders that substituted a documented default.",
		}, []string{"reason"}),
		SettingsFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settings_fallbacks_total",
			Help:      "Persisted preference values replaced by their default.",
		}, []string{"key"}),
		ZoneCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "zone_cache_total",
			Help:      "Time zone cache lookups by result.",
		}, []string{"result"}),
		SettingsLookup: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "settings_lookup_duration_seconds",
			Help:      "Duration of widget settings lookups per snapshot.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
		PreviewRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "preview_requests_total",
			Help:      "Preview API requests by outcome.",
		}, []string{"outcome"}),
	}
}
