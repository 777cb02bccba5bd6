package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for FARS analysis.
type Metrics struct {
	FilesLoaded   prometheus.Counter
	LoadErrors    prometheus.Counter
	RecordsRead   prometheus.Counter
	YearsSkipped  prometheus.Counter
	PlotsRendered prometheus.Counter
	LoadDuration  prometheus.Histogram
}

// NewMetrics creates and registers all analysis metrics with the default
// Prometheus registry. An embedding application exposes them however it
// serves its own metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		FilesLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "files_loaded_total",
			Help:      "Total accident files successfully loaded.",
		}),
		LoadErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "load_errors_total",
			Help:      "Total accident file load failures.",
		}),
		RecordsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "records_read_total",
			Help:      "Total accident records read across all loads.",
		}),
		YearsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "years_skipped_total",
			Help:      "Total years skipped during multi-year aggregation.",
		}),
		PlotsRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "plots_rendered_total",
			Help:      "Total state maps rendered.",
		}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fars",
			Name:      "load_duration_seconds",
			Help:      "Duration of a single accident file load and parse.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
	}

	prometheus.MustRegister(
		m.FilesLoaded,
		m.LoadErrors,
		m.RecordsRead,
		m.YearsSkipped,
		m.PlotsRendered,
		m.LoadDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FilesLoaded:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fars", Name: "files_loaded_total"}),
		LoadErrors:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fars", Name: "load_errors_total"}),
		RecordsRead:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fars", Name: "records_read_total"}),
		YearsSkipped:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fars", Name: "years_skipped_total"}),
		PlotsRendered: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fars", Name: "plots_rendered_total"}),
		LoadDuration:  prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "fars", Name: "load_duration_seconds"}),
	}
}

var (
	defaultOnce    sync.Once
	defaultMetrics *Metrics
)

// Default returns the module-wide Metrics, registering them on first use.
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultMetrics = NewMetrics()
	})
	return defaultMetrics
}
