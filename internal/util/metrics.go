package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds the generator metrics. A dedicated registry keeps the
// textfile export free of Go runtime collectors.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	RowsGeneratedTotal = factory.NewCounter(prometheus.CounterOpts{
		Name: "generator_rows_generated_total",
		Help: "Total number of synthetic order rows generated",
	})

	FilesWrittenTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "generator_files_written_total",
		Help: "Total number of dataset files landed",
	}, []string{"format"})

	CycleFailuresTotal = factory.NewCounter(prometheus.CounterOpts{
		Name: "generator_cycle_failures_total",
		Help: "Total number of generation cycles that failed",
	})

	LandingEventsFailedTotal = factory.NewCounter(prometheus.CounterOpts{
		Name: "generator_landing_events_failed_total",
		Help: "Total number of landing events that could not be published",
	})

	CycleDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Name:    "generator_cycle_duration_seconds",
		Help:    "Duration of a materialize and write cycle",
		Buckets: prometheus.DefBuckets,
	})

	LastSuccessTimestamp = factory.NewGauge(prometheus.GaugeOpts{
		Name: "generator_last_success_timestamp_seconds",
		Help: "Unix time of the last successful cycle",
	})
)

// WriteMetricsTextfile dumps the registry for the node exporter textfile
// collector. The file is replaced atomically.
func WriteMetricsTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
