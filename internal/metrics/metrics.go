// Package metrics exposes Prometheus instruments for the catalog.
//
// Metrics are served on /metrics in the Prometheus text format.
//
//   - note_list_duration_seconds{operation}: listing pipeline latency (histogram)
//   - note_list_errors_total{operation, stage}: failed listing pipelines (counter)
//   - note_list_results_total{operation}: notes returned by listings (counter)
//   - cache_hits_total{cache_type}, cache_misses_total{cache_type}: lookup cache efficiency
//   - note_views_total{incremented}: tracked views (counter)
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NoteListDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "note_list_duration_seconds",
			Help:    "Duration of note listing pipelines (count, id page, hydrate)",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"operation"},
	)

	NoteListErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "note_list_errors_total",
			Help: "Total failed note listing pipelines by stage",
		},
		[]string{"operation", "stage"},
	)

	NoteListResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "note_list_results_total",
			Help: "Total notes returned by listing pipelines",
		},
		[]string{"operation"},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total lookup cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total lookup cache misses",
		},
		[]string{"cache_type"},
	)

	NoteViews = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "note_views_total",
			Help: "Total tracked note views",
		},
		[]string{"incremented"},
	)
)

func RecordView(incremented bool) {
	NoteViews.WithLabelValues(strconv.FormatBool(incremented)).Inc()
}
