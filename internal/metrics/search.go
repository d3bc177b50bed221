package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Place search Prometheus metrics.
var (
	PlaceSearchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "place_search_total",
			Help:      "Total number of place searches",
		},
		[]string{"scope", "status"}, // scope: all, amenities, scoped, scoped_amenities
	)

	PlaceSearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "place_search_results",
			Help:      "Number of places returned per search",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 1000},
		},
	)

	PlaceSearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "place_search_duration_seconds",
			Help:      "Place search duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"scope"},
	)
)

var registerSearch sync.Once

// RegisterSearchMetrics registers the place search collectors with the
// default registry. Safe to call more than once.
func RegisterSearchMetrics() {
	registerSearch.Do(func() {
		prometheus.MustRegister(PlaceSearchTotal, PlaceSearchResults, PlaceSearchDuration)
	})
}
