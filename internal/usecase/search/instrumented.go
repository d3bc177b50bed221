package search

import (
	"context"
	"time"

	"go.uber.org/zap"

	domplace "github.com/kailas-cloud/hbnb/internal/domain/place"
	"github.com/kailas-cloud/hbnb/internal/domain/search/filter"
	"github.com/kailas-cloud/hbnb/internal/logger"
	"github.com/kailas-cloud/hbnb/internal/metrics"
)

// Searcher runs place searches.
type Searcher interface {
	Search(ctx context.Context, f filter.Filter) ([]domplace.Place, error)
}

// InstrumentedSearcher wraps a Searcher with logging and search metrics.
type InstrumentedSearcher struct {
	inner  Searcher
	logger *zap.Logger
}

// NewInstrumentedSearcher wraps inner. The fallback logger is used when the
// request context carries none.
func NewInstrumentedSearcher(inner Searcher, fallback *zap.Logger) *InstrumentedSearcher {
	return &InstrumentedSearcher{inner: inner, logger: fallback}
}

// Search delegates to the inner searcher and records scope, result size and latency.
func (s *InstrumentedSearcher) Search(ctx context.Context, f filter.Filter) ([]domplace.Place, error) {
	log := logger.FromContext(ctx, s.logger)
	scope := f.Scope()
	start := time.Now()

	places, err := s.inner.Search(ctx, f)

	duration := time.Since(start)
	metrics.PlaceSearchDuration.WithLabelValues(scope).Observe(duration.Seconds())
	if err != nil {
		metrics.PlaceSearchTotal.WithLabelValues(scope, "error").Inc()
		log.Error("Place search failed",
			zap.String("scope", scope),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	metrics.PlaceSearchTotal.WithLabelValues(scope, "ok").Inc()
	metrics.PlaceSearchResults.Observe(float64(len(places)))
	log.Debug("Place search completed",
		zap.String("scope", scope),
		zap.Int("states", len(f.StateIDs())),
		zap.Int("cities", len(f.CityIDs())),
		zap.Int("amenities", len(f.AmenityIDs())),
		zap.Int("results", len(places)),
		zap.Duration("duration", duration),
	)
	return places, nil
}
