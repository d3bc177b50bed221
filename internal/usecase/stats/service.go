// Package stats reports entity counts per collection.
package stats

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/hbnb/internal/domain"
)

// Service counts entities of every kind.
type Service struct {
	counters map[domain.Kind]Counter
}

// New creates a stats service over one counter per kind.
func New(counters map[domain.Kind]Counter) *Service {
	return &Service{counters: counters}
}

// Counts returns the number of entities keyed by collection name
// (amenities, cities, ...). Kinds without a counter are omitted.
func (s *Service) Counts(ctx context.Context) (map[string]int, error) {
	out := make(map[string]int, len(domain.Kinds))
	for _, k := range domain.Kinds {
		c, ok := s.counters[k]
		if !ok {
			continue
		}
		n, err := c.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", k.Collection(), err)
		}
		out[k.Collection()] = n
	}
	return out, nil
}
