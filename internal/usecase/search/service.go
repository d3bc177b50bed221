// Package search implements place search by geographic scope and required
// amenities.
package search

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/hbnb/internal/domain"
	domplace "github.com/kailas-cloud/hbnb/internal/domain/place"
	"github.com/kailas-cloud/hbnb/internal/domain/search/filter"
)

// Service answers place searches. It never mutates the store.
type Service struct {
	places PlaceReader
	states Checker
	cities Checker
	rels   RelationReader
}

// New creates a search service.
func New(places PlaceReader, states, cities Checker, rels RelationReader) *Service {
	return &Service{places: places, states: states, cities: cities, rels: rels}
}

// Search returns the places matching f.
//
// An empty filter returns every place. Otherwise candidates are expanded from
// states (through their cities) and then from cities, deduplicated in first
// encounter order; with no scope at all the candidates are every place.
// When amenities are given, only places linked to all of them are kept.
func (s *Service) Search(ctx context.Context, f filter.Filter) ([]domplace.Place, error) {
	if f.IsEmpty() {
		places, err := s.places.All(ctx)
		if err != nil {
			return nil, fmt.Errorf("list places: %w", err)
		}
		return places, nil
	}

	candidates, err := s.candidates(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(f.AmenityIDs()) == 0 {
		return candidates, nil
	}

	out := make([]domplace.Place, 0, len(candidates))
	for _, p := range candidates {
		ok, err := s.hasAll(ctx, p.ID(), f.AmenityIDs())
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Service) candidates(ctx context.Context, f filter.Filter) ([]domplace.Place, error) {
	if !f.HasScope() {
		places, err := s.places.All(ctx)
		if err != nil {
			return nil, fmt.Errorf("list places: %w", err)
		}
		return places, nil
	}

	var ids []string
	seen := make(map[string]struct{})
	add := func(placeIDs []string) {
		for _, id := range placeIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	for _, stateID := range f.StateIDs() {
		ok, err := s.states.Exists(ctx, stateID)
		if err != nil {
			return nil, fmt.Errorf("resolve state %s: %w", stateID, err)
		}
		if !ok {
			continue
		}
		cityIDs, err := s.rels.Members(ctx, domain.StateCities, stateID)
		if err != nil {
			return nil, fmt.Errorf("cities of state %s: %w", stateID, err)
		}
		for _, cityID := range cityIDs {
			placeIDs, err := s.rels.Members(ctx, domain.CityPlaces, cityID)
			if err != nil {
				return nil, fmt.Errorf("places of city %s: %w", cityID, err)
			}
			add(placeIDs)
		}
	}

	for _, cityID := range f.CityIDs() {
		ok, err := s.cities.Exists(ctx, cityID)
		if err != nil {
			return nil, fmt.Errorf("resolve city %s: %w", cityID, err)
		}
		if !ok {
			continue
		}
		placeIDs, err := s.rels.Members(ctx, domain.CityPlaces, cityID)
		if err != nil {
			return nil, fmt.Errorf("places of city %s: %w", cityID, err)
		}
		add(placeIDs)
	}

	places, err := s.places.GetMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}
	return places, nil
}

// hasAll reports whether the place is linked to every wanted amenity.
func (s *Service) hasAll(ctx context.Context, placeID string, wanted []string) (bool, error) {
	linked, err := s.rels.Members(ctx, domain.PlaceAmenities, placeID)
	if err != nil {
		return false, fmt.Errorf("amenities of place %s: %w", placeID, err)
	}
	have := make(map[string]struct{}, len(linked))
	for _, id := range linked {
		have[id] = struct{}{}
	}
	for _, id := range wanted {
		if _, ok := have[id]; !ok {
			return false, nil
		}
	}
	return true, nil
}
