// Package city implements City CRUD scoped under states.
package city

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/hbnb/internal/domain"
	domcity "github.com/kailas-cloud/hbnb/internal/domain/city"
)

// Service handles city CRUD.
type Service struct {
	repo    Repository
	states  StateChecker
	rels    Relations
	deleter Deleter
	now     func() time.Time
}

// New creates a city service.
func New(repo Repository, states StateChecker, rels Relations, deleter Deleter) *Service {
	return &Service{repo: repo, states: states, rels: rels, deleter: deleter, now: time.Now}
}

// WithClock overrides the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// ListByState returns the cities of a state in creation order.
func (s *Service) ListByState(ctx context.Context, stateID string) ([]domcity.City, error) {
	if err := s.requireState(ctx, stateID); err != nil {
		return nil, err
	}
	ids, err := s.rels.Members(ctx, domain.StateCities, stateID)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	cities, err := s.repo.GetMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load cities: %w", err)
	}
	return cities, nil
}

// Get returns a city by id.
func (s *Service) Get(ctx context.Context, id string) (domcity.City, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return domcity.City{}, fmt.Errorf("get city: %w", err)
	}
	return c, nil
}

// Create adds a city to an existing state.
func (s *Service) Create(ctx context.Context, stateID, name string) (domcity.City, error) {
	if err := s.requireState(ctx, stateID); err != nil {
		return domcity.City{}, err
	}
	c, err := domcity.New(stateID, name, s.now())
	if err != nil {
		return domcity.City{}, err
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return domcity.City{}, fmt.Errorf("save city: %w", err)
	}
	if _, err := s.rels.Link(ctx, domain.StateCities, stateID, c.ID(), c.CreatedAt()); err != nil {
		return domcity.City{}, fmt.Errorf("link city to state: %w", err)
	}
	return c, nil
}

// Update applies a patch to an existing city.
func (s *Service) Update(ctx context.Context, id string, p domcity.Patch) (domcity.City, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return domcity.City{}, err
	}
	updated, err := c.Apply(p, s.now())
	if err != nil {
		return domcity.City{}, err
	}
	if err := s.repo.Save(ctx, updated); err != nil {
		return domcity.City{}, fmt.Errorf("save city: %w", err)
	}
	return updated, nil
}

// Delete removes a city and its places.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.deleter.DeleteCity(ctx, id); err != nil {
		return fmt.Errorf("delete city: %w", err)
	}
	return nil
}

func (s *Service) requireState(ctx context.Context, stateID string) error {
	ok, err := s.states.Exists(ctx, stateID)
	if err != nil {
		return fmt.Errorf("check state: %w", err)
	}
	if !ok {
		return fmt.Errorf("state %s: %w", stateID, domain.ErrNotFound)
	}
	return nil
}
