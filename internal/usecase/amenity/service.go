// Package amenity implements Amenity CRUD.
package amenity

import (
	"context"
	"fmt"
	"time"

	domamenity "github.com/kailas-cloud/hbnb/internal/domain/amenity"
)

// Service handles amenity CRUD.
type Service struct {
	repo    Repository
	deleter Deleter
	now     func() time.Time
}

// New creates an amenity service.
func New(repo Repository, deleter Deleter) *Service {
	return &Service{repo: repo, deleter: deleter, now: time.Now}
}

// WithClock overrides the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// List returns every amenity in creation order.
func (s *Service) List(ctx context.Context) ([]domamenity.Amenity, error) {
	out, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list amenities: %w", err)
	}
	return out, nil
}

// Get returns an amenity by id.
func (s *Service) Get(ctx context.Context, id string) (domamenity.Amenity, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return domamenity.Amenity{}, fmt.Errorf("get amenity: %w", err)
	}
	return a, nil
}

// Create validates and stores a new amenity.
func (s *Service) Create(ctx context.Context, name string) (domamenity.Amenity, error) {
	a, err := domamenity.New(name, s.now())
	if err != nil {
		return domamenity.Amenity{}, err
	}
	if err := s.repo.Save(ctx, a); err != nil {
		return domamenity.Amenity{}, fmt.Errorf("save amenity: %w", err)
	}
	return a, nil
}

// Update applies a patch to an existing amenity.
func (s *Service) Update(ctx context.Context, id string, p domamenity.Patch) (domamenity.Amenity, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return domamenity.Amenity{}, err
	}
	updated, err := a.Apply(p, s.now())
	if err != nil {
		return domamenity.Amenity{}, err
	}
	if err := s.repo.Save(ctx, updated); err != nil {
		return domamenity.Amenity{}, fmt.Errorf("save amenity: %w", err)
	}
	return updated, nil
}

// Delete removes an amenity and unlinks it from places.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.deleter.DeleteAmenity(ctx, id); err != nil {
		return fmt.Errorf("delete amenity: %w", err)
	}
	return nil
}
