// Package place implements Place CRUD and the place-amenity association.
package place

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/hbnb/internal/domain"
	domamenity "github.com/kailas-cloud/hbnb/internal/domain/amenity"
	domplace "github.com/kailas-cloud/hbnb/internal/domain/place"
)

// Service handles place CRUD and amenity links.
type Service struct {
	repo      Repository
	cities    Checker
	users     Checker
	amenities AmenityReader
	rels      Relations
	deleter   Deleter
	now       func() time.Time
}

// New creates a place service.
func New(
	repo Repository, cities, users Checker, amenities AmenityReader, rels Relations, deleter Deleter,
) *Service {
	return &Service{
		repo:      repo,
		cities:    cities,
		users:     users,
		amenities: amenities,
		rels:      rels,
		deleter:   deleter,
		now:       time.Now,
	}
}

// WithClock overrides the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// ListByCity returns the places of a city in creation order.
func (s *Service) ListByCity(ctx context.Context, cityID string) ([]domplace.Place, error) {
	if err := require(ctx, s.cities, domain.KindCity, cityID); err != nil {
		return nil, err
	}
	ids, err := s.rels.Members(ctx, domain.CityPlaces, cityID)
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}
	places, err := s.repo.GetMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load places: %w", err)
	}
	return places, nil
}

// Get returns a place by id.
func (s *Service) Get(ctx context.Context, id string) (domplace.Place, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return domplace.Place{}, fmt.Errorf("get place: %w", err)
	}
	return p, nil
}

// Create lists a new place in a city. The city is checked first, then
// user_id presence, the user's existence and finally the remaining fields.
func (s *Service) Create(ctx context.Context, cityID string, d domplace.Draft) (domplace.Place, error) {
	if err := require(ctx, s.cities, domain.KindCity, cityID); err != nil {
		return domplace.Place{}, err
	}
	if d.UserID == "" {
		return domplace.Place{}, domain.NewMissingField("user_id")
	}
	if err := require(ctx, s.users, domain.KindUser, d.UserID); err != nil {
		return domplace.Place{}, err
	}
	d.CityID = cityID
	p, err := domplace.New(d, s.now())
	if err != nil {
		return domplace.Place{}, err
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return domplace.Place{}, fmt.Errorf("save place: %w", err)
	}
	if _, err := s.rels.Link(ctx, domain.CityPlaces, cityID, p.ID(), p.CreatedAt()); err != nil {
		return domplace.Place{}, fmt.Errorf("link place to city: %w", err)
	}
	if _, err := s.rels.Link(ctx, domain.UserPlaces, d.UserID, p.ID(), p.CreatedAt()); err != nil {
		return domplace.Place{}, fmt.Errorf("link place to user: %w", err)
	}
	return p, nil
}

// Update applies a patch to an existing place.
func (s *Service) Update(ctx context.Context, id string, pt domplace.Patch) (domplace.Place, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return domplace.Place{}, err
	}
	updated, err := p.Apply(pt, s.now())
	if err != nil {
		return domplace.Place{}, err
	}
	if err := s.repo.Save(ctx, updated); err != nil {
		return domplace.Place{}, fmt.Errorf("save place: %w", err)
	}
	return updated, nil
}

// Delete removes a place with its reviews and amenity links.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.deleter.DeletePlace(ctx, id); err != nil {
		return fmt.Errorf("delete place: %w", err)
	}
	return nil
}

// Amenities returns the amenities linked to a place in link order.
func (s *Service) Amenities(ctx context.Context, placeID string) ([]domamenity.Amenity, error) {
	if err := require(ctx, s.repo, domain.KindPlace, placeID); err != nil {
		return nil, err
	}
	ids, err := s.rels.Members(ctx, domain.PlaceAmenities, placeID)
	if err != nil {
		return nil, fmt.Errorf("list place amenities: %w", err)
	}
	out, err := s.amenities.GetMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load amenities: %w", err)
	}
	return out, nil
}

// LinkAmenity associates an amenity with a place in both directions.
// Reports created=false when the pair was already linked.
func (s *Service) LinkAmenity(ctx context.Context, placeID, amenityID string) (domamenity.Amenity, bool, error) {
	if err := require(ctx, s.repo, domain.KindPlace, placeID); err != nil {
		return domamenity.Amenity{}, false, err
	}
	a, err := s.amenities.Get(ctx, amenityID)
	if err != nil {
		return domamenity.Amenity{}, false, fmt.Errorf("get amenity: %w", err)
	}
	at := s.now()
	created, err := s.rels.Link(ctx, domain.PlaceAmenities, placeID, amenityID, at)
	if err != nil {
		return domamenity.Amenity{}, false, fmt.Errorf("link amenity: %w", err)
	}
	if _, err := s.rels.Link(ctx, domain.AmenityPlaces, amenityID, placeID, at); err != nil {
		return domamenity.Amenity{}, false, fmt.Errorf("link amenity: %w", err)
	}
	return a, created, nil
}

// UnlinkAmenity removes the association in both directions. Returns
// domain.ErrNotFound when either side is missing or they are not linked.
func (s *Service) UnlinkAmenity(ctx context.Context, placeID, amenityID string) error {
	if err := require(ctx, s.repo, domain.KindPlace, placeID); err != nil {
		return err
	}
	if _, err := s.amenities.Get(ctx, amenityID); err != nil {
		return fmt.Errorf("get amenity: %w", err)
	}
	removed, err := s.rels.Unlink(ctx, domain.PlaceAmenities, placeID, amenityID)
	if err != nil {
		return fmt.Errorf("unlink amenity: %w", err)
	}
	if !removed {
		return fmt.Errorf("amenity %s not linked to place %s: %w", amenityID, placeID, domain.ErrNotFound)
	}
	if _, err := s.rels.Unlink(ctx, domain.AmenityPlaces, amenityID, placeID); err != nil {
		return fmt.Errorf("unlink amenity: %w", err)
	}
	return nil
}

func require(ctx context.Context, c Checker, kind domain.Kind, id string) error {
	ok, err := c.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check %s: %w", kind, err)
	}
	if !ok {
		return fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
	}
	return nil
}
