// Package cascade deletes aggregates together with everything they own and
// keeps relation sets consistent.
package cascade

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/hbnb/internal/domain"
)

// Service performs cascading deletes.
type Service struct {
	states    Remover
	cities    CityReader
	places    PlaceReader
	amenities Remover
	users     Remover
	reviews   ReviewReader
	rels      Relations
}

// New creates a cascade service.
func New(
	states Remover, cities CityReader, places PlaceReader,
	amenities Remover, users Remover, reviews ReviewReader, rels Relations,
) *Service {
	return &Service{
		states:    states,
		cities:    cities,
		places:    places,
		amenities: amenities,
		users:     users,
		reviews:   reviews,
		rels:      rels,
	}
}

// DeleteState removes a state and its cities.
func (s *Service) DeleteState(ctx context.Context, id string) error {
	if err := mustExist(ctx, s.states, domain.KindState, id); err != nil {
		return err
	}
	cityIDs, err := s.rels.Members(ctx, domain.StateCities, id)
	if err != nil {
		return err
	}
	for _, cid := range cityIDs {
		if err := ignoreMissing(s.DeleteCity(ctx, cid)); err != nil {
			return fmt.Errorf("delete city %s of state %s: %w", cid, id, err)
		}
	}
	if err := s.rels.Drop(ctx, domain.StateCities, id); err != nil {
		return err
	}
	return s.states.Delete(ctx, id)
}

// DeleteCity removes a city and its places.
func (s *Service) DeleteCity(ctx context.Context, id string) error {
	c, err := s.cities.Get(ctx, id)
	if err != nil {
		return err
	}
	placeIDs, err := s.rels.Members(ctx, domain.CityPlaces, id)
	if err != nil {
		return err
	}
	for _, pid := range placeIDs {
		if err := ignoreMissing(s.DeletePlace(ctx, pid)); err != nil {
			return fmt.Errorf("delete place %s of city %s: %w", pid, id, err)
		}
	}
	if err := s.rels.Drop(ctx, domain.CityPlaces, id); err != nil {
		return err
	}
	if _, err := s.rels.Unlink(ctx, domain.StateCities, c.StateID(), id); err != nil {
		return err
	}
	return s.cities.Delete(ctx, id)
}

// DeletePlace removes a place, its reviews and its amenity links.
func (s *Service) DeletePlace(ctx context.Context, id string) error {
	p, err := s.places.Get(ctx, id)
	if err != nil {
		return err
	}
	reviewIDs, err := s.rels.Members(ctx, domain.PlaceReviews, id)
	if err != nil {
		return err
	}
	for _, rid := range reviewIDs {
		if err := ignoreMissing(s.DeleteReview(ctx, rid)); err != nil {
			return fmt.Errorf("delete review %s of place %s: %w", rid, id, err)
		}
	}
	amenityIDs, err := s.rels.Members(ctx, domain.PlaceAmenities, id)
	if err != nil {
		return err
	}
	for _, aid := range amenityIDs {
		if _, err := s.rels.Unlink(ctx, domain.AmenityPlaces, aid, id); err != nil {
			return err
		}
	}
	for _, rel := range []domain.Relation{domain.PlaceReviews, domain.PlaceAmenities} {
		if err := s.rels.Drop(ctx, rel, id); err != nil {
			return err
		}
	}
	if _, err := s.rels.Unlink(ctx, domain.CityPlaces, p.CityID(), id); err != nil {
		return err
	}
	if _, err := s.rels.Unlink(ctx, domain.UserPlaces, p.UserID(), id); err != nil {
		return err
	}
	return s.places.Delete(ctx, id)
}

// DeleteReview removes a review from its place and author.
func (s *Service) DeleteReview(ctx context.Context, id string) error {
	r, err := s.reviews.Get(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.rels.Unlink(ctx, domain.PlaceReviews, r.PlaceID(), id); err != nil {
		return err
	}
	if _, err := s.rels.Unlink(ctx, domain.UserReviews, r.UserID(), id); err != nil {
		return err
	}
	return s.reviews.Delete(ctx, id)
}

// DeleteUser removes a user with the places and reviews they own.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	if err := mustExist(ctx, s.users, domain.KindUser, id); err != nil {
		return err
	}
	placeIDs, err := s.rels.Members(ctx, domain.UserPlaces, id)
	if err != nil {
		return err
	}
	for _, pid := range placeIDs {
		if err := ignoreMissing(s.DeletePlace(ctx, pid)); err != nil {
			return fmt.Errorf("delete place %s of user %s: %w", pid, id, err)
		}
	}
	// Reviews on the user's own places are gone by now.
	reviewIDs, err := s.rels.Members(ctx, domain.UserReviews, id)
	if err != nil {
		return err
	}
	for _, rid := range reviewIDs {
		if err := ignoreMissing(s.DeleteReview(ctx, rid)); err != nil {
			return fmt.Errorf("delete review %s of user %s: %w", rid, id, err)
		}
	}
	for _, rel := range []domain.Relation{domain.UserPlaces, domain.UserReviews} {
		if err := s.rels.Drop(ctx, rel, id); err != nil {
			return err
		}
	}
	return s.users.Delete(ctx, id)
}

// DeleteAmenity removes an amenity and unlinks it from every place.
func (s *Service) DeleteAmenity(ctx context.Context, id string) error {
	if err := mustExist(ctx, s.amenities, domain.KindAmenity, id); err != nil {
		return err
	}
	placeIDs, err := s.rels.Members(ctx, domain.AmenityPlaces, id)
	if err != nil {
		return err
	}
	for _, pid := range placeIDs {
		if _, err := s.rels.Unlink(ctx, domain.PlaceAmenities, pid, id); err != nil {
			return err
		}
	}
	if err := s.rels.Drop(ctx, domain.AmenityPlaces, id); err != nil {
		return err
	}
	return s.amenities.Delete(ctx, id)
}

func mustExist(ctx context.Context, r Remover, kind domain.Kind, id string) error {
	ok, err := r.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
	}
	return nil
}

// ignoreMissing tolerates dangling relation members.
func ignoreMissing(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}
