package hbnb

import (
	"context"
	"fmt"

	domamenity "github.com/kailas-cloud/hbnb/internal/domain/amenity"
	domcity "github.com/kailas-cloud/hbnb/internal/domain/city"
	domreview "github.com/kailas-cloud/hbnb/internal/domain/review"
	"github.com/kailas-cloud/hbnb/internal/domain/search/filter"
	domstate "github.com/kailas-cloud/hbnb/internal/domain/state"
	amenityuc "github.com/kailas-cloud/hbnb/internal/usecase/amenity"
	cityuc "github.com/kailas-cloud/hbnb/internal/usecase/city"
	placeuc "github.com/kailas-cloud/hbnb/internal/usecase/place"
	reviewuc "github.com/kailas-cloud/hbnb/internal/usecase/review"
	stateuc "github.com/kailas-cloud/hbnb/internal/usecase/state"
	useruc "github.com/kailas-cloud/hbnb/internal/usecase/user"
)

// none is the result type of operations that only report an error.
type none struct{}

func run(o *observer, op string, fn func() error) error {
	_, err := call(o, op, func() (none, error) { return none{}, fn() })
	return err
}

// --- States ---

// StateService manages states.
type StateService struct {
	svc *stateuc.Service
	obs *observer
}

// List returns every state in creation order.
func (s *StateService) List(ctx context.Context) ([]State, error) {
	return call(s.obs, "state.list", func() ([]State, error) {
		items, err := s.svc.List(ctx)
		return mapAll(items, fromState), err
	})
}

// Get returns one state.
func (s *StateService) Get(ctx context.Context, id string) (State, error) {
	return call(s.obs, "state.get", func() (State, error) {
		st, err := s.svc.Get(ctx, id)
		return fromState(st), err
	})
}

// Create adds a state.
func (s *StateService) Create(ctx context.Context, name string) (State, error) {
	return call(s.obs, "state.create", func() (State, error) {
		st, err := s.svc.Create(ctx, name)
		return fromState(st), err
	})
}

// Rename changes a state's name.
func (s *StateService) Rename(ctx context.Context, id, name string) (State, error) {
	return call(s.obs, "state.rename", func() (State, error) {
		st, err := s.svc.Update(ctx, id, domstate.Patch{Name: &name})
		return fromState(st), err
	})
}

// Delete removes a state and everything under it.
func (s *StateService) Delete(ctx context.Context, id string) error {
	return run(s.obs, "state.delete", func() error { return s.svc.Delete(ctx, id) })
}

// --- Cities ---

// CityService manages cities.
type CityService struct {
	svc *cityuc.Service
	obs *observer
}

// List returns the cities of a state in creation order.
func (s *CityService) List(ctx context.Context, stateID string) ([]City, error) {
	return call(s.obs, "city.list", func() ([]City, error) {
		items, err := s.svc.ListByState(ctx, stateID)
		return mapAll(items, fromCity), err
	})
}

// Get returns one city.
func (s *CityService) Get(ctx context.Context, id string) (City, error) {
	return call(s.obs, "city.get", func() (City, error) {
		c, err := s.svc.Get(ctx, id)
		return fromCity(c), err
	})
}

// Create adds a city to a state.
func (s *CityService) Create(ctx context.Context, stateID, name string) (City, error) {
	return call(s.obs, "city.create", func() (City, error) {
		c, err := s.svc.Create(ctx, stateID, name)
		return fromCity(c), err
	})
}

// Rename changes a city's name.
func (s *CityService) Rename(ctx context.Context, id, name string) (City, error) {
	return call(s.obs, "city.rename", func() (City, error) {
		c, err := s.svc.Update(ctx, id, domcity.Patch{Name: &name})
		return fromCity(c), err
	})
}

// Delete removes a city and its places.
func (s *CityService) Delete(ctx context.Context, id string) error {
	return run(s.obs, "city.delete", func() error { return s.svc.Delete(ctx, id) })
}

// --- Amenities ---

// AmenityService manages amenities.
type AmenityService struct {
	svc *amenityuc.Service
	obs *observer
}

// List returns every amenity in creation order.
func (s *AmenityService) List(ctx context.Context) ([]Amenity, error) {
	return call(s.obs, "amenity.list", func() ([]Amenity, error) {
		items, err := s.svc.List(ctx)
		return mapAll(items, fromAmenity), err
	})
}

// Get returns one amenity.
func (s *AmenityService) Get(ctx context.Context, id string) (Amenity, error) {
	return call(s.obs, "amenity.get", func() (Amenity, error) {
		a, err := s.svc.Get(ctx, id)
		return fromAmenity(a), err
	})
}

// Create adds an amenity.
func (s *AmenityService) Create(ctx context.Context, name string) (Amenity, error) {
	return call(s.obs, "amenity.create", func() (Amenity, error) {
		a, err := s.svc.Create(ctx, name)
		return fromAmenity(a), err
	})
}

// Rename changes an amenity's name.
func (s *AmenityService) Rename(ctx context.Context, id, name string) (Amenity, error) {
	return call(s.obs, "amenity.rename", func() (Amenity, error) {
		a, err := s.svc.Update(ctx, id, domamenity.Patch{Name: &name})
		return fromAmenity(a), err
	})
}

// Delete removes an amenity and unlinks it from every place.
func (s *AmenityService) Delete(ctx context.Context, id string) error {
	return run(s.obs, "amenity.delete", func() error { return s.svc.Delete(ctx, id) })
}

// --- Users ---

// UserService manages user accounts.
type UserService struct {
	svc *useruc.Service
	obs *observer
}

// List returns every user in creation order.
func (s *UserService) List(ctx context.Context) ([]User, error) {
	return call(s.obs, "user.list", func() ([]User, error) {
		items, err := s.svc.List(ctx)
		return mapAll(items, fromUser), err
	})
}

// Get returns one user.
func (s *UserService) Get(ctx context.Context, id string) (User, error) {
	return call(s.obs, "user.get", func() (User, error) {
		u, err := s.svc.Get(ctx, id)
		return fromUser(u), err
	})
}

// Create registers a user. The password is stored as a bcrypt hash.
func (s *UserService) Create(ctx context.Context, in NewUser) (User, error) {
	return call(s.obs, "user.create", func() (User, error) {
		u, err := s.svc.Create(ctx, useruc.CreateInput{
			Email:     in.Email,
			Password:  in.Password,
			FirstName: in.FirstName,
			LastName:  in.LastName,
		})
		return fromUser(u), err
	})
}

// Update changes a user's mutable fields.
func (s *UserService) Update(ctx context.Context, id string, in UserUpdate) (User, error) {
	return call(s.obs, "user.update", func() (User, error) {
		u, err := s.svc.Update(ctx, id, useruc.UpdateInput{
			Password:  in.Password,
			FirstName: in.FirstName,
			LastName:  in.LastName,
		})
		return fromUser(u), err
	})
}

// Delete removes a user with their places and reviews.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return run(s.obs, "user.delete", func() error { return s.svc.Delete(ctx, id) })
}

// --- Places ---

// PlaceService manages places and their amenities.
type PlaceService struct {
	svc *placeuc.Service
	obs *observer
}

// List returns the places of a city in creation order.
func (s *PlaceService) List(ctx context.Context, cityID string) ([]Place, error) {
	return call(s.obs, "place.list", func() ([]Place, error) {
		items, err := s.svc.ListByCity(ctx, cityID)
		return mapAll(items, fromPlace), err
	})
}

// Get returns one place.
func (s *PlaceService) Get(ctx context.Context, id string) (Place, error) {
	return call(s.obs, "place.get", func() (Place, error) {
		p, err := s.svc.Get(ctx, id)
		return fromPlace(p), err
	})
}

// Create lists a place in a city.
func (s *PlaceService) Create(ctx context.Context, cityID string, in NewPlace) (Place, error) {
	return call(s.obs, "place.create", func() (Place, error) {
		p, err := s.svc.Create(ctx, cityID, in.draft())
		return fromPlace(p), err
	})
}

// Update changes a place's mutable fields.
func (s *PlaceService) Update(ctx context.Context, id string, in PlaceUpdate) (Place, error) {
	return call(s.obs, "place.update", func() (Place, error) {
		p, err := s.svc.Update(ctx, id, in.patch())
		return fromPlace(p), err
	})
}

// Delete removes a place with its reviews.
func (s *PlaceService) Delete(ctx context.Context, id string) error {
	return run(s.obs, "place.delete", func() error { return s.svc.Delete(ctx, id) })
}

// Amenities returns the amenities linked to a place.
func (s *PlaceService) Amenities(ctx context.Context, placeID string) ([]Amenity, error) {
	return call(s.obs, "place.amenities", func() ([]Amenity, error) {
		items, err := s.svc.Amenities(ctx, placeID)
		return mapAll(items, fromAmenity), err
	})
}

// LinkAmenity links an amenity to a place. It reports false when the link
// already existed.
func (s *PlaceService) LinkAmenity(ctx context.Context, placeID, amenityID string) (bool, error) {
	return call(s.obs, "place.link_amenity", func() (bool, error) {
		_, created, err := s.svc.LinkAmenity(ctx, placeID, amenityID)
		return created, err
	})
}

// UnlinkAmenity removes a link. ErrNotFound when the pair is not linked.
func (s *PlaceService) UnlinkAmenity(ctx context.Context, placeID, amenityID string) error {
	return run(s.obs, "place.unlink_amenity", func() error {
		return s.svc.UnlinkAmenity(ctx, placeID, amenityID)
	})
}

// --- Reviews ---

// ReviewService manages reviews.
type ReviewService struct {
	svc *reviewuc.Service
	obs *observer
}

// List returns the reviews of a place in creation order.
func (s *ReviewService) List(ctx context.Context, placeID string) ([]Review, error) {
	return call(s.obs, "review.list", func() ([]Review, error) {
		items, err := s.svc.ListByPlace(ctx, placeID)
		return mapAll(items, fromReview), err
	})
}

// Get returns one review.
func (s *ReviewService) Get(ctx context.Context, id string) (Review, error) {
	return call(s.obs, "review.get", func() (Review, error) {
		r, err := s.svc.Get(ctx, id)
		return fromReview(r), err
	})
}

// Create adds a user's review of a place.
func (s *ReviewService) Create(ctx context.Context, placeID, userID, text string) (Review, error) {
	return call(s.obs, "review.create", func() (Review, error) {
		r, err := s.svc.Create(ctx, placeID, userID, text)
		return fromReview(r), err
	})
}

// Edit replaces a review's text.
func (s *ReviewService) Edit(ctx context.Context, id, text string) (Review, error) {
	return call(s.obs, "review.edit", func() (Review, error) {
		r, err := s.svc.Update(ctx, id, domreview.Patch{Text: &text})
		return fromReview(r), err
	})
}

// Delete removes a review.
func (s *ReviewService) Delete(ctx context.Context, id string) error {
	return run(s.obs, "review.delete", func() error { return s.svc.Delete(ctx, id) })
}

// --- Search ---

// Search returns the places matching f, in the same order as the REST API.
func (c *Client) Search(ctx context.Context, f SearchFilter) ([]Place, error) {
	return call(c.obs, "search", func() ([]Place, error) {
		places, err := c.search.Search(ctx, filter.New(f.States, f.Cities, f.Amenities))
		if err != nil {
			return nil, fmt.Errorf("search: %w", err)
		}
		return mapAll(places, fromPlace), nil
	})
}
