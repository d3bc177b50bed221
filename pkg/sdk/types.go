package hbnb

import (
	"time"

	"github.com/kailas-cloud/hbnb/internal/domain"
	domamenity "github.com/kailas-cloud/hbnb/internal/domain/amenity"
	domcity "github.com/kailas-cloud/hbnb/internal/domain/city"
	domplace "github.com/kailas-cloud/hbnb/internal/domain/place"
	domreview "github.com/kailas-cloud/hbnb/internal/domain/review"
	domstate "github.com/kailas-cloud/hbnb/internal/domain/state"
	domuser "github.com/kailas-cloud/hbnb/internal/domain/user"
)

// Meta is the identity and timestamps shared by every record.
type Meta struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// State is a top-level geographic region.
type State struct {
	Meta
	Name string
}

// City belongs to one State.
type City struct {
	Meta
	StateID string
	Name    string
}

// Amenity is a feature a Place may offer.
type Amenity struct {
	Meta
	Name string
}

// User is an account. The password hash is never exposed.
type User struct {
	Meta
	Email     string
	FirstName string
	LastName  string
}

// Place is a lodging listing in a City, owned by a User.
type Place struct {
	Meta
	CityID          string
	UserID          string
	Name            string
	Description     string
	NumberRooms     int
	NumberBathrooms int
	MaxGuest        int
	PriceByNight    int
	Latitude        float64
	Longitude       float64
}

// Review is a User's text about a Place.
type Review struct {
	Meta
	PlaceID string
	UserID  string
	Text    string
}

// NewUser carries the fields accepted when creating a user.
type NewUser struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// UserUpdate changes a user. Nil fields are unchanged.
type UserUpdate struct {
	Password  *string
	FirstName *string
	LastName  *string
}

// NewPlace carries the fields accepted when listing a place.
type NewPlace struct {
	UserID          string
	Name            string
	Description     string
	NumberRooms     int
	NumberBathrooms int
	MaxGuest        int
	PriceByNight    int
	Latitude        float64
	Longitude       float64
}

// PlaceUpdate changes a place. Nil fields are unchanged.
type PlaceUpdate struct {
	Name            *string
	Description     *string
	NumberRooms     *int
	NumberBathrooms *int
	MaxGuest        *int
	PriceByNight    *int
	Latitude        *float64
	Longitude       *float64
}

// SearchFilter narrows a place search. Empty sets are ignored; a zero
// filter matches every place.
type SearchFilter struct {
	States    []string
	Cities    []string
	Amenities []string
}

func fromMeta(m domain.Meta) Meta {
	return Meta{ID: m.ID(), CreatedAt: m.CreatedAt(), UpdatedAt: m.UpdatedAt()}
}

func fromState(s domstate.State) State {
	return State{Meta: fromMeta(s.Meta), Name: s.Name()}
}

func fromCity(c domcity.City) City {
	return City{Meta: fromMeta(c.Meta), StateID: c.StateID(), Name: c.Name()}
}

func fromAmenity(a domamenity.Amenity) Amenity {
	return Amenity{Meta: fromMeta(a.Meta), Name: a.Name()}
}

func fromUser(u domuser.User) User {
	return User{Meta: fromMeta(u.Meta), Email: u.Email(), FirstName: u.FirstName(), LastName: u.LastName()}
}

func fromPlace(p domplace.Place) Place {
	return Place{
		Meta:            fromMeta(p.Meta),
		CityID:          p.CityID(),
		UserID:          p.UserID(),
		Name:            p.Name(),
		Description:     p.Description(),
		NumberRooms:     p.NumberRooms(),
		NumberBathrooms: p.NumberBathrooms(),
		MaxGuest:        p.MaxGuest(),
		PriceByNight:    p.PriceByNight(),
		Latitude:        p.Latitude(),
		Longitude:       p.Longitude(),
	}
}

func fromReview(r domreview.Review) Review {
	return Review{Meta: fromMeta(r.Meta), PlaceID: r.PlaceID(), UserID: r.UserID(), Text: r.Text()}
}

func (p NewPlace) draft() domplace.Draft {
	return domplace.Draft{
		UserID:          p.UserID,
		Name:            p.Name,
		Description:     p.Description,
		NumberRooms:     p.NumberRooms,
		NumberBathrooms: p.NumberBathrooms,
		MaxGuest:        p.MaxGuest,
		PriceByNight:    p.PriceByNight,
		Latitude:        p.Latitude,
		Longitude:       p.Longitude,
	}
}

func (p PlaceUpdate) patch() domplace.Patch {
	return domplace.Patch{
		Name:            p.Name,
		Description:     p.Description,
		NumberRooms:     p.NumberRooms,
		NumberBathrooms: p.NumberBathrooms,
		MaxGuest:        p.MaxGuest,
		PriceByNight:    p.PriceByNight,
		Latitude:        p.Latitude,
		Longitude:       p.Longitude,
	}
}

// mapAll converts every element, always yielding a non-nil slice.
func mapAll[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, v := range items {
		out[i] = fn(v)
	}
	return out
}
