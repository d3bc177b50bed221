package chi

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

// --- Projections ---

type baseJSON struct {
	Class     domain.Kind `json:"__class__"`
	ID        string      `json:"id"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func base(kind domain.Kind, m domain.Meta) baseJSON {
	return baseJSON{Class: kind, ID: m.ID(), CreatedAt: m.CreatedAt(), UpdatedAt: m.UpdatedAt()}
}

type stateJSON struct {
	baseJSON
	Name string `json:"name"`
}

type cityJSON struct {
	baseJSON
	StateID string `json:"state_id"`
	Name    string `json:"name"`
}

type amenityJSON struct {
	baseJSON
	Name string `json:"name"`
}

type userJSON struct {
	baseJSON
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type placeJSON struct {
	baseJSON
	CityID          string  `json:"city_id"`
	UserID          string  `json:"user_id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	NumberRooms     int     `json:"number_rooms"`
	NumberBathrooms int     `json:"number_bathrooms"`
	MaxGuest        int     `json:"max_guest"`
	PriceByNight    int     `json:"price_by_night"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
}

type reviewJSON struct {
	baseJSON
	PlaceID string `json:"place_id"`
	UserID  string `json:"user_id"`
	Text    string `json:"text"`
}

func stateToJSON(s domstate.State) stateJSON {
	return stateJSON{baseJSON: base(domain.KindState, s.Meta), Name: s.Name()}
}

func cityToJSON(c domcity.City) cityJSON {
	return cityJSON{baseJSON: base(domain.KindCity, c.Meta), StateID: c.StateID(), Name: c.Name()}
}

func amenityToJSON(a domamenity.Amenity) amenityJSON {
	return amenityJSON{baseJSON: base(domain.KindAmenity, a.Meta), Name: a.Name()}
}

// userToJSON never exposes the password hash.
func userToJSON(u domuser.User) userJSON {
	return userJSON{
		baseJSON:  base(domain.KindUser, u.Meta),
		Email:     u.Email(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
	}
}

func placeToJSON(p domplace.Place) placeJSON {
	return placeJSON{
		baseJSON:        base(domain.KindPlace, p.Meta),
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

func reviewToJSON(r domreview.Review) reviewJSON {
	return reviewJSON{
		baseJSON: base(domain.KindReview, r.Meta),
		PlaceID:  r.PlaceID(),
		UserID:   r.UserID(),
		Text:     r.Text(),
	}
}

// mapSlice projects every element, always yielding a non-nil slice.
func mapSlice[T, J any](items []T, fn func(T) J) []J {
	out := make([]J, len(items))
	for i, v := range items {
		out[i] = fn(v)
	}
	return out
}

// --- Request bodies ---

type nameRequest struct {
	Name string `json:"name"`
}

type createUserRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type updateUserRequest struct {
	Password  *string `json:"password"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

type createPlaceRequest struct {
	UserID          string  `json:"user_id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	NumberRooms     int     `json:"number_rooms"`
	NumberBathrooms int     `json:"number_bathrooms"`
	MaxGuest        int     `json:"max_guest"`
	PriceByNight    int     `json:"price_by_night"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
}

func (req createPlaceRequest) draft() domplace.Draft {
	return domplace.Draft{
		UserID:          req.UserID,
		Name:            req.Name,
		Description:     req.Description,
		NumberRooms:     req.NumberRooms,
		NumberBathrooms: req.NumberBathrooms,
		MaxGuest:        req.MaxGuest,
		PriceByNight:    req.PriceByNight,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
	}
}

type createReviewRequest struct {
	UserID string `json:"user_id"`
	Text   string `json:"text"`
}
