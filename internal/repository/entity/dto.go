package entity

import (
	"encoding/json"
	"time"

	"github.com/kailas-cloud/hbnb/internal/domain"
	"github.com/kailas-cloud/hbnb/internal/domain/amenity"
	"github.com/kailas-cloud/hbnb/internal/domain/city"
	"github.com/kailas-cloud/hbnb/internal/domain/place"
	"github.com/kailas-cloud/hbnb/internal/domain/review"
	"github.com/kailas-cloud/hbnb/internal/domain/state"
	"github.com/kailas-cloud/hbnb/internal/domain/user"
)

// record is the stored identity block shared by every kind.
type record struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func recordOf(m interface {
	ID() string
	CreatedAt() time.Time
	UpdatedAt() time.Time
}) record {
	return record{ID: m.ID(), CreatedAt: m.CreatedAt(), UpdatedAt: m.UpdatedAt()}
}

func (r record) meta() domain.Meta {
	return domain.RestoreMeta(r.ID, r.CreatedAt, r.UpdatedAt)
}

// --- State ---

type stateRecord struct {
	record
	Name string `json:"name"`
}

// StateCodec stores State aggregates.
type StateCodec struct{}

// Kind implements Codec.
func (StateCodec) Kind() domain.Kind { return domain.KindState }

// Encode implements Codec.
func (StateCodec) Encode(s state.State) ([]byte, error) {
	return json.Marshal(stateRecord{record: recordOf(s), Name: s.Name()})
}

// Decode implements Codec.
func (StateCodec) Decode(data []byte) (state.State, error) {
	var r stateRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return state.State{}, err
	}
	return state.Reconstruct(r.meta(), r.Name), nil
}

// --- City ---

type cityRecord struct {
	record
	StateID string `json:"state_id"`
	Name    string `json:"name"`
}

// CityCodec stores City aggregates.
type CityCodec struct{}

// Kind implements Codec.
func (CityCodec) Kind() domain.Kind { return domain.KindCity }

// Encode implements Codec.
func (CityCodec) Encode(c city.City) ([]byte, error) {
	return json.Marshal(cityRecord{record: recordOf(c), StateID: c.StateID(), Name: c.Name()})
}

// Decode implements Codec.
func (CityCodec) Decode(data []byte) (city.City, error) {
	var r cityRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return city.City{}, err
	}
	return city.Reconstruct(r.meta(), r.StateID, r.Name), nil
}

// --- Amenity ---

type amenityRecord struct {
	record
	Name string `json:"name"`
}

// AmenityCodec stores Amenity aggregates.
type AmenityCodec struct{}

// Kind implements Codec.
func (AmenityCodec) Kind() domain.Kind { return domain.KindAmenity }

// Encode implements Codec.
func (AmenityCodec) Encode(a amenity.Amenity) ([]byte, error) {
	return json.Marshal(amenityRecord{record: recordOf(a), Name: a.Name()})
}

// Decode implements Codec.
func (AmenityCodec) Decode(data []byte) (amenity.Amenity, error) {
	var r amenityRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return amenity.Amenity{}, err
	}
	return amenity.Reconstruct(r.meta(), r.Name), nil
}

// --- User ---

type userRecord struct {
	record
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
}

// UserCodec stores User aggregates.
type UserCodec struct{}

// Kind implements Codec.
func (UserCodec) Kind() domain.Kind { return domain.KindUser }

// Encode implements Codec.
func (UserCodec) Encode(u user.User) ([]byte, error) {
	return json.Marshal(userRecord{
		record:       recordOf(u),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
	})
}

// Decode implements Codec.
func (UserCodec) Decode(data []byte) (user.User, error) {
	var r userRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return user.User{}, err
	}
	return user.Reconstruct(r.meta(), r.Email, r.PasswordHash, r.FirstName, r.LastName), nil
}

// --- Place ---

type placeRecord struct {
	record
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

// PlaceCodec stores Place aggregates.
type PlaceCodec struct{}

// Kind implements Codec.
func (PlaceCodec) Kind() domain.Kind { return domain.KindPlace }

// Encode implements Codec.
func (PlaceCodec) Encode(p place.Place) ([]byte, error) {
	return json.Marshal(placeRecord{
		record:          recordOf(p),
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
	})
}

// Decode implements Codec.
func (PlaceCodec) Decode(data []byte) (place.Place, error) {
	var r placeRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return place.Place{}, err
	}
	return place.Reconstruct(r.meta(), place.Draft{
		CityID:          r.CityID,
		UserID:          r.UserID,
		Name:            r.Name,
		Description:     r.Description,
		NumberRooms:     r.NumberRooms,
		NumberBathrooms: r.NumberBathrooms,
		MaxGuest:        r.MaxGuest,
		PriceByNight:    r.PriceByNight,
		Latitude:        r.Latitude,
		Longitude:       r.Longitude,
	}), nil
}

// --- Review ---

type reviewRecord struct {
	record
	PlaceID string `json:"place_id"`
	UserID  string `json:"user_id"`
	Text    string `json:"text"`
}

// ReviewCodec stores Review aggregates.
type ReviewCodec struct{}

// Kind implements Codec.
func (ReviewCodec) Kind() domain.Kind { return domain.KindReview }

// Encode implements Codec.
func (ReviewCodec) Encode(r review.Review) ([]byte, error) {
	return json.Marshal(reviewRecord{
		record: recordOf(r), PlaceID: r.PlaceID(), UserID: r.UserID(), Text: r.Text(),
	})
}

// Decode implements Codec.
func (ReviewCodec) Decode(data []byte) (review.Review, error) {
	var r reviewRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return review.Review{}, err
	}
	return review.Reconstruct(r.meta(), r.PlaceID, r.UserID, r.Text), nil
}
