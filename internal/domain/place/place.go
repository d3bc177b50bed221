package place

import (
	"fmt"
	"time"

	"github.com/kailas-cloud/hbnb/internal/domain"
)

// Draft carries the attributes of a place before it is created.
type Draft struct {
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

// Place is a lodging listed in a city by a user.
type Place struct {
	domain.Meta
	cityID          string
	userID          string
	name            string
	description     string
	numberRooms     int
	numberBathrooms int
	maxGuest        int
	priceByNight    int
	latitude        float64
	longitude       float64
}

// New validates and creates a Place. Missing fields are reported in user_id, name order.
func New(d Draft, now time.Time) (Place, error) {
	if d.CityID == "" {
		return Place{}, domain.NewMissingField("city_id")
	}
	if d.UserID == "" {
		return Place{}, domain.NewMissingField("user_id")
	}
	if d.Name == "" {
		return Place{}, domain.NewMissingField("name")
	}
	p := Place{
		Meta:            domain.NewMeta(now),
		cityID:          d.CityID,
		userID:          d.UserID,
		name:            d.Name,
		description:     d.Description,
		numberRooms:     d.NumberRooms,
		numberBathrooms: d.NumberBathrooms,
		maxGuest:        d.MaxGuest,
		priceByNight:    d.PriceByNight,
		latitude:        d.Latitude,
		longitude:       d.Longitude,
	}
	if err := p.validate(); err != nil {
		return Place{}, err
	}
	return p, nil
}

// Reconstruct creates a Place without validation (storage hydration).
func Reconstruct(meta domain.Meta, d Draft) Place {
	return Place{
		Meta:            meta,
		cityID:          d.CityID,
		userID:          d.UserID,
		name:            d.Name,
		description:     d.Description,
		numberRooms:     d.NumberRooms,
		numberBathrooms: d.NumberBathrooms,
		maxGuest:        d.MaxGuest,
		priceByNight:    d.PriceByNight,
		latitude:        d.Latitude,
		longitude:       d.Longitude,
	}
}

// CityID returns the owning city identifier.
func (p Place) CityID() string { return p.cityID }

// UserID returns the host identifier.
func (p Place) UserID() string { return p.userID }

// Name returns the listing title.
func (p Place) Name() string { return p.name }

// Description returns the listing text.
func (p Place) Description() string { return p.description }

// NumberRooms returns the room count.
func (p Place) NumberRooms() int { return p.numberRooms }

// NumberBathrooms returns the bathroom count.
func (p Place) NumberBathrooms() int { return p.numberBathrooms }

// MaxGuest returns the guest capacity.
func (p Place) MaxGuest() int { return p.maxGuest }

// PriceByNight returns the nightly price.
func (p Place) PriceByNight() int { return p.priceByNight }

// Latitude returns the latitude in degrees.
func (p Place) Latitude() float64 { return p.latitude }

// Longitude returns the longitude in degrees.
func (p Place) Longitude() float64 { return p.longitude }

// Patch lists the mutable attributes of a Place. city_id and user_id are fixed.
type Patch struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	NumberRooms     *int     `json:"number_rooms"`
	NumberBathrooms *int     `json:"number_bathrooms"`
	MaxGuest        *int     `json:"max_guest"`
	PriceByNight    *int     `json:"price_by_night"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
}

// Apply returns a copy with the patch applied.
func (p Place) Apply(pt Patch, now time.Time) (Place, error) {
	if pt.Name != nil {
		if *pt.Name == "" {
			return Place{}, fmt.Errorf("name must not be empty: %w", domain.ErrInvalidField)
		}
		p.name = *pt.Name
	}
	if pt.Description != nil {
		p.description = *pt.Description
	}
	if pt.NumberRooms != nil {
		p.numberRooms = *pt.NumberRooms
	}
	if pt.NumberBathrooms != nil {
		p.numberBathrooms = *pt.NumberBathrooms
	}
	if pt.MaxGuest != nil {
		p.maxGuest = *pt.MaxGuest
	}
	if pt.PriceByNight != nil {
		p.priceByNight = *pt.PriceByNight
	}
	if pt.Latitude != nil {
		p.latitude = *pt.Latitude
	}
	if pt.Longitude != nil {
		p.longitude = *pt.Longitude
	}
	if err := p.validate(); err != nil {
		return Place{}, err
	}
	p.Meta = p.Touched(now)
	return p, nil
}

func (p Place) validate() error {
	counts := []struct {
		name string
		v    int
	}{
		{"number_rooms", p.numberRooms},
		{"number_bathrooms", p.numberBathrooms},
		{"max_guest", p.maxGuest},
		{"price_by_night", p.priceByNight},
	}
	for _, c := range counts {
		if c.v < 0 {
			return fmt.Errorf("%s must not be negative: %w", c.name, domain.ErrInvalidField)
		}
	}
	if p.latitude < -90 || p.latitude > 90 {
		return fmt.Errorf("latitude out of range: %w", domain.ErrInvalidField)
	}
	if p.longitude < -180 || p.longitude > 180 {
		return fmt.Errorf("longitude out of range: %w", domain.ErrInvalidField)
	}
	return nil
}
