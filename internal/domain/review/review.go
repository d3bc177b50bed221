package review

import (
	"fmt"
	"time"

	"github.com/kailas-cloud/hbnb/internal/domain"
)

// Review is a user's text feedback on a place.
type Review struct {
	domain.Meta
	placeID string
	userID  string
	text    string
}

// New validates and creates a Review. Missing fields are reported in user_id, text order.
func New(placeID, userID, text string, now time.Time) (Review, error) {
	if placeID == "" {
		return Review{}, domain.NewMissingField("place_id")
	}
	if userID == "" {
		return Review{}, domain.NewMissingField("user_id")
	}
	if text == "" {
		return Review{}, domain.NewMissingField("text")
	}
	return Review{Meta: domain.NewMeta(now), placeID: placeID, userID: userID, text: text}, nil
}

// Reconstruct creates a Review without validation (storage hydration).
func Reconstruct(meta domain.Meta, placeID, userID, text string) Review {
	return Review{Meta: meta, placeID: placeID, userID: userID, text: text}
}

// PlaceID returns the reviewed place identifier.
func (r Review) PlaceID() string { return r.placeID }

// UserID returns the author identifier.
func (r Review) UserID() string { return r.userID }

// Text returns the review body.
func (r Review) Text() string { return r.text }

// Patch lists the mutable attributes of a Review.
type Patch struct {
	Text *string `json:"text"`
}

// Apply returns a copy with the patch applied.
func (r Review) Apply(p Patch, now time.Time) (Review, error) {
	if p.Text != nil {
		if *p.Text == "" {
			return Review{}, fmt.Errorf("text must not be empty: %w", domain.ErrInvalidField)
		}
		r.text = *p.Text
	}
	r.Meta = r.Touched(now)
	return r, nil
}
