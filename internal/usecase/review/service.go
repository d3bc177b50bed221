// Package review implements Review CRUD scoped under places.
package review

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/hbnb/internal/domain"
	domreview "github.com/kailas-cloud/hbnb/internal/domain/review"
)

// Service handles review CRUD.
type Service struct {
	repo    Repository
	places  Checker
	users   Checker
	rels    Relations
	deleter Deleter
	now     func() time.Time
}

// New creates a review service.
func New(repo Repository, places, users Checker, rels Relations, deleter Deleter) *Service {
	return &Service{repo: repo, places: places, users: users, rels: rels, deleter: deleter, now: time.Now}
}

// WithClock overrides the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// ListByPlace returns the reviews of a place in creation order.
func (s *Service) ListByPlace(ctx context.Context, placeID string) ([]domreview.Review, error) {
	if err := require(ctx, s.places, domain.KindPlace, placeID); err != nil {
		return nil, err
	}
	ids, err := s.rels.Members(ctx, domain.PlaceReviews, placeID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	reviews, err := s.repo.GetMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}
	return reviews, nil
}

// Get returns a review by id.
func (s *Service) Get(ctx context.Context, id string) (domreview.Review, error) {
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return domreview.Review{}, fmt.Errorf("get review: %w", err)
	}
	return r, nil
}

// Create adds a review to a place. The place is checked first, then
// user_id presence, the author's existence and finally the text.
func (s *Service) Create(ctx context.Context, placeID, userID, text string) (domreview.Review, error) {
	if err := require(ctx, s.places, domain.KindPlace, placeID); err != nil {
		return domreview.Review{}, err
	}
	if userID == "" {
		return domreview.Review{}, domain.NewMissingField("user_id")
	}
	if err := require(ctx, s.users, domain.KindUser, userID); err != nil {
		return domreview.Review{}, err
	}
	r, err := domreview.New(placeID, userID, text, s.now())
	if err != nil {
		return domreview.Review{}, err
	}
	if err := s.repo.Save(ctx, r); err != nil {
		return domreview.Review{}, fmt.Errorf("save review: %w", err)
	}
	if _, err := s.rels.Link(ctx, domain.PlaceReviews, placeID, r.ID(), r.CreatedAt()); err != nil {
		return domreview.Review{}, fmt.Errorf("link review to place: %w", err)
	}
	if _, err := s.rels.Link(ctx, domain.UserReviews, userID, r.ID(), r.CreatedAt()); err != nil {
		return domreview.Review{}, fmt.Errorf("link review to user: %w", err)
	}
	return r, nil
}

// Update applies a patch to an existing review.
func (s *Service) Update(ctx context.Context, id string, p domreview.Patch) (domreview.Review, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return domreview.Review{}, err
	}
	updated, err := r.Apply(p, s.now())
	if err != nil {
		return domreview.Review{}, err
	}
	if err := s.repo.Save(ctx, updated); err != nil {
		return domreview.Review{}, fmt.Errorf("save review: %w", err)
	}
	return updated, nil
}

// Delete removes a review.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.deleter.DeleteReview(ctx, id); err != nil {
		return fmt.Errorf("delete review: %w", err)
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
