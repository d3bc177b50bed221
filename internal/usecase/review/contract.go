package review

import (
	"context"
	"time"

	"github.com/kailas-cloud/hbnb/internal/domain"
	domreview "github.com/kailas-cloud/hbnb/internal/domain/review"
)

// Repository defines the storage contract for reviews.
type Repository interface {
	Get(ctx context.Context, id string) (domreview.Review, error)
	GetMany(ctx context.Context, ids []string) ([]domreview.Review, error)
	Save(ctx context.Context, r domreview.Review) error
}

// Checker confirms a referenced aggregate exists.
type Checker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// Relations links reviews to their place and author.
type Relations interface {
	Link(ctx context.Context, rel domain.Relation, ownerID, memberID string, at time.Time) (bool, error)
	Members(ctx context.Context, rel domain.Relation, ownerID string) ([]string, error)
}

// Deleter removes a review from its place and author.
type Deleter interface {
	DeleteReview(ctx context.Context, id string) error
}
