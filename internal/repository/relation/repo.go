// Package relation stores navigable edges between aggregates as sorted sets
// of member ids scored by link time.
package relation

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/hbnb/internal/domain"
	"github.com/kailas-cloud/hbnb/internal/repository/keyspace"
)

// store is the consumer interface for relation sets (ISP).
type store interface {
	Del(ctx context.Context, keys ...string) error
	ZAdd(ctx context.Context, key string, score float64, member string) error
	ZRem(ctx context.Context, key string, members ...string) error
	ZRange(ctx context.Context, key string) ([]string, error)
	ZScore(ctx context.Context, key, member string) (float64, bool, error)
}

// Repo reads and writes relation sets.
type Repo struct {
	store store
	keys  keyspace.Keyspace
}

// New creates a relation repository.
func New(s store, keys keyspace.Keyspace) *Repo {
	return &Repo{store: s, keys: keys}
}

// Link adds member to owner's set. Reports false when the pair already exists,
// in which case the original link time is kept.
func (r *Repo) Link(ctx context.Context, rel domain.Relation, ownerID, memberID string, at time.Time) (bool, error) {
	ok, err := r.Has(ctx, rel, ownerID, memberID)
	if err != nil {
		return false, err
	}
	if ok {
		return false, nil
	}
	key := r.keys.Relation(rel, ownerID)
	if err := r.store.ZAdd(ctx, key, float64(at.UnixMilli()), memberID); err != nil {
		return false, fmt.Errorf("link %s -> %s: %w", key, memberID, err)
	}
	return true, nil
}

// Unlink removes member from owner's set. Reports false when it was not linked.
func (r *Repo) Unlink(ctx context.Context, rel domain.Relation, ownerID, memberID string) (bool, error) {
	ok, err := r.Has(ctx, rel, ownerID, memberID)
	if err != nil || !ok {
		return false, err
	}
	key := r.keys.Relation(rel, ownerID)
	if err := r.store.ZRem(ctx, key, memberID); err != nil {
		return false, fmt.Errorf("unlink %s -> %s: %w", key, memberID, err)
	}
	return true, nil
}

// Has reports whether member is linked to owner.
func (r *Repo) Has(ctx context.Context, rel domain.Relation, ownerID, memberID string) (bool, error) {
	key := r.keys.Relation(rel, ownerID)
	_, ok, err := r.store.ZScore(ctx, key, memberID)
	if err != nil {
		return false, fmt.Errorf("check %s -> %s: %w", key, memberID, err)
	}
	return ok, nil
}

// Members returns linked member ids in link order.
func (r *Repo) Members(ctx context.Context, rel domain.Relation, ownerID string) ([]string, error) {
	key := r.keys.Relation(rel, ownerID)
	ids, err := r.store.ZRange(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("members of %s: %w", key, err)
	}
	return ids, nil
}

// Drop removes owner's whole set.
func (r *Repo) Drop(ctx context.Context, rel domain.Relation, ownerID string) error {
	key := r.keys.Relation(rel, ownerID)
	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("drop %s: %w", key, err)
	}
	return nil
}
