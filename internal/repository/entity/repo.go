// Package entity is the generic repository over every aggregate kind.
package entity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/hbnb/internal/db"
	"github.com/kailas-cloud/hbnb/internal/domain"
	"github.com/kailas-cloud/hbnb/internal/repository/keyspace"
)

// store is the consumer interface for entity records (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	GetMulti(ctx context.Context, keys []string) ([][]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
	ZAdd(ctx context.Context, key string, score float64, member string) error
	ZRem(ctx context.Context, key string, members ...string) error
	ZRange(ctx context.Context, key string) ([]string, error)
	ZCard(ctx context.Context, key string) (int64, error)
}

// Entity is satisfied by every aggregate through its embedded domain.Meta.
type Entity interface {
	ID() string
	CreatedAt() time.Time
}

// Codec converts an aggregate to and from its stored JSON record.
type Codec[T Entity] interface {
	Kind() domain.Kind
	Encode(v T) ([]byte, error)
	Decode(data []byte) (T, error)
}

// Repo stores one aggregate kind: a JSON record per id plus an index of all
// ids ordered by creation time.
type Repo[T Entity] struct {
	store store
	codec Codec[T]
	keys  keyspace.Keyspace
}

// New creates a repository for the codec's kind.
func New[T Entity](s store, keys keyspace.Keyspace, codec Codec[T]) *Repo[T] {
	return &Repo[T]{store: s, codec: codec, keys: keys}
}

// Kind returns the aggregate kind served by this repository.
func (r *Repo[T]) Kind() domain.Kind { return r.codec.Kind() }

// Get returns the entity by id or domain.ErrNotFound.
func (r *Repo[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if id == "" {
		return zero, domain.ErrNotFound
	}
	key := r.keys.Entity(r.Kind(), id)
	data, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return zero, fmt.Errorf("%s %s: %w", r.Kind(), id, domain.ErrNotFound)
		}
		return zero, fmt.Errorf("get %s: %w", key, err)
	}
	v, err := r.codec.Decode(data)
	if err != nil {
		return zero, fmt.Errorf("decode %s: %w", key, err)
	}
	return v, nil
}

// Exists reports whether an entity with id is stored.
func (r *Repo[T]) Exists(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, nil
	}
	key := r.keys.Entity(r.Kind(), id)
	ok, err := r.store.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("check exists %s: %w", key, err)
	}
	return ok, nil
}

// GetMany loads entities in the order of ids. Unknown ids are skipped.
func (r *Repo[T]) GetMany(ctx context.Context, ids []string) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.keys.Entity(r.Kind(), id)
	}
	raw, err := r.store.GetMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("get %d %s records: %w", len(keys), r.Kind(), err)
	}
	out := make([]T, 0, len(raw))
	for i, data := range raw {
		if data == nil {
			continue
		}
		v, err := r.codec.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", keys[i], err)
		}
		out = append(out, v)
	}
	return out, nil
}

// All returns every entity of the kind in creation order.
func (r *Repo[T]) All(ctx context.Context) ([]T, error) {
	ids, err := r.store.ZRange(ctx, r.keys.Index(r.Kind()))
	if err != nil {
		return nil, fmt.Errorf("list %s ids: %w", r.Kind(), err)
	}
	return r.GetMany(ctx, ids)
}

// Count returns the number of stored entities of the kind.
func (r *Repo[T]) Count(ctx context.Context) (int, error) {
	n, err := r.store.ZCard(ctx, r.keys.Index(r.Kind()))
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", r.Kind(), err)
	}
	return int(n), nil
}

// Save writes the record and indexes it by creation time.
func (r *Repo[T]) Save(ctx context.Context, v T) error {
	data, err := r.codec.Encode(v)
	if err != nil {
		return fmt.Errorf("encode %s %s: %w", r.Kind(), v.ID(), err)
	}
	key := r.keys.Entity(r.Kind(), v.ID())
	if err := r.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	if err := r.store.ZAdd(ctx, r.keys.Index(r.Kind()), Score(v.CreatedAt()), v.ID()); err != nil {
		return fmt.Errorf("index %s: %w", key, err)
	}
	return nil
}

// Delete removes the record and its index entry. Returns domain.ErrNotFound if absent.
func (r *Repo[T]) Delete(ctx context.Context, id string) error {
	ok, err := r.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s %s: %w", r.Kind(), id, domain.ErrNotFound)
	}
	key := r.keys.Entity(r.Kind(), id)
	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	if err := r.store.ZRem(ctx, r.keys.Index(r.Kind()), id); err != nil {
		return fmt.Errorf("unindex %s: %w", key, err)
	}
	return nil
}

// Score converts a timestamp into a sorted-set score (unix millis).
func Score(t time.Time) float64 {
	return float64(t.UnixMilli())
}
