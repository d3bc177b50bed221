package domain

import (
	"time"

	"github.com/google/uuid"
)

// Meta is the identity and timestamp block embedded in every entity.
type Meta struct {
	id        string
	createdAt time.Time
	updatedAt time.Time
}

// NewMeta issues a fresh UUID and stamps both timestamps with now.
func NewMeta(now time.Time) Meta {
	now = now.UTC()
	return Meta{id: uuid.NewString(), createdAt: now, updatedAt: now}
}

// RestoreMeta rebuilds Meta from storage without validation.
func RestoreMeta(id string, createdAt, updatedAt time.Time) Meta {
	return Meta{id: id, createdAt: createdAt, updatedAt: updatedAt}
}

// ID returns the entity identifier.
func (m Meta) ID() string { return m.id }

// CreatedAt returns the creation time.
func (m Meta) CreatedAt() time.Time { return m.createdAt }

// UpdatedAt returns the last modification time.
func (m Meta) UpdatedAt() time.Time { return m.updatedAt }

// Touched returns a copy with UpdatedAt set to now.
func (m Meta) Touched(now time.Time) Meta {
	m.updatedAt = now.UTC()
	return m
}
