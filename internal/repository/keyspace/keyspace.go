// Package keyspace builds storage keys for entities, kind indexes and relations.
//
// Each key family has its own fixed segment after the kind, and a
// caller-supplied id is always the last segment, so no id can address an
// index or a relation set.
package keyspace

import "github.com/kailas-cloud/hbnb/internal/domain"

// DefaultPrefix is used when no prefix is configured.
const DefaultPrefix = "hbnb:"

// Keyspace renders keys under a common prefix.
type Keyspace struct {
	prefix string
}

// New creates a keyspace. An empty prefix falls back to DefaultPrefix.
func New(prefix string) Keyspace {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return Keyspace{prefix: prefix}
}

const (
	recordSegment   = ":rec:"
	indexSegment    = ":idx"
	relationSegment = ":rel:"
)

// Entity returns the record key: <prefix><kind>:rec:<id>.
func (k Keyspace) Entity(kind domain.Kind, id string) string {
	return k.prefix + kind.Key() + recordSegment + id
}

// Index returns the sorted set of every id of a kind: <prefix><kind>:idx.
func (k Keyspace) Index(kind domain.Kind) string {
	return k.prefix + kind.Key() + indexSegment
}

// Relation returns the sorted set of members for one owner:
// <prefix><owner kind>:rel:<relation>:<owner id>.
func (k Keyspace) Relation(rel domain.Relation, ownerID string) string {
	return k.prefix + rel.Owner.Key() + relationSegment + rel.Name + ":" + ownerID
}
