package stats

import "context"

// Counter counts stored entities of one kind.
type Counter interface {
	Count(ctx context.Context) (int, error)
}
