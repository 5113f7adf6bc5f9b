package health

import "context"

// Counter reports how many records a content store holds.
type Counter interface {
	Count(ctx context.Context) (int, error)
}
