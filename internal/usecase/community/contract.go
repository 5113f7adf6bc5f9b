package community

import (
	"context"

	domcat "github.com/orbit-connect/orbitcore/internal/domain/catalog"
)

// Repository stores community stories for the process lifetime.
type Repository interface {
	ListStories(ctx context.Context) ([]domcat.Story, error)
	AddStory(ctx context.Context, story domcat.Story) error
	ToggleVote(ctx context.Context, id string) (domcat.Story, error)
}
