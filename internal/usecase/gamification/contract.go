package gamification

import (
	"context"

	domgame "github.com/orbit-connect/orbitcore/internal/domain/gamification"
)

// Repository provides leaderboard rows and the signed-in profile.
type Repository interface {
	Leaderboard(ctx context.Context) ([]domgame.Entry, error)
	CurrentUser(ctx context.Context) (domgame.Profile, error)
}
