package gamification

import (
	"context"
	"fmt"

	domgame "github.com/orbit-connect/orbitcore/internal/domain/gamification"
)

// ProfileView is a profile with its level progress and leaderboard rank (0 when unranked).
type ProfileView struct {
	Profile  domgame.Profile
	Progress domgame.Progress
	Rank     int
}

// Service serves leveling, leaderboard and achievement reads.
type Service struct {
	repo Repository
}

// New creates a gamification service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Leaderboard returns ranked entries. limit <= 0 returns all of them.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]domgame.Entry, error) {
	entries, err := s.repo.Leaderboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}
	ranked := domgame.Rank(entries)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// Profile returns the current user with level progress and leaderboard rank.
func (s *Service) Profile(ctx context.Context) (ProfileView, error) {
	p, err := s.repo.CurrentUser(ctx)
	if err != nil {
		return ProfileView{}, fmt.Errorf("current user: %w", err)
	}
	p.Level = domgame.Level(p.TotalPoints)

	ranked, err := s.Leaderboard(ctx, 0)
	if err != nil {
		return ProfileView{}, err
	}
	rank := 0
	for _, e := range ranked {
		if e.Username == p.Username {
			rank = e.Rank
			break
		}
	}

	return ProfileView{Profile: p, Progress: domgame.ProgressFor(p.TotalPoints), Rank: rank}, nil
}

// Progress computes level progress for an arbitrary points total.
func (s *Service) Progress(points int) domgame.Progress {
	return domgame.ProgressFor(points)
}

// Achievements returns the full catalog with the current user's unlock state merged in.
func (s *Service) Achievements(ctx context.Context) ([]domgame.Achievement, error) {
	p, err := s.repo.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}
	unlocked := make(map[string]domgame.Achievement, len(p.Achievements))
	for _, a := range p.Achievements {
		unlocked[a.ID] = a
	}

	all := domgame.Achievements()
	for i, a := range all {
		if u, ok := unlocked[a.ID]; ok {
			all[i].UnlockedAt = u.UnlockedAt
			all[i].Progress = u.Progress
			all[i].MaxProgress = u.MaxProgress
		}
	}
	return all, nil
}

// Count returns the number of leaderboard entries.
func (s *Service) Count(ctx context.Context) (int, error) {
	entries, err := s.repo.Leaderboard(ctx)
	if err != nil {
		return 0, fmt.Errorf("leaderboard: %w", err)
	}
	return len(entries), nil
}
