// Package memory holds the process-lifetime content stores seeded from a fixture set.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/orbit-connect/orbitcore/internal/domain"
	domcat "github.com/orbit-connect/orbitcore/internal/domain/catalog"
	"github.com/orbit-connect/orbitcore/internal/domain/gamification"
	"github.com/orbit-connect/orbitcore/internal/fixtures"
)

// Resources implements usecase/catalog.Repository. Explorer entries are read-only.
type Resources struct {
	items []domcat.Resource
}

// NewResources creates a resource store from the fixture set.
func NewResources(set *fixtures.Set) *Resources {
	return &Resources{items: slices.Clone(set.Resources)}
}

// ListResources returns a copy of all resources in fixture order.
func (r *Resources) ListResources(_ context.Context) ([]domcat.Resource, error) {
	return slices.Clone(r.items), nil
}

// Count returns the number of stored resources.
func (r *Resources) Count() int { return len(r.items) }

// Stories implements usecase/community.Repository.
type Stories struct {
	mu    sync.RWMutex
	items []domcat.Story
}

// NewStories creates a story store from the fixture set.
func NewStories(set *fixtures.Set) *Stories {
	return &Stories{items: slices.Clone(set.Stories)}
}

// ListStories returns a snapshot of all stories in insertion order.
func (s *Stories) ListStories(_ context.Context) ([]domcat.Story, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items), nil
}

// AddStory appends a story. Ids must be unique.
func (s *Stories) AddStory(_ context.Context, story domcat.Story) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(story.ID) >= 0 {
		return fmt.Errorf("story %q already exists", story.ID)
	}
	s.items = append(s.items, story)
	return nil
}

// ToggleVote flips the vote flag of a story and adjusts its count.
func (s *Stories) ToggleVote(_ context.Context, id string) (domcat.Story, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return domcat.Story{}, fmt.Errorf("story %q: %w", id, domain.ErrNotFound)
	}
	st := &s.items[i]
	if st.HasVoted {
		st.Votes--
	} else {
		st.Votes++
	}
	st.HasVoted = !st.HasVoted
	return *st, nil
}

// Count returns the number of stored stories.
func (s *Stories) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Stories) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(st domcat.Story) bool { return st.ID == id })
}

// Players implements usecase/gamification.Repository.
type Players struct {
	leaderboard []gamification.Entry
	current     gamification.Profile
}

// NewPlayers creates a player store from the fixture set.
func NewPlayers(set *fixtures.Set) *Players {
	current := set.CurrentUser
	current.Achievements = slices.Clone(set.CurrentUser.Achievements)
	return &Players{
		leaderboard: slices.Clone(set.Leaderboard),
		current:     current,
	}
}

// Leaderboard returns a copy of the leaderboard entries.
func (p *Players) Leaderboard(_ context.Context) ([]gamification.Entry, error) {
	return slices.Clone(p.leaderboard), nil
}

// CurrentUser returns the signed-in profile.
func (p *Players) CurrentUser(_ context.Context) (gamification.Profile, error) {
	if p.current.Username == "" {
		return gamification.Profile{}, fmt.Errorf("current user: %w", domain.ErrNotFound)
	}
	profile := p.current
	profile.Achievements = slices.Clone(p.current.Achievements)
	return profile, nil
}

// Count returns the number of leaderboard entries.
func (p *Players) Count() int { return len(p.leaderboard) }
