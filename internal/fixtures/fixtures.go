// Package fixtures loads the in-memory content set served by orbitd.
package fixtures

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/orbit-connect/orbitcore/internal/domain"
	"github.com/orbit-connect/orbitcore/internal/domain/catalog"
	"github.com/orbit-connect/orbitcore/internal/domain/gamification"
)

//go:embed data/default.yaml
var defaultData []byte

// Set is one complete fixture bundle. It is constructed once per process
// or test and passed explicitly to the services that read it.
type Set struct {
	Resources   []catalog.Resource   `yaml:"resources"`
	Stories     []catalog.Story      `yaml:"stories"`
	Leaderboard []gamification.Entry `yaml:"leaderboard"`
	CurrentUser gamification.Profile `yaml:"current_user"`
}

// Default returns the embedded fixture set.
func Default() (*Set, error) {
	return Parse(defaultData)
}

// Load reads a fixture file. An empty path loads the embedded set.
func Load(path string) (*Set, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes, resolves and validates a YAML fixture document.
func Parse(data []byte) (*Set, error) {
	var s Set
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	if err := s.resolve(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// resolve fills achievement details from the catalog and derives the user level.
func (s *Set) resolve() error {
	for i, a := range s.CurrentUser.Achievements {
		def, ok := gamification.AchievementByID(a.ID)
		if !ok {
			return fmt.Errorf("%w: unknown achievement %q", domain.ErrInvalidFixture, a.ID)
		}
		def.UnlockedAt = a.UnlockedAt
		def.Progress = a.Progress
		def.MaxProgress = a.MaxProgress
		s.CurrentUser.Achievements[i] = def
	}
	s.CurrentUser.Level = gamification.Level(s.CurrentUser.TotalPoints)
	return nil
}

// Validate rejects duplicate ids and untitled records.
func (s *Set) Validate() error {
	seen := make(map[string]struct{}, len(s.Resources))
	for _, r := range s.Resources {
		if r.ID == "" || r.Title == "" {
			return fmt.Errorf("%w: resource requires id and title", domain.ErrInvalidFixture)
		}
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("%w: duplicate resource id %q", domain.ErrInvalidFixture, r.ID)
		}
		seen[r.ID] = struct{}{}
	}

	seen = make(map[string]struct{}, len(s.Stories))
	for _, st := range s.Stories {
		if st.ID == "" || st.Title == "" {
			return fmt.Errorf("%w: story requires id and title", domain.ErrInvalidFixture)
		}
		if _, dup := seen[st.ID]; dup {
			return fmt.Errorf("%w: duplicate story id %q", domain.ErrInvalidFixture, st.ID)
		}
		seen[st.ID] = struct{}{}
	}

	for _, e := range s.Leaderboard {
		if e.Username == "" {
			return fmt.Errorf("%w: leaderboard entry requires username", domain.ErrInvalidFixture)
		}
	}
	return nil
}
