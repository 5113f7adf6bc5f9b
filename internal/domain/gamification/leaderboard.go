package gamification

import (
	"sort"
	"time"
)

// Profile is a player's engagement record.
type Profile struct {
	ID               string        `json:"id" yaml:"id"`
	Username         string        `json:"username" yaml:"username"`
	Email            string        `json:"email,omitempty" yaml:"email,omitempty"`
	TotalPoints      int           `json:"total_points" yaml:"total_points"`
	Level            int           `json:"level" yaml:"level"`
	Achievements     []Achievement `json:"achievements" yaml:"achievements"`
	CoursesCompleted int           `json:"courses_completed" yaml:"courses_completed"`
	StoriesShared    int           `json:"stories_shared" yaml:"stories_shared"`
	SimulationsRun   int           `json:"simulations_run" yaml:"simulations_run"`
	JoinedDate       time.Time     `json:"joined_date" yaml:"joined_date"`
}

// Entry is one leaderboard row.
type Entry struct {
	Rank         int    `json:"rank" yaml:"rank"`
	Username     string `json:"username" yaml:"username"`
	Points       int    `json:"points" yaml:"points"`
	Level        int    `json:"level" yaml:"level"`
	Achievements int    `json:"achievements" yaml:"achievements"`
}

// Rank orders entries by points (ties keep input order), assigns 1-based
// ranks and derives each level from points. The input is not modified.
func Rank(entries []Entry) []Entry {
	ranked := make([]Entry, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Points > ranked[j].Points
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
		ranked[i].Level = Level(ranked[i].Points)
	}
	return ranked
}
