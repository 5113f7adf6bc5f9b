// Package gamification maps cumulative points to levels and ranks players.
package gamification

import "math"

// pointsPerLevelUnit scales the square-root level curve.
const pointsPerLevelUnit = 100

// Level returns floor(sqrt(points/100)) + 1. Level 1 starts at 0 points.
// Negative totals are treated as 0.
func Level(points int) int {
	if points < 0 {
		points = 0
	}
	return int(math.Floor(math.Sqrt(float64(points)/pointsPerLevelUnit))) + 1
}

// LevelThreshold returns the points at which level begins: (level-1)^2 * 100.
func LevelThreshold(level int) int {
	n := level - 1
	return n * n * pointsPerLevelUnit
}

// NextLevelPoints returns (level+1)^2 * 100.
func NextLevelPoints(level int) int {
	n := level + 1
	return n * n * pointsPerLevelUnit
}

// Progress describes how far a points total is into its level.
type Progress struct {
	CurrentLevel       int     `json:"current_level"`
	CurrentLevelPoints int     `json:"current_level_points"`
	NextLevelPoints    int     `json:"next_level_points"`
	ProgressInLevel    int     `json:"progress_in_level"`
	PointsNeeded       int     `json:"points_needed"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

// ProgressFor computes level progress. The span runs from the current
// level's threshold to NextLevelPoints(level).
func ProgressFor(points int) Progress {
	level := Level(points)
	current := LevelThreshold(level)
	next := NextLevelPoints(level)
	inLevel := points - current
	needed := next - current

	p := Progress{
		CurrentLevel:       level,
		CurrentLevelPoints: current,
		NextLevelPoints:    next,
		ProgressInLevel:    inLevel,
		PointsNeeded:       needed,
	}
	// needed is always positive for level >= 1
	if needed > 0 {
		p.ProgressPercentage = float64(inLevel) / float64(needed) * 100
	}
	return p
}
