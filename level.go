package orbitcore

import "github.com/orbit-connect/orbitcore/internal/domain/gamification"

// Progress describes how far a points total is into its level.
type Progress = gamification.Progress

// Achievement is an unlockable badge.
type Achievement = gamification.Achievement

// Level returns floor(sqrt(points/100)) + 1. Negative totals count as 0.
func Level(points int) int { return gamification.Level(points) }

// LevelThreshold returns the points at which level begins.
func LevelThreshold(level int) int { return gamification.LevelThreshold(level) }

// NextLevelPoints returns (level+1)^2 * 100.
func NextLevelPoints(level int) int { return gamification.NextLevelPoints(level) }

// ProgressFor computes level progress for a points total.
func ProgressFor(points int) Progress { return gamification.ProgressFor(points) }

// Achievements returns the achievement catalog.
func Achievements() []Achievement { return gamification.Achievements() }
