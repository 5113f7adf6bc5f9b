package gamification

import "time"

// Achievement is an unlockable badge.
type Achievement struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Icon        string     `json:"icon" yaml:"icon"`
	Points      int        `json:"points" yaml:"points"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty" yaml:"unlocked_at,omitempty"`
	Progress    int        `json:"progress,omitempty" yaml:"progress,omitempty"`
	MaxProgress int        `json:"max_progress,omitempty" yaml:"max_progress,omitempty"`
}

// Achievement ids.
const (
	SatelliteExplorer     = "satellite-explorer"
	EmergencyResponder    = "emergency-responder"
	Scholar               = "scholar"
	StoryTeller           = "story-teller"
	DisasterExpert        = "disaster-expert"
	TechInnovator         = "tech-innovator"
	AccessibilityAdvocate = "accessibility-advocate"
	CertifiedExpert       = "certified-expert"
)

var catalog = []Achievement{
	{ID: SatelliteExplorer, Name: "Satellite Explorer",
		Description: "View 5 different satellites in the tracker", Icon: "🛰️", Points: 50},
	{ID: EmergencyResponder, Name: "Emergency Responder",
		Description: "Complete the emergency simulation", Icon: "🚨", Points: 100},
	{ID: Scholar, Name: "Satellite Scholar",
		Description: "Complete 3 educational courses", Icon: "🎓", Points: 200},
	{ID: StoryTeller, Name: "Story Teller",
		Description: "Share 5 community stories", Icon: "📖", Points: 150},
	{ID: DisasterExpert, Name: "Disaster Expert",
		Description: "Read all 6 disaster case studies", Icon: "📚", Points: 120},
	{ID: TechInnovator, Name: "Tech Innovator",
		Description: "Explore the API dashboard", Icon: "💻", Points: 75},
	{ID: AccessibilityAdvocate, Name: "Accessibility Advocate",
		Description: "Explore accessibility features", Icon: "♿", Points: 80},
	{ID: CertifiedExpert, Name: "Certified Expert",
		Description: "Earn satellite technology certification", Icon: "🏅", Points: 500},
}

// Achievements returns a copy of the achievement catalog.
func Achievements() []Achievement {
	out := make([]Achievement, len(catalog))
	copy(out, catalog)
	return out
}

// AchievementByID looks up a catalog entry.
func AchievementByID(id string) (Achievement, bool) {
	for _, a := range catalog {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
