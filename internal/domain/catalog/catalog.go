// Package catalog holds the content records served by the explorer and community board.
package catalog

import (
	"time"

	"github.com/orbit-connect/orbitcore/internal/domain/search/field"
)

// Resource types shown in the explorer.
const (
	TypeSatellite = "satellite"
	TypeCaseStudy = "case-study"
	TypeCourse    = "course"
	TypeStory     = "story"
)

// Resource is an explorer entry.
type Resource struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Type        string `json:"type" yaml:"type"`
	Category    string `json:"category" yaml:"category"`
	Date        string `json:"date" yaml:"date"`
	Featured    bool   `json:"featured" yaml:"featured"`
}

// ResourceFields exposes Resource fields to search and filter by name.
var ResourceFields = field.Accessors[Resource]{
	"id":          func(r Resource) any { return r.ID },
	"title":       func(r Resource) any { return r.Title },
	"description": func(r Resource) any { return r.Description },
	"type":        func(r Resource) any { return r.Type },
	"category":    func(r Resource) any { return r.Category },
	"date":        func(r Resource) any { return r.Date },
	"featured":    func(r Resource) any { return r.Featured },
}

// ResourceSearchFields are the text fields scored for explorer queries.
var ResourceSearchFields = []string{"title", "description"}

// Story impact kinds.
const (
	ImpactLivesSaved     = "lives-saved"
	ImpactInfrastructure = "infrastructure"
	ImpactCoordination   = "coordination"
	ImpactAwareness      = "awareness"
)

// Story is a community board entry.
type Story struct {
	ID          string    `json:"id" yaml:"id"`
	Author      string    `json:"author" yaml:"author"`
	Email       string    `json:"-" yaml:"email,omitempty"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Content     string    `json:"content" yaml:"content"`
	Category    string    `json:"category" yaml:"category"`
	Location    string    `json:"location" yaml:"location"`
	Impact      string    `json:"impact" yaml:"impact"`
	Votes       int       `json:"votes" yaml:"votes"`
	Comments    int       `json:"comments" yaml:"comments"`
	HasVoted    bool      `json:"has_voted" yaml:"-"`
	SubmittedAt time.Time `json:"submitted_at" yaml:"submitted_at"`
}

// StoryFields exposes Story fields to search and filter by name.
var StoryFields = field.Accessors[Story]{
	"id":          func(s Story) any { return s.ID },
	"author":      func(s Story) any { return s.Author },
	"title":       func(s Story) any { return s.Title },
	"description": func(s Story) any { return s.Description },
	"content":     func(s Story) any { return s.Content },
	"category":    func(s Story) any { return s.Category },
	"location":    func(s Story) any { return s.Location },
	"impact":      func(s Story) any { return s.Impact },
	"votes":       func(s Story) any { return s.Votes },
}

// StorySearchFields are the text fields scored for community queries.
var StorySearchFields = []string{"title", "description", "content", "author", "location"}
