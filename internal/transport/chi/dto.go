package chi

import (
	"time"

	domgame "github.com/orbit-connect/orbitcore/internal/domain/gamification"
	"github.com/orbit-connect/orbitcore/internal/domain/search/result"
	"github.com/orbit-connect/orbitcore/internal/domain/validation"
	communityuc "github.com/orbit-connect/orbitcore/internal/usecase/community"
)

// ErrorCode is a stable machine-readable error identifier.
type ErrorCode string

// Error codes returned in ErrorResponse.
const (
	ErrorCodeBadRequest       ErrorCode = "bad_request"
	ErrorCodeInvalidQuery     ErrorCode = "invalid_query"
	ErrorCodeValidationFailed ErrorCode = "validation_failed"
	ErrorCodeNotFound         ErrorCode = "not_found"
	ErrorCodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode          `json:"code"`
	Message string             `json:"message"`
	Errors  []validation.Error `json:"errors,omitempty"`
}

// SearchHit is one ranked item.
type SearchHit[T any] struct {
	Item       T        `json:"item"`
	Relevance  int      `json:"relevance"`
	Highlights []string `json:"highlights"`
}

// SearchResponse is a ranked, truncated result list.
type SearchResponse[T any] struct {
	Items []SearchHit[T] `json:"items"`
	Limit int            `json:"limit"`
	Total int            `json:"total"`
}

// FacetOption is one facet bucket.
type FacetOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// FacetResponse lists the buckets of one field.
type FacetResponse struct {
	Field   string        `json:"field"`
	Options []FacetOption `json:"options"`
}

// StoryRequest is the body of POST /api/v1/stories.
type StoryRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Category    string `json:"category"`
	Author      string `json:"author"`
	Email       string `json:"email"`
	Location    string `json:"location"`
	Impact      string `json:"impact"`
}

// ValidationResponse is the outcome of a form validation.
type ValidationResponse struct {
	Schema string             `json:"schema"`
	Valid  bool               `json:"valid"`
	Errors []validation.Error `json:"errors"`
}

// LeaderboardResponse lists ranked players.
type LeaderboardResponse struct {
	Items []domgame.Entry `json:"items"`
}

// ProfileResponse is the current player with level progress.
type ProfileResponse struct {
	Profile  domgame.Profile  `json:"profile"`
	Progress domgame.Progress `json:"progress"`
	Rank     int              `json:"rank,omitempty"`
}

// AchievementsResponse lists the achievement catalog.
type AchievementsResponse struct {
	Items []domgame.Achievement `json:"items"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks"`
	Version   string            `json:"version"`
	Timestamp time.Time         `json:"timestamp"`
}

func searchResponse[T any](hits []result.Result[T], limit, total int) SearchResponse[T] {
	items := make([]SearchHit[T], len(hits))
	for i, h := range hits {
		hl := h.Highlights()
		if hl == nil {
			hl = []string{}
		}
		items[i] = SearchHit[T]{Item: h.Item(), Relevance: h.Relevance(), Highlights: hl}
	}
	return SearchResponse[T]{Items: items, Limit: limit, Total: total}
}

func facetResponse(name string, opts []result.Option) FacetResponse {
	out := make([]FacetOption, len(opts))
	for i, o := range opts {
		out[i] = FacetOption{ID: o.ID(), Label: o.Label(), Count: o.Count()}
	}
	return FacetResponse{Field: name, Options: out}
}

func submissionFromRequest(req StoryRequest) communityuc.Submission {
	return communityuc.Submission{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Category:    req.Category,
		Author:      req.Author,
		Email:       req.Email,
		Location:    req.Location,
		Impact:      req.Impact,
	}
}
