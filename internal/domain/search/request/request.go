package request

import (
	"fmt"

	"github.com/orbit-connect/orbitcore/internal/domain/search/filter"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length.
	MaxQueryLength = 512
	DefaultLimit   = 20
	MaxLimit       = 100
	// MaxMinRelevance bounds the relevance threshold a caller may request.
	MaxMinRelevance = 1000
)

// Request is a validated catalog query. An empty query matches everything.
type Request struct {
	query         string
	filters       filter.Criteria
	minRelevance  int
	caseSensitive bool
	limit         int
}

// New validates and normalizes search parameters.
// Defaults: limit=20, clamped to MaxLimit.
func New(
	query string,
	filters filter.Criteria,
	minRelevance int,
	caseSensitive bool,
	limit int,
) (Request, error) {
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("query too long (max %d chars)", MaxQueryLength)
	}
	if minRelevance < 0 || minRelevance > MaxMinRelevance {
		return Request{}, fmt.Errorf("min_relevance must be between 0 and %d", MaxMinRelevance)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if filters == nil {
		filters = filter.Criteria{}
	}

	return Request{
		query:         query,
		filters:       filters,
		minRelevance:  minRelevance,
		caseSensitive: caseSensitive,
		limit:         limit,
	}, nil
}

// Query returns the free-text query.
func (r *Request) Query() string { return r.query }

// Filters returns the filter criteria applied before scoring.
func (r *Request) Filters() filter.Criteria { return r.filters }

// MinRelevance returns the exclusive relevance threshold.
func (r *Request) MinRelevance() int { return r.minRelevance }

// CaseSensitive reports whether matching preserves case.
func (r *Request) CaseSensitive() bool { return r.caseSensitive }

// Limit returns the maximum number of results.
func (r *Request) Limit() int { return r.limit }
