// Package search implements in-memory relevance scoring, filtering and faceting
// over caller-supplied item slices. All functions are pure.
package search

import (
	"sort"
	"strings"

	"github.com/orbit-connect/orbitcore/internal/domain/search/field"
	"github.com/orbit-connect/orbitcore/internal/domain/search/result"
)

// Relevance weights per field.
const (
	exactMatchWeight    = 3
	containsQueryWeight = 2
	wordMatchWeight     = 1
)

// Options tune relevance scoring.
type Options struct {
	CaseSensitive bool
	// MinRelevance is exclusive: only results scoring above it are kept.
	MinRelevance int
}

// Search scores items against query over the named fields and returns hits
// sorted by descending relevance. Ties keep input order.
//
// A blank query returns every item with relevance 1 and no highlights;
// MinRelevance is not applied in that case.
func Search[T any](
	items []T, query string, fields []string, acc field.Accessors[T], opts Options,
) []result.Result[T] {
	if strings.TrimSpace(query) == "" {
		all := make([]result.Result[T], len(items))
		for i, item := range items {
			all[i] = result.New(item, 1, nil)
		}
		return all
	}

	q := normalize(query, opts.CaseSensitive)
	words := strings.Fields(q)

	hits := make([]result.Result[T], 0, len(items))
	for _, item := range items {
		relevance, highlights := score(item, q, words, fields, acc, opts.CaseSensitive)
		if relevance > opts.MinRelevance {
			hits = append(hits, result.New(item, relevance, highlights))
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Relevance() > hits[j].Relevance()
	})
	return hits
}

// score sums per-field weights. Exact and substring matches both fire on an
// exact hit; word matches add weight but no highlight.
func score[T any](
	item T, q string, words, fields []string, acc field.Accessors[T], caseSensitive bool,
) (int, []string) {
	relevance := 0
	var highlights []string

	for _, name := range fields {
		raw, _ := acc.Value(item, name)
		text := normalize(field.Text(raw), caseSensitive)

		if text == q {
			relevance += exactMatchWeight
			highlights = append(highlights, name+": exact match")
		}
		if strings.Contains(text, q) {
			relevance += containsQueryWeight
			highlights = append(highlights, name+": contains query")
		}
		for _, w := range words {
			if strings.Contains(text, w) {
				relevance += wordMatchWeight
			}
		}
	}

	return relevance, highlights
}

func normalize(s string, caseSensitive bool) string {
	if caseSensitive {
		return s
	}
	return strings.ToLower(s)
}
