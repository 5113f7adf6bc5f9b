package search

import (
	"sort"

	"github.com/gosimple/slug"

	"github.com/orbit-connect/orbitcore/internal/domain/search/field"
	"github.com/orbit-connect/orbitcore/internal/domain/search/result"
)

// unknownLabel stands in for missing or zero-like field values.
const unknownLabel = "Unknown"

// Facets counts the distinct values of one field, most frequent first.
// Ties keep first-seen order. limit <= 0 returns every value.
func Facets[T any](items []T, name string, acc field.Accessors[T], limit int) []result.Option {
	counts := make(map[string]int)
	var order []string

	for _, item := range items {
		raw, _ := acc.Value(item, name)
		label := field.Text(raw)
		if label == "" {
			label = unknownLabel
		}
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	opts := make([]result.Option, len(order))
	for i, label := range order {
		opts[i] = result.NewOption(slug.Make(label), label, counts[label])
	}
	sort.SliceStable(opts, func(i, j int) bool {
		return opts[i].Count() > opts[j].Count()
	})

	if limit > 0 && len(opts) > limit {
		opts = opts[:limit]
	}
	return opts
}
