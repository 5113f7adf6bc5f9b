package search

import (
	"github.com/orbit-connect/orbitcore/internal/domain/search/field"
	"github.com/orbit-connect/orbitcore/internal/domain/search/filter"
	"github.com/orbit-connect/orbitcore/internal/domain/search/result"
)

// Filter keeps the items passing every active criterion. A predicate
// registered for a key replaces the generic comparison for that key.
func Filter[T any](
	items []T, criteria filter.Criteria, acc field.Accessors[T], preds filter.Predicates[T],
) []T {
	keys := criteria.Active()
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if passes(item, keys, criteria, acc, preds) {
			kept = append(kept, item)
		}
	}
	return kept
}

func passes[T any](
	item T, keys []string, criteria filter.Criteria, acc field.Accessors[T], preds filter.Predicates[T],
) bool {
	for _, key := range keys {
		want := criteria[key]
		if pred, ok := preds[key]; ok && pred != nil {
			if !pred(item, want) {
				return false
			}
			continue
		}
		got, present := acc.Value(item, key)
		if !want.Matches(got, present) {
			return false
		}
	}
	return true
}

// Config bundles the per-collection settings for SearchAndFilter.
type Config[T any] struct {
	Accessors    field.Accessors[T]
	SearchFields []string
	Predicates   filter.Predicates[T]
	Options      Options
}

// SearchAndFilter narrows items with Filter and then ranks the survivors with Search.
func SearchAndFilter[T any](
	items []T, query string, criteria filter.Criteria, cfg Config[T],
) []result.Result[T] {
	filtered := Filter(items, criteria, cfg.Accessors, cfg.Predicates)
	return Search(filtered, query, cfg.SearchFields, cfg.Accessors, cfg.Options)
}
