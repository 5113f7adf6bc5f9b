package orbitcore

import (
	"time"

	"github.com/orbit-connect/orbitcore/internal/domain/search/field"
	"github.com/orbit-connect/orbitcore/internal/domain/search/filter"
	"github.com/orbit-connect/orbitcore/internal/domain/search/result"
	"github.com/orbit-connect/orbitcore/internal/usecase/search"
)

// Fields maps field names to accessors for T. Unknown names read as missing.
type Fields[T any] = field.Accessors[T]

// Filters maps field names to criteria. Empty string and empty list criteria are ignored.
type Filters = filter.Criteria

// FilterValue is one filter criterion.
type FilterValue = filter.Value

// Predicate replaces the default comparison for one filter key.
type Predicate[T any] = filter.Predicate[T]

// Predicates maps filter keys to custom predicates.
type Predicates[T any] = filter.Predicates[T]

// Result is a ranked item with its relevance and highlight notes.
type Result[T any] = result.Result[T]

// FacetOption is one facet bucket: slug id, label and count.
type FacetOption = result.Option

// SearchOptions controls scoring.
type SearchOptions = search.Options

// SearchConfig bundles the settings SearchAndFilter needs for one collection.
type SearchConfig[T any] = search.Config[T]

// Debouncer delivers only the last value submitted within its delay window.
type Debouncer[T any] = search.Debouncer[T]

// DefaultDebounceDelay is the delay used by interactive search boxes.
const DefaultDebounceDelay = search.DefaultDebounceDelay

// Eq matches a field whose value is exactly s.
func Eq(s string) FilterValue { return filter.String(s) }

// In matches a field whose text form is one of values.
func In(values ...string) FilterValue { return filter.List(values...) }

// EqNumber matches a numeric field equal to n.
func EqNumber(n float64) FilterValue { return filter.Number(n) }

// EqBool matches a boolean field equal to b.
func EqBool(b bool) FilterValue { return filter.Bool(b) }

// Search ranks items against query over fields. A blank query returns every
// item with relevance 1; otherwise only items scoring above opts.MinRelevance
// are kept, best first, ties in input order.
func Search[T any](items []T, query string, fields []string, acc Fields[T], opts SearchOptions) []Result[T] {
	return search.Search(items, query, fields, acc, opts)
}

// Filter keeps the items that satisfy every active criterion.
func Filter[T any](items []T, filters Filters, acc Fields[T], preds Predicates[T]) []T {
	return search.Filter(items, filters, acc, preds)
}

// SearchAndFilter filters items and then ranks the survivors.
func SearchAndFilter[T any](items []T, query string, filters Filters, cfg SearchConfig[T]) []Result[T] {
	return search.SearchAndFilter(items, query, filters, cfg)
}

// Facets counts the distinct values of one field, most frequent first.
// limit <= 0 returns every bucket.
func Facets[T any](items []T, name string, acc Fields[T], limit int) []FacetOption {
	return search.Facets(items, name, acc, limit)
}

// NewDebouncer creates a trailing-edge debouncer calling fn. delay <= 0 uses DefaultDebounceDelay.
func NewDebouncer[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	return search.NewDebouncer(delay, fn)
}
