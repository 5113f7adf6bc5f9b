package result

// Result is a single scored search hit.
type Result[T any] struct {
	item       T
	relevance  int
	highlights []string
}

// New creates a search result.
func New[T any](item T, relevance int, highlights []string) Result[T] {
	return Result[T]{item: item, relevance: relevance, highlights: highlights}
}

// Item returns the matched item.
func (r Result[T]) Item() T { return r.item }

// Relevance returns the ranking score.
func (r Result[T]) Relevance() int { return r.relevance }

// Highlights returns diagnostic match labels such as "title: exact match".
func (r Result[T]) Highlights() []string { return r.highlights }

// Items unwraps the matched items, preserving order.
func Items[T any](results []Result[T]) []T {
	items := make([]T, len(results))
	for i, r := range results {
		items[i] = r.item
	}
	return items
}

// Option is a facet value with its occurrence count.
type Option struct {
	id    string
	label string
	count int
}

// NewOption creates a facet option.
func NewOption(id, label string, count int) Option {
	return Option{id: id, label: label, count: count}
}

// ID returns the slug identifier.
func (o Option) ID() string { return o.id }

// Label returns the original field value.
func (o Option) Label() string { return o.label }

// Count returns how many items carry this value.
func (o Option) Count() int { return o.count }
