package orbitcore

// Query is a fluent builder over one in-memory collection.
type Query[T any] struct {
	items   []T
	acc     Fields[T]
	fields  []string
	text    string
	filters Filters
	preds   Predicates[T]
	opts    SearchOptions
	limit   int
}

// NewQuery starts a query over items, scoring the named text fields.
func NewQuery[T any](items []T, acc Fields[T], fields ...string) *Query[T] {
	return &Query[T]{items: items, acc: acc, fields: fields}
}

// Text sets the free-text query. Blank matches everything.
func (q *Query[T]) Text(s string) *Query[T] {
	q.text = s
	return q
}

// Where adds a filter criterion. A later call for the same key replaces the earlier one.
func (q *Query[T]) Where(key string, v FilterValue) *Query[T] {
	if q.filters == nil {
		q.filters = Filters{}
	}
	q.filters[key] = v
	return q
}

// WhereFunc adds a criterion tested by pred instead of the default comparison.
func (q *Query[T]) WhereFunc(key string, v FilterValue, pred Predicate[T]) *Query[T] {
	if q.preds == nil {
		q.preds = Predicates[T]{}
	}
	q.preds[key] = pred
	return q.Where(key, v)
}

// MinRelevance keeps only hits scoring strictly above n. Ignored for blank queries.
func (q *Query[T]) MinRelevance(n int) *Query[T] {
	q.opts.MinRelevance = n
	return q
}

// CaseSensitive toggles case-sensitive matching.
func (q *Query[T]) CaseSensitive(on bool) *Query[T] {
	q.opts.CaseSensitive = on
	return q
}

// Limit caps the number of results. 0 means no cap.
func (q *Query[T]) Limit(n int) *Query[T] {
	q.limit = n
	return q
}

// Do runs the query.
func (q *Query[T]) Do() []Result[T] {
	hits := SearchAndFilter(q.items, q.text, q.filters, SearchConfig[T]{
		Accessors:    q.acc,
		SearchFields: q.fields,
		Predicates:   q.preds,
		Options:      q.opts,
	})
	if q.limit > 0 && len(hits) > q.limit {
		hits = hits[:q.limit]
	}
	return hits
}

// Items runs the query and returns only the ranked items.
func (q *Query[T]) Items() []T {
	hits := q.Do()
	items := make([]T, len(hits))
	for i, h := range hits {
		items[i] = h.Item()
	}
	return items
}
