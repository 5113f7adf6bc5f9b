package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Search and form Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "orbitcore",
			Name:      "search_requests_total",
			Help:      "Total number of catalog searches",
		},
		[]string{"collection", "query"}, // query: "blank" / "text"
	)

	SearchResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "orbitcore",
			Name:      "search_results",
			Help:      "Number of results returned per search",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
		[]string{"collection"},
	)

	FormValidationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "orbitcore",
			Name:      "form_validations_total",
			Help:      "Form validations by schema and outcome",
		},
		[]string{"schema", "outcome"}, // outcome: "valid" / "invalid"
	)

	ValidationFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "orbitcore",
			Name:      "validation_failures_total",
			Help:      "Field validation failures by schema and code",
		},
		[]string{"schema", "code"},
	)
)

var registerDomainOnce sync.Once

// RegisterDomainMetrics registers search and form metrics with the default registry.
// Safe to call more than once.
func RegisterDomainMetrics() {
	registerDomainOnce.Do(func() {
		prometheus.MustRegister(SearchRequestsTotal)
		prometheus.MustRegister(SearchResults)
		prometheus.MustRegister(FormValidationsTotal)
		prometheus.MustRegister(ValidationFailuresTotal)
	})
}

// ObserveSearch records one search over collection.
func ObserveSearch(collection string, blankQuery bool, results int) {
	kind := "text"
	if blankQuery {
		kind = "blank"
	}
	SearchRequestsTotal.WithLabelValues(collection, kind).Inc()
	SearchResults.WithLabelValues(collection).Observe(float64(results))
}

// ObserveValidation records one form validation and its field failure codes.
func ObserveValidation(schema string, codes []string) {
	outcome := "valid"
	if len(codes) > 0 {
		outcome = "invalid"
	}
	FormValidationsTotal.WithLabelValues(schema, outcome).Inc()
	for _, c := range codes {
		ValidationFailuresTotal.WithLabelValues(schema, c).Inc()
	}
}
