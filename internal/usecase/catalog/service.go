package catalog

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/orbit-connect/orbitcore/internal/domain"
	domcat "github.com/orbit-connect/orbitcore/internal/domain/catalog"
	"github.com/orbit-connect/orbitcore/internal/domain/search/request"
	"github.com/orbit-connect/orbitcore/internal/domain/search/result"
	"github.com/orbit-connect/orbitcore/internal/logger"
	"github.com/orbit-connect/orbitcore/internal/metrics"
	"github.com/orbit-connect/orbitcore/internal/usecase/search"
)

const collection = "resources"

// Page is one truncated search response. Total counts hits before the limit.
type Page struct {
	Results []result.Result[domcat.Resource]
	Total   int
}

// Service runs explorer searches over the resource catalog.
type Service struct {
	repo       Repository
	facetLimit int
}

// New creates a catalog service. facetLimit caps Facets when the caller passes 0.
func New(repo Repository, facetLimit int) *Service {
	return &Service{repo: repo, facetLimit: facetLimit}
}

// SearchResources filters resources by type, category and featured, then ranks them against the query.
func (s *Service) SearchResources(ctx context.Context, req *request.Request) (Page, error) {
	items, err := s.repo.ListResources(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("list resources: %w", err)
	}

	for _, key := range req.Filters().Active() {
		if !domcat.ResourceFields.Has(key) {
			return Page{}, fmt.Errorf("%w: unknown filter %q", domain.ErrInvalidQuery, key)
		}
	}

	hits := search.SearchAndFilter(items, req.Query(), req.Filters(), search.Config[domcat.Resource]{
		Accessors:    domcat.ResourceFields,
		SearchFields: domcat.ResourceSearchFields,
		Options: search.Options{
			CaseSensitive: req.CaseSensitive(),
			MinRelevance:  req.MinRelevance(),
		},
	})

	total := len(hits)
	if len(hits) > req.Limit() {
		hits = hits[:req.Limit()]
	}

	blank := strings.TrimSpace(req.Query()) == ""
	metrics.ObserveSearch(collection, blank, total)
	logger.FromContext(ctx).Debug("resource search",
		zap.String("query", req.Query()),
		zap.Strings("filters", req.Filters().Active()),
		zap.Int("total", total),
	)

	return Page{Results: hits, Total: total}, nil
}

// Facets counts resources per value of a field. limit <= 0 uses the configured facet limit.
func (s *Service) Facets(ctx context.Context, name string, limit int) ([]result.Option, error) {
	if !domcat.ResourceFields.Has(name) {
		return nil, fmt.Errorf("facet field %q: %w", name, domain.ErrNotFound)
	}
	items, err := s.repo.ListResources(ctx)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	if limit <= 0 {
		limit = s.facetLimit
	}
	return search.Facets(items, name, domcat.ResourceFields, limit), nil
}

// Count returns the number of resources in the catalog.
func (s *Service) Count(ctx context.Context) (int, error) {
	items, err := s.repo.ListResources(ctx)
	if err != nil {
		return 0, fmt.Errorf("list resources: %w", err)
	}
	return len(items), nil
}
