package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/orbit-connect/orbitcore/internal/domain"
	domcat "github.com/orbit-connect/orbitcore/internal/domain/catalog"
	"github.com/orbit-connect/orbitcore/internal/domain/search/filter"
	"github.com/orbit-connect/orbitcore/internal/domain/search/request"
	"github.com/orbit-connect/orbitcore/internal/fixtures"
)

// --- Mocks ---

type mockRepo struct {
	items []domcat.Resource
	err   error
}

func (m *mockRepo) ListResources(_ context.Context) ([]domcat.Resource, error) {
	return m.items, m.err
}

func defaultRepo(t *testing.T) *mockRepo {
	t.Helper()
	set, err := fixtures.Default()
	if err != nil {
		t.Fatalf("fixtures.Default: %v", err)
	}
	return &mockRepo{items: set.Resources}
}

func makeRequest(t *testing.T, q string, f filter.Criteria, minRel, limit int) *request.Request {
	t.Helper()
	req, err := request.New(q, f, minRel, false, limit)
	if err != nil {
		t.Fatalf("request.New: %v", err)
	}
	return &req
}

func ids(p Page) []string {
	out := make([]string, len(p.Results))
	for i, r := range p.Results {
		out[i] = r.Item().ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// --- Tests ---

func TestSearchResources_BlankQueryReturnsAll(t *testing.T) {
	svc := New(defaultRepo(t), 10)

	page, err := svc.SearchResources(context.Background(), makeRequest(t, "", nil, 5, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 6 {
		t.Errorf("expected 6 results, got %d", page.Total)
	}
	for _, r := range page.Results {
		if r.Relevance() != 1 {
			t.Errorf("blank query relevance = %d, want 1", r.Relevance())
		}
	}
}

func TestSearchResources_RanksByRelevance(t *testing.T) {
	svc := New(defaultRepo(t), 10)

	page, err := svc.SearchResources(context.Background(), makeRequest(t, "satellite", nil, 0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"3", "1", "4", "5", "6"}
	if got := ids(page); !equal(got, want) {
		t.Errorf("ids = %v, want %v", got, want)
	}
	if page.Results[0].Relevance() != 6 {
		t.Errorf("top relevance = %d, want 6", page.Results[0].Relevance())
	}
}

func TestSearchResources_Filters(t *testing.T) {
	svc := New(defaultRepo(t), 10)

	page, err := svc.SearchResources(context.Background(),
		makeRequest(t, "satellite", filter.Criteria{"type": filter.String("course")}, 0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(page); !equal(got, []string{"3", "5"}) {
		t.Errorf("ids = %v", got)
	}

	page, _ = svc.SearchResources(context.Background(),
		makeRequest(t, "", filter.Criteria{"featured": filter.Bool(true)}, 0, 0))
	if got := ids(page); !equal(got, []string{"1", "2", "6"}) {
		t.Errorf("featured ids = %v", got)
	}
}

func TestSearchResources_Limit(t *testing.T) {
	svc := New(defaultRepo(t), 10)

	page, err := svc.SearchResources(context.Background(), makeRequest(t, "satellite", nil, 0, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Results) != 2 {
		t.Errorf("expected 2 results, got %d", len(page.Results))
	}
	if page.Total != 5 {
		t.Errorf("total = %d, want 5", page.Total)
	}
}

func TestSearchResources_UnknownFilter(t *testing.T) {
	svc := New(defaultRepo(t), 10)

	_, err := svc.SearchResources(context.Background(),
		makeRequest(t, "", filter.Criteria{"color": filter.String("red")}, 0, 0))
	if !errors.Is(err, domain.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestSearchResources_EmptyFilterIgnored(t *testing.T) {
	svc := New(defaultRepo(t), 10)

	page, err := svc.SearchResources(context.Background(),
		makeRequest(t, "", filter.Criteria{"color": filter.String("")}, 0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 6 {
		t.Errorf("total = %d, want 6", page.Total)
	}
}

func TestSearchResources_RepoError(t *testing.T) {
	svc := New(&mockRepo{err: errors.New("boom")}, 10)

	if _, err := svc.SearchResources(context.Background(), makeRequest(t, "", nil, 0, 0)); err == nil {
		t.Fatal("expected error")
	}
}

func TestFacets(t *testing.T) {
	svc := New(defaultRepo(t), 10)

	opts, err := svc.Facets(context.Background(), "type", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []struct {
		id    string
		count int
	}{
		{"case-study", 2}, {"course", 2}, {"satellite", 1}, {"story", 1},
	}
	if len(opts) != len(want) {
		t.Fatalf("expected %d options, got %d", len(want), len(opts))
	}
	for i, w := range want {
		if opts[i].ID() != w.id || opts[i].Count() != w.count {
			t.Errorf("opts[%d] = %s/%d, want %s/%d", i, opts[i].ID(), opts[i].Count(), w.id, w.count)
		}
	}
}

func TestFacets_DefaultLimit(t *testing.T) {
	svc := New(defaultRepo(t), 2)

	opts, err := svc.Facets(context.Background(), "category", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(opts) != 2 {
		t.Errorf("expected 2 options, got %d", len(opts))
	}
	if opts[0].Label() != "Education" {
		t.Errorf("top category = %q, want Education", opts[0].Label())
	}
}

func TestFacets_UnknownField(t *testing.T) {
	svc := New(defaultRepo(t), 10)

	_, err := svc.Facets(context.Background(), "color", 0)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCount(t *testing.T) {
	svc := New(defaultRepo(t), 10)

	n, err := svc.Count(context.Background())
	if err != nil || n != 6 {
		t.Errorf("Count = %d, %v", n, err)
	}
}
