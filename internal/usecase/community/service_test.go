package community

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/orbit-connect/orbitcore/internal/domain"
	domcat "github.com/orbit-connect/orbitcore/internal/domain/catalog"
	"github.com/orbit-connect/orbitcore/internal/domain/search/filter"
	"github.com/orbit-connect/orbitcore/internal/domain/search/request"
	"github.com/orbit-connect/orbitcore/internal/domain/validation"
	"github.com/orbit-connect/orbitcore/internal/fixtures"
)

// --- Mocks ---

type mockRepo struct {
	items    []domcat.Story
	added    []domcat.Story
	listErr  error
	addErr   error
	voteFn   func(id string) (domcat.Story, error)
	votedIDs []string
}

func (m *mockRepo) ListStories(_ context.Context) ([]domcat.Story, error) {
	return m.items, m.listErr
}

func (m *mockRepo) AddStory(_ context.Context, s domcat.Story) error {
	if m.addErr != nil {
		return m.addErr
	}
	m.added = append(m.added, s)
	return nil
}

func (m *mockRepo) ToggleVote(_ context.Context, id string) (domcat.Story, error) {
	m.votedIDs = append(m.votedIDs, id)
	if m.voteFn != nil {
		return m.voteFn(id)
	}
	return domcat.Story{ID: id, Votes: 1, HasVoted: true}, nil
}

func defaultRepo(t *testing.T) *mockRepo {
	t.Helper()
	set, err := fixtures.Default()
	if err != nil {
		t.Fatalf("fixtures.Default: %v", err)
	}
	return &mockRepo{items: set.Stories}
}

func makeRequest(t *testing.T, q string, f filter.Criteria) *request.Request {
	t.Helper()
	req, err := request.New(q, f, 0, false, 0)
	if err != nil {
		t.Fatalf("request.New: %v", err)
	}
	return &req
}

func validSubmission() Submission {
	return Submission{
		Title:    "Satellite link kept our clinic online",
		Content:  strings.Repeat("The satellite terminal arrived the day after the storm. ", 2),
		Category: "First-Hand Account",
		Author:   "Ana Lima",
		Email:    "ana@example.org",
		Location: "Recife, Brazil",
		Impact:   domcat.ImpactInfrastructure,
	}
}

// --- Tests ---

func TestList_BlankQuerySortsByVotes(t *testing.T) {
	svc := New(defaultRepo(t))

	hits, err := svc.List(context.Background(), makeRequest(t, "", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"1", "2", "4", "3"}
	if len(hits) != len(want) {
		t.Fatalf("expected %d stories, got %d", len(want), len(hits))
	}
	for i, id := range want {
		if hits[i].Item().ID != id {
			t.Errorf("hits[%d] = %q, want %q", i, hits[i].Item().ID, id)
		}
	}
}

func TestList_QueryRanksByRelevance(t *testing.T) {
	svc := New(defaultRepo(t))

	hits, err := svc.List(context.Background(), makeRequest(t, "hurricane", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hits) != 1 || hits[0].Item().ID != "2" {
		t.Fatalf("expected only story 2, got %d hits", len(hits))
	}
	if len(hits[0].Highlights()) == 0 {
		t.Error("expected highlights")
	}
}

func TestList_FilterByImpact(t *testing.T) {
	svc := New(defaultRepo(t))

	hits, err := svc.List(context.Background(),
		makeRequest(t, "", filter.Criteria{"impact": filter.List(domcat.ImpactAwareness, domcat.ImpactLivesSaved)}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hits) != 2 || hits[0].Item().ID != "1" || hits[1].Item().ID != "3" {
		t.Errorf("unexpected hits: %d", len(hits))
	}
}

func TestList_UnknownFilter(t *testing.T) {
	svc := New(defaultRepo(t))

	_, err := svc.List(context.Background(), makeRequest(t, "", filter.Criteria{"mood": filter.String("happy")}))
	if !errors.Is(err, domain.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestSubmit_Success(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo)
	fixed := time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	story, err := svc.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if story.ID == "" {
		t.Error("expected generated id")
	}
	if story.Votes != 0 || story.HasVoted {
		t.Errorf("new story should have no votes: %+v", story)
	}
	if !story.SubmittedAt.Equal(fixed) {
		t.Errorf("SubmittedAt = %v, want %v", story.SubmittedAt, fixed)
	}
	if len(repo.added) != 1 || repo.added[0].ID != story.ID {
		t.Error("story not stored")
	}
}

func TestSubmit_ValidationFailed(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo)

	sub := validSubmission()
	sub.Title = "Hi"
	sub.Email = "not-an-email"

	_, err := svc.Submit(context.Background(), sub)
	if !errors.Is(err, domain.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}

	var vErr *domain.ValidationFailedError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationFailedError, got %T", err)
	}
	if len(vErr.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(vErr.Errors))
	}
	if vErr.Errors[0].Field != "title" || vErr.Errors[0].Code != validation.CodeMinLength {
		t.Errorf("first error = %+v", vErr.Errors[0])
	}
	if vErr.Errors[1].Field != "email" || vErr.Errors[1].Code != validation.CodeInvalidEmail {
		t.Errorf("second error = %+v", vErr.Errors[1])
	}
	if len(repo.added) != 0 {
		t.Error("invalid story must not be stored")
	}
}

func TestSubmit_RepoError(t *testing.T) {
	svc := New(&mockRepo{addErr: errors.New("full")})

	if _, err := svc.Submit(context.Background(), validSubmission()); err == nil {
		t.Fatal("expected error")
	}
}

func TestToggleVote(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo)

	story, err := svc.ToggleVote(context.Background(), "7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !story.HasVoted || len(repo.votedIDs) != 1 || repo.votedIDs[0] != "7" {
		t.Errorf("unexpected vote result: %+v", story)
	}
}

func TestToggleVote_NotFound(t *testing.T) {
	repo := &mockRepo{voteFn: func(id string) (domcat.Story, error) {
		return domcat.Story{}, domain.ErrNotFound
	}}
	svc := New(repo)

	_, err := svc.ToggleVote(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
