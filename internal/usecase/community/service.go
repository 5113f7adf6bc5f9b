package community

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/orbit-connect/orbitcore/internal/domain"
	domcat "github.com/orbit-connect/orbitcore/internal/domain/catalog"
	"github.com/orbit-connect/orbitcore/internal/domain/search/request"
	"github.com/orbit-connect/orbitcore/internal/domain/search/result"
	"github.com/orbit-connect/orbitcore/internal/domain/validation"
	"github.com/orbit-connect/orbitcore/internal/logger"
	"github.com/orbit-connect/orbitcore/internal/metrics"
	"github.com/orbit-connect/orbitcore/internal/usecase/search"
)

const collection = "stories"

// Submission is a story proposed through the community form.
type Submission struct {
	Title       string
	Description string
	Content     string
	Category    string
	Author      string
	Email       string
	Location    string
	Impact      string
}

// Fields returns the submission as form data for validation.
func (s Submission) Fields() map[string]any {
	return map[string]any{
		"title":       s.Title,
		"description": s.Description,
		"content":     s.Content,
		"category":    s.Category,
		"author":      s.Author,
		"email":       s.Email,
	}
}

// Service runs the community board.
type Service struct {
	repo Repository
	now  func() time.Time
}

// New creates a community service.
func New(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// List searches and filters stories. A blank query orders stories by votes, most first.
func (s *Service) List(ctx context.Context, req *request.Request) ([]result.Result[domcat.Story], error) {
	items, err := s.repo.ListStories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}

	for _, key := range req.Filters().Active() {
		if !domcat.StoryFields.Has(key) {
			return nil, fmt.Errorf("%w: unknown filter %q", domain.ErrInvalidQuery, key)
		}
	}

	hits := search.SearchAndFilter(items, req.Query(), req.Filters(), search.Config[domcat.Story]{
		Accessors:    domcat.StoryFields,
		SearchFields: domcat.StorySearchFields,
		Options: search.Options{
			CaseSensitive: req.CaseSensitive(),
			MinRelevance:  req.MinRelevance(),
		},
	})

	blank := strings.TrimSpace(req.Query()) == ""
	if blank {
		sort.SliceStable(hits, func(i, j int) bool {
			return hits[i].Item().Votes > hits[j].Item().Votes
		})
	}
	metrics.ObserveSearch(collection, blank, len(hits))

	if len(hits) > req.Limit() {
		hits = hits[:req.Limit()]
	}
	return hits, nil
}

// Submit validates a submission and stores it as a new story with no votes.
// Invalid input returns a *domain.ValidationFailedError.
func (s *Service) Submit(ctx context.Context, sub Submission) (domcat.Story, error) {
	res := validation.Validate(sub.Fields(), validation.StorySubmission())
	metrics.ObserveValidation(validation.SchemaStorySubmission, codes(res.Errors()))
	if !res.Valid() {
		return domcat.Story{}, domain.NewValidationFailed(res.Errors())
	}

	story := domcat.Story{
		ID:          uuid.NewString(),
		Author:      sub.Author,
		Email:       sub.Email,
		Title:       sub.Title,
		Description: sub.Description,
		Content:     sub.Content,
		Category:    sub.Category,
		Location:    sub.Location,
		Impact:      sub.Impact,
		SubmittedAt: s.now().UTC(),
	}
	if err := s.repo.AddStory(ctx, story); err != nil {
		return domcat.Story{}, fmt.Errorf("add story: %w", err)
	}

	logger.FromContext(ctx).Info("story submitted",
		zap.String("story_id", story.ID),
		zap.String("category", story.Category),
	)
	return story, nil
}

// ToggleVote casts or withdraws the current visitor's vote on a story.
func (s *Service) ToggleVote(ctx context.Context, id string) (domcat.Story, error) {
	story, err := s.repo.ToggleVote(ctx, id)
	if err != nil {
		return domcat.Story{}, fmt.Errorf("toggle vote: %w", err)
	}
	return story, nil
}

// Count returns the number of stories on the board.
func (s *Service) Count(ctx context.Context) (int, error) {
	items, err := s.repo.ListStories(ctx)
	if err != nil {
		return 0, fmt.Errorf("list stories: %w", err)
	}
	return len(items), nil
}

func codes(errs []validation.Error) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Code
	}
	return out
}
