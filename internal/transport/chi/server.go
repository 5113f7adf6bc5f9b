package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/orbit-connect/orbitcore/internal/domain"
	"github.com/orbit-connect/orbitcore/internal/domain/validation"
	cataloguc "github.com/orbit-connect/orbitcore/internal/usecase/catalog"
	communityuc "github.com/orbit-connect/orbitcore/internal/usecase/community"
	formsuc "github.com/orbit-connect/orbitcore/internal/usecase/forms"
	gamificationuc "github.com/orbit-connect/orbitcore/internal/usecase/gamification"
	healthuc "github.com/orbit-connect/orbitcore/internal/usecase/health"
	"github.com/orbit-connect/orbitcore/internal/version"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server serves the orbitd JSON API.
type Server struct {
	catalog       *cataloguc.Service
	community     *communityuc.Service
	gamification  *gamificationuc.Service
	forms         *formsuc.Service
	health        *healthuc.Service
	defaults      SearchDefaults
	logger        *zap.Logger
	now           func() time.Time
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	catalog *cataloguc.Service,
	community *communityuc.Service,
	gamification *gamificationuc.Service,
	forms *formsuc.Service,
	health *healthuc.Service,
	defaults SearchDefaults,
	logger *zap.Logger,
) *Server {
	s := &Server{
		catalog:      catalog,
		community:    community,
		gamification: gamification,
		forms:        forms,
		health:       health,
		defaults:     defaults,
		logger:       logger,
		now:          time.Now,
	}
	s.errorHandlers = []errorHandler{
		validationFailedHandler,
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, ErrorCodeNotFound),
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, ErrorCodeInvalidQuery),
	}
	return s
}

// Mount registers every route on r.
func (s *Server) Mount(r chi.Router) {
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, ErrorCodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrorCodeBadRequest, "method not allowed")
	})

	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/resources", s.SearchResources)
		r.Get("/resources/facets/{field}", s.ResourceFacets)

		r.Get("/stories", s.ListStories)
		r.Post("/stories", s.SubmitStory)
		r.Post("/stories/{id}/vote", s.VoteStory)

		r.Post("/forms/{schema}/validate", s.ValidateForm)

		r.Get("/leaderboard", s.Leaderboard)
		r.Get("/profile", s.Profile)
		r.Get("/progress", s.Progress)
		r.Get("/achievements", s.Achievements)
	})

}

// SearchResources handles GET /api/v1/resources.
func (s *Server) SearchResources(w http.ResponseWriter, r *http.Request) {
	params := resourceParamsFrom(r.URL.Query())
	if errs := checkParams(params); len(errs) > 0 {
		writeValidationError(w, errs)
		return
	}

	req, err := params.toRequest(s.defaults)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	page, err := s.catalog.SearchResources(r.Context(), &req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse(page.Results, req.Limit(), page.Total))
}

// ResourceFacets handles GET /api/v1/resources/facets/{field}.
func (s *Server) ResourceFacets(w http.ResponseWriter, r *http.Request) {
	params := limitParams{Limit: r.URL.Query().Get("limit")}
	if errs := checkParams(params); len(errs) > 0 {
		writeValidationError(w, errs)
		return
	}
	limit, err := parseLimit(params.Limit, s.defaults.FacetLimit, 0)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	name := chi.URLParam(r, "field")
	opts, err := s.catalog.Facets(r.Context(), name, limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, facetResponse(name, opts))
}

// ListStories handles GET /api/v1/stories.
func (s *Server) ListStories(w http.ResponseWriter, r *http.Request) {
	params := storyParamsFrom(r.URL.Query())
	if errs := checkParams(params); len(errs) > 0 {
		writeValidationError(w, errs)
		return
	}

	req, err := params.toRequest(s.defaults)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	hits, err := s.community.List(r.Context(), &req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse(hits, req.Limit(), len(hits)))
}

// SubmitStory handles POST /api/v1/stories.
func (s *Server) SubmitStory(w http.ResponseWriter, r *http.Request) {
	var req StoryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	story, err := s.community.Submit(r.Context(), submissionFromRequest(req))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/stories/"+story.ID)
	writeJSON(w, http.StatusCreated, story)
}

// VoteStory handles POST /api/v1/stories/{id}/vote.
func (s *Server) VoteStory(w http.ResponseWriter, r *http.Request) {
	story, err := s.community.ToggleVote(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, story)
}

// ValidateForm handles POST /api/v1/forms/{schema}/validate.
// Field failures are a 200 with valid=false.
func (s *Server) ValidateForm(w http.ResponseWriter, r *http.Request) {
	var data map[string]any
	if !decodeBody(w, r, &data) {
		return
	}

	name := chi.URLParam(r, "schema")
	res, err := s.forms.Validate(r.Context(), name, data)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	errs := res.Errors()
	if errs == nil {
		errs = []validation.Error{}
	}
	writeJSON(w, http.StatusOK, ValidationResponse{Schema: name, Valid: res.Valid(), Errors: errs})
}

// Leaderboard handles GET /api/v1/leaderboard.
func (s *Server) Leaderboard(w http.ResponseWriter, r *http.Request) {
	params := limitParams{Limit: r.URL.Query().Get("limit")}
	if errs := checkParams(params); len(errs) > 0 {
		writeValidationError(w, errs)
		return
	}
	limit, err := parseLimit(params.Limit, 0, 0)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	entries, err := s.gamification.Leaderboard(r.Context(), limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, LeaderboardResponse{Items: entries})
}

// Profile handles GET /api/v1/profile.
func (s *Server) Profile(w http.ResponseWriter, r *http.Request) {
	v, err := s.gamification.Profile(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ProfileResponse{Profile: v.Profile, Progress: v.Progress, Rank: v.Rank})
}

// Progress handles GET /api/v1/progress?points=N.
func (s *Server) Progress(w http.ResponseWriter, r *http.Request) {
	params := progressParams{Points: r.URL.Query().Get("points")}
	if errs := checkParams(params); len(errs) > 0 {
		writeValidationError(w, errs)
		return
	}
	points, err := strconv.Atoi(params.Points)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "points must be an integer")
		return
	}
	writeJSON(w, http.StatusOK, s.gamification.Progress(points))
}

// Achievements handles GET /api/v1/achievements.
func (s *Server) Achievements(w http.ResponseWriter, r *http.Request) {
	items, err := s.gamification.Achievements(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AchievementsResponse{Items: items})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:    string(report.Status),
		Checks:    checks,
		Version:   version.Version,
		Timestamp: s.now().UTC(),
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeValidationError(w http.ResponseWriter, errs []validation.Error) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Code:    ErrorCodeValidationFailed,
		Message: domain.ErrValidationFailed.Error(),
		Errors:  errs,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrInvalidQuery,
		domain.ErrValidationFailed,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// validationFailedHandler answers ErrValidationFailed with 422 and the field errors.
func validationFailedHandler(w http.ResponseWriter, err error, msg string) bool {
	if !errors.Is(err, domain.ErrValidationFailed) {
		return false
	}
	var vfe *domain.ValidationFailedError
	if errors.As(err, &vfe) {
		writeValidationError(w, vfe.Errors)
		return true
	}
	writeError(w, http.StatusUnprocessableEntity, ErrorCodeValidationFailed, msg)
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
