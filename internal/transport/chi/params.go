package chi

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/orbit-connect/orbitcore/internal/domain"
	"github.com/orbit-connect/orbitcore/internal/domain/search/filter"
	"github.com/orbit-connect/orbitcore/internal/domain/search/request"
	"github.com/orbit-connect/orbitcore/internal/domain/validation"
)

// Parameter failure codes not covered by the form validation codes.
const (
	codeInvalidValue  = "INVALID_VALUE"
	codeInvalidFormat = "INVALID_FORMAT"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("query"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// paramMessages maps validator tags to client messages. Two %s take the parameter and the tag argument.
var paramMessages = map[string]string{
	"required": "%s is required",
	"max":      "%s must not exceed %s characters",
	"oneof":    "%s must be one of: %s",
	"boolean":  "%s must be true or false",
	"number":   "%s must be a non-negative integer",
	"numeric":  "%s must be a number",
}

var paramCodes = map[string]string{
	"required": validation.CodeRequired,
	"max":      validation.CodeMaxLength,
	"oneof":    codeInvalidValue,
	"boolean":  codeInvalidFormat,
	"number":   codeInvalidFormat,
	"numeric":  codeInvalidFormat,
}

// checkParams validates a parameter struct and converts failures to field errors.
func checkParams(params any) []validation.Error {
	err := validate.Struct(params)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []validation.Error{{Field: "query", Message: err.Error(), Code: codeInvalidValue}}
	}

	out := make([]validation.Error, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, validation.Error{
			Field:   fe.Field(),
			Message: paramMessage(fe),
			Code:    paramCode(fe.Tag()),
		})
	}
	return out
}

func paramMessage(fe validator.FieldError) string {
	msg, ok := paramMessages[fe.Tag()]
	if !ok {
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
	if strings.Count(msg, "%s") == 2 {
		return fmt.Sprintf(msg, fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	}
	return fmt.Sprintf(msg, fe.Field())
}

func paramCode(tag string) string {
	if c, ok := paramCodes[tag]; ok {
		return c
	}
	return codeInvalidValue
}

// SearchDefaults are applied when a search omits min_relevance or limit.
type SearchDefaults struct {
	MinRelevance int
	Limit        int
	MaxLimit     int
	FacetLimit   int
}

type resourceParams struct {
	Query         string `query:"q" validate:"max=512"`
	Type          string `query:"type" validate:"omitempty,oneof=satellite case-study course story"`
	Category      string `query:"category" validate:"max=200"`
	Featured      string `query:"featured" validate:"omitempty,boolean"`
	MinRelevance  string `query:"min_relevance" validate:"omitempty,number"`
	CaseSensitive string `query:"case_sensitive" validate:"omitempty,boolean"`
	Limit         string `query:"limit" validate:"omitempty,number"`
}

func resourceParamsFrom(q url.Values) resourceParams {
	return resourceParams{
		Query:         q.Get("q"),
		Type:          q.Get("type"),
		Category:      q.Get("category"),
		Featured:      q.Get("featured"),
		MinRelevance:  q.Get("min_relevance"),
		CaseSensitive: q.Get("case_sensitive"),
		Limit:         q.Get("limit"),
	}
}

func (p resourceParams) toRequest(d SearchDefaults) (request.Request, error) {
	criteria := filter.Criteria{
		"type":     filter.String(p.Type),
		"category": listOrString(p.Category),
	}
	if p.Featured != "" {
		criteria["featured"] = filter.Bool(parseBool(p.Featured))
	}
	return buildRequest(p.Query, criteria, p.MinRelevance, p.CaseSensitive, p.Limit, d)
}

type storyParams struct {
	Query         string `query:"q" validate:"max=512"`
	Category      string `query:"category" validate:"max=200"`
	Impact        string `query:"impact" validate:"omitempty,oneof=lives-saved infrastructure coordination awareness"`
	MinRelevance  string `query:"min_relevance" validate:"omitempty,number"`
	CaseSensitive string `query:"case_sensitive" validate:"omitempty,boolean"`
	Limit         string `query:"limit" validate:"omitempty,number"`
}

func storyParamsFrom(q url.Values) storyParams {
	return storyParams{
		Query:         q.Get("q"),
		Category:      q.Get("category"),
		Impact:        q.Get("impact"),
		MinRelevance:  q.Get("min_relevance"),
		CaseSensitive: q.Get("case_sensitive"),
		Limit:         q.Get("limit"),
	}
}

func (p storyParams) toRequest(d SearchDefaults) (request.Request, error) {
	criteria := filter.Criteria{
		"category": listOrString(p.Category),
		"impact":   filter.String(p.Impact),
	}
	return buildRequest(p.Query, criteria, p.MinRelevance, p.CaseSensitive, p.Limit, d)
}

type limitParams struct {
	Limit string `query:"limit" validate:"omitempty,number"`
}

type progressParams struct {
	Points string `query:"points" validate:"required,numeric"`
}

func buildRequest(
	query string, criteria filter.Criteria, minRel, caseSensitive, limit string, d SearchDefaults,
) (request.Request, error) {
	minRelevance := d.MinRelevance
	if minRel != "" {
		n, err := strconv.Atoi(minRel)
		if err != nil {
			return request.Request{}, fmt.Errorf("%w: min_relevance: %w", domain.ErrInvalidQuery, err)
		}
		minRelevance = n
	}

	n, err := parseLimit(limit, d.Limit, d.MaxLimit)
	if err != nil {
		return request.Request{}, err
	}

	req, err := request.New(query, criteria, minRelevance, parseBool(caseSensitive), n)
	if err != nil {
		return request.Request{}, fmt.Errorf("%w: %w", domain.ErrInvalidQuery, err)
	}
	return req, nil
}

// parseLimit returns def for an empty value and clamps to maxLimit when maxLimit > 0.
func parseLimit(s string, def, maxLimit int) (int, error) {
	n := def
	if s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("%w: limit: %w", domain.ErrInvalidQuery, err)
		}
		n = v
	}
	if maxLimit > 0 && n > maxLimit {
		n = maxLimit
	}
	return n, nil
}

// listOrString turns "a,b" into a list filter and "a" into a string filter.
func listOrString(s string) filter.Value {
	if !strings.Contains(s, ",") {
		return filter.String(strings.TrimSpace(s))
	}
	parts := strings.Split(s, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return filter.List(values...)
}

func parseBool(s string) bool {
	b, _ := strconv.ParseBool(s)
	return b
}
