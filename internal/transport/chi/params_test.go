package chi

import (
	"errors"
	"net/url"
	"testing"

	"github.com/orbit-connect/orbitcore/internal/domain"
	"github.com/orbit-connect/orbitcore/internal/domain/search/filter"
)

func TestCheckParams_Messages(t *testing.T) {
	errs := checkParams(resourceParams{Type: "planet", Limit: "x"})
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %+v", errs)
	}
	if errs[0].Field != "type" || errs[0].Message != "type must be one of: satellite, case-study, course, story" {
		t.Errorf("type error = %+v", errs[0])
	}
	if errs[1].Field != "limit" || errs[1].Message != "limit must be a non-negative integer" {
		t.Errorf("limit error = %+v", errs[1])
	}
}

func TestCheckParams_Valid(t *testing.T) {
	if errs := checkParams(resourceParams{Query: "orbit", Featured: "true", Limit: "5"}); errs != nil {
		t.Errorf("unexpected errors: %+v", errs)
	}
}

func TestResourceParams_ToRequest(t *testing.T) {
	q := url.Values{
		"q":              {"flood"},
		"type":           {"story"},
		"featured":       {"false"},
		"case_sensitive": {"1"},
		"limit":          {"7"},
	}
	req, err := resourceParamsFrom(q).toRequest(SearchDefaults{MinRelevance: 2, Limit: 20, MaxLimit: 50})
	if err != nil {
		t.Fatalf("toRequest: %v", err)
	}
	if req.Query() != "flood" || req.MinRelevance() != 2 || !req.CaseSensitive() || req.Limit() != 7 {
		t.Errorf("unexpected request: q=%q min=%d case=%v limit=%d",
			req.Query(), req.MinRelevance(), req.CaseSensitive(), req.Limit())
	}
	active := req.Filters().Active()
	if len(active) != 2 || active[0] != "featured" || active[1] != "type" {
		t.Errorf("active filters = %v", active)
	}
	if v := req.Filters()["featured"]; v.Kind() != filter.KindBool || v.Flag() {
		t.Errorf("featured filter = %+v", v)
	}
}

func TestStoryParams_ToRequest_Defaults(t *testing.T) {
	req, err := storyParamsFrom(url.Values{}).toRequest(SearchDefaults{MinRelevance: 1, Limit: 20, MaxLimit: 100})
	if err != nil {
		t.Fatalf("toRequest: %v", err)
	}
	if req.MinRelevance() != 1 || req.Limit() != 20 || !req.Filters().IsEmpty() {
		t.Errorf("unexpected defaults: min=%d limit=%d filters=%v",
			req.MinRelevance(), req.Limit(), req.Filters().Active())
	}
}

func TestBuildRequest_ExplicitZeroMinRelevance(t *testing.T) {
	req, err := buildRequest("x", nil, "0", "", "", SearchDefaults{MinRelevance: 3, Limit: 10})
	if err != nil {
		t.Fatalf("buildRequest: %v", err)
	}
	if req.MinRelevance() != 0 {
		t.Errorf("explicit 0 should override default, got %d", req.MinRelevance())
	}
}

func TestBuildRequest_OutOfRange(t *testing.T) {
	_, err := buildRequest("x", nil, "1001", "", "", SearchDefaults{Limit: 10})
	if !errors.Is(err, domain.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		in       string
		def, max int
		want     int
	}{
		{"", 20, 100, 20},
		{"5", 20, 100, 5},
		{"500", 20, 100, 100},
		{"500", 20, 0, 500},
	}
	for _, tt := range tests {
		got, err := parseLimit(tt.in, tt.def, tt.max)
		if err != nil || got != tt.want {
			t.Errorf("parseLimit(%q, %d, %d) = %d, %v; want %d", tt.in, tt.def, tt.max, got, err, tt.want)
		}
	}
}

func TestListOrString(t *testing.T) {
	if v := listOrString("Education"); v.Kind() != filter.KindString || v.Str() != "Education" {
		t.Errorf("single value = %+v", v)
	}
	v := listOrString("Education, Environment,")
	if v.Kind() != filter.KindList || len(v.Values()) != 2 || v.Values()[1] != "Environment" {
		t.Errorf("list value = %+v", v)
	}
	if !listOrString("").IsEmpty() || !listOrString(",").IsEmpty() {
		t.Error("blank inputs should be empty filters")
	}
}
