package request

import (
	"strings"
	"testing"

	"github.com/orbit-connect/orbitcore/internal/domain/search/filter"
)

func TestNew_Defaults(t *testing.T) {
	r, err := New("", nil, 0, false, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Query() != "" {
		t.Errorf("Query() = %q", r.Query())
	}
	if r.Limit() != DefaultLimit {
		t.Errorf("Limit() = %d, want %d", r.Limit(), DefaultLimit)
	}
	if r.Filters() == nil {
		t.Error("Filters() should never be nil")
	}
	if r.MinRelevance() != 0 || r.CaseSensitive() {
		t.Errorf("unexpected defaults: min=%d case=%v", r.MinRelevance(), r.CaseSensitive())
	}
}

func TestNew_ExplicitValues(t *testing.T) {
	f := filter.Criteria{"type": filter.String("course")}
	r, err := New("weather", f, 1, true, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Query() != "weather" || r.MinRelevance() != 1 || !r.CaseSensitive() || r.Limit() != 5 {
		t.Errorf("unexpected request: %+v", r)
	}
	if r.Filters()["type"].Str() != "course" {
		t.Errorf("Filters() = %v", r.Filters())
	}
}

func TestNew_LimitClamped(t *testing.T) {
	r, err := New("q", nil, 0, false, MaxLimit+50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Limit() != MaxLimit {
		t.Errorf("Limit() = %d, want %d", r.Limit(), MaxLimit)
	}
}

func TestNew_QueryTooLong(t *testing.T) {
	_, err := New(strings.Repeat("a", MaxQueryLength+1), nil, 0, false, 0)
	if err == nil {
		t.Fatal("expected error for long query")
	}
	if !strings.Contains(err.Error(), "too long") {
		t.Errorf("error = %q", err)
	}
}

func TestNew_MinRelevanceBounds(t *testing.T) {
	for _, v := range []int{-1, MaxMinRelevance + 1} {
		if _, err := New("q", nil, v, false, 0); err == nil {
			t.Errorf("expected error for min_relevance=%d", v)
		}
	}
}
