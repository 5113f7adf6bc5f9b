package health

import (
	"context"
	"sort"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckEmpty indicates a store that loaded but holds no records.
	CheckEmpty CheckResult = "empty"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks over named content stores.
type Service struct {
	stores map[string]Counter
}

// New creates a Service. Nil counters are skipped.
func New(stores map[string]Counter) *Service {
	s := &Service{stores: make(map[string]Counter, len(stores))}
	for name, c := range stores {
		if c != nil {
			s.stores[name] = c
		}
	}
	return s
}

// Check counts every store. Any error or empty store degrades the report.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult, len(s.stores))

	for name, c := range s.stores {
		n, err := c.Count(ctx)
		switch {
		case err != nil:
			checks[name] = CheckError
		case n == 0:
			checks[name] = CheckEmpty
		default:
			checks[name] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v != CheckOK {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}

// Names lists the checked stores in sorted order.
func (s *Service) Names() []string {
	names := make([]string, 0, len(s.stores))
	for n := range s.stores {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
