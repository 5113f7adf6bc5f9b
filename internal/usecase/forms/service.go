// Package forms validates submitted form data against the built-in schemas.
package forms

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/orbit-connect/orbitcore/internal/domain"
	"github.com/orbit-connect/orbitcore/internal/domain/validation"
	"github.com/orbit-connect/orbitcore/internal/logger"
	"github.com/orbit-connect/orbitcore/internal/metrics"
)

// Service validates forms by schema name.
type Service struct{}

// New creates a forms service.
func New() *Service { return &Service{} }

// Validate checks data against the named schema. Field failures are returned
// in the Result, not as an error; an unknown schema is domain.ErrNotFound.
func (s *Service) Validate(ctx context.Context, schemaName string, data map[string]any) (validation.Result, error) {
	schema, ok := validation.Lookup(schemaName)
	if !ok {
		return validation.Result{}, fmt.Errorf("schema %q: %w", schemaName, domain.ErrNotFound)
	}

	res := validation.Validate(data, schema)

	codes := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		codes = append(codes, e.Code)
	}
	metrics.ObserveValidation(schemaName, codes)

	if !res.Valid() {
		logger.FromContext(ctx).Debug("form rejected",
			zap.String("schema", schemaName),
			zap.Strings("codes", codes),
		)
	}
	return res, nil
}

// Schemas lists the schema names accepted by Validate.
func (s *Service) Schemas() []string {
	return validation.Names()
}
