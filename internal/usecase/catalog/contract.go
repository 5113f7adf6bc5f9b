package catalog

import (
	"context"

	domcat "github.com/orbit-connect/orbitcore/internal/domain/catalog"
)

// Repository provides the explorer resources.
type Repository interface {
	ListResources(ctx context.Context) ([]domcat.Resource, error)
}
