package ports

import (
	"context"

	"github.com/skytrails/travel-platform/internal/core/domain"
)

// DestinationRepository defines the interface for catalog persistence.
// Insert must be an atomic insert-if-absent keyed by destination id.
type DestinationRepository interface {
	List(ctx context.Context) ([]domain.Destination, error)
	Insert(ctx context.Context, dest domain.Destination) error
	Delete(ctx context.Context, id string) error
}
