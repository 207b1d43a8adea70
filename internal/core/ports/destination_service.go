package ports

import (
	"context"

	"github.com/skytrails/travel-platform/internal/core/domain"
)

type DestinationService interface {
	List(ctx context.Context) ([]domain.Destination, error)
	Create(ctx context.Context, dest domain.Destination) error
	Delete(ctx context.Context, id string) error
}
