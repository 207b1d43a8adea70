package ports

import (
	"context"

	"github.com/skytrails/travel-platform/internal/core/domain"
)

// UserRepository defines the interface for identity persistence.
// Create must be an atomic insert-if-absent keyed by email.
type UserRepository interface {
	Create(ctx context.Context, identity *domain.Identity) (*domain.Identity, error)
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)
}
