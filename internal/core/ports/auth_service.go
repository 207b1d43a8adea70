package ports

import (
	"context"

	"github.com/skytrails/travel-platform/internal/core/domain"
)

// RegisterInput carries everything needed to create an account. CallerToken
// is optional: it is only consulted when an Admin role is requested.
type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	Role        string
	CallerToken string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.Identity, error)
	Login(ctx context.Context, email, password string) (string, error)
	Validate(ctx context.Context, token string) (domain.Claims, error)
}

// TokenValidator is the narrow surface the authorization gate depends on.
// It is satisfied by the local AuthService and by the HTTP client used when
// the destination service runs in a separate process.
type TokenValidator interface {
	Validate(ctx context.Context, token string) (domain.Claims, error)
}
