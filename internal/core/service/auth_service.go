package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/skytrails/travel-platform/internal/api/metrics"
	"github.com/skytrails/travel-platform/internal/core/domain"
	"github.com/skytrails/travel-platform/internal/core/ports"
)

// dummyHash is compared against when login targets an unknown email, so the
// unknown-email and wrong-password paths cost the same.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService implements registration, login, and token validation.
type AuthService struct {
	repo   ports.UserRepository
	codec  ports.TokenCodec
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec ports.TokenCodec, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, logger: logger}
}

// Register creates a new identity. Requesting the Admin role requires a
// currently-valid Admin bearer token; anonymous registration is allowed for
// the User role only.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Identity, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}

	if role == domain.RoleAdmin {
		claims, err := s.Validate(ctx, in.CallerToken)
		if err != nil || claims.Role != domain.RoleAdmin {
			s.logger.Warn().Str("email", in.Email).Msg("admin registration without admin credentials")
			return nil, domain.ErrForbidden
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	identity := &domain.Identity{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, identity)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(role)).Inc()
	s.logger.Info().Str("email", created.Email).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

// Login verifies credentials and mints a token. An unknown email and a wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	identity, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.codec.Mint(identity.Email, identity.Role)
	if err != nil {
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("email", identity.Email).Msg("login succeeded")
	return token, nil
}

// Validate is the single source of truth for "is this bearer authenticated".
func (s *AuthService) Validate(_ context.Context, token string) (domain.Claims, error) {
	if token == "" {
		metrics.TokenValidationsTotal.WithLabelValues("missing").Inc()
		return domain.Claims{}, domain.ErrMissingToken
	}

	claims, err := s.codec.Verify(token)
	if err != nil {
		metrics.TokenValidationsTotal.WithLabelValues("rejected").Inc()
		return domain.Claims{}, err
	}

	metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()
	return claims, nil
}
