package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/skytrails/travel-platform/internal/core/domain"
	"github.com/skytrails/travel-platform/internal/core/ports"
)

type stubUserRepo struct {
	users map[string]*domain.Identity
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.Identity)}
}

func (r *stubUserRepo) Create(_ context.Context, identity *domain.Identity) (*domain.Identity, error) {
	if _, exists := r.users[identity.Email]; exists {
		return nil, domain.ErrUserExists
	}
	clone := *identity
	r.users[identity.Email] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.Identity, error) {
	identity, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *identity
	return &out, nil
}

func newTestAuthService() (*AuthService, *stubUserRepo) {
	repo := newStubUserRepo()
	codec := NewJWTCodec([]byte("test-secret"), time.Hour)
	return NewAuthService(repo, codec, zerolog.Nop()), repo
}

func register(t *testing.T, svc *AuthService, name, email, password, role, callerToken string) *domain.Identity {
	t.Helper()
	identity, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: name, Email: email, Password: password, Role: role, CallerToken: callerToken,
	})
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return identity
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _ := newTestAuthService()

	identity := register(t, svc, "Alice", "alice@example.com", "pw123456", "User", "")
	if identity.ID == "" {
		t.Fatalf("expected generated id")
	}
	if identity.Role != domain.RoleUser {
		t.Fatalf("unexpected role: %s", identity.Role)
	}
	if identity.PasswordHash == "pw123456" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte("pw123456")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_UnknownRole(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Bob", Email: "bob@example.com", Password: "pw123456", Role: "SuperUser",
	})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _ := newTestAuthService()

	register(t, svc, "Bob", "bob@example.com", "pw123456", "User", "")
	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Bob Again", Email: "bob@example.com", Password: "other123", Role: "User",
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_AdminEscalation(t *testing.T) {
	svc, _ := newTestAuthService()

	// Tokens are self-contained, so the escalation matrix is driven off
	// freshly minted claims using the service's signing key.
	codec := NewJWTCodec([]byte("test-secret"), time.Hour)
	adminToken, err := codec.Mint("root@example.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("mint admin token: %v", err)
	}
	userToken, err := codec.Mint("uma@example.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("mint user token: %v", err)
	}

	cases := []struct {
		name        string
		callerToken string
		wantErr     error
	}{
		{"no caller token", "", domain.ErrForbidden},
		{"user caller token", userToken, domain.ErrForbidden},
		{"admin caller token", adminToken, nil},
	}

	for i, tc := range cases {
		_, err := svc.Register(context.Background(), ports.RegisterInput{
			Name:        "New Admin",
			Email:       "admin" + string(rune('a'+i)) + "@example.com",
			Password:    "pw123456",
			Role:        "Admin",
			CallerToken: tc.callerToken,
		})
		if !errors.Is(err, tc.wantErr) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.wantErr, err)
		}
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _ := newTestAuthService()

	register(t, svc, "Carol", "carol@example.com", "s3cret99", "User", "")

	token, err := svc.Login(context.Background(), "carol@example.com", "s3cret99")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims, err := svc.Validate(context.Background(), token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Email != "carol@example.com" || claims.Role != domain.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_Indistinguishable(t *testing.T) {
	svc, _ := newTestAuthService()

	register(t, svc, "Dave", "dave@example.com", "goodpass", "User", "")

	_, unknownErr := svc.Login(context.Background(), "nonexistent@x.com", "anything")
	_, wrongErr := svc.Login(context.Background(), "dave@example.com", "wrongpassword")

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongErr, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatalf("failure causes must be indistinguishable: %q vs %q", unknownErr, wrongErr)
	}
}

func TestAuthService_Validate_Missing(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, err := svc.Validate(context.Background(), ""); !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}
