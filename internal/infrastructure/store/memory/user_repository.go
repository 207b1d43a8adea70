// Package memory provides mutex-guarded in-memory repositories. The platform
// deliberately keeps identities and the catalog in process memory; the only
// durable artifact is the shared signing key (see the keystore package).
package memory

import (
	"context"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/skytrails/travel-platform/internal/core/domain"
)

// BootstrapAdmin describes the identity seeded before any registration call,
// so the first admin-only action is possible without a chicken-and-egg
// problem.
type BootstrapAdmin struct {
	Name     string
	Email    string
	Password string
}

// UserRepository is an in-memory identity store keyed by email
// (case-sensitive exact match).
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.Identity
}

// NewUserRepository builds the store and seeds the bootstrap admin.
func NewUserRepository(bootstrap BootstrapAdmin) (*UserRepository, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(bootstrap.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	r := &UserRepository{users: make(map[string]*domain.Identity)}
	r.users[bootstrap.Email] = &domain.Identity{
		ID:           "bootstrap-admin",
		Name:         bootstrap.Name,
		Email:        bootstrap.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
	return r, nil
}

// Create inserts the identity if the email is not already taken. The check
// and insert happen under one lock so concurrent registrations cannot race.
func (r *UserRepository) Create(_ context.Context, identity *domain.Identity) (*domain.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[identity.Email]; exists {
		return nil, domain.ErrUserExists
	}

	stored := *identity
	r.users[identity.Email] = &stored

	out := stored
	return &out, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	identity, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	out := *identity
	return &out, nil
}

// Count reports the number of stored identities. Used by tests and the
// readiness probe.
func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
