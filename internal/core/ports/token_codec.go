package ports

import "github.com/skytrails/travel-platform/internal/core/domain"

// TokenCodec mints and verifies signed claim bundles. Implementations are
// stateless: both operations are pure functions of the input, the shared
// signing key, and the current time.
type TokenCodec interface {
	Mint(email string, role domain.Role) (string, error)
	Verify(token string) (domain.Claims, error)
}
