package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/skytrails/travel-platform/internal/core/domain"
	"github.com/skytrails/travel-platform/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextKeyEmail  = "email"
	ContextKeyRole   = "role"
	ContextKeyClaims = "claims"
)

// BearerToken extracts the credential from the Authorization header. Both a
// raw token and a "Bearer <token>"-prefixed form are accepted; the prefix is
// stripped when present and its absence is not an error.
func BearerToken(c echo.Context) string {
	header := strings.TrimSpace(c.Request().Header.Get("Authorization"))
	if len(header) >= 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}

// Auth validates the bearer token and injects the claims into the request
// context. Validation errors — including an unreachable upstream validator —
// propagate unchanged and deny the request.
func Auth(validator ports.TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := BearerToken(c)
			if token == "" {
				return domain.ErrMissingToken
			}

			claims, err := validator.Validate(c.Request().Context(), token)
			if err != nil {
				return err
			}

			c.Set(ContextKeyEmail, claims.Email)
			c.Set(ContextKeyRole, claims.Role)
			c.Set(ContextKeyClaims, claims)

			return next(c)
		}
	}
}
