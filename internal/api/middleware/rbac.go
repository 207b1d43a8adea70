package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/skytrails/travel-platform/internal/core/domain"
)

// RequireRole enforces an exact role match on routes already behind Auth.
// Centralising the check here keeps every protected route on the identical
// comparison logic.
func RequireRole(required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(domain.Role)
			if !ok || role != required {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
