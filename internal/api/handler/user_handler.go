package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skytrails/travel-platform/internal/api/middleware"
	"github.com/skytrails/travel-platform/internal/core/domain"
	"github.com/skytrails/travel-platform/internal/core/ports"
)

// UserHandler exposes the authenticated profile lookup.
type UserHandler struct {
	users ports.UserRepository
}

func NewUserHandler(users ports.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// Profile returns the identity behind the presented token.
//
// @Summary      Get the authenticated user's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/profile [get]
func (h *UserHandler) Profile(c echo.Context) error {
	email, _ := c.Get(middleware.ContextKeyEmail).(string)
	if email == "" {
		return domain.ErrMissingToken
	}

	identity, err := h.users.FindByEmail(c.Request().Context(), email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{
		ID:    identity.ID,
		Name:  identity.Name,
		Email: identity.Email,
		Role:  string(identity.Role),
	})
}
