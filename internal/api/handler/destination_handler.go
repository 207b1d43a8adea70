package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skytrails/travel-platform/internal/api/middleware"
	"github.com/skytrails/travel-platform/internal/core/domain"
	"github.com/skytrails/travel-platform/internal/core/ports"
)

// DestinationHandler exposes the protected destination catalog.
type DestinationHandler struct {
	service ports.DestinationService
}

func NewDestinationHandler(service ports.DestinationService) *DestinationHandler {
	return &DestinationHandler{service: service}
}

// List returns the catalog. Admin callers see destination ids; everyone else
// gets the public shape with ids omitted.
//
// @Summary      List destinations
// @Tags         destinations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   destinationResponse
// @Failure      401  {object}  map[string]string
// @Router       /destinations [get]
func (h *DestinationHandler) List(c echo.Context) error {
	destinations, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	role, _ := c.Get(middleware.ContextKeyRole).(domain.Role)
	if role == domain.RoleAdmin {
		out := make([]destinationResponse, 0, len(destinations))
		for _, d := range destinations {
			out = append(out, destinationResponse{
				ID:            d.ID,
				Name:          d.Name,
				Description:   d.Description,
				Location:      d.Location,
				PricePerNight: d.PricePerNight,
			})
		}
		return c.JSON(http.StatusOK, out)
	}

	out := make([]publicDestinationResponse, 0, len(destinations))
	for _, d := range destinations {
		out = append(out, publicDestinationResponse{
			Name:          d.Name,
			Description:   d.Description,
			Location:      d.Location,
			PricePerNight: d.PricePerNight,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// Create adds a destination to the catalog. Admin only.
//
// @Summary      Add a destination
// @Tags         destinations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      destinationRequest  true  "Destination details"
// @Success      201   {object}  destinationCreatedResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /destinations [post]
func (h *DestinationHandler) Create(c echo.Context) error {
	var req destinationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.Create(c.Request().Context(), domain.Destination{
		ID:            req.ID,
		Name:          req.Name,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, destinationCreatedResponse{
		Message: "destination added successfully",
		ID:      req.ID,
	})
}

// Delete removes a destination from the catalog. Admin only.
//
// @Summary      Delete a destination
// @Tags         destinations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Destination id"
// @Success      200  {object}  destinationDeletedResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /destinations/{id} [delete]
func (h *DestinationHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, destinationDeletedResponse{
		Message: "destination deleted successfully",
	})
}
