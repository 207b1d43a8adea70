package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/skytrails/travel-platform/docs"
	"github.com/skytrails/travel-platform/internal/api/handler"
	"github.com/skytrails/travel-platform/internal/api/middleware"
	"github.com/skytrails/travel-platform/internal/core/domain"
	"github.com/skytrails/travel-platform/internal/core/ports"
)

// Dependencies carries everything the router needs wired in. TokenValidator
// is the gate-side validator: the local AuthService in single-process
// deployments, or the HTTP authclient when the catalog runs on its own.
type Dependencies struct {
	AuthService    ports.AuthService
	TokenValidator ports.TokenValidator
	Users          ports.UserRepository
	Destinations   ports.DestinationService
	Redis          *redis.Client
	Logger         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("travel"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	userHandler := handler.NewUserHandler(deps.Users)
	destinationHandler := handler.NewDestinationHandler(deps.Destinations)

	authenticated := middleware.Auth(deps.TokenValidator)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/validate", authHandler.Validate)

	// --- User routes ---
	e.GET("/users/profile", userHandler.Profile, authenticated)

	// --- Destination routes ---
	e.GET("/destinations", destinationHandler.List, authenticated)
	e.POST("/destinations", destinationHandler.Create, authenticated, adminOnly)
	e.DELETE("/destinations/:id", destinationHandler.Delete, authenticated, adminOnly)

	// --- Operational surface (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Redis)

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to the Travel Platform API"})
	})
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
