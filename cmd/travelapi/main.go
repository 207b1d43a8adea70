// Command travelapi runs the travel platform: user identity, token-based
// authentication, and the protected destination catalog on one HTTP surface.
//
//	@title			Travel Platform API
//	@version		1.0
//	@description	Stateless token-based authentication guarding a destination catalog.
//	@BasePath		/
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/skytrails/travel-platform/internal/api"
	"github.com/skytrails/travel-platform/internal/core/ports"
	"github.com/skytrails/travel-platform/internal/core/service"
	"github.com/skytrails/travel-platform/internal/infrastructure/authclient"
	"github.com/skytrails/travel-platform/internal/infrastructure/config"
	"github.com/skytrails/travel-platform/internal/infrastructure/db/redis"
	"github.com/skytrails/travel-platform/internal/infrastructure/keystore"
	"github.com/skytrails/travel-platform/internal/infrastructure/store/memory"
	"github.com/skytrails/travel-platform/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Signing key ---
	var rdb *goredis.Client
	var signingKey []byte
	switch cfg.KeyBackend {
	case "redis":
		rdb, err = redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connect failed")
		}
		defer rdb.Close()
		signingKey, err = keystore.LoadRedis(ctx, rdb)
	default:
		signingKey, err = keystore.LoadFile(cfg.KeyFile)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("signing key unavailable")
	}

	// --- Stores and services ---
	users, err := memory.NewUserRepository(memory.BootstrapAdmin{
		Name:     cfg.Bootstrap.Name,
		Email:    cfg.Bootstrap.Email,
		Password: cfg.Bootstrap.Password,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("bootstrap admin setup failed")
	}

	codec := service.NewJWTCodec(signingKey, 0)
	authService := service.NewAuthService(users, codec, log)
	destinations := service.NewDestinationService(memory.NewSeededDestinationRepository(), log)

	// In split deployments the gate validates against the remote
	// authentication service; otherwise it calls the local one.
	var validator ports.TokenValidator = authService
	if cfg.AuthValidateURL != "" {
		validator = authclient.New(cfg.AuthValidateURL, cfg.ValidateTimeout)
		log.Info().Str("url", cfg.AuthValidateURL).Msg("using remote token validation")
	}

	e := api.NewRouter(api.Dependencies{
		AuthService:    authService,
		TokenValidator: validator,
		Users:          users,
		Destinations:   destinations,
		Redis:          rdb,
		Logger:         log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
