package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// KeyBackend selects where the token signing key lives: "file" for a
	// local blob, "redis" for the shared secret store used in multi-process
	// deployments.
	KeyBackend string `env:"KEY_BACKEND, default=file"`
	KeyFile    string `env:"KEY_FILE,    default=secret.key"`

	// AuthValidateURL, when set, makes the authorization gate validate
	// tokens against a remote authentication service instead of in-process.
	AuthValidateURL string        `env:"AUTH_VALIDATE_URL"`
	ValidateTimeout time.Duration `env:"VALIDATE_TIMEOUT, default=3s"`

	Bootstrap BootstrapConfig
	Redis     RedisConfig
}

// BootstrapConfig describes the admin identity seeded before any
// registration call.
type BootstrapConfig struct {
	Name     string `env:"BOOTSTRAP_ADMIN_NAME,     default=Master Admin"`
	Email    string `env:"BOOTSTRAP_ADMIN_EMAIL,    default=masteradmin@example.com"`
	Password string `env:"BOOTSTRAP_ADMIN_PASSWORD, default=Master@123"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.KeyBackend != "file" && cfg.KeyBackend != "redis" {
		return nil, fmt.Errorf("config: unknown KEY_BACKEND %q", cfg.KeyBackend)
	}
	return &cfg, nil
}
