package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds every tunable of the storefront core and the mock backend.
type Config struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	API     APIConfig
	Session SessionConfig
	MockAPI MockAPIConfig
}

// APIConfig configures the outbound REST client.
type APIConfig struct {
	BaseURL string        `env:"API_BASE_URL, default=http://localhost:8000/api"`
	Timeout time.Duration `env:"API_TIMEOUT,  default=15s"`
}

// SessionConfig configures where the session record (tokens + user) lives.
// When RedisAddr is set the redis backend is used instead of the local file.
type SessionConfig struct {
	File      string `env:"SESSION_FILE,       default=.storefront/session.json"`
	RedisAddr string `env:"SESSION_REDIS_ADDR"`
	RedisDB   int    `env:"SESSION_REDIS_DB,   default=0"`
}

// MockAPIConfig configures the local development backend (cmd/mockapi).
type MockAPIConfig struct {
	Port       string        `env:"MOCKAPI_PORT,        default=8000"`
	JWTSecret  string        `env:"MOCKAPI_JWT_SECRET,  default=dev-secret"`
	AccessTTL  time.Duration `env:"MOCKAPI_ACCESS_TTL,  default=15m"`
	RefreshTTL time.Duration `env:"MOCKAPI_REFRESH_TTL, default=168h"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
