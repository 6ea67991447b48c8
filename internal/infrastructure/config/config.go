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

	JWT   JWTConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// JWTConfig carries the signing secret and token lifetime. The default secret
// exists so development starts without ceremony; production overrides it.
type JWTConfig struct {
	Secret     string `env:"JWT_SECRET,             default=defaultSecretKeyNeedsToBeAtLeast32BytesLong"`
	ExpireSecs int    `env:"JWT_EXPIRATION_SECONDS, default=86400"`
}

// TTL returns the configured token lifetime as a duration.
func (c JWTConfig) TTL() time.Duration {
	return time.Duration(c.ExpireSecs) * time.Second
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=identity"`
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
	return &cfg, nil
}
