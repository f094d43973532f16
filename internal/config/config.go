// Package config loads the sheet service settings from the environment
package config

import (
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/bh2e-sheets/internal/errors"
)

// Config holds the process-level settings. Command flags override these values.
type Config struct {
	GRPCPort       int    `env:"BH2E_GRPC_PORT" envDefault:"50051"`
	MetricsPort    int    `env:"BH2E_METRICS_PORT" envDefault:"9090"`
	RedisAddr      string `env:"BH2E_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword  string `env:"BH2E_REDIS_PASSWORD"`
	RedisTLS       bool   `env:"BH2E_REDIS_TLS" envDefault:"false"`
	ChatLogLimit   int    `env:"BH2E_CHAT_LOG_LIMIT" envDefault:"500"`
	OwnerCacheSize int    `env:"BH2E_OWNER_CACHE_SIZE" envDefault:"1024"`
	Locale         string `env:"BH2E_LOCALE" envDefault:"en"`
	LogLevel       string `env:"BH2E_LOG_LEVEL" envDefault:"info"`
}

// Load reads an optional env file and parses the environment into a Config.
// A missing env file is not an error.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "failed to load env file")
		}
		slog.Debug("No env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks ranges of the parsed values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("GRPCPort", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRange("MetricsPort", c.MetricsPort, 0, 65535, vb)
	errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	errors.ValidateMin("ChatLogLimit", c.ChatLogLimit, 1, vb)
	errors.ValidateMin("OwnerCacheSize", c.OwnerCacheSize, 1, vb)
	if _, ok := logLevels[c.LogLevel]; !ok {
		vb.InvalidField("LogLevel", "must be one of debug, info, warn, error")
	}

	return vb.Build()
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// SlogLevel returns the configured log level
func (c *Config) SlogLevel() slog.Level {
	return logLevels[c.LogLevel]
}
