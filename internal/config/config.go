package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Port       int    `env:"PORT" envDefault:"9090" validate:"min=1,max=65535"`
	IsTestMode bool   `env:"TEST_MODE" envDefault:"false"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*" validate:"min=1,dive,required"`

	// Only enable behind a proxy that overwrites X-Forwarded-For / X-Real-IP,
	// otherwise clients choose their own rate limit key.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`

	EmailValidator string `env:"EMAIL_VALIDATOR" envDefault:"ozzo" validate:"oneof=ozzo playground"`
	MaxEmailLength int    `env:"MAX_EMAIL_LENGTH" envDefault:"512" validate:"min=3"`
	MaxBodyBytes   int64  `env:"MAX_BODY_BYTES" envDefault:"65536" validate:"min=1024"`

	RedisURL        string `env:"REDIS_URL" validate:"omitempty,url"`
	SignUpRateLimit uint16 `env:"SIGN_UP_RATE_LIMIT" envDefault:"10" validate:"min=1"`

	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s" validate:"gt=0"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"5s" validate:"gt=0"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"5s" validate:"gt=0"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"20s" validate:"gt=0"`
}

func (c *Config) IsRateLimitEnabled() bool {
	return c.RedisURL != ""
}

func Load() (*Config, error) {
	return load(env.Options{})
}

func load(opts env.Options) (*Config, error) {
	config := &Config{}
	if err := env.Parse(config, opts); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}
