package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool `env:"TEST_MODE" envDefault:"false"`
	Port       int  `env:"PORT" envDefault:"9090"`

	Secret        string `env:"SECRET,required"`
	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`

	BcryptHasherCost int           `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	TokenIssuer      string        `env:"TOKEN_ISSUER" envDefault:"exchanger"`
	AccessTokenTTL   time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"1h"`
	RefreshTokenTTL  time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"720h"`

	ResetTokenBucketSeconds int64   `env:"RESET_TOKEN_BUCKET_SECONDS" envDefault:"3600"`
	ResetTokenWindowBuckets int     `env:"RESET_TOKEN_WINDOW_BUCKETS" envDefault:"24"`
	PasswordResetBaseURL    url.URL `env:"PASSWORD_RESET_BASE_URL,required"`

	AwsRegion                 string `env:"AWS_REGION" envDefault:"us-east-1"`
	AwsAccessKey              string `env:"AWS_ACCESS_KEY"`
	AwsSecretKey              string `env:"AWS_SECRET_KEY"`
	PasswordResetEmailFrom    string `env:"PASSWORD_RESET_EMAIL_FROM"`
	PasswordResetEmailSubject string `env:"PASSWORD_RESET_EMAIL_SUBJECT" envDefault:"Password reset request"`

	SentryDSN      string   `env:"SENTRY_DSN"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("could not parse configuration: %w", err)
	}
	return config, nil
}
