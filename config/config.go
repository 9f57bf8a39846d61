package config

import (
	"errors"
	"log/slog"
	"os"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the environment-sourced runtime configuration.
type Config struct {
	Env       string `envconfig:"ENV" default:"development"`
	Port      string `envconfig:"PORT" default:"8080"`
	AppName   string `envconfig:"APP_NAME" default:"Books Store"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	MongoURI string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	DBName   string `envconfig:"DB_NAME" default:"books_store"`

	JWTAlgorithm           string `envconfig:"JWT_ALGORITHM" default:"HS256"`
	JWTAccessSecretKey     string `envconfig:"JWT_ACCESS_SECRET_KEY" required:"true"`
	JWTAccessExpiryMinutes int    `envconfig:"JWT_ACCESS_EXPIRY_MINUTES" default:"15"`
	JWTRefreshSecretKey    string `envconfig:"JWT_REFRESH_SECRET_KEY" required:"true"`
	JWTRefreshExpiryDays   int    `envconfig:"JWT_REFRESH_EXPIRY_DAYS" default:"7"`
	SessionExpiryMinutes   int    `envconfig:"USER_SESSION_EXPIRY_MINUTES" default:"30"`

	MailServer   string `envconfig:"MAIL_SERVER" default:"smtp.example.com"`
	MailPort     int    `envconfig:"MAIL_PORT" default:"587"`
	MailUsername string `envconfig:"MAIL_USERNAME" default:""`
	MailPassword string `envconfig:"MAIL_PASSWORD" default:""`
	MailFrom     string `envconfig:"MAIL_FROM" default:"noreply@example.com"`
	MailFromName string `envconfig:"MAIL_FROM_NAME" default:"Books Store"`

	FrontendHost string `envconfig:"FRONTEND_HOST" default:"http://localhost:3000"`

	RedisAddr string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.JWTAccessSecretKey == "" || cfg.JWTRefreshSecretKey == "" {
		return nil, errors.New("jwt signing secrets must be provided")
	}
	if cfg.JWTAccessSecretKey == cfg.JWTRefreshSecretKey {
		return nil, errors.New("access and refresh secrets must differ")
	}
	return &cfg, nil
}

// NewLogger returns a slog.Logger configured from Config.
func NewLogger(cfg *Config) *slog.Logger {
	if cfg != nil && cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.Env == "production"
}
