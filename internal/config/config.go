// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor
// principles; a .env file, when present, fills in anything unset.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Store backends.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config holds all application configuration.
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"development" validate:"required"`

	// PORT wins over APP_PORT when both are set.
	Port    int `env:"PORT" validate:"gte=0,lte=65535"`
	AppPort int `env:"APP_PORT" envDefault:"8080" validate:"gte=1,lte=65535"`

	StoreBackend string `env:"STORE_BACKEND" envDefault:"postgres" validate:"oneof=postgres memory"`

	// Database (PostgreSQL). DATABASE_URL takes precedence over the DB_* parts.
	DatabaseURL   string `env:"DATABASE_URL"`
	DB            DBConfig
	DBAutoMigrate bool  `env:"DB_AUTO_MIGRATE" envDefault:"true"`
	DBMaxConns    int32 `env:"DB_MAX_CONNS" envDefault:"10" validate:"gte=1"`
	DBMinConns    int32 `env:"DB_MIN_CONNS" envDefault:"0" validate:"gte=0"`

	// Redis is optional; empty disables the list cache and change events.
	RedisURL      string        `env:"REDIS_URL"`
	ListCacheTTL  time.Duration `env:"LIST_CACHE_TTL" envDefault:"5m" validate:"gt=0"`
	EventsEnabled bool          `env:"EVENTS_ENABLED" envDefault:"true"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json text"`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Request body size limit in bytes (default 1MB)
	MaxRequestBodySize int64 `env:"MAX_REQUEST_BODY_SIZE" envDefault:"1048576" validate:"gt=0"`
}

// DBConfig holds discrete connection settings, used when DATABASE_URL is unset.
type DBConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	Username string `env:"DB_USERNAME" envDefault:"root"`
	Password string `env:"DB_PASSWORD" envDefault:"test"`
	Database string `env:"DB_DATABASE" envDefault:"test"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// ListenPort returns the port the HTTP server binds.
func (c *Config) ListenPort() int {
	if c.Port > 0 {
		return c.Port
	}
	return c.AppPort
}

// DatabaseDSN returns DATABASE_URL, or a URL assembled from the DB_* settings.
func (c *Config) DatabaseDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DB.Username, c.DB.Password),
		Host:   net.JoinHostPort(c.DB.Host, strconv.Itoa(c.DB.Port)),
		Path:   "/" + c.DB.Database,
	}
	if c.DB.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {c.DB.SSLMode}}.Encode()
	}
	return u.String()
}

var validate = validator.New()

// Load reads the given .env files (default ".env"), then parses environment
// variables into a Config and validates it. Missing .env files are ignored
// and never override variables already set.
func Load(dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
