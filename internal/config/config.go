// Package config loads the service configuration from a YAML file and/or
// environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration for the service.
type Config struct {
	Env         string `yaml:"env" env:"APP_ENV" env-default:"local"`
	FrontendURL string `yaml:"frontend_url" env:"FRONTEND_URL" env-default:"http://localhost:3000"`
	HTTPServer  `yaml:"http_server"`
	DB          `yaml:"db"`
	Auth        `yaml:"auth"`
	SMTP        `yaml:"smtp"`
	Redis       `yaml:"redis"`
	RateLimit   `yaml:"rate_limit"`
}

// HTTPServer configures the listening address.
type HTTPServer struct {
	Address string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
}

// DB configures the PostgreSQL connection for the account store.
type DB struct {
	Host          string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port          string `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User          string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password      string `yaml:"password" env:"DB_PASSWORD" env-default:""`
	Name          string `yaml:"name" env:"DB_NAME" env-default:"shop"`
	SSLMode       string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
	RunMigrations bool   `yaml:"run_migrations" env:"RUN_MIGRATIONS" env-default:"false"`
}

// Auth configures token signing and password hashing.
type Auth struct {
	JWTSecret  string        `yaml:"jwt_secret" env:"JWT_SECRET" env-default:""`
	SessionTTL time.Duration `yaml:"session_ttl" env:"SESSION_TTL" env-default:"1h"`
	ResetTTL   time.Duration `yaml:"reset_ttl" env:"RESET_TTL" env-default:"1h"`
	BcryptCost int           `yaml:"bcrypt_cost" env:"BCRYPT_COST" env-default:"10"`
}

// SMTP configures the password-reset mail relay.
type SMTP struct {
	Host     string `yaml:"host" env:"SMTP_HOST" env-default:"smtp.mailgun.org"`
	Port     int    `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	Username string `yaml:"username" env:"SMTP_USER" env-default:""`
	Password string `yaml:"password" env:"SMTP_PASSWORD" env-default:""`
	From     string `yaml:"from" env:"SMTP_FROM" env-default:"Ecommerce App <no-reply@localhost>"`
}

// Redis configures the optional rate-limiter backend. An empty address
// disables Redis and with it the rate limiter.
type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:""`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
}

// RateLimit configures the per-IP fixed window on the credential endpoints.
type RateLimit struct {
	Limit  int           `yaml:"limit" env:"RATE_LIMIT" env-default:"10"`
	Window time.Duration `yaml:"window" env:"RATE_LIMIT_WINDOW" env-default:"1m"`
}

// MustLoad loads the configuration and panics on failure. The file path comes
// from CONFIG_PATH; when unset or missing, environment variables alone apply.
func MustLoad() *Config {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			panic(fmt.Sprintf("config file not found: %s", path))
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
		return &cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config from environment: %v", err))
	}
	return &cfg
}
