package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"tourism-backend/utils"
)

type Config struct {
	Env      string
	LogLevel string
	Port     string

	DBDriver    string
	DatabaseURL string

	AuthSecret      string
	AuthTokenTTL    time.Duration
	EnforceAdminAPI bool
	AuthRateLimit   int

	CORSOrigins []string
	// TrustedProxies may set X-Forwarded-For; empty trusts no proxy.
	TrustedProxies []string

	MemcachedHost string
	CacheTTL      time.Duration

	RabbitMQURL      string
	RabbitMQExchange string

	SeedAdminEmail    string
	SeedAdminPassword string
}

var (
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set")
	ErrMissingAuthSecret  = errors.New("AUTH_SECRET is not set")
)

// Load reads .env (optional) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env not found; using process environment")
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Env:      utils.EnvOrDefault("APP_ENV", "production"),
		LogLevel: utils.EnvOrDefault("LOG_LEVEL", "info"),
		Port:     utils.EnvOrDefault("PORT", "8080"),

		DBDriver:    utils.EnvOrDefault("DB_DRIVER", "mysql"),
		DatabaseURL: utils.EnvOrDefault("DATABASE_URL", utils.EnvOrDefault("MYSQL_URL", "")),

		AuthSecret:      utils.EnvOrDefault("AUTH_SECRET", ""),
		AuthTokenTTL:    utils.EnvDuration("AUTH_TOKEN_TTL", 24*time.Hour),
		EnforceAdminAPI: utils.EnvBool("ENFORCE_ADMIN_API", true),
		AuthRateLimit:   utils.EnvInt("AUTH_RATE_LIMIT", 20),

		CORSOrigins:    utils.SplitCSV(utils.EnvOrDefault("CORS_ORIGINS", "*")),
		TrustedProxies: utils.SplitCSV(utils.EnvOrDefault("TRUSTED_PROXIES", "")),

		MemcachedHost: utils.EnvOrDefault("MEMCACHED_HOST", ""),
		CacheTTL:      utils.EnvDuration("CACHE_TTL", 5*time.Minute),

		RabbitMQURL:      utils.EnvOrDefault("RABBITMQ_URL", ""),
		RabbitMQExchange: utils.EnvOrDefault("RABBITMQ_EXCHANGE", "tourism.events"),

		SeedAdminEmail:    utils.EnvOrDefault("SEED_ADMIN_EMAIL", ""),
		SeedAdminPassword: utils.EnvOrDefault("SEED_ADMIN_PASSWORD", ""),
	}

	if cfg.DatabaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}
	if cfg.AuthSecret == "" {
		return nil, ErrMissingAuthSecret
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}
	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
