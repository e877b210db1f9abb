package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"

	"purple-insta/internal/infrastructure"
)

type Config struct {
	Port          string
	DatabaseURL   string
	SQLitePath    string
	SessionSecret string
	SessionTTL    time.Duration

	CivicAPIKey  string
	CivicAPIBase string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	EmailAPIKey string
	EmailSender string

	LogLevel string

	LoginRateWindow time.Duration
	LoginRateMax    int
}

// Load reads configuration from a .env file (when present) and the
// environment. SESSION_SECRET and CIVIC_API_KEY have no fallback on purpose.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          infrastructure.GetEnvAsString("PORT", "8005"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SQLitePath:    infrastructure.GetEnvAsString("SQLITE_PATH", "purple_insta.db"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    infrastructure.GetEnvAsDuration("SESSION_TTL", 24*time.Hour),

		CivicAPIKey:  os.Getenv("CIVIC_API_KEY"),
		CivicAPIBase: infrastructure.GetEnvAsString("CIVIC_API_BASE", "https://www.googleapis.com"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       infrastructure.GetEnvAsInt("REDIS_DB", 0),

		EmailAPIKey: os.Getenv("EMAIL_API_KEY"),
		EmailSender: os.Getenv("EMAIL_SENDER"),

		LogLevel: infrastructure.GetEnvAsString("LOG_LEVEL", "info"),

		LoginRateWindow: infrastructure.GetEnvAsDuration("LOGIN_RATE_WINDOW", time.Minute),
		LoginRateMax:    infrastructure.GetEnvAsInt("LOGIN_RATE_MAX", 10),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.SessionSecret == "" {
		return errors.New("SESSION_SECRET is not set")
	}
	if c.CivicAPIKey == "" {
		return errors.New("CIVIC_API_KEY is not set")
	}
	return nil
}
