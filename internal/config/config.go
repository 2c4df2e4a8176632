package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pucklab/icesync/internal/platform/logging"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

// Config stores runtime configuration for the sync jobs.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string

	DBURL string

	SourceBaseURL   string
	Season          int
	FetchDelay      time.Duration
	FetchTimeout    time.Duration
	FetchMaxRetries int

	LogLevel logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required")
	}

	season, err := getEnvAsInt("SEASON", 2024)
	if err != nil {
		return Config{}, fmt.Errorf("parse SEASON: %w", err)
	}
	if season < 1918 {
		return Config{}, fmt.Errorf("SEASON %d is before the league existed", season)
	}

	fetchDelay, err := time.ParseDuration(getEnv("FETCH_DELAY", "5s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FETCH_DELAY: %w", err)
	}
	if fetchDelay <= 0 {
		return Config{}, fmt.Errorf("FETCH_DELAY must be > 0")
	}

	fetchTimeout, err := time.ParseDuration(getEnv("FETCH_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FETCH_TIMEOUT: %w", err)
	}
	if fetchTimeout <= 0 {
		return Config{}, fmt.Errorf("FETCH_TIMEOUT must be > 0")
	}

	fetchMaxRetries, err := getEnvAsInt("FETCH_MAX_RETRIES", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse FETCH_MAX_RETRIES: %w", err)
	}
	if fetchMaxRetries < 0 {
		return Config{}, fmt.Errorf("FETCH_MAX_RETRIES must be >= 0")
	}

	return Config{
		AppEnv:          appEnv,
		ServiceName:     getEnv("SERVICE_NAME", "icesync"),
		ServiceVersion:  getEnv("SERVICE_VERSION", "dev"),
		DBURL:           dbURL,
		SourceBaseURL:   strings.TrimRight(getEnv("SOURCE_BASE_URL", "https://www.hockey-reference.com"), "/"),
		Season:          season,
		FetchDelay:      fetchDelay,
		FetchTimeout:    fetchTimeout,
		FetchMaxRetries: fetchMaxRetries,
		LogLevel:        parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}, nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s", v, EnvDev, EnvProd)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}
