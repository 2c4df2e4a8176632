package config

import (
	"testing"
	"time"
)

func TestLoad_RequiresDBURL(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DB_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error without DB_URL")
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	t.Setenv("DB_URL", "postgres://localhost/icesync")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("DB_URL", "postgres://localhost/icesync")
	t.Setenv("SOURCE_BASE_URL", "")
	t.Setenv("SEASON", "")
	t.Setenv("FETCH_DELAY", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("unexpected AppEnv %q", cfg.AppEnv)
	}
	if cfg.SourceBaseURL != "https://www.hockey-reference.com" {
		t.Fatalf("unexpected SourceBaseURL %q", cfg.SourceBaseURL)
	}
	if cfg.Season != 2024 {
		t.Fatalf("unexpected Season %d", cfg.Season)
	}
	if cfg.FetchDelay != 5*time.Second {
		t.Fatalf("unexpected FetchDelay %s", cfg.FetchDelay)
	}
	if cfg.FetchMaxRetries != 3 {
		t.Fatalf("unexpected FetchMaxRetries %d", cfg.FetchMaxRetries)
	}
}

func TestLoad_Parsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("DB_URL", "postgres://localhost/icesync")
	t.Setenv("SOURCE_BASE_URL", "https://mirror.example.com/")
	t.Setenv("SEASON", "2025")
	t.Setenv("FETCH_DELAY", "10s")
	t.Setenv("FETCH_TIMEOUT", "1m")
	t.Setenv("FETCH_MAX_RETRIES", "5")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SourceBaseURL != "https://mirror.example.com" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.SourceBaseURL)
	}
	if cfg.Season != 2025 || cfg.FetchDelay != 10*time.Second || cfg.FetchTimeout != time.Minute {
		t.Fatalf("values not parsed: %+v", cfg)
	}
	if cfg.LogLevel.String() != "warn" {
		t.Fatalf("unexpected LogLevel %s", cfg.LogLevel)
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DB_URL", "postgres://localhost/icesync")

	t.Run("season before the league", func(t *testing.T) {
		t.Setenv("SEASON", "1900")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("non-duration fetch delay", func(t *testing.T) {
		t.Setenv("SEASON", "")
		t.Setenv("FETCH_DELAY", "fast")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("negative retries", func(t *testing.T) {
		t.Setenv("FETCH_DELAY", "")
		t.Setenv("FETCH_MAX_RETRIES", "-1")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})
}
