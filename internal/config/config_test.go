package config

import (
	"testing"
	"time"

	"github.com/neocamp/partidas-futebol/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected default http addr: %q", cfg.HTTPAddr)
	}
	if cfg.ReadTimeout != 10*time.Second {
		t.Fatalf("unexpected default read timeout: %s", cfg.ReadTimeout)
	}
	if cfg.WriteTimeout != 15*time.Second {
		t.Fatalf("unexpected default write timeout: %s", cfg.WriteTimeout)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected default shutdown timeout: %s", cfg.ShutdownTimeout)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected default log level: %v", cfg.LogLevel)
	}
}

func TestLoad_SeedDefaultsByEnv(t *testing.T) {
	t.Run("dev seeds by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("DB_SEED_ON_START", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.SeedOnStart {
			t.Fatalf("expected SeedOnStart=true in dev by default")
		}
	})

	t.Run("prod does not seed by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("DB_SEED_ON_START", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SeedOnStart {
			t.Fatalf("expected SeedOnStart=false in prod by default")
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("DB_SEED_ON_START", "not-bool")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid DB_SEED_ON_START")
		}
	})
}

func TestLoad_TimeoutValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("invalid duration", func(t *testing.T) {
		t.Setenv("APP_READ_TIMEOUT", "soon")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid APP_READ_TIMEOUT")
		}
	})

	t.Run("non positive duration", func(t *testing.T) {
		t.Setenv("APP_READ_TIMEOUT", "10s")
		t.Setenv("APP_SHUTDOWN_TIMEOUT", "0s")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for APP_SHUTDOWN_TIMEOUT=0s")
		}
	})
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})
}

func TestLoad_LogLevelParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	tests := []struct {
		raw  string
		want logging.Level
	}{
		{"debug", logging.LevelDebug},
		{"warn", logging.LevelWarn},
		{"warning", logging.LevelWarn},
		{"error", logging.LevelError},
		{"anything-else", logging.LevelInfo},
	}
	for _, tc := range tests {
		t.Setenv("APP_LOG_LEVEL", tc.raw)
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.LogLevel != tc.want {
			t.Fatalf("unexpected log level for %q: %v", tc.raw, cfg.LogLevel)
		}
	}
}
