package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port == "" {
		t.Fatalf("expected a default port")
	}
	if cfg.JWTExpiry != time.Hour {
		t.Fatalf("expected default 1h token expiry, got %v", cfg.JWTExpiry)
	}
	if cfg.LogRetention != 720*time.Hour {
		t.Fatalf("expected default 30-day log retention, got %v", cfg.LogRetention)
	}
	if cfg.DSN() == "" {
		t.Fatalf("expected a DSN")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "inventory_test")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRY", "30m")
	t.Setenv("PORT", "9999")

	cfg := Load()

	if cfg.DBHost != "db.internal" {
		t.Errorf("DB_HOST not applied: %q", cfg.DBHost)
	}
	if cfg.JWTSecret != "s3cret" {
		t.Errorf("JWT_SECRET not applied")
	}
	if cfg.JWTExpiry != 30*time.Minute {
		t.Errorf("JWT_EXPIRY not applied: %v", cfg.JWTExpiry)
	}
	if cfg.Port != "9999" {
		t.Errorf("PORT not applied: %q", cfg.Port)
	}

	dsn := cfg.DSN()
	if want := "dbname=inventory_test"; !strings.Contains(dsn, want) {
		t.Errorf("DSN missing %q: %s", want, dsn)
	}
}

func TestParseDurationFallback(t *testing.T) {
	if got := parseDuration("not-a-duration"); got != time.Hour {
		t.Fatalf("expected 1h fallback, got %v", got)
	}
}
