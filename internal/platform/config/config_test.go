package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func loadIsolated(t *testing.T, values map[string]string) (Config, error) {
	t.Helper()
	return Load(WithEnvFile(""), WithoutSystemEnv(), WithEnvMap(values))
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadIsolated(t, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Web.TemplatesDir != "templates" || cfg.Web.PublicDir != "public" {
		t.Fatalf("unexpected web defaults: %+v", cfg.Web)
	}
	if cfg.Web.DevMode {
		t.Fatalf("dev mode should default off")
	}
	if cfg.Redis.URL != "" {
		t.Fatalf("redis should be unset by default")
	}
	if cfg.Session.Secure {
		t.Fatalf("session secure should be off outside prod")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	cfg, err := loadIsolated(t, map[string]string{
		"SHOP_SERVER_PORT":         "9090",
		"SHOP_SERVER_READ_TIMEOUT": "5s",
		"SHOP_WEB_DEV":             "true",
		"SHOP_REDIS_URL":           "redis://localhost:6379/0",
		"SHOP_REDIS_DIAL_TIMEOUT":  "2s",
		"SHOP_ENV":                 "prod",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Fatalf("expected read timeout 5s, got %v", cfg.Server.ReadTimeout)
	}
	if !cfg.Web.DevMode {
		t.Fatalf("expected dev mode on")
	}
	if cfg.Redis.URL != "redis://localhost:6379/0" {
		t.Fatalf("unexpected redis url %q", cfg.Redis.URL)
	}
	if cfg.Redis.DialTimeout != 2*time.Second {
		t.Fatalf("expected dial timeout 2s, got %v", cfg.Redis.DialTimeout)
	}
	if !cfg.Session.Secure {
		t.Fatalf("expected secure cookies in prod")
	}
}

func TestLoadPortFallsBackToPlatformVar(t *testing.T) {
	cfg, err := loadIsolated(t, map[string]string{"PORT": "3000"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "3000" {
		t.Fatalf("expected PORT fallback 3000, got %q", cfg.Server.Port)
	}
}

func TestLoadInvalidDurationKeepsDefault(t *testing.T) {
	cfg, err := loadIsolated(t, map[string]string{"SHOP_SERVER_READ_TIMEOUT": "soon"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.ReadTimeout != defaultReadTimeout {
		t.Fatalf("expected default read timeout, got %v", cfg.Server.ReadTimeout)
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# local overrides\nexport SHOP_SERVER_PORT=7070\nSHOP_WEB_DEV=\"true\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := Load(WithEnvFile(path), WithoutSystemEnv())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Fatalf("expected port 7070 from .env, got %q", cfg.Server.Port)
	}
	if !cfg.Web.DevMode {
		t.Fatalf("expected dev mode from .env")
	}
}

func TestLoadEnvMapBeatsDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("SHOP_SERVER_PORT=7070\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := Load(WithEnvFile(path), WithoutSystemEnv(), WithEnvMap(map[string]string{"SHOP_SERVER_PORT": "9999"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "9999" {
		t.Fatalf("expected env map to win, got %q", cfg.Server.Port)
	}
}

func TestLoadValidation(t *testing.T) {
	_, err := loadIsolated(t, map[string]string{"SHOP_WEB_TEMPLATES_DIR": " "})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	found := false
	for _, f := range verr.Fields() {
		if f == "Web.TemplatesDir" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected Web.TemplatesDir in %v", verr.Fields())
	}
}
