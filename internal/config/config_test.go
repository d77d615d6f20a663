package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{ConfigPathEnvVar}
	for k := range envKeys {
		keys = append(keys, k)
	}
	for _, k := range keys {
		name := strings.ToUpper(k)
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected Server.Host to be 0.0.0.0, got %s", cfg.Server.Host)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected Server.Port to be 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.Secure {
		t.Error("expected Server.Secure to be false")
	}
	if cfg.Server.Environment != "development" {
		t.Errorf("expected development environment, got %s", cfg.Server.Environment)
	}
	if cfg.Redis.Enabled {
		t.Error("expected redis to be disabled by default")
	}
	if cfg.Redis.Addr() != "localhost:6379" {
		t.Errorf("expected redis addr localhost:6379, got %s", cfg.Redis.Addr())
	}
	if cfg.RateLimit.Requests != 60 || cfg.RateLimit.Window != time.Minute {
		t.Errorf("unexpected rate limit defaults: %+v", cfg.RateLimit)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("unexpected log defaults: %+v", cfg.Log)
	}
	if cfg.Web.TemplatesDir != "web/templates" || cfg.Web.StaticDir != "web/static" {
		t.Errorf("unexpected web defaults: %+v", cfg.Web)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_SECURE", "true")
	t.Setenv("APP_ENV", "production")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("RATE_LIMIT_REQUESTS", "5")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("UNRELATED_VAR", "ignored")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if !cfg.Server.Secure {
		t.Error("expected secure mode")
	}
	if cfg.Server.Environment != "production" {
		t.Errorf("expected production, got %s", cfg.Server.Environment)
	}
	if !cfg.Redis.Enabled || cfg.Redis.Host != "cache" {
		t.Errorf("unexpected redis config: %+v", cfg.Redis)
	}
	if cfg.RateLimit.Requests != 5 || cfg.RateLimit.Window != 30*time.Second {
		t.Errorf("unexpected rate limit: %+v", cfg.RateLimit)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Log.Level)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("server:\n  port: 7070\nlog:\n  format: console\nweb:\n  templates_dir: /srv/templates\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("SERVER_PORT", "7171")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// env wins over the file
	if cfg.Server.Port != 7171 {
		t.Errorf("expected env port 7171, got %d", cfg.Server.Port)
	}
	if cfg.Log.Format != "console" {
		t.Errorf("expected console format from file, got %s", cfg.Log.Format)
	}
	if cfg.Web.TemplatesDir != "/srv/templates" {
		t.Errorf("expected templates dir from file, got %s", cfg.Web.TemplatesDir)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, true},
		{"zero requests", func(c *Config) { c.RateLimit.Requests = 0 }, true},
		{"zero window", func(c *Config) { c.RateLimit.Window = 0 }, true},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestAddr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 8081}
	if s.Addr() != "127.0.0.1:8081" {
		t.Errorf("unexpected addr %s", s.Addr())
	}
}
