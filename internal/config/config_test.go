package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.DefaultTheme != "dark" {
		t.Errorf("expected default theme dark, got %q", cfg.DefaultTheme)
	}
	if cfg.LoadingWindow != 2200*time.Millisecond {
		t.Errorf("expected loading window 2.2s, got %v", cfg.LoadingWindow)
	}
	if cfg.Contact.RelayEndpoint != DefaultRelayEndpoint {
		t.Errorf("expected relay endpoint %q, got %q", DefaultRelayEndpoint, cfg.Contact.RelayEndpoint)
	}
	if cfg.Contact.UsesRelay() {
		t.Error("relay should be off without an access key")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("PORT", "")
	path := filepath.Join(t.TempDir(), "portfolio.yml")

	original := DefaultConfig()
	original.Port = 9000
	original.DefaultTheme = "light"
	original.LoadingWindow = 1500 * time.Millisecond
	original.Contact.RelayAccessKey = "key-123"
	original.AllowOrigins = []string{"https://example.com"}

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Port != 9000 {
		t.Errorf("port: got %d, want 9000", loaded.Port)
	}
	if loaded.DefaultTheme != "light" {
		t.Errorf("default_theme: got %q, want light", loaded.DefaultTheme)
	}
	if loaded.LoadingWindow != original.LoadingWindow {
		t.Errorf("loading_window: got %v, want %v", loaded.LoadingWindow, original.LoadingWindow)
	}
	if !loaded.Contact.UsesRelay() {
		t.Error("expected relay to be enabled after round trip")
	}
	if len(loaded.AllowOrigins) != 1 || loaded.AllowOrigins[0] != "https://example.com" {
		t.Errorf("allow_origins: got %v", loaded.AllowOrigins)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("PORT", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORTFOLIO_DEFAULT_THEME", "light")
	t.Setenv("PORTFOLIO_CONTACT__RELAY_ACCESS_KEY", "from-env")
	t.Setenv("PORT", "7070")
	t.Setenv("SMTP_USER", "me@example.com")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultTheme != "light" {
		t.Errorf("default_theme: got %q, want light", cfg.DefaultTheme)
	}
	if cfg.Contact.RelayAccessKey != "from-env" {
		t.Errorf("relay key: got %q, want from-env", cfg.Contact.RelayAccessKey)
	}
	if cfg.Port != 7070 {
		t.Errorf("PORT override: got %d, want 7070", cfg.Port)
	}
	if cfg.Contact.SMTP.User != "me@example.com" {
		t.Errorf("SMTP_USER override: got %q", cfg.Contact.SMTP.User)
	}
}

func TestInvalidLegacyPort(t *testing.T) {
	t.Setenv("PORT", "eighty")
	if _, err := Load(filepath.Join(t.TempDir(), "none.yml")); err == nil {
		t.Fatal("expected error for non-numeric PORT")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad theme", func(c *Config) { c.DefaultTheme = "sepia" }, true},
		{"bad mode", func(c *Config) { c.Mode = "prod" }, true},
		{"bad port", func(c *Config) { c.Port = 70000 }, true},
		{"negative loading window", func(c *Config) { c.LoadingWindow = -time.Second }, true},
		{"missing data dir", func(c *Config) { c.DataDir = "" }, true},
		{"relay without endpoint", func(c *Config) {
			c.Contact.RelayAccessKey = "k"
			c.Contact.RelayEndpoint = ""
		}, true},
		{"zero timeout", func(c *Config) { c.Contact.Timeout = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
