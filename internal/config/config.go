package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides. Nested keys use a double
// underscore: PORTFOLIO_CONTACT__RELAY_ACCESS_KEY -> contact.relay_access_key.
const EnvPrefix = "PORTFOLIO_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PORTFOLIO_*) and the plain variables
// older deployments set (PORT, SMTP_*, TO_EMAIL, ADMIN_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := applyLegacyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyLegacyEnv(cfg *Config) error {
	if port := os.Getenv("PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Port = n
	}
	setIf := func(dst *string, name string) {
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}
	setIf(&cfg.Contact.SMTP.Host, "SMTP_HOST")
	setIf(&cfg.Contact.SMTP.Port, "SMTP_PORT")
	setIf(&cfg.Contact.SMTP.User, "SMTP_USER")
	setIf(&cfg.Contact.SMTP.Pass, "SMTP_PASS")
	setIf(&cfg.Contact.SMTP.To, "TO_EMAIL")
	setIf(&cfg.Admin.Username, "ADMIN_USERNAME")
	setIf(&cfg.Admin.Password, "ADMIN_PASSWORD")
	return nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validModes = map[string]bool{
	"debug":   true,
	"release": true,
	"test":    true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if !validModes[c.Mode] {
		return fmt.Errorf("invalid mode %q: must be one of debug, release, test", c.Mode)
	}
	if c.DefaultTheme != "light" && c.DefaultTheme != "dark" {
		return fmt.Errorf("invalid default_theme %q: must be light or dark", c.DefaultTheme)
	}
	if c.LoadingWindow < 0 {
		return fmt.Errorf("loading_window must be non-negative")
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.Contact.UsesRelay() && c.Contact.RelayEndpoint == "" {
		return fmt.Errorf("contact.relay_endpoint is required when a relay access key is set")
	}
	if c.Contact.Timeout <= 0 {
		return fmt.Errorf("contact.timeout must be positive")
	}
	return nil
}

// ListenAddr returns the address the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return ":" + strconv.Itoa(c.Port)
}
