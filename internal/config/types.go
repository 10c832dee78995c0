package config

import "time"

// Config is the top-level portfolio configuration, corresponding to portfolio.yml.
type Config struct {
	Port          int           `yaml:"port" koanf:"port"`
	Mode          string        `yaml:"mode" koanf:"mode"`
	DataDir       string        `yaml:"data_dir" koanf:"data_dir"`
	ContentDir    string        `yaml:"content_dir" koanf:"content_dir"`
	AssetDir      string        `yaml:"asset_dir" koanf:"asset_dir"`
	DefaultTheme  string        `yaml:"default_theme" koanf:"default_theme"`
	LoadingWindow time.Duration `yaml:"loading_window" koanf:"loading_window"`
	AllowOrigins  []string      `yaml:"allow_origins" koanf:"allow_origins"`
	Contact       ContactConfig `yaml:"contact" koanf:"contact"`
	Admin         AdminConfig   `yaml:"admin" koanf:"admin"`
}

// ContactConfig selects how contact-form submissions leave the site.
// With a relay access key the form-relay endpoint is used, otherwise SMTP.
type ContactConfig struct {
	RelayEndpoint  string        `yaml:"relay_endpoint" koanf:"relay_endpoint"`
	RelayAccessKey string        `yaml:"relay_access_key" koanf:"relay_access_key"`
	Timeout        time.Duration `yaml:"timeout" koanf:"timeout"`
	SMTP           SMTPConfig    `yaml:"smtp" koanf:"smtp"`
}

// SMTPConfig holds direct email delivery settings.
type SMTPConfig struct {
	Host string `yaml:"host" koanf:"host"`
	Port string `yaml:"port" koanf:"port"`
	User string `yaml:"user" koanf:"user"`
	Pass string `yaml:"pass" koanf:"pass"`
	To   string `yaml:"to" koanf:"to"`
}

// AdminConfig holds credentials for the operator dashboard.
type AdminConfig struct {
	Username string `yaml:"username" koanf:"username"`
	Password string `yaml:"password" koanf:"password"`
}

// UsesRelay reports whether submissions go through the form-relay endpoint.
func (c ContactConfig) UsesRelay() bool {
	return c.RelayAccessKey != ""
}
