package config

import "time"

const (
	DefaultFile          = "portfolio.yml"
	DefaultRelayEndpoint = "https://api.web3forms.com/submit"
	DefaultLoadingWindow = 2200 * time.Millisecond
)

// DefaultConfig returns a Config populated with default values.
func DefaultConfig() *Config {
	return &Config{
		Port:          8080,
		Mode:          "release",
		DataDir:       "data",
		AssetDir:      "public",
		DefaultTheme:  "dark",
		LoadingWindow: DefaultLoadingWindow,
		AllowOrigins:  []string{"http://localhost:*", "http://127.0.0.1:*"},
		Contact: ContactConfig{
			RelayEndpoint: DefaultRelayEndpoint,
			Timeout:       15 * time.Second,
			SMTP: SMTPConfig{
				Host: "smtp.gmail.com",
				Port: "587",
			},
		},
		Admin: AdminConfig{
			Username: "admin",
		},
	}
}
