package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard asks for the settings a fresh deployment needs and saves the
// resulting Config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Let's configure your portfolio.")
	fmt.Println()

	cfg := DefaultConfig()

	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return errors.New("port must be a number between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	themePrompt := promptui.Select{
		Label: "Default theme",
		Items: []string{"dark", "light"},
	}
	_, cfg.DefaultTheme, err = themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}

	deliveryPrompt := promptui.Select{
		Label: "Contact form delivery",
		Items: []string{
			"relay: hosted form-relay endpoint (access key)",
			"smtp: send email directly",
		},
	}
	delivery, _, err := deliveryPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("delivery selection: %w", err)
	}

	if delivery == 0 {
		keyPrompt := promptui.Prompt{Label: "Relay access key"}
		if cfg.Contact.RelayAccessKey, err = keyPrompt.Run(); err != nil {
			return nil, fmt.Errorf("relay access key: %w", err)
		}
	} else {
		hostPrompt := promptui.Prompt{Label: "SMTP host", Default: cfg.Contact.SMTP.Host}
		if cfg.Contact.SMTP.Host, err = hostPrompt.Run(); err != nil {
			return nil, fmt.Errorf("smtp host: %w", err)
		}
		userPrompt := promptui.Prompt{Label: "SMTP user"}
		if cfg.Contact.SMTP.User, err = userPrompt.Run(); err != nil {
			return nil, fmt.Errorf("smtp user: %w", err)
		}
		toPrompt := promptui.Prompt{Label: "Deliver messages to", Default: cfg.Contact.SMTP.User}
		if cfg.Contact.SMTP.To, err = toPrompt.Run(); err != nil {
			return nil, fmt.Errorf("smtp recipient: %w", err)
		}
		fmt.Println("\nNote: set SMTP_PASS in your environment (or .env) before running serve.")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
