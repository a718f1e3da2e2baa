package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard asks for the settings a fresh deployment needs and saves them
// to path. Secrets are not written; they belong in .env.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Let's configure the portfolio site.")
	fmt.Println()

	cfg := DefaultConfig()

	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: cfg.Server.Port,
		Validate: func(s string) error {
			if _, err := strconv.Atoi(s); err != nil {
				return fmt.Errorf("port must be a number")
			}
			return nil
		},
	}
	port, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port prompt: %w", err)
	}
	cfg.Server.Port = port

	transportPrompt := promptui.Select{
		Label: "How should contact messages be delivered",
		Items: []string{string(TransportSMTP), string(TransportWebhook), string(TransportLog)},
	}
	_, transport, err := transportPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("transport selection: %w", err)
	}
	cfg.Contact.Transport = Transport(transport)

	switch cfg.Contact.Transport {
	case TransportSMTP:
		hostPrompt := promptui.Prompt{Label: "SMTP host", Default: cfg.SMTP.Host}
		if cfg.SMTP.Host, err = hostPrompt.Run(); err != nil {
			return nil, fmt.Errorf("smtp host prompt: %w", err)
		}
		toPrompt := promptui.Prompt{Label: "Deliver messages to", Default: cfg.SMTP.To}
		if cfg.SMTP.To, err = toPrompt.Run(); err != nil {
			return nil, fmt.Errorf("recipient prompt: %w", err)
		}
		fmt.Println("Put SMTP_USER and SMTP_PASS in .env.")
	case TransportWebhook:
		urlPrompt := promptui.Prompt{
			Label: "Webhook URL",
			Validate: func(s string) error {
				if s == "" {
					return fmt.Errorf("url is required")
				}
				return nil
			},
		}
		if cfg.Webhook.URL, err = urlPrompt.Run(); err != nil {
			return nil, fmt.Errorf("webhook prompt: %w", err)
		}
	}

	trackPrompt := promptui.Select{
		Label: "Track visitors (hashed IPs, honours Do Not Track)",
		Items: []string{"yes", "no"},
	}
	_, track, err := trackPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("tracking selection: %w", err)
	}
	cfg.Server.TrackVisitors = track == "yes"

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, err
	}

	fmt.Printf("\nSaved %s\n", path)
	return cfg, nil
}
