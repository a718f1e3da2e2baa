package cmd

import (
	"fmt"
	"log"

	"github.com/Zachkp/devfolio/internal/config"
	"github.com/Zachkp/devfolio/internal/contact"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newSender builds the delivery transport named in the config.
func newSender(cfg *config.Config) contact.Sender {
	switch cfg.Contact.Transport {
	case config.TransportWebhook:
		return contact.NewWebhookSender(cfg.Webhook.URL)
	case config.TransportLog:
		return contact.LogSender{}
	default:
		if !cfg.SMTPReady() {
			log.Println("WARNING: SMTP credentials not configured; contact messages will fail. Set SMTP_USER and SMTP_PASS.")
		}
		return contact.NewSMTPSender(contact.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.User,
			Password: cfg.SMTP.Pass,
			To:       cfg.SMTP.To,
		})
	}
}
