package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every namespaced environment override. Nested keys are
// separated by a double underscore: DEVFOLIO_CONTACT__SEND_TIMEOUT.
const EnvPrefix = "DEVFOLIO_"

// plainEnv maps the short variable names used in .env files to config keys.
var plainEnv = map[string]string{
	"PORT":           "server.port",
	"GIN_MODE":       "server.mode",
	"SMTP_HOST":      "smtp.host",
	"SMTP_PORT":      "smtp.port",
	"SMTP_USER":      "smtp.user",
	"SMTP_PASS":      "smtp.pass",
	"TO_EMAIL":       "smtp.to",
	"ADMIN_USERNAME": "admin.username",
	"ADMIN_PASSWORD": "admin.password",
	"WEBHOOK_URL":    "webhook.url",
	"DATABASE_PATH":  "database.path",
}

// Load reads configuration from the given YAML file, then overlays the plain
// environment variables and finally the DEVFOLIO_* overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", func(s string) string {
		return plainEnv[s]
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env: %w", err)
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

	return cfg, nil
}

// Save writes the configuration to path as YAML. Secrets are left out.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validTransports = map[Transport]bool{
	TransportSMTP:    true,
	TransportWebhook: true,
	TransportLog:     true,
}

var validModes = map[string]bool{
	"debug":   true,
	"release": true,
	"test":    true,
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server.port is required")
	}
	if !validModes[c.Server.Mode] {
		return fmt.Errorf("invalid server.mode %q: must be one of debug, release, test", c.Server.Mode)
	}
	if !validTransports[c.Contact.Transport] {
		return fmt.Errorf("invalid contact.transport %q: must be one of smtp, webhook, log", c.Contact.Transport)
	}
	if c.Contact.Transport == TransportWebhook && c.Webhook.URL == "" {
		return fmt.Errorf("webhook.url is required for the webhook transport")
	}
	if c.Contact.SendTimeout < 0 {
		return fmt.Errorf("contact.send_timeout must be non-negative")
	}
	if c.Contact.SessionTTL <= 0 {
		return fmt.Errorf("contact.session_ttl must be positive")
	}
	if c.Contact.MaxSessions <= 0 {
		return fmt.Errorf("contact.max_sessions must be positive")
	}
	if c.Nav.ActivationOffset < 0 {
		return fmt.Errorf("nav.activation_offset must be non-negative")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	return nil
}

// SMTPReady reports whether SMTP credentials are present.
func (c *Config) SMTPReady() bool {
	return c.SMTP.User != "" && c.SMTP.Pass != ""
}
