package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Nav.ActivationOffset != 100 {
		t.Errorf("ActivationOffset = %v, want 100", cfg.Nav.ActivationOffset)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devfolio.yml")
	yml := `
server:
  port: "9000"
  mode: release
contact:
  transport: log
  send_timeout: 5s
nav:
  activation_offset: 80
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("SMTP_USER", "site@example.com")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("PORT", "9100")
	t.Setenv("DEVFOLIO_CONTACT__SESSION_TTL", "15m")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "9100" {
		t.Errorf("Port = %q, want env override 9100", cfg.Server.Port)
	}
	if cfg.Server.Mode != "release" {
		t.Errorf("Mode = %q", cfg.Server.Mode)
	}
	if cfg.Contact.Transport != TransportLog {
		t.Errorf("Transport = %q", cfg.Contact.Transport)
	}
	if cfg.Contact.SendTimeout != 5*time.Second {
		t.Errorf("SendTimeout = %v", cfg.Contact.SendTimeout)
	}
	if cfg.Contact.SessionTTL != 15*time.Minute {
		t.Errorf("SessionTTL = %v", cfg.Contact.SessionTTL)
	}
	if cfg.Nav.ActivationOffset != 80 {
		t.Errorf("ActivationOffset = %v", cfg.Nav.ActivationOffset)
	}
	if !cfg.SMTPReady() {
		t.Error("SMTPReady() = false with credentials set")
	}
	// Untouched keys keep their defaults.
	if cfg.SMTP.Host != "smtp.gmail.com" {
		t.Errorf("SMTP.Host = %q", cfg.SMTP.Host)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad transport", func(c *Config) { c.Contact.Transport = "pigeon" }, "contact.transport"},
		{"webhook without url", func(c *Config) { c.Contact.Transport = TransportWebhook }, "webhook.url"},
		{"bad mode", func(c *Config) { c.Server.Mode = "prod" }, "server.mode"},
		{"negative timeout", func(c *Config) { c.Contact.SendTimeout = -time.Second }, "send_timeout"},
		{"zero ttl", func(c *Config) { c.Contact.SessionTTL = 0 }, "session_ttl"},
		{"no session cap", func(c *Config) { c.Contact.MaxSessions = 0 }, "max_sessions"},
		{"negative offset", func(c *Config) { c.Nav.ActivationOffset = -1 }, "activation_offset"},
		{"no port", func(c *Config) { c.Server.Port = "" }, "server.port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, tt.wantErr)
			}
		})
	}
}

func TestSaveOmitsSecrets(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SMTP.Pass = "hunter2"
	cfg.Admin.Password = "hunter3"

	path := filepath.Join(t.TempDir(), "out.yml")
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "hunter") {
		t.Errorf("saved config leaks a secret:\n%s", data)
	}
}
