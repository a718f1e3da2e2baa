package config

import "time"

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:             "8080",
			Mode:             "debug",
			AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
			TrackVisitors:    true,
			VisitorRetention: 365 * 24 * time.Hour,
			StaticDir:        "./static",
			ImagesDir:        "./images",
		},
		Contact: ContactConfig{
			Transport:   TransportSMTP,
			SendTimeout: 30 * time.Second,
			SessionTTL:  time.Hour,
			MaxSessions: 10000,
			Record:      true,
		},
		SMTP: SMTPConfig{
			Host: "smtp.gmail.com",
			Port: "587",
			To:   "zachkordaspotter@gmail.com",
		},
		Admin: AdminConfig{
			Username: "admin",
		},
		Database: DatabaseConfig{
			Path: "data/devfolio.db",
		},
		Content: ContentConfig{
			File: "content/portfolio.yml",
			Dir:  "content",
			Glob: "**/*.md",
		},
		Nav: NavConfig{
			ActivationOffset: 100,
		},
	}
}
