package config

import "time"

// Transport selects how contact messages leave the site.
type Transport string

const (
	TransportSMTP    Transport = "smtp"
	TransportWebhook Transport = "webhook"
	TransportLog     Transport = "log"
)

// Config is the full site configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server" yaml:"server"`
	Contact  ContactConfig  `koanf:"contact" yaml:"contact"`
	SMTP     SMTPConfig     `koanf:"smtp" yaml:"smtp"`
	Webhook  WebhookConfig  `koanf:"webhook" yaml:"webhook"`
	Admin    AdminConfig    `koanf:"admin" yaml:"admin"`
	Database DatabaseConfig `koanf:"database" yaml:"database"`
	Content  ContentConfig  `koanf:"content" yaml:"content"`
	Nav      NavConfig      `koanf:"nav" yaml:"nav"`
}

type ServerConfig struct {
	Port string `koanf:"port" yaml:"port"`
	// Mode is the gin mode: debug, release or test.
	Mode           string   `koanf:"mode" yaml:"mode"`
	AllowedOrigins []string `koanf:"allowed_origins" yaml:"allowed_origins"`
	TrackVisitors  bool     `koanf:"track_visitors" yaml:"track_visitors"`
	// VisitorRetention is how long visits are kept before cleanup.
	VisitorRetention time.Duration `koanf:"visitor_retention" yaml:"visitor_retention"`
	StaticDir        string        `koanf:"static_dir" yaml:"static_dir"`
	ImagesDir        string        `koanf:"images_dir" yaml:"images_dir"`
}

type ContactConfig struct {
	Transport Transport `koanf:"transport" yaml:"transport"`
	// SendTimeout bounds one delivery attempt. Zero means no limit.
	SendTimeout time.Duration `koanf:"send_timeout" yaml:"send_timeout"`
	SessionTTL  time.Duration `koanf:"session_ttl" yaml:"session_ttl"`
	// MaxSessions caps the form sessions held in memory.
	MaxSessions int `koanf:"max_sessions" yaml:"max_sessions"`
	// Record keeps every attempt in the database.
	Record bool `koanf:"record" yaml:"record"`
}

type SMTPConfig struct {
	Host string `koanf:"host" yaml:"host"`
	Port string `koanf:"port" yaml:"port"`
	User string `koanf:"user" yaml:"user"`
	Pass string `koanf:"pass" yaml:"-"`
	To   string `koanf:"to" yaml:"to"`
}

type WebhookConfig struct {
	URL string `koanf:"url" yaml:"url"`
}

type AdminConfig struct {
	Username string `koanf:"username" yaml:"username"`
	Password string `koanf:"password" yaml:"-"`
}

type DatabaseConfig struct {
	Path string `koanf:"path" yaml:"path"`
	// Salt is mixed into visitor IP hashes. Empty means a fresh salt per run.
	Salt string `koanf:"salt" yaml:"-"`
}

type ContentConfig struct {
	File string `koanf:"file" yaml:"file"`
	Dir  string `koanf:"dir" yaml:"dir"`
	Glob string `koanf:"glob" yaml:"glob"`
}

type NavConfig struct {
	ActivationOffset float64 `koanf:"activation_offset" yaml:"activation_offset"`
}
