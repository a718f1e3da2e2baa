package contact

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// ErrNotConfigured is returned by senders that are missing credentials or
// an endpoint.
var ErrNotConfigured = errors.New("contact transport not configured")

// Sender delivers a validated form to wherever messages end up.
type Sender interface {
	Send(ctx context.Context, form Form) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, form Form) error

// Send calls f.
func (f SenderFunc) Send(ctx context.Context, form Form) error {
	return f(ctx, form)
}

// SMTPConfig holds the mail server settings for SMTPSender.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	To       string
}

// SMTPSender mails the form to the site owner.
type SMTPSender struct {
	cfg SMTPConfig
	// send is smtp.SendMail; replaced in tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPSender returns a sender that delivers through the given server.
func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg, send: smtp.SendMail}
}

// Send composes the message and hands it to the SMTP server. net/smtp has no
// context support, so ctx is only checked before dialing.
func (s *SMTPSender) Send(ctx context.Context, form Form) error {
	if s.cfg.Username == "" || s.cfg.Password == "" {
		return fmt.Errorf("smtp credentials: %w", ErrNotConfigured)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := composeMail(s.cfg.Username, s.cfg.To, form)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	if err := s.send(s.cfg.Host+":"+s.cfg.Port, auth, s.cfg.Username, []string{s.cfg.To}, msg); err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}

	log.Printf("contact: mail sent from %s (%s)", form.Name, form.Email)
	return nil
}

func composeMail(from, to string, form Form) []byte {
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Subject: %s
Message:
%s

---
Sent from your portfolio contact form
`, form.Name, form.Email, form.Subject, form.Message)

	var b strings.Builder
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + headerSafe("Portfolio Contact: "+form.Subject) + "\r\n")
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("Reply-To: " + headerSafe(strings.TrimSpace(form.Email)) + "\r\n")
	b.WriteString("\r\n")
	b.WriteString(body + "\r\n")
	return []byte(b.String())
}

// headerSafe strips line breaks so visitor input cannot add mail headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

// LogSender only logs the message. It stands in for a real transport during
// local development.
type LogSender struct{}

// Send logs the form.
func (LogSender) Send(_ context.Context, form Form) error {
	log.Printf("contact: message from %s <%s>: %s", form.Name, form.Email, form.Subject)
	return nil
}
