package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Zachkp/devfolio/internal/contact"
)

// Message is a stored contact attempt.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Delivered bool      `json:"delivered"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SaveMessage records a contact attempt before it is sent.
func (s *Store) SaveMessage(ctx context.Context, id string, form contact.Form) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO messages (id, name, email, subject, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		id, form.Name, form.Email, form.Subject, form.Message, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("inserting message: %w", err)
	}
	return nil
}

// MarkDelivered flags a message as handed off.
func (s *Store) MarkDelivered(ctx context.Context, id string) error {
	return s.mark(ctx, id, true, "")
}

// MarkFailed stores why a message could not be sent.
func (s *Store) MarkFailed(ctx context.Context, id, reason string) error {
	return s.mark(ctx, id, false, reason)
}

func (s *Store) mark(ctx context.Context, id string, delivered bool, reason string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE messages SET delivered = ?, error = ? WHERE id = ?`, delivered, reason, id)
	if err != nil {
		return fmt.Errorf("updating message %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("message %s not found", id)
	}
	return nil
}

// ListMessages returns the newest messages first.
func (s *Store) ListMessages(ctx context.Context, limit int) ([]Message, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, subject, message, delivered, error, created_at
		FROM messages
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	defer rows.Close()

	var out []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Delivered, &m.Error, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
