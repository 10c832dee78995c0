package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Message delivery outcomes.
const (
	StatusSent   = "sent"
	StatusFailed = "failed"
)

// Message is a logged contact-form submission.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"body"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SaveMessage logs m, assigning an ID and timestamp when missing.
func (s *Store) SaveMessage(ctx context.Context, m Message) (Message, error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = s.now().UTC().Truncate(time.Second)
	}
	_, err := s.ExecContext(ctx, `
		INSERT INTO messages (id, name, email, body, status, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, m.ID, m.Name, m.Email, m.Body, m.Status, m.Error, m.CreatedAt.UTC().Format(timeFormat))
	if err != nil {
		return Message{}, fmt.Errorf("saving message: %w", err)
	}
	return m, nil
}

// RecentMessages returns up to limit messages, newest first.
func (s *Store) RecentMessages(ctx context.Context, limit int) ([]Message, error) {
	rows, err := s.QueryContext(ctx, `
		SELECT id, name, email, body, status, error, created_at
		FROM messages
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	defer rows.Close()

	var msgs []Message
	for rows.Next() {
		var m Message
		var ts string
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Body, &m.Status, &m.Error, &ts); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		m.CreatedAt = parseTime(ts)
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
