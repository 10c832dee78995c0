package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Theme returns the stored theme for a visitor, or "" when none is stored.
func (s *Store) Theme(ctx context.Context, visitorID string) (string, error) {
	var theme string
	err := s.QueryRowContext(ctx, `SELECT theme FROM preferences WHERE visitor_id = ?`, visitorID).Scan(&theme)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("loading theme for %s: %w", visitorID, err)
	}
	return theme, nil
}

// SetTheme stores a visitor's theme, replacing any previous value.
func (s *Store) SetTheme(ctx context.Context, visitorID, theme string) error {
	_, err := s.ExecContext(ctx, `
		INSERT INTO preferences (visitor_id, theme, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(visitor_id) DO UPDATE SET theme = excluded.theme, updated_at = excluded.updated_at
	`, visitorID, theme, s.timestamp())
	if err != nil {
		return fmt.Errorf("saving theme for %s: %w", visitorID, err)
	}
	return nil
}

// VisitorPrefs is one visitor's preference slot. It satisfies ui.ThemeStore.
type VisitorPrefs struct {
	store *Store
	id    string
}

// Prefs returns the preference slot for visitorID.
func (s *Store) Prefs(visitorID string) *VisitorPrefs {
	return &VisitorPrefs{store: s, id: visitorID}
}

func (p *VisitorPrefs) LoadTheme(ctx context.Context) (string, error) {
	return p.store.Theme(ctx, p.id)
}

func (p *VisitorPrefs) SaveTheme(ctx context.Context, theme string) error {
	return p.store.SetTheme(ctx, p.id, theme)
}
