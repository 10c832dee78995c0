package ui

import (
	"context"
	"sync"
)

// Theme is the page color scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// DefaultTheme applies when nothing valid has been stored.
const DefaultTheme = Dark

// ParseTheme maps a stored value to a Theme. Anything that is not exactly
// "light" or "dark" yields fallback.
func ParseTheme(s string, fallback Theme) Theme {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s)
	}
	return fallback
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// BodyClass is the class the page root carries for this theme.
func (t Theme) BodyClass() string {
	return string(t) + "-mode"
}

// ThemeStore persists the single theme preference slot.
type ThemeStore interface {
	LoadTheme(ctx context.Context) (string, error)
	SaveTheme(ctx context.Context, theme string) error
}

// MemoryThemeStore keeps the preference in memory.
type MemoryThemeStore struct {
	mu    sync.Mutex
	value string
}

func (m *MemoryThemeStore) LoadTheme(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, nil
}

func (m *MemoryThemeStore) SaveTheme(_ context.Context, theme string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = theme
	return nil
}
