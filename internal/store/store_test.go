package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func at(s *Store, ts time.Time) { s.now = func() time.Time { return ts } }

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "portfolio.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer s.Close()

	if s.Path() != path {
		t.Errorf("Path() = %q", s.Path())
	}
	for _, table := range []string{"preferences", "visitors", "messages"} {
		var n int
		if err := s.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestMigrateIdempotent(t *testing.T) {
	s := openTest(t)
	if err := s.migrate(); err != nil {
		t.Fatalf("second migrate() error: %v", err)
	}
}

func TestThemePreference(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	got, err := s.Theme(ctx, "v1")
	if err != nil || got != "" {
		t.Fatalf("empty slot: %q, %v", got, err)
	}

	prefs := s.Prefs("v1")
	if err := prefs.SaveTheme(ctx, "light"); err != nil {
		t.Fatalf("SaveTheme: %v", err)
	}
	if err := prefs.SaveTheme(ctx, "dark"); err != nil {
		t.Fatalf("SaveTheme overwrite: %v", err)
	}
	if got, _ := prefs.LoadTheme(ctx); got != "dark" {
		t.Errorf("LoadTheme = %q, want dark", got)
	}
	if got, _ := s.Prefs("v2").LoadTheme(ctx); got != "" {
		t.Errorf("other visitor sees %q", got)
	}
}

func TestHashIP(t *testing.T) {
	s := openTest(t)
	h := s.HashIP("203.0.113.7")
	if len(h) != 16 {
		t.Errorf("hash length %d", len(h))
	}
	if h != s.HashIP("203.0.113.7") {
		t.Error("hash not stable within a store")
	}
	if h == s.HashIP("203.0.113.8") {
		t.Error("different addresses collided")
	}
}

func TestVisitsAndCleanup(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	at(s, now.AddDate(-2, 0, 0))
	if err := s.RecordVisit(ctx, "198.51.100.1", "old-agent", "/"); err != nil {
		t.Fatal(err)
	}
	at(s, now.Add(-time.Hour))
	s.RecordVisit(ctx, "198.51.100.1", "agent", "/")
	at(s, now)
	s.RecordVisit(ctx, "198.51.100.2", "agent", "/projects/1")

	visits, err := s.RecentVisits(ctx, 10)
	if err != nil {
		t.Fatalf("RecentVisits: %v", err)
	}
	if len(visits) != 3 || visits[0].Path != "/projects/1" {
		t.Fatalf("visits = %+v", visits)
	}
	if !visits[0].Timestamp.Equal(now) {
		t.Errorf("timestamp = %v, want %v", visits[0].Timestamp, now)
	}
	if visits[0].HashedIP == "198.51.100.2" {
		t.Error("raw address stored")
	}

	n, err := s.Cleanup(ctx)
	if err != nil || n != 1 {
		t.Fatalf("Cleanup = %d, %v; want 1", n, err)
	}
}

func TestMessages(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()
	at(s, time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))

	m, err := s.SaveMessage(ctx, Message{Name: "Ada", Email: "ada@example.com", Body: "Hi", Status: StatusSent})
	if err != nil {
		t.Fatalf("SaveMessage: %v", err)
	}
	if m.ID == "" || m.CreatedAt.IsZero() {
		t.Errorf("ID/CreatedAt not assigned: %+v", m)
	}

	if _, err := s.SaveMessage(ctx, Message{Name: "X", Email: "x@example.com", Body: "?", Status: "lost"}); err == nil {
		t.Error("unknown status should violate the check constraint")
	}

	msgs, err := s.RecentMessages(ctx, 5)
	if err != nil {
		t.Fatalf("RecentMessages: %v", err)
	}
	if len(msgs) != 1 || msgs[0].ID != m.ID || msgs[0].Body != "Hi" {
		t.Errorf("messages = %+v", msgs)
	}
}

func TestStats(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	at(s, now.AddDate(0, 0, -3))
	s.RecordVisit(ctx, "a", "ua", "/")
	at(s, now.AddDate(0, 0, -30))
	s.RecordVisit(ctx, "b", "ua", "/")
	at(s, now)
	s.RecordVisit(ctx, "a", "ua", "/")
	s.SaveMessage(ctx, Message{Name: "n", Email: "e@example.com", Body: "b", Status: StatusSent})
	s.SaveMessage(ctx, Message{Name: "n", Email: "e@example.com", Body: "b", Status: StatusFailed, Error: "relay down"})

	st, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st.TotalVisitors != 3 || st.UniqueVisitors != 2 {
		t.Errorf("totals: %+v", st)
	}
	if st.VisitorsToday != 1 || st.VisitorsThisWeek != 2 {
		t.Errorf("today=%d week=%d", st.VisitorsToday, st.VisitorsThisWeek)
	}
	if st.TotalMessages != 2 || st.FailedMessages != 1 {
		t.Errorf("messages: total=%d failed=%d", st.TotalMessages, st.FailedMessages)
	}
	if len(st.RecentVisitors) != 3 || len(st.RecentMessages) != 2 {
		t.Errorf("recent lists: %d visits, %d messages", len(st.RecentVisitors), len(st.RecentMessages))
	}
}
