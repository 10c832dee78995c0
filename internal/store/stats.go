package store

import (
	"context"
	"fmt"
	"time"
)

// Stats backs the admin dashboard.
type Stats struct {
	TotalVisitors    int64     `json:"total_visitors"`
	UniqueVisitors   int64     `json:"unique_visitors"`
	VisitorsToday    int64     `json:"visitors_today"`
	VisitorsThisWeek int64     `json:"visitors_this_week"`
	TotalMessages    int64     `json:"total_messages"`
	FailedMessages   int64     `json:"failed_messages"`
	RecentVisitors   []Visit   `json:"recent_visitors"`
	RecentMessages   []Message `json:"recent_messages"`
}

// Stats gathers dashboard numbers.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	now := s.now().UTC()
	today := now.Truncate(24 * time.Hour).Format(timeFormat)
	weekAgo := now.Add(-7 * 24 * time.Hour).Format(timeFormat)

	stats := &Stats{}
	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{today}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{weekAgo}},
		{&stats.TotalMessages, `SELECT COUNT(*) FROM messages`, nil},
		{&stats.FailedMessages, `SELECT COUNT(*) FROM messages WHERE status = ?`, []any{StatusFailed}},
	}
	for _, c := range counts {
		if err := s.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("stats query %q: %w", c.query, err)
		}
	}

	var err error
	if stats.RecentVisitors, err = s.RecentVisits(ctx, 50); err != nil {
		return nil, err
	}
	if stats.RecentMessages, err = s.RecentMessages(ctx, 20); err != nil {
		return nil, err
	}
	return stats, nil
}
