package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// APIEvent records one request made against the remote API.
type APIEvent struct {
	ID        string
	Method    string
	Path      string
	Status    int // 0 when the request never produced a response
	LatencyMs int64
	Success   bool
	Error     string
	CreatedAt time.Time
}

// AppendAPIEvent appends a request event to the log. The id is
// generated here; callers only describe what happened.
func (s *Store) AppendAPIEvent(ctx context.Context, ev APIEvent) error {
	success := 0
	if ev.Success {
		success = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO api_events (id, method, path, status, latency_ms, success, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), ev.Method, ev.Path, ev.Status, ev.LatencyMs, success, ev.Error,
	)
	return err
}

// RecentAPIEvents returns up to limit events, newest first.
func (s *Store) RecentAPIEvents(ctx context.Context, limit int) ([]APIEvent, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, method, path, status, latency_ms, success, error, created_at
		 FROM api_events ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []APIEvent
	for rows.Next() {
		var ev APIEvent
		var success int
		if err := rows.Scan(&ev.ID, &ev.Method, &ev.Path, &ev.Status, &ev.LatencyMs, &success, &ev.Error, &ev.CreatedAt); err != nil {
			return nil, err
		}
		ev.Success = success == 1
		events = append(events, ev)
	}
	return events, rows.Err()
}

// PruneAPIEvents deletes all but the keep most recent events.
func (s *Store) PruneAPIEvents(ctx context.Context, keep int) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM api_events WHERE id NOT IN (
			SELECT id FROM api_events ORDER BY created_at DESC, id DESC LIMIT ?
		)`, keep)
	return err
}
