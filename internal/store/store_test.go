package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGetDelete(t *testing.T) {
	s := openTestStore(t)

	if _, ok, err := s.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v, want absent", ok, err)
	}

	if err := s.Put("k", "v1"); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, ok, err := s.Get("k")
	if err != nil || !ok || got != "v1" {
		t.Fatalf("Get(k) = %q ok=%v err=%v, want v1", got, ok, err)
	}

	// Last write wins.
	if err := s.Put("k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _, _ = s.Get("k")
	if got != "v2" {
		t.Errorf("Get after overwrite = %q, want v2", got)
	}

	if err := s.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.Get("k"); ok {
		t.Error("key still present after delete")
	}

	// Deleting an absent key is a no-op.
	if err := s.Delete("k"); err != nil {
		t.Errorf("delete absent key: %v", err)
	}
}

func TestCredentialHelpers(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveToken("tok-123"); err != nil {
		t.Fatalf("save token: %v", err)
	}
	if err := s.SaveClassroomID("42"); err != nil {
		t.Fatalf("save classroom id: %v", err)
	}

	tok, ok, err := s.Token()
	if err != nil || !ok || tok != "tok-123" {
		t.Fatalf("Token() = %q ok=%v err=%v", tok, ok, err)
	}
	id, ok, err := s.ClassroomID()
	if err != nil || !ok || id != "42" {
		t.Fatalf("ClassroomID() = %q ok=%v err=%v", id, ok, err)
	}
}

func TestClearCredentials(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveToken("tok"); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveClassroomID("7"); err != nil {
		t.Fatal(err)
	}

	if err := s.ClearCredentials(); err != nil {
		t.Fatalf("clear: %v", err)
	}

	if _, ok, _ := s.Token(); ok {
		t.Error("token still present after clear")
	}
	if _, ok, _ := s.ClassroomID(); ok {
		t.Error("classroom id still present after clear")
	}

	// Clearing an empty store is fine.
	if err := s.ClearCredentials(); err != nil {
		t.Errorf("clear with nothing stored: %v", err)
	}
}

func TestAPIEventLog(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	events, err := s.RecentAPIEvents(ctx, 10)
	if err != nil {
		t.Fatalf("recent on empty log: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected empty log, got %d events", len(events))
	}

	err = s.AppendAPIEvent(ctx, APIEvent{
		Method: "POST", Path: "/users/login", Status: 200, LatencyMs: 35, Success: true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	err = s.AppendAPIEvent(ctx, APIEvent{
		Method: "GET", Path: "/users/me", Status: 401, LatencyMs: 12,
		Success: false, Error: "invalid token",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err = s.RecentAPIEvents(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	for _, ev := range events {
		if ev.ID == "" {
			t.Error("event missing generated id")
		}
	}

	failed := events[0]
	if failed.Path == "/users/login" {
		failed = events[1]
	}
	if failed.Success || failed.Error != "invalid token" || failed.Status != 401 {
		t.Errorf("failed event not recorded faithfully: %+v", failed)
	}
}

func TestPruneAPIEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for range 5 {
		if err := s.AppendAPIEvent(ctx, APIEvent{Method: "GET", Path: "/classrooms/1/details", Status: 200, Success: true}); err != nil {
			t.Fatal(err)
		}
	}

	if err := s.PruneAPIEvents(ctx, 2); err != nil {
		t.Fatalf("prune: %v", err)
	}
	events, err := s.RecentAPIEvents(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 {
		t.Errorf("got %d events after prune, want 2", len(events))
	}
}
