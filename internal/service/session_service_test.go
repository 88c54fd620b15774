package service

import (
	"errors"
	"testing"
	"time"

	"github.com/lumengallery/internal/db"
)

func TestSessionCreateGetDestroy(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	sessions := NewSessionService(gdb)

	session, err := sessions.Create(7)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	if session.Token == "" {
		t.Fatalf("expected a token")
	}
	if remaining := time.Until(session.ExpiresAt); remaining < 23*time.Hour {
		t.Fatalf("expected roughly 24h expiry, got %v", remaining)
	}

	resolved, err := sessions.Get(session.Token)
	if err != nil {
		t.Fatalf("failed to resolve session: %v", err)
	}
	if resolved.UserID != 7 {
		t.Fatalf("expected user id 7, got %d", resolved.UserID)
	}

	if err := sessions.Destroy(session.Token); err != nil {
		t.Fatalf("failed to destroy session: %v", err)
	}
	if _, err := sessions.Get(session.Token); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected session gone, got %v", err)
	}

	if _, err := sessions.Get(""); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected empty token to be not found, got %v", err)
	}
}

func TestSessionPurgeExpired(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	sessions := NewSessionService(gdb)

	live, err := sessions.Create(1)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	stale := db.Session{Token: "stale", UserID: 2, ExpiresAt: time.Now().Add(-time.Hour)}
	if err := gdb.Create(&stale).Error; err != nil {
		t.Fatalf("failed to create stale session: %v", err)
	}

	purged, err := sessions.PurgeExpired()
	if err != nil {
		t.Fatalf("purge failed: %v", err)
	}
	if purged != 1 {
		t.Fatalf("expected 1 purged session, got %d", purged)
	}
	if _, err := sessions.Get(live.Token); err != nil {
		t.Fatalf("expected live session to survive purge: %v", err)
	}
}
