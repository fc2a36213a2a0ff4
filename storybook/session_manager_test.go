package storybook

import (
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid"

	"github.com/networkteam/uikit/actions"
)

func TestSessionManager_Get_NonExistent(t *testing.T) {
	sm := NewSessionManager(SessionManagerOptions{
		ActionCapacity: 10,
		IdleTimeout:    time.Minute,
	})
	defer sm.Close()

	if log := sm.Get(uuid.Must(uuid.NewV4())); log != nil {
		t.Errorf("expected nil log for non-existent session, got %v", log)
	}
}

func TestSessionManager_GetOrCreate(t *testing.T) {
	sm := NewSessionManager(SessionManagerOptions{
		ActionCapacity: 10,
		IdleTimeout:    time.Minute,
	})
	defer sm.Close()

	sessionID := uuid.Must(uuid.NewV4())

	log1, created1, err := sm.GetOrCreate(sessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created1 {
		t.Error("expected created to be true for first call")
	}
	if log1.SessionID() != sessionID {
		t.Errorf("expected session ID %s, got %s", sessionID, log1.SessionID())
	}

	log2, created2, err := sm.GetOrCreate(sessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created2 {
		t.Error("expected created to be false for second call")
	}
	if log1 != log2 {
		t.Error("expected same log instance")
	}
	if sm.Get(sessionID) != log1 {
		t.Error("expected Get to return the created log")
	}
}

func TestSessionManager_MaxSessions(t *testing.T) {
	sm := NewSessionManager(SessionManagerOptions{
		IdleTimeout: time.Minute,
		MaxSessions: 1,
	})
	defer sm.Close()

	first := uuid.Must(uuid.NewV4())
	if _, _, err := sm.GetOrCreate(first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, _, err := sm.GetOrCreate(uuid.Must(uuid.NewV4()))
	if !errors.Is(err, ErrMaxSessions) {
		t.Errorf("expected ErrMaxSessions, got %v", err)
	}

	// Existing sessions are still served
	if _, created, err := sm.GetOrCreate(first); err != nil || created {
		t.Errorf("expected existing session, got created=%v err=%v", created, err)
	}
}

func TestSessionManager_Delete(t *testing.T) {
	sm := NewSessionManager(SessionManagerOptions{
		IdleTimeout: time.Minute,
	})
	defer sm.Close()

	sessionID := uuid.Must(uuid.NewV4())
	log, _, _ := sm.GetOrCreate(sessionID)
	collected := actions.CollectActions(t, log)

	sm.Delete(sessionID)

	if sm.Get(sessionID) != nil {
		t.Error("expected nil log after delete")
	}

	collected.WaitClosed()

	// Should not panic
	sm.Delete(uuid.Must(uuid.NewV4()))
}

func TestSessionManager_UpdateActivity(t *testing.T) {
	sm := NewSessionManager(SessionManagerOptions{
		IdleTimeout: time.Minute,
	})
	defer sm.Close()

	sessionID := uuid.Must(uuid.NewV4())
	_, _, _ = sm.GetOrCreate(sessionID)

	sm.sessionsMu.RLock()
	timeBefore := sm.sessions[sessionID].lastActive
	sm.sessionsMu.RUnlock()

	time.Sleep(10 * time.Millisecond)

	sm.UpdateActivity(sessionID)

	sm.sessionsMu.RLock()
	timeAfter := sm.sessions[sessionID].lastActive
	sm.sessionsMu.RUnlock()

	if !timeAfter.After(timeBefore) {
		t.Error("expected lastActive to be updated")
	}

	// Should not panic
	sm.UpdateActivity(uuid.Must(uuid.NewV4()))
}

func TestSessionManager_IdleCleanup(t *testing.T) {
	sm := NewSessionManager(SessionManagerOptions{
		IdleTimeout: 50 * time.Millisecond,
	})
	defer sm.Close()

	sessionID := uuid.Must(uuid.NewV4())
	log, _, _ := sm.GetOrCreate(sessionID)
	log.Record(actions.NewAction(sessionID, "components-button--default", "click", nil))

	if sm.Get(sessionID) == nil {
		t.Fatal("expected session to exist")
	}

	// Wait for idle timeout + cleanup interval
	time.Sleep(150 * time.Millisecond)

	if sm.Get(sessionID) != nil {
		t.Error("expected session to be cleaned up after idle timeout")
	}
	if sm.Len() != 0 {
		t.Errorf("expected no sessions, got %d", sm.Len())
	}
}

func TestSessionManager_Close(t *testing.T) {
	sm := NewSessionManager(SessionManagerOptions{
		IdleTimeout: time.Minute,
	})

	sessionID1 := uuid.Must(uuid.NewV4())
	sessionID2 := uuid.Must(uuid.NewV4())
	_, _, _ = sm.GetOrCreate(sessionID1)
	_, _, _ = sm.GetOrCreate(sessionID2)

	sm.Close()

	if sm.Get(sessionID1) != nil || sm.Get(sessionID2) != nil {
		t.Error("expected all sessions to be cleaned up")
	}
}

func TestSessionManager_DefaultValues(t *testing.T) {
	sm := NewSessionManager(SessionManagerOptions{})
	defer sm.Close()

	if sm.actionCapacity != DefaultActionCapacity {
		t.Errorf("expected default action capacity %d, got %d", DefaultActionCapacity, sm.actionCapacity)
	}
	if sm.IdleTimeout() != DefaultSessionIdleTimeout {
		t.Errorf("expected default idle timeout %v, got %v", DefaultSessionIdleTimeout, sm.IdleTimeout())
	}
}

func TestSessionManager_ShortIdleTimeout(t *testing.T) {
	sm := NewSessionManager(SessionManagerOptions{
		IdleTimeout: time.Nanosecond,
	})
	defer sm.Close()

	if sm.IdleTimeout() != time.Nanosecond {
		t.Errorf("expected idle timeout of 1ns, got %v", sm.IdleTimeout())
	}
	if sm.cleanupInterval != minCleanupInterval {
		t.Errorf("expected cleanup interval %v, got %v", minCleanupInterval, sm.cleanupInterval)
	}

	sessionID := uuid.Must(uuid.NewV4())
	_, _, _ = sm.GetOrCreate(sessionID)

	time.Sleep(5 * minCleanupInterval)

	if sm.Get(sessionID) != nil {
		t.Error("expected session to be cleaned up")
	}
}

func TestSessionManager_NonPositiveIdleTimeout(t *testing.T) {
	for _, timeout := range []time.Duration{0, -time.Second} {
		sm := NewSessionManager(SessionManagerOptions{
			IdleTimeout: timeout,
		})
		if sm.IdleTimeout() != DefaultSessionIdleTimeout {
			t.Errorf("expected default idle timeout for %v, got %v", timeout, sm.IdleTimeout())
		}
		sm.Close()
	}
}
