package storybook

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gofrs/uuid"

	"github.com/networkteam/uikit/actions"
)

var ErrMaxSessions = errors.New("maximum number of sessions reached")

// minCleanupInterval bounds the idle check frequency for very short idle timeouts.
const minCleanupInterval = 10 * time.Millisecond

// sessionState tracks the action log of a browser session
type sessionState struct {
	log        *actions.Log
	lastActive time.Time
}

// SessionManager keeps one action log per storybook session.
// Sessions without activity for the idle timeout are removed.
type SessionManager struct {
	sessions   map[uuid.UUID]*sessionState
	sessionsMu sync.RWMutex

	actionCapacity  uint64
	idleTimeout     time.Duration
	cleanupInterval time.Duration
	maxSessions     int
	logger          *slog.Logger

	cleanupCtx       context.Context
	cleanupCtxCancel context.CancelFunc
}

// SessionManagerOptions configures a SessionManager
type SessionManagerOptions struct {
	ActionCapacity uint64
	IdleTimeout    time.Duration
	// MaxSessions limits concurrent sessions, 0 means unlimited.
	MaxSessions int
	Logger      *slog.Logger
}

// NewSessionManager creates a new SessionManager and starts the cleanup goroutine
func NewSessionManager(opts SessionManagerOptions) *SessionManager {
	actionCapacity := opts.ActionCapacity
	if actionCapacity == 0 {
		actionCapacity = DefaultActionCapacity
	}

	idleTimeout := opts.IdleTimeout
	if idleTimeout <= 0 {
		idleTimeout = DefaultSessionIdleTimeout
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cleanupCtx, cleanupCtxCancel := context.WithCancel(context.Background())

	sm := &SessionManager{
		sessions:         make(map[uuid.UUID]*sessionState),
		actionCapacity:   actionCapacity,
		idleTimeout:      idleTimeout,
		cleanupInterval:  max(idleTimeout/2, minCleanupInterval),
		maxSessions:      opts.MaxSessions,
		logger:           logger,
		cleanupCtx:       cleanupCtx,
		cleanupCtxCancel: cleanupCtxCancel,
	}

	go sm.cleanupLoop()

	return sm
}

// Get returns the action log for a session, or nil if not found
func (sm *SessionManager) Get(sessionID uuid.UUID) *actions.Log {
	sm.sessionsMu.RLock()
	defer sm.sessionsMu.RUnlock()

	state, exists := sm.sessions[sessionID]
	if !exists {
		return nil
	}
	return state.log
}

// GetOrCreate returns the action log for a session, creating it if it doesn't exist.
// Returns the log and whether it was newly created.
func (sm *SessionManager) GetOrCreate(sessionID uuid.UUID) (*actions.Log, bool, error) {
	sm.sessionsMu.Lock()
	defer sm.sessionsMu.Unlock()

	if state, exists := sm.sessions[sessionID]; exists {
		state.lastActive = time.Now()
		return state.log, false, nil
	}

	if sm.maxSessions > 0 && len(sm.sessions) >= sm.maxSessions {
		return nil, false, ErrMaxSessions
	}

	log := actions.NewLog(sessionID, sm.actionCapacity)
	sm.sessions[sessionID] = &sessionState{
		log:        log,
		lastActive: time.Now(),
	}

	sm.logger.Debug("Created storybook session", slog.String("sessionID", sessionID.String()))

	return log, true, nil
}

// Delete removes a session and closes its log
func (sm *SessionManager) Delete(sessionID uuid.UUID) {
	sm.sessionsMu.Lock()
	defer sm.sessionsMu.Unlock()

	if state, exists := sm.sessions[sessionID]; exists {
		state.log.Close()
		delete(sm.sessions, sessionID)
	}
}

// UpdateActivity updates the last active time for a session
func (sm *SessionManager) UpdateActivity(sessionID uuid.UUID) {
	sm.sessionsMu.Lock()
	if state, exists := sm.sessions[sessionID]; exists {
		state.lastActive = time.Now()
	}
	sm.sessionsMu.Unlock()
}

// Len returns the number of active sessions
func (sm *SessionManager) Len() int {
	sm.sessionsMu.RLock()
	defer sm.sessionsMu.RUnlock()
	return len(sm.sessions)
}

// IdleTimeout returns the configured idle timeout duration
func (sm *SessionManager) IdleTimeout() time.Duration {
	return sm.idleTimeout
}

// Close stops the cleanup goroutine and closes all sessions
func (sm *SessionManager) Close() {
	sm.cleanupCtxCancel()

	sm.sessionsMu.Lock()
	defer sm.sessionsMu.Unlock()

	for sessionID, state := range sm.sessions {
		state.log.Close()
		delete(sm.sessions, sessionID)
	}
}

// cleanupLoop periodically checks for idle sessions and cleans them up
func (sm *SessionManager) cleanupLoop() {
	ticker := time.NewTicker(sm.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-sm.cleanupCtx.Done():
			return
		case <-ticker.C:
			sm.cleanupIdleSessions()
		}
	}
}

func (sm *SessionManager) cleanupIdleSessions() {
	now := time.Now()

	sm.sessionsMu.Lock()
	defer sm.sessionsMu.Unlock()

	for sessionID, state := range sm.sessions {
		if idle := now.Sub(state.lastActive); idle > sm.idleTimeout {
			sm.logger.Debug("Cleaning up idle storybook session",
				slog.String("sessionID", sessionID.String()),
				slog.Duration("idle", idle),
			)
			state.log.Close()
			delete(sm.sessions, sessionID)
		}
	}
}
