package actions

import (
	"context"

	"github.com/gofrs/uuid"
)

type sessionIDKeyType struct{}

var sessionIDKey = sessionIDKeyType{}

// WithSessionID returns a new context carrying the storybook session ID.
func WithSessionID(ctx context.Context, sessionID uuid.UUID) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// SessionIDFromContext returns the session ID and true if set.
func SessionIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	if sessionID, ok := ctx.Value(sessionIDKey).(uuid.UUID); ok {
		return sessionID, true
	}
	return uuid.Nil, false
}
