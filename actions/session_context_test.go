package actions_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/networkteam/uikit/actions"
)

func TestWithSessionID_AddsToContext(t *testing.T) {
	ctx := context.Background()
	sessionID := uuid.Must(uuid.NewV4())

	newCtx := actions.WithSessionID(ctx, sessionID)

	retrievedID, ok := actions.SessionIDFromContext(newCtx)
	assert.True(t, ok)
	assert.Equal(t, sessionID, retrievedID)
}

func TestSessionIDFromContext_NotSet(t *testing.T) {
	ctx := context.Background()

	retrievedID, ok := actions.SessionIDFromContext(ctx)

	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, retrievedID)
}

func TestSessionIDFromContext_Set(t *testing.T) {
	sessionID := uuid.Must(uuid.NewV4())
	ctx := actions.WithSessionID(context.Background(), sessionID)

	retrievedID, ok := actions.SessionIDFromContext(ctx)

	assert.True(t, ok)
	assert.Equal(t, sessionID, retrievedID)
}
