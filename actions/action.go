package actions

import (
	"time"

	"github.com/gofrs/uuid"
)

// Action is an activation event that passed the button interaction gate.
type Action struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	// StoryID identifies the story whose button was activated.
	StoryID string
	// Name is the handler name shown in the actions panel, e.g. "click".
	Name string
	// Args are the story args the button was presented with.
	Args map[string]string
	Time time.Time
}

func (a Action) Identity() uuid.UUID {
	return a.ID
}

// NewAction creates an action with a fresh ID stamped with the current time.
func NewAction(sessionID uuid.UUID, storyID, name string, args map[string]string) Action {
	return Action{
		ID:        uuid.Must(uuid.NewV4()),
		SessionID: sessionID,
		StoryID:   storyID,
		Name:      name,
		Args:      args,
		Time:      time.Now(),
	}
}
