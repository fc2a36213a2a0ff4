package actions

import (
	"context"
	"slices"

	"github.com/gofrs/uuid"
)

// DefaultCapacity is the number of actions kept per log if no capacity is given.
const DefaultCapacity = 100

// Log keeps the most recent actions of one storybook session and notifies subscribers about new ones.
type Log struct {
	sessionID uuid.UUID
	buffer    *LookupRingBuffer[Action, uuid.UUID]
	notifier  *Notifier[Action]
}

func NewLog(sessionID uuid.UUID, capacity uint64) *Log {
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	return &Log{
		sessionID: sessionID,
		buffer:    NewLookupRingBuffer[Action, uuid.UUID](capacity),
		notifier:  NewNotifier[Action](),
	}
}

func (l *Log) SessionID() uuid.UUID {
	return l.sessionID
}

// Record stores the action and publishes it to subscribers.
func (l *Log) Record(action Action) {
	l.buffer.Add(action)
	l.notifier.Notify(action)
}

// Recent returns up to n actions, newest first.
func (l *Log) Recent(n uint64) []Action {
	records := l.buffer.GetRecords(n)
	slices.Reverse(records)
	return records
}

func (l *Log) Get(id uuid.UUID) (Action, bool) {
	return l.buffer.Lookup(id)
}

func (l *Log) Len() uint64 {
	return l.buffer.Size()
}

// Subscribe returns a channel of newly recorded actions that is closed when ctx is done or the log is closed.
func (l *Log) Subscribe(ctx context.Context) <-chan Action {
	return l.notifier.Subscribe(ctx)
}

func (l *Log) Close() {
	l.notifier.Close()
}
