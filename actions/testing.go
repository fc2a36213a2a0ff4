package actions

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// ActionCollector records the actions a Log publishes to a subscriber.
// This is a test helper that should only be used in tests.
type ActionCollector struct {
	t       testing.TB
	cancel  context.CancelFunc
	timeout time.Duration

	mu      sync.Mutex
	actions []Action
	closed  bool
}

// CollectActions subscribes to log until Stop is called or the test ends.
func CollectActions(t testing.TB, log *Log) *ActionCollector {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	c := &ActionCollector{
		t:       t,
		cancel:  cancel,
		timeout: time.Second,
	}

	ch := log.Subscribe(ctx)
	go func() {
		for action := range ch {
			c.mu.Lock()
			c.actions = append(c.actions, action)
			c.mu.Unlock()
		}
		c.mu.Lock()
		c.closed = true
		c.mu.Unlock()
	}()

	return c
}

// Wait blocks until n actions were received and returns them in publish order.
// Fails the test on timeout.
func (c *ActionCollector) Wait(n int) []Action {
	c.t.Helper()
	require.Eventuallyf(c.t, func() bool {
		return len(c.snapshot()) >= n
	}, c.timeout, time.Millisecond, "timeout waiting for %d actions", n)
	return c.snapshot()
}

// WaitForStory blocks until an action of storyID was received and returns the first one.
func (c *ActionCollector) WaitForStory(storyID string) Action {
	c.t.Helper()
	var found Action
	require.Eventuallyf(c.t, func() bool {
		i := slices.IndexFunc(c.snapshot(), func(a Action) bool { return a.StoryID == storyID })
		if i < 0 {
			return false
		}
		found = c.snapshot()[i]
		return true
	}, c.timeout, time.Millisecond, "no action for story %q", storyID)
	return found
}

// WaitClosed blocks until the log ended the subscription, e.g. because the session was deleted.
func (c *ActionCollector) WaitClosed() {
	c.t.Helper()
	require.Eventually(c.t, func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		return c.closed
	}, c.timeout, time.Millisecond, "subscription was not closed")
}

// Stop cancels the subscription and returns the actions received so far.
func (c *ActionCollector) Stop() []Action {
	c.cancel()
	return c.snapshot()
}

func (c *ActionCollector) snapshot() []Action {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.actions)
}
