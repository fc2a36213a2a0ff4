package actions_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/uikit/actions"
)

func TestNotifier_Delivers(t *testing.T) {
	t.Parallel()

	notifier := actions.NewNotifier[string]()
	defer notifier.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	first := notifier.Subscribe(ctx)
	second := notifier.Subscribe(ctx)
	require.NotNil(t, first)
	require.NotNil(t, second)

	notifier.Notify("click")

	for _, ch := range []<-chan string{first, second} {
		select {
		case msg := <-ch:
			assert.Equal(t, "click", msg)
		case <-time.After(time.Second):
			t.Fatal("Timed out waiting for notification")
		}
	}
}

func TestNotifier_ContextCancellation(t *testing.T) {
	t.Parallel()

	notifier := actions.NewNotifier[string]()
	defer notifier.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := notifier.Subscribe(ctx)

	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel should be closed after cancel")
	case <-time.After(time.Second):
		t.Fatal("Channel was not closed after context cancellation")
	}
}

func TestNotifier_Close(t *testing.T) {
	t.Parallel()

	notifier := actions.NewNotifier[int]()

	ch := notifier.Subscribe(context.Background())
	notifier.Close()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("Channel was not closed after notifier closed")
	}

	newCh := notifier.Subscribe(context.Background())
	_, ok := <-newCh
	assert.False(t, ok, "subscription after close should return a closed channel")

	// Must not panic
	notifier.Notify(1)
	notifier.Close()
}

func TestNotifier_SlowSubscriberDoesNotBlock(t *testing.T) {
	t.Parallel()

	notifier := actions.NewNotifierWithOptions[int](actions.NotifierOptions{
		SubscriberBufferSize:   1,
		NotificationBufferSize: 1,
	})
	defer notifier.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_ = notifier.Subscribe(ctx)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			notifier.Notify(i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a slow subscriber")
	}
}
