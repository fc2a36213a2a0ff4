package actions

import (
	"context"
	"sync"
)

// Notifier fans out items to subscribers without blocking the publisher
type Notifier[T any] struct {
	mu sync.RWMutex
	// subscribers maps the read side handed out to callers to the writable channel
	subscribers map[<-chan T]chan T
	bufferSize  int
	notifyCh    chan T
	closeOnce   sync.Once
	closed      bool
}

// NotifierOptions configures a notifier
type NotifierOptions struct {
	// SubscriberBufferSize is the buffer size for each subscriber channel
	SubscriberBufferSize int

	// NotificationBufferSize is the buffer size for the internal notification channel
	NotificationBufferSize int
}

// DefaultNotifierOptions returns default options for a notifier
func DefaultNotifierOptions() NotifierOptions {
	return NotifierOptions{
		SubscriberBufferSize:   32,
		NotificationBufferSize: 256,
	}
}

// NewNotifier creates a new notifier with default options
func NewNotifier[T any]() *Notifier[T] {
	return NewNotifierWithOptions[T](DefaultNotifierOptions())
}

// NewNotifierWithOptions creates a new notifier with specified options
func NewNotifierWithOptions[T any](options NotifierOptions) *Notifier[T] {
	n := &Notifier[T]{
		subscribers: make(map[<-chan T]chan T),
		bufferSize:  options.SubscriberBufferSize,
		notifyCh:    make(chan T, options.NotificationBufferSize),
	}

	go n.processNotifications()

	return n
}

// Subscribe returns a channel that receives notifications until ctx is done
func (n *Notifier[T]) Subscribe(ctx context.Context) <-chan T {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		ch := make(chan T)
		close(ch)
		return ch
	}
	ch := make(chan T, n.bufferSize)
	n.subscribers[ch] = ch
	n.mu.Unlock()

	go func() {
		<-ctx.Done()
		n.Unsubscribe(ch)
	}()

	return ch
}

// Unsubscribe removes a subscription and closes its channel
func (n *Notifier[T]) Unsubscribe(ch <-chan T) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if realCh, exists := n.subscribers[ch]; exists {
		delete(n.subscribers, ch)
		close(realCh)
	}
}

// Notify queues item for all subscribers.
// If the internal channel is full, the notification is dropped.
func (n *Notifier[T]) Notify(item T) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.closed {
		return
	}

	select {
	case n.notifyCh <- item:
	default:
	}
}

// Close closes the notifier and all subscriber channels
func (n *Notifier[T]) Close() {
	n.closeOnce.Do(func() {
		n.mu.Lock()
		n.closed = true

		for _, ch := range n.subscribers {
			close(ch)
		}
		n.subscribers = nil

		close(n.notifyCh)

		n.mu.Unlock()
	})
}

func (n *Notifier[T]) processNotifications() {
	for item := range n.notifyCh {
		n.mu.RLock()
		// Sending happens under the read lock so Unsubscribe cannot close a channel mid-send
		for _, ch := range n.subscribers {
			select {
			case ch <- item:
			default:
				// Slow subscriber, drop
			}
		}
		n.mu.RUnlock()
	}
}
