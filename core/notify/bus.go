package notify

import (
	"io"
	"log/slog"
	"sync"
)

const (
	// DefaultBufferSize is the default buffer size for the in-memory bus.
	DefaultBufferSize = 64
)

// Bus is an in-memory, buffered notification channel between the SDK and a
// subscribed UI layer. Publishing never blocks and never runs subscriber code
// on the publisher's stack; when the buffer is full the notification is
// dropped, since notifications are advisory and the authoritative outcome is
// always carried by the returned request result.
//
// Bus is safe for concurrent publishers.
//
// Example:
//
//	bus := notify.NewBus(notify.WithBufferSize(128))
//	defer bus.Close()
//
//	go func() {
//	    for n := range bus.Notifications() {
//	        render(n)
//	    }
//	}()
type Bus struct {
	ch     chan Notification
	logger *slog.Logger
	mu     sync.RWMutex
	closed bool
}

// BusOption configures a Bus.
type BusOption func(*Bus)

// WithBufferSize sets the buffer size for the notification channel.
// Default is 64.
func WithBufferSize(size int) BusOption {
	return func(b *Bus) {
		if size > 0 {
			b.ch = make(chan Notification, size)
		}
	}
}

// WithLogger configures structured logging for the bus.
func WithLogger(logger *slog.Logger) BusOption {
	return func(b *Bus) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBus creates a new in-memory notification bus.
func NewBus(opts ...BusOption) *Bus {
	b := &Bus{
		ch:     make(chan Notification, DefaultBufferSize),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Publish places a notification on the bus without blocking.
// Returns ErrBusClosed after Close; a full buffer drops the notification.
func (b *Bus) Publish(n Notification) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBusClosed
	}

	select {
	case b.ch <- n:
		return nil
	default:
		b.logger.Debug("notification dropped, bus buffer full",
			slog.String("level", string(n.Level)),
			slog.String("message", n.Message))
		return nil
	}
}

// Error publishes an error-level notification with the given message.
func (b *Bus) Error(message string) error {
	return b.Publish(New(LevelError, message))
}

// Info publishes an info-level notification with the given message.
func (b *Bus) Info(message string) error {
	return b.Publish(New(LevelInfo, message))
}

// Success publishes a success-level notification with the given message.
func (b *Bus) Success(message string) error {
	return b.Publish(New(LevelSuccess, message))
}

// Notifications returns the read side of the bus for the UI layer to consume.
func (b *Bus) Notifications() <-chan Notification {
	return b.ch
}

// Close shuts down the bus by closing the underlying channel.
// After Close is called, Publish returns ErrBusClosed.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBusClosed
	}

	b.closed = true
	close(b.ch)
	return nil
}
