package session

import "context"

// Storage defines the durable key/value backend behind the session store,
// the equivalent of browser local storage for server-side and CLI processes.
// Implementations must handle concurrent access safely.
//
// Get returns ErrKeyNotFound for missing keys. Delete removes the given keys
// and treats missing keys as a no-op, never an error — logout must stay
// idempotent regardless of what was persisted.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
