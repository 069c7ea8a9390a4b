package session

import "errors"

var (
	// ErrKeyNotFound is returned by Storage implementations for missing keys.
	ErrKeyNotFound = errors.New("key not found")
	// ErrIncompleteSession is returned when setting a session that is missing
	// the access token or the user identity.
	ErrIncompleteSession = errors.New("session must carry both access token and user")
	// ErrNotAuthenticated is returned by operations that require an active session.
	ErrNotAuthenticated = errors.New("no active session")
	// ErrSaveSession is returned when persisting the session record fails.
	ErrSaveSession = errors.New("failed to save session")
	// ErrClearSession is returned when removing persisted session keys fails.
	ErrClearSession = errors.New("failed to clear session")
	// ErrRestoreSession is returned when the storage backend fails during
	// rehydration. Corrupt records are not an error: they are purged silently.
	ErrRestoreSession = errors.New("failed to restore session")
)
