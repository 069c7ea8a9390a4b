package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/adminforge/adminsdk/core/logger"
)

// Duration is the fixed session lifetime. It is a product constant, not a
// tunable: every sign-in and every profile update grants a full 24 hours.
const Duration = 24 * time.Hour

// Persisted storage layout. All three keys are written by this store only and
// are always removed together on logout.
const (
	authDataKey       = "auth_data"
	loginTimestampKey = "login_timestamp"
	avatarKey         = "image_data"
)

// Store is the single writable owner of the current session. It enforces the
// fully-present-or-absent invariant, persists the session record across
// restarts, and schedules the expiry-driven logout. Construct one Store per
// process and inject it wherever session state is read: the API client
// consumes it as its TokenSource, the UI layer reads Session().
//
// All reads are snapshot reads; all writes go through the transition methods.
type Store struct {
	mu      sync.Mutex
	storage Storage
	logger  *slog.Logger

	current *Session
	timer   *time.Timer

	// timerGen invalidates expiry callbacks from replaced timers: a stopped
	// timer may already have fired and be waiting on the mutex, and it must
	// not log out the session that replaced it.
	timerGen uint64

	// ttl equals Duration outside of tests.
	ttl time.Duration
	now func() time.Time
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger configures structured logging for the store.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a session store over the given persistence backend.
// The store starts unauthenticated; call Restore once at process start to
// rehydrate a previously persisted session.
func New(storage Storage, opts ...StoreOption) *Store {
	s := &Store{
		storage: storage,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		ttl:     Duration,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Session returns a copy of the current session, or nil when unauthenticated.
func (s *Store) Session() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.clone()
}

// Token returns the current bearer token, or the empty string when no session
// is active. It satisfies the API client's TokenSource interface.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ""
	}
	return s.current.AccessToken
}

// IsAuthenticated reports whether a session is currently active.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// SetAuth installs sess as the current session: the record and the sign-in
// timestamp are persisted and the expiry timer restarts at the full session
// duration. A nil sess is equivalent to Logout.
func (s *Store) SetAuth(ctx context.Context, sess *Session) error {
	if sess == nil {
		return s.Logout(ctx)
	}
	if !sess.isComplete() {
		return ErrIncompleteSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setAuthLocked(ctx, sess.clone())
}

// PatchUser merges partial profile fields into the current session and
// re-persists it. The expiry clock resets to a full session duration on every
// patch: an actively editing user stays signed in. This is intentional, not
// an oversight.
func (s *Store) PatchUser(ctx context.Context, patch UserPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrNotAuthenticated
	}

	merged := s.current.clone()
	patch.apply(&merged.User)
	return s.setAuthLocked(ctx, merged)
}

// SetAvatar persists the avatar blob under its dedicated key and mirrors it
// into the in-memory profile. Unlike PatchUser it does not reset the expiry
// clock. An empty blob removes the stored avatar.
func (s *Store) SetAvatar(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrNotAuthenticated
	}

	if len(data) == 0 {
		if err := s.storage.Delete(ctx, avatarKey); err != nil {
			return errors.Join(ErrSaveSession, err)
		}
		s.current.User.Avatar = nil
		return nil
	}

	if err := s.storage.Set(ctx, avatarKey, data); err != nil {
		return errors.Join(ErrSaveSession, err)
	}
	s.current.User.Avatar = bytes.Clone(data)
	return nil
}

// Logout clears the in-memory session, cancels any pending expiry timer, and
// removes all persisted keys. Safe to call from any state; calling it twice
// is the same as calling it once.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logoutLocked(ctx)
}

// Restore rehydrates a persisted session at process start. An unexpired
// record transitions the store to authenticated with the remaining lifetime
// on the timer; an expired, missing, or corrupt record leaves the store
// unauthenticated. Parse failures purge the offending keys and are never
// surfaced as errors; only storage backend failures are.
func (s *Store) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.storage.Get(ctx, authDataKey)
	if errors.Is(err, ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return errors.Join(ErrRestoreSession, err)
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil || !sess.isComplete() {
		s.logger.Warn("purging corrupt session record",
			logger.Component("session"), logger.Error(err))
		return s.logoutLocked(ctx)
	}

	loginAt, ok := s.readLoginTimestamp(ctx)
	if !ok {
		s.logger.Warn("purging session with unreadable sign-in timestamp",
			logger.Component("session"))
		return s.logoutLocked(ctx)
	}

	remaining := s.ttl - s.now().Sub(loginAt)
	if remaining <= 0 {
		s.logger.Info("persisted session expired",
			logger.Component("session"), logger.Event("session_expired"))
		return s.logoutLocked(ctx)
	}

	if avatar, err := s.storage.Get(ctx, avatarKey); err == nil && len(avatar) > 0 {
		sess.User.Avatar = avatar
	}

	s.current = &sess
	s.armTimerLocked(remaining)
	s.logger.Info("session restored",
		logger.Component("session"), logger.Duration(remaining))
	return nil
}

// setAuthLocked persists and installs sess. Caller holds the mutex and has
// already cloned sess, so the store owns it outright.
func (s *Store) setAuthLocked(ctx context.Context, sess *Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return errors.Join(ErrSaveSession, err)
	}
	if err := s.storage.Set(ctx, authDataKey, raw); err != nil {
		return errors.Join(ErrSaveSession, err)
	}

	ts := strconv.FormatInt(s.now().UnixMilli(), 10)
	if err := s.storage.Set(ctx, loginTimestampKey, []byte(ts)); err != nil {
		return errors.Join(ErrSaveSession, err)
	}

	s.current = sess
	s.armTimerLocked(s.ttl)
	return nil
}

func (s *Store) logoutLocked(ctx context.Context) error {
	s.stopTimerLocked()
	s.current = nil

	if err := s.storage.Delete(ctx, authDataKey, loginTimestampKey, avatarKey); err != nil {
		return errors.Join(ErrClearSession, err)
	}
	return nil
}

// readLoginTimestamp parses the persisted epoch-millisecond sign-in time.
func (s *Store) readLoginTimestamp(ctx context.Context) (time.Time, bool) {
	raw, err := s.storage.Get(ctx, loginTimestampKey)
	if err != nil {
		return time.Time{}, false
	}
	ms, err := strconv.ParseInt(string(bytes.TrimSpace(raw)), 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}

// armTimerLocked replaces any pending expiry timer with a fresh one.
// Cancel-before-restart keeps at most one live timer at any moment.
func (s *Store) armTimerLocked(d time.Duration) {
	s.stopTimerLocked()

	s.timerGen++
	gen := s.timerGen
	s.timer = time.AfterFunc(d, func() {
		s.expire(gen)
	})
}

func (s *Store) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// expire is the timer callback: the one transition driven by time instead of
// a caller. It always logs out, unless the timer was superseded while the
// callback was waiting for the lock.
func (s *Store) expire(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.timerGen {
		return
	}

	s.logger.Info("session expired",
		logger.Component("session"), logger.Event("session_expired"))
	if err := s.logoutLocked(context.Background()); err != nil {
		s.logger.Error("failed to clear expired session", logger.Error(err))
	}
}
