package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adminforge/adminsdk/core/client"
)

// Timer behavior cannot wait out the real 24h lifetime, so these tests narrow
// the unexported ttl and drive expiry with milliseconds.

// mapStorage is a minimal in-process Storage; the storage/memory package
// cannot be imported here without a test-only import cycle.
type mapStorage struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMapStorage() *mapStorage {
	return &mapStorage{data: make(map[string][]byte)}
}

func (m *mapStorage) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return value, nil
}

func (m *mapStorage) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *mapStorage) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

func (m *mapStorage) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

func newShortStore(backend Storage, ttl time.Duration) *Store {
	s := New(backend)
	s.ttl = ttl
	return s
}

func shortSession() *Session {
	return &Session{
		AccessToken: "tok-short",
		User:        User{ID: uuid.New(), FirstName: "Ada", Role: "admin"},
	}
}

func TestStore_ExpiryTimer(t *testing.T) {
	t.Parallel()

	t.Run("fires logout after the session duration", func(t *testing.T) {
		t.Parallel()

		backend := newMapStorage()
		store := newShortStore(backend, 100*time.Millisecond)
		require.NoError(t, store.SetAuth(context.Background(), shortSession()))

		require.Eventually(t, func() bool {
			return !store.IsAuthenticated()
		}, 2*time.Second, 10*time.Millisecond)
		assert.Zero(t, backend.len(), "expiry must remove persisted keys")
	})

	t.Run("re-auth cancels the previous timer", func(t *testing.T) {
		t.Parallel()

		backend := newMapStorage()
		store := newShortStore(backend, 500*time.Millisecond)
		ctx := context.Background()

		require.NoError(t, store.SetAuth(ctx, shortSession()))
		time.Sleep(250 * time.Millisecond)
		require.NoError(t, store.SetAuth(ctx, shortSession()))

		// Past the first timer's original fire time: had it survived, the
		// session would be gone by now.
		time.Sleep(350 * time.Millisecond)
		assert.True(t, store.IsAuthenticated())

		require.Eventually(t, func() bool {
			return !store.IsAuthenticated()
		}, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("consecutive auths leave exactly one pending timer", func(t *testing.T) {
		t.Parallel()

		backend := newMapStorage()
		store := newShortStore(backend, 300*time.Millisecond)
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			require.NoError(t, store.SetAuth(ctx, shortSession()))
		}

		store.mu.Lock()
		assert.NotNil(t, store.timer)
		gen := store.timerGen
		store.mu.Unlock()
		assert.Equal(t, uint64(5), gen)

		require.Eventually(t, func() bool {
			return !store.IsAuthenticated()
		}, 2*time.Second, 10*time.Millisecond)

		store.mu.Lock()
		assert.Nil(t, store.timer)
		store.mu.Unlock()
	})

	t.Run("logout cancels the pending timer", func(t *testing.T) {
		t.Parallel()

		backend := newMapStorage()
		store := newShortStore(backend, 200*time.Millisecond)
		ctx := context.Background()

		require.NoError(t, store.SetAuth(ctx, shortSession()))
		require.NoError(t, store.Logout(ctx))

		store.mu.Lock()
		assert.Nil(t, store.timer)
		store.mu.Unlock()
	})
}

func TestStore_RestoreTimer(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T, backend Storage, age time.Duration) {
		t.Helper()
		ctx := context.Background()
		raw, err := json.Marshal(shortSession())
		require.NoError(t, err)
		require.NoError(t, backend.Set(ctx, authDataKey, raw))
		ts := strconv.FormatInt(time.Now().Add(-age).UnixMilli(), 10)
		require.NoError(t, backend.Set(ctx, loginTimestampKey, []byte(ts)))
	}

	t.Run("arms timer for the remaining lifetime", func(t *testing.T) {
		t.Parallel()

		backend := newMapStorage()
		seed(t, backend, 200*time.Millisecond)

		store := newShortStore(backend, 500*time.Millisecond)
		require.NoError(t, store.Restore(context.Background()))
		require.True(t, store.IsAuthenticated())

		// Remaining lifetime is ~300ms, not a fresh 500ms.
		require.Eventually(t, func() bool {
			return !store.IsAuthenticated()
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("already expired record clears immediately", func(t *testing.T) {
		t.Parallel()

		backend := newMapStorage()
		seed(t, backend, 600*time.Millisecond)

		store := newShortStore(backend, 500*time.Millisecond)
		require.NoError(t, store.Restore(context.Background()))

		assert.False(t, store.IsAuthenticated())
		store.mu.Lock()
		assert.Nil(t, store.timer)
		store.mu.Unlock()
	})
}

// TestStore_SignInExpiryScenario walks the full arc: sign in, call the API
// with a bearer token while the session lives, then observe the automatic
// logout detach credentials and purge persisted state.
func TestStore_SignInExpiryScenario(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(r.Header.Get("Authorization"))
	}))
	defer srv.Close()

	backend := newMapStorage()
	store := newShortStore(backend, 400*time.Millisecond)
	ctx := context.Background()

	api, err := client.New(client.Config{BaseURL: srv.URL}, client.WithTokenSource(store))
	require.NoError(t, err)

	require.NoError(t, store.SetAuth(ctx, shortSession()))

	header, err := client.Decode[string](api.WithAuth().Get(ctx, "/me"))
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-short", header)

	require.Eventually(t, func() bool {
		return !store.IsAuthenticated()
	}, 2*time.Second, 10*time.Millisecond)
	assert.Zero(t, backend.len())

	header, err = client.Decode[string](api.WithAuth().Get(ctx, "/me"))
	require.NoError(t, err)
	assert.Empty(t, header)
}
