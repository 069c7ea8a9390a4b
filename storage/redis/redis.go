package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/adminforge/adminsdk/core/session"
)

// Config provides environment-based configuration for the Redis backend.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	KeyPrefix      string        `env:"REDIS_KEY_PREFIX" envDefault:"adminsdk:"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"5s"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"1s"`
}

// Connect creates a Redis client from the connection URL and verifies
// connectivity with a ping before returning it. Transient failures are
// retried with a fixed interval up to RetryAttempts times.
func Connect(ctx context.Context, cfg Config) (*goredis.Client, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}

	opts, err := goredis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseConnString, err)
	}

	client := goredis.NewClient(opts)

	attempts := max(cfg.RetryAttempts, 1)
	var pingErr error
	for i := 0; i < attempts; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
		pingErr = client.Ping(pingCtx).Err()
		cancel()
		if pingErr == nil {
			return client, nil
		}

		select {
		case <-ctx.Done():
			client.Close()
			return nil, errors.Join(ErrNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	client.Close()
	return nil, errors.Join(ErrNotReady, pingErr)
}

// Storage is a Redis-backed session.Storage implementation for processes that
// share session state. Values are written with the fixed session lifetime as
// their TTL, so Redis evicts on its own exactly what the store's expiry timer
// would clear.
type Storage struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

// StorageOption configures a Storage.
type StorageOption func(*Storage)

// WithKeyPrefix namespaces all keys written by this backend.
func WithKeyPrefix(prefix string) StorageOption {
	return func(s *Storage) {
		s.prefix = prefix
	}
}

// New creates a Redis storage over an established client.
func New(client *goredis.Client, opts ...StorageOption) *Storage {
	s := &Storage{
		client: client,
		ttl:    session.Duration,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Get returns the value stored under key, or session.ErrKeyNotFound.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, session.ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set stores value under key with the session-lifetime TTL.
func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.prefix+key, value, s.ttl).Err()
}

// Delete removes the given keys; missing keys are a no-op.
func (s *Storage) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = s.prefix + key
	}
	return s.client.Del(ctx, prefixed...).Err()
}
