package localfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/adminforge/adminsdk/core/session"
)

// Config provides environment-based configuration for the file backend.
type Config struct {
	// Path is the JSON state file holding all persisted keys.
	Path string `env:"AUTH_STATE_FILE" envDefault:".adminsdk_state.json"`
}

// Storage is a single-file session.Storage implementation — the local-storage
// analogue for CLI and desktop processes. The whole key set is serialized as
// one JSON object and rewritten atomically (temp file + rename) on every
// mutation, so a crash never leaves a half-written state file behind.
type Storage struct {
	mu   sync.Mutex
	path string
	data map[string][]byte
}

// New opens or creates the state file at cfg.Path. A corrupt state file is
// treated as absent: the backend starts empty and overwrites it on the next
// write, mirroring how the session layer treats corrupt values.
func New(cfg Config) (*Storage, error) {
	if cfg.Path == "" {
		return nil, ErrEmptyPath
	}

	s := &Storage{
		path: cfg.Path,
		data: make(map[string][]byte),
	}

	raw, err := os.ReadFile(cfg.Path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return s, nil
	case err != nil:
		return nil, errors.Join(ErrOpenStateFile, err)
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		s.data = make(map[string][]byte)
	}
	return s, nil
}

// Get returns the value stored under key, or session.ErrKeyNotFound.
func (s *Storage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.data[key]
	if !ok {
		return nil, session.ErrKeyNotFound
	}
	return bytes.Clone(value), nil
}

// Set stores value under key and rewrites the state file.
func (s *Storage) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = bytes.Clone(value)
	return s.flushLocked()
}

// Delete removes the given keys and rewrites the state file.
// Missing keys are a no-op; the file is still rewritten when anything changed.
func (s *Storage) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for _, key := range keys {
		if _, ok := s.data[key]; ok {
			delete(s.data, key)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.flushLocked()
}

// flushLocked serializes the key set and replaces the state file atomically.
func (s *Storage) flushLocked() error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return errors.Join(ErrWriteStateFile, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".adminsdk-*")
	if err != nil {
		return errors.Join(ErrWriteStateFile, err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Join(ErrWriteStateFile, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Join(ErrWriteStateFile, err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return errors.Join(ErrWriteStateFile, err)
	}
	return nil
}
