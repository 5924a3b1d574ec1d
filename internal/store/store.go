// Package store implements a best-effort local key-value store backed by
// JSON documents on disk, one file per key.
//
// Persistence here is deliberately forgiving: loads fall back to a caller
// supplied default on any failure, and saves log instead of returning
// errors. The in-memory state owned by the caller stays the source of
// truth for the session no matter what happens on disk.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// schemaVersion is written into every document envelope so the layout can
// evolve without silently misreading old data.
const schemaVersion = 1

// envelope wraps every stored value with a schema version.
type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// FileStore reads and writes JSON documents under a root directory.
// It is safe for use from multiple goroutines.
type FileStore struct {
	// root is the directory holding one <key>.json file per key.
	root string
	// log records persistence failures, which are never surfaced to callers.
	log *zap.Logger

	mu sync.Mutex
}

// New creates a FileStore rooted at dir. The directory is created on the
// first Save if it does not exist.
func New(dir string, log *zap.Logger) *FileStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &FileStore{root: dir, log: log}
}

// path returns the document path for a key.
func (s *FileStore) path(key string) string {
	return filepath.Join(s.root, key+".json")
}

// Load reads the document stored under key and unmarshals it into T.
// On a missing key, unreadable file, malformed JSON, or a schema version
// this build does not understand, it returns fallback and never an error.
func Load[T any](s *FileStore, key string, fallback T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("store read failed", zap.String("key", key), zap.Error(err))
		}
		return fallback
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		s.log.Warn("store document corrupted", zap.String("key", key), zap.Error(err))
		return fallback
	}
	if env.Version != schemaVersion {
		s.log.Warn("store document has unknown schema version",
			zap.String("key", key), zap.Int("version", env.Version))
		return fallback
	}

	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		s.log.Warn("store document has unexpected shape", zap.String("key", key), zap.Error(err))
		return fallback
	}
	return out
}

// Save serializes value and writes it under key. Failures are logged and
// swallowed: a full or unavailable disk must never corrupt or roll back
// the caller's in-memory state.
func Save[T any](s *FileStore, key string, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(value)
	if err != nil {
		s.log.Error("store marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	raw, err := json.Marshal(envelope{Version: schemaVersion, Data: data})
	if err != nil {
		s.log.Error("store envelope marshal failed", zap.String("key", key), zap.Error(err))
		return
	}

	if err := os.MkdirAll(s.root, 0o700); err != nil {
		s.log.Error("store mkdir failed", zap.String("dir", s.root), zap.Error(err))
		return
	}
	if err := os.WriteFile(s.path(key), raw, 0o600); err != nil {
		s.log.Error("store write failed", zap.String("key", key), zap.Error(err))
	}
}

// Remove deletes the document stored under key, if any. Used only by
// debug/reset flows; missing documents are not an error.
func (s *FileStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		s.log.Warn("store remove failed", zap.String("key", key), zap.Error(err))
	}
}
