// Package storage persists clipvault state as a single JSON key-value file.
//
// The file maps string keys to raw JSON values and is rewritten in full on
// every mutation. Reads and writes are an unguarded read-modify-write: two
// processes (e.g. an interactive command and a concurrent "send") can race,
// and the last writer wins. This matches the store's contract — consistency
// under concurrent writers is best-effort only.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// DefaultPath returns the default location of the state file,
// $XDG_DATA_HOME/clipvault/storage.json.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, "clipvault", "storage.json")
}

// Store is a file-backed key-value store holding JSON-encoded values.
type Store struct {
	path string
}

// Open returns a Store backed by the file at path. The file and its parent
// directory are created lazily on the first Set.
func Open(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{path: path}
}

func (s *Store) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}
	state := map[string]json.RawMessage{}
	if len(data) == 0 {
		return state, nil
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decode state file %s: %w", s.path, err)
	}
	return state, nil
}

func (s *Store) save(state map[string]json.RawMessage) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	// Write-then-rename so a crash mid-write never leaves a torn file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

// Get decodes the value stored under key into out. It reports false when the
// key is absent, leaving out untouched.
func (s *Store) Get(key string, out any) (bool, error) {
	state, err := s.load()
	if err != nil {
		return false, err
	}
	raw, ok := state[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode value for %q: %w", key, err)
	}
	return true, nil
}

// Set stores v under key, replacing any previous value.
func (s *Store) Set(key string, v any) error {
	state, err := s.load()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode value for %q: %w", key, err)
	}
	state[key] = raw
	return s.save(state)
}

// Delete removes key from the store. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	state, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := state[key]; !ok {
		return nil
	}
	delete(state, key)
	return s.save(state)
}
