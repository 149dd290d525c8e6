package store

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Store is the persistence boundary for all shop state. Every value is a
// JSON document under a short string key. Load never fails on missing or
// corrupt data: the caller's value is left untouched so entity defaults
// stand. Save reports success; a false return means the mutation did not
// become durable and callers must not advance derived state.
type Store interface {
	Load(key string, v any) bool
	Save(key string, v any) bool
	Remove(key string)
}

// Announcer is the single-slot notification sink rendered by the UI.
// Delivering a message replaces any pending one; it is never queued.
type Announcer interface {
	Announce(msg string)
}

// FileStore persists each key as <dir>/<key>.json, written atomically
// via a temp file and rename.
type FileStore struct {
	dir      string
	announce Announcer
}

// NewFileStore creates a FileStore rooted at dir. Write failures are
// reported through a, which may be nil.
func NewFileStore(dir string, a Announcer) *FileStore {
	return &FileStore{dir: dir, announce: a}
}

// DefaultDir returns the default data directory.
func DefaultDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "atelierctl")
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load reads and decodes the value stored under key. Missing files and
// malformed JSON both leave v untouched and return false.
func (s *FileStore) Load(key string, v any) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

// Save encodes v and writes it under key. On any failure it announces a
// user-facing notice and returns false instead of propagating the error.
func (s *FileStore) Save(key string, v any) bool {
	data, err := json.Marshal(v)
	if err != nil {
		s.report()
		return false
	}
	if err := os.MkdirAll(s.dir, 0750); err != nil {
		s.report()
		return false
	}

	destPath := s.path(key)
	tmpPath := destPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		s.report()
		return false
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		_ = os.Remove(tmpPath)
		s.report()
		return false
	}
	return true
}

// Remove deletes the value stored under key. Missing keys are fine.
func (s *FileStore) Remove(key string) {
	_ = os.Remove(s.path(key))
}

func (s *FileStore) report() {
	if s.announce != nil {
		s.announce.Announce("Opslaan mislukt: lokale opslag is niet beschikbaar. Gebruik een kleinere foto.")
	}
}
