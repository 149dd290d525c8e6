package store

import "encoding/json"

// MemStore is an in-memory Store used by tests and dry runs. It keeps
// the same JSON round-trip as FileStore so shape mismatches surface the
// same way in both.
type MemStore struct {
	data map[string][]byte

	// FailSaves makes every Save report failure, for exercising the
	// "mutation not durable" paths.
	FailSaves bool

	announce Announcer
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: map[string][]byte{}}
}

// WithAnnouncer sets the failure-notice sink and returns the store.
func (s *MemStore) WithAnnouncer(a Announcer) *MemStore {
	s.announce = a
	return s
}

// Seed stores raw JSON under key, bypassing Save. Tests use it to plant
// corrupt or legacy payloads.
func (s *MemStore) Seed(key, raw string) {
	s.data[key] = []byte(raw)
}

func (s *MemStore) Load(key string, v any) bool {
	data, found := s.data[key]
	if !found {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

func (s *MemStore) Save(key string, v any) bool {
	if s.FailSaves {
		if s.announce != nil {
			s.announce.Announce("Opslaan mislukt: lokale opslag is niet beschikbaar. Gebruik een kleinere foto.")
		}
		return false
	}
	data, err := json.Marshal(v)
	if err != nil {
		return false
	}
	s.data[key] = data
	return true
}

func (s *MemStore) Remove(key string) {
	delete(s.data, key)
}
