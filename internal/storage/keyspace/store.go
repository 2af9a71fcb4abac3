package keyspace

import "sync"

// DefaultFile is the snapshot file name used when none is configured.
const DefaultFile = "kvstore.dat"

// Store is a concurrent in-memory map from byte-string keys to
// byte-string values. The zero value is not usable; use New or Open.
type Store struct {
	mu   sync.RWMutex
	data map[string]string
}

// New creates an empty store.
func New() *Store {
	return &Store{data: make(map[string]string)}
}

// Open creates a store and restores its contents from the snapshot file
// at path. A missing file yields an empty store. Truncated trailing
// records are dropped silently.
func Open(path string) (*Store, error) {
	s := New()
	if err := s.restore(path); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns a copy of the value stored under key, or ok=false if the
// key is absent.
func (s *Store) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false
	}
	return []byte(v), true
}

// Set inserts or overwrites the value stored under key.
func (s *Store) Set(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = string(value)
}

// Del removes key and reports whether an entry existed.
func (s *Store) Del(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[key]
	if ok {
		delete(s.data, key)
	}
	return ok
}

// Len returns the number of keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
