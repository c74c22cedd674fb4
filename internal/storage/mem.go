package storage

// MemStore is an in-memory KV used in tests and as a degraded fallback. A
// small MaxBytes makes it reject writes the same way a full backend would.
type MemStore struct {
	values   map[string]string
	maxBytes int
}

// NewMemStore creates an empty in-memory namespace. maxBytes caps the total
// size; zero or negative means DefaultMaxBytes.
func NewMemStore(maxBytes int) *MemStore {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &MemStore{values: make(map[string]string), maxBytes: maxBytes}
}

// MaxBytes returns the capacity budget for the namespace.
func (s *MemStore) MaxBytes() int {
	return s.maxBytes
}

// Get returns the stored value for key.
func (s *MemStore) Get(key string) (string, bool, error) {
	value, ok := s.values[key]
	return value, ok, nil
}

// Set stores value under key, rejecting writes past the capacity budget.
func (s *MemStore) Set(key, value string) error {
	current := 0
	for k, v := range s.values {
		if k == key {
			continue
		}
		current += len(k) + len(v)
	}
	next := current + len(key) + len(value)
	if next > s.maxBytes {
		return &QuotaExceededError{Key: key, Size: next, Limit: s.maxBytes}
	}
	s.values[key] = value
	return nil
}

// Delete removes key.
func (s *MemStore) Delete(key string) error {
	delete(s.values, key)
	return nil
}

// Keys lists every stored key.
func (s *MemStore) Keys() ([]string, error) {
	keys := make([]string, 0, len(s.values))
	for key := range s.values {
		keys = append(keys, key)
	}
	return keys, nil
}
