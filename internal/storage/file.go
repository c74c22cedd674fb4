package storage

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// FileStore is a KV backed by one file per key inside a directory. Writes go
// through a temp file and rename, so a failed write never corrupts the
// previous value.
type FileStore struct {
	dir      string
	maxBytes int
}

// NewFileStore opens (creating if needed) a file-backed namespace rooted at
// dir. maxBytes caps the total namespace size; zero or negative means
// DefaultMaxBytes.
func NewFileStore(dir string, maxBytes int) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage directory is empty")
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &UnavailableError{Message: fmt.Sprintf("cannot create storage directory %s", dir), Cause: err}
	}
	return &FileStore{dir: dir, maxBytes: maxBytes}, nil
}

// MaxBytes returns the capacity budget for the namespace.
func (s *FileStore) MaxBytes() int {
	return s.maxBytes
}

// Get returns the stored value for key.
func (s *FileStore) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return string(data), true, nil
}

// Set stores value under key. The write is rejected with QuotaExceededError
// when it would push the namespace past its capacity budget; nothing is
// modified in that case.
func (s *FileStore) Set(key, value string) error {
	current, err := Usage(s)
	if err != nil {
		return fmt.Errorf("failed to measure storage usage: %w", err)
	}
	if old, ok, err := s.Get(key); err == nil && ok {
		current -= len(key) + len(old)
	}
	next := current + len(key) + len(value)
	if next > s.maxBytes {
		return &QuotaExceededError{Key: key, Size: next, Limit: s.maxBytes}
	}

	tmp, err := os.CreateTemp(s.dir, ".write-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for key %q: %w", key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to flush key %q: %w", key, err)
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to commit key %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Absent keys are a no-op.
func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

// Keys lists every stored key.
func (s *FileStore) Keys() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list storage directory: %w", err)
	}
	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".json") {
			continue
		}
		key, err := url.PathUnescape(strings.TrimSuffix(name, ".json"))
		if err != nil {
			continue
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// path maps a key to its backing file. Keys are percent-encoded so arbitrary
// key strings stay filesystem-safe.
func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+".json")
}
