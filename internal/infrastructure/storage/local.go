package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/alexisbeaulieu97/shopmate/internal/ports"
)

// LocalStore persists string values between sessions in a single JSON file,
// the way a browser keeps local storage per origin.
type LocalStore struct {
	path    string
	mu      sync.RWMutex
	version string
	values  map[string]string
}

// File is the on-disk representation of a LocalStore.
type File struct {
	Version string            `json:"version"`
	Values  map[string]string `json:"values"`
}

// NewLocalStore creates a LocalStore and loads it from disk. A missing file
// is an empty store.
func NewLocalStore(path string) (*LocalStore, error) {
	s := &LocalStore{
		path:    path,
		version: "1.0",
		values:  make(map[string]string),
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	if err := s.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return s, nil
}

// Load reads the store from disk, replacing in-memory values.
func (s *LocalStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if file.Version != "" {
		s.version = file.Version
	}
	s.values = file.Values
	if s.values == nil {
		s.values = make(map[string]string)
	}

	return nil
}

// Get returns the value stored under key.
func (s *LocalStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok
}

// Set stores value under key and flushes the store to disk.
func (s *LocalStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.values[key]
	s.values[key] = value
	if err := s.saveLocked(); err != nil {
		if existed {
			s.values[key] = previous
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

// Delete removes key and flushes the store to disk. Deleting an absent key
// is not an error.
func (s *LocalStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.values[key]
	if !existed {
		return nil
	}
	delete(s.values, key)
	if err := s.saveLocked(); err != nil {
		s.values[key] = previous
		return err
	}
	return nil
}

// Len returns the number of stored keys.
func (s *LocalStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// saveLocked writes the store atomically. Caller must hold s.mu.
func (s *LocalStore) saveLocked() error {
	file := File{
		Version: s.version,
		Values:  s.values,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal storage: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

var _ ports.KeyValueStore = (*LocalStore)(nil)

// MemoryStore is a non-durable KeyValueStore, used in tests.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (m *MemoryStore) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	return value, ok
}

// Set stores value under key.
func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Delete removes key.
func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

var _ ports.KeyValueStore = (*MemoryStore)(nil)
