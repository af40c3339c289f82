package theme

import (
	"fmt"
	"sync"
)

// StorageKey is where the selected theme is persisted.
const StorageKey = "theme"

// Name is one of the two UI themes.
type Name string

const (
	Light Name = "light"
	Dark  Name = "dark"
)

// ParseName maps a persisted value to a theme, falling back to Light for
// anything unrecognized.
func ParseName(value string) Name {
	if Name(value) == Dark {
		return Dark
	}
	return Light
}

// Opposite returns the other theme.
func (n Name) Opposite() Name {
	if n == Dark {
		return Light
	}
	return Dark
}

// Storage is the durable store the theme is written to.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Store holds the current theme. The persisted value is read once, when the
// store is loaded; every change is written through before it is visible.
type Store struct {
	mu      sync.RWMutex
	current Name
	storage Storage
}

// Load initializes a Store from storage, defaulting to Light.
func Load(storage Storage) *Store {
	current := Light
	if storage != nil {
		if value, ok := storage.Get(StorageKey); ok {
			current = ParseName(value)
		}
	}
	return &Store{current: current, storage: storage}
}

// Current returns the active theme.
func (s *Store) Current() Name {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Palette returns the colors of the active theme.
func (s *Store) Palette() Palette {
	return PaletteFor(s.Current())
}

// Toggle flips between light and dark and persists the result. On a
// persistence failure the theme is left unchanged.
func (s *Store) Toggle() (Name, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Opposite()
	if err := s.persistLocked(next); err != nil {
		return s.current, err
	}
	s.current = next
	return next, nil
}

// Set selects a theme explicitly and persists it.
func (s *Store) Set(name Name) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = ParseName(string(name))
	if err := s.persistLocked(name); err != nil {
		return err
	}
	s.current = name
	return nil
}

func (s *Store) persistLocked(name Name) error {
	if s.storage == nil {
		return nil
	}
	if err := s.storage.Set(StorageKey, string(name)); err != nil {
		return fmt.Errorf("persist theme: %w", err)
	}
	return nil
}
