package session

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// Storage keys for the persisted session.
const (
	UserKey  = "user"
	TokenKey = "token"
)

// User is the identity returned by a successful login.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UnmarshalJSON accepts either "id" or "_id" for the identifier.
func (u *User) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID    string `json:"id"`
		AltID string `json:"_id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	u.ID = wire.ID
	if u.ID == "" {
		u.ID = wire.AltID
	}
	u.Name = wire.Name
	u.Email = wire.Email
	return nil
}

// DisplayName prefers the user's name and falls back to the email address.
func (u User) DisplayName() string {
	if name := strings.TrimSpace(u.Name); name != "" {
		return name
	}
	return u.Email
}

// Storage is the durable store backing a session.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// Session is the logged-in state. It is read from storage once, when opened;
// Establish and Logout write through.
type Session struct {
	mu      sync.RWMutex
	user    *User
	token   string
	storage Storage
}

// Open reads any persisted session. A corrupt user record is treated as
// logged out.
func Open(storage Storage) *Session {
	s := &Session{storage: storage}
	if storage == nil {
		return s
	}

	token, hasToken := storage.Get(TokenKey)
	raw, hasUser := storage.Get(UserKey)
	if !hasToken || !hasUser || token == "" {
		return s
	}

	var user User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return s
	}
	s.user = &user
	s.token = token
	return s
}

// LoggedIn reports whether a token is held.
func (s *Session) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.token != ""
}

// Current returns the logged-in user, if any.
func (s *Session) Current() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// Token returns the bearer token, empty when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Establish records a new login and persists it.
func (s *Session) Establish(user User, token string) error {
	if token == "" {
		return fmt.Errorf("establish session: empty token")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.storage != nil {
		encoded, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("encode user: %w", err)
		}
		if err := s.storage.Set(UserKey, string(encoded)); err != nil {
			return fmt.Errorf("persist user: %w", err)
		}
		if err := s.storage.Set(TokenKey, token); err != nil {
			_ = s.storage.Delete(UserKey)
			return fmt.Errorf("persist token: %w", err)
		}
	}

	u := user
	s.user = &u
	s.token = token
	return nil
}

// Logout clears the in-memory session and removes the persisted keys.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.token = ""

	if s.storage == nil {
		return nil
	}
	if err := s.storage.Delete(UserKey); err != nil {
		return fmt.Errorf("remove user: %w", err)
	}
	if err := s.storage.Delete(TokenKey); err != nil {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}
