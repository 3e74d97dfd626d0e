// client/session.go - Durable session snapshot
//
// The snapshot is the locally persisted copy of the signed-in member, used
// to decide what to show, never as a security credential; the server
// re-checks every request via the bearer token stored next to it.
package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"footballhub/models"
)

// Session holds the current member snapshot and the session token under a
// single JSON file. A malformed or unreadable file is treated as "no
// session", never surfaced as an error.
type Session struct {
	path string
	mu   sync.Mutex
}

type sessionData struct {
	User  *models.Member `json:"user"`
	Token string         `json:"token"`
}

// NewSession creates a session store at path. An empty path places the file
// under the user config directory.
func NewSession(path string) (*Session, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "footballhub", "session.json")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	return &Session{path: path}, nil
}

func (s *Session) load() sessionData {
	var data sessionData
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return sessionData{}
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		// Malformed snapshot: behave as signed out.
		return sessionData{}
	}
	return data
}

func (s *Session) save(data sessionData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

// Current returns the stored member snapshot, if any.
func (s *Session) Current() (models.Member, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load()
	if data.User == nil {
		return models.Member{}, false
	}
	return *data.User, true
}

// Token returns the stored session token, or "" when signed out.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().Token
}

// Set replaces the snapshot and token after a fresh login.
func (s *Session) Set(user models.Member, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(sessionData{User: &user, Token: token})
}

// Patch merges the given name and year of birth into the stored snapshot,
// leaving every other field (and the token) unchanged. No-op when signed
// out.
func (s *Session) Patch(name string, yob int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load()
	if data.User == nil {
		return nil
	}
	data.User.Name = name
	data.User.YOB = yob
	return s.save(data)
}

// Clear removes the stored session.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
