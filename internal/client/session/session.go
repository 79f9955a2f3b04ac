// Package session stores the login state of the terminal client: the bearer
// token pair and a best-effort role string, kept in a file under the user
// config directory. Absence of the file is the logged-out state.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const fileName = "token.json"

// Session is the persisted login state.
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Store reads and writes the session file in dir.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir resolves the per-user config directory for the client.
func DefaultDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "newspress")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "newspress")
}

func (s *Store) path() string {
	return filepath.Join(s.dir, fileName)
}

// Save persists the session with owner-only permissions.
func (s *Store) Save(sess Session) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	buf, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(), buf, 0o600)
}

// Load returns the stored session. A missing, unreadable or expired session
// yields (zero, false): the caller treats that as logged out.
func (s *Store) Load() (Session, bool) {
	buf, err := os.ReadFile(s.path())
	if err != nil {
		return Session{}, false
	}
	var sess Session
	if err := json.Unmarshal(buf, &sess); err != nil {
		return Session{}, false
	}
	if sess.AccessToken == "" || time.Now().After(sess.ExpiresAt) {
		return Session{}, false
	}
	return sess, true
}

// Clear removes the session file. Removing an absent file is fine.
func (s *Store) Clear() error {
	err := os.Remove(s.path())
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// Token implements the REST client's token source: empty when logged out.
func (s *Store) Token() string {
	sess, ok := s.Load()
	if !ok {
		return ""
	}
	return sess.AccessToken
}
