package client

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const tokenFile = "token"

// Session holds the bearer token with explicit load/save boundaries.
type Session struct {
	dir   string
	token string
}

// LoadSession reads the persisted token from dir, if any. A missing file is
// an empty session, not an error.
func LoadSession(dir string) (*Session, error) {
	s := &Session{dir: dir}
	raw, err := os.ReadFile(filepath.Join(dir, tokenFile))
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	s.token = strings.TrimSpace(string(raw))
	return s, nil
}

// NewSession returns an in-memory session that is never persisted.
func NewSession() *Session {
	return &Session{}
}

func (s *Session) Token() string { return s.token }

// SetToken stores the token and persists it when the session is file-backed.
func (s *Session) SetToken(token string) error {
	s.token = token
	return s.save()
}

// Clear forgets the token (logout).
func (s *Session) Clear() error {
	s.token = ""
	if s.dir == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, tokenFile))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *Session) save() error {
	if s.dir == "" {
		return nil
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create state dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(s.token), 0o600); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
