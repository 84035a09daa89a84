package client

import (
	"os"
	"path/filepath"
	"strings"
)

// Session holds the current auth token. The token is opaque; no expiry
// tracking happens here. Expiry shows up reactively as a 401 from the
// server. When a path is set, the token is persisted to that file so a
// session survives process restarts.
type Session struct {
	token string
	path  string
}

// NewSession returns an in-memory session.
func NewSession() *Session {
	return &Session{}
}

// LoadSession returns a session backed by a token file, reading any
// previously persisted token. A missing file means logged out.
func LoadSession(path string) (*Session, error) {
	s := &Session{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	s.token = strings.TrimSpace(string(data))
	return s, nil
}

// Token returns the held token, if any.
func (s *Session) Token() (string, bool) {
	if s.token == "" {
		return "", false
	}
	return s.token, true
}

// Create installs a new token, persisting it when the session is
// file-backed.
func (s *Session) Create(token string) error {
	s.token = token
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Invalidate drops the token and removes the persisted copy.
func (s *Session) Invalidate() error {
	s.token = ""
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
