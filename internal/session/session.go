// Package session manages the local user session file. The original
// application gated every maintenance screen on the presence of a stored
// session token; commands that mutate records require one here the same
// way. The check is presence-only: no credential verification happens.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// fileName is the session file inside the config directory.
const fileName = "session.json"

// Session is the active user session.
type Session struct {
	User      string `json:"user"`
	Token     string `json:"token"`
	StartedAt string `json:"started_at"`
}

// Start creates a session for user and writes it to the config directory,
// replacing any existing session. The token is a UUID v7.
func Start(configDir, user string) (*Session, error) {
	if user == "" {
		return nil, errors.New("user must not be empty")
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}

	s := &Session{
		User:      user,
		Token:     newToken(),
		StartedAt: time.Now().Format(time.RFC3339),
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, fileName), data, 0o600); err != nil {
		return nil, fmt.Errorf("write session: %w", err)
	}
	return s, nil
}

// Current returns the active session, or nil if none exists. A session file
// that cannot be parsed counts as no session.
func Current(configDir string) (*Session, error) {
	data, err := os.ReadFile(filepath.Join(configDir, fileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, nil
	}
	if s.Token == "" {
		return nil, nil
	}
	return &s, nil
}

// End removes the session file. Ending a session that does not exist
// succeeds.
func End(configDir string) error {
	err := os.Remove(filepath.Join(configDir, fileName))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

// newToken generates a UUID v7 session token, falling back to v4 if v7
// generation fails.
func newToken() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
