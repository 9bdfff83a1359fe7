// Package session resolves the signed-in user from the locally stored token.
// The booking flow receives the resolved Session as an explicit input instead
// of reaching into shared global state.
package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoToken is returned when no token has been saved yet.
var ErrNoToken = errors.New("no session token stored")

// TokenStore persists the bearer token between runs.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStore keeps the token in a mode-0600 file under the user config dir.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore creates a store writing to the given path.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// Load reads the stored token. Returns ErrNoToken when absent or empty.
func (s *FileTokenStore) Load() (string, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoToken
		}
		return "", err
	}

	token := strings.TrimSpace(string(content))
	if token == "" {
		return "", ErrNoToken
	}

	return token, nil
}

// Save writes the token, creating parent directories as needed.
func (s *FileTokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Clear removes the stored token.
func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
