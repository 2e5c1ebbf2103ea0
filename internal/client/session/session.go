// Package session remembers who is logged in between CLI invocations.
//
// The backend keeps no server-side session: a Session is simply the email
// and display name returned by a successful login, stored on disk so later
// commands can act on behalf of that user.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/crmdash/internal/common"
	"github.com/dmitrijs2005/crmdash/internal/filex"
	"github.com/gofrs/flock"
)

type Session struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// DisplayName returns Name, falling back to Email.
func (s *Session) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Email
}

// DefaultPath is <UserConfigDir>/crmdash/session.json.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "crmdash", "session.json"), nil
}

// FileStore persists a single Session as a JSON file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

// Load returns common.ErrNotLoggedIn when no session has been saved.
func (s *FileStore) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, common.ErrNotLoggedIn
	}
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decoding session: %w", err)
	}
	if sess.Email == "" {
		return nil, common.ErrNotLoggedIn
	}
	return &sess, nil
}

func (s *FileStore) Save(sess *Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	return s.locked(func() error {
		return filex.WriteAtomic(s.path, data, 0o600)
	})
}

// Clear removes the stored session. Clearing an absent session is not an
// error.
func (s *FileStore) Clear() error {
	return s.locked(func() error {
		err := os.Remove(s.path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	})
}

// locked serializes writers from concurrent CLI invocations.
func (s *FileStore) locked(fn func() error) error {
	if err := filex.EnsureParentDir(s.path); err != nil {
		return err
	}

	lock := flock.New(s.path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("locking session: %w", err)
	}
	defer lock.Unlock()

	return fn()
}
