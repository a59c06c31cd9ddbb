package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabiest/hostsdash/internal/core/domain"
	"github.com/gabiest/hostsdash/internal/core/ports"
)

const (
	// canonicalFile is where the session record lives.
	canonicalFile = "usuario_logado.json"
	// legacyFile mirrors the record under the old key so earlier tooling
	// keeps working.
	legacyFile = "app_user.json"
)

// FileStore persists the login session as a JSON record on disk, mirrored to
// the legacy filename.
type FileStore struct {
	dir string
}

// NewFileStore creates a session store rooted at dir
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Ensure it implements the interface
var _ ports.SessionStore = (*FileStore)(nil)

// Save writes the user record to both the canonical and legacy files
func (s *FileStore) Save(user domain.User) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, canonicalFile), data, 0600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	// Legacy mirror is best-effort; the canonical file is authoritative
	_ = os.WriteFile(filepath.Join(s.dir, legacyFile), data, 0600)
	return nil
}

// Load reads the session record, falling back to the legacy file. A missing
// session is not an error; it returns nil.
func (s *FileStore) Load() (*domain.User, error) {
	for _, name := range []string{canonicalFile, legacyFile} {
		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read session: %w", err)
		}

		var user domain.User
		if err := json.Unmarshal(data, &user); err != nil {
			return nil, fmt.Errorf("failed to decode session: %w", err)
		}
		return &user, nil
	}
	return nil, nil
}

// Clear removes both session files
func (s *FileStore) Clear() error {
	for _, name := range []string{canonicalFile, legacyFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove session: %w", err)
		}
	}
	return nil
}
