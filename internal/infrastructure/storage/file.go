// Package storage provides the durable session record implementations:
// a local JSON file (the default, the browser-localStorage analog) and a
// redis backend for deployments where the storefront core runs server-side.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/markethub/storefront-core/internal/core/domain"
	"github.com/markethub/storefront-core/internal/core/ports"
)

// Fixed record keys, mirrored by every storage backend.
const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyUser         = "user"
)

var _ ports.SessionStorage = (*FileStorage)(nil)

// FileStorage keeps the session record in a single JSON file. Reads are
// served from the file on every call so external changes (another process,
// a test fixture) are always observed; writes are atomic via rename.
type FileStorage struct {
	mu   sync.Mutex
	path string
}

// NewFileStorage builds a FileStorage at path, creating parent directories
// as needed. The file itself is created lazily on first write.
func NewFileStorage(path string) (*FileStorage, error) {
	if path == "" {
		return nil, errors.New("storage: empty session file path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("storage: create session dir: %w", err)
		}
	}
	return &FileStorage{path: path}, nil
}

type sessionRecord struct {
	AccessToken  string          `json:"access_token,omitempty"`
	RefreshToken string          `json:"refresh_token,omitempty"`
	User         json.RawMessage `json:"user,omitempty"`
}

func (s *FileStorage) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, _ := s.read()
	return rec.AccessToken
}

func (s *FileStorage) RefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, _ := s.read()
	return rec.RefreshToken
}

func (s *FileStorage) SetTokens(access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(func(rec *sessionRecord) {
		rec.AccessToken = access
		rec.RefreshToken = refresh
	})
}

func (s *FileStorage) SetAccessToken(access string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(func(rec *sessionRecord) {
		rec.AccessToken = access
	})
}

func (s *FileStorage) LoadUser() (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, err := s.read()
	if err != nil {
		return nil, err
	}
	if len(rec.User) == 0 {
		return nil, nil
	}
	var u domain.User
	if err := json.Unmarshal(rec.User, &u); err != nil {
		return nil, fmt.Errorf("storage: decode user: %w", err)
	}
	return &u, nil
}

func (s *FileStorage) SaveUser(u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("storage: encode user: %w", err)
	}
	return s.update(func(rec *sessionRecord) {
		rec.User = raw
	})
}

func (s *FileStorage) ClearTokens() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(func(rec *sessionRecord) {
		rec.AccessToken = ""
		rec.RefreshToken = ""
	})
}

func (s *FileStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: clear session: %w", err)
	}
	return nil
}

// read returns the current record; a missing or corrupt file reads as an
// empty session.
func (s *FileStorage) read() (sessionRecord, error) {
	var rec sessionRecord
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return rec, nil
		}
		return rec, fmt.Errorf("storage: read session: %w", err)
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return sessionRecord{}, nil
	}
	return rec, nil
}

func (s *FileStorage) update(mutate func(*sessionRecord)) error {
	rec, err := s.read()
	if err != nil {
		return err
	}
	mutate(&rec)

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("storage: encode session: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("storage: write session: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("storage: write session: %w", err)
	}
	return nil
}
