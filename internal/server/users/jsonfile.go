package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/dmitrijs2005/fileexplorer/internal/common"
)

// JSONFileRepository stores the whole user list in one JSON file, reading
// and rewriting it per operation. A mutex serializes the duplicate check
// and the rewrite, so two concurrent registrations of the same username
// cannot both succeed.
type JSONFileRepository struct {
	mu   sync.Mutex
	path string
}

// NewJSONFileRepository creates a repository backed by the file at path.
// The file is created on first write; a missing file reads as an empty
// user list.
func NewJSONFileRepository(path string) *JSONFileRepository {
	return &JSONFileRepository{path: path}
}

// load reads the full user list. Caller must hold the lock.
func (r *JSONFileRepository) load() ([]User, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []User{}, nil
		}
		return nil, fmt.Errorf("error reading users file: %w", err)
	}

	var list []User
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("error parsing users file: %w", err)
	}
	return list, nil
}

// store rewrites the full user list. Caller must hold the lock.
func (r *JSONFileRepository) store(list []User) error {
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating users dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("error writing users file: %w", err)
	}
	return nil
}

func (r *JSONFileRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, u := range list {
		if u.Username == user.Username {
			return nil, common.ErrConflict
		}
	}

	list = append(list, *user)
	if err := r.store(list); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *JSONFileRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, u := range list {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, common.ErrNotFound
}
