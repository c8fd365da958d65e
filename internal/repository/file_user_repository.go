package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/smartcourse/advisor-api/internal/models"
)

// FileUserRepository persists the whole user directory as a single JSON blob
// on every write, mirroring how the web client kept the profile under one
// local-storage key.
type FileUserRepository struct {
	mu   sync.Mutex
	path string
	mem  *MemoryUserRepository
}

type userBlob struct {
	Users map[string]models.User `json:"users"`
}

// NewFileUserRepository loads the blob at path, creating an empty store when
// the file does not exist yet.
func NewFileUserRepository(path string) (*FileUserRepository, error) {
	repo := &FileUserRepository{path: path, mem: NewMemoryUserRepository()}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return repo, nil
		}
		return nil, fmt.Errorf("read user store %s: %w", path, err)
	}

	var blob userBlob
	if err := json.Unmarshal(raw, &blob); err != nil {
		return nil, fmt.Errorf("decode user store %s: %w", path, err)
	}
	if blob.Users != nil {
		repo.mem.replace(blob.Users)
	}
	return repo, nil
}

// GetByID returns the user with the given identifier.
func (r *FileUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.mem.GetByID(ctx, id)
}

// GetByEmail returns the user registered under the given email address.
func (r *FileUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.mem.GetByEmail(ctx, email)
}

// Put stores the user and rewrites the backing file.
func (r *FileUserRepository) Put(ctx context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.mem.Put(ctx, user); err != nil {
		return err
	}
	return r.flush()
}

func (r *FileUserRepository) flush() error {
	blob := userBlob{Users: r.mem.snapshot()}
	payload, err := json.MarshalIndent(blob, "", "  ")
	if err != nil {
		return fmt.Errorf("encode user store: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create user store dir: %w", err)
		}
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write user store: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace user store: %w", err)
	}
	return nil
}
