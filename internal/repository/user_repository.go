package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/smartcourse/advisor-api/internal/models"
	appErrors "github.com/smartcourse/advisor-api/pkg/errors"
)

// UserRepository is the narrow get/put capability the rest of the service
// depends on. How the record was obtained is invisible to consumers.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Put(ctx context.Context, user models.User) error
}

// MemoryUserRepository keeps user records in process memory.
type MemoryUserRepository struct {
	mu      sync.RWMutex
	byID    map[string]models.User
	byEmail map[string]string
}

// NewMemoryUserRepository constructs an empty in-memory user store.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byID:    make(map[string]models.User),
		byEmail: make(map[string]string),
	}
}

// GetByID returns the user with the given identifier.
func (r *MemoryUserRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, appErrors.ErrNotFound
	}
	return &user, nil
}

// GetByEmail returns the user registered under the given email address.
func (r *MemoryUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, appErrors.ErrNotFound
	}
	user := r.byID[id]
	return &user, nil
}

// Put inserts or replaces a user record.
func (r *MemoryUserRepository) Put(_ context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[user.ID] = user
	r.byEmail[normalizeEmail(user.Email)] = user.ID
	return nil
}

func (r *MemoryUserRepository) snapshot() map[string]models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make(map[string]models.User, len(r.byID))
	for id, user := range r.byID {
		users[id] = user
	}
	return users
}

func (r *MemoryUserRepository) replace(users map[string]models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID = make(map[string]models.User, len(users))
	r.byEmail = make(map[string]string, len(users))
	for id, user := range users {
		r.byID[id] = user
		r.byEmail[normalizeEmail(user.Email)] = id
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
