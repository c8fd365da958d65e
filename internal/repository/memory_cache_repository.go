package repository

import (
	"container/list"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sync"
	"time"

	appErrors "github.com/smartcourse/advisor-api/pkg/errors"
)

// MemoryCacheRepository is a bounded in-process drop-in for the Redis cache.
// Entries expire after their TTL and the least recently used entry is
// evicted once MaxEntries is exceeded, so a long-lived session can no longer
// grow the cache without limit.
type MemoryCacheRepository struct {
	mu         sync.Mutex
	maxEntries int
	order      *list.List
	entries    map[string]*list.Element
	now        func() time.Time
}

type memoryCacheEntry struct {
	key       string
	payload   []byte
	expiresAt time.Time
}

// NewMemoryCacheRepository constructs the cache. maxEntries <= 0 falls back
// to a sensible default.
func NewMemoryCacheRepository(maxEntries int) *MemoryCacheRepository {
	if maxEntries <= 0 {
		maxEntries = 1024
	}
	return &MemoryCacheRepository{
		maxEntries: maxEntries,
		order:      list.New(),
		entries:    make(map[string]*list.Element),
		now:        time.Now,
	}
}

// Get retrieves and unmarshals the cached value into the provided destination.
func (r *MemoryCacheRepository) Get(_ context.Context, key string, dest interface{}) error {
	r.mu.Lock()
	elem, ok := r.entries[key]
	if !ok {
		r.mu.Unlock()
		return appErrors.ErrCacheMiss
	}
	entry := elem.Value.(*memoryCacheEntry)
	if !entry.expiresAt.IsZero() && r.now().After(entry.expiresAt) {
		r.removeLocked(elem)
		r.mu.Unlock()
		return appErrors.ErrCacheMiss
	}
	r.order.MoveToFront(elem)
	payload := entry.payload
	r.mu.Unlock()

	if err := json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("unmarshal cache value for %s: %w", key, err)
	}
	return nil
}

// Set marshals the provided value and stores it with the given TTL. A zero
// TTL stores the entry until it is evicted.
func (r *MemoryCacheRepository) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value for %s: %w", key, err)
	}

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = r.now().Add(ttl)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if elem, ok := r.entries[key]; ok {
		entry := elem.Value.(*memoryCacheEntry)
		entry.payload = payload
		entry.expiresAt = expiresAt
		r.order.MoveToFront(elem)
		return nil
	}

	elem := r.order.PushFront(&memoryCacheEntry{key: key, payload: payload, expiresAt: expiresAt})
	r.entries[key] = elem

	for len(r.entries) > r.maxEntries {
		oldest := r.order.Back()
		if oldest == nil {
			break
		}
		r.removeLocked(oldest)
	}
	return nil
}

// DeleteByPattern removes cached entries whose keys match the glob pattern.
func (r *MemoryCacheRepository) DeleteByPattern(_ context.Context, pattern string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, elem := range r.entries {
		matched, err := path.Match(pattern, key)
		if err != nil {
			return fmt.Errorf("invalid cache pattern %s: %w", pattern, err)
		}
		if matched {
			r.removeLocked(elem)
		}
	}
	return nil
}

// Len reports the number of live entries, expired ones included until they
// are touched.
func (r *MemoryCacheRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *MemoryCacheRepository) removeLocked(elem *list.Element) {
	entry := elem.Value.(*memoryCacheEntry)
	r.order.Remove(elem)
	delete(r.entries, entry.key)
}
