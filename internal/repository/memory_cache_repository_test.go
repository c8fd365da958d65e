package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/smartcourse/advisor-api/pkg/errors"
)

func TestMemoryCacheRepositoryRoundTrip(t *testing.T) {
	repo := NewMemoryCacheRepository(8)
	ctx := context.Background()

	var missed string
	assert.ErrorIs(t, repo.Get(ctx, "absent", &missed), appErrors.ErrCacheMiss)

	require.NoError(t, repo.Set(ctx, "rating:Dr. Smith|GT", 4.8, time.Minute))

	var rating float64
	require.NoError(t, repo.Get(ctx, "rating:Dr. Smith|GT", &rating))
	assert.Equal(t, 4.8, rating)
}

func TestMemoryCacheRepositoryExpiry(t *testing.T) {
	repo := NewMemoryCacheRepository(8)
	ctx := context.Background()

	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return current }

	require.NoError(t, repo.Set(ctx, "k", "v", time.Minute))

	var got string
	require.NoError(t, repo.Get(ctx, "k", &got))

	current = current.Add(2 * time.Minute)
	assert.ErrorIs(t, repo.Get(ctx, "k", &got), appErrors.ErrCacheMiss)
	assert.Equal(t, 0, repo.Len(), "expired entry is removed on access")
}

func TestMemoryCacheRepositoryEvictsLeastRecentlyUsed(t *testing.T) {
	repo := NewMemoryCacheRepository(3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Set(ctx, fmt.Sprintf("k%d", i), i, 0))
	}

	// Touch k0 so k1 becomes the eviction candidate.
	var v int
	require.NoError(t, repo.Get(ctx, "k0", &v))

	require.NoError(t, repo.Set(ctx, "k3", 3, 0))
	assert.Equal(t, 3, repo.Len())

	assert.ErrorIs(t, repo.Get(ctx, "k1", &v), appErrors.ErrCacheMiss)
	require.NoError(t, repo.Get(ctx, "k0", &v))
	require.NoError(t, repo.Get(ctx, "k3", &v))
}

func TestMemoryCacheRepositoryDeleteByPattern(t *testing.T) {
	repo := NewMemoryCacheRepository(8)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "rec:u1:aaa", 1, 0))
	require.NoError(t, repo.Set(ctx, "rec:u1:bbb", 2, 0))
	require.NoError(t, repo.Set(ctx, "rec:u2:ccc", 3, 0))

	require.NoError(t, repo.DeleteByPattern(ctx, "rec:u1:*"))

	var v int
	assert.ErrorIs(t, repo.Get(ctx, "rec:u1:aaa", &v), appErrors.ErrCacheMiss)
	assert.ErrorIs(t, repo.Get(ctx, "rec:u1:bbb", &v), appErrors.ErrCacheMiss)
	require.NoError(t, repo.Get(ctx, "rec:u2:ccc", &v))
}
