package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRatingSource struct {
	rating float64
	found  bool
	err    error
	calls  int
}

func (f *fakeRatingSource) Rating(_ context.Context, _, _ string) (float64, bool, error) {
	f.calls++
	return f.rating, f.found, f.err
}

func newTestRatingService(source RatingSource, enabled bool) (*RatingService, *stubCacheRepo) {
	cacheRepo := &stubCacheRepo{}
	cacheSvc := NewCacheService(cacheRepo, nil, time.Minute, zap.NewNop(), true)
	return NewRatingService(RatingServiceParams{
		Source:  source,
		Cache:   cacheSvc,
		Logger:  zap.NewNop(),
		Enabled: enabled,
	}), cacheRepo
}

func TestRatingServiceCachesSuccessfulLookups(t *testing.T) {
	source := &fakeRatingSource{rating: 4.5, found: true}
	svc, _ := newTestRatingService(source, true)
	ctx := context.Background()

	rating, found := svc.Lookup(ctx, "Dr. Smith", "Georgia Institute of Technology")
	require.True(t, found)
	assert.InDelta(t, 4.5, rating, 0.001)
	assert.Equal(t, 1, source.calls)

	rating, found = svc.Lookup(ctx, "Dr. Smith", "Georgia Institute of Technology")
	require.True(t, found)
	assert.InDelta(t, 4.5, rating, 0.001)
	assert.Equal(t, 1, source.calls, "second lookup is served from cache")
}

func TestRatingServiceDoesNotCacheFailures(t *testing.T) {
	source := &fakeRatingSource{found: false}
	svc, cacheRepo := newTestRatingService(source, true)
	ctx := context.Background()

	_, found := svc.Lookup(ctx, "Dr. Nobody", "Nowhere University")
	assert.False(t, found)
	_, found = svc.Lookup(ctx, "Dr. Nobody", "Nowhere University")
	assert.False(t, found)

	assert.Equal(t, 2, source.calls, "absent results are retried")
	assert.Empty(t, cacheRepo.store)
}

func TestRatingServiceSwallowsSourceErrors(t *testing.T) {
	source := &fakeRatingSource{err: assert.AnError}
	svc, _ := newTestRatingService(source, true)

	rating, found := svc.Lookup(context.Background(), "Dr. Smith", "Georgia Institute of Technology")
	assert.False(t, found)
	assert.Zero(t, rating)
}

func TestRatingServiceDisabledSkipsSource(t *testing.T) {
	source := &fakeRatingSource{rating: 4.5, found: true}
	svc, _ := newTestRatingService(source, false)

	_, found := svc.Lookup(context.Background(), "Dr. Smith", "Georgia Institute of Technology")
	assert.False(t, found)
	assert.Zero(t, source.calls)
}
