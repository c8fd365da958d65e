package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// RatingSource resolves an (instructor, institution) pair to a rating in
// [0,5]. found reports whether a rating exists; err is reserved for
// transport-level failures. Implementations are swappable: the real scraper
// adapter in production, a deterministic fake in tests.
type RatingSource interface {
	Rating(ctx context.Context, instructor, university string) (rating float64, found bool, err error)
}

// RatingService is a best-effort, cached rating lookup. It never fails the
// caller: every error path resolves to "no rating".
type RatingService struct {
	source   RatingSource
	cache    *CacheService
	metrics  *MetricsService
	logger   *zap.Logger
	cacheTTL time.Duration
	enabled  bool
}

// RatingServiceParams groups constructor dependencies.
type RatingServiceParams struct {
	Source   RatingSource
	Cache    *CacheService
	Metrics  *MetricsService
	Logger   *zap.Logger
	CacheTTL time.Duration
	Enabled  bool
}

// NewRatingService constructs a RatingService.
func NewRatingService(params RatingServiceParams) *RatingService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ttl := params.CacheTTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &RatingService{
		source:   params.Source,
		cache:    params.Cache,
		metrics:  params.Metrics,
		logger:   logger,
		cacheTTL: ttl,
		enabled:  params.Enabled,
	}
}

// Lookup returns the rating for an instructor at a university, or false when
// none could be obtained. Only successful lookups are cached.
func (s *RatingService) Lookup(ctx context.Context, instructor, university string) (float64, bool) {
	if s == nil || !s.enabled || s.source == nil {
		return 0, false
	}

	key := ratingCacheKey(instructor, university)
	var cached float64
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, true
	}

	start := time.Now()
	rating, found, err := s.source.Rating(ctx, instructor, university)
	duration := time.Since(start)
	if err != nil {
		s.observe("error", duration)
		s.logger.Debug("rating lookup failed",
			zap.String("instructor", instructor),
			zap.String("university", university),
			zap.Error(err))
		return 0, false
	}
	if !found {
		s.observe("absent", duration)
		return 0, false
	}

	s.observe("found", duration)
	if err := s.cache.Set(ctx, key, rating, s.cacheTTL); err != nil {
		s.logger.Warn("rating cache write failed", zap.String("key", key), zap.Error(err))
	}
	return rating, true
}

func (s *RatingService) observe(outcome string, duration time.Duration) {
	if s.metrics != nil {
		s.metrics.ObserveRatingLookup(outcome, duration)
	}
}

func ratingCacheKey(instructor, university string) string {
	return fmt.Sprintf("rating:%s|%s", instructor, university)
}
