package service

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/smartcourse/advisor-api/internal/models"
)

type universityResolver interface {
	Resolve(id, name string) *models.University
}

type ratingLookup interface {
	Lookup(ctx context.Context, instructor, university string) (float64, bool)
}

// RecommendationServiceConfig tunes list sizing and response caching.
type RecommendationServiceConfig struct {
	MaxResults       int
	CategoryTarget   int
	ResponseCacheTTL time.Duration
}

// RecommendationService produces ranked, category-diverse course suggestions
// for a user at their university.
type RecommendationService struct {
	catalog universityResolver
	ratings ratingLookup
	cache   *CacheService
	metrics *MetricsService
	logger  *zap.Logger
	cfg     RecommendationServiceConfig
}

// RecommendationServiceParams groups constructor dependencies.
type RecommendationServiceParams struct {
	Catalog universityResolver
	Ratings ratingLookup
	Cache   *CacheService
	Metrics *MetricsService
	Logger  *zap.Logger
	Config  RecommendationServiceConfig
}

// NewRecommendationService constructs a RecommendationService with sane
// defaults.
func NewRecommendationService(params RecommendationServiceParams) *RecommendationService {
	cfg := params.Config
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 6
	}
	if cfg.CategoryTarget <= 0 {
		cfg.CategoryTarget = 3
	}
	if cfg.ResponseCacheTTL <= 0 {
		cfg.ResponseCacheTTL = 5 * time.Minute
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecommendationService{
		catalog: params.Catalog,
		ratings: params.Ratings,
		cache:   params.Cache,
		metrics: params.Metrics,
		logger:  logger,
		cfg:     cfg,
	}
}

// RecommendationInput bundles everything a recommendation run needs.
type RecommendationInput struct {
	User        models.User
	Preferences models.RecommendationPreferences
	Scheduled   []models.ScheduledCourse
}

type ratedCourse struct {
	course models.Course
	best   *models.RatedProfessor
}

// Recommend returns up to MaxResults courses with reasons. A university that
// cannot be resolved yields an empty list, never an error; the caller cannot
// distinguish that from an empty eligible set.
func (s *RecommendationService) Recommend(ctx context.Context, input RecommendationInput) ([]models.CourseWithReason, bool, error) {
	university := s.catalog.Resolve(input.User.UniversityID, input.User.University)
	if university == nil {
		s.logger.Warn("university not found for recommendation",
			zap.String("university_id", input.User.UniversityID),
			zap.String("university", input.User.University))
		return []models.CourseWithReason{}, false, nil
	}

	cacheKey := s.cacheKey(university.ID, input)
	if s.cache.Enabled() {
		var cached []models.CourseWithReason
		if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
			return cached, true, nil
		}
	}

	eligible := s.eligibleCourses(university, input)
	ranked := s.rankByRating(ctx, eligible, university.Name)
	ranked = s.preferDifficulty(ranked, models.RecommendedDifficulty(input.User.Level))
	result := s.diversify(ranked)

	if s.metrics != nil {
		s.metrics.CountRecommendation()
	}
	if err := s.cache.Set(ctx, cacheKey, result, s.cfg.ResponseCacheTTL); err != nil {
		s.logger.Warn("recommendation cache write failed", zap.String("key", cacheKey), zap.Error(err))
	}
	return result, false, nil
}

// eligibleCourses drops completed courses, courses with unmet prerequisites,
// and courses whose sections collide with the already-committed schedule.
// Completion and prerequisites are both matched against the identifiers the
// profile records per category; no cross-check against the catalog is made.
func (s *RecommendationService) eligibleCourses(university *models.University, input RecommendationInput) []models.Course {
	completed := input.User.CompletedSet()
	scheduledSections := make([]models.CourseSection, 0, len(input.Scheduled))
	for _, sc := range input.Scheduled {
		scheduledSections = append(scheduledSections, sc.Section)
	}

	eligible := make([]models.Course, 0, len(university.Courses))
	for _, course := range university.Courses {
		if _, done := completed[course.ID]; done {
			continue
		}
		if !prerequisitesMet(course, completed) {
			continue
		}
		if course.ConflictsWith(scheduledSections) {
			continue
		}
		eligible = append(eligible, course)
	}
	return eligible
}

// rankByRating resolves each course's best-rated professor concurrently and
// orders the list by that rating, highest first. Unrated courses rank as
// zero; a failed lookup neither penalises nor excludes a course.
func (s *RecommendationService) rankByRating(ctx context.Context, courses []models.Course, universityName string) []ratedCourse {
	rated := make([]ratedCourse, len(courses))

	var wg sync.WaitGroup
	for i, course := range courses {
		wg.Add(1)
		go func(i int, course models.Course) {
			defer wg.Done()
			rated[i] = ratedCourse{course: course, best: s.bestProfessor(ctx, course, universityName)}
		}(i, course)
	}
	wg.Wait()

	sort.SliceStable(rated, func(i, j int) bool {
		return ratingOf(rated[i]) > ratingOf(rated[j])
	})
	return rated
}

func (s *RecommendationService) bestProfessor(ctx context.Context, course models.Course, universityName string) *models.RatedProfessor {
	if s.ratings == nil || len(course.Professors) == 0 {
		return nil
	}
	best := models.RatedProfessor{}
	for _, prof := range course.Professors {
		rating, found := s.ratings.Lookup(ctx, prof.Name, universityName)
		if found && rating > 0 && rating > best.Rating {
			best = models.RatedProfessor{Name: prof.Name, Rating: rating}
		}
	}
	if best.Rating > 0 {
		return &best
	}
	return nil
}

// preferDifficulty moves courses matching the preferred tier ahead of the
// rest while keeping the rating order inside each partition. Courses with no
// difficulty count as matching.
func (s *RecommendationService) preferDifficulty(ranked []ratedCourse, preferred models.Difficulty) []ratedCourse {
	matching := make([]ratedCourse, 0, len(ranked))
	others := make([]ratedCourse, 0, len(ranked))
	for _, rc := range ranked {
		if rc.course.Difficulty == "" || rc.course.Difficulty == preferred {
			matching = append(matching, rc)
		} else {
			others = append(others, rc)
		}
	}
	return append(matching, others...)
}

// diversify walks the ranked list twice: first picking one course per
// category until CategoryTarget distinct categories are represented, then
// filling up to MaxResults from the top of the same list.
func (s *RecommendationService) diversify(ranked []ratedCourse) []models.CourseWithReason {
	result := make([]models.CourseWithReason, 0, s.cfg.MaxResults)
	seenCategories := make(map[string]struct{})
	picked := make(map[string]struct{})

	for _, rc := range ranked {
		if _, seen := seenCategories[rc.course.Category]; seen {
			continue
		}
		seenCategories[rc.course.Category] = struct{}{}
		picked[rc.course.ID] = struct{}{}
		result = append(result, models.CourseWithReason{
			Course:        rc.course,
			Reason:        fmt.Sprintf("Recommended for category diversity: %s.", rc.course.Category),
			BestProfessor: rc.best,
		})
		if len(result) >= s.cfg.CategoryTarget {
			break
		}
	}

	for _, rc := range ranked {
		if len(result) >= s.cfg.MaxResults {
			break
		}
		if _, already := picked[rc.course.ID]; already {
			continue
		}
		picked[rc.course.ID] = struct{}{}
		reason := "Recommended based on your profile and schedule."
		if rc.best != nil {
			reason = fmt.Sprintf("Taught by highly rated professor %s (%.1f/5.0).", rc.best.Name, rc.best.Rating)
		}
		result = append(result, models.CourseWithReason{
			Course:        rc.course,
			Reason:        reason,
			BestProfessor: rc.best,
		})
	}

	return result
}

func (s *RecommendationService) cacheKey(universityID string, input RecommendationInput) string {
	parts := []string{
		input.User.ID,
		fmt.Sprintf("%d", input.User.UpdatedAt.UnixNano()),
		universityID,
		input.Preferences.Difficulty,
		input.Preferences.Semester,
	}
	for _, sc := range input.Scheduled {
		parts = append(parts, sc.Course.ID+"/"+sc.Section.ID)
	}
	sum := sha1.Sum([]byte(strings.Join(parts, "|")))
	return fmt.Sprintf("rec:%s:%s", input.User.ID, hex.EncodeToString(sum[:]))
}

func prerequisitesMet(course models.Course, completed map[string]struct{}) bool {
	for _, prereq := range course.Prerequisites {
		if _, ok := completed[prereq]; !ok {
			return false
		}
	}
	return true
}

func ratingOf(rc ratedCourse) float64 {
	if rc.best == nil {
		return 0
	}
	return rc.best.Rating
}
