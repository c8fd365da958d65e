package service

import (
	"sort"

	"go.uber.org/zap"

	"github.com/smartcourse/advisor-api/internal/models"
	appErrors "github.com/smartcourse/advisor-api/pkg/errors"
)

// ProgressService computes degree-audit summaries against a university's
// graduation requirements.
type ProgressService struct {
	catalog universityResolver
	logger  *zap.Logger
}

// NewProgressService constructs a ProgressService.
func NewProgressService(catalog universityResolver, logger *zap.Logger) *ProgressService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProgressService{catalog: catalog, logger: logger}
}

// ForUser summarises the user's progress towards graduation. Categories are
// reported in stable alphabetical order.
func (s *ProgressService) ForUser(user models.User) (*models.GraduationProgress, error) {
	university := s.catalog.Resolve(user.UniversityID, user.University)
	if university == nil {
		return nil, appErrors.ErrUniversityNotFound
	}

	requirements := university.GraduationRequirements
	completedTotal := user.TotalCompletedCredits()

	percentage := 0.0
	if requirements.TotalCredits > 0 {
		percentage = float64(completedTotal) / float64(requirements.TotalCredits) * 100
		if percentage > 100 {
			percentage = 100
		}
	}

	names := make([]string, 0, len(requirements.Categories))
	for name := range requirements.Categories {
		names = append(names, name)
	}
	sort.Strings(names)

	categories := make([]models.CategoryProgress, 0, len(names))
	for _, name := range names {
		requirement := requirements.Categories[name]
		completed := user.CompletedCourses[name].Credits
		categories = append(categories, models.CategoryProgress{
			Category:         name,
			CompletedCredits: completed,
			RequiredCredits:  requirement.RequiredCredits,
			Description:      requirement.Description,
			Status:           categoryStatus(completed, requirement.RequiredCredits),
		})
	}

	return &models.GraduationProgress{
		UniversityID:     university.ID,
		UniversityName:   university.Name,
		CompletedCredits: completedTotal,
		RequiredCredits:  requirements.TotalCredits,
		Percentage:       percentage,
		Categories:       categories,
	}, nil
}

func categoryStatus(completed, required int) models.CategoryStatus {
	switch {
	case completed >= required && required > 0:
		return models.CategoryCompleted
	case completed > 0:
		return models.CategoryInProgress
	default:
		return models.CategoryNotStarted
	}
}
