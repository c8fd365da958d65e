package service

import (
	"go.uber.org/zap"

	"github.com/smartcourse/advisor-api/internal/dto"
	"github.com/smartcourse/advisor-api/internal/models"
	appErrors "github.com/smartcourse/advisor-api/pkg/errors"
)

type universityCatalog interface {
	List() []models.University
	ByID(id string) *models.University
	ByName(name string) *models.University
	Resolve(id, name string) *models.University
}

// CatalogService exposes read access to the static university catalog.
type CatalogService struct {
	repo   universityCatalog
	logger *zap.Logger
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(repo universityCatalog, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{repo: repo, logger: logger}
}

// List returns every university.
func (s *CatalogService) List() []models.University {
	return s.repo.List()
}

// Get returns a university by id.
func (s *CatalogService) Get(id string) (*models.University, error) {
	if uni := s.repo.ByID(id); uni != nil {
		return uni, nil
	}
	return nil, appErrors.ErrUniversityNotFound
}

// Resolve returns a university by id, falling back to fuzzy name match.
func (s *CatalogService) Resolve(id, name string) (*models.University, error) {
	if uni := s.repo.Resolve(id, name); uni != nil {
		return uni, nil
	}
	return nil, appErrors.ErrUniversityNotFound
}

// Requirements returns the graduation requirements for a university.
func (s *CatalogService) Requirements(universityID string) (*models.GraduationRequirements, error) {
	uni, err := s.Get(universityID)
	if err != nil {
		return nil, err
	}
	return &uni.GraduationRequirements, nil
}

// CoursesByCategory returns a university's courses within one category.
func (s *CatalogService) CoursesByCategory(universityID, category string) ([]models.Course, error) {
	uni, err := s.Get(universityID)
	if err != nil {
		return nil, err
	}
	courses := make([]models.Course, 0)
	for _, course := range uni.Courses {
		if course.Category == category {
			courses = append(courses, course)
		}
	}
	return courses, nil
}

// ResolveScheduled maps course and section references onto catalog records.
// References that do not resolve are dropped; an empty section id selects
// the course's first section.
func (s *CatalogService) ResolveScheduled(university *models.University, refs []dto.ScheduledCourseRef) []models.ScheduledCourse {
	if university == nil || len(refs) == 0 {
		return nil
	}
	byID := make(map[string]*models.Course, len(university.Courses))
	for i := range university.Courses {
		byID[university.Courses[i].ID] = &university.Courses[i]
	}

	scheduled := make([]models.ScheduledCourse, 0, len(refs))
	for _, ref := range refs {
		course, ok := byID[ref.CourseID]
		if !ok || len(course.Sections) == 0 {
			s.logger.Debug("dropping unresolvable scheduled course reference",
				zap.String("course_id", ref.CourseID),
				zap.String("section_id", ref.SectionID))
			continue
		}
		section := course.Sections[0]
		if ref.SectionID != "" {
			found := false
			for _, candidate := range course.Sections {
				if candidate.ID == ref.SectionID {
					section = candidate
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		scheduled = append(scheduled, models.ScheduledCourse{Course: *course, Section: section})
	}
	return scheduled
}

// RequiredCourses returns the catalog courses whose codes satisfy a
// graduation requirement category. An unknown category yields an empty list.
func (s *CatalogService) RequiredCourses(universityID, category string) ([]models.Course, error) {
	uni, err := s.Get(universityID)
	if err != nil {
		return nil, err
	}
	requirement, ok := uni.GraduationRequirements.Categories[category]
	if !ok {
		return []models.Course{}, nil
	}
	codes := make(map[string]struct{}, len(requirement.Courses))
	for _, code := range requirement.Courses {
		codes[code] = struct{}{}
	}
	courses := make([]models.Course, 0)
	for _, course := range uni.Courses {
		if _, ok := codes[course.Code]; ok {
			courses = append(courses, course)
		}
	}
	return courses, nil
}
