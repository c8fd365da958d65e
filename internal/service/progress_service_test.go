package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smartcourse/advisor-api/internal/models"
	appErrors "github.com/smartcourse/advisor-api/pkg/errors"
)

func progressUniversity() *models.University {
	return &models.University{
		ID:   "gt",
		Name: "Georgia Institute of Technology",
		GraduationRequirements: models.GraduationRequirements{
			TotalCredits: 30,
			Categories: map[string]models.RequirementCategory{
				"Mathematics":     {RequiredCredits: 9, Description: "Core mathematics"},
				"Humanities":      {RequiredCredits: 6, Description: "Humanities electives"},
				"Social Sciences": {RequiredCredits: 6, Description: "Social science electives"},
			},
		},
	}
}

func TestProgressForUser(t *testing.T) {
	svc := NewProgressService(&fakeCatalog{university: progressUniversity()}, zap.NewNop())

	user := models.User{
		UniversityID: "gt",
		CompletedCourses: map[string]models.CompletedCategory{
			"Mathematics": {Courses: []string{"MATH 1551", "MATH 1552", "MATH 1554"}, Credits: 9},
			"Humanities":  {Courses: []string{"ENGL 1101"}, Credits: 3},
		},
	}

	progress, err := svc.ForUser(user)
	require.NoError(t, err)

	assert.Equal(t, "gt", progress.UniversityID)
	assert.Equal(t, 12, progress.CompletedCredits)
	assert.Equal(t, 30, progress.RequiredCredits)
	assert.InDelta(t, 40.0, progress.Percentage, 0.001)

	require.Len(t, progress.Categories, 3)
	assert.Equal(t, "Humanities", progress.Categories[0].Category)
	assert.Equal(t, "Mathematics", progress.Categories[1].Category)
	assert.Equal(t, "Social Sciences", progress.Categories[2].Category)

	assert.Equal(t, models.CategoryInProgress, progress.Categories[0].Status)
	assert.Equal(t, models.CategoryCompleted, progress.Categories[1].Status)
	assert.Equal(t, models.CategoryNotStarted, progress.Categories[2].Status)
}

func TestProgressPercentageCapsAtHundred(t *testing.T) {
	svc := NewProgressService(&fakeCatalog{university: progressUniversity()}, zap.NewNop())

	user := models.User{
		UniversityID: "gt",
		CompletedCourses: map[string]models.CompletedCategory{
			"Mathematics": {Credits: 50},
		},
	}

	progress, err := svc.ForUser(user)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, progress.Percentage, 0.001)
}

func TestProgressUnknownUniversity(t *testing.T) {
	svc := NewProgressService(&fakeCatalog{}, zap.NewNop())

	_, err := svc.ForUser(models.User{UniversityID: "missing"})
	assert.ErrorIs(t, err, appErrors.ErrUniversityNotFound)
}
