package dto

import "github.com/smartcourse/advisor-api/internal/models"

// UniversitySummary is the list-view shape of a university, without the
// full course dump.
type UniversitySummary struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Location     string              `json:"location"`
	CreditSystem models.CreditSystem `json:"credit_system"`
	CourseCount  int                 `json:"course_count"`
}

// NewUniversitySummary projects a university onto its summary shape.
func NewUniversitySummary(uni models.University) UniversitySummary {
	return UniversitySummary{
		ID:           uni.ID,
		Name:         uni.Name,
		Location:     uni.Location,
		CreditSystem: uni.CreditSystem,
		CourseCount:  len(uni.Courses),
	}
}
