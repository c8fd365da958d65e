package models

import (
	"strings"
	"time"
)

// CompletedCategory records what a user has finished within one graduation
// requirement category.
type CompletedCategory struct {
	Courses []string `json:"courses"`
	Credits int      `json:"credits"`
}

// User is a student profile. Completed courses are grouped by requirement
// category the way the registration flow records them.
type User struct {
	ID               string                       `json:"id"`
	Email            string                       `json:"email"`
	PasswordHash     string                       `json:"-"`
	Name             string                       `json:"name"`
	University       string                       `json:"university"`
	UniversityID     string                       `json:"university_id,omitempty"`
	Level            string                       `json:"level"`
	Interests        []string                     `json:"interests"`
	CompletedCourses map[string]CompletedCategory `json:"completed_courses"`
	CreatedAt        time.Time                    `json:"created_at"`
	UpdatedAt        time.Time                    `json:"updated_at"`
}

// CompletedSet flattens the per-category completed courses into one lookup
// set.
func (u User) CompletedSet() map[string]struct{} {
	set := make(map[string]struct{})
	for _, category := range u.CompletedCourses {
		for _, course := range category.Courses {
			set[course] = struct{}{}
		}
	}
	return set
}

// TotalCompletedCredits sums earned credits across all categories.
func (u User) TotalCompletedCredits() int {
	total := 0
	for _, category := range u.CompletedCourses {
		total += category.Credits
	}
	return total
}

// RecommendedDifficulty derives the preferred course tier from an academic
// level. Unknown levels default to Intermediate.
func RecommendedDifficulty(level string) Difficulty {
	switch strings.ToLower(level) {
	case "freshman":
		return DifficultyBeginner
	case "sophomore", "junior":
		return DifficultyIntermediate
	case "senior":
		return DifficultyAdvanced
	default:
		return DifficultyIntermediate
	}
}
