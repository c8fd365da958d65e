package models

// RecommendationPreferences are the user-supplied tuning knobs for a
// recommendation request.
type RecommendationPreferences struct {
	Difficulty string `json:"difficulty"`
	Semester   string `json:"semester"`
}

// ScheduledCourse is a (course, section) pair the user has already committed
// to this term. Only the section's time slots matter for conflict detection.
type ScheduledCourse struct {
	Course  Course        `json:"course"`
	Section CourseSection `json:"section"`
}

// RatedProfessor is the best-rated instructor found for a course.
type RatedProfessor struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

// CourseWithReason pairs a recommended course with a human-readable
// justification. Transient, produced per recommendation call.
type CourseWithReason struct {
	Course
	Reason        string          `json:"reason"`
	BestProfessor *RatedProfessor `json:"best_professor,omitempty"`
}
