package dto

// ScheduledCourseRef identifies an already-committed (course, section) pair
// by catalog identifiers.
type ScheduledCourseRef struct {
	CourseID  string `json:"course_id" validate:"required"`
	SectionID string `json:"section_id"`
}

// RecommendationRequest carries the tuning knobs for a recommendation call.
// The academic profile itself comes from the authenticated user record.
type RecommendationRequest struct {
	Difficulty string               `json:"difficulty"`
	Semester   string               `json:"semester"`
	Scheduled  []ScheduledCourseRef `json:"scheduled,omitempty"`
}
