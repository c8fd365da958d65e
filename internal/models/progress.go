package models

// CategoryStatus reflects how far along one requirement category is.
type CategoryStatus string

const (
	CategoryCompleted  CategoryStatus = "completed"
	CategoryInProgress CategoryStatus = "in-progress"
	CategoryNotStarted CategoryStatus = "not-started"
)

// CategoryProgress summarises one graduation requirement category for a
// user.
type CategoryProgress struct {
	Category         string         `json:"category"`
	CompletedCredits int            `json:"completed_credits"`
	RequiredCredits  int            `json:"required_credits"`
	Description      string         `json:"description"`
	Status           CategoryStatus `json:"status"`
}

// GraduationProgress is the degree-audit summary for a user at their
// university.
type GraduationProgress struct {
	UniversityID     string             `json:"university_id"`
	UniversityName   string             `json:"university_name"`
	CompletedCredits int                `json:"completed_credits"`
	RequiredCredits  int                `json:"required_credits"`
	Percentage       float64            `json:"percentage"`
	Categories       []CategoryProgress `json:"categories"`
}
