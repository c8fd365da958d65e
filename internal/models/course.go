package models

// CreditSystem identifies how a university counts academic terms.
type CreditSystem string

const (
	CreditSystemSemester  CreditSystem = "Semester"
	CreditSystemQuarter   CreditSystem = "Quarter"
	CreditSystemTrimester CreditSystem = "Trimester"
)

// Difficulty is a course tier and, derived from academic level, a user
// preference.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// University owns its full course list and graduation requirements. Course
// and section data are never shared across universities.
type University struct {
	ID                     string                 `json:"id"`
	Name                   string                 `json:"name"`
	Location               string                 `json:"location"`
	CreditSystem           CreditSystem           `json:"credit_system"`
	MaxCreditsPerTerm      int                    `json:"max_credits_per_term"`
	MinCreditsPerTerm      int                    `json:"min_credits_per_term"`
	GraduationRequirements GraduationRequirements `json:"graduation_requirements"`
	Courses                []Course               `json:"courses"`
}

// GraduationRequirements maps requirement categories to the credits and
// course codes that satisfy them.
type GraduationRequirements struct {
	TotalCredits int                            `json:"total_credits"`
	Categories   map[string]RequirementCategory `json:"categories"`
}

// RequirementCategory describes a single graduation requirement bucket.
type RequirementCategory struct {
	RequiredCredits int      `json:"required_credits"`
	Description     string   `json:"description"`
	Courses         []string `json:"courses"`
}

// Course is a catalog entry. Prerequisites reference course codes that may
// or may not exist in the same catalog; no cross-check is enforced.
type Course struct {
	ID                    string          `json:"id"`
	Code                  string          `json:"code"`
	Name                  string          `json:"name"`
	Credits               int             `json:"credits"`
	Description           string          `json:"description"`
	Prerequisites         []string        `json:"prerequisites"`
	Offered               string          `json:"offered"`
	Difficulty            Difficulty      `json:"difficulty"`
	Category              string          `json:"category"`
	Department            string          `json:"department"`
	SatisfiesRequirements []string        `json:"satisfies_requirements"`
	Sections              []CourseSection `json:"sections"`
	Professors            []Professor     `json:"professors,omitempty"`
}

// CourseSection belongs to exactly one course. Enrolled <= Capacity is
// expected but not enforced anywhere in the logic.
type CourseSection struct {
	ID            string     `json:"id"`
	SectionNumber string     `json:"section_number"`
	Instructor    string     `json:"instructor"`
	Schedule      []TimeSlot `json:"schedule"`
	Capacity      int        `json:"capacity"`
	Enrolled      int        `json:"enrolled"`
	Location      string     `json:"location"`
}

// Professor names an instructor listed for a course.
type Professor struct {
	Name string `json:"name"`
}
