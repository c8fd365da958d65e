package models

// SlotType tags what kind of meeting a time slot is.
type SlotType string

const (
	SlotLecture    SlotType = "Lecture"
	SlotLab        SlotType = "Lab"
	SlotDiscussion SlotType = "Discussion"
	SlotRecitation SlotType = "Recitation"
)

// TimeSlot is a weekly meeting window. StartTime and EndTime are zero-padded
// 24-hour "HH:MM" strings; lexical comparison matches chronological order
// only because of that format.
type TimeSlot struct {
	Day       string   `json:"day"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	Type      SlotType `json:"type"`
}

// Overlaps reports whether two weekly slots collide: same day and
// overlapping half-open [start, end) intervals.
func (t TimeSlot) Overlaps(other TimeSlot) bool {
	return t.Day == other.Day && other.StartTime < t.EndTime && other.EndTime > t.StartTime
}

// ConflictsWith reports whether any of the course's sections' slots overlap
// any slot of any already-scheduled section. All sections of the candidate
// course are checked indiscriminately, so a course can be rejected even when
// a different section of it would fit.
func (c Course) ConflictsWith(scheduled []CourseSection) bool {
	if len(c.Sections) == 0 {
		return false
	}
	for _, section := range c.Sections {
		for _, taken := range scheduled {
			for _, takenSlot := range taken.Schedule {
				for _, slot := range section.Schedule {
					if takenSlot.Overlaps(slot) {
						return true
					}
				}
			}
		}
	}
	return false
}
