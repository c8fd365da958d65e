package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func slot(day, start, end string) TimeSlot {
	return TimeSlot{Day: day, StartTime: start, EndTime: end, Type: SlotLecture}
}

func TestTimeSlotOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeSlot
		want bool
	}{
		{"same window", slot("Monday", "10:00", "11:00"), slot("Monday", "10:00", "11:00"), true},
		{"partial overlap", slot("Monday", "10:00", "11:00"), slot("Monday", "10:30", "11:30"), true},
		{"contained", slot("Monday", "09:00", "12:00"), slot("Monday", "10:00", "11:00"), true},
		{"back to back", slot("Monday", "10:00", "11:00"), slot("Monday", "11:00", "12:00"), false},
		{"different day", slot("Monday", "10:00", "11:00"), slot("Tuesday", "10:00", "11:00"), false},
		{"disjoint", slot("Monday", "08:00", "09:00"), slot("Monday", "10:00", "11:00"), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a), "overlap must be symmetric")
		})
	}
}

func TestCourseConflictsWithAnySection(t *testing.T) {
	course := Course{
		ID: "cs-1",
		Sections: []CourseSection{
			{ID: "s1", Schedule: []TimeSlot{slot("Monday", "10:00", "11:00")}},
			{ID: "s2", Schedule: []TimeSlot{slot("Wednesday", "14:00", "15:00")}},
		},
	}

	taken := []CourseSection{{ID: "taken", Schedule: []TimeSlot{slot("Wednesday", "14:30", "15:30")}}}

	// The Monday section would fit, but a clash in any section rejects the
	// whole course.
	assert.True(t, course.ConflictsWith(taken))

	free := []CourseSection{{ID: "free", Schedule: []TimeSlot{slot("Friday", "09:00", "10:00")}}}
	assert.False(t, course.ConflictsWith(free))
}

func TestCourseConflictsWithEmptyInputs(t *testing.T) {
	course := Course{ID: "cs-1", Sections: []CourseSection{{ID: "s1", Schedule: []TimeSlot{slot("Monday", "10:00", "11:00")}}}}

	assert.False(t, course.ConflictsWith(nil))
	assert.False(t, Course{ID: "no-sections"}.ConflictsWith([]CourseSection{{Schedule: []TimeSlot{slot("Monday", "10:00", "11:00")}}}))
}

func TestRecommendedDifficulty(t *testing.T) {
	assert.Equal(t, DifficultyBeginner, RecommendedDifficulty("Freshman"))
	assert.Equal(t, DifficultyIntermediate, RecommendedDifficulty("sophomore"))
	assert.Equal(t, DifficultyIntermediate, RecommendedDifficulty("Junior"))
	assert.Equal(t, DifficultyAdvanced, RecommendedDifficulty("senior"))
	assert.Equal(t, DifficultyIntermediate, RecommendedDifficulty("graduate"))
	assert.Equal(t, DifficultyIntermediate, RecommendedDifficulty(""))
}

func TestUserCompletedSetFlattensCategories(t *testing.T) {
	user := User{CompletedCourses: map[string]CompletedCategory{
		"Core":      {Courses: []string{"CS 1301", "CS 1331"}, Credits: 6},
		"Electives": {Courses: []string{"PSYC 1101"}, Credits: 3},
	}}

	set := user.CompletedSet()
	assert.Len(t, set, 3)
	assert.Contains(t, set, "CS 1301")
	assert.Contains(t, set, "PSYC 1101")
	assert.Equal(t, 9, user.TotalCompletedCredits())
}
