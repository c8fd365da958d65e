package repository

import "github.com/smartcourse/advisor-api/internal/models"

// SeedUniversities returns the built-in catalog data set.
func SeedUniversities() []models.University {
	return []models.University{
		{
			ID:                "gt",
			Name:              "Georgia Institute of Technology",
			Location:          "Atlanta, GA",
			CreditSystem:      models.CreditSystemSemester,
			MaxCreditsPerTerm: 21,
			MinCreditsPerTerm: 12,
			GraduationRequirements: models.GraduationRequirements{
				TotalCredits: 122,
				Categories: map[string]models.RequirementCategory{
					"Social Sciences": {
						RequiredCredits: 6,
						Description:     "Courses in psychology, sociology, economics, political science, or history",
						Courses:         []string{"PSYC 1101", "ECON 2100", "HIST 2111", "HIST 2112", "POL 1101", "SOC 1101"},
					},
					"Humanities": {
						RequiredCredits: 6,
						Description:     "Courses in literature, philosophy, art, or music",
						Courses:         []string{"ENGL 1101", "ENGL 1102", "PHIL 3100", "MUSI 2010", "ARTH 1100"},
					},
					"Mathematics": {
						RequiredCredits: 15,
						Description:     "Core mathematics courses including calculus and linear algebra",
						Courses:         []string{"MATH 1551", "MATH 1552", "MATH 1554", "MATH 2605", "MATH 3215"},
					},
					"Natural Sciences": {
						RequiredCredits: 8,
						Description:     "Physics, chemistry, or biology courses with labs",
						Courses:         []string{"PHYS 2211", "PHYS 2212", "CHEM 1310", "BIOL 1510"},
					},
					"Computer Science Core": {
						RequiredCredits: 30,
						Description:     "Required computer science courses",
						Courses:         []string{"CS 1301", "CS 1331", "CS 1332", "CS 2110", "CS 2200", "CS 3600", "CS 4641"},
					},
				},
			},
			Courses: []models.Course{
				{
					ID:                    "gt-cs3600",
					Code:                  "CS 3600",
					Name:                  "Introduction to Artificial Intelligence",
					Credits:               3,
					Description:           "Fundamental concepts and techniques in artificial intelligence including search, knowledge representation, and machine learning.",
					Prerequisites:         []string{"CS 1332", "MATH 2605"},
					Offered:               "Fall/Spring",
					Difficulty:            models.DifficultyIntermediate,
					Category:              "Computer Science",
					Department:            "Computer Science",
					SatisfiesRequirements: []string{"Computer Science Core"},
					Professors:            []models.Professor{{Name: "Dr. Smith"}},
					Sections: []models.CourseSection{
						{
							ID:            "gt-cs3600-001",
							SectionNumber: "001",
							Instructor:    "Dr. Smith",
							Schedule: []models.TimeSlot{
								{Day: "Monday", StartTime: "09:30", EndTime: "10:45", Type: models.SlotLecture},
								{Day: "Wednesday", StartTime: "09:30", EndTime: "10:45", Type: models.SlotLecture},
								{Day: "Friday", StartTime: "09:30", EndTime: "10:45", Type: models.SlotLecture},
							},
							Capacity: 120,
							Enrolled: 85,
							Location: "Klaus Advanced Computing Building 1116",
						},
					},
				},
				{
					ID:                    "gt-cs1332",
					Code:                  "CS 1332",
					Name:                  "Data Structures and Algorithms",
					Credits:               3,
					Description:           "Advanced data structures and algorithm analysis. Covers trees, graphs, dynamic programming, and complexity analysis.",
					Prerequisites:         []string{"CS 1331"},
					Offered:               "Fall/Spring",
					Difficulty:            models.DifficultyIntermediate,
					Category:              "Computer Science",
					Department:            "Computer Science",
					SatisfiesRequirements: []string{"Computer Science Core"},
					Professors:            []models.Professor{{Name: "Dr. Johnson"}},
					Sections: []models.CourseSection{
						{
							ID:            "gt-cs1332-001",
							SectionNumber: "001",
							Instructor:    "Dr. Johnson",
							Schedule: []models.TimeSlot{
								{Day: "Tuesday", StartTime: "11:00", EndTime: "12:15", Type: models.SlotLecture},
								{Day: "Thursday", StartTime: "11:00", EndTime: "12:15", Type: models.SlotLecture},
							},
							Capacity: 150,
							Enrolled: 120,
							Location: "College of Computing 016",
						},
					},
				},
				{
					ID:                    "gt-math2605",
					Code:                  "MATH 2605",
					Name:                  "Linear Algebra",
					Credits:               3,
					Description:           "Vector spaces, linear transformations, eigenvalues, and applications to computer science and engineering.",
					Prerequisites:         []string{"MATH 1554"},
					Offered:               "Fall/Spring",
					Difficulty:            models.DifficultyIntermediate,
					Category:              "Mathematics",
					Department:            "Mathematics",
					SatisfiesRequirements: []string{"Mathematics"},
					Professors:            []models.Professor{{Name: "Dr. Brown"}},
					Sections: []models.CourseSection{
						{
							ID:            "gt-math2605-001",
							SectionNumber: "001",
							Instructor:    "Dr. Brown",
							Schedule: []models.TimeSlot{
								{Day: "Monday", StartTime: "14:00", EndTime: "15:15", Type: models.SlotLecture},
								{Day: "Wednesday", StartTime: "14:00", EndTime: "15:15", Type: models.SlotLecture},
								{Day: "Friday", StartTime: "14:00", EndTime: "15:15", Type: models.SlotLecture},
							},
							Capacity: 100,
							Enrolled: 75,
							Location: "Skiles Classroom Building 255",
						},
					},
				},
				{
					ID:                    "gt-psyc1101",
					Code:                  "PSYC 1101",
					Name:                  "General Psychology",
					Credits:               3,
					Description:           "Introduction to the scientific study of behavior and mental processes.",
					Prerequisites:         []string{},
					Offered:               "Fall/Spring",
					Difficulty:            models.DifficultyBeginner,
					Category:              "Social Sciences",
					Department:            "Psychology",
					SatisfiesRequirements: []string{"Social Sciences"},
					Professors:            []models.Professor{{Name: "Dr. Wilson"}},
					Sections: []models.CourseSection{
						{
							ID:            "gt-psyc1101-001",
							SectionNumber: "001",
							Instructor:    "Dr. Wilson",
							Schedule: []models.TimeSlot{
								{Day: "Tuesday", StartTime: "13:30", EndTime: "14:45", Type: models.SlotLecture},
								{Day: "Thursday", StartTime: "13:30", EndTime: "14:45", Type: models.SlotLecture},
							},
							Capacity: 200,
							Enrolled: 180,
							Location: "Psychology Building 101",
						},
					},
				},
				{
					ID:                    "gt-econ2100",
					Code:                  "ECON 2100",
					Name:                  "Principles of Economics",
					Credits:               3,
					Description:           "Introduction to microeconomic and macroeconomic principles.",
					Prerequisites:         []string{},
					Offered:               "Fall/Spring",
					Difficulty:            models.DifficultyBeginner,
					Category:              "Social Sciences",
					Department:            "Economics",
					SatisfiesRequirements: []string{"Social Sciences"},
					Professors:            []models.Professor{{Name: "Dr. Davis"}},
					Sections: []models.CourseSection{
						{
							ID:            "gt-econ2100-001",
							SectionNumber: "001",
							Instructor:    "Dr. Davis",
							Schedule: []models.TimeSlot{
								{Day: "Monday", StartTime: "16:00", EndTime: "17:15", Type: models.SlotLecture},
								{Day: "Wednesday", StartTime: "16:00", EndTime: "17:15", Type: models.SlotLecture},
							},
							Capacity: 150,
							Enrolled: 120,
							Location: "Economics Building 201",
						},
					},
				},
				{
					ID:                    "gt-engl1101",
					Code:                  "ENGL 1101",
					Name:                  "English Composition I",
					Credits:               3,
					Description:           "Introduction to college writing with emphasis on critical thinking and argumentation.",
					Prerequisites:         []string{},
					Offered:               "Fall/Spring",
					Difficulty:            models.DifficultyBeginner,
					Category:              "Humanities",
					Department:            "English",
					SatisfiesRequirements: []string{"Humanities"},
					Professors:            []models.Professor{{Name: "Dr. Miller"}},
					Sections: []models.CourseSection{
						{
							ID:            "gt-engl1101-001",
							SectionNumber: "001",
							Instructor:    "Dr. Miller",
							Schedule: []models.TimeSlot{
								{Day: "Monday", StartTime: "10:00", EndTime: "11:15", Type: models.SlotLecture},
								{Day: "Wednesday", StartTime: "10:00", EndTime: "11:15", Type: models.SlotLecture},
							},
							Capacity: 25,
							Enrolled: 20,
							Location: "Skiles Classroom Building 308",
						},
					},
				},
			},
		},
		{
			ID:                "mit",
			Name:              "Massachusetts Institute of Technology",
			Location:          "Cambridge, MA",
			CreditSystem:      models.CreditSystemSemester,
			MaxCreditsPerTerm: 54,
			MinCreditsPerTerm: 36,
			GraduationRequirements: models.GraduationRequirements{
				TotalCredits: 180,
				Categories: map[string]models.RequirementCategory{
					"Humanities, Arts, and Social Sciences": {
						RequiredCredits: 36,
						Description:     "Courses in humanities, arts, and social sciences",
						Courses:         []string{"21H.001", "21L.001", "24.00", "21M.011", "21W.021"},
					},
					"Science Core": {
						RequiredCredits: 48,
						Description:     "Physics, chemistry, and biology requirements",
						Courses:         []string{"8.01", "8.02", "5.111", "7.01", "18.02"},
					},
					"Mathematics": {
						RequiredCredits: 36,
						Description:     "Calculus and linear algebra requirements",
						Courses:         []string{"18.01", "18.02", "18.06", "18.03"},
					},
					"Computer Science Core": {
						RequiredCredits: 60,
						Description:     "Required computer science courses",
						Courses:         []string{"6.0001", "6.0002", "6.006", "6.034", "6.046"},
					},
				},
			},
			Courses: []models.Course{
				{
					ID:                    "mit-6-034",
					Code:                  "6.034",
					Name:                  "Artificial Intelligence",
					Credits:               12,
					Description:           "Introduction to artificial intelligence. Search, constraint satisfaction, game playing, knowledge representation, logical inference, planning, and machine learning.",
					Prerequisites:         []string{"6.006", "18.06"},
					Offered:               "Fall",
					Difficulty:            models.DifficultyAdvanced,
					Category:              "Computer Science",
					Department:            "Electrical Engineering and Computer Science",
					SatisfiesRequirements: []string{"Computer Science Core"},
					Professors:            []models.Professor{{Name: "Prof. Winston"}},
					Sections: []models.CourseSection{
						{
							ID:            "mit-6-034-001",
							SectionNumber: "001",
							Instructor:    "Prof. Winston",
							Schedule: []models.TimeSlot{
								{Day: "Monday", StartTime: "10:00", EndTime: "11:30", Type: models.SlotLecture},
								{Day: "Wednesday", StartTime: "10:00", EndTime: "11:30", Type: models.SlotLecture},
								{Day: "Friday", StartTime: "10:00", EndTime: "11:30", Type: models.SlotLecture},
							},
							Capacity: 200,
							Enrolled: 180,
							Location: "Building 34-101",
						},
					},
				},
			},
		},
		{
			ID:                "stanford",
			Name:              "Stanford University",
			Location:          "Stanford, CA",
			CreditSystem:      models.CreditSystemQuarter,
			MaxCreditsPerTerm: 20,
			MinCreditsPerTerm: 12,
			GraduationRequirements: models.GraduationRequirements{
				TotalCredits: 180,
				Categories: map[string]models.RequirementCategory{
					"Ways of Thinking": {
						RequiredCredits: 40,
						Description:     "Courses in aesthetic and interpretive inquiry, social inquiry, scientific method and analysis",
						Courses:         []string{"THINK 1", "THINK 2", "THINK 3", "THINK 4"},
					},
					"Writing and Rhetoric": {
						RequiredCredits: 15,
						Description:     "Writing and rhetoric requirements",
						Courses:         []string{"PWR 1", "PWR 2"},
					},
					"Mathematics": {
						RequiredCredits: 20,
						Description:     "Mathematics and computational thinking",
						Courses:         []string{"MATH 19", "MATH 20", "MATH 21", "CS 106A"},
					},
					"Computer Science Core": {
						RequiredCredits: 60,
						Description:     "Required computer science courses",
						Courses:         []string{"CS 106B", "CS 103", "CS 107", "CS 110", "CS 221"},
					},
				},
			},
			Courses: []models.Course{
				{
					ID:                    "stanford-cs221",
					Code:                  "CS 221",
					Name:                  "Artificial Intelligence: Principles and Techniques",
					Credits:               4,
					Description:           "Introduction to artificial intelligence. Search, constraint satisfaction, game playing, knowledge representation, logical inference, planning, and machine learning.",
					Prerequisites:         []string{"CS 106B", "CS 103"},
					Offered:               "Fall/Spring",
					Difficulty:            models.DifficultyAdvanced,
					Category:              "Computer Science",
					Department:            "Computer Science",
					SatisfiesRequirements: []string{"Computer Science Core"},
					Professors:            []models.Professor{{Name: "Prof. Ng"}},
					Sections: []models.CourseSection{
						{
							ID:            "stanford-cs221-001",
							SectionNumber: "001",
							Instructor:    "Prof. Ng",
							Schedule: []models.TimeSlot{
								{Day: "Monday", StartTime: "14:30", EndTime: "15:50", Type: models.SlotLecture},
								{Day: "Wednesday", StartTime: "14:30", EndTime: "15:50", Type: models.SlotLecture},
								{Day: "Friday", StartTime: "14:30", EndTime: "15:50", Type: models.SlotLecture},
							},
							Capacity: 300,
							Enrolled: 280,
							Location: "Hewlett Teaching Center 200",
						},
					},
				},
			},
		},
	}
}
