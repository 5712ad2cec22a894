package schema

// CourseTable represents the 'courses' table
type CourseTable struct {
	Table        string
	CourseID     string
	CourseName   string
	InstructorID string
}

// Course is the schema definition for courses
var Course = CourseTable{
	Table:        "courses",
	CourseID:     "course_id",
	CourseName:   "course_name",
	InstructorID: "instructor_id",
}

func (t CourseTable) Columns() []string {
	return []string{t.CourseID, t.CourseName, t.InstructorID}
}
