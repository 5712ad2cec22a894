package course

// Course represents a single course offering. InstructorID is nil while the
// course is unassigned; InstructorName is populated on reads that join the
// instructors table.
type Course struct {
	CourseID       string  `json:"course_id"`
	CourseName     string  `json:"course_name"`
	InstructorID   *string `json:"instructor_id"`
	InstructorName *string `json:"instructor_name,omitempty"`
}

// EnrolledStudent is the student view returned by course roster queries.
type EnrolledStudent struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Email     string `json:"email"`
}

// Filter holds the parameters for a paginated course search.
type Filter struct {
	Query string // Case-insensitive match against course name and ID
}

// UpdateInput carries a partial update; nil fields are left unchanged.
// An empty InstructorID clears the assignment (the course becomes
// unassigned). NewCourseID renames the record, cascading to registrations.
type UpdateInput struct {
	CourseName   *string `json:"course_name"`
	InstructorID *string `json:"instructor_id"`
	NewCourseID  *string `json:"new_course_id"`
}

// Global field names for validation
const (
	FieldCourseID     = "course_id"
	FieldCourseName   = "course_name"
	FieldInstructorID = "instructor_id"
	FieldStudentID    = "student_id"
)
