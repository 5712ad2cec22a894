package archive

// Payload is the full-store JSON archive shape. Field names mirror the
// database columns so archives are self-describing.
type Payload struct {
	Students      []StudentRow      `json:"students"`
	Instructors   []InstructorRow   `json:"instructors"`
	Courses       []CourseRow       `json:"courses"`
	Registrations []RegistrationRow `json:"registrations"`
}

// StudentRow is one student record in an archive.
type StudentRow struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Email     string `json:"email"`
}

// InstructorRow is one instructor record in an archive.
type InstructorRow struct {
	InstructorID string `json:"instructor_id"`
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Email        string `json:"email"`
}

// CourseRow is one course record in an archive.
type CourseRow struct {
	CourseID     string  `json:"course_id"`
	CourseName   string  `json:"course_name"`
	InstructorID *string `json:"instructor_id"`
}

// RegistrationRow is one course/student link in an archive.
type RegistrationRow struct {
	CourseID  string `json:"course_id"`
	StudentID string `json:"student_id"`
}

// ImportSummary reports what an import replaced the store with.
type ImportSummary struct {
	Students      int `json:"students"`
	Instructors   int `json:"instructors"`
	Courses       int `json:"courses"`
	Registrations int `json:"registrations"`
}
