package schema

// RegistrationTable represents the 'registrations' join table
type RegistrationTable struct {
	Table     string
	CourseID  string
	StudentID string
}

// Registration is the schema definition for registrations
var Registration = RegistrationTable{
	Table:     "registrations",
	CourseID:  "course_id",
	StudentID: "student_id",
}
