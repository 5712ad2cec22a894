package schema

// InstructorTable represents the 'instructors' table
type InstructorTable struct {
	Table        string
	InstructorID string
	Name         string
	Age          string
	Email        string
}

// Instructor is the schema definition for instructors
var Instructor = InstructorTable{
	Table:        "instructors",
	InstructorID: "instructor_id",
	Name:         "name",
	Age:          "age",
	Email:        "email",
}

func (t InstructorTable) Columns() []string {
	return []string{t.InstructorID, t.Name, t.Age, t.Email}
}
