package schema

// StudentTable represents the 'students' table
type StudentTable struct {
	Table     string
	StudentID string
	Name      string
	Age       string
	Email     string
}

// Student is the schema definition for students
var Student = StudentTable{
	Table:     "students",
	StudentID: "student_id",
	Name:      "name",
	Age:       "age",
	Email:     "email",
}

func (t StudentTable) Columns() []string {
	return []string{t.StudentID, t.Name, t.Age, t.Email}
}
