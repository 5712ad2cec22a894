package search

// Row is the unified result shape shared by all record types. Courses have
// no email or age, so those fields stay empty/nil for them.
type Row struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	IDNumber string `json:"id_number"`
	Email    string `json:"email"`
	Age      *int   `json:"age"`
}

// Entity names a searchable table. Only the values below are accepted;
// anything else is rejected before touching SQL.
type Entity string

const (
	EntityStudents      Entity = "students"
	EntityInstructors   Entity = "instructors"
	EntityCourses       Entity = "courses"
	EntityRegistrations Entity = "registrations"
)

// allowedColumns is the closed allow-list of filterable columns per entity.
// Filter keys are checked against this table, never interpolated from input.
var allowedColumns = map[Entity][]string{
	EntityStudents:      {"student_id", "name", "age", "email"},
	EntityInstructors:   {"instructor_id", "name", "age", "email"},
	EntityCourses:       {"course_id", "course_name", "instructor_id"},
	EntityRegistrations: {"course_id", "student_id"},
}

// Valid reports whether the entity names a searchable table.
func (e Entity) Valid() bool {
	_, ok := allowedColumns[e]
	return ok
}

// ColumnAllowed reports whether the column may be filtered on for this entity.
func (e Entity) ColumnAllowed(column string) bool {
	for _, allowed := range allowedColumns[e] {
		if allowed == column {
			return true
		}
	}
	return false
}

// Statistics summarizes the whole store.
type Statistics struct {
	Students             int     `json:"students"`
	Instructors          int     `json:"instructors"`
	Courses              int     `json:"courses"`
	Registrations        int     `json:"registrations"`
	AvgStudentsPerCourse float64 `json:"avg_students_per_course"`
}
