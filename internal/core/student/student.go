package student

// Student represents an enrolled learner in the school records system.
type Student struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Email     string `json:"email"`
}

// Filter holds the parameters for a paginated student search.
type Filter struct {
	Query string // Case-insensitive match against name, ID, and email
}

// UpdateInput carries a partial update; nil fields are left unchanged.
// NewStudentID renames the record, cascading to registrations.
type UpdateInput struct {
	Name         *string `json:"name"`
	Age          *int    `json:"age"`
	Email        *string `json:"email"`
	NewStudentID *string `json:"new_student_id"`
}

// Global field names for validation
const (
	FieldStudentID = "student_id"
	FieldName      = "name"
	FieldAge       = "age"
	FieldEmail     = "email"
)
