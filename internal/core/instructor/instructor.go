package instructor

// Instructor represents a teaching staff member in the school records system.
type Instructor struct {
	InstructorID string `json:"instructor_id"`
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Email        string `json:"email"`
}

// Filter holds the parameters for a paginated instructor search.
type Filter struct {
	Query string // Case-insensitive match against name, ID, and email
}

// UpdateInput carries a partial update; nil fields are left unchanged.
// NewInstructorID renames the record, cascading to the courses that
// reference it.
type UpdateInput struct {
	Name            *string `json:"name"`
	Age             *int    `json:"age"`
	Email           *string `json:"email"`
	NewInstructorID *string `json:"new_instructor_id"`
}

// Global field names for validation
const (
	FieldInstructorID = "instructor_id"
	FieldName         = "name"
	FieldAge          = "age"
	FieldEmail        = "email"
)
