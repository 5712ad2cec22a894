package course

import "context"

type Repository interface {
	ListCourses(context context.Context, f Filter, limit, offset int) ([]*Course, int, error)
	GetCourse(context context.Context, id string) (*Course, error)
	CreateCourse(context context.Context, c *Course) error
	UpdateCourse(context context.Context, id string, input UpdateInput) (*Course, error)
	DeleteCourse(context context.Context, id string) error

	RegisterStudent(context context.Context, courseID, studentID string) error
	UnregisterStudent(context context.Context, courseID, studentID string) error
	CourseStudents(context context.Context, courseID string) ([]*EnrolledStudent, error)
	StudentCourses(context context.Context, studentID string) ([]*Course, error)
	InstructorCourses(context context.Context, instructorID string) ([]*Course, error)
}
