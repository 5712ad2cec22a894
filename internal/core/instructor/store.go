package instructor

import "context"

type Repository interface {
	ListInstructors(context context.Context, f Filter, limit, offset int) ([]*Instructor, int, error)
	GetInstructor(context context.Context, id string) (*Instructor, error)
	CreateInstructor(context context.Context, i *Instructor) error
	UpdateInstructor(context context.Context, id string, input UpdateInput) (*Instructor, error)
	DeleteInstructor(context context.Context, id string) error
}
