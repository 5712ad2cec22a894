package course

import (
	"context"
	"log/slog"

	"github.com/registra-app/registra/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListCourses(context context.Context, filter Filter, limit, offset int) ([]*Course, int, error) {
	return service.repo.ListCourses(context, filter, limit, offset)
}

func (service *Service) GetCourse(context context.Context, id string) (*Course, error) {
	return service.repo.GetCourse(context, validate.NormID(id))
}

func (service *Service) CreateCourse(context context.Context, course *Course) error {
	validator := &validate.Validator{}

	validator.Required(FieldCourseID, course.CourseID).CourseID(FieldCourseID, course.CourseID)
	validator.Required(FieldCourseName, course.CourseName).CourseName(FieldCourseName, course.CourseName)
	if course.InstructorID != nil {
		validator.InstructorID(FieldInstructorID, *course.InstructorID)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	course.CourseID = validate.NormID(course.CourseID)
	course.CourseName = validate.NormName(course.CourseName)
	if course.InstructorID != nil {
		normalized := validate.NormID(*course.InstructorID)
		course.InstructorID = &normalized
	}

	if err := service.repo.CreateCourse(context, course); err != nil {
		return err
	}

	service.logger.Info("course_created", slog.String("course_id", course.CourseID))
	return nil
}

func (service *Service) UpdateCourse(context context.Context, id string, input UpdateInput) (*Course, error) {
	validator := &validate.Validator{}

	if input.CourseName != nil {
		validator.CourseName(FieldCourseName, *input.CourseName)
	}
	if input.InstructorID != nil && *input.InstructorID != "" {
		validator.InstructorID(FieldInstructorID, *input.InstructorID)
	}
	if input.NewCourseID != nil {
		validator.CourseID(FieldCourseID, *input.NewCourseID)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if input.CourseName != nil {
		normalized := validate.NormName(*input.CourseName)
		input.CourseName = &normalized
	}
	if input.InstructorID != nil && *input.InstructorID != "" {
		normalized := validate.NormID(*input.InstructorID)
		input.InstructorID = &normalized
	}
	if input.NewCourseID != nil {
		normalized := validate.NormID(*input.NewCourseID)
		input.NewCourseID = &normalized
	}

	updated, err := service.repo.UpdateCourse(context, validate.NormID(id), input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("course_updated", slog.String("course_id", updated.CourseID))
	return updated, nil
}

func (service *Service) DeleteCourse(context context.Context, id string) error {
	normalized := validate.NormID(id)
	if err := service.repo.DeleteCourse(context, normalized); err != nil {
		return err
	}

	service.logger.Warn("course_deleted", slog.String("course_id", normalized))
	return nil
}

// # Registrations

func (service *Service) RegisterStudent(context context.Context, courseID, studentID string) error {
	course := validate.NormID(courseID)
	student := validate.NormID(studentID)

	if err := service.repo.RegisterStudent(context, course, student); err != nil {
		return err
	}

	service.logger.Info("student_registered",
		slog.String("course_id", course),
		slog.String("student_id", student),
	)
	return nil
}

func (service *Service) UnregisterStudent(context context.Context, courseID, studentID string) error {
	course := validate.NormID(courseID)
	student := validate.NormID(studentID)

	if err := service.repo.UnregisterStudent(context, course, student); err != nil {
		return err
	}

	service.logger.Info("student_unregistered",
		slog.String("course_id", course),
		slog.String("student_id", student),
	)
	return nil
}

func (service *Service) CourseStudents(context context.Context, courseID string) ([]*EnrolledStudent, error) {
	return service.repo.CourseStudents(context, validate.NormID(courseID))
}

func (service *Service) StudentCourses(context context.Context, studentID string) ([]*Course, error) {
	return service.repo.StudentCourses(context, validate.NormID(studentID))
}

func (service *Service) InstructorCourses(context context.Context, instructorID string) ([]*Course, error) {
	return service.repo.InstructorCourses(context, validate.NormID(instructorID))
}
