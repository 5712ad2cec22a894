package student

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

func (service *Service) ListStudents(context context.Context, filter Filter, limit, offset int) ([]*Student, int, error) {
	return service.repo.ListStudents(context, filter, limit, offset)
}

func (service *Service) GetStudent(context context.Context, id string) (*Student, error) {
	return service.repo.GetStudent(context, validate.NormID(id))
}

func (service *Service) CreateStudent(context context.Context, student *Student) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, student.Name).PersonName(FieldName, student.Name)
	validator.Age(FieldAge, student.Age)
	validator.Required(FieldEmail, student.Email).Email(FieldEmail, student.Email)
	validator.Required(FieldStudentID, student.StudentID).StudentID(FieldStudentID, student.StudentID)

	if err := validator.Err(); err != nil {
		return err
	}

	student.Name = validate.NormName(student.Name)
	student.Email = validate.NormEmail(student.Email)
	student.StudentID = validate.NormID(student.StudentID)

	if err := service.repo.CreateStudent(context, student); err != nil {
		return err
	}

	service.logger.Info("student_created", slog.String("student_id", student.StudentID))
	return nil
}

func (service *Service) UpdateStudent(context context.Context, id string, input UpdateInput) (*Student, error) {
	validator := &validate.Validator{}

	if input.Name != nil {
		validator.PersonName(FieldName, *input.Name)
	}
	if input.Age != nil {
		validator.Age(FieldAge, *input.Age)
	}
	if input.Email != nil {
		validator.Email(FieldEmail, *input.Email)
	}
	if input.NewStudentID != nil {
		validator.StudentID(FieldStudentID, *input.NewStudentID)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if input.Name != nil {
		normalized := validate.NormName(*input.Name)
		input.Name = &normalized
	}
	if input.Email != nil {
		normalized := validate.NormEmail(*input.Email)
		input.Email = &normalized
	}
	if input.NewStudentID != nil {
		normalized := validate.NormID(*input.NewStudentID)
		input.NewStudentID = &normalized
	}

	updated, err := service.repo.UpdateStudent(context, validate.NormID(id), input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("student_updated", slog.String("student_id", updated.StudentID))
	return updated, nil
}

func (service *Service) DeleteStudent(context context.Context, id string) error {
	normalized := validate.NormID(id)
	if err := service.repo.DeleteStudent(context, normalized); err != nil {
		return err
	}

	service.logger.Warn("student_deleted", slog.String("student_id", normalized))
	return nil
}
