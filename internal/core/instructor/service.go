package instructor

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

func (service *Service) ListInstructors(context context.Context, filter Filter, limit, offset int) ([]*Instructor, int, error) {
	return service.repo.ListInstructors(context, filter, limit, offset)
}

func (service *Service) GetInstructor(context context.Context, id string) (*Instructor, error) {
	return service.repo.GetInstructor(context, validate.NormID(id))
}

func (service *Service) CreateInstructor(context context.Context, instructor *Instructor) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, instructor.Name).PersonName(FieldName, instructor.Name)
	validator.Age(FieldAge, instructor.Age)
	validator.Required(FieldEmail, instructor.Email).Email(FieldEmail, instructor.Email)
	validator.Required(FieldInstructorID, instructor.InstructorID).InstructorID(FieldInstructorID, instructor.InstructorID)

	if err := validator.Err(); err != nil {
		return err
	}

	instructor.Name = validate.NormName(instructor.Name)
	instructor.Email = validate.NormEmail(instructor.Email)
	instructor.InstructorID = validate.NormID(instructor.InstructorID)

	if err := service.repo.CreateInstructor(context, instructor); err != nil {
		return err
	}

	service.logger.Info("instructor_created", slog.String("instructor_id", instructor.InstructorID))
	return nil
}

func (service *Service) UpdateInstructor(context context.Context, id string, input UpdateInput) (*Instructor, error) {
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
	if input.NewInstructorID != nil {
		validator.InstructorID(FieldInstructorID, *input.NewInstructorID)
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
	if input.NewInstructorID != nil {
		normalized := validate.NormID(*input.NewInstructorID)
		input.NewInstructorID = &normalized
	}

	updated, err := service.repo.UpdateInstructor(context, validate.NormID(id), input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("instructor_updated", slog.String("instructor_id", updated.InstructorID))
	return updated, nil
}

func (service *Service) DeleteInstructor(context context.Context, id string) error {
	normalized := validate.NormID(id)
	if err := service.repo.DeleteInstructor(context, normalized); err != nil {
		return err
	}

	service.logger.Warn("instructor_deleted", slog.String("instructor_id", normalized))
	return nil
}
