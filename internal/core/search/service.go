package search

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

// Search runs the unified cross-entity search. An empty term is rejected so
// a stray request cannot dump the whole store.
func (service *Service) Search(context context.Context, term string) ([]Row, error) {
	if err := (&validate.Validator{}).Required("q", term).Err(); err != nil {
		return nil, err
	}

	return service.repo.Unified(context, term)
}

// SearchEntity runs a column-filtered search over a single entity. The
// entity and every filter column are checked against the closed allow-list
// before any SQL is assembled.
func (service *Service) SearchEntity(context context.Context, entity Entity, filters map[string]string) ([]map[string]any, error) {
	if !entity.Valid() {
		return nil, validate.RequiredError("entity",
			"Must be one of: students, instructors, courses, registrations")
	}

	for column := range filters {
		if !entity.ColumnAllowed(column) {
			return nil, validate.RequiredError(column, "Unknown filter column for "+string(entity))
		}
	}

	return service.repo.Filtered(context, entity, filters)
}

// Statistics aggregates store-wide counts and the average course size.
func (service *Service) Statistics(context context.Context) (*Statistics, error) {
	stats, err := service.repo.Statistics(context)
	if err != nil {
		return nil, err
	}

	service.logger.Debug("statistics_computed",
		slog.Int("students", stats.Students),
		slog.Int("courses", stats.Courses),
	)
	return stats, nil
}
