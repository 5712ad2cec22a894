package search_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/registra-app/registra/internal/core/search"
	"github.com/registra-app/registra/internal/platform/apperr"
)

// fakeRepository records calls so tests can assert what the service sends down.
type fakeRepository struct {
	unifiedTerm     string
	filteredEntity  search.Entity
	filteredFilters map[string]string
}

func (fake *fakeRepository) Unified(_ context.Context, term string) ([]search.Row, error) {
	fake.unifiedTerm = term
	return []search.Row{}, nil
}

func (fake *fakeRepository) Filtered(_ context.Context, entity search.Entity, filters map[string]string) ([]map[string]any, error) {
	fake.filteredEntity = entity
	fake.filteredFilters = filters
	return []map[string]any{}, nil
}

func (fake *fakeRepository) Statistics(_ context.Context) (*search.Statistics, error) {
	return &search.Statistics{}, nil
}

func newTestService(t *testing.T) (*search.Service, *fakeRepository) {
	t.Helper()
	repo := &fakeRepository{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return search.NewService(repo, logger), repo
}

/*
TestEntity_Valid covers the closed entity allow-list.
*/
func TestEntity_Valid(t *testing.T) {
	assert.True(t, search.EntityStudents.Valid())
	assert.True(t, search.EntityInstructors.Valid())
	assert.True(t, search.EntityCourses.Valid())
	assert.True(t, search.EntityRegistrations.Valid())

	assert.False(t, search.Entity("teachers").Valid())
	assert.False(t, search.Entity("").Valid())
}

/*
TestEntity_ColumnAllowed covers the per-entity column allow-list.
*/
func TestEntity_ColumnAllowed(t *testing.T) {
	assert.True(t, search.EntityStudents.ColumnAllowed("student_id"))
	assert.True(t, search.EntityCourses.ColumnAllowed("instructor_id"))
	assert.True(t, search.EntityRegistrations.ColumnAllowed("course_id"))

	// Cross-entity columns never leak.
	assert.False(t, search.EntityStudents.ColumnAllowed("course_id"))
	assert.False(t, search.EntityRegistrations.ColumnAllowed("name"))

	// SQL fragments are just unknown columns.
	assert.False(t, search.EntityStudents.ColumnAllowed("name; DROP TABLE students"))
}

/*
TestSearch_RejectsEmptyTerm verifies an empty query never reaches storage.
*/
func TestSearch_RejectsEmptyTerm(t *testing.T) {
	service, repo := newTestService(t)

	_, err := service.Search(context.Background(), "")
	require.Error(t, err)
	assert.Empty(t, repo.unifiedTerm)

	_, err = service.Search(context.Background(), "doe")
	require.NoError(t, err)
	assert.Equal(t, "doe", repo.unifiedTerm)
}

/*
TestSearchEntity_Validation verifies unknown entities and columns are
rejected before any SQL is assembled.
*/
func TestSearchEntity_Validation(t *testing.T) {
	service, repo := newTestService(t)

	_, err := service.SearchEntity(context.Background(), "teachers", nil)
	require.Error(t, err)

	_, err = service.SearchEntity(context.Background(), search.EntityStudents, map[string]string{"1=1": "x"})
	require.Error(t, err)
	assert.Nil(t, repo.filteredFilters)

	filters := map[string]string{"name": "Jane", "age": "21"}
	_, err = service.SearchEntity(context.Background(), search.EntityStudents, filters)
	require.NoError(t, err)
	assert.Equal(t, search.EntityStudents, repo.filteredEntity)
	assert.Equal(t, filters, repo.filteredFilters)
}

/*
TestSQLiteRepository_Filtered_RejectsUnknownColumn verifies the storage
layer's own allow-list check returns a typed validation error before any
SQL runs, so the repository stays safe even without the service in front.
*/
func TestSQLiteRepository_Filtered_RejectsUnknownColumn(t *testing.T) {
	repository := search.NewSQLiteRepository(nil)

	_, err := repository.Filtered(context.Background(), search.EntityStudents,
		map[string]string{"name; DROP TABLE students": "x"})
	require.Error(t, err)

	var appError *apperr.AppError
	require.ErrorAs(t, err, &appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
}
