package student_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/registra-app/registra/internal/core/student"
	"github.com/registra-app/registra/internal/platform/apperr"
)

// fakeRepository records calls so tests can assert what the service sends down.
type fakeRepository struct {
	created   *student.Student
	updatedID string
	updated   student.UpdateInput
	deletedID string
	gotID     string
}

func (fake *fakeRepository) ListStudents(_ context.Context, _ student.Filter, _, _ int) ([]*student.Student, int, error) {
	return nil, 0, nil
}

func (fake *fakeRepository) GetStudent(_ context.Context, id string) (*student.Student, error) {
	fake.gotID = id
	return &student.Student{StudentID: id}, nil
}

func (fake *fakeRepository) CreateStudent(_ context.Context, s *student.Student) error {
	fake.created = s
	return nil
}

func (fake *fakeRepository) UpdateStudent(_ context.Context, id string, input student.UpdateInput) (*student.Student, error) {
	fake.updatedID = id
	fake.updated = input
	return &student.Student{StudentID: id}, nil
}

func (fake *fakeRepository) DeleteStudent(_ context.Context, id string) error {
	fake.deletedID = id
	return nil
}

func newTestService(t *testing.T) (*student.Service, *fakeRepository) {
	t.Helper()
	repo := &fakeRepository{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return student.NewService(repo, logger), repo
}

/*
TestCreateStudent_NormalizesBeforePersist verifies that valid input is
cleaned up before it reaches storage.
*/
func TestCreateStudent_NormalizesBeforePersist(t *testing.T) {
	service, repo := newTestService(t)

	input := &student.Student{
		StudentID: " s123 ",
		Name:      "  jane   doe ",
		Age:       21,
		Email:     " Jane.Doe@Example.COM ",
	}

	require.NoError(t, service.CreateStudent(context.Background(), input))
	require.NotNil(t, repo.created)

	assert.Equal(t, "S123", repo.created.StudentID)
	assert.Equal(t, "Jane Doe", repo.created.Name)
	assert.Equal(t, "jane.doe@example.com", repo.created.Email)
}

/*
TestCreateStudent_ValidationFailure verifies that invalid input never
reaches the repository and that all failures are collected.
*/
func TestCreateStudent_ValidationFailure(t *testing.T) {
	service, repo := newTestService(t)

	input := &student.Student{
		StudentID: "!!",
		Name:      "x",
		Age:       -5,
		Email:     "broken",
	}

	err := service.CreateStudent(context.Background(), input)
	require.Error(t, err)
	assert.Nil(t, repo.created)

	var appError *apperr.AppError
	require.ErrorAs(t, err, &appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	assert.NotEmpty(t, appError.Details)
}

/*
TestUpdateStudent_PartialNormalization verifies that only provided fields
are forwarded and that they are normalized first.
*/
func TestUpdateStudent_PartialNormalization(t *testing.T) {
	service, repo := newTestService(t)

	email := " New.Mail@Example.COM "
	newID := " s999 "
	_, err := service.UpdateStudent(context.Background(), " s123 ", student.UpdateInput{
		Email:        &email,
		NewStudentID: &newID,
	})
	require.NoError(t, err)

	assert.Equal(t, "S123", repo.updatedID)
	assert.Nil(t, repo.updated.Name)
	assert.Nil(t, repo.updated.Age)
	require.NotNil(t, repo.updated.Email)
	assert.Equal(t, "new.mail@example.com", *repo.updated.Email)
	require.NotNil(t, repo.updated.NewStudentID)
	assert.Equal(t, "S999", *repo.updated.NewStudentID)
}

/*
TestUpdateStudent_InvalidField verifies that a bad partial field aborts
the update before storage.
*/
func TestUpdateStudent_InvalidField(t *testing.T) {
	service, repo := newTestService(t)

	email := "not-an-email"
	_, err := service.UpdateStudent(context.Background(), "S123", student.UpdateInput{Email: &email})

	require.Error(t, err)
	assert.Empty(t, repo.updatedID)
}

/*
TestDeleteStudent_NormalizesID verifies the ID is uppercased before delete.
*/
func TestDeleteStudent_NormalizesID(t *testing.T) {
	service, repo := newTestService(t)

	require.NoError(t, service.DeleteStudent(context.Background(), " s123 "))
	assert.Equal(t, "S123", repo.deletedID)
}
