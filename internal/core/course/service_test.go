package course_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/registra-app/registra/internal/core/course"
)

// fakeRepository records calls so tests can assert what the service sends down.
type fakeRepository struct {
	created        *course.Course
	updatedID      string
	updated        course.UpdateInput
	registeredPair [2]string
	removedPair    [2]string
}

func (fake *fakeRepository) ListCourses(_ context.Context, _ course.Filter, _, _ int) ([]*course.Course, int, error) {
	return nil, 0, nil
}

func (fake *fakeRepository) GetCourse(_ context.Context, id string) (*course.Course, error) {
	return &course.Course{CourseID: id}, nil
}

func (fake *fakeRepository) CreateCourse(_ context.Context, c *course.Course) error {
	fake.created = c
	return nil
}

func (fake *fakeRepository) UpdateCourse(_ context.Context, id string, input course.UpdateInput) (*course.Course, error) {
	fake.updatedID = id
	fake.updated = input
	return &course.Course{CourseID: id}, nil
}

func (fake *fakeRepository) DeleteCourse(_ context.Context, _ string) error { return nil }

func (fake *fakeRepository) RegisterStudent(_ context.Context, courseID, studentID string) error {
	fake.registeredPair = [2]string{courseID, studentID}
	return nil
}

func (fake *fakeRepository) UnregisterStudent(_ context.Context, courseID, studentID string) error {
	fake.removedPair = [2]string{courseID, studentID}
	return nil
}

func (fake *fakeRepository) CourseStudents(_ context.Context, _ string) ([]*course.EnrolledStudent, error) {
	return nil, nil
}

func (fake *fakeRepository) StudentCourses(_ context.Context, _ string) ([]*course.Course, error) {
	return nil, nil
}

func (fake *fakeRepository) InstructorCourses(_ context.Context, _ string) ([]*course.Course, error) {
	return nil, nil
}

func newTestService(t *testing.T) (*course.Service, *fakeRepository) {
	t.Helper()
	repo := &fakeRepository{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return course.NewService(repo, logger), repo
}

/*
TestCreateCourse_NormalizesBeforePersist verifies ID uppercasing and name
title-casing on the way to storage.
*/
func TestCreateCourse_NormalizesBeforePersist(t *testing.T) {
	service, repo := newTestService(t)

	instructorID := " i100 "
	input := &course.Course{
		CourseID:     " cs101 ",
		CourseName:   "  intro   to computing ",
		InstructorID: &instructorID,
	}

	require.NoError(t, service.CreateCourse(context.Background(), input))
	require.NotNil(t, repo.created)

	assert.Equal(t, "CS101", repo.created.CourseID)
	assert.Equal(t, "Intro To Computing", repo.created.CourseName)
	require.NotNil(t, repo.created.InstructorID)
	assert.Equal(t, "I100", *repo.created.InstructorID)
}

/*
TestCreateCourse_InvalidID verifies course ID format enforcement.
*/
func TestCreateCourse_InvalidID(t *testing.T) {
	service, repo := newTestService(t)

	testCases := []string{"", "101", "TOOLONGPREFIX101", "CS"}
	for _, courseID := range testCases {
		err := service.CreateCourse(context.Background(), &course.Course{
			CourseID:   courseID,
			CourseName: "Intro To Computing",
		})
		assert.Error(t, err, "course_id %q should be rejected", courseID)
	}
	assert.Nil(t, repo.created)
}

/*
TestUpdateCourse_ClearInstructor verifies that an empty instructor ID is
forwarded untouched so storage can null the assignment.
*/
func TestUpdateCourse_ClearInstructor(t *testing.T) {
	service, repo := newTestService(t)

	empty := ""
	_, err := service.UpdateCourse(context.Background(), "cs101", course.UpdateInput{InstructorID: &empty})
	require.NoError(t, err)

	assert.Equal(t, "CS101", repo.updatedID)
	require.NotNil(t, repo.updated.InstructorID)
	assert.Empty(t, *repo.updated.InstructorID)
}

/*
TestRegistration_NormalizesIDs verifies both identifiers are uppercased
before the repository sees them.
*/
func TestRegistration_NormalizesIDs(t *testing.T) {
	service, repo := newTestService(t)

	require.NoError(t, service.RegisterStudent(context.Background(), " cs101 ", " s123 "))
	assert.Equal(t, [2]string{"CS101", "S123"}, repo.registeredPair)

	require.NoError(t, service.UnregisterStudent(context.Background(), "cs101", "s123"))
	assert.Equal(t, [2]string{"CS101", "S123"}, repo.removedPair)
}
