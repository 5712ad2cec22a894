package archive_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/registra-app/registra/internal/core/archive"
	"github.com/registra-app/registra/internal/platform/apperr"
)

// fakeRepository serves a canned snapshot and records restore/backup calls.
type fakeRepository struct {
	snapshot          *archive.Payload
	restored          *archive.Payload
	backupDestination string
}

func (fake *fakeRepository) Snapshot(_ context.Context) (*archive.Payload, error) {
	return fake.snapshot, nil
}

func (fake *fakeRepository) Restore(_ context.Context, payload *archive.Payload) error {
	fake.restored = payload
	return nil
}

func (fake *fakeRepository) Backup(_ context.Context, destination string) error {
	fake.backupDestination = destination
	return nil
}

func newTestService(t *testing.T, backupDir string) (*archive.Service, *fakeRepository) {
	t.Helper()
	instructorID := "I100"
	repo := &fakeRepository{
		snapshot: &archive.Payload{
			Students: []archive.StudentRow{
				{StudentID: "S123", Name: "Jane Doe", Age: 21, Email: "jane.doe@example.com"},
			},
			Instructors: []archive.InstructorRow{
				{InstructorID: "I100", Name: "Alan Turing", Age: 41, Email: "alan@example.com"},
			},
			Courses: []archive.CourseRow{
				{CourseID: "CS101", CourseName: "Intro To Computing", InstructorID: &instructorID},
			},
			Registrations: []archive.RegistrationRow{
				{CourseID: "CS101", StudentID: "S123"},
			},
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return archive.NewService(repo, backupDir, logger), repo
}

/*
TestBackup_DefaultDestination verifies a timestamped file name is generated
inside the configured backup directory when none is given.
*/
func TestBackup_DefaultDestination(t *testing.T) {
	backupDir := t.TempDir()
	service, repo := newTestService(t, backupDir)

	path, err := service.Backup(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, backupDir, filepath.Dir(repo.backupDestination))
	base := filepath.Base(repo.backupDestination)
	assert.True(t, strings.HasPrefix(base, "registra_"), "unexpected backup name %q", base)
	assert.True(t, strings.HasSuffix(base, ".sqlite"), "unexpected backup name %q", base)

	// The returned path is absolute.
	assert.True(t, filepath.IsAbs(path))
}

/*
TestBackup_ExplicitDestination verifies an explicit path passes through.
*/
func TestBackup_ExplicitDestination(t *testing.T) {
	service, repo := newTestService(t, t.TempDir())

	destination := filepath.Join(t.TempDir(), "nightly.db")
	_, err := service.Backup(context.Background(), destination)
	require.NoError(t, err)

	assert.Equal(t, destination, repo.backupDestination)
}

/*
TestBackup_ForcesExtension verifies that a destination without a SQLite
extension is corrected before storage sees it, and the corrected path is
the one reported back.
*/
func TestBackup_ForcesExtension(t *testing.T) {
	service, repo := newTestService(t, t.TempDir())

	destination := filepath.Join(t.TempDir(), "nightly")
	path, err := service.Backup(context.Background(), destination)
	require.NoError(t, err)

	assert.Equal(t, destination+".sqlite", repo.backupDestination)
	assert.True(t, strings.HasSuffix(path, "nightly.sqlite"))
}

/*
TestExportImport_RoundTrip exports the snapshot to disk and imports it
back, checking the restored payload and the summary counts.
*/
func TestExportImport_RoundTrip(t *testing.T) {
	service, repo := newTestService(t, t.TempDir())

	destination := filepath.Join(t.TempDir(), "archive.json")
	path, err := service.ExportJSON(context.Background(), destination)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"student_id": "S123"`)

	summary, err := service.ImportJSON(context.Background(), path)
	require.NoError(t, err)

	require.NotNil(t, repo.restored)
	assert.Equal(t, repo.snapshot, repo.restored)
	assert.Equal(t, 1, summary.Students)
	assert.Equal(t, 1, summary.Instructors)
	assert.Equal(t, 1, summary.Courses)
	assert.Equal(t, 1, summary.Registrations)
}

/*
TestImportJSON_Errors covers a missing file and a malformed archive.
*/
func TestImportJSON_Errors(t *testing.T) {
	service, repo := newTestService(t, t.TempDir())

	_, err := service.ImportJSON(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	broken := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{not json"), 0o644))

	_, err = service.ImportJSON(context.Background(), broken)
	require.Error(t, err)

	var appError *apperr.AppError
	require.ErrorAs(t, err, &appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)

	assert.Nil(t, repo.restored)
}

/*
TestExportCSV verifies the unified table shape: header plus one row per
record, with courses leaving email and age blank.
*/
func TestExportCSV(t *testing.T) {
	service, _ := newTestService(t, t.TempDir())

	var buffer bytes.Buffer
	require.NoError(t, service.ExportCSV(context.Background(), &buffer))

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "Type,Name,ID Number,Email,Age", lines[0])
	assert.Equal(t, "Student,Jane Doe,S123,jane.doe@example.com,21", lines[1])
	assert.Equal(t, "Instructor,Alan Turing,I100,alan@example.com,41", lines[2])
	assert.Equal(t, "Course,Intro To Computing,CS101,,", lines[3])
}
