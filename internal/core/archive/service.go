package archive

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/registra-app/registra/internal/platform/apperr"
	"github.com/registra-app/registra/internal/platform/constants"
	"github.com/registra-app/registra/internal/platform/sqlite"
)

type Service struct {
	repo      Repository
	backupDir string
	logger    *slog.Logger
}

func NewService(repo Repository, backupDir string, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		backupDir: backupDir,
		logger:    logger,
	}
}

// # Database Backup

// Backup copies the live database to destination and returns the final
// path. When destination is empty, a timestamped file is created in the
// configured backup directory.
func (service *Service) Backup(context context.Context, destination string) (string, error) {
	if destination == "" {
		timestamp := time.Now().Format(constants.BackupTimestampLayout)
		destination = filepath.Join(service.backupDir, fmt.Sprintf("registra_%s.sqlite", timestamp))
	}

	// Normalize here so the path reported to the caller matches the file the
	// store actually writes.
	destination = sqlite.NormalizeBackupPath(destination)

	if err := service.repo.Backup(context, destination); err != nil {
		return "", err
	}

	absolute, err := filepath.Abs(destination)
	if err != nil {
		absolute = destination
	}

	service.logger.Info("database_backed_up", slog.String("path", absolute))
	return absolute, nil
}

// # JSON Archive

// ExportJSON writes the full store to destination as indented JSON and
// returns the final path. When destination is empty, a timestamped file is
// created in the configured backup directory.
func (service *Service) ExportJSON(context context.Context, destination string) (string, error) {
	payload, err := service.repo.Snapshot(context)
	if err != nil {
		return "", err
	}

	if destination == "" {
		timestamp := time.Now().Format(constants.BackupTimestampLayout)
		destination = filepath.Join(service.backupDir, fmt.Sprintf("export_%s.json", timestamp))
	}

	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", apperr.IO("Failed to encode archive", err)
	}

	if err := os.MkdirAll(filepath.Dir(destination), 0o755); err != nil {
		return "", apperr.IO("Failed to create archive directory", err)
	}
	if err := os.WriteFile(destination, encoded, 0o644); err != nil {
		return "", apperr.IO("Failed to write archive", err)
	}

	absolute, err := filepath.Abs(destination)
	if err != nil {
		absolute = destination
	}

	service.logger.Info("store_exported",
		slog.String("path", absolute),
		slog.Int("students", len(payload.Students)),
		slog.Int("courses", len(payload.Courses)),
	)
	return absolute, nil
}

// ImportJSON replaces the entire store with the archive at source. The
// whole swap runs in one transaction; on any failure the store is left
// untouched.
func (service *Service) ImportJSON(context context.Context, source string) (*ImportSummary, error) {
	raw, err := os.ReadFile(source)
	if err != nil {
		return nil, apperr.IO("Failed to read archive", err)
	}

	var payload Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, apperr.ValidationError("Archive is not valid JSON")
	}

	if err := service.repo.Restore(context, &payload); err != nil {
		return nil, err
	}

	summary := &ImportSummary{
		Students:      len(payload.Students),
		Instructors:   len(payload.Instructors),
		Courses:       len(payload.Courses),
		Registrations: len(payload.Registrations),
	}

	service.logger.Warn("store_imported",
		slog.String("source", source),
		slog.Int("students", summary.Students),
		slog.Int("instructors", summary.Instructors),
		slog.Int("courses", summary.Courses),
		slog.Int("registrations", summary.Registrations),
	)
	return summary, nil
}

// # CSV Export

// csvHeader is the unified column set; courses leave email and age empty.
var csvHeader = []string{"Type", "Name", "ID Number", "Email", "Age"}

// ExportCSV streams all records to the writer as a single unified table.
func (service *Service) ExportCSV(context context.Context, writer io.Writer) error {
	payload, err := service.repo.Snapshot(context)
	if err != nil {
		return err
	}

	out := csv.NewWriter(writer)
	if err := out.Write(csvHeader); err != nil {
		return apperr.IO("Failed to write CSV header", err)
	}

	for _, row := range payload.Students {
		record := []string{"Student", row.Name, row.StudentID, row.Email, strconv.Itoa(row.Age)}
		if err := out.Write(record); err != nil {
			return apperr.IO("Failed to write CSV row", err)
		}
	}
	for _, row := range payload.Instructors {
		record := []string{"Instructor", row.Name, row.InstructorID, row.Email, strconv.Itoa(row.Age)}
		if err := out.Write(record); err != nil {
			return apperr.IO("Failed to write CSV row", err)
		}
	}
	for _, row := range payload.Courses {
		record := []string{"Course", row.CourseName, row.CourseID, "", ""}
		if err := out.Write(record); err != nil {
			return apperr.IO("Failed to write CSV row", err)
		}
	}

	out.Flush()
	if err := out.Error(); err != nil {
		return apperr.IO("Failed to flush CSV output", err)
	}

	return nil
}
