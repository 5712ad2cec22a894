package archive

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/registra-app/registra/internal/platform/database/schema"
	"github.com/registra-app/registra/internal/platform/dberr"
	"github.com/registra-app/registra/internal/platform/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (repository *SQLiteRepository) Snapshot(context context.Context) (*Payload, error) {
	payload := &Payload{
		Students:      []StudentRow{},
		Instructors:   []InstructorRow{},
		Courses:       []CourseRow{},
		Registrations: []RegistrationRow{},
	}

	studentQuery := fmt.Sprintf("SELECT %s, %s, %s, %s FROM %s ORDER BY %s ASC",
		schema.Student.StudentID, schema.Student.Name, schema.Student.Age, schema.Student.Email,
		schema.Student.Table, schema.Student.StudentID)
	rows, err := repository.db.QueryContext(context, studentQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "snapshot_students")
	}
	for rows.Next() {
		var row StudentRow
		if err := rows.Scan(&row.StudentID, &row.Name, &row.Age, &row.Email); err != nil {
			rows.Close()
			return nil, dberr.Wrap(err, "scan_snapshot_student")
		}
		payload.Students = append(payload.Students, row)
	}
	rows.Close()

	instructorQuery := fmt.Sprintf("SELECT %s, %s, %s, %s FROM %s ORDER BY %s ASC",
		schema.Instructor.InstructorID, schema.Instructor.Name, schema.Instructor.Age, schema.Instructor.Email,
		schema.Instructor.Table, schema.Instructor.InstructorID)
	rows, err = repository.db.QueryContext(context, instructorQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "snapshot_instructors")
	}
	for rows.Next() {
		var row InstructorRow
		if err := rows.Scan(&row.InstructorID, &row.Name, &row.Age, &row.Email); err != nil {
			rows.Close()
			return nil, dberr.Wrap(err, "scan_snapshot_instructor")
		}
		payload.Instructors = append(payload.Instructors, row)
	}
	rows.Close()

	courseQuery := fmt.Sprintf("SELECT %s, %s, %s FROM %s ORDER BY %s ASC",
		schema.Course.CourseID, schema.Course.CourseName, schema.Course.InstructorID,
		schema.Course.Table, schema.Course.CourseID)
	rows, err = repository.db.QueryContext(context, courseQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "snapshot_courses")
	}
	for rows.Next() {
		var row CourseRow
		if err := rows.Scan(&row.CourseID, &row.CourseName, &row.InstructorID); err != nil {
			rows.Close()
			return nil, dberr.Wrap(err, "scan_snapshot_course")
		}
		payload.Courses = append(payload.Courses, row)
	}
	rows.Close()

	registrationQuery := fmt.Sprintf("SELECT %s, %s FROM %s ORDER BY %s ASC, %s ASC",
		schema.Registration.CourseID, schema.Registration.StudentID,
		schema.Registration.Table, schema.Registration.CourseID, schema.Registration.StudentID)
	rows, err = repository.db.QueryContext(context, registrationQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "snapshot_registrations")
	}
	for rows.Next() {
		var row RegistrationRow
		if err := rows.Scan(&row.CourseID, &row.StudentID); err != nil {
			rows.Close()
			return nil, dberr.Wrap(err, "scan_snapshot_registration")
		}
		payload.Registrations = append(payload.Registrations, row)
	}
	rows.Close()

	return payload, nil
}

func (repository *SQLiteRepository) Restore(context context.Context, payload *Payload) error {
	transaction, err := repository.db.BeginTx(context, nil)
	if err != nil {
		return dberr.Wrap(err, "restore_begin")
	}
	defer func() { _ = transaction.Rollback() }()

	// Wipe in child-first order so foreign keys stay satisfied.
	wipeTables := []string{
		schema.Registration.Table,
		schema.Course.Table,
		schema.Instructor.Table,
		schema.Student.Table,
	}
	for _, table := range wipeTables {
		if _, err := transaction.ExecContext(context, "DELETE FROM "+table); err != nil {
			return dberr.Wrap(err, "restore_wipe_"+table)
		}
	}

	// Reload parent-first.
	studentInsert := fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s) VALUES (?, ?, ?, ?)",
		schema.Student.Table,
		schema.Student.StudentID, schema.Student.Name, schema.Student.Age, schema.Student.Email)
	for _, row := range payload.Students {
		if _, err := transaction.ExecContext(context, studentInsert, row.StudentID, row.Name, row.Age, row.Email); err != nil {
			return dberr.Wrap(err, "restore_student")
		}
	}

	instructorInsert := fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s) VALUES (?, ?, ?, ?)",
		schema.Instructor.Table,
		schema.Instructor.InstructorID, schema.Instructor.Name, schema.Instructor.Age, schema.Instructor.Email)
	for _, row := range payload.Instructors {
		if _, err := transaction.ExecContext(context, instructorInsert, row.InstructorID, row.Name, row.Age, row.Email); err != nil {
			return dberr.Wrap(err, "restore_instructor")
		}
	}

	courseInsert := fmt.Sprintf("INSERT INTO %s (%s, %s, %s) VALUES (?, ?, ?)",
		schema.Course.Table,
		schema.Course.CourseID, schema.Course.CourseName, schema.Course.InstructorID)
	for _, row := range payload.Courses {
		if _, err := transaction.ExecContext(context, courseInsert, row.CourseID, row.CourseName, row.InstructorID); err != nil {
			return dberr.Wrap(err, "restore_course")
		}
	}

	registrationInsert := fmt.Sprintf("INSERT OR IGNORE INTO %s (%s, %s) VALUES (?, ?)",
		schema.Registration.Table,
		schema.Registration.CourseID, schema.Registration.StudentID)
	for _, row := range payload.Registrations {
		if _, err := transaction.ExecContext(context, registrationInsert, row.CourseID, row.StudentID); err != nil {
			return dberr.Wrap(err, "restore_registration")
		}
	}

	if err := transaction.Commit(); err != nil {
		return dberr.Wrap(err, "restore_commit")
	}
	return nil
}

func (repository *SQLiteRepository) Backup(context context.Context, destination string) error {
	return sqlite.Backup(context, repository.db, destination)
}
