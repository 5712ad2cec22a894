package student

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/registra-app/registra/internal/platform/database/schema"
	"github.com/registra-app/registra/internal/platform/dberr"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (repository *SQLiteRepository) ListStudents(context context.Context, f Filter, limit, offset int) ([]*Student, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
	`,
		schema.Student.StudentID, schema.Student.Name, schema.Student.Age, schema.Student.Email,
		schema.Student.Table,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.Student.Table)

	args := []any{}
	countArgs := []any{}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		clause := fmt.Sprintf(` WHERE %s LIKE ? OR %s LIKE ? OR %s LIKE ?`,
			schema.Student.Name, schema.Student.StudentID, schema.Student.Email)
		query += clause
		countQuery += clause
		args = append(args, searchTerm, searchTerm, searchTerm)
		countArgs = append(countArgs, searchTerm, searchTerm, searchTerm)
	}

	query += fmt.Sprintf(" ORDER BY %s ASC LIMIT ? OFFSET ?", schema.Student.Name)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRowContext(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_students")
	}

	rows, err := repository.db.QueryContext(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_students")
	}
	defer rows.Close()

	var students []*Student
	for rows.Next() {
		s := &Student{}
		if err := rows.Scan(&s.StudentID, &s.Name, &s.Age, &s.Email); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_student")
		}
		students = append(students, s)
	}

	return students, total, nil
}

func (repository *SQLiteRepository) GetStudent(context context.Context, id string) (*Student, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = ?
	`,
		schema.Student.StudentID, schema.Student.Name, schema.Student.Age, schema.Student.Email,
		schema.Student.Table, schema.Student.StudentID,
	)
	s := &Student{}

	err := repository.db.QueryRowContext(context, query, id).Scan(
		&s.StudentID, &s.Name, &s.Age, &s.Email,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_student")
	}

	return s, nil
}

func (repository *SQLiteRepository) CreateStudent(context context.Context, s *Student) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES (?, ?, ?, ?)
	`,
		schema.Student.Table,
		schema.Student.StudentID, schema.Student.Name, schema.Student.Age, schema.Student.Email,
	)

	_, err := repository.db.ExecContext(context, query, s.StudentID, s.Name, s.Age, s.Email)
	return dberr.Wrap(err, "create_student")
}

func (repository *SQLiteRepository) UpdateStudent(context context.Context, id string, input UpdateInput) (*Student, error) {
	// Assemble only the provided fields; a fully-empty input is a no-op read.
	setClauses := []string{}
	args := []any{}

	if input.Name != nil {
		setClauses = append(setClauses, schema.Student.Name+" = ?")
		args = append(args, *input.Name)
	}
	if input.Age != nil {
		setClauses = append(setClauses, schema.Student.Age+" = ?")
		args = append(args, *input.Age)
	}
	if input.Email != nil {
		setClauses = append(setClauses, schema.Student.Email+" = ?")
		args = append(args, *input.Email)
	}
	if input.NewStudentID != nil {
		// ON UPDATE CASCADE carries the rename into registrations.
		setClauses = append(setClauses, schema.Student.StudentID+" = ?")
		args = append(args, *input.NewStudentID)
	}

	currentID := id
	if len(setClauses) > 0 {
		query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?",
			schema.Student.Table, strings.Join(setClauses, ", "), schema.Student.StudentID)
		args = append(args, id)

		result, err := repository.db.ExecContext(context, query, args...)
		if err != nil {
			return nil, dberr.Wrap(err, "update_student")
		}
		if affected, _ := result.RowsAffected(); affected == 0 {
			return nil, dberr.ErrNotFound
		}

		if input.NewStudentID != nil {
			currentID = *input.NewStudentID
		}
	}

	return repository.GetStudent(context, currentID)
}

func (repository *SQLiteRepository) DeleteStudent(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`,
		schema.Student.Table, schema.Student.StudentID)

	result, err := repository.db.ExecContext(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_student")
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
