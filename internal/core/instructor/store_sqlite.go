package instructor

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

func (repository *SQLiteRepository) ListInstructors(context context.Context, f Filter, limit, offset int) ([]*Instructor, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
	`,
		schema.Instructor.InstructorID, schema.Instructor.Name, schema.Instructor.Age, schema.Instructor.Email,
		schema.Instructor.Table,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.Instructor.Table)

	args := []any{}
	countArgs := []any{}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		clause := fmt.Sprintf(` WHERE %s LIKE ? OR %s LIKE ? OR %s LIKE ?`,
			schema.Instructor.Name, schema.Instructor.InstructorID, schema.Instructor.Email)
		query += clause
		countQuery += clause
		args = append(args, searchTerm, searchTerm, searchTerm)
		countArgs = append(countArgs, searchTerm, searchTerm, searchTerm)
	}

	query += fmt.Sprintf(" ORDER BY %s ASC LIMIT ? OFFSET ?", schema.Instructor.Name)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRowContext(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_instructors")
	}

	rows, err := repository.db.QueryContext(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_instructors")
	}
	defer rows.Close()

	var instructors []*Instructor
	for rows.Next() {
		i := &Instructor{}
		if err := rows.Scan(&i.InstructorID, &i.Name, &i.Age, &i.Email); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_instructor")
		}
		instructors = append(instructors, i)
	}

	return instructors, total, nil
}

func (repository *SQLiteRepository) GetInstructor(context context.Context, id string) (*Instructor, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = ?
	`,
		schema.Instructor.InstructorID, schema.Instructor.Name, schema.Instructor.Age, schema.Instructor.Email,
		schema.Instructor.Table, schema.Instructor.InstructorID,
	)
	i := &Instructor{}

	err := repository.db.QueryRowContext(context, query, id).Scan(
		&i.InstructorID, &i.Name, &i.Age, &i.Email,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_instructor")
	}

	return i, nil
}

func (repository *SQLiteRepository) CreateInstructor(context context.Context, i *Instructor) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES (?, ?, ?, ?)
	`,
		schema.Instructor.Table,
		schema.Instructor.InstructorID, schema.Instructor.Name, schema.Instructor.Age, schema.Instructor.Email,
	)

	_, err := repository.db.ExecContext(context, query, i.InstructorID, i.Name, i.Age, i.Email)
	return dberr.Wrap(err, "create_instructor")
}

func (repository *SQLiteRepository) UpdateInstructor(context context.Context, id string, input UpdateInput) (*Instructor, error) {
	setClauses := []string{}
	args := []any{}

	if input.Name != nil {
		setClauses = append(setClauses, schema.Instructor.Name+" = ?")
		args = append(args, *input.Name)
	}
	if input.Age != nil {
		setClauses = append(setClauses, schema.Instructor.Age+" = ?")
		args = append(args, *input.Age)
	}
	if input.Email != nil {
		setClauses = append(setClauses, schema.Instructor.Email+" = ?")
		args = append(args, *input.Email)
	}
	if input.NewInstructorID != nil {
		// ON UPDATE CASCADE carries the rename into courses.instructor_id.
		setClauses = append(setClauses, schema.Instructor.InstructorID+" = ?")
		args = append(args, *input.NewInstructorID)
	}

	currentID := id
	if len(setClauses) > 0 {
		query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?",
			schema.Instructor.Table, strings.Join(setClauses, ", "), schema.Instructor.InstructorID)
		args = append(args, id)

		result, err := repository.db.ExecContext(context, query, args...)
		if err != nil {
			return nil, dberr.Wrap(err, "update_instructor")
		}
		if affected, _ := result.RowsAffected(); affected == 0 {
			return nil, dberr.ErrNotFound
		}

		if input.NewInstructorID != nil {
			currentID = *input.NewInstructorID
		}
	}

	return repository.GetInstructor(context, currentID)
}

func (repository *SQLiteRepository) DeleteInstructor(context context.Context, id string) error {
	// ON DELETE SET NULL leaves the instructor's courses unassigned instead
	// of removing them.
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`,
		schema.Instructor.Table, schema.Instructor.InstructorID)

	result, err := repository.db.ExecContext(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_instructor")
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
