package search

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/registra-app/registra/internal/platform/database/schema"
	"github.com/registra-app/registra/internal/platform/dberr"
	"github.com/registra-app/registra/internal/platform/validate"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (repository *SQLiteRepository) Unified(context context.Context, term string) ([]Row, error) {
	searchTerm := "%" + strings.ToLower(term) + "%"
	var results []Row

	// Students and instructors share a projection; courses fill the person
	// fields with empty values so all rows fit one shape.
	studentQuery := fmt.Sprintf(`
		SELECT 'Student' AS type, %s, %s AS id_number, %s, %s
		FROM %s
		WHERE LOWER(%s) LIKE ? OR LOWER(%s) LIKE ? OR LOWER(%s) LIKE ?
	`,
		schema.Student.Name, schema.Student.StudentID, schema.Student.Email, schema.Student.Age,
		schema.Student.Table,
		schema.Student.Name, schema.Student.StudentID, schema.Student.Email,
	)
	if err := repository.appendPersonRows(context, &results, studentQuery, searchTerm, searchTerm, searchTerm); err != nil {
		return nil, err
	}

	instructorQuery := fmt.Sprintf(`
		SELECT 'Instructor' AS type, %s, %s AS id_number, %s, %s
		FROM %s
		WHERE LOWER(%s) LIKE ? OR LOWER(%s) LIKE ? OR LOWER(%s) LIKE ?
	`,
		schema.Instructor.Name, schema.Instructor.InstructorID, schema.Instructor.Email, schema.Instructor.Age,
		schema.Instructor.Table,
		schema.Instructor.Name, schema.Instructor.InstructorID, schema.Instructor.Email,
	)
	if err := repository.appendPersonRows(context, &results, instructorQuery, searchTerm, searchTerm, searchTerm); err != nil {
		return nil, err
	}

	courseQuery := fmt.Sprintf(`
		SELECT %s AS name, %s AS id_number
		FROM %s
		WHERE LOWER(%s) LIKE ? OR LOWER(%s) LIKE ?
	`,
		schema.Course.CourseName, schema.Course.CourseID,
		schema.Course.Table,
		schema.Course.CourseName, schema.Course.CourseID,
	)
	rows, err := repository.db.QueryContext(context, courseQuery, searchTerm, searchTerm)
	if err != nil {
		return nil, dberr.Wrap(err, "search_courses")
	}
	defer rows.Close()

	for rows.Next() {
		row := Row{Type: "Course"}
		if err := rows.Scan(&row.Name, &row.IDNumber); err != nil {
			return nil, dberr.Wrap(err, "scan_search_course")
		}
		results = append(results, row)
	}

	return results, nil
}

func (repository *SQLiteRepository) appendPersonRows(context context.Context, results *[]Row, query string, args ...any) error {
	rows, err := repository.db.QueryContext(context, query, args...)
	if err != nil {
		return dberr.Wrap(err, "search_people")
	}
	defer rows.Close()

	for rows.Next() {
		var row Row
		var age int
		if err := rows.Scan(&row.Type, &row.Name, &row.IDNumber, &row.Email, &age); err != nil {
			return dberr.Wrap(err, "scan_search_person")
		}
		row.Age = &age
		*results = append(*results, row)
	}

	return nil
}

func (repository *SQLiteRepository) Filtered(context context.Context, entity Entity, filters map[string]string) ([]map[string]any, error) {
	// Filter keys have already been checked against the allow-list; this is
	// enforced again here so the repository is safe on its own.
	query := fmt.Sprintf("SELECT * FROM %s WHERE 1=1", string(entity))
	args := []any{}

	// Deterministic clause order for testability.
	columns := make([]string, 0, len(filters))
	for column := range filters {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	for _, column := range columns {
		if !entity.ColumnAllowed(column) {
			return nil, validate.RequiredError(column, "Unknown filter column for "+string(entity))
		}
		query += fmt.Sprintf(" AND %s LIKE ?", column)
		args = append(args, "%"+filters[column]+"%")
	}

	rows, err := repository.db.QueryContext(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "filtered_search")
	}
	defer rows.Close()

	columnNames, err := rows.Columns()
	if err != nil {
		return nil, dberr.Wrap(err, "filtered_search_columns")
	}

	var results []map[string]any
	for rows.Next() {
		values := make([]any, len(columnNames))
		pointers := make([]any, len(columnNames))
		for index := range values {
			pointers[index] = &values[index]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, dberr.Wrap(err, "scan_filtered_search")
		}

		record := make(map[string]any, len(columnNames))
		for index, name := range columnNames {
			record[name] = values[index]
		}
		results = append(results, record)
	}

	return results, nil
}

func (repository *SQLiteRepository) Statistics(context context.Context) (*Statistics, error) {
	stats := &Statistics{}

	counts := []struct {
		table  string
		target *int
	}{
		{schema.Student.Table, &stats.Students},
		{schema.Instructor.Table, &stats.Instructors},
		{schema.Course.Table, &stats.Courses},
		{schema.Registration.Table, &stats.Registrations},
	}

	for _, count := range counts {
		query := fmt.Sprintf("SELECT count(*) FROM %s", count.table)
		if err := repository.db.QueryRowContext(context, query).Scan(count.target); err != nil {
			return nil, dberr.Wrap(err, "stats_count_"+count.table)
		}
	}

	// Average over courses that have at least one registration.
	avgQuery := fmt.Sprintf(`
		SELECT AVG(student_count) FROM (
			SELECT count(*) AS student_count
			FROM %s
			GROUP BY %s
		)
	`, schema.Registration.Table, schema.Registration.CourseID)

	var average sql.NullFloat64
	if err := repository.db.QueryRowContext(context, avgQuery).Scan(&average); err != nil {
		return nil, dberr.Wrap(err, "stats_average")
	}
	if average.Valid {
		stats.AvgStudentsPerCourse = math.Round(average.Float64*100) / 100
	}

	return stats, nil
}
