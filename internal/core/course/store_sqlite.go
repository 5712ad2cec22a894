package course

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/registra-app/registra/internal/platform/apperr"
	"github.com/registra-app/registra/internal/platform/database/schema"
	"github.com/registra-app/registra/internal/platform/dberr"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// selectWithInstructor is the shared projection joining the instructor name.
func selectWithInstructor() string {
	return fmt.Sprintf(`
		SELECT c.%s, c.%s, c.%s, i.%s
		FROM %s c
		LEFT JOIN %s i ON c.%s = i.%s
	`,
		schema.Course.CourseID, schema.Course.CourseName, schema.Course.InstructorID, schema.Instructor.Name,
		schema.Course.Table,
		schema.Instructor.Table, schema.Course.InstructorID, schema.Instructor.InstructorID,
	)
}

func scanCourse(scanner interface{ Scan(...any) error }) (*Course, error) {
	c := &Course{}
	if err := scanner.Scan(&c.CourseID, &c.CourseName, &c.InstructorID, &c.InstructorName); err != nil {
		return nil, err
	}
	return c, nil
}

func (repository *SQLiteRepository) ListCourses(context context.Context, f Filter, limit, offset int) ([]*Course, int, error) {
	query := selectWithInstructor()
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s c`, schema.Course.Table)

	args := []any{}
	countArgs := []any{}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		clause := fmt.Sprintf(` WHERE c.%s LIKE ? OR c.%s LIKE ?`,
			schema.Course.CourseName, schema.Course.CourseID)
		query += clause
		countQuery += clause
		args = append(args, searchTerm, searchTerm)
		countArgs = append(countArgs, searchTerm, searchTerm)
	}

	query += fmt.Sprintf(" ORDER BY c.%s ASC LIMIT ? OFFSET ?", schema.Course.CourseID)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRowContext(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_courses")
	}

	rows, err := repository.db.QueryContext(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_courses")
	}
	defer rows.Close()

	var courses []*Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_course")
		}
		courses = append(courses, c)
	}

	return courses, total, nil
}

func (repository *SQLiteRepository) GetCourse(context context.Context, id string) (*Course, error) {
	query := selectWithInstructor() + fmt.Sprintf(" WHERE c.%s = ?", schema.Course.CourseID)

	c, err := scanCourse(repository.db.QueryRowContext(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_course")
	}

	return c, nil
}

func (repository *SQLiteRepository) CreateCourse(context context.Context, c *Course) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES (?, ?, ?)
	`,
		schema.Course.Table,
		schema.Course.CourseID, schema.Course.CourseName, schema.Course.InstructorID,
	)

	_, err := repository.db.ExecContext(context, query, c.CourseID, c.CourseName, c.InstructorID)
	return dberr.Wrap(err, "create_course")
}

func (repository *SQLiteRepository) UpdateCourse(context context.Context, id string, input UpdateInput) (*Course, error) {
	setClauses := []string{}
	args := []any{}

	if input.CourseName != nil {
		setClauses = append(setClauses, schema.Course.CourseName+" = ?")
		args = append(args, *input.CourseName)
	}
	if input.InstructorID != nil {
		setClauses = append(setClauses, schema.Course.InstructorID+" = ?")
		if *input.InstructorID == "" {
			// Empty ID clears the assignment.
			args = append(args, nil)
		} else {
			args = append(args, *input.InstructorID)
		}
	}
	if input.NewCourseID != nil {
		// ON UPDATE CASCADE carries the rename into registrations.
		setClauses = append(setClauses, schema.Course.CourseID+" = ?")
		args = append(args, *input.NewCourseID)
	}

	currentID := id
	if len(setClauses) > 0 {
		query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?",
			schema.Course.Table, strings.Join(setClauses, ", "), schema.Course.CourseID)
		args = append(args, id)

		result, err := repository.db.ExecContext(context, query, args...)
		if err != nil {
			return nil, dberr.Wrap(err, "update_course")
		}
		if affected, _ := result.RowsAffected(); affected == 0 {
			return nil, dberr.ErrNotFound
		}

		if input.NewCourseID != nil {
			currentID = *input.NewCourseID
		}
	}

	return repository.GetCourse(context, currentID)
}

func (repository *SQLiteRepository) DeleteCourse(context context.Context, id string) error {
	// ON DELETE CASCADE removes the course's registrations with it.
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`,
		schema.Course.Table, schema.Course.CourseID)

	result, err := repository.db.ExecContext(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_course")
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// # Registrations

func (repository *SQLiteRepository) RegisterStudent(context context.Context, courseID, studentID string) error {
	// Both rows must exist before the link is written; a missing entity is a
	// NOT_FOUND, never a silent insert failure.
	if err := repository.ensureExists(context, schema.Student.Table, schema.Student.StudentID, studentID, "Student"); err != nil {
		return err
	}
	if err := repository.ensureExists(context, schema.Course.Table, schema.Course.CourseID, courseID, "Course"); err != nil {
		return err
	}

	// INSERT OR IGNORE makes repeated registration idempotent.
	query := fmt.Sprintf(`INSERT OR IGNORE INTO %s (%s, %s) VALUES (?, ?)`,
		schema.Registration.Table, schema.Registration.CourseID, schema.Registration.StudentID)

	_, err := repository.db.ExecContext(context, query, courseID, studentID)
	return dberr.Wrap(err, "register_student")
}

func (repository *SQLiteRepository) UnregisterStudent(context context.Context, courseID, studentID string) error {
	// Removing a registration that does not exist is a no-op.
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = ? AND %s = ?`,
		schema.Registration.Table, schema.Registration.CourseID, schema.Registration.StudentID)

	_, err := repository.db.ExecContext(context, query, courseID, studentID)
	return dberr.Wrap(err, "unregister_student")
}

func (repository *SQLiteRepository) CourseStudents(context context.Context, courseID string) ([]*EnrolledStudent, error) {
	if err := repository.ensureExists(context, schema.Course.Table, schema.Course.CourseID, courseID, "Course"); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT s.%s, s.%s, s.%s, s.%s
		FROM %s s
		JOIN %s r ON s.%s = r.%s
		WHERE r.%s = ?
		ORDER BY s.%s ASC
	`,
		schema.Student.StudentID, schema.Student.Name, schema.Student.Age, schema.Student.Email,
		schema.Student.Table,
		schema.Registration.Table, schema.Student.StudentID, schema.Registration.StudentID,
		schema.Registration.CourseID,
		schema.Student.Name,
	)

	rows, err := repository.db.QueryContext(context, query, courseID)
	if err != nil {
		return nil, dberr.Wrap(err, "course_students")
	}
	defer rows.Close()

	var students []*EnrolledStudent
	for rows.Next() {
		s := &EnrolledStudent{}
		if err := rows.Scan(&s.StudentID, &s.Name, &s.Age, &s.Email); err != nil {
			return nil, dberr.Wrap(err, "scan_course_student")
		}
		students = append(students, s)
	}

	return students, nil
}

func (repository *SQLiteRepository) StudentCourses(context context.Context, studentID string) ([]*Course, error) {
	if err := repository.ensureExists(context, schema.Student.Table, schema.Student.StudentID, studentID, "Student"); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT c.%s, c.%s, c.%s, i.%s
		FROM %s c
		JOIN %s r ON c.%s = r.%s
		LEFT JOIN %s i ON c.%s = i.%s
		WHERE r.%s = ?
		ORDER BY c.%s ASC
	`,
		schema.Course.CourseID, schema.Course.CourseName, schema.Course.InstructorID, schema.Instructor.Name,
		schema.Course.Table,
		schema.Registration.Table, schema.Course.CourseID, schema.Registration.CourseID,
		schema.Instructor.Table, schema.Course.InstructorID, schema.Instructor.InstructorID,
		schema.Registration.StudentID,
		schema.Course.CourseName,
	)

	rows, err := repository.db.QueryContext(context, query, studentID)
	if err != nil {
		return nil, dberr.Wrap(err, "student_courses")
	}
	defer rows.Close()

	var courses []*Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_student_course")
		}
		courses = append(courses, c)
	}

	return courses, nil
}

func (repository *SQLiteRepository) InstructorCourses(context context.Context, instructorID string) ([]*Course, error) {
	if err := repository.ensureExists(context, schema.Instructor.Table, schema.Instructor.InstructorID, instructorID, "Instructor"); err != nil {
		return nil, err
	}

	query := selectWithInstructor() + fmt.Sprintf(" WHERE c.%s = ? ORDER BY c.%s ASC",
		schema.Course.InstructorID, schema.Course.CourseName)

	rows, err := repository.db.QueryContext(context, query, instructorID)
	if err != nil {
		return nil, dberr.Wrap(err, "instructor_courses")
	}
	defer rows.Close()

	var courses []*Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_instructor_course")
		}
		courses = append(courses, c)
	}

	return courses, nil
}

// ensureExists fails with a typed NOT_FOUND naming the missing resource.
func (repository *SQLiteRepository) ensureExists(context context.Context, table, column, id, resource string) error {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = ?)`, table, column)

	var exists bool
	if err := repository.db.QueryRowContext(context, query, id).Scan(&exists); err != nil {
		return dberr.Wrap(err, "exists_"+table)
	}
	if !exists {
		return apperr.NotFound(resource)
	}
	return nil
}
