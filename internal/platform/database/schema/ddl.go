package schema

// DDL is the idempotent bootstrap script for the SQLite store.
//
// Relationship rules:
//
//   - courses.instructor_id is nullable; deleting an instructor orphans
//     their courses (SET NULL) rather than deleting them.
//   - registrations rows follow their parent course/student on delete,
//     and follow identifier changes on update.
const DDL = `
CREATE TABLE IF NOT EXISTS students (
    student_id TEXT PRIMARY KEY,
    name       TEXT NOT NULL,
    age        INTEGER NOT NULL,
    email      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS instructors (
    instructor_id TEXT PRIMARY KEY,
    name          TEXT NOT NULL,
    age           INTEGER NOT NULL,
    email         TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS courses (
    course_id     TEXT PRIMARY KEY,
    course_name   TEXT NOT NULL,
    instructor_id TEXT DEFAULT NULL,
    FOREIGN KEY (instructor_id) REFERENCES instructors(instructor_id)
        ON DELETE SET NULL ON UPDATE CASCADE
);

CREATE TABLE IF NOT EXISTS registrations (
    course_id  TEXT NOT NULL,
    student_id TEXT NOT NULL,
    PRIMARY KEY (course_id, student_id),
    FOREIGN KEY (course_id) REFERENCES courses(course_id)
        ON DELETE CASCADE ON UPDATE CASCADE,
    FOREIGN KEY (student_id) REFERENCES students(student_id)
        ON DELETE CASCADE ON UPDATE CASCADE
);
`
