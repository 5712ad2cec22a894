// Copyright (c) 2026 Registra. All rights reserved.
// Author: dev@registra.app

package roster

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/registra-app/registra/internal/platform/apperr"
	"github.com/registra-app/registra/internal/platform/validate"
)

// SchemaVersion is written into every snapshot document so future format
// changes can be detected at load time.
const SchemaVersion = 1

// # Wire Format

// StudentRecord is the serialized form of a [Student].
type StudentRecord struct {
	Name                string   `json:"name"`
	Age                 int      `json:"age"`
	Email               string   `json:"email"`
	StudentID           string   `json:"student_id"`
	RegisteredCourseIDs []string `json:"registered_course_ids"`
}

// InstructorRecord is the serialized form of an [Instructor].
type InstructorRecord struct {
	Name              string   `json:"name"`
	Age               int      `json:"age"`
	Email             string   `json:"email"`
	InstructorID      string   `json:"instructor_id"`
	AssignedCourseIDs []string `json:"assigned_course_ids"`
}

// CourseRecord is the serialized form of a [Course]. InstructorID is nil
// for an unassigned course.
type CourseRecord struct {
	CourseID           string   `json:"course_id"`
	CourseName         string   `json:"course_name"`
	InstructorID       *string  `json:"instructor_id"`
	EnrolledStudentIDs []string `json:"enrolled_student_ids"`
}

// Document is the versioned top-level JSON snapshot of a roster.
type Document struct {
	SchemaVersion int                `json:"schema_version"`
	Students      []StudentRecord    `json:"students"`
	Instructors   []InstructorRecord `json:"instructors"`
	Courses       []CourseRecord     `json:"courses"`
}

// LoadResult reports what a [Load] call reconstructed.
//
// Dropped counts relationship references that named an entity missing from
// the document; the loader skips these instead of failing the whole load.
type LoadResult struct {
	Students    int
	Instructors int
	Courses     int
	Dropped     int
}

// # Persistence

// Save writes the roster snapshot to path as indented JSON.
//
// The write is atomic: the document lands in a sibling .tmp file first and
// is renamed over the target, so a crash never leaves a half-written file.
func (r *Roster) Save(path string) error {
	payload, err := json.MarshalIndent(r.Snapshot(), "", "  ")
	if err != nil {
		return apperr.IO("Failed to encode roster snapshot", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return apperr.IO("Failed to create snapshot directory", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return apperr.IO("Failed to write roster snapshot", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return apperr.IO("Failed to finalize roster snapshot", err)
	}

	return nil
}

// Load reads a snapshot document from path and rebuilds the full roster.
//
// Reconstruction happens in passes: entities are built first without
// relations, then enrollments and instructor assignments are re-wired from
// the recorded IDs. References to entities absent from the document are
// dropped and counted in [LoadResult.Dropped]. Because every wiring helper
// is idempotent, the redundant inverse lists in the document cannot
// produce duplicate links.
func Load(path string) (*Roster, LoadResult, error) {
	var result LoadResult

	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, result, apperr.IO("Failed to read roster snapshot", err)
	}

	var doc Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, result, apperr.IO("Failed to decode roster snapshot", err)
	}

	roster := New()

	// Pass 1: build plain entities, no links yet.
	for _, record := range doc.Students {
		student, err := StudentFromRecord(record)
		if err != nil {
			return nil, result, fmt.Errorf("student %q: %w", record.StudentID, err)
		}
		roster.AddStudent(student)
	}
	for _, record := range doc.Instructors {
		instructor, err := InstructorFromRecord(record)
		if err != nil {
			return nil, result, fmt.Errorf("instructor %q: %w", record.InstructorID, err)
		}
		roster.AddInstructor(instructor)
	}
	for _, record := range doc.Courses {
		course, err := CourseFromRecord(record)
		if err != nil {
			return nil, result, fmt.Errorf("course %q: %w", record.CourseID, err)
		}
		roster.AddCourse(course)
	}

	// The constructors key the roster maps by normalized (uppercase) IDs, so
	// every recorded ID must be normalized the same way before lookup or a
	// lowercase reference would miss its own entity.

	// Pass 2: student -> course enrollments.
	for _, record := range doc.Students {
		student := roster.Students[validate.NormID(record.StudentID)]
		for _, courseID := range record.RegisteredCourseIDs {
			course, ok := roster.Courses[validate.NormID(courseID)]
			if !ok {
				result.Dropped++
				continue
			}
			course.AddStudent(student)
		}
	}

	// Pass 3: course -> instructor link plus the course's own student list.
	for _, record := range doc.Courses {
		course := roster.Courses[validate.NormID(record.CourseID)]
		if record.InstructorID != nil {
			if instructor, ok := roster.Instructors[validate.NormID(*record.InstructorID)]; ok {
				course.SetInstructor(instructor)
			} else {
				result.Dropped++
			}
		}
		for _, studentID := range record.EnrolledStudentIDs {
			student, ok := roster.Students[validate.NormID(studentID)]
			if !ok {
				result.Dropped++
				continue
			}
			course.AddStudent(student)
		}
	}

	// Pass 4: instructor -> course assignments (covers documents where the
	// course record lost its instructor link).
	for _, record := range doc.Instructors {
		instructor := roster.Instructors[validate.NormID(record.InstructorID)]
		for _, courseID := range record.AssignedCourseIDs {
			course, ok := roster.Courses[validate.NormID(courseID)]
			if !ok {
				result.Dropped++
				continue
			}
			instructor.AssignCourse(course)
		}
	}

	result.Students = len(roster.Students)
	result.Instructors = len(roster.Instructors)
	result.Courses = len(roster.Courses)

	return roster, result, nil
}
