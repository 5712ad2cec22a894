// Copyright (c) 2026 Registra. All rights reserved.
// Author: dev@registra.app

package roster

import (
	"sort"
)

// Roster groups the three entity maps, each keyed by its external ID.
// Adding an entity with an existing ID replaces the previous record.
type Roster struct {
	Students    map[string]*Student
	Instructors map[string]*Instructor
	Courses     map[string]*Course
}

// New returns an empty roster.
func New() *Roster {
	return &Roster{
		Students:    make(map[string]*Student),
		Instructors: make(map[string]*Instructor),
		Courses:     make(map[string]*Course),
	}
}

// AddStudent stores a student keyed by its ID, replacing any previous entry.
func (r *Roster) AddStudent(student *Student) {
	r.Students[student.StudentID] = student
}

// AddInstructor stores an instructor keyed by its ID, replacing any previous entry.
func (r *Roster) AddInstructor(instructor *Instructor) {
	r.Instructors[instructor.InstructorID] = instructor
}

// AddCourse stores a course keyed by its ID, replacing any previous entry.
func (r *Roster) AddCourse(course *Course) {
	r.Courses[course.CourseID] = course
}

// Snapshot flattens the roster into its serializable document form.
// Entities are ordered by ID so snapshots are deterministic.
func (r *Roster) Snapshot() Document {
	doc := Document{
		SchemaVersion: SchemaVersion,
		Students:      make([]StudentRecord, 0, len(r.Students)),
		Instructors:   make([]InstructorRecord, 0, len(r.Instructors)),
		Courses:       make([]CourseRecord, 0, len(r.Courses)),
	}

	for _, id := range sortedKeys(r.Students) {
		doc.Students = append(doc.Students, r.Students[id].Record())
	}
	for _, id := range sortedKeys(r.Instructors) {
		doc.Instructors = append(doc.Instructors, r.Instructors[id].Record())
	}
	for _, id := range sortedKeys(r.Courses) {
		doc.Courses = append(doc.Courses, r.Courses[id].Record())
	}

	return doc
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
