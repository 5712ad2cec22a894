// Copyright (c) 2026 Registra. All rights reserved.
// Author: dev@registra.app

package roster

import (
	"fmt"
	"strings"

	"github.com/registra-app/registra/internal/platform/apperr"
	"github.com/registra-app/registra/internal/platform/validate"
)

// Instructor is a person teaching zero or more courses.
//
// Assigned mirrors the Course.Instructor link; use
// [Instructor.AssignCourse] or [Course.SetInstructor] to change it.
type Instructor struct {
	Person
	InstructorID string
	Assigned     []*Course
}

// NewInstructor validates all fields and returns an instructor with no courses.
func NewInstructor(name string, age int, email, instructorID string) (*Instructor, error) {
	person, err := newPerson(name, age, email)
	if err != nil {
		return nil, err
	}

	if !validate.ValidInstructorID(instructorID) {
		return nil, apperr.ValidationError("Invalid instructor ID")
	}

	return &Instructor{
		Person:       person,
		InstructorID: validate.NormID(instructorID),
	}, nil
}

// addCourseLocal appends to this side only; callers wire the inverse link.
func (i *Instructor) addCourseLocal(course *Course) {
	i.Assigned = append(i.Assigned, course)
}

// AssignCourse takes over a course, displacing its previous instructor.
// Assigning a course the instructor already teaches is a no-op.
func (i *Instructor) AssignCourse(course *Course) {
	if course == nil {
		return
	}
	if !containsCourse(i.Assigned, course) {
		i.addCourseLocal(course)
	}
	if course.Instructor != i {
		old := course.Instructor
		course.setInstructorLocal(i)
		if old != nil && old != i && containsCourse(old.Assigned, course) {
			old.Assigned = removeCourse(old.Assigned, course)
		}
	}
}

// ListAssignedCourses returns a human-readable teaching summary.
func (i *Instructor) ListAssignedCourses() string {
	ids := make([]string, 0, len(i.Assigned))
	for _, course := range i.Assigned {
		ids = append(ids, course.CourseID)
	}

	courses := strings.Join(ids, ", ")
	if courses == "" {
		courses = "no courses"
	}

	return fmt.Sprintf("The instructor %s of id %s is assigned to the following courses: %s",
		i.Name, i.InstructorID, courses)
}

// Record flattens the instructor to its serializable form.
func (i *Instructor) Record() InstructorRecord {
	ids := make([]string, 0, len(i.Assigned))
	for _, course := range i.Assigned {
		ids = append(ids, course.CourseID)
	}

	return InstructorRecord{
		Name:              i.Name,
		Age:               i.Age,
		Email:             i.Email,
		InstructorID:      i.InstructorID,
		AssignedCourseIDs: ids,
	}
}

// InstructorFromRecord rebuilds an instructor from its serialized form.
// Course links are wired by the roster loader in a later pass.
func InstructorFromRecord(record InstructorRecord) (*Instructor, error) {
	return NewInstructor(record.Name, record.Age, record.Email, record.InstructorID)
}
