// Copyright (c) 2026 Registra. All rights reserved.
// Author: dev@registra.app

package roster

import (
	"fmt"
	"strings"

	"github.com/registra-app/registra/internal/platform/apperr"
	"github.com/registra-app/registra/internal/platform/validate"
)

// Student is a person enrolled in zero or more courses.
//
// Registered holds direct pointers into the roster graph; use
// [Student.RegisterCourse] and [Student.UnregisterCourse] to keep the
// inverse side (Course.Enrolled) in sync.
type Student struct {
	Person
	StudentID  string
	Registered []*Course
}

// NewStudent validates all fields and returns a student with no registrations.
func NewStudent(name string, age int, email, studentID string) (*Student, error) {
	person, err := newPerson(name, age, email)
	if err != nil {
		return nil, err
	}

	if !validate.ValidStudentID(studentID) {
		return nil, apperr.ValidationError("Invalid student ID")
	}

	return &Student{
		Person:    person,
		StudentID: validate.NormID(studentID),
	}, nil
}

// addCourseLocal appends to this side only; callers wire the inverse link.
func (s *Student) addCourseLocal(course *Course) {
	s.Registered = append(s.Registered, course)
}

// RegisterCourse enrolls the student and syncs the course's enrolled list.
// Registering twice is a no-op.
func (s *Student) RegisterCourse(course *Course) {
	if course == nil || containsCourse(s.Registered, course) {
		return
	}
	s.addCourseLocal(course)
	if !containsStudent(course.Enrolled, s) {
		course.addStudentLocal(s)
	}
}

// UnregisterCourse drops the enrollment on both sides.
// Unregistering a course the student never joined is a no-op.
func (s *Student) UnregisterCourse(course *Course) {
	if !containsCourse(s.Registered, course) {
		return
	}
	s.Registered = removeCourse(s.Registered, course)
	if containsStudent(course.Enrolled, s) {
		course.Enrolled = removeStudent(course.Enrolled, s)
	}
}

// ListRegisteredCourses returns a human-readable enrollment summary.
func (s *Student) ListRegisteredCourses() string {
	ids := make([]string, 0, len(s.Registered))
	for _, course := range s.Registered {
		ids = append(ids, course.CourseID)
	}

	courses := strings.Join(ids, ", ")
	if courses == "" {
		courses = "no courses"
	}

	return fmt.Sprintf("The student %s of id %s is registered in the following courses: %s",
		s.Name, s.StudentID, courses)
}

// Record flattens the student to its serializable form; related courses
// are represented by their IDs only.
func (s *Student) Record() StudentRecord {
	ids := make([]string, 0, len(s.Registered))
	for _, course := range s.Registered {
		ids = append(ids, course.CourseID)
	}

	return StudentRecord{
		Name:                s.Name,
		Age:                 s.Age,
		Email:               s.Email,
		StudentID:           s.StudentID,
		RegisteredCourseIDs: ids,
	}
}

// StudentFromRecord rebuilds a student from its serialized form.
// Course links are intentionally not attached here; the roster loader
// wires them in a later pass.
func StudentFromRecord(record StudentRecord) (*Student, error) {
	return NewStudent(record.Name, record.Age, record.Email, record.StudentID)
}
