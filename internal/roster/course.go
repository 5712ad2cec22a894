// Copyright (c) 2026 Registra. All rights reserved.
// Author: dev@registra.app

package roster

import (
	"github.com/registra-app/registra/internal/platform/apperr"
	"github.com/registra-app/registra/internal/platform/validate"
)

// Course is a single course offering with an optional instructor and a
// list of enrolled students. Both relationship sides are kept consistent
// by the mutating helpers below.
type Course struct {
	CourseID   string
	CourseName string
	Instructor *Instructor
	Enrolled   []*Student
}

// NewCourse validates the identifiers and optionally wires an initial
// instructor on both sides.
func NewCourse(courseID, courseName string, instructor *Instructor) (*Course, error) {
	if !validate.ValidCourseID(courseID) {
		return nil, apperr.ValidationError("Invalid course ID")
	}
	if !validate.ValidCourseName(courseName) {
		return nil, apperr.ValidationError("Invalid course name")
	}

	course := &Course{
		CourseID:   validate.NormID(courseID),
		CourseName: validate.NormName(courseName),
	}

	if instructor != nil {
		course.setInstructorLocal(instructor)
		if !containsCourse(instructor.Assigned, course) {
			instructor.addCourseLocal(course)
		}
	}

	return course, nil
}

// addStudentLocal appends to this side only; callers wire the inverse link.
func (c *Course) addStudentLocal(student *Student) {
	c.Enrolled = append(c.Enrolled, student)
}

// AddStudent enrolls a student and syncs their registered list.
// Enrolling twice is a no-op.
func (c *Course) AddStudent(student *Student) {
	if student == nil || containsStudent(c.Enrolled, student) {
		return
	}
	c.addStudentLocal(student)
	if !containsCourse(student.Registered, c) {
		student.addCourseLocal(c)
	}
}

// RemoveStudent drops the enrollment on both sides.
// Removing a student who was never enrolled is a no-op.
func (c *Course) RemoveStudent(student *Student) {
	if !containsStudent(c.Enrolled, student) {
		return
	}
	c.Enrolled = removeStudent(c.Enrolled, student)
	if containsCourse(student.Registered, c) {
		student.Registered = removeCourse(student.Registered, c)
	}
}

// setInstructorLocal assigns this side only; callers wire the inverse link.
func (c *Course) setInstructorLocal(instructor *Instructor) {
	c.Instructor = instructor
}

// SetInstructor assigns or clears the instructor, keeping the old and new
// instructors' assigned lists consistent. Setting the same instructor
// again is a no-op.
func (c *Course) SetInstructor(instructor *Instructor) {
	if instructor == c.Instructor {
		return
	}

	old := c.Instructor
	if instructor == nil {
		if old != nil && containsCourse(old.Assigned, c) {
			old.Assigned = removeCourse(old.Assigned, c)
		}
		c.Instructor = nil
		return
	}

	c.setInstructorLocal(instructor)
	if !containsCourse(instructor.Assigned, c) {
		instructor.addCourseLocal(c)
	}
	if old != nil && old != instructor && containsCourse(old.Assigned, c) {
		old.Assigned = removeCourse(old.Assigned, c)
	}
}

// Record flattens the course to its serializable form; the instructor and
// students are represented by their IDs only.
func (c *Course) Record() CourseRecord {
	var instructorID *string
	if c.Instructor != nil {
		id := c.Instructor.InstructorID
		instructorID = &id
	}

	ids := make([]string, 0, len(c.Enrolled))
	for _, student := range c.Enrolled {
		ids = append(ids, student.StudentID)
	}

	return CourseRecord{
		CourseID:           c.CourseID,
		CourseName:         c.CourseName,
		InstructorID:       instructorID,
		EnrolledStudentIDs: ids,
	}
}

// CourseFromRecord rebuilds a course from its serialized form with no
// instructor attached; the roster loader wires relations in later passes.
func CourseFromRecord(record CourseRecord) (*Course, error) {
	return NewCourse(record.CourseID, record.CourseName, nil)
}

// # Slice Helpers

func containsCourse(courses []*Course, target *Course) bool {
	for _, course := range courses {
		if course == target {
			return true
		}
	}
	return false
}

func containsStudent(students []*Student, target *Student) bool {
	for _, student := range students {
		if student == target {
			return true
		}
	}
	return false
}

func removeCourse(courses []*Course, target *Course) []*Course {
	out := courses[:0]
	for _, course := range courses {
		if course != target {
			out = append(out, course)
		}
	}
	return out
}

func removeStudent(students []*Student, target *Student) []*Student {
	out := students[:0]
	for _, student := range students {
		if student != target {
			out = append(out, student)
		}
	}
	return out
}
