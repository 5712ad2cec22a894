// Copyright (c) 2026 Registra. All rights reserved.
// Author: dev@registra.app

package roster_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/registra-app/registra/internal/roster"
)

// buildSampleRoster wires two students, one instructor, and two courses.
func buildSampleRoster(t *testing.T) *roster.Roster {
	t.Helper()

	r := roster.New()

	jane, err := roster.NewStudent("Jane", 21, "jane@example.com", "S001")
	require.NoError(t, err)
	john, err := roster.NewStudent("John", 22, "john@example.com", "S002")
	require.NoError(t, err)
	ada, err := roster.NewInstructor("Ada", 40, "ada@example.com", "I100")
	require.NoError(t, err)
	cs101, err := roster.NewCourse("CS101", "Intro To Computing", ada)
	require.NoError(t, err)
	ma201, err := roster.NewCourse("MA201", "Linear Algebra", nil)
	require.NoError(t, err)

	jane.RegisterCourse(cs101)
	jane.RegisterCourse(ma201)
	john.RegisterCourse(cs101)

	r.AddStudent(jane)
	r.AddStudent(john)
	r.AddInstructor(ada)
	r.AddCourse(cs101)
	r.AddCourse(ma201)

	return r
}

/*
TestRoster_SaveLoad_RoundTrip verifies that a snapshot survives a full
save/load cycle with every relationship intact.
*/
func TestRoster_SaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.json")
	original := buildSampleRoster(t)

	require.NoError(t, original.Save(path))

	loaded, result, err := roster.Load(path)
	require.NoError(t, err)

	// 1. Counts survive
	assert.Equal(t, 2, result.Students)
	assert.Equal(t, 1, result.Instructors)
	assert.Equal(t, 2, result.Courses)
	assert.Zero(t, result.Dropped)

	// 2. Relationships are rebuilt by ID
	cs101 := loaded.Courses["CS101"]
	require.NotNil(t, cs101)
	require.NotNil(t, cs101.Instructor)
	assert.Equal(t, "I100", cs101.Instructor.InstructorID)
	assert.Len(t, cs101.Enrolled, 2)

	jane := loaded.Students["S001"]
	require.NotNil(t, jane)
	assert.Len(t, jane.Registered, 2)

	// 3. No duplicate links despite the redundant inverse lists in the document
	ada := loaded.Instructors["I100"]
	require.NotNil(t, ada)
	assert.Len(t, ada.Assigned, 1)

	// 4. A second round trip produces an identical document
	assert.Equal(t, original.Snapshot(), loaded.Snapshot())
}

/*
TestRoster_Save_Atomic verifies that saving leaves no temp file behind and
overwrites an existing snapshot in place.
*/
func TestRoster_Save_Atomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "roster.json")
	r := buildSampleRoster(t)

	require.NoError(t, r.Save(path))
	require.NoError(t, r.Save(path))

	_, err := os.Stat(path)
	assert.NoError(t, err)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

/*
TestRoster_Load_DropsDanglingReferences verifies the lenient load path:
references to missing entities are skipped and counted, not fatal.
*/
func TestRoster_Load_DropsDanglingReferences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.json")

	document := `{
		"schema_version": 1,
		"students": [
			{"name": "Jane", "age": 21, "email": "jane@example.com",
			 "student_id": "S001", "registered_course_ids": ["GHOST1"]}
		],
		"instructors": [
			{"name": "Ada", "age": 40, "email": "ada@example.com",
			 "instructor_id": "I100", "assigned_course_ids": ["GHOST2"]}
		],
		"courses": [
			{"course_id": "CS101", "course_name": "Intro To Computing",
			 "instructor_id": "GHOST3", "enrolled_student_ids": ["GHOST4"]}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(document), 0o644))

	loaded, result, err := roster.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Dropped)
	assert.Empty(t, loaded.Students["S001"].Registered)
	assert.Empty(t, loaded.Instructors["I100"].Assigned)
	assert.Nil(t, loaded.Courses["CS101"].Instructor)
	assert.Empty(t, loaded.Courses["CS101"].Enrolled)
}

/*
TestRoster_Load_NormalizesRecordedIDs verifies that lowercase or padded IDs
in the document still resolve to their entities: the constructors uppercase
IDs, so the relationship passes must look entities up the same way instead
of crashing or silently dropping the links.
*/
func TestRoster_Load_NormalizesRecordedIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.json")

	document := `{
		"schema_version": 1,
		"students": [
			{"name": "Jane", "age": 21, "email": "jane@example.com",
			 "student_id": " s001 ", "registered_course_ids": ["cs101"]}
		],
		"instructors": [
			{"name": "Ada", "age": 40, "email": "ada@example.com",
			 "instructor_id": "i100", "assigned_course_ids": ["cs101"]}
		],
		"courses": [
			{"course_id": "cs101", "course_name": "Intro To Computing",
			 "instructor_id": "i100", "enrolled_student_ids": ["s001"]}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(document), 0o644))

	loaded, result, err := roster.Load(path)
	require.NoError(t, err)
	assert.Zero(t, result.Dropped)

	course := loaded.Courses["CS101"]
	require.NotNil(t, course)
	require.NotNil(t, course.Instructor)
	assert.Equal(t, "I100", course.Instructor.InstructorID)
	assert.Len(t, course.Enrolled, 1)

	student := loaded.Students["S001"]
	require.NotNil(t, student)
	assert.Len(t, student.Registered, 1)
}

/*
TestRoster_Load_Errors verifies failure modes for missing and malformed files.
*/
func TestRoster_Load_Errors(t *testing.T) {
	dir := t.TempDir()

	// 1. Missing file
	_, _, err := roster.Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	// 2. Malformed JSON
	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte("{not json"), 0o644))
	_, _, err = roster.Load(badPath)
	assert.Error(t, err)

	// 3. Invalid entity record
	invalidPath := filepath.Join(dir, "invalid.json")
	invalid := `{"schema_version": 1, "students": [
		{"name": "", "age": 21, "email": "jane@example.com", "student_id": "S001"}
	]}`
	require.NoError(t, os.WriteFile(invalidPath, []byte(invalid), 0o644))
	_, _, err = roster.Load(invalidPath)
	assert.Error(t, err)
}
