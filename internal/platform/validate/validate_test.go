// Copyright (c) 2026 Registra. All rights reserved.
// Author: dev@registra.app

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/registra-app/registra/internal/platform/apperr"
	"github.com/registra-app/registra/internal/platform/validate"
)

/*
TestValidEmail checks the email shape predicate.
*/
func TestValidEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"plain", "alice@example.com", true},
		{"subdomain", "a.b%2@mail.aub.edu.lb", true},
		{"padded", "  alice@example.com  ", true},
		{"missing_at", "alice.example.com", false},
		{"missing_tld", "alice@example", false},
		{"short_tld", "alice@example.c", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isValid, validate.ValidEmail(tt.email))
		})
	}
}

/*
TestValidIDs covers the student/instructor and course ID patterns.
*/
func TestValidIDs(t *testing.T) {
	tests := []struct {
		name    string
		check   func(string) bool
		value   string
		isValid bool
	}{
		{"student_digits_only", validate.ValidStudentID, "12345", true},
		{"student_leading_letter", validate.ValidStudentID, "S001", true},
		{"student_lowercase_normalizes", validate.ValidStudentID, "s001", true},
		{"student_too_short", validate.ValidStudentID, "S01", false},
		{"student_too_long", validate.ValidStudentID, "S12345678901", false},
		{"student_two_letters", validate.ValidStudentID, "SS001", false},
		{"instructor_ok", validate.ValidInstructorID, "I001", true},
		{"course_plain", validate.ValidCourseID, "EECE435", true},
		{"course_trailing_letter", validate.ValidCourseID, "EECE435L", true},
		{"course_lowercase_normalizes", validate.ValidCourseID, "cse101", true},
		{"course_one_letter_prefix", validate.ValidCourseID, "E435", false},
		{"course_two_digits", validate.ValidCourseID, "EECE43", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.check(tt.value))
		})
	}
}

/*
TestValidNames checks person and course name patterns.
*/
func TestValidNames(t *testing.T) {
	assert.True(t, validate.ValidPersonName("Alice O'Connor"))
	assert.True(t, validate.ValidPersonName("Dr. Smith"))
	assert.False(t, validate.ValidPersonName("Al"))
	assert.False(t, validate.ValidPersonName("Alice2"))
	assert.False(t, validate.ValidPersonName("-Alice"))
	assert.False(t, validate.ValidPersonName("Alice-"))

	assert.True(t, validate.ValidCourseName("Intro to CS"))
	assert.True(t, validate.ValidCourseName("Signals & Systems (Lab)"))
	assert.False(t, validate.ValidCourseName("CS"))
	assert.False(t, validate.ValidCourseName("Bad#Name"))
}

/*
TestNormalizers checks lowercase/uppercase/title-case normalization and idempotence.
*/
func TestNormalizers(t *testing.T) {
	assert.Equal(t, "alice@example.com", validate.NormEmail("  ALICE@Example.COM "))
	assert.Equal(t, "S001", validate.NormID(" s001 "))
	assert.Equal(t, "Alice O'Connor", validate.NormName("  aLiCe   o'connor  "))
	assert.Equal(t, "Jean-Luc Picard", validate.NormName("jean-luc picard"))

	// Idempotence: norm(norm(x)) == norm(x)
	for _, s := range []string{"  aLiCe   o'connor  ", "BOB", "dr.  smith"} {
		once := validate.NormName(s)
		assert.Equal(t, once, validate.NormName(once))
	}
	assert.Equal(t, validate.NormEmail("A@B.CO"), validate.NormEmail(validate.NormEmail("A@B.CO")))
	assert.Equal(t, validate.NormID("s1"), validate.NormID(validate.NormID("s1")))
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		PersonName("name", "Alice").
		Age("age", 20).
		Email("email", "alice@example.com").
		StudentID("student_id", "S001").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		PersonName("name", "A").          // Fails
		Age("age", -1).                   // Fails
		Email("email", "not-an-email").   // Fails
		CourseID("course_id", "NOPE").    // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)

	// Should accumulate all 4 errors
	assert.Len(t, ae.Details, 4)
}
