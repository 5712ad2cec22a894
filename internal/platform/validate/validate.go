// Copyright (c) 2026 Registra. All rights reserved.
// Author: dev@registra.app

// Package validate provides the pure field validators and normalizers for
// school-records data, plus a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// The predicate functions (ValidEmail, ValidStudentID, ...) are stateless,
// never panic, and match the full input string. Normalizers are applied only
// after validation passes and are idempotent: norm(norm(x)) == norm(x).
//
// The Validator type is used exclusively in the service layer — never in
// handlers or storage. It ensures that business logic only operates on
// semantically valid data.
package validate

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"regexp"

	"github.com/registra-app/registra/internal/platform/apperr"
)

var (
	// emailRegex is a pragmatic local@domain.tld shape, not full RFC 5322.
	emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	// courseIDRegex matches e.g. EECE435 or EECE435L.
	courseIDRegex = regexp.MustCompile(`^[A-Z]{2,4}\d{3}[A-Z]?$`)
	// personIDRegex matches student and instructor IDs: optional leading letter + 3-10 digits.
	personIDRegex = regexp.MustCompile(`^[A-Z]?\d{3,10}$`)
	// courseNameRegex allows common punctuation, 3-60 chars.
	courseNameRegex = regexp.MustCompile(`^[A-Za-z0-9 .,&()/_-]{3,60}$`)
	// personNameRegex requires letter boundaries, 3-60 chars total.
	personNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z .'-]{1,58}[A-Za-z]$`)

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// # Field Predicates

// ValidEmail reports whether the trimmed value is a plausible email address.
func ValidEmail(v string) bool {
	return emailRegex.MatchString(strings.TrimSpace(v))
}

// NonNegativeAge reports whether the value is a valid age (>= 0).
func NonNegativeAge(v int) bool {
	return v >= 0
}

// ValidPersonName reports whether the trimmed value is an acceptable person name.
func ValidPersonName(v string) bool {
	return personNameRegex.MatchString(strings.TrimSpace(v))
}

// ValidStudentID reports whether the trimmed value matches the student ID pattern.
// Matching is performed against the normalized (uppercase) form, so lowercase
// input that normalizes to a valid ID is accepted.
func ValidStudentID(v string) bool {
	return personIDRegex.MatchString(NormID(v))
}

// ValidInstructorID reports whether the trimmed value matches the instructor ID
// pattern. Instructor IDs share the student ID format.
func ValidInstructorID(v string) bool {
	return personIDRegex.MatchString(NormID(v))
}

// ValidCourseID reports whether the trimmed value matches the course ID pattern
// (e.g. EECE435 or EECE435L), after uppercase normalization.
func ValidCourseID(v string) bool {
	return courseIDRegex.MatchString(NormID(v))
}

// ValidCourseName reports whether the trimmed value is an acceptable course name.
func ValidCourseName(v string) bool {
	return courseNameRegex.MatchString(strings.TrimSpace(v))
}

// # Normalizers

// NormEmail normalizes an email by trimming and lowercasing.
func NormEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormID normalizes an identifier by trimming and uppercasing.
func NormID(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// NormName normalizes a person or course name: interior whitespace is
// collapsed to single spaces and every letter run is title-cased, so
// "  aLiCe   o'connor " becomes "Alice O'Connor".
func NormName(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

// titleWord uppercases the first letter of every alphabetic run and
// lowercases the rest, treating any non-letter as a run boundary.
func titleWord(w string) string {
	var b strings.Builder
	b.Grow(len(w))
	prevLetter := false
	for _, r := range w {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// # Chainable Validator

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// MinLen fails if the Unicode character count is below min.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	if utf8.RuneCountInString(value) < min {
		v.add(field, fmt.Sprintf("Minimum %d characters", min))
	}
	return v
}

// Email fails if the value is not a plausible email address.
func (v *Validator) Email(field, value string) *Validator {
	if !ValidEmail(value) {
		v.add(field, "Must be a valid email address")
	}
	return v
}

// PersonName fails if the value is not an acceptable person name.
func (v *Validator) PersonName(field, value string) *Validator {
	if !ValidPersonName(value) {
		v.add(field, "Must start and end with a letter (3-60 characters)")
	}
	return v
}

// Age fails if the value is negative.
func (v *Validator) Age(field string, value int) *Validator {
	if !NonNegativeAge(value) {
		v.add(field, "Must be zero or greater")
	}
	return v
}

// StudentID fails if the value does not match the student ID format.
func (v *Validator) StudentID(field, value string) *Validator {
	if !ValidStudentID(value) {
		v.add(field, "Must be an optional letter followed by 3-10 digits")
	}
	return v
}

// InstructorID fails if the value does not match the instructor ID format.
func (v *Validator) InstructorID(field, value string) *Validator {
	if !ValidInstructorID(value) {
		v.add(field, "Must be an optional letter followed by 3-10 digits")
	}
	return v
}

// CourseID fails if the value does not match the course ID format.
func (v *Validator) CourseID(field, value string) *Validator {
	if !ValidCourseID(value) {
		v.add(field, "Must be 2-4 letters, 3 digits, and an optional trailing letter")
	}
	return v
}

// CourseName fails if the value is not an acceptable course name.
func (v *Validator) CourseName(field, value string) *Validator {
	if !ValidCourseName(value) {
		v.add(field, "Must be 3-60 characters of letters, digits, or common punctuation")
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("age", age > 150, "Must be a plausible age")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method — call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// RequiredError is a shortcut to create a single-field validation error.
func RequiredError(field, message string) *apperr.AppError {
	return apperr.ValidationError("Validation failed", apperr.FieldError{
		Field:   field,
		Message: message,
	})
}
