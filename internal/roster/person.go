// Copyright (c) 2026 Registra. All rights reserved.
// Author: dev@registra.app

/*
Package roster holds the in-memory entity model for the school records system.

It defines the three domain entities (Student, Instructor, Course), keeps
their bidirectional relationships consistent, and provides a JSON codec for
whole-roster snapshots.

Relationship Rules:

  - Student <-> Course enrollment is symmetric: both sides always agree.
  - Course -> Instructor is a single link; the instructor's assigned list
    mirrors it.
  - All mutating helpers are idempotent; repeating an operation never
    produces duplicates.

Entities validate and normalize their fields at construction, so a roster
never contains a malformed record.
*/
package roster

import (
	"fmt"

	"github.com/registra-app/registra/internal/platform/apperr"
	"github.com/registra-app/registra/internal/platform/validate"
)

// # Base Entity

// Person carries the fields shared by students and instructors.
// Fields are normalized at construction; Email must be changed through
// [Person.SetEmail] so it stays validated.
type Person struct {
	Name  string
	Age   int
	Email string
}

// newPerson validates and normalizes the shared person fields.
func newPerson(name string, age int, email string) (Person, error) {
	if !validate.ValidPersonName(name) {
		return Person{}, apperr.ValidationError("Invalid name")
	}
	if !validate.NonNegativeAge(age) {
		return Person{}, apperr.ValidationError("Age must be zero or greater")
	}
	if !validate.ValidEmail(email) {
		return Person{}, apperr.ValidationError("Invalid email")
	}

	return Person{
		Name:  validate.NormName(name),
		Age:   age,
		Email: validate.NormEmail(email),
	}, nil
}

// SetEmail replaces the email address after validating and normalizing it.
func (p *Person) SetEmail(email string) error {
	if !validate.ValidEmail(email) {
		return apperr.ValidationError("Invalid email")
	}
	p.Email = validate.NormEmail(email)
	return nil
}

// Introduce returns a short human-readable self-description.
func (p *Person) Introduce() string {
	return fmt.Sprintf("Hi, I'm %s. I am %d years old. Please find attached my email address if you wish to contact me: %s",
		p.Name, p.Age, p.Email)
}
