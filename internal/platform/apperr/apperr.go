package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the shared sentinel all validation failures match.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
)

// FieldError reports a length, pattern, or bound violation on a single field.
type FieldError struct {
	Field      string
	Constraint string
	Value      any
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q violates constraint %q (value: %v)", e.Field, e.Constraint, e.Value)
}

func (e *FieldError) Is(target error) bool { return target == ErrInvalidInput }

// UniquenessError reports a write that would duplicate a unique field.
type UniquenessError struct {
	Field string
	Value any
}

func (e *UniquenessError) Error() string {
	return fmt.Sprintf("field %q must be unique (value: %v)", e.Field, e.Value)
}

func (e *UniquenessError) Is(target error) bool { return target == ErrInvalidInput }

// ReferentialError reports a foreign key pointing at a nonexistent parent.
type ReferentialError struct {
	Field string
	Value any
}

func (e *ReferentialError) Error() string {
	return fmt.Sprintf("field %q references a missing record (value: %v)", e.Field, e.Value)
}

func (e *ReferentialError) Is(target error) bool { return target == ErrInvalidInput }

// EnumError reports a value outside a field's declared set.
type EnumError struct {
	Field   string
	Value   any
	Allowed []string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("field %q must be one of %v (value: %v)", e.Field, e.Allowed, e.Value)
}

func (e *EnumError) Is(target error) bool { return target == ErrInvalidInput }
