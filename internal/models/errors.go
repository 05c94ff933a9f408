package models

import (
	"errors"
	"fmt"
)

// Input errors are deterministic functions of user input. Callers must
// correct the input; retrying is pointless.
var (
	ErrOversExceeded       = errors.New("overs cannot exceed match limit")
	ErrScoreExceedsTarget  = errors.New("score cannot exceed target")
	ErrIncompleteSelection = errors.New("batting team, bowling team and city must all be selected")
	ErrWicketsExceeded     = errors.New("wickets fallen cannot exceed ten")
)

// Integration errors indicate incorrect wiring rather than bad input.
var (
	ErrModelNotTrained       = errors.New("model has not been trained")
	ErrFeatureSchemaMismatch = errors.New("feature vector does not match trained schema")
)

// IsInputError reports whether err is a user-correctable input error.
func IsInputError(err error) bool {
	return errors.Is(err, ErrOversExceeded) ||
		errors.Is(err, ErrScoreExceedsTarget) ||
		errors.Is(err, ErrIncompleteSelection) ||
		errors.Is(err, ErrWicketsExceeded)
}

// SchemaError indicates a tabular input is missing a required column.
// It is fatal: the batch job aborts before processing any rows.
type SchemaError struct {
	Table  string
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("table %s is missing required column: %s", e.Table, e.Column)
}

// NewSchemaError creates a SchemaError for the given table and column.
func NewSchemaError(table, column string) *SchemaError {
	return &SchemaError{Table: table, Column: column}
}
