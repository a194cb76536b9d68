package catalog

import (
	"fmt"
	"strings"

	"github.com/snnyvrz/locallibrary/internal/validation"
)

// Entity names used in error values and user-facing messages.
const (
	EntityAuthor       = "author"
	EntityGenre        = "genre"
	EntityBook         = "book"
	EntityBookInstance = "book instance"
)

// ValidationError carries every field problem found in one submission.
type ValidationError struct {
	Errors []validation.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// For returns the messages reported against field.
func (e *ValidationError) For(field string) []string {
	var out []string
	for _, fe := range e.Errors {
		if fe.Field == field {
			out = append(out, fe.Message)
		}
	}
	return out
}

// NotFoundError covers both malformed and unknown identifiers. Detail is
// for logs only.
type NotFoundError struct {
	Entity string
	Detail string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Detail)
}

// Message is safe to show to end users.
func (e *NotFoundError) Message() string {
	return fmt.Sprintf("Shoot! Couldn't find that %s.", e.Entity)
}

// DependencyError blocks a delete while other entities still reference
// the target.
type DependencyError struct {
	Entity    string
	Dependent string
	Count     int64
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s is still referenced by %d %s record(s)", e.Entity, e.Count, e.Dependent)
}

func (e *DependencyError) Message() string {
	return fmt.Sprintf("Delete the %s's %ss before deleting the %s.", e.Entity, e.Dependent, e.Entity)
}

// StoreError wraps any persistence failure. It is fatal for the request.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
