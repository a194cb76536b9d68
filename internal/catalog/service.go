// Package catalog implements the library workflows: validated create and
// update, referential integrity on delete, the book instance lifecycle and
// the read-side queries. Each workflow runs validate, then integrity
// checks, then persistence.
//
// Check-then-act sequences such as "count dependent books, then delete
// the author" are not serialized against concurrent requests; a book
// created between the two steps can be left pointing at a deleted author.
package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/snnyvrz/locallibrary/internal/repository"
	"github.com/snnyvrz/locallibrary/internal/validation"
)

type Service struct {
	store repository.Store
	now   func() time.Time
}

type Option func(*Service)

// WithClock replaces time.Now, mainly for tests of due dates and history.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(store repository.Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// parseID treats a malformed identifier exactly like a missing record.
func parseID(entity, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &NotFoundError{Entity: entity, Detail: "malformed id " + raw}
	}
	return id, nil
}

// lookupError turns a repository error from a by-id read into the
// workflow error taxonomy.
func lookupError(entity string, id uuid.UUID, op string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &NotFoundError{Entity: entity, Detail: "no record with id " + id.String()}
	}
	return &StoreError{Op: op, Err: err}
}

func storeError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

func invalid(errs []validation.FieldError) error {
	return &ValidationError{Errors: errs}
}

func invalidField(field, rule, message string) error {
	return &ValidationError{Errors: []validation.FieldError{{Field: field, Rule: rule, Message: message}}}
}
