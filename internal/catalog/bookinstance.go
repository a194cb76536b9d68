package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/snnyvrz/locallibrary/internal/model"
	"github.com/snnyvrz/locallibrary/internal/repository"
	"github.com/snnyvrz/locallibrary/internal/validation"
)

// CreateBookInstance stores a new copy. Without an explicit status the copy
// starts in Maintenance. The first history entry records that status.
func (s *Service) CreateBookInstance(ctx context.Context, form validation.Form) (*model.BookInstance, error) {
	in, errs := validation.ValidateBookInstance(form)
	if len(errs) > 0 {
		return nil, invalid(errs)
	}

	book, err := s.findReferencedBook(ctx, in.BookID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	bi := &model.BookInstance{
		ID:           uuid.New(),
		BookID:       book.ID,
		Imprint:      in.Imprint,
		CreationDate: now,
	}

	status := model.DefaultStatus
	if in.StatusSet {
		status = in.Status
	}
	Transition(bi, status, in.DueBack, now)

	if err := s.store.BookInstances.Create(ctx, bi); err != nil {
		return nil, storeError("create book instance", err)
	}

	bi.Book = *book
	return bi, nil
}

// UpdateBookInstance rewrites book and imprint. A supplied status goes
// through Transition and adds one history entry. Without a status the
// current one is kept and only an explicit due date is applied.
func (s *Service) UpdateBookInstance(ctx context.Context, rawID string, form validation.Form) (*model.BookInstance, error) {
	id, err := parseID(EntityBookInstance, rawID)
	if err != nil {
		return nil, err
	}

	in, errs := validation.ValidateBookInstance(form)
	if len(errs) > 0 {
		return nil, invalid(errs)
	}

	bi, err := s.store.BookInstances.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(EntityBookInstance, id, "find book instance", err)
	}

	book, err := s.findReferencedBook(ctx, in.BookID)
	if err != nil {
		return nil, err
	}

	bi.BookID = book.ID
	bi.Book = *book
	bi.Imprint = in.Imprint

	var appended *model.HistoryEntry
	switch {
	case in.StatusSet:
		entry := Transition(bi, in.Status, in.DueBack, s.now())
		appended = &entry
	case in.DueBack != nil && bi.Status != model.StatusAvailable:
		due := *in.DueBack
		bi.DueBack = &due
	}

	if err := s.store.BookInstances.Update(ctx, bi, appended); err != nil {
		return nil, lookupError(EntityBookInstance, id, "update book instance", err)
	}
	if appended != nil {
		bi.History[len(bi.History)-1] = *appended
	}

	return bi, nil
}

// DeleteBookInstance removes the copy together with its history.
func (s *Service) DeleteBookInstance(ctx context.Context, rawID string) error {
	id, err := parseID(EntityBookInstance, rawID)
	if err != nil {
		return err
	}

	if err := s.store.BookInstances.Delete(ctx, id); err != nil {
		return lookupError(EntityBookInstance, id, "delete book instance", err)
	}
	return nil
}

func (s *Service) findReferencedBook(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	book, err := s.store.Books.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, invalidField(validation.FieldBook, "exists", "Book does not exist.")
		}
		return nil, storeError("find book", err)
	}
	return book, nil
}
