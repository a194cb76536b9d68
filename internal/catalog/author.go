package catalog

import (
	"context"

	"github.com/snnyvrz/locallibrary/internal/model"
	"github.com/snnyvrz/locallibrary/internal/validation"
)

func (s *Service) CreateAuthor(ctx context.Context, form validation.Form) (*model.Author, error) {
	in, errs := validation.ValidateAuthor(form)
	if len(errs) > 0 {
		return nil, invalid(errs)
	}

	author := &model.Author{
		FirstName:   in.FirstName,
		FamilyName:  in.FamilyName,
		DateOfBirth: in.DateOfBirth,
		DateOfDeath: in.DateOfDeath,
	}

	if err := s.store.Authors.Create(ctx, author); err != nil {
		return nil, storeError("create author", err)
	}

	return author, nil
}

func (s *Service) UpdateAuthor(ctx context.Context, rawID string, form validation.Form) (*model.Author, error) {
	id, err := parseID(EntityAuthor, rawID)
	if err != nil {
		return nil, err
	}

	in, errs := validation.ValidateAuthor(form)
	if len(errs) > 0 {
		return nil, invalid(errs)
	}

	author, err := s.store.Authors.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(EntityAuthor, id, "find author", err)
	}

	author.FirstName = in.FirstName
	author.FamilyName = in.FamilyName
	author.DateOfBirth = in.DateOfBirth
	author.DateOfDeath = in.DateOfDeath

	if err := s.store.Authors.Update(ctx, author); err != nil {
		return nil, lookupError(EntityAuthor, id, "update author", err)
	}

	return author, nil
}

// DeleteAuthor refuses while any book still names the author.
func (s *Service) DeleteAuthor(ctx context.Context, rawID string) error {
	id, err := parseID(EntityAuthor, rawID)
	if err != nil {
		return err
	}

	n, err := s.store.Books.CountByAuthor(ctx, id)
	if err != nil {
		return storeError("count author books", err)
	}
	if n > 0 {
		return &DependencyError{Entity: EntityAuthor, Dependent: EntityBook, Count: n}
	}

	if err := s.store.Authors.Delete(ctx, id); err != nil {
		return lookupError(EntityAuthor, id, "delete author", err)
	}

	return nil
}
