package catalog

import (
	"context"
	"errors"

	"github.com/snnyvrz/locallibrary/internal/model"
	"github.com/snnyvrz/locallibrary/internal/repository"
	"github.com/snnyvrz/locallibrary/internal/validation"
)

// CreateGenre validates the form and returns the genre with that exact
// name, storing a new one only when none exists. The boolean reports
// whether a new genre was stored.
func (s *Service) CreateGenre(ctx context.Context, form validation.Form) (*model.Genre, bool, error) {
	in, errs := validation.ValidateGenre(form)
	if len(errs) > 0 {
		return nil, false, invalid(errs)
	}

	return s.findOrCreateGenre(ctx, in.Name)
}

// CreateOrReuseGenre is CreateGenre for a bare name. Repeated calls
// converge on one record.
func (s *Service) CreateOrReuseGenre(ctx context.Context, name string) (*model.Genre, bool, error) {
	return s.CreateGenre(ctx, validation.Form{validation.FieldName: {name}})
}

func (s *Service) findOrCreateGenre(ctx context.Context, name string) (*model.Genre, bool, error) {
	existing, err := s.store.Genres.FindByName(ctx, name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, storeError("find genre by name", err)
	}

	genre := &model.Genre{Name: name}
	if err := s.store.Genres.Create(ctx, genre); err != nil {
		if !errors.Is(err, repository.ErrDuplicate) {
			return nil, false, storeError("create genre", err)
		}

		// Lost a race with a concurrent create of the same name.
		existing, err := s.store.Genres.FindByName(ctx, name)
		if err != nil {
			return nil, false, storeError("find genre by name", err)
		}
		return existing, false, nil
	}

	return genre, true, nil
}

func (s *Service) UpdateGenre(ctx context.Context, rawID string, form validation.Form) (*model.Genre, error) {
	id, err := parseID(EntityGenre, rawID)
	if err != nil {
		return nil, err
	}

	in, errs := validation.ValidateGenre(form)
	if len(errs) > 0 {
		return nil, invalid(errs)
	}

	genre, err := s.store.Genres.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(EntityGenre, id, "find genre", err)
	}

	other, err := s.store.Genres.FindByName(ctx, in.Name)
	switch {
	case err == nil && other.ID != id:
		return nil, duplicateGenreName()
	case err != nil && !errors.Is(err, repository.ErrNotFound):
		return nil, storeError("find genre by name", err)
	}

	genre.Name = in.Name
	if err := s.store.Genres.Update(ctx, genre); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, duplicateGenreName()
		}
		return nil, lookupError(EntityGenre, id, "update genre", err)
	}

	return genre, nil
}

func duplicateGenreName() error {
	return invalidField(validation.FieldName, "unique", "A genre with this name already exists.")
}

// DeleteGenre removes the genre and then pulls it out of every book that
// lists it. It is never blocked by those books. The returned count is the
// number of books whose genre set changed. If pulling fails the genre is
// already gone and the books that were updated stay updated.
func (s *Service) DeleteGenre(ctx context.Context, rawID string) (int64, error) {
	id, err := parseID(EntityGenre, rawID)
	if err != nil {
		return 0, err
	}

	if err := s.store.Genres.Delete(ctx, id); err != nil {
		return 0, lookupError(EntityGenre, id, "delete genre", err)
	}

	n, err := s.store.Books.PullGenre(ctx, id)
	if err != nil {
		return 0, storeError("pull genre from books", err)
	}

	return n, nil
}
