package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/snnyvrz/locallibrary/internal/model"
	"github.com/snnyvrz/locallibrary/internal/repository"
	"github.com/snnyvrz/locallibrary/internal/validation"
	"golang.org/x/sync/errgroup"
)

func (s *Service) CreateBook(ctx context.Context, form validation.Form) (*model.Book, error) {
	in, errs := validation.ValidateBook(form)
	if len(errs) > 0 {
		return nil, invalid(errs)
	}

	author, genres, err := s.resolveBookRefs(ctx, in)
	if err != nil {
		return nil, err
	}

	book := &model.Book{
		Title:    in.Title,
		AuthorID: author.ID,
		Summary:  in.Summary,
		ISBN:     in.ISBN,
		Genres:   genres,
	}
	if err := s.store.Books.Create(ctx, book); err != nil {
		return nil, storeError("create book", err)
	}

	book.Author = *author
	return book, nil
}

func (s *Service) UpdateBook(ctx context.Context, rawID string, form validation.Form) (*model.Book, error) {
	id, err := parseID(EntityBook, rawID)
	if err != nil {
		return nil, err
	}

	in, errs := validation.ValidateBook(form)
	if len(errs) > 0 {
		return nil, invalid(errs)
	}

	book, err := s.store.Books.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(EntityBook, id, "find book", err)
	}

	author, genres, err := s.resolveBookRefs(ctx, in)
	if err != nil {
		return nil, err
	}

	book.Title = in.Title
	book.AuthorID = author.ID
	book.Author = *author
	book.Summary = in.Summary
	book.ISBN = in.ISBN
	book.Genres = genres

	if err := s.store.Books.Update(ctx, book); err != nil {
		return nil, lookupError(EntityBook, id, "update book", err)
	}

	return book, nil
}

// DeleteBook refuses while any copy of the book exists.
func (s *Service) DeleteBook(ctx context.Context, rawID string) error {
	id, err := parseID(EntityBook, rawID)
	if err != nil {
		return err
	}

	n, err := s.store.BookInstances.CountByBook(ctx, id)
	if err != nil {
		return storeError("count book instances", err)
	}
	if n > 0 {
		return &DependencyError{Entity: EntityBook, Dependent: EntityBookInstance, Count: n}
	}

	if err := s.store.Books.Delete(ctx, id); err != nil {
		return lookupError(EntityBook, id, "delete book", err)
	}

	return nil
}

// resolveBookRefs loads the author and genres a book input points at.
// Missing references are reported as field errors, all at once.
func (s *Service) resolveBookRefs(ctx context.Context, in validation.BookInput) (*model.Author, []model.Genre, error) {
	var (
		author *model.Author
		genres []model.Genre
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := s.store.Authors.FindByID(gctx, in.AuthorID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil
			}
			return storeError("find author", err)
		}
		author = a
		return nil
	})
	g.Go(func() error {
		found, err := s.store.Genres.FindByIDs(gctx, in.GenreIDs)
		if err != nil {
			return storeError("find genres", err)
		}
		genres = found
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var errs []validation.FieldError
	if author == nil {
		errs = append(errs, validation.FieldError{
			Field:   validation.FieldAuthor,
			Rule:    "exists",
			Message: "Author does not exist.",
		})
	}

	known := make(map[uuid.UUID]bool, len(genres))
	for _, genre := range genres {
		known[genre.ID] = true
	}
	for _, id := range in.GenreIDs {
		if !known[id] {
			errs = append(errs, validation.FieldError{
				Field:   validation.FieldGenres,
				Rule:    "exists",
				Message: "Genre " + id.String() + " does not exist.",
			})
		}
	}

	if len(errs) > 0 {
		return nil, nil, invalid(errs)
	}
	return author, genres, nil
}
