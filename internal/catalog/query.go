package catalog

import (
	"context"

	"github.com/snnyvrz/locallibrary/internal/model"
	"golang.org/x/sync/errgroup"
)

type AuthorDetail struct {
	Author model.Author
	Books  []model.Book
}

type BookDetail struct {
	Book      model.Book
	Instances []model.BookInstance
}

type GenreDetail struct {
	Genre model.Genre
	Books []model.Book
}

// OverviewCounts backs the catalog home page.
type OverviewCounts struct {
	Books                  int64 `json:"books"`
	BookInstances          int64 `json:"bookInstances"`
	AvailableBookInstances int64 `json:"availableBookInstances"`
	Authors                int64 `json:"authors"`
	Genres                 int64 `json:"genres"`
}

// BookFormOptions lists the choices for the author and genre inputs of
// the book form.
type BookFormOptions struct {
	Authors []model.Author
	Genres  []model.Genre
}

func (s *Service) ListAuthors(ctx context.Context) ([]model.Author, error) {
	authors, err := s.store.Authors.List(ctx)
	if err != nil {
		return nil, storeError("list authors", err)
	}
	return authors, nil
}

func (s *Service) ListGenres(ctx context.Context) ([]model.Genre, error) {
	genres, err := s.store.Genres.List(ctx)
	if err != nil {
		return nil, storeError("list genres", err)
	}
	return genres, nil
}

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	books, err := s.store.Books.List(ctx)
	if err != nil {
		return nil, storeError("list books", err)
	}
	return books, nil
}

func (s *Service) ListBookInstances(ctx context.Context) ([]model.BookInstance, error) {
	instances, err := s.store.BookInstances.List(ctx)
	if err != nil {
		return nil, storeError("list book instances", err)
	}
	return instances, nil
}

func (s *Service) GetAuthorDetail(ctx context.Context, rawID string) (*AuthorDetail, error) {
	id, err := parseID(EntityAuthor, rawID)
	if err != nil {
		return nil, err
	}

	var detail AuthorDetail
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		author, err := s.store.Authors.FindByID(gctx, id)
		if err != nil {
			return lookupError(EntityAuthor, id, "find author", err)
		}
		detail.Author = *author
		return nil
	})
	g.Go(func() error {
		books, err := s.store.Books.ListByAuthor(gctx, id)
		if err != nil {
			return storeError("list author books", err)
		}
		detail.Books = books
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &detail, nil
}

func (s *Service) GetBookDetail(ctx context.Context, rawID string) (*BookDetail, error) {
	id, err := parseID(EntityBook, rawID)
	if err != nil {
		return nil, err
	}

	var detail BookDetail
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		book, err := s.store.Books.FindByID(gctx, id)
		if err != nil {
			return lookupError(EntityBook, id, "find book", err)
		}
		detail.Book = *book
		return nil
	})
	g.Go(func() error {
		instances, err := s.store.BookInstances.ListByBook(gctx, id)
		if err != nil {
			return storeError("list book instances", err)
		}
		detail.Instances = instances
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &detail, nil
}

func (s *Service) GetGenreDetail(ctx context.Context, rawID string) (*GenreDetail, error) {
	id, err := parseID(EntityGenre, rawID)
	if err != nil {
		return nil, err
	}

	var detail GenreDetail
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		genre, err := s.store.Genres.FindByID(gctx, id)
		if err != nil {
			return lookupError(EntityGenre, id, "find genre", err)
		}
		detail.Genre = *genre
		return nil
	})
	g.Go(func() error {
		books, err := s.store.Books.ListByGenre(gctx, id)
		if err != nil {
			return storeError("list genre books", err)
		}
		detail.Books = books
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &detail, nil
}

// GetBookInstanceDetail returns the copy with its book, the book's author
// and the full status history, oldest first.
func (s *Service) GetBookInstanceDetail(ctx context.Context, rawID string) (*model.BookInstance, error) {
	id, err := parseID(EntityBookInstance, rawID)
	if err != nil {
		return nil, err
	}

	bi, err := s.store.BookInstances.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(EntityBookInstance, id, "find book instance", err)
	}
	return bi, nil
}

// GetOverviewCounts runs the five counts concurrently. Any single failure
// fails the whole result; partial counts are never returned.
func (s *Service) GetOverviewCounts(ctx context.Context) (*OverviewCounts, error) {
	var counts OverviewCounts

	g, gctx := errgroup.WithContext(ctx)
	count := func(op string, dst *int64, fn func(context.Context) (int64, error)) {
		g.Go(func() error {
			n, err := fn(gctx)
			if err != nil {
				return storeError(op, err)
			}
			*dst = n
			return nil
		})
	}

	count("count books", &counts.Books, s.store.Books.Count)
	count("count book instances", &counts.BookInstances, s.store.BookInstances.Count)
	count("count available book instances", &counts.AvailableBookInstances, func(ctx context.Context) (int64, error) {
		return s.store.BookInstances.CountByStatus(ctx, model.StatusAvailable)
	})
	count("count authors", &counts.Authors, s.store.Authors.Count)
	count("count genres", &counts.Genres, s.store.Genres.Count)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &counts, nil
}

func (s *Service) BookFormOptions(ctx context.Context) (*BookFormOptions, error) {
	var opts BookFormOptions

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		authors, err := s.store.Authors.List(gctx)
		if err != nil {
			return storeError("list authors", err)
		}
		opts.Authors = authors
		return nil
	})
	g.Go(func() error {
		genres, err := s.store.Genres.List(gctx)
		if err != nil {
			return storeError("list genres", err)
		}
		opts.Genres = genres
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &opts, nil
}

// BookInstanceFormOptions lists the books a copy can belong to.
func (s *Service) BookInstanceFormOptions(ctx context.Context) ([]model.Book, error) {
	return s.ListBooks(ctx)
}
