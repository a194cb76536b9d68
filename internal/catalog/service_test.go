package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/snnyvrz/locallibrary/internal/model"
	"github.com/snnyvrz/locallibrary/internal/repository"
	"github.com/snnyvrz/locallibrary/internal/testutil"
	"github.com/snnyvrz/locallibrary/internal/validation"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, repository.Store) {
	t.Helper()

	store := repository.NewGormStore(testutil.NewTestDB(t))
	svc := NewService(store, WithClock(func() time.Time { return fixedNow }))
	return svc, store
}

// form builds a single-valued submission from key/value pairs.
func form(kv ...string) validation.Form {
	f := validation.Form{}
	for i := 0; i+1 < len(kv); i += 2 {
		f[kv[i]] = append(f[kv[i]], kv[i+1])
	}
	return f
}

func mustCreateAuthor(t *testing.T, svc *Service, first, family string) *model.Author {
	t.Helper()

	a, err := svc.CreateAuthor(context.Background(), form(
		validation.FieldFirstName, first,
		validation.FieldFamilyName, family,
	))
	require.NoError(t, err)
	return a
}

func mustCreateGenre(t *testing.T, svc *Service, name string) *model.Genre {
	t.Helper()

	g, _, err := svc.CreateOrReuseGenre(context.Background(), name)
	require.NoError(t, err)
	return g
}

func mustCreateBook(t *testing.T, svc *Service, title string, author *model.Author, genres ...*model.Genre) *model.Book {
	t.Helper()

	f := form(
		validation.FieldTitle, title,
		validation.FieldAuthor, author.ID.String(),
		validation.FieldSummary, "Summary of "+title,
		validation.FieldISBN, "9781473211896",
	)
	for _, g := range genres {
		f[validation.FieldGenres] = append(f[validation.FieldGenres], g.ID.String())
	}

	b, err := svc.CreateBook(context.Background(), f)
	require.NoError(t, err)
	return b
}

func mustCreateInstance(t *testing.T, svc *Service, book *model.Book, kv ...string) *model.BookInstance {
	t.Helper()

	f := form(append([]string{
		validation.FieldBook, book.ID.String(),
		validation.FieldImprint, "Gollancz, 2014",
	}, kv...)...)

	bi, err := svc.CreateBookInstance(context.Background(), f)
	require.NoError(t, err)
	return bi
}
