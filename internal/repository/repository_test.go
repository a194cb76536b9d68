package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/snnyvrz/locallibrary/internal/model"
	"github.com/snnyvrz/locallibrary/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCatalog(t *testing.T, db *gorm.DB) (Store, model.Author, []model.Genre) {
	t.Helper()

	store := NewGormStore(db)
	ctx := context.Background()

	author := model.Author{FirstName: "Patrick", FamilyName: "Rothfuss"}
	if err := store.Authors.Create(ctx, &author); err != nil {
		t.Fatalf("failed to seed author: %v", err)
	}

	genres := []model.Genre{{Name: "Fantasy"}, {Name: "Adventure"}}
	for i := range genres {
		if err := store.Genres.Create(ctx, &genres[i]); err != nil {
			t.Fatalf("failed to seed genre %q: %v", genres[i].Name, err)
		}
	}

	return store, author, genres
}

func TestAuthorRepository_ListOrdersByFamilyThenFirstName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormAuthorRepository(db)
	ctx := context.Background()

	for _, a := range []model.Author{
		{FirstName: "Ben", FamilyName: "Bova"},
		{FirstName: "Isaac", FamilyName: "Asimov"},
		{FirstName: "Bob", FamilyName: "Billings"},
		{FirstName: "Jim", FamilyName: "Jones"},
		{FirstName: "Anna", FamilyName: "Bova"},
	} {
		require.NoError(t, repo.Create(ctx, &a))
		require.NotEqual(t, uuid.Nil, a.ID)
	}

	authors, err := repo.List(ctx)
	require.NoError(t, err)

	var names []string
	for _, a := range authors {
		names = append(names, model.DisplayName(a))
	}
	assert.Equal(t, []string{
		"Asimov, Isaac",
		"Billings, Bob",
		"Bova, Anna",
		"Bova, Ben",
		"Jones, Jim",
	}, names)
}

func TestAuthorRepository_UpdateAndDeleteMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormAuthorRepository(db)
	ctx := context.Background()

	missing := &model.Author{ID: uuid.New(), FirstName: "No", FamilyName: "Body"}
	assert.ErrorIs(t, repo.Update(ctx, missing), ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, missing.ID), ErrNotFound)

	_, err := repo.FindByID(ctx, missing.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAuthorRepository_UpdateClearsDates(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormAuthorRepository(db)
	ctx := context.Background()

	born := time.Date(1920, 1, 2, 0, 0, 0, 0, time.UTC)
	author := &model.Author{FirstName: "Isaac", FamilyName: "Asimov", DateOfBirth: &born}
	require.NoError(t, repo.Create(ctx, author))

	author.DateOfBirth = nil
	require.NoError(t, repo.Update(ctx, author))

	got, err := repo.FindByID(ctx, author.ID)
	require.NoError(t, err)
	assert.Nil(t, got.DateOfBirth)
}

func TestGenreRepository_UniqueName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormGenreRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Genre{Name: "Poetry"}))

	err := repo.Create(ctx, &model.Genre{Name: "Poetry"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicate), "expected ErrDuplicate, got %v", err)

	found, err := repo.FindByName(ctx, "Poetry")
	require.NoError(t, err)
	assert.Equal(t, "Poetry", found.Name)

	_, err = repo.FindByName(ctx, "poetry")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGenreRepository_FindByIDs(t *testing.T) {
	db := testutil.NewTestDB(t)
	_, _, genres := seedCatalog(t, db)
	repo := NewGormGenreRepository(db)
	ctx := context.Background()

	empty, err := repo.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	found, err := repo.FindByIDs(ctx, []uuid.UUID{genres[0].ID, genres[1].ID, uuid.New()})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Adventure", found[0].Name)
	assert.Equal(t, "Fantasy", found[1].Name)
}

func TestBookRepository_CreateFindAndGenreReplacement(t *testing.T) {
	db := testutil.NewTestDB(t)
	store, author, genres := seedCatalog(t, db)
	ctx := context.Background()

	book := &model.Book{
		Title:    "The Name of the Wind",
		AuthorID: author.ID,
		Summary:  "A young man grows to be a notorious magician.",
		ISBN:     "9781473211896",
		Genres:   []model.Genre{genres[0]},
	}
	require.NoError(t, store.Books.Create(ctx, book))

	got, err := store.Books.FindByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rothfuss", got.Author.FamilyName)
	require.Len(t, got.Genres, 1)
	assert.Equal(t, "Fantasy", got.Genres[0].Name)

	got.Genres = []model.Genre{genres[1]}
	got.Title = "The Wise Man's Fear"
	require.NoError(t, store.Books.Update(ctx, got))

	got, err = store.Books.FindByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Wise Man's Fear", got.Title)
	require.Len(t, got.Genres, 1)
	assert.Equal(t, "Adventure", got.Genres[0].Name)

	got.Genres = nil
	require.NoError(t, store.Books.Update(ctx, got))

	got, err = store.Books.FindByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Genres)
}

func TestBookRepository_ListQueries(t *testing.T) {
	db := testutil.NewTestDB(t)
	store, author, genres := seedCatalog(t, db)
	ctx := context.Background()

	other := model.Author{FirstName: "Isaac", FamilyName: "Asimov"}
	require.NoError(t, store.Authors.Create(ctx, &other))

	for _, b := range []model.Book{
		{Title: "The Wise Man's Fear", AuthorID: author.ID, Summary: "s", ISBN: "2", Genres: genres},
		{Title: "Foundation", AuthorID: other.ID, Summary: "s", ISBN: "3"},
		{Title: "The Name of the Wind", AuthorID: author.ID, Summary: "s", ISBN: "1", Genres: genres[:1]},
	} {
		require.NoError(t, store.Books.Create(ctx, &b))
	}

	all, err := store.Books.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Foundation", all[0].Title)
	assert.Equal(t, "Asimov", all[0].Author.FamilyName)
	assert.Equal(t, "The Name of the Wind", all[1].Title)

	byAuthor, err := store.Books.ListByAuthor(ctx, author.ID)
	require.NoError(t, err)
	require.Len(t, byAuthor, 2)
	assert.Equal(t, "The Name of the Wind", byAuthor[0].Title)

	n, err := store.Books.CountByAuthor(ctx, author.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	byGenre, err := store.Books.ListByGenre(ctx, genres[1].ID)
	require.NoError(t, err)
	require.Len(t, byGenre, 1)
	assert.Equal(t, "The Wise Man's Fear", byGenre[0].Title)

	pulled, err := store.Books.PullGenre(ctx, genres[0].ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, pulled)

	pulled, err = store.Books.PullGenre(ctx, genres[0].ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, pulled)
}

func TestBookInstanceRepository_HistoryIsAppendOnly(t *testing.T) {
	db := testutil.NewTestDB(t)
	store, author, _ := seedCatalog(t, db)
	ctx := context.Background()

	book := &model.Book{Title: "The Name of the Wind", AuthorID: author.ID, Summary: "s", ISBN: "1"}
	require.NoError(t, store.Books.Create(ctx, book))

	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	bi := &model.BookInstance{
		BookID:       book.ID,
		Imprint:      "Gollancz, 2014",
		Status:       model.StatusMaintenance,
		CreationDate: created,
		History: []model.HistoryEntry{
			{Action: model.StatusMaintenance, Time: created},
		},
	}
	require.NoError(t, store.BookInstances.Create(ctx, bi))

	bi.Status = model.StatusAvailable
	bi.CreationDate = created.Add(48 * time.Hour)
	entry := &model.HistoryEntry{Action: model.StatusAvailable, Time: created.Add(time.Hour)}
	require.NoError(t, store.BookInstances.Update(ctx, bi, entry))

	got, err := store.BookInstances.FindByID(ctx, bi.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusAvailable, got.Status)
	assert.True(t, got.CreationDate.Equal(created), "creation date changed to %v", got.CreationDate)
	assert.Equal(t, "The Name of the Wind", got.Book.Title)
	assert.Equal(t, "Rothfuss", got.Book.Author.FamilyName)
	require.Len(t, got.History, 2)
	assert.Equal(t, model.StatusMaintenance, got.History[0].Action)
	assert.Equal(t, model.StatusAvailable, got.History[1].Action)

	counts, err := store.BookInstances.CountByStatus(ctx, model.StatusAvailable)
	require.NoError(t, err)
	assert.EqualValues(t, 1, counts)

	require.NoError(t, store.BookInstances.Delete(ctx, bi.ID))

	var left int64
	require.NoError(t, db.Model(&model.HistoryEntry{}).Count(&left).Error)
	assert.Zero(t, left)

	assert.ErrorIs(t, store.BookInstances.Delete(ctx, bi.ID), ErrNotFound)
}

func TestRepositories_StoreFailure(t *testing.T) {
	db := testutil.NewUnmigratedDB(t)
	store := NewGormStore(db)
	ctx := context.Background()

	_, err := store.Authors.Count(ctx)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))

	_, err = store.Genres.List(ctx)
	require.Error(t, err)
}
