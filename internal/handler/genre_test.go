package handler

import (
	"net/http"
	"testing"

	"github.com/snnyvrz/locallibrary/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGenre_ReusesExistingName(t *testing.T) {
	svc, _ := setupService(t)
	router := setupRouter(t, svc)

	w := doJSON(t, router, http.MethodPost, "/api/genres", GenreRequest{Name: "Fantasy"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}
	first := decode[GenreResponse](t, w)

	w = doJSON(t, router, http.MethodPost, "/api/genres", GenreRequest{Name: "Fantasy"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
	assert.Equal(t, first.ID, decode[GenreResponse](t, w).ID)

	w = doGet(router, "/api/genres")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]GenreResponse](t, w), 1)
}

func TestCreateGenre_TooShort(t *testing.T) {
	svc, _ := setupService(t)
	router := setupRouter(t, svc)

	w := doJSON(t, router, http.MethodPost, "/api/genres", GenreRequest{Name: "SF"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decode[validation.ErrorResponse](t, w)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "name", resp.Errors[0].Field)
	assert.Equal(t, "length_out_of_range", resp.Errors[0].Rule)
}

func TestUpdateGenre_NameTaken(t *testing.T) {
	svc, _ := setupService(t)
	router := setupRouter(t, svc)

	doJSON(t, router, http.MethodPost, "/api/genres", GenreRequest{Name: "Fantasy"})
	poetry := decode[GenreResponse](t, doJSON(t, router, http.MethodPost, "/api/genres", GenreRequest{Name: "Poetry"}))

	w := doJSON(t, router, http.MethodPut, "/api/genres/"+poetry.ID.String(), GenreRequest{Name: "Fantasy"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "unique", decode[validation.ErrorResponse](t, w).Errors[0].Rule)

	w = doJSON(t, router, http.MethodPut, "/api/genres/"+poetry.ID.String(), GenreRequest{Name: "Verse"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Verse", decode[GenreResponse](t, w).Name)
}

func TestDeleteGenre_ReportsUpdatedBooks(t *testing.T) {
	svc, _ := setupService(t)
	router := setupRouter(t, svc)

	author := decode[AuthorResponse](t, doJSON(t, router, http.MethodPost, "/api/authors", AuthorRequest{
		FirstName: "Patrick", FamilyName: "Rothfuss",
	}))
	genre := decode[GenreResponse](t, doJSON(t, router, http.MethodPost, "/api/genres", GenreRequest{Name: "Fantasy"}))

	for _, title := range []string{"The Name of the Wind", "The Wise Man's Fear"} {
		w := doJSON(t, router, http.MethodPost, "/api/books", BookRequest{
			Title: title, Author: author.ID.String(), Summary: "s", ISBN: "1", Genres: StringList{genre.ID.String()},
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := doJSON(t, router, http.MethodDelete, "/api/genres/"+genre.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, 2, decode[DeleteGenreResponse](t, w).BooksUpdated)

	w = doJSON(t, router, http.MethodDelete, "/api/genres/"+genre.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
