//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snnyvrz/locallibrary/internal/catalog"
	"github.com/snnyvrz/locallibrary/internal/config"
	"github.com/snnyvrz/locallibrary/internal/db"
	"github.com/snnyvrz/locallibrary/internal/handler"
	"github.com/snnyvrz/locallibrary/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var (
	testDB     *gorm.DB
	testRouter *gin.Engine
)

// TestMain runs against the Postgres database described by the usual
// DB_* environment variables.
func TestMain(m *testing.M) {
	os.Setenv("DB_DRIVER", config.DriverPostgres)

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	database, err := db.Open(cfg)
	if err != nil {
		panic("failed to connect to test database: " + err.Error())
	}
	testDB = database

	if err := db.Migrate(database); err != nil {
		panic("failed to migrate: " + err.Error())
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()

	svc := catalog.NewService(repository.NewGormStore(database))

	api := r.Group("/api")
	{
		handler.NewAuthorHandler(svc, nil).RegisterRoutes(api)
		handler.NewGenreHandler(svc, nil).RegisterRoutes(api)
		handler.NewBookHandler(svc, nil).RegisterRoutes(api)
		handler.NewBookInstanceHandler(svc, nil).RegisterRoutes(api)
		handler.NewOverviewHandler(svc, nil).RegisterRoutes(api)
	}

	testRouter = r

	code := m.Run()
	_ = db.Close(database)
	os.Exit(code)
}

func resetDB(t *testing.T) {
	t.Helper()

	err := testDB.Exec(
		"TRUNCATE TABLE book_instance_history, book_instances, book_genres, books, genres, authors RESTART IDENTITY CASCADE;",
	).Error
	require.NoError(t, err, "truncate failed")
}

func post(t *testing.T, client *http.Client, url string, payload any) *http.Response {
	t.Helper()

	b, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := client.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	return resp
}

func createID(t *testing.T, client *http.Client, url string, payload any) string {
	t.Helper()

	resp := post(t, client, url, payload)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode, "POST %s", url)

	var body struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.ID)
	return body.ID
}

func getJSON(t *testing.T, client *http.Client, url string, out any) int {
	t.Helper()

	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestCatalogLifecycle_Integration(t *testing.T) {
	resetDB(t)

	srv := httptest.NewServer(testRouter)
	defer srv.Close()
	client := srv.Client()

	authorID := createID(t, client, srv.URL+"/api/authors", map[string]any{
		"firstName":   "Patrick",
		"familyName":  "Rothfuss",
		"dateOfBirth": "1973-06-06",
	})
	genreID := createID(t, client, srv.URL+"/api/genres", map[string]any{"name": "Fantasy"})
	bookID := createID(t, client, srv.URL+"/api/books", map[string]any{
		"title":   "The Name of the Wind",
		"author":  authorID,
		"summary": "A legend in his own time.",
		"isbn":    "9781473211896",
		"genres":  []string{genreID},
	})
	instanceID := createID(t, client, srv.URL+"/api/bookinstances", map[string]any{
		"book":    bookID,
		"imprint": "Gollancz, 2014.",
		"status":  "Loaned",
	})

	var detail struct {
		Book struct {
			Title  string `json:"title"`
			Author struct {
				ID string `json:"id"`
			} `json:"author"`
			Genres []struct {
				ID string `json:"id"`
			} `json:"genres"`
		} `json:"book"`
		Instances []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"instances"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, client, srv.URL+"/api/books/"+bookID, &detail))
	assert.Equal(t, "The Name of the Wind", detail.Book.Title)
	assert.Equal(t, authorID, detail.Book.Author.ID)
	require.Len(t, detail.Book.Genres, 1)
	assert.Equal(t, genreID, detail.Book.Genres[0].ID)
	require.Len(t, detail.Instances, 1)
	assert.Equal(t, instanceID, detail.Instances[0].ID)
	assert.Equal(t, "Loaned", detail.Instances[0].Status)

	var counts catalog.OverviewCounts
	require.Equal(t, http.StatusOK, getJSON(t, client, srv.URL+"/api/overview", &counts))
	assert.Equal(t, catalog.OverviewCounts{
		Books:         1,
		BookInstances: 1,
		Authors:       1,
		Genres:        1,
	}, counts)

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/authors/"+authorID, nil)
	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	req, _ = http.NewRequest(http.MethodDelete, srv.URL+"/api/genres/"+genreID, nil)
	resp, err = client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var deleted struct {
		BooksUpdated int64 `json:"booksUpdated"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&deleted))
	assert.Equal(t, int64(1), deleted.BooksUpdated)
}

func TestCreateBook_Integration(t *testing.T) {
	resetDB(t)

	srv := httptest.NewServer(testRouter)
	defer srv.Close()
	client := srv.Client()

	authorID := createID(t, client, srv.URL+"/api/authors", map[string]any{
		"firstName":  "Ben",
		"familyName": "Bova",
	})

	cases := []struct {
		name       string
		payload    map[string]any
		wantStatus int
	}{
		{
			name: "valid_book",
			payload: map[string]any{
				"title": "Death Wave", "author": authorID, "summary": "s", "isbn": "9780765379504",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing_fields",
			payload:    map[string]any{"author": authorID},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid_author_id_format",
			payload: map[string]any{
				"title": "Bad", "author": "not-a-uuid", "summary": "s", "isbn": "1",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "nonexistent_author",
			payload: map[string]any{
				"title": "Ghost", "author": uuid.NewString(), "summary": "s", "isbn": "1",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := post(t, client, srv.URL+"/api/books", tc.payload)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantStatus, resp.StatusCode)
		})
	}
}

func TestGetErrors_Integration(t *testing.T) {
	resetDB(t)

	srv := httptest.NewServer(testRouter)
	defer srv.Close()
	client := srv.Client()

	for _, path := range []string{
		"/api/authors/not-a-uuid",
		"/api/authors/" + uuid.NewString(),
		"/api/books/" + uuid.NewString(),
		"/api/genres/" + uuid.NewString(),
		"/api/bookinstances/" + uuid.NewString(),
	} {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, http.StatusNotFound, getJSON(t, client, srv.URL+path, nil))
		})
	}
}
