package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/locallibrary/internal/repository"
	"github.com/snnyvrz/locallibrary/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func failingStore(t *testing.T) repository.Store {
	t.Helper()
	return repository.NewGormStore(testutil.NewUnmigratedDB(t))
}

func setupHealthRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHealthHandler(db, time.Now(), "test").RegisterRoutes(r)
	return r
}

func TestHealth(t *testing.T) {
	router := setupHealthRouter(testutil.NewTestDB(t))

	w := doGet(router, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["version"])
}

func TestReady_Migrated(t *testing.T) {
	router := setupHealthRouter(testutil.NewTestDB(t))

	w := doGet(router, "/ready")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"status":"ready"`)
}

func TestReady_MissingTables(t *testing.T) {
	router := setupHealthRouter(testutil.NewUnmigratedDB(t))

	w := doGet(router, "/ready")
	require.Equal(t, http.StatusServiceUnavailable, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "book_instance_history")
	assert.Contains(t, w.Body.String(), "authors")
}

func TestReady_ClosedDB(t *testing.T) {
	db := testutil.NewTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	w := doGet(setupHealthRouter(db), "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
