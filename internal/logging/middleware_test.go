package logging

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Logger(), Recovery())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/boom", func(c *gin.Context) { panic("boom") })
	return r
}

func TestLogger_WritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "info", false)

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	newRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "req-123", line["request_id"])
	assert.Equal(t, "/ok", line["path"])
	assert.EqualValues(t, 204, line["status"])
}

func TestRequestID_GeneratedWhenMissing(t *testing.T) {
	InitWithWriter(&bytes.Buffer{}, "error", false)

	w := httptest.NewRecorder()
	newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRecovery_Returns500(t *testing.T) {
	InitWithWriter(&bytes.Buffer{}, "error", false)

	w := httptest.NewRecorder()
	newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "debug", ParseLevel("debug").String())
	assert.Equal(t, "warn", ParseLevel("warning").String())
	assert.Equal(t, "error", ParseLevel("error").String())
	assert.Equal(t, "info", ParseLevel("nonsense").String())
}
