package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/locallibrary/internal/model"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db        *gorm.DB
	startTime time.Time
	version   string
}

func NewHealthHandler(db *gorm.DB, startTime time.Time, version string) *HealthHandler {
	return &HealthHandler{
		db:        db,
		startTime: startTime,
		version:   version,
	}
}

func (h *HealthHandler) RegisterRoutes(e *gin.Engine) {
	e.GET("/health", h.Health)
	e.GET("/ready", h.Ready)
}

func (h *HealthHandler) uptime() int64 {
	return int64(time.Since(h.startTime).Seconds())
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
		"uptime":  h.uptime(),
	})
}

// Ready reports whether the catalog database answers and holds every
// catalog table.
func (h *HealthHandler) Ready(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "error",
			"error":  "failed to get underlying DB",
		})
		return
	}

	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"db":     gin.H{"status": "down", "error": err.Error()},
		})
		return
	}

	migrator := h.db.WithContext(c.Request.Context()).Migrator()
	var missing []string
	for _, table := range []any{
		&model.Author{},
		&model.Genre{},
		&model.Book{},
		&model.BookInstance{},
		&model.HistoryEntry{},
	} {
		if !migrator.HasTable(table) {
			stmt := &gorm.Statement{DB: h.db}
			if err := stmt.Parse(table); err == nil {
				missing = append(missing, stmt.Schema.Table)
			}
		}
	}
	if len(missing) > 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"db":     gin.H{"status": "up", "missingTables": missing},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"version": h.version,
		"uptime":  h.uptime(),
		"db":      gin.H{"status": "up"},
	})
}
