package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/snnyvrz/locallibrary/internal/catalog"
	"github.com/snnyvrz/locallibrary/internal/logging"
	"github.com/snnyvrz/locallibrary/internal/metrics"
	"github.com/snnyvrz/locallibrary/internal/validation"
)

// Failure kinds, used as metric labels and in logs.
const (
	failureValidation = "validation"
	failureNotFound   = "not_found"
	failureDependency = "dependency"
	failureStore      = "store"
)

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, validation.ErrorResponse{
		Code:    code,
		Message: message,
		Errors:  nil,
	})
}

func failureKind(err error) string {
	var (
		verr *catalog.ValidationError
		nerr *catalog.NotFoundError
		derr *catalog.DependencyError
	)
	switch {
	case errors.As(err, &verr):
		return failureValidation
	case errors.As(err, &nerr):
		return failureNotFound
	case errors.As(err, &derr):
		return failureDependency
	default:
		return failureStore
	}
}

// observe counts the failure and logs it. Store failures are logged at
// error level, everything else at debug.
func observe(c *gin.Context, m *metrics.Metrics, err error) string {
	kind := failureKind(err)
	m.ObserveFailure(kind)

	event := log.Debug()
	if kind == failureStore {
		event = log.Error()
	}
	event.
		Err(err).
		Str("kind", kind).
		Str("request_id", logging.RequestIDFrom(c)).
		Str("path", c.Request.URL.Path).
		Msg("catalog request failed")

	return kind
}

// writeCatalogError maps a workflow failure onto the JSON error body.
func writeCatalogError(c *gin.Context, m *metrics.Metrics, err error) {
	switch observe(c, m, err) {
	case failureValidation:
		var verr *catalog.ValidationError
		errors.As(err, &verr)
		c.AbortWithStatusJSON(http.StatusBadRequest, validation.ErrorResponse{
			Code:    "VALIDATION_FAILED",
			Message: "validation failed",
			Errors:  verr.Errors,
		})
	case failureNotFound:
		var nerr *catalog.NotFoundError
		errors.As(err, &nerr)
		writeError(c, http.StatusNotFound, "NOT_FOUND", nerr.Message())
	case failureDependency:
		var derr *catalog.DependencyError
		errors.As(err, &derr)
		writeError(c, http.StatusConflict, "DEPENDENCY_EXISTS", derr.Message())
	default:
		writeError(c, http.StatusInternalServerError, "STORE_ERROR", "internal server error")
	}
}
