package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/locallibrary/internal/catalog"
	"github.com/snnyvrz/locallibrary/internal/metrics"
	"github.com/snnyvrz/locallibrary/internal/validation"
)

type BookInstanceHandler struct {
	svc     *catalog.Service
	metrics *metrics.Metrics
}

func NewBookInstanceHandler(svc *catalog.Service, m *metrics.Metrics) *BookInstanceHandler {
	return &BookInstanceHandler{svc: svc, metrics: m}
}

func (h *BookInstanceHandler) RegisterRoutes(r *gin.RouterGroup) {
	instances := r.Group("/bookinstances")
	{
		instances.POST("", h.CreateBookInstance)
		instances.GET("", h.ListBookInstances)
		instances.GET("/:id", h.GetBookInstance)
		instances.PUT("/:id", h.UpdateBookInstance)
		instances.DELETE("/:id", h.DeleteBookInstance)
	}
}

// CreateBookInstance godoc
// @Summary      Create a book instance
// @Description  Add a copy of a book. Without a status the copy starts in Maintenance.
// @Tags         bookinstances
// @Accept       json
// @Produce      json
// @Param        payload  body      BookInstanceRequest       true  "Copy to create"
// @Success      201      {object}  BookInstanceResponse
// @Failure      400      {object}  validation.ErrorResponse  "Validation error"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /bookinstances [post]
func (h *BookInstanceHandler) CreateBookInstance(c *gin.Context) {
	var req BookInstanceRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	bi, err := h.svc.CreateBookInstance(c.Request.Context(), req.form())
	if err != nil {
		writeCatalogError(c, h.metrics, err)
		return
	}

	c.JSON(http.StatusCreated, toBookInstanceResponse(*bi))
}

// ListBookInstances godoc
// @Summary      List book instances
// @Tags         bookinstances
// @Produce      json
// @Success      200  {array}   BookInstanceResponse
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /bookinstances [get]
func (h *BookInstanceHandler) ListBookInstances(c *gin.Context) {
	instances, err := h.svc.ListBookInstances(c.Request.Context())
	if err != nil {
		writeCatalogError(c, h.metrics, err)
		return
	}

	c.JSON(http.StatusOK, toBookInstanceResponses(instances))
}

// GetBookInstance godoc
// @Summary      Get book instance by ID
// @Description  Get a copy with its book and status history
// @Tags         bookinstances
// @Produce      json
// @Param        id   path      string                    true  "Book instance ID (UUID)"
// @Success      200  {object}  BookInstanceResponse
// @Failure      404  {object}  validation.ErrorResponse  "Book instance not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /bookinstances/{id} [get]
func (h *BookInstanceHandler) GetBookInstance(c *gin.Context) {
	bi, err := h.svc.GetBookInstanceDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeCatalogError(c, h.metrics, err)
		return
	}

	c.JSON(http.StatusOK, toBookInstanceResponse(*bi))
}

// UpdateBookInstance godoc
// @Summary      Update a book instance
// @Description  A status in the body records a transition; omit it to keep the current status.
// @Tags         bookinstances
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Book instance ID (UUID)"
// @Param        payload  body      BookInstanceRequest  true  "Copy fields"
// @Success      200      {object}  BookInstanceResponse
// @Failure      400      {object}  validation.ErrorResponse  "Validation error"
// @Failure      404      {object}  validation.ErrorResponse  "Book instance not found"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /bookinstances/{id} [put]
func (h *BookInstanceHandler) UpdateBookInstance(c *gin.Context) {
	var req BookInstanceRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	bi, err := h.svc.UpdateBookInstance(c.Request.Context(), c.Param("id"), req.form())
	if err != nil {
		writeCatalogError(c, h.metrics, err)
		return
	}

	c.JSON(http.StatusOK, toBookInstanceResponse(*bi))
}

// DeleteBookInstance godoc
// @Summary      Delete a book instance
// @Tags         bookinstances
// @Produce      json
// @Param        id   path      string                    true  "Book instance ID (UUID)"
// @Success      204  "No Content"
// @Failure      404  {object}  validation.ErrorResponse  "Book instance not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /bookinstances/{id} [delete]
func (h *BookInstanceHandler) DeleteBookInstance(c *gin.Context) {
	if err := h.svc.DeleteBookInstance(c.Request.Context(), c.Param("id")); err != nil {
		writeCatalogError(c, h.metrics, err)
		return
	}

	c.Status(http.StatusNoContent)
}
