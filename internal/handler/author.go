package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/locallibrary/internal/catalog"
	"github.com/snnyvrz/locallibrary/internal/metrics"
	"github.com/snnyvrz/locallibrary/internal/validation"
)

type AuthorHandler struct {
	svc     *catalog.Service
	metrics *metrics.Metrics
}

func NewAuthorHandler(svc *catalog.Service, m *metrics.Metrics) *AuthorHandler {
	return &AuthorHandler{svc: svc, metrics: m}
}

func (h *AuthorHandler) RegisterRoutes(r *gin.RouterGroup) {
	authors := r.Group("/authors")
	{
		authors.POST("", h.CreateAuthor)
		authors.GET("", h.ListAuthors)
		authors.GET("/:id", h.GetAuthor)
		authors.PUT("/:id", h.UpdateAuthor)
		authors.DELETE("/:id", h.DeleteAuthor)
	}
}

// CreateAuthor godoc
// @Summary      Create an author
// @Description  Create a new author. Names are required and alphanumeric, dates are YYYY-MM-DD.
// @Tags         authors
// @Accept       json
// @Produce      json
// @Param        payload  body      AuthorRequest              true  "Author to create"
// @Success      201      {object}  AuthorResponse
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /authors [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req AuthorRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	author, err := h.svc.CreateAuthor(c.Request.Context(), req.form())
	if err != nil {
		writeCatalogError(c, h.metrics, err)
		return
	}

	c.JSON(http.StatusCreated, toAuthorResponse(*author))
}

// ListAuthors godoc
// @Summary      List authors
// @Description  Get every author ordered by family name
// @Tags         authors
// @Produce      json
// @Success      200  {array}   AuthorResponse
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /authors [get]
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	authors, err := h.svc.ListAuthors(c.Request.Context())
	if err != nil {
		writeCatalogError(c, h.metrics, err)
		return
	}

	res := make([]AuthorResponse, 0, len(authors))
	for _, a := range authors {
		res = append(res, toAuthorResponse(a))
	}

	c.JSON(http.StatusOK, res)
}

// GetAuthor godoc
// @Summary      Get author by ID
// @Description  Get a single author together with their books
// @Tags         authors
// @Produce      json
// @Param        id   path      string                    true  "Author ID (UUID)"
// @Success      200  {object}  AuthorDetailResponse
// @Failure      404  {object}  validation.ErrorResponse  "Author not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /authors/{id} [get]
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	detail, err := h.svc.GetAuthorDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeCatalogError(c, h.metrics, err)
		return
	}

	c.JSON(http.StatusOK, toAuthorDetailResponse(detail))
}

// UpdateAuthor godoc
// @Summary      Update an author
// @Description  Replace every field of an existing author
// @Tags         authors
// @Accept       json
// @Produce      json
// @Param        id       path      string         true  "Author ID (UUID)"
// @Param        payload  body      AuthorRequest  true  "Author fields"
// @Success      200      {object}  AuthorResponse
// @Failure      400      {object}  validation.ErrorResponse  "Validation error"
// @Failure      404      {object}  validation.ErrorResponse  "Author not found"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /authors/{id} [put]
func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	var req AuthorRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	author, err := h.svc.UpdateAuthor(c.Request.Context(), c.Param("id"), req.form())
	if err != nil {
		writeCatalogError(c, h.metrics, err)
		return
	}

	c.JSON(http.StatusOK, toAuthorResponse(*author))
}

// DeleteAuthor godoc
// @Summary      Delete an author
// @Description  Delete an author that no book references
// @Tags         authors
// @Produce      json
// @Param        id   path      string                    true  "Author ID (UUID)"
// @Success      204  "No Content"
// @Failure      404  {object}  validation.ErrorResponse  "Author not found"
// @Failure      409  {object}  validation.ErrorResponse  "Author still has books"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /authors/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	if err := h.svc.DeleteAuthor(c.Request.Context(), c.Param("id")); err != nil {
		writeCatalogError(c, h.metrics, err)
		return
	}

	c.Status(http.StatusNoContent)
}
