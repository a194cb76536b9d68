package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/locallibrary/internal/catalog"
	"github.com/snnyvrz/locallibrary/internal/metrics"
	"github.com/snnyvrz/locallibrary/internal/validation"
)

type BookHandler struct {
	svc     *catalog.Service
	metrics *metrics.Metrics
}

func NewBookHandler(svc *catalog.Service, m *metrics.Metrics) *BookHandler {
	return &BookHandler{svc: svc, metrics: m}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	{
		books.POST("", h.CreateBook)
		books.GET("", h.ListBooks)
		books.GET("/:id", h.GetBook)
		books.PUT("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)
	}
}

// CreateBook godoc
// @Summary      Create a book
// @Description  Create a book for an existing author. genres may be a single id or a list.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      BookRequest               true  "Book to create"
// @Success      201      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse  "Validation error"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req BookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	book, err := h.svc.CreateBook(c.Request.Context(), req.form())
	if err != nil {
		writeCatalogError(c, h.metrics, err)
		return
	}

	c.JSON(http.StatusCreated, toBookResponse(*book))
}

// ListBooks godoc
// @Summary      List books
// @Description  Title and author of every book, ordered by title
// @Tags         books
// @Produce      json
// @Success      200  {array}   BookSummary
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.svc.ListBooks(c.Request.Context())
	if err != nil {
		writeCatalogError(c, h.metrics, err)
		return
	}

	c.JSON(http.StatusOK, toBookSummaries(books))
}

// GetBook godoc
// @Summary      Get book by ID
// @Description  Get a book with its author, genres and copies
// @Tags         books
// @Produce      json
// @Param        id   path      string                    true  "Book ID (UUID)"
// @Success      200  {object}  BookDetailResponse
// @Failure      404  {object}  validation.ErrorResponse  "Book not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	detail, err := h.svc.GetBookDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeCatalogError(c, h.metrics, err)
		return
	}

	c.JSON(http.StatusOK, toBookDetailResponse(detail))
}

// UpdateBook godoc
// @Summary      Update a book
// @Description  Replace every field of a book, including its genre set
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path      string       true  "Book ID (UUID)"
// @Param        payload  body      BookRequest  true  "Book fields"
// @Success      200      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse  "Validation error"
// @Failure      404      {object}  validation.ErrorResponse  "Book not found"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	var req BookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	book, err := h.svc.UpdateBook(c.Request.Context(), c.Param("id"), req.form())
	if err != nil {
		writeCatalogError(c, h.metrics, err)
		return
	}

	c.JSON(http.StatusOK, toBookResponse(*book))
}

// DeleteBook godoc
// @Summary      Delete a book
// @Description  Delete a book that has no copies
// @Tags         books
// @Produce      json
// @Param        id   path      string                    true  "Book ID (UUID)"
// @Success      204  "No Content"
// @Failure      404  {object}  validation.ErrorResponse  "Book not found"
// @Failure      409  {object}  validation.ErrorResponse  "Book still has copies"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	if err := h.svc.DeleteBook(c.Request.Context(), c.Param("id")); err != nil {
		writeCatalogError(c, h.metrics, err)
		return
	}

	c.Status(http.StatusNoContent)
}
