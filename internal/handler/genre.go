package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/locallibrary/internal/catalog"
	"github.com/snnyvrz/locallibrary/internal/metrics"
	"github.com/snnyvrz/locallibrary/internal/validation"
)

type GenreHandler struct {
	svc     *catalog.Service
	metrics *metrics.Metrics
}

func NewGenreHandler(svc *catalog.Service, m *metrics.Metrics) *GenreHandler {
	return &GenreHandler{svc: svc, metrics: m}
}

func (h *GenreHandler) RegisterRoutes(r *gin.RouterGroup) {
	genres := r.Group("/genres")
	{
		genres.POST("", h.CreateGenre)
		genres.GET("", h.ListGenres)
		genres.GET("/:id", h.GetGenre)
		genres.PUT("/:id", h.UpdateGenre)
		genres.DELETE("/:id", h.DeleteGenre)
	}
}

// CreateGenre godoc
// @Summary      Create a genre
// @Description  Create a genre, or return the existing one with the same name
// @Tags         genres
// @Accept       json
// @Produce      json
// @Param        payload  body      GenreRequest              true  "Genre to create"
// @Success      201      {object}  GenreResponse             "Created"
// @Success      200      {object}  GenreResponse             "Existing genre reused"
// @Failure      400      {object}  validation.ErrorResponse  "Validation error"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /genres [post]
func (h *GenreHandler) CreateGenre(c *gin.Context) {
	var req GenreRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	genre, created, err := h.svc.CreateGenre(c.Request.Context(), req.form())
	if err != nil {
		writeCatalogError(c, h.metrics, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, toGenreResponse(*genre))
}

// ListGenres godoc
// @Summary      List genres
// @Tags         genres
// @Produce      json
// @Success      200  {array}   GenreResponse
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /genres [get]
func (h *GenreHandler) ListGenres(c *gin.Context) {
	genres, err := h.svc.ListGenres(c.Request.Context())
	if err != nil {
		writeCatalogError(c, h.metrics, err)
		return
	}

	res := make([]GenreResponse, 0, len(genres))
	for _, g := range genres {
		res = append(res, toGenreResponse(g))
	}

	c.JSON(http.StatusOK, res)
}

// GetGenre godoc
// @Summary      Get genre by ID
// @Description  Get a genre and the books listed under it
// @Tags         genres
// @Produce      json
// @Param        id   path      string                    true  "Genre ID (UUID)"
// @Success      200  {object}  GenreDetailResponse
// @Failure      404  {object}  validation.ErrorResponse  "Genre not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /genres/{id} [get]
func (h *GenreHandler) GetGenre(c *gin.Context) {
	detail, err := h.svc.GetGenreDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeCatalogError(c, h.metrics, err)
		return
	}

	c.JSON(http.StatusOK, toGenreDetailResponse(detail))
}

// UpdateGenre godoc
// @Summary      Rename a genre
// @Tags         genres
// @Accept       json
// @Produce      json
// @Param        id       path      string        true  "Genre ID (UUID)"
// @Param        payload  body      GenreRequest  true  "New name"
// @Success      200      {object}  GenreResponse
// @Failure      400      {object}  validation.ErrorResponse  "Validation error or name taken"
// @Failure      404      {object}  validation.ErrorResponse  "Genre not found"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /genres/{id} [put]
func (h *GenreHandler) UpdateGenre(c *gin.Context) {
	var req GenreRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	genre, err := h.svc.UpdateGenre(c.Request.Context(), c.Param("id"), req.form())
	if err != nil {
		writeCatalogError(c, h.metrics, err)
		return
	}

	c.JSON(http.StatusOK, toGenreResponse(*genre))
}

// DeleteGenre godoc
// @Summary      Delete a genre
// @Description  Delete a genre and remove it from every book that lists it
// @Tags         genres
// @Produce      json
// @Param        id   path      string                    true  "Genre ID (UUID)"
// @Success      200  {object}  DeleteGenreResponse
// @Failure      404  {object}  validation.ErrorResponse  "Genre not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /genres/{id} [delete]
func (h *GenreHandler) DeleteGenre(c *gin.Context) {
	n, err := h.svc.DeleteGenre(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeCatalogError(c, h.metrics, err)
		return
	}

	c.JSON(http.StatusOK, DeleteGenreResponse{BooksUpdated: n})
}
