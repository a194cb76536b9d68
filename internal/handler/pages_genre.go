package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/locallibrary/internal/model"
	"github.com/snnyvrz/locallibrary/internal/validation"
)

func (h *PageHandler) GenreList(c *gin.Context) {
	genres, err := h.svc.ListGenres(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "genre_list", gin.H{
		"Title":  "Genre List",
		"Genres": genres,
	})
}

func (h *PageHandler) GenreDetail(c *gin.Context) {
	detail, err := h.svc.GetGenreDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "genre_detail", gin.H{
		"Title": "Genre Detail",
		"Genre": detail.Genre,
		"Books": detail.Books,
	})
}

func (h *PageHandler) GenreCreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "genre_form", gin.H{
		"Title": "Create Genre",
		"Form":  validation.Form{},
	})
}

// GenreCreate redirects to the existing genre when the name is taken.
func (h *PageHandler) GenreCreate(c *gin.Context) {
	form := postedForm(c)

	genre, _, err := h.svc.CreateGenre(c.Request.Context(), form)
	if err != nil {
		if errs, ok := h.formErrors(c, err); ok {
			c.HTML(http.StatusUnprocessableEntity, "genre_form", gin.H{
				"Title":  "Create Genre",
				"Form":   form,
				"Errors": errs,
			})
			return
		}
		h.renderError(c, err)
		return
	}

	redirect(c, model.GenreURL(genre.ID))
}

func (h *PageHandler) GenreUpdateForm(c *gin.Context) {
	detail, err := h.svc.GetGenreDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "genre_form", gin.H{
		"Title": "Update Genre",
		"Form":  validation.Form{validation.FieldName: {detail.Genre.Name}},
	})
}

func (h *PageHandler) GenreUpdate(c *gin.Context) {
	form := postedForm(c)

	genre, err := h.svc.UpdateGenre(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		if errs, ok := h.formErrors(c, err); ok {
			c.HTML(http.StatusUnprocessableEntity, "genre_form", gin.H{
				"Title":  "Update Genre",
				"Form":   form,
				"Errors": errs,
			})
			return
		}
		h.renderError(c, err)
		return
	}

	redirect(c, model.GenreURL(genre.ID))
}

func (h *PageHandler) GenreDeleteForm(c *gin.Context) {
	detail, err := h.svc.GetGenreDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "genre_delete", gin.H{
		"Title": "Delete Genre",
		"Genre": detail.Genre,
		"Books": detail.Books,
	})
}

func (h *PageHandler) GenreDelete(c *gin.Context) {
	if _, err := h.svc.DeleteGenre(c.Request.Context(), c.Param("id")); err != nil {
		h.renderError(c, err)
		return
	}

	redirect(c, "/catalog/genres")
}
