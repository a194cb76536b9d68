package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/locallibrary/internal/model"
	"github.com/snnyvrz/locallibrary/internal/validation"
)

func authorForm(a model.Author) validation.Form {
	return validation.Form{
		validation.FieldFirstName:   {a.FirstName},
		validation.FieldFamilyName:  {a.FamilyName},
		validation.FieldDateOfBirth: {formatDate(a.DateOfBirth)},
		validation.FieldDateOfDeath: {formatDate(a.DateOfDeath)},
	}
}

func (h *PageHandler) AuthorList(c *gin.Context) {
	authors, err := h.svc.ListAuthors(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "author_list", gin.H{
		"Title":   "Author List",
		"Authors": authors,
	})
}

func (h *PageHandler) AuthorDetail(c *gin.Context) {
	detail, err := h.svc.GetAuthorDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "author_detail", gin.H{
		"Title":  "Author Detail",
		"Author": detail.Author,
		"Books":  detail.Books,
	})
}

func (h *PageHandler) AuthorCreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "author_form", gin.H{
		"Title": "Create Author",
		"Form":  validation.Form{},
	})
}

func (h *PageHandler) AuthorCreate(c *gin.Context) {
	form := postedForm(c)

	author, err := h.svc.CreateAuthor(c.Request.Context(), form)
	if err != nil {
		if errs, ok := h.formErrors(c, err); ok {
			c.HTML(http.StatusUnprocessableEntity, "author_form", gin.H{
				"Title":  "Create Author",
				"Form":   form,
				"Errors": errs,
			})
			return
		}
		h.renderError(c, err)
		return
	}

	redirect(c, model.AuthorURL(author.ID))
}

func (h *PageHandler) AuthorUpdateForm(c *gin.Context) {
	detail, err := h.svc.GetAuthorDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "author_form", gin.H{
		"Title": "Update Author",
		"Form":  authorForm(detail.Author),
	})
}

func (h *PageHandler) AuthorUpdate(c *gin.Context) {
	form := postedForm(c)

	author, err := h.svc.UpdateAuthor(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		if errs, ok := h.formErrors(c, err); ok {
			c.HTML(http.StatusUnprocessableEntity, "author_form", gin.H{
				"Title":  "Update Author",
				"Form":   form,
				"Errors": errs,
			})
			return
		}
		h.renderError(c, err)
		return
	}

	redirect(c, model.AuthorURL(author.ID))
}

func (h *PageHandler) AuthorDeleteForm(c *gin.Context) {
	h.renderAuthorDelete(c, http.StatusOK)
}

func (h *PageHandler) renderAuthorDelete(c *gin.Context, status int) {
	detail, err := h.svc.GetAuthorDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(status, "author_delete", gin.H{
		"Title":  "Delete Author",
		"Author": detail.Author,
		"Books":  detail.Books,
	})
}

func (h *PageHandler) AuthorDelete(c *gin.Context) {
	err := h.svc.DeleteAuthor(c.Request.Context(), c.Param("id"))
	switch {
	case err == nil:
		redirect(c, "/catalog/authors")
	case h.isDependency(c, err):
		h.renderAuthorDelete(c, http.StatusConflict)
	default:
		h.renderError(c, err)
	}
}
