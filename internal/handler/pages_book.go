package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/locallibrary/internal/model"
	"github.com/snnyvrz/locallibrary/internal/validation"
)

func bookForm(b model.Book) validation.Form {
	genres := make([]string, 0, len(b.Genres))
	for _, g := range b.Genres {
		genres = append(genres, g.ID.String())
	}

	return validation.Form{
		validation.FieldTitle:   {b.Title},
		validation.FieldAuthor:  {b.AuthorID.String()},
		validation.FieldSummary: {b.Summary},
		validation.FieldISBN:    {b.ISBN},
		validation.FieldGenres:  genres,
	}
}

func (h *PageHandler) BookList(c *gin.Context) {
	books, err := h.svc.ListBooks(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "book_list", gin.H{
		"Title": "Book List",
		"Books": books,
	})
}

func (h *PageHandler) BookDetail(c *gin.Context) {
	detail, err := h.svc.GetBookDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "book_detail", gin.H{
		"Title":     detail.Book.Title,
		"Book":      detail.Book,
		"Instances": detail.Instances,
	})
}

// renderBookForm loads the author and genre choices and shows the form.
func (h *PageHandler) renderBookForm(c *gin.Context, status int, title string, form validation.Form, errs []validation.FieldError) {
	opts, err := h.svc.BookFormOptions(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(status, "book_form", gin.H{
		"Title":   title,
		"Form":    form,
		"Errors":  errs,
		"Authors": opts.Authors,
		"Genres":  opts.Genres,
	})
}

func (h *PageHandler) BookCreateForm(c *gin.Context) {
	h.renderBookForm(c, http.StatusOK, "Create Book", validation.Form{}, nil)
}

func (h *PageHandler) BookCreate(c *gin.Context) {
	form := postedForm(c)

	book, err := h.svc.CreateBook(c.Request.Context(), form)
	if err != nil {
		if errs, ok := h.formErrors(c, err); ok {
			h.renderBookForm(c, http.StatusUnprocessableEntity, "Create Book", form, errs)
			return
		}
		h.renderError(c, err)
		return
	}

	redirect(c, model.BookURL(book.ID))
}

func (h *PageHandler) BookUpdateForm(c *gin.Context) {
	detail, err := h.svc.GetBookDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.renderBookForm(c, http.StatusOK, "Update Book", bookForm(detail.Book), nil)
}

func (h *PageHandler) BookUpdate(c *gin.Context) {
	form := postedForm(c)

	book, err := h.svc.UpdateBook(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		if errs, ok := h.formErrors(c, err); ok {
			h.renderBookForm(c, http.StatusUnprocessableEntity, "Update Book", form, errs)
			return
		}
		h.renderError(c, err)
		return
	}

	redirect(c, model.BookURL(book.ID))
}

func (h *PageHandler) BookDeleteForm(c *gin.Context) {
	h.renderBookDelete(c, http.StatusOK)
}

func (h *PageHandler) renderBookDelete(c *gin.Context, status int) {
	detail, err := h.svc.GetBookDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(status, "book_delete", gin.H{
		"Title":     "Delete Book",
		"Book":      detail.Book,
		"Instances": detail.Instances,
	})
}

func (h *PageHandler) BookDelete(c *gin.Context) {
	err := h.svc.DeleteBook(c.Request.Context(), c.Param("id"))
	switch {
	case err == nil:
		redirect(c, "/catalog/books")
	case h.isDependency(c, err):
		h.renderBookDelete(c, http.StatusConflict)
	default:
		h.renderError(c, err)
	}
}
