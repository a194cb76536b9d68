package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/locallibrary/internal/model"
	"github.com/snnyvrz/locallibrary/internal/validation"
)

func bookInstanceForm(bi model.BookInstance) validation.Form {
	return validation.Form{
		validation.FieldBook:    {bi.BookID.String()},
		validation.FieldImprint: {bi.Imprint},
		validation.FieldStatus:  {string(bi.Status)},
		validation.FieldDueBack: {formatDate(bi.DueBack)},
	}
}

func (h *PageHandler) BookInstanceList(c *gin.Context) {
	instances, err := h.svc.ListBookInstances(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "bookinstance_list", gin.H{
		"Title":     "Book Instance List",
		"Instances": instances,
	})
}

func (h *PageHandler) BookInstanceDetail(c *gin.Context) {
	bi, err := h.svc.GetBookInstanceDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "bookinstance_detail", gin.H{
		"Title":    "Book: " + bi.Book.Title,
		"Instance": bi,
	})
}

func (h *PageHandler) renderBookInstanceForm(c *gin.Context, status int, title string, form validation.Form, errs []validation.FieldError) {
	books, err := h.svc.BookInstanceFormOptions(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(status, "bookinstance_form", gin.H{
		"Title":  title,
		"Form":   form,
		"Errors": errs,
		"Books":  books,
	})
}

func (h *PageHandler) BookInstanceCreateForm(c *gin.Context) {
	h.renderBookInstanceForm(c, http.StatusOK, "Create BookInstance", validation.Form{}, nil)
}

func (h *PageHandler) BookInstanceCreate(c *gin.Context) {
	form := postedForm(c)

	bi, err := h.svc.CreateBookInstance(c.Request.Context(), form)
	if err != nil {
		if errs, ok := h.formErrors(c, err); ok {
			h.renderBookInstanceForm(c, http.StatusUnprocessableEntity, "Create BookInstance", form, errs)
			return
		}
		h.renderError(c, err)
		return
	}

	redirect(c, model.BookInstanceURL(bi.ID))
}

func (h *PageHandler) BookInstanceUpdateForm(c *gin.Context) {
	bi, err := h.svc.GetBookInstanceDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.renderBookInstanceForm(c, http.StatusOK, "Update BookInstance", bookInstanceForm(*bi), nil)
}

func (h *PageHandler) BookInstanceUpdate(c *gin.Context) {
	form := postedForm(c)

	bi, err := h.svc.UpdateBookInstance(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		if errs, ok := h.formErrors(c, err); ok {
			h.renderBookInstanceForm(c, http.StatusUnprocessableEntity, "Update BookInstance", form, errs)
			return
		}
		h.renderError(c, err)
		return
	}

	redirect(c, model.BookInstanceURL(bi.ID))
}

func (h *PageHandler) BookInstanceDeleteForm(c *gin.Context) {
	bi, err := h.svc.GetBookInstanceDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "bookinstance_delete", gin.H{
		"Title":    "Delete BookInstance",
		"Instance": bi,
	})
}

func (h *PageHandler) BookInstanceDelete(c *gin.Context) {
	if err := h.svc.DeleteBookInstance(c.Request.Context(), c.Param("id")); err != nil {
		h.renderError(c, err)
		return
	}

	redirect(c, "/catalog/bookinstances")
}
