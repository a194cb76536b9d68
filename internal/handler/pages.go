package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/locallibrary/internal/catalog"
	"github.com/snnyvrz/locallibrary/internal/metrics"
	"github.com/snnyvrz/locallibrary/internal/model"
	"github.com/snnyvrz/locallibrary/internal/validation"
)

// PageHandler serves the server-rendered catalog under /catalog. The
// engine must have the web templates installed.
type PageHandler struct {
	svc     *catalog.Service
	metrics *metrics.Metrics
}

func NewPageHandler(svc *catalog.Service, m *metrics.Metrics) *PageHandler {
	return &PageHandler{svc: svc, metrics: m}
}

func (h *PageHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", h.Index)

	r.GET("/authors", h.AuthorList)
	r.GET("/author/create", h.AuthorCreateForm)
	r.POST("/author/create", h.AuthorCreate)
	r.GET("/author/:id", h.AuthorDetail)
	r.GET("/author/:id/update", h.AuthorUpdateForm)
	r.POST("/author/:id/update", h.AuthorUpdate)
	r.GET("/author/:id/delete", h.AuthorDeleteForm)
	r.POST("/author/:id/delete", h.AuthorDelete)

	r.GET("/genres", h.GenreList)
	r.GET("/genre/create", h.GenreCreateForm)
	r.POST("/genre/create", h.GenreCreate)
	r.GET("/genre/:id", h.GenreDetail)
	r.GET("/genre/:id/update", h.GenreUpdateForm)
	r.POST("/genre/:id/update", h.GenreUpdate)
	r.GET("/genre/:id/delete", h.GenreDeleteForm)
	r.POST("/genre/:id/delete", h.GenreDelete)

	r.GET("/books", h.BookList)
	r.GET("/book/create", h.BookCreateForm)
	r.POST("/book/create", h.BookCreate)
	r.GET("/book/:id", h.BookDetail)
	r.GET("/book/:id/update", h.BookUpdateForm)
	r.POST("/book/:id/update", h.BookUpdate)
	r.GET("/book/:id/delete", h.BookDeleteForm)
	r.POST("/book/:id/delete", h.BookDelete)

	r.GET("/bookinstances", h.BookInstanceList)
	r.GET("/bookinstance/create", h.BookInstanceCreateForm)
	r.POST("/bookinstance/create", h.BookInstanceCreate)
	r.GET("/bookinstance/:id", h.BookInstanceDetail)
	r.GET("/bookinstance/:id/update", h.BookInstanceUpdateForm)
	r.POST("/bookinstance/:id/update", h.BookInstanceUpdate)
	r.GET("/bookinstance/:id/delete", h.BookInstanceDeleteForm)
	r.POST("/bookinstance/:id/delete", h.BookInstanceDelete)
}

func (h *PageHandler) Index(c *gin.Context) {
	counts, err := h.svc.GetOverviewCounts(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "index", gin.H{
		"Title":  "Local Library Home",
		"Counts": counts,
	})
}

// renderError shows the error page for a failure that cannot be
// answered by re-rendering a form.
func (h *PageHandler) renderError(c *gin.Context, err error) {
	var nerr *catalog.NotFoundError
	if observe(c, h.metrics, err) == failureNotFound && errors.As(err, &nerr) {
		c.HTML(http.StatusNotFound, "error", gin.H{
			"Title":   "Not Found",
			"Message": nerr.Message(),
		})
		return
	}

	c.HTML(http.StatusInternalServerError, "error", gin.H{
		"Title":   "Error",
		"Message": "Something went wrong. Please try again later.",
	})
}

// formErrors returns the field errors when err is a validation failure,
// counting it like any other failure.
func (h *PageHandler) formErrors(c *gin.Context, err error) ([]validation.FieldError, bool) {
	var verr *catalog.ValidationError
	if !errors.As(err, &verr) {
		return nil, false
	}
	observe(c, h.metrics, err)
	return verr.Errors, true
}

func (h *PageHandler) isDependency(c *gin.Context, err error) bool {
	var derr *catalog.DependencyError
	if !errors.As(err, &derr) {
		return false
	}
	observe(c, h.metrics, err)
	return true
}

func postedForm(c *gin.Context) validation.Form {
	if err := c.Request.ParseForm(); err != nil {
		return validation.Form{}
	}
	return validation.FromValues(c.Request.PostForm)
}

func redirect(c *gin.Context, url string) {
	c.Redirect(http.StatusSeeOther, url)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(model.DateLayout)
}
