package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/locallibrary/internal/catalog"
	"github.com/snnyvrz/locallibrary/internal/metrics"
)

type OverviewHandler struct {
	svc     *catalog.Service
	metrics *metrics.Metrics
}

func NewOverviewHandler(svc *catalog.Service, m *metrics.Metrics) *OverviewHandler {
	return &OverviewHandler{svc: svc, metrics: m}
}

func (h *OverviewHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/overview", h.GetOverview)
}

// GetOverview godoc
// @Summary      Catalog record counts
// @Description  Books, copies, available copies, authors and genres
// @Tags         overview
// @Produce      json
// @Success      200  {object}  catalog.OverviewCounts
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /overview [get]
func (h *OverviewHandler) GetOverview(c *gin.Context) {
	counts, err := h.svc.GetOverviewCounts(c.Request.Context())
	if err != nil {
		writeCatalogError(c, h.metrics, err)
		return
	}

	c.JSON(http.StatusOK, counts)
}
