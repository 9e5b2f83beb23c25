package handlers

import (
	"io"

	"viscosity-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

// MetricsExporter renders collected metrics for scraping.
type MetricsExporter interface {
	WriteText(w io.Writer) error
	ContentType() string
}

type Handler struct {
	viscositySvc *services.ViscosityService
	metrics      MetricsExporter
}

// New creates the HTTP handler. metrics may be nil to disable /metrics.
func New(viscositySvc *services.ViscosityService, metrics MetricsExporter) *Handler {
	return &Handler{
		viscositySvc: viscositySvc,
		metrics:      metrics,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Viscosity
	r.POST("/compute", h.ComputeViscosity)

	// Catalog
	r.GET("/media", h.ListMedia)
	r.GET("/formulas", h.ListFormulas)
}

// RegisterDashboard mounts the HTML form and the operational endpoints on the root router.
func (h *Handler) RegisterDashboard(r *gin.Engine) {
	r.SetHTMLTemplate(dashboardTemplate)
	r.GET("/", h.ShowDashboard)
	r.POST("/", h.SubmitDashboard)

	if h.metrics != nil {
		r.GET("/metrics", h.Metrics)
	}
}
