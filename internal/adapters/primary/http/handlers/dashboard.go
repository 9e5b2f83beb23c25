package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"viscosity-service/internal/adapters/primary/http/middleware"
	"viscosity-service/internal/core/domain"
	"viscosity-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

//go:embed templates/dashboard.html
var templatesFS embed.FS

var dashboardTemplate = template.Must(template.ParseFS(templatesFS, "templates/dashboard.html"))

const dashboardPage = "dashboard.html"

type dashboardView struct {
	Media    []domain.Medium
	Formulas []services.FormulaInfo
	Medium   string
	Formula  string
	Output   string
	Error    bool
}

func (h *Handler) newDashboardView() dashboardView {
	return dashboardView{
		Media:    h.viscositySvc.ListMedia(),
		Formulas: h.viscositySvc.ListFormulas(),
		Formula:  string(h.viscositySvc.DefaultFormula()),
	}
}

func (h *Handler) ShowDashboard(c *gin.Context) {
	c.HTML(http.StatusOK, dashboardPage, h.newDashboardView())
}

// SubmitDashboard computes on explicit submission only. The text inputs are
// rendered empty afterwards; the medium and formula selections are kept.
func (h *Handler) SubmitDashboard(c *gin.Context) {
	view := h.newDashboardView()

	req := services.ComputeRequest{
		Input: domain.RawInput{
			Medium:      postForm(c, "medium"),
			Temperature: postForm(c, "temperature"),
			ChannelSize: postForm(c, "channel_size"),
			FlowRate:    postForm(c, "flowrate"),
		},
	}
	if f, ok := c.GetPostForm("formula"); ok && f != "" {
		req.Formula = f
		view.Formula = f
	}
	if req.Input.Medium != nil {
		view.Medium = *req.Input.Medium
	}

	calc, err := h.viscositySvc.Compute(c.Request.Context(), req)
	status := http.StatusOK
	switch {
	case err == nil:
		view.Output = calc.Result.Display()
	case domain.KindOf(err) == domain.KindDomainError:
		status = http.StatusUnprocessableEntity
		view.Output, view.Error = err.Error(), true
	case domain.KindOf(err) != "":
		status = http.StatusBadRequest
		view.Output, view.Error = err.Error(), true
	default:
		middleware.Logger(c).WithError(err).Error("dashboard submit failed")
		status = http.StatusInternalServerError
		view.Output, view.Error = "internal server error", true
	}

	c.HTML(status, dashboardPage, view)
}

func postForm(c *gin.Context, key string) *string {
	v, ok := c.GetPostForm(key)
	if !ok {
		return nil
	}
	return &v
}
