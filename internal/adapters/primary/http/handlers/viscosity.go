package handlers

import (
	"net/http"

	"viscosity-service/internal/adapters/primary/http/dto"
	"viscosity-service/internal/adapters/primary/http/middleware"
	"viscosity-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ComputeViscosity(c *gin.Context) {
	var req dto.ComputeViscosityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Kind:  string(domain.KindParseError),
		})
		return
	}

	calc, err := h.viscositySvc.Compute(c.Request.Context(), req.ToComputeRequest())
	if err != nil {
		middleware.Logger(c).WithError(err).Debug("compute viscosity rejected")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToViscosityResponse(calc))
}

func (h *Handler) ListMedia(c *gin.Context) {
	media := h.viscositySvc.ListMedia()

	items := make([]dto.MediumResponse, 0, len(media))
	for _, m := range media {
		items = append(items, dto.ToMediumResponse(m))
	}

	c.JSON(http.StatusOK, dto.ListMediaResponse{
		Items: items,
		Total: len(items),
	})
}

func (h *Handler) ListFormulas(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ListFormulasResponse{
		Items:   h.viscositySvc.ListFormulas(),
		Default: string(h.viscositySvc.DefaultFormula()),
	})
}
