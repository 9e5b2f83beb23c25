package handlers

import (
	"bytes"
	"net/http"

	"viscosity-service/internal/adapters/primary/http/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Metrics(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.metrics.WriteText(&buf); err != nil {
		middleware.Logger(c).WithError(err).Error("render metrics failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render metrics"})
		return
	}

	c.Data(http.StatusOK, h.metrics.ContentType(), buf.Bytes())
}
