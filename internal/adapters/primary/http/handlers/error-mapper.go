package handlers

import (
	"errors"
	"net/http"

	"viscosity-service/internal/adapters/primary/http/dto"
	"viscosity-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Bad request: absent or unparseable fields
	case errors.Is(err, domain.ErrMissingInput),
		errors.Is(err, domain.ErrParse):
		c.JSON(http.StatusBadRequest, dto.ToErrorResponse(err))

	// Parsed, but outside the domain of the formula
	case errors.Is(err, domain.ErrDomain):
		c.JSON(http.StatusUnprocessableEntity, dto.ToErrorResponse(err))

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
