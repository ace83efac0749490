package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "moviweb-backend/internal/errors"
	"moviweb-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// respondError maps the service error taxonomy onto HTTP statuses: validation
// errors are corrective 400s, not-found is an expected 404, an absent
// enrichment result is a 502 the caller may retry, and anything else (storage
// failures included) becomes a generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrEnrichmentFailed):
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
	default:
		logger.New().WithField("path", c.FullPath()).Errorf("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error, try again later"})
	}
}

// parseIDParam reads a positive integer path parameter
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return uint(id), true
}
