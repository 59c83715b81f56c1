package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/texthub/bulksms-portal/internal/domain/error"
	coreport "github.com/texthub/bulksms-portal/internal/domain/port/core"
	"github.com/texthub/bulksms-portal/internal/infrastructure/adapter/api/dto"
)

// respondSuccess writes the standard success envelope
func respondSuccess(c *gin.Context, status int, message string, data any) {
	c.JSON(status, dto.Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// respondError maps a domain error to an HTTP status and writes the
// standard error shape
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case domainerr.IsValidationError(err),
		domainerr.IsInsufficientBalanceError(err),
		domainerr.IsPartialOwnershipError(err):
		status = http.StatusBadRequest
		message = err.Error()
	case domainerr.IsNotFoundError(err):
		status = http.StatusNotFound
		message = err.Error()
	case domainerr.IsDuplicateError(err):
		status = http.StatusConflict
		message = err.Error()
	case domainerr.IsAuthError(err):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, domainerr.ErrGateway):
		status = http.StatusBadGateway
		message = "Message gateway unavailable"
	default:
		logger.Error("Unhandled error in API request", map[string]any{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		})
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// parseIDParam reads a positive integer path parameter
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid " + name + " parameter",
		})
		return 0, false
	}
	return id, true
}
