package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
	coreport "github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// statusFor maps a domain error to its HTTP status
func statusFor(err error) int {
	switch {
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domainerr.ErrDuplicateUpload),
		errors.Is(err, domainerr.ErrUploadCommitted),
		errors.Is(err, domainerr.ErrCommitBlocked),
		errors.Is(err, domainerr.ErrConstraintViolation):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrDatabaseConnection),
		errors.Is(err, domainerr.ErrSerializationFailure),
		errors.Is(err, domainerr.ErrStorageUnavailable),
		errors.Is(err, domainerr.ErrClassifierUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the standard error body. Server-side failures are
// logged and their details withheld from the client.
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	status := statusFor(err)
	message := err.Error()

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", map[string]any{
			"operation":  operation,
			"entity_id":  c.Param("entityId"),
			"request_id": middleware.RequestIDFrom(c),
			"error":      err.Error(),
		})
		if status == http.StatusInternalServerError {
			message = "Internal server error"
			err = domainerr.ErrInternalServer
		} else {
			message = "Service temporarily unavailable"
		}
	}

	_ = c.Error(err)
	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// badRequest rejects a malformed body or query before it reaches a use case
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: message,
	})
}
