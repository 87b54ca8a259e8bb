package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/socialdash/internal/shared/errors"
)

// APIResponse is the envelope every endpoint writes.
type APIResponse struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Message string     `json:"message,omitempty"`
}

type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func OKResponse(c *gin.Context, data any) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// MessageResponse sends a 200 carrying data and a human-readable message
// for the dashboard's toast notifications.
func MessageResponse(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Message: message})
}

func CreatedResponse(c *gin.Context, data any, message string) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data, Message: message})
}

func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// ErrorResponse sends an error whose type is derived from statusCode.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	writeError(c, statusCode, ErrorInfo{Type: string(typeForStatus(statusCode)), Message: message})
}

// ErrorResponseWithError sends err as an error response. Errors that are not
// AppErrors are reported as a generic 500 without their text.
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		writeError(c, http.StatusInternalServerError, ErrorInfo{
			Type:    string(errors.ErrorTypeInternal),
			Message: "Internal server error occurred",
		})
		return
	}
	writeError(c, appErr.Code, ErrorInfo{
		Type:    string(appErr.Type),
		Message: appErr.Message,
		Details: appErr.Details,
	})
}

// BindJSON decodes the request body into dst. On failure it writes a 400
// and returns the decode error so the caller can log it and stop.
func BindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return err
	}
	return nil
}

func writeError(c *gin.Context, statusCode int, info ErrorInfo) {
	c.JSON(statusCode, APIResponse{Success: false, Error: &info})
}

func typeForStatus(statusCode int) errors.ErrorType {
	switch statusCode {
	case http.StatusBadRequest:
		return errors.ErrorTypeBadRequest
	case http.StatusNotFound:
		return errors.ErrorTypeNotFound
	case http.StatusTooManyRequests:
		return errors.ErrorTypeRateLimited
	default:
		return errors.ErrorTypeInternal
	}
}
