package util

import (
	"errors"
	"net/http"

	"buriti_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppError carries the failure kind as an HTTP status so every handler maps
// errors the same way instead of inventing its own translation.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func ValidationErr(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message}
}

func AuthErr(message string) *AppError {
	return &AppError{Status: http.StatusUnauthorized, Message: message}
}

func ForbiddenErr(message string) *AppError {
	return &AppError{Status: http.StatusForbidden, Message: message}
}

func NotFoundErr(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: message}
}

func ConflictErr(message string) *AppError {
	return &AppError{Status: http.StatusConflict, Message: message}
}

// HandleError answers a classified AppError as-is. Anything else is a
// store/file failure: logged with context, surfaced as a plain 500.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		Error(c, appErr.Status, appErr.Message)
		return
	}

	logger.Log.Error("Internal server error",
		zap.String("path", c.FullPath()),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	Error(c, http.StatusInternalServerError, "internal server error")
}
