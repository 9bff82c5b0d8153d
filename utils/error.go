package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppError is an application error carrying the HTTP status it maps to.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

// NotFound signals that the requested entity does not exist.
func NotFound(message string) error {
	return &AppError{Status: http.StatusNotFound, Message: message}
}

// Unauthorized signals that the principal is not a permitted party.
func Unauthorized(message string) error {
	return &AppError{Status: http.StatusUnauthorized, Message: message}
}

// Forbidden signals a missing role claim.
func Forbidden(message string) error {
	return &AppError{Status: http.StatusForbidden, Message: message}
}

// Validation signals malformed or out-of-range input.
func Validation(message string) error {
	return &AppError{Status: http.StatusBadRequest, Message: message}
}

// Conflict signals a business-rule violation such as insufficient stock.
func Conflict(message string) error {
	return &AppError{Status: http.StatusConflict, Message: message}
}

// RespondError funnels every handler error through one responder. Typed
// application errors keep their status and message; anything else is logged
// and returned as a generic failure without leaking internals.
func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{"success": false, "message": appErr.Message})
		return
	}
	GetLogger().Error("Unexpected error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Internal server error",
	})
}

// ErrorHandler is a middleware that catches panics and returns structured errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", r))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"message": "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
