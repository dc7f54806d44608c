package utils

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// RespondSuccess wraps account/profile responses in the standard envelope.
func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// PlainError writes the bare {"error": ...} body the generator endpoints use.
func PlainError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// PlainErrorDetails additionally carries the underlying failure text.
func PlainErrorDetails(c *gin.Context, code int, message, details string) {
	c.JSON(code, gin.H{"error": message, "details": details})
}

// HandleGenerationError maps a generator-service failure onto the wire:
// upstream statuses are propagated with their body as details, a missing
// credential is a 500 configuration error, everything else is a 500 with
// fallback as the message.
func HandleGenerationError(c *gin.Context, err error, fallback string) {
	var upstream *UpstreamError
	switch {
	case errors.As(err, &upstream):
		PlainErrorDetails(c, upstream.Status, fmt.Sprintf("AI provider error: %d", upstream.Status), upstream.Body)
	case errors.Is(err, ErrCompletionNotConfigured):
		PlainError(c, http.StatusInternalServerError, "AI service is not configured")
	case errors.Is(err, ErrEmptyCompletion):
		PlainError(c, http.StatusBadGateway, "No content in completion response")
	default:
		PlainErrorDetails(c, http.StatusInternalServerError, fallback, err.Error())
	}
}

// HandleServiceError is the envelope-style mapping used by account routes.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "An account with this email already exists")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
