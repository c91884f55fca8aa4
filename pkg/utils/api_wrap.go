package utils

import (
	"errors"
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

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinel errors onto HTTP responses.
// Precondition errors carry guidance text so the client can tell the
// user what to do next.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrProfileNotFound):
		RespondError(c, http.StatusBadRequest, "Create a profile first to find matches")
	case errors.Is(err, ErrEmptyTopicSet):
		RespondError(c, http.StatusBadRequest, "Add topics to your profile to find matches")
	case errors.Is(err, ErrEmbeddingUnavailable):
		RespondError(c, http.StatusBadRequest, "Create a profile first")
	case errors.Is(err, ErrCounterpartNotFound):
		RespondError(c, http.StatusNotFound, "Profile not found")
	case errors.Is(err, ErrProfileExists):
		RespondError(c, http.StatusConflict, "Profile already exists")
	case errors.Is(err, ErrTooManyTopics):
		RespondError(c, http.StatusBadRequest, "A profile can hold at most 10 topics")
	case errors.Is(err, ErrTopicNotFound):
		RespondError(c, http.StatusNotFound, "Topic not found")
	case errors.Is(err, ErrEmailTaken):
		RespondError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrWrongUserType):
		RespondError(c, http.StatusForbidden, "Forbidden for this account type")
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
