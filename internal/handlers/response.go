package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voiceclock/alarm-backend/internal/platform/apierr"
)

// Envelope is the uniform response wrapper used by every endpoint,
// including the router's 404/500 fallbacks.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func RespondSuccess(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

func RespondFail(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: false, Message: message, Data: nil})
}

// RespondError maps a service error onto the envelope. Typed API errors
// keep their status and message; anything else becomes an opaque 500.
func RespondError(c *gin.Context, err error) {
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		RespondFail(c, apiErr.Status, apiErr.Error())
		return
	}
	RespondFail(c, http.StatusInternalServerError, "internal server error")
}
