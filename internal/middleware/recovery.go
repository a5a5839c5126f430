package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voiceclock/alarm-backend/internal/platform/logger"
)

// Recovery converts panics into the standard 500 envelope instead of
// letting gin's default plain-text handler answer.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("Panic recovered", "path", c.Request.URL.Path, "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "internal server error",
			"data":    nil,
		})
	})
}
