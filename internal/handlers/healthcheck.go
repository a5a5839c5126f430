package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func HealthCheck(c *gin.Context) {
	RespondSuccess(c, http.StatusOK, "service is healthy", nil)
}
