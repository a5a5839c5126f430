package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/voiceclock/alarm-backend/internal/handlers"
	"github.com/voiceclock/alarm-backend/internal/middleware"
	"github.com/voiceclock/alarm-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	AlarmHandler   *handlers.AlarmHandler
	PersonaHandler *handlers.PersonaHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.Recovery(cfg.Log))
	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: false,
	}))

	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/api")
	{
		alarms := api.Group("/alarms")
		{
			alarms.POST("", cfg.AlarmHandler.Create)
			alarms.GET("", cfg.AlarmHandler.List)
			alarms.GET("/:id", cfg.AlarmHandler.Get)
			alarms.PUT("/:id", cfg.AlarmHandler.Update)
			alarms.DELETE("/:id", cfg.AlarmHandler.Delete)
			alarms.PATCH("/:id/toggle", cfg.AlarmHandler.Toggle)
		}

		personas := api.Group("/personas")
		{
			personas.GET("", cfg.PersonaHandler.List)
			personas.POST("", cfg.PersonaHandler.Create)
			personas.GET("/:id", cfg.PersonaHandler.Get)
			personas.PUT("/:id", cfg.PersonaHandler.Update)
			personas.DELETE("/:id", cfg.PersonaHandler.Delete)
			personas.PATCH("/:id/toggle", cfg.PersonaHandler.Toggle)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		handlers.RespondFail(c, http.StatusNotFound, "route not found")
	})
	router.NoMethod(func(c *gin.Context) {
		handlers.RespondFail(c, http.StatusNotFound, "route not found")
	})

	return router
}
