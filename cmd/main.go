package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/voiceclock/alarm-backend/internal/config"
	"github.com/voiceclock/alarm-backend/internal/db"
	"github.com/voiceclock/alarm-backend/internal/handlers"
	"github.com/voiceclock/alarm-backend/internal/platform/logger"
	"github.com/voiceclock/alarm-backend/internal/repos"
	"github.com/voiceclock/alarm-backend/internal/server"
	"github.com/voiceclock/alarm-backend/internal/services"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Config
	cfg := config.Load(log)
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// Database
	dbService, err := db.New(cfg, log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		log.Error("Database migration failed", "error", err)
		os.Exit(1)
	}
	if err := dbService.SeedDefaultPersonas(context.Background()); err != nil {
		log.Warn("Default persona seeding failed", "error", err)
	}
	gdb := dbService.DB()

	// Repos
	log.Info("Setting up repos...")
	alarmRepo := repos.NewAlarmRepo(gdb, log)
	personaRepo := repos.NewPersonaRepo(gdb, log)

	// Services
	log.Info("Setting up services...")
	alarmService := services.NewAlarmService(gdb, log, alarmRepo)
	personaService := services.NewPersonaService(gdb, log, personaRepo)

	// Handlers
	log.Info("Setting up handlers...")
	alarmHandler := handlers.NewAlarmHandler(alarmService)
	personaHandler := handlers.NewPersonaHandler(personaService)

	// Router
	router := server.NewRouter(server.RouterConfig{
		Log:            log,
		AlarmHandler:   alarmHandler,
		PersonaHandler: personaHandler,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	log.Info("Server listening", "addr", addr)
	if err := router.Run(addr); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
