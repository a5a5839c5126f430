package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/voiceclock/alarm-backend/internal/config"
	"github.com/voiceclock/alarm-backend/internal/platform/logger"
	"github.com/voiceclock/alarm-backend/internal/types"
)

// Service owns the database handle. gorm runs every statement on a
// pooled connection inside its own implicit transaction; multi-statement
// work goes through DB().Transaction at the service layer.
type Service struct {
	db  *gorm.DB
	log *logger.Logger
}

func New(cfg config.Config, log *logger.Logger) (*Service, error) {
	serviceLog := log.With("service", "DBService")

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DBName + ".db")
	default:
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
		dialector = postgres.Open(dsn)
	}

	serviceLog.Info("Connecting to database...", "driver", cfg.DBDriver)
	gdb, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to database", "error", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Service{db: gdb, log: serviceLog}, nil
}

func (s *Service) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	if err := s.db.AutoMigrate(
		&types.Alarm{},
		&types.AIPersona{},
	); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}

func (s *Service) DB() *gorm.DB {
	return s.db
}
