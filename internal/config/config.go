package config

import (
	"github.com/voiceclock/alarm-backend/internal/platform/envutil"
	"github.com/voiceclock/alarm-backend/internal/platform/logger"
)

// Config is the full configuration surface of the API server. Every
// field is overridable by environment and falls back to a fixed default.
type Config struct {
	Host  string
	Port  int
	Debug bool

	DBDriver   string
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
}

func Load(log *logger.Logger) Config {
	cfg := Config{
		Host:  envutil.String("HOST", "0.0.0.0"),
		Port:  envutil.Int("PORT", 5000),
		Debug: envutil.Bool("DEBUG", false),

		DBDriver:   envutil.String("DB_DRIVER", "postgres"),
		DBHost:     envutil.String("DB_HOST", "localhost"),
		DBPort:     envutil.Int("DB_PORT", 5432),
		DBUser:     envutil.String("DB_USER", "postgres"),
		DBPassword: envutil.String("DB_PASSWORD", ""),
		DBName:     envutil.String("DB_NAME", "alarm_clock_db"),
	}
	log.Debug("Configuration loaded",
		"host", cfg.Host,
		"port", cfg.Port,
		"debug", cfg.Debug,
		"db_driver", cfg.DBDriver,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName,
	)
	return cfg
}
