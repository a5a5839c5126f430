package testutil

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/voiceclock/alarm-backend/internal/platform/logger"
	"github.com/voiceclock/alarm-backend/internal/types"
)

var (
	logOnce sync.Once
	logg    *logger.Logger
	logErr  error
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logOnce.Do(func() {
		logg, logErr = logger.New("test")
	})
	if logErr != nil {
		tb.Fatalf("failed to init logger: %v", logErr)
	}
	return logg
}

// DB opens a fresh sqlite database in the test's temp dir, migrated to
// the current schema. Each test gets its own file, so there is no
// cross-test state and no external database to stand up.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "alarms_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&types.Alarm{}, &types.AIPersona{}); err != nil {
		tb.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func SeedAlarm(tb testing.TB, ctx context.Context, db *gorm.DB, alarmID, userID, alarmTime string) *types.Alarm {
	tb.Helper()
	a := &types.Alarm{
		AlarmID:     alarmID,
		UserID:      userID,
		AlarmTime:   alarmTime,
		AlarmName:   types.DefaultAlarmName,
		AIPersonaID: types.DefaultPersonaID,
		IsEnabled:   true,
	}
	if err := db.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed alarm: %v", err)
	}
	return a
}

func SeedPersona(tb testing.TB, ctx context.Context, db *gorm.DB, personaID string, isDefault bool) *types.AIPersona {
	tb.Helper()
	p := &types.AIPersona{
		PersonaID:   personaID,
		Name:        "Persona " + personaID,
		Description: "test persona " + personaID,
		Emoji:       types.DefaultPersonaEmoji,
		VoiceID:     types.DefaultPersonaVoice,
		Features:    "calm,friendly",
		IsActive:    true,
		IsDefault:   isDefault,
	}
	if err := db.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed persona: %v", err)
	}
	return p
}
