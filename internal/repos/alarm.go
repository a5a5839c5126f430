package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/voiceclock/alarm-backend/internal/platform/logger"
	"github.com/voiceclock/alarm-backend/internal/types"
)

// AlarmRepo issues exactly one statement per call. Mutating operations
// report whether a row was affected so callers can distinguish not-found
// from failure without a second query.
type AlarmRepo interface {
	Create(ctx context.Context, tx *gorm.DB, alarm *types.Alarm) error
	GetByID(ctx context.Context, tx *gorm.DB, alarmID string) (*types.Alarm, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID string) ([]*types.Alarm, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Alarm, error)
	ListEnabled(ctx context.Context, tx *gorm.DB) ([]*types.Alarm, error)
	Update(ctx context.Context, tx *gorm.DB, alarm *types.Alarm) (bool, error)
	ToggleStatus(ctx context.Context, tx *gorm.DB, alarmID string, enabled bool) (bool, error)
	Delete(ctx context.Context, tx *gorm.DB, alarmID string) (bool, error)
}

type alarmRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAlarmRepo(db *gorm.DB, baseLog *logger.Logger) AlarmRepo {
	return &alarmRepo{db: db, log: baseLog.With("repo", "AlarmRepo")}
}

func (ar *alarmRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return ar.db
}

func (ar *alarmRepo) Create(ctx context.Context, tx *gorm.DB, alarm *types.Alarm) error {
	return ar.conn(tx).WithContext(ctx).Create(alarm).Error
}

func (ar *alarmRepo) GetByID(ctx context.Context, tx *gorm.DB, alarmID string) (*types.Alarm, error) {
	var alarm types.Alarm
	err := ar.conn(tx).WithContext(ctx).
		Where("alarm_id = ?", alarmID).
		First(&alarm).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &alarm, nil
}

func (ar *alarmRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID string) ([]*types.Alarm, error) {
	var results []*types.Alarm
	if err := ar.conn(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("alarm_time").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ar *alarmRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Alarm, error) {
	var results []*types.Alarm
	if err := ar.conn(tx).WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ar *alarmRepo) ListEnabled(ctx context.Context, tx *gorm.DB) ([]*types.Alarm, error) {
	var results []*types.Alarm
	if err := ar.conn(tx).WithContext(ctx).
		Where("is_enabled = ?", true).
		Order("alarm_time").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Update rewrites the full row keyed by alarm_id. The id itself is
// immutable and never part of the SET list.
func (ar *alarmRepo) Update(ctx context.Context, tx *gorm.DB, alarm *types.Alarm) (bool, error) {
	res := ar.conn(tx).WithContext(ctx).
		Model(&types.Alarm{}).
		Where("alarm_id = ?", alarm.AlarmID).
		Updates(map[string]interface{}{
			"user_id":         alarm.UserID,
			"alarm_time":      alarm.AlarmTime,
			"alarm_name":      alarm.AlarmName,
			"ai_persona_id":   alarm.AIPersonaID,
			"repeat_days":     alarm.RepeatDays,
			"is_enabled":      alarm.IsEnabled,
			"next_alarm_time": alarm.NextAlarmTime,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (ar *alarmRepo) ToggleStatus(ctx context.Context, tx *gorm.DB, alarmID string, enabled bool) (bool, error) {
	res := ar.conn(tx).WithContext(ctx).
		Model(&types.Alarm{}).
		Where("alarm_id = ?", alarmID).
		Updates(map[string]interface{}{"is_enabled": enabled})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (ar *alarmRepo) Delete(ctx context.Context, tx *gorm.DB, alarmID string) (bool, error) {
	res := ar.conn(tx).WithContext(ctx).
		Where("alarm_id = ?", alarmID).
		Delete(&types.Alarm{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
