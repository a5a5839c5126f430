package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/voiceclock/alarm-backend/internal/platform/apierr"
	"github.com/voiceclock/alarm-backend/internal/platform/logger"
	"github.com/voiceclock/alarm-backend/internal/repos"
	"github.com/voiceclock/alarm-backend/internal/types"
)

type AlarmService interface {
	Create(ctx context.Context, payload types.AlarmPayload) (string, error)
	Get(ctx context.Context, alarmID string) (*types.Alarm, error)
	List(ctx context.Context, userID string, enabledOnly bool) ([]*types.Alarm, error)
	Update(ctx context.Context, alarmID string, update types.AlarmUpdate) error
	Toggle(ctx context.Context, alarmID string, enabled bool) error
	Delete(ctx context.Context, alarmID string) error
}

type alarmService struct {
	db        *gorm.DB
	log       *logger.Logger
	alarmRepo repos.AlarmRepo
}

func NewAlarmService(db *gorm.DB, log *logger.Logger, alarmRepo repos.AlarmRepo) AlarmService {
	return &alarmService{
		db:        db,
		log:       log.With("service", "AlarmService"),
		alarmRepo: alarmRepo,
	}
}

func (as *alarmService) Create(ctx context.Context, payload types.AlarmPayload) (string, error) {
	if payload.AlarmID == "" {
		return "", apierr.Invalid("missing required field: alarm_id")
	}
	if payload.UserID == "" {
		return "", apierr.Invalid("missing required field: user_id")
	}
	if payload.AlarmTime == "" {
		return "", apierr.Invalid("missing required field: alarm_time")
	}
	if err := types.ValidateAlarmTime(payload.AlarmTime); err != nil {
		return "", apierr.Invalid("%v", err)
	}
	if payload.RepeatDays != nil && *payload.RepeatDays != "" {
		if err := types.ValidateRepeatDays(*payload.RepeatDays); err != nil {
			return "", apierr.Invalid("%v", err)
		}
	}

	alarm := types.AlarmFromPayload(payload)

	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return as.alarmRepo.Create(ctx, tx, alarm)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", apierr.Conflict("alarm id already exists: %s", alarm.AlarmID)
		}
		as.log.Error("Create alarm failed", "alarm_id", alarm.AlarmID, "error", err)
		return "", err
	}
	return alarm.AlarmID, nil
}

func (as *alarmService) Get(ctx context.Context, alarmID string) (*types.Alarm, error) {
	var alarm *types.Alarm
	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := as.alarmRepo.GetByID(ctx, tx, alarmID)
		if err != nil {
			return err
		}
		alarm = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	if alarm == nil {
		return nil, apierr.NotFound("alarm not found")
	}
	return alarm, nil
}

// List dispatches on the supplied filters: owner-filtered lists come
// back ordered by alarm_time, the unfiltered list newest first.
func (as *alarmService) List(ctx context.Context, userID string, enabledOnly bool) ([]*types.Alarm, error) {
	var alarms []*types.Alarm
	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		switch {
		case userID != "":
			alarms, err = as.alarmRepo.ListByUser(ctx, tx, userID)
		case enabledOnly:
			alarms, err = as.alarmRepo.ListEnabled(ctx, tx)
		default:
			alarms, err = as.alarmRepo.ListAll(ctx, tx)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return alarms, nil
}

// Update overlays the supplied fields onto the stored row inside one
// transaction, so omitted fields are never clobbered.
func (as *alarmService) Update(ctx context.Context, alarmID string, update types.AlarmUpdate) error {
	if update.AlarmTime != nil {
		if err := types.ValidateAlarmTime(*update.AlarmTime); err != nil {
			return apierr.Invalid("%v", err)
		}
	}
	if update.RepeatDays != nil && *update.RepeatDays != "" {
		if err := types.ValidateRepeatDays(*update.RepeatDays); err != nil {
			return apierr.Invalid("%v", err)
		}
	}

	return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := as.alarmRepo.GetByID(ctx, tx, alarmID)
		if err != nil {
			return err
		}
		if existing == nil {
			return apierr.NotFound("alarm not found")
		}
		update.ApplyTo(existing)
		ok, err := as.alarmRepo.Update(ctx, tx, existing)
		if err != nil {
			return err
		}
		if !ok {
			return apierr.NotFound("alarm not found")
		}
		return nil
	})
}

func (as *alarmService) Toggle(ctx context.Context, alarmID string, enabled bool) error {
	return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := as.alarmRepo.ToggleStatus(ctx, tx, alarmID, enabled)
		if err != nil {
			return err
		}
		if !ok {
			return apierr.NotFound("alarm not found")
		}
		return nil
	})
}

func (as *alarmService) Delete(ctx context.Context, alarmID string) error {
	return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := as.alarmRepo.Delete(ctx, tx, alarmID)
		if err != nil {
			return err
		}
		if !ok {
			return apierr.NotFound("alarm not found")
		}
		return nil
	})
}
