package types

import (
	"time"
)

const (
	// DefaultAlarmName labels alarms created without an explicit name.
	DefaultAlarmName = "New Alarm"
	// DefaultPersonaID is the persona attached to alarms that do not pick one.
	DefaultPersonaID = "gentle"
)

type Alarm struct {
	AlarmID       string     `gorm:"primaryKey;column:alarm_id" json:"alarm_id"`
	UserID        string     `gorm:"index;not null;column:user_id" json:"user_id"`
	AlarmTime     string     `gorm:"not null;column:alarm_time" json:"alarm_time"`
	AlarmName     string     `gorm:"column:alarm_name" json:"alarm_name"`
	AIPersonaID   string     `gorm:"column:ai_persona_id" json:"ai_persona_id"`
	RepeatDays    *string    `gorm:"column:repeat_days" json:"repeat_days"`
	IsEnabled     bool       `gorm:"column:is_enabled" json:"is_enabled"`
	NextAlarmTime *time.Time `gorm:"column:next_alarm_time" json:"next_alarm_time"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"not null" json:"updated_at"`
}

func (Alarm) TableName() string {
	return "alarms"
}

// AlarmPayload is the wire shape of an alarm. repeat_days stays a
// comma-delimited string ("1,2,3,4,5"), matching the stored column.
type AlarmPayload struct {
	AlarmID       string     `json:"alarm_id"`
	UserID        string     `json:"user_id"`
	AlarmTime     string     `json:"alarm_time"`
	AlarmName     string     `json:"alarm_name"`
	AIPersonaID   string     `json:"ai_persona_id"`
	RepeatDays    *string    `json:"repeat_days"`
	IsEnabled     *bool      `json:"is_enabled"`
	NextAlarmTime *time.Time `json:"next_alarm_time"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// AlarmFromPayload maps a wire payload to an entity. All field defaulting
// happens here and nowhere else: missing name, persona and enabled flag
// take their documented defaults.
func AlarmFromPayload(p AlarmPayload) *Alarm {
	a := &Alarm{
		AlarmID:       p.AlarmID,
		UserID:        p.UserID,
		AlarmTime:     p.AlarmTime,
		AlarmName:     p.AlarmName,
		AIPersonaID:   p.AIPersonaID,
		RepeatDays:    p.RepeatDays,
		IsEnabled:     true,
		NextAlarmTime: p.NextAlarmTime,
	}
	if a.AlarmName == "" {
		a.AlarmName = DefaultAlarmName
	}
	if a.AIPersonaID == "" {
		a.AIPersonaID = DefaultPersonaID
	}
	if p.IsEnabled != nil {
		a.IsEnabled = *p.IsEnabled
	}
	return a
}

// Payload maps an entity back to its wire shape. No defaulting happens
// on this side, so Payload followed by AlarmFromPayload reproduces the
// entity for every field except the store-assigned timestamps.
func (a *Alarm) Payload() AlarmPayload {
	enabled := a.IsEnabled
	p := AlarmPayload{
		AlarmID:       a.AlarmID,
		UserID:        a.UserID,
		AlarmTime:     a.AlarmTime,
		AlarmName:     a.AlarmName,
		AIPersonaID:   a.AIPersonaID,
		RepeatDays:    a.RepeatDays,
		IsEnabled:     &enabled,
		NextAlarmTime: a.NextAlarmTime,
	}
	if !a.CreatedAt.IsZero() {
		created := a.CreatedAt
		p.CreatedAt = &created
	}
	if !a.UpdatedAt.IsZero() {
		updated := a.UpdatedAt
		p.UpdatedAt = &updated
	}
	return p
}

// AlarmUpdate carries a partial update. Nil fields are left untouched,
// so omitted keys never clobber existing values.
type AlarmUpdate struct {
	UserID        *string    `json:"user_id"`
	AlarmTime     *string    `json:"alarm_time"`
	AlarmName     *string    `json:"alarm_name"`
	AIPersonaID   *string    `json:"ai_persona_id"`
	RepeatDays    *string    `json:"repeat_days"`
	IsEnabled     *bool      `json:"is_enabled"`
	NextAlarmTime *time.Time `json:"next_alarm_time"`
}

func (u AlarmUpdate) ApplyTo(a *Alarm) {
	if u.UserID != nil {
		a.UserID = *u.UserID
	}
	if u.AlarmTime != nil {
		a.AlarmTime = *u.AlarmTime
	}
	if u.AlarmName != nil {
		a.AlarmName = *u.AlarmName
	}
	if u.AIPersonaID != nil {
		a.AIPersonaID = *u.AIPersonaID
	}
	if u.RepeatDays != nil {
		a.RepeatDays = u.RepeatDays
	}
	if u.IsEnabled != nil {
		a.IsEnabled = *u.IsEnabled
	}
	if u.NextAlarmTime != nil {
		a.NextAlarmTime = u.NextAlarmTime
	}
}
