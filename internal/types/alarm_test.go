package types

import (
	"testing"
	"time"
)

func TestAlarmFromPayloadDefaults(t *testing.T) {
	a := AlarmFromPayload(AlarmPayload{
		AlarmID:   "a1",
		UserID:    "u1",
		AlarmTime: "08:00",
	})

	if a.AlarmName != DefaultAlarmName {
		t.Fatalf("AlarmName = %q, want default %q", a.AlarmName, DefaultAlarmName)
	}
	if a.AIPersonaID != DefaultPersonaID {
		t.Fatalf("AIPersonaID = %q, want default %q", a.AIPersonaID, DefaultPersonaID)
	}
	if !a.IsEnabled {
		t.Fatalf("IsEnabled = false, want default true")
	}
	if a.RepeatDays != nil {
		t.Fatalf("RepeatDays = %v, want nil", *a.RepeatDays)
	}
}

func TestAlarmFromPayloadExplicitDisabled(t *testing.T) {
	disabled := false
	a := AlarmFromPayload(AlarmPayload{
		AlarmID:   "a1",
		UserID:    "u1",
		AlarmTime: "08:00",
		IsEnabled: &disabled,
	})
	if a.IsEnabled {
		t.Fatalf("IsEnabled = true, want explicit false")
	}
}

func TestAlarmPayloadRoundTrip(t *testing.T) {
	days := "1,2,3,4,5"
	next := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	original := &Alarm{
		AlarmID:       "a1",
		UserID:        "u1",
		AlarmTime:     "08:00",
		AlarmName:     "Morning run",
		AIPersonaID:   "energetic",
		RepeatDays:    &days,
		IsEnabled:     false,
		NextAlarmTime: &next,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	back := AlarmFromPayload(original.Payload())

	if back.AlarmID != original.AlarmID ||
		back.UserID != original.UserID ||
		back.AlarmTime != original.AlarmTime ||
		back.AlarmName != original.AlarmName ||
		back.AIPersonaID != original.AIPersonaID ||
		back.IsEnabled != original.IsEnabled {
		t.Fatalf("round trip changed scalar fields: %+v", back)
	}
	if back.RepeatDays == nil || *back.RepeatDays != days {
		t.Fatalf("round trip changed repeat_days: %v", back.RepeatDays)
	}
	if back.NextAlarmTime == nil || !back.NextAlarmTime.Equal(next) {
		t.Fatalf("round trip changed next_alarm_time: %v", back.NextAlarmTime)
	}
}

func TestAlarmUpdateApplyToLeavesOmittedFields(t *testing.T) {
	days := "6,7"
	a := &Alarm{
		AlarmID:     "a1",
		UserID:      "u1",
		AlarmTime:   "08:00",
		AlarmName:   "Morning run",
		AIPersonaID: "energetic",
		RepeatDays:  &days,
		IsEnabled:   true,
	}

	newTime := "09:30"
	AlarmUpdate{AlarmTime: &newTime}.ApplyTo(a)

	if a.AlarmTime != "09:30" {
		t.Fatalf("AlarmTime = %q, want 09:30", a.AlarmTime)
	}
	if a.AlarmName != "Morning run" || a.AIPersonaID != "energetic" || !a.IsEnabled {
		t.Fatalf("omitted fields changed: %+v", a)
	}
	if a.RepeatDays == nil || *a.RepeatDays != "6,7" {
		t.Fatalf("omitted repeat_days changed: %v", a.RepeatDays)
	}
}
