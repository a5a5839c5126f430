package repos

import (
	"context"
	"testing"

	"github.com/voiceclock/alarm-backend/internal/repos/testutil"
	"github.com/voiceclock/alarm-backend/internal/types"
)

func TestAlarmRepoCreateGet(t *testing.T) {
	db := testutil.DB(t)
	repo := NewAlarmRepo(db, testutil.Logger(t))
	ctx := context.Background()

	days := "1,2,3,4,5"
	alarm := &types.Alarm{
		AlarmID:     "a1",
		UserID:      "u1",
		AlarmTime:   "08:00",
		AlarmName:   "Morning run",
		AIPersonaID: "gentle",
		RepeatDays:  &days,
		IsEnabled:   true,
	}
	if err := repo.Create(ctx, nil, alarm); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, nil, "a1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil {
		t.Fatalf("GetByID: expected alarm, got nil")
	}
	if got.AlarmTime != "08:00" || got.RepeatDays == nil || *got.RepeatDays != days {
		t.Fatalf("GetByID: unexpected row: %+v", got)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Fatalf("GetByID: timestamps not assigned on write")
	}

	missing, err := repo.GetByID(ctx, nil, "nope")
	if err != nil {
		t.Fatalf("GetByID (missing): %v", err)
	}
	if missing != nil {
		t.Fatalf("GetByID (missing): expected nil, got %+v", missing)
	}
}

func TestAlarmRepoDuplicateCreate(t *testing.T) {
	db := testutil.DB(t)
	repo := NewAlarmRepo(db, testutil.Logger(t))
	ctx := context.Background()

	first := testutil.SeedAlarm(t, ctx, db, "a1", "u1", "08:00")

	dup := &types.Alarm{AlarmID: "a1", UserID: "u2", AlarmTime: "09:00", AlarmName: "x", AIPersonaID: "gentle"}
	if err := repo.Create(ctx, nil, dup); err == nil {
		t.Fatalf("Create duplicate: expected error")
	}

	got, err := repo.GetByID(ctx, nil, "a1")
	if err != nil {
		t.Fatalf("GetByID after duplicate: %v", err)
	}
	if got.UserID != first.UserID || got.AlarmTime != first.AlarmTime {
		t.Fatalf("duplicate create mutated existing row: %+v", got)
	}
}

func TestAlarmRepoListOrdering(t *testing.T) {
	db := testutil.DB(t)
	repo := NewAlarmRepo(db, testutil.Logger(t))
	ctx := context.Background()

	testutil.SeedAlarm(t, ctx, db, "late", "u1", "22:00")
	testutil.SeedAlarm(t, ctx, db, "early", "u1", "06:30")
	testutil.SeedAlarm(t, ctx, db, "other", "u2", "12:00")

	byUser, err := repo.ListByUser(ctx, nil, "u1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(byUser) != 2 {
		t.Fatalf("ListByUser: expected 2 alarms, got %d", len(byUser))
	}
	if byUser[0].AlarmID != "early" || byUser[1].AlarmID != "late" {
		t.Fatalf("ListByUser: not ordered by alarm_time: %s, %s", byUser[0].AlarmID, byUser[1].AlarmID)
	}

	all, err := repo.ListAll(ctx, nil)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("ListAll: expected 3 alarms, got %d", len(all))
	}
}

func TestAlarmRepoListEnabled(t *testing.T) {
	db := testutil.DB(t)
	repo := NewAlarmRepo(db, testutil.Logger(t))
	ctx := context.Background()

	testutil.SeedAlarm(t, ctx, db, "on", "u1", "07:00")
	off := testutil.SeedAlarm(t, ctx, db, "off", "u1", "08:00")
	if ok, err := repo.ToggleStatus(ctx, nil, off.AlarmID, false); err != nil || !ok {
		t.Fatalf("ToggleStatus: ok=%v err=%v", ok, err)
	}

	enabled, err := repo.ListEnabled(ctx, nil)
	if err != nil {
		t.Fatalf("ListEnabled: %v", err)
	}
	if len(enabled) != 1 || enabled[0].AlarmID != "on" {
		t.Fatalf("ListEnabled: unexpected result: %+v", enabled)
	}
}

func TestAlarmRepoUpdate(t *testing.T) {
	db := testutil.DB(t)
	repo := NewAlarmRepo(db, testutil.Logger(t))
	ctx := context.Background()

	alarm := testutil.SeedAlarm(t, ctx, db, "a1", "u1", "08:00")
	alarm.AlarmTime = "09:15"
	alarm.IsEnabled = false

	ok, err := repo.Update(ctx, nil, alarm)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !ok {
		t.Fatalf("Update: expected affected row")
	}

	got, err := repo.GetByID(ctx, nil, "a1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.AlarmTime != "09:15" || got.IsEnabled {
		t.Fatalf("Update: row not updated: %+v", got)
	}

	ghost := &types.Alarm{AlarmID: "ghost", UserID: "u1", AlarmTime: "01:00"}
	ok, err = repo.Update(ctx, nil, ghost)
	if err != nil {
		t.Fatalf("Update (missing): %v", err)
	}
	if ok {
		t.Fatalf("Update (missing): expected zero affected rows")
	}
}

func TestAlarmRepoToggleAndDeleteNotFound(t *testing.T) {
	db := testutil.DB(t)
	repo := NewAlarmRepo(db, testutil.Logger(t))
	ctx := context.Background()

	ok, err := repo.ToggleStatus(ctx, nil, "ghost", true)
	if err != nil {
		t.Fatalf("ToggleStatus (missing): %v", err)
	}
	if ok {
		t.Fatalf("ToggleStatus (missing): expected zero affected rows")
	}

	ok, err = repo.Delete(ctx, nil, "ghost")
	if err != nil {
		t.Fatalf("Delete (missing): %v", err)
	}
	if ok {
		t.Fatalf("Delete (missing): expected zero affected rows")
	}

	testutil.SeedAlarm(t, ctx, db, "a1", "u1", "08:00")
	ok, err = repo.Delete(ctx, nil, "a1")
	if err != nil || !ok {
		t.Fatalf("Delete: ok=%v err=%v", ok, err)
	}
	got, err := repo.GetByID(ctx, nil, "a1")
	if err != nil {
		t.Fatalf("GetByID after delete: %v", err)
	}
	if got != nil {
		t.Fatalf("GetByID after delete: expected nil, got %+v", got)
	}
}
