package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/voiceclock/alarm-backend/internal/types"
)

// Tool-level operations. Every operation validates its inputs before any
// network round trip, and always returns a human-readable message: API
// failures, exhausted retries and transport errors all come back as
// formatted text rather than Go errors, because the caller is a
// tool-invoking agent that only consumes prose.

var dayNames = map[string]string{
	"1": "Mon", "2": "Tue", "3": "Wed", "4": "Thu", "5": "Fri", "6": "Sat", "7": "Sun",
}

func describeRepeatDays(repeatDays string) string {
	if strings.TrimSpace(repeatDays) == "" {
		return "one-time alarm"
	}
	names := make([]string, 0, 7)
	for _, d := range strings.Split(repeatDays, ",") {
		d = strings.TrimSpace(d)
		if name, ok := dayNames[d]; ok {
			names = append(names, name)
		}
	}
	return "repeats " + strings.Join(names, ", ")
}

func describeEnabled(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

type CreateAlarmArgs struct {
	AlarmID     string
	UserID      string
	AlarmTime   string
	AlarmName   string
	AIPersonaID string
	RepeatDays  string
	IsEnabled   *bool
}

func (c *Client) CreateAlarm(ctx context.Context, args CreateAlarmArgs) string {
	if args.AlarmName == "" {
		args.AlarmName = types.DefaultAlarmName
	}
	if args.AIPersonaID == "" {
		args.AIPersonaID = types.DefaultPersonaID
	}
	if !types.IsValidPersonaID(args.AIPersonaID) {
		return fmt.Sprintf("Error: ai_persona_id must be one of: %s", strings.Join(types.PersonaVocabulary, ", "))
	}
	if err := types.ValidateAlarmTime(args.AlarmTime); err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	if args.RepeatDays != "" {
		if err := types.ValidateRepeatDays(args.RepeatDays); err != nil {
			return fmt.Sprintf("Error: %v", err)
		}
	}

	enabled := true
	if args.IsEnabled != nil {
		enabled = *args.IsEnabled
	}
	payload := map[string]any{
		"alarm_id":      args.AlarmID,
		"user_id":       args.UserID,
		"alarm_time":    args.AlarmTime,
		"alarm_name":    args.AlarmName,
		"ai_persona_id": args.AIPersonaID,
		"is_enabled":    enabled,
	}
	if args.RepeatDays != "" {
		payload["repeat_days"] = args.RepeatDays
	}

	if _, err := c.do(ctx, http.MethodPost, "/api/alarms", payload); err != nil {
		return fmt.Sprintf("❌ Failed to create alarm: %v", err)
	}

	return fmt.Sprintf(`✅ Alarm created!
📋 Details:
  - ID: %s
  - Name: %s
  - Time: %s
  - Persona: %s
  - Status: %s
  - Schedule: %s`,
		args.AlarmID, args.AlarmName, args.AlarmTime, args.AIPersonaID,
		describeEnabled(enabled), describeRepeatDays(args.RepeatDays))
}

func (c *Client) GetAlarm(ctx context.Context, alarmID string) string {
	env, err := c.do(ctx, http.MethodGet, "/api/alarms/"+url.PathEscape(alarmID), nil)
	if err != nil {
		if isNotFound(err) {
			return fmt.Sprintf("❌ No alarm found with ID %s", alarmID)
		}
		return fmt.Sprintf("❌ Failed to fetch alarm: %v", err)
	}

	var alarm types.AlarmPayload
	if err := json.Unmarshal(env.Data, &alarm); err != nil {
		return fmt.Sprintf("❌ Failed to fetch alarm: %v", err)
	}

	repeatDays := ""
	if alarm.RepeatDays != nil {
		repeatDays = *alarm.RepeatDays
	}
	enabled := true
	if alarm.IsEnabled != nil {
		enabled = *alarm.IsEnabled
	}
	created := "unknown"
	if alarm.CreatedAt != nil {
		created = alarm.CreatedAt.Format("2006-01-02 15:04:05")
	}

	return fmt.Sprintf(`📋 Alarm details:
  - ID: %s
  - Name: %s
  - Time: %s
  - User: %s
  - Persona: %s
  - Status: %s
  - Schedule: %s
  - Created: %s`,
		alarm.AlarmID, alarm.AlarmName, alarm.AlarmTime, alarm.UserID,
		alarm.AIPersonaID, describeEnabled(enabled), describeRepeatDays(repeatDays), created)
}

func (c *Client) ListAlarms(ctx context.Context, userID string) string {
	query := url.Values{}
	query.Set("user_id", userID)
	env, err := c.do(ctx, http.MethodGet, "/api/alarms?"+query.Encode(), nil)
	if err != nil {
		return fmt.Sprintf("❌ Failed to list alarms: %v", err)
	}

	var alarms []types.AlarmPayload
	if err := json.Unmarshal(env.Data, &alarms); err != nil {
		return fmt.Sprintf("❌ Failed to list alarms: %v", err)
	}
	if len(alarms) == 0 {
		return fmt.Sprintf("📭 User %s has no alarms yet", userID)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 Alarms for user %s (%d total):\n", userID, len(alarms))
	for i, alarm := range alarms {
		statusIcon := "✅"
		if alarm.IsEnabled != nil && !*alarm.IsEnabled {
			statusIcon = "❌"
		}
		repeatMark := "1️⃣"
		if alarm.RepeatDays != nil && *alarm.RepeatDays != "" {
			repeatMark = "🔁"
		}
		fmt.Fprintf(&b, "%d. %s %s %s - %s (ID: %s)\n",
			i+1, statusIcon, repeatMark, alarm.AlarmName, alarm.AlarmTime, alarm.AlarmID)
	}
	return b.String()
}

type UpdateAlarmArgs struct {
	AlarmID     string
	AlarmTime   *string
	AlarmName   *string
	AIPersonaID *string
	RepeatDays  *string
	IsEnabled   *bool
}

// UpdateAlarm sends only the fields the caller actually supplied, so the
// server's merge semantics leave everything else untouched.
func (c *Client) UpdateAlarm(ctx context.Context, args UpdateAlarmArgs) string {
	if args.AlarmTime != nil {
		if err := types.ValidateAlarmTime(*args.AlarmTime); err != nil {
			return fmt.Sprintf("Error: %v", err)
		}
	}
	if args.AIPersonaID != nil && !types.IsValidPersonaID(*args.AIPersonaID) {
		return fmt.Sprintf("Error: ai_persona_id must be one of: %s", strings.Join(types.PersonaVocabulary, ", "))
	}
	if args.RepeatDays != nil && *args.RepeatDays != "" {
		if err := types.ValidateRepeatDays(*args.RepeatDays); err != nil {
			return fmt.Sprintf("Error: %v", err)
		}
	}

	payload := map[string]any{}
	if args.AlarmTime != nil {
		payload["alarm_time"] = *args.AlarmTime
	}
	if args.AlarmName != nil {
		payload["alarm_name"] = *args.AlarmName
	}
	if args.AIPersonaID != nil {
		payload["ai_persona_id"] = *args.AIPersonaID
	}
	if args.RepeatDays != nil {
		payload["repeat_days"] = *args.RepeatDays
	}
	if args.IsEnabled != nil {
		payload["is_enabled"] = *args.IsEnabled
	}
	if len(payload) == 0 {
		return "❌ No fields provided to update"
	}

	if _, err := c.do(ctx, http.MethodPut, "/api/alarms/"+url.PathEscape(args.AlarmID), payload); err != nil {
		if isNotFound(err) {
			return fmt.Sprintf("❌ No alarm found with ID %s", args.AlarmID)
		}
		return fmt.Sprintf("❌ Failed to update alarm: %v", err)
	}
	return fmt.Sprintf("✅ Alarm %s updated!", args.AlarmID)
}

func (c *Client) DeleteAlarm(ctx context.Context, alarmID string) string {
	if _, err := c.do(ctx, http.MethodDelete, "/api/alarms/"+url.PathEscape(alarmID), nil); err != nil {
		if isNotFound(err) {
			return fmt.Sprintf("❌ No alarm found with ID %s", alarmID)
		}
		return fmt.Sprintf("❌ Failed to delete alarm: %v", err)
	}
	return fmt.Sprintf("✅ Alarm %s deleted", alarmID)
}

func isNotFound(err error) bool {
	var httpErr *httpError
	return errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound
}
