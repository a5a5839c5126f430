package types

import (
	"fmt"
	"strconv"
	"strings"
)

// PersonaVocabulary lists the seed persona ids an alarm may reference.
var PersonaVocabulary = []string{"gentle", "energetic", "informative", "humorous", "strict"}

func IsValidPersonaID(id string) bool {
	for _, v := range PersonaVocabulary {
		if id == v {
			return true
		}
	}
	return false
}

// ValidateAlarmTime enforces the canonical "HH:MM" 24-hour wall-clock
// wire format for alarm times.
func ValidateAlarmTime(s string) error {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return fmt.Errorf("alarm_time must be in HH:MM format, e.g. \"08:00\"")
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("alarm_time must be in HH:MM format, e.g. \"08:00\"")
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("alarm_time must be in HH:MM format, e.g. \"08:00\"")
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return fmt.Errorf("alarm_time out of range: hour must be 0-23 and minute 0-59")
	}
	return nil
}

// ValidateRepeatDays enforces the canonical weekday vocabulary: a
// comma-delimited list of numbers 1-7 (Monday through Sunday).
func ValidateRepeatDays(s string) error {
	for _, part := range strings.Split(s, ",") {
		day, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("repeat_days must be comma-separated numbers, e.g. \"1,2,3,4,5\"")
		}
		if day < 1 || day > 7 {
			return fmt.Errorf("repeat_days values must be between 1 (Monday) and 7 (Sunday)")
		}
	}
	return nil
}
