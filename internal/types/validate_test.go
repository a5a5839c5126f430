package types

import "testing"

func TestValidateAlarmTime(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "valid_morning", in: "08:00"},
		{name: "valid_midnight", in: "00:00"},
		{name: "valid_last_minute", in: "23:59"},
		{name: "hour_out_of_range", in: "24:00", wantErr: true},
		{name: "minute_out_of_range", in: "08:60", wantErr: true},
		{name: "iso_datetime_rejected", in: "2024-01-01T08:00:00Z", wantErr: true},
		{name: "missing_minute", in: "08", wantErr: true},
		{name: "unpadded_rejected", in: "7:5", wantErr: true},
		{name: "not_numbers", in: "ab:cd", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateAlarmTime(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateAlarmTime(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
		})
	}
}

func TestValidateRepeatDays(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "weekdays", in: "1,2,3,4,5"},
		{name: "weekend", in: "6,7"},
		{name: "single_day", in: "1"},
		{name: "spaces_ok", in: "1, 2, 3"},
		{name: "zero_rejected", in: "0,1", wantErr: true},
		{name: "eight_rejected", in: "8", wantErr: true},
		{name: "letters_rejected", in: "mon,tue", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRepeatDays(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateRepeatDays(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
		})
	}
}

func TestIsValidPersonaID(t *testing.T) {
	for _, id := range PersonaVocabulary {
		if !IsValidPersonaID(id) {
			t.Fatalf("IsValidPersonaID(%q) = false, want true", id)
		}
	}
	if IsValidPersonaID("robot") {
		t.Fatalf("IsValidPersonaID(\"robot\") = true, want false")
	}
}
