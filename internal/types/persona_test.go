package types

import (
	"reflect"
	"testing"
)

func TestSplitList(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: []string{}},
		{name: "whitespace", in: "   ", want: []string{}},
		{name: "single", in: "calm", want: []string{"calm"}},
		{name: "ordered", in: "calm,friendly,patient", want: []string{"calm", "friendly", "patient"}},
		{name: "spaces_trimmed", in: "calm, friendly , patient", want: []string{"calm", "friendly", "patient"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitList(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("SplitList(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestFeaturesRoundTrip(t *testing.T) {
	features := []string{"jokes", "playful", "light-hearted"}
	joined := JoinList(features)
	if got := SplitList(joined); !reflect.DeepEqual(got, features) {
		t.Fatalf("round trip reordered features: %v", got)
	}
}

func TestPersonaFromPayloadDefaults(t *testing.T) {
	p := PersonaFromPayload(PersonaPayload{
		ID:          "coach",
		Name:        "Coach",
		Description: "pushes you",
	})
	if p.Emoji != DefaultPersonaEmoji {
		t.Fatalf("Emoji = %q, want default %q", p.Emoji, DefaultPersonaEmoji)
	}
	if p.VoiceID != DefaultPersonaVoice {
		t.Fatalf("VoiceID = %q, want default %q", p.VoiceID, DefaultPersonaVoice)
	}
	if !p.IsActive {
		t.Fatalf("IsActive = false, want default true")
	}
	if p.IsDefault {
		t.Fatalf("IsDefault = true, want false")
	}
}

func TestPersonaPayloadRoundTrip(t *testing.T) {
	original := &AIPersona{
		PersonaID:    "coach",
		Name:         "Coach",
		Description:  "pushes you",
		Emoji:        "🏃",
		SystemPrompt: "be a coach",
		OpeningLine:  "let's go",
		VoiceID:      "echo",
		Features:     "push,go",
		IsActive:     false,
		IsDefault:    true,
	}
	back := PersonaFromPayload(original.Payload())

	if back.PersonaID != original.PersonaID ||
		back.Name != original.Name ||
		back.Description != original.Description ||
		back.Emoji != original.Emoji ||
		back.SystemPrompt != original.SystemPrompt ||
		back.OpeningLine != original.OpeningLine ||
		back.VoiceID != original.VoiceID ||
		back.Features != original.Features ||
		back.IsActive != original.IsActive ||
		back.IsDefault != original.IsDefault {
		t.Fatalf("round trip changed fields: %+v", back)
	}
}
