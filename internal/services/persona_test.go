package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/voiceclock/alarm-backend/internal/repos"
	"github.com/voiceclock/alarm-backend/internal/repos/testutil"
	"github.com/voiceclock/alarm-backend/internal/types"
)

func newPersonaService(t *testing.T) (PersonaService, context.Context) {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	return NewPersonaService(db, log, repos.NewPersonaRepo(db, log)), context.Background()
}

func TestPersonaServiceCreateDefaults(t *testing.T) {
	svc, ctx := newPersonaService(t)

	id, err := svc.Create(ctx, types.PersonaPayload{
		ID:          "custom",
		Name:        "Custom Persona",
		Description: "a persona made in a test",
		Features:    []string{"calm", "brief"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != "custom" {
		t.Fatalf("Create: expected id custom, got %s", id)
	}

	persona, err := svc.Get(ctx, "custom")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if persona.Emoji != types.DefaultPersonaEmoji {
		t.Fatalf("expected default emoji, got %q", persona.Emoji)
	}
	if persona.VoiceID != types.DefaultPersonaVoice {
		t.Fatalf("expected default voice, got %q", persona.VoiceID)
	}
	if !persona.IsActive {
		t.Fatalf("expected new persona active")
	}
	if persona.IsDefault {
		t.Fatalf("created persona must not be a seed default")
	}
	if persona.Features != "calm,brief" {
		t.Fatalf("features not joined for storage: %q", persona.Features)
	}
}

func TestPersonaServiceCreateValidation(t *testing.T) {
	svc, ctx := newPersonaService(t)

	tests := []struct {
		name    string
		payload types.PersonaPayload
	}{
		{"missing_id", types.PersonaPayload{Name: "n", Description: "d"}},
		{"missing_name", types.PersonaPayload{ID: "p", Description: "d"}},
		{"missing_description", types.PersonaPayload{ID: "p", Name: "n"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.payload)
			assertAPIError(t, err, http.StatusBadRequest)
		})
	}
}

func TestPersonaServiceCreateDuplicate(t *testing.T) {
	svc, ctx := newPersonaService(t)

	payload := types.PersonaPayload{ID: "gentle", Name: "Gentle Wake", Description: "calm wake-ups"}
	if _, err := svc.Create(ctx, payload); err != nil {
		t.Fatalf("Create: %v", err)
	}

	payload.Name = "Impostor"
	_, err := svc.Create(ctx, payload)
	apiErr := assertAPIError(t, err, http.StatusBadRequest)
	if apiErr.Code != "conflict" {
		t.Fatalf("expected conflict code, got %q", apiErr.Code)
	}

	persona, err := svc.Get(ctx, "gentle")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if persona.Name != "Gentle Wake" {
		t.Fatalf("duplicate create mutated existing persona: %+v", persona)
	}
}

func TestPersonaServiceUpdatePartial(t *testing.T) {
	svc, ctx := newPersonaService(t)

	if _, err := svc.Create(ctx, types.PersonaPayload{
		ID:          "informative",
		Name:        "Morning Briefing",
		Description: "starts the day with the news",
		VoiceID:     "onyx",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	newDesc := "headlines, weather and calendar"
	if err := svc.Update(ctx, "informative", types.PersonaUpdate{Description: &newDesc}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	persona, err := svc.Get(ctx, "informative")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if persona.Description != newDesc {
		t.Fatalf("Update: description not applied: %q", persona.Description)
	}
	if persona.Name != "Morning Briefing" {
		t.Fatalf("Update: omitted name clobbered: %q", persona.Name)
	}
	if persona.VoiceID != "onyx" {
		t.Fatalf("Update: omitted voice clobbered: %q", persona.VoiceID)
	}

	err = svc.Update(ctx, "ghost", types.PersonaUpdate{Description: &newDesc})
	assertAPIError(t, err, http.StatusNotFound)
}

func TestPersonaServiceListAndSearch(t *testing.T) {
	svc, ctx := newPersonaService(t)

	if _, err := svc.Create(ctx, types.PersonaPayload{ID: "energetic", Name: "Energy Boost", Description: "loud and upbeat"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, types.PersonaPayload{ID: "strict", Name: "Drill Sergeant", Description: "no snoozing allowed"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Toggle(ctx, "strict", false); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	active, err := svc.List(ctx, true, "")
	if err != nil {
		t.Fatalf("List (active): %v", err)
	}
	if len(active) != 1 || active[0].PersonaID != "energetic" {
		t.Fatalf("List (active): unexpected result: %+v", active)
	}

	all, err := svc.List(ctx, false, "")
	if err != nil {
		t.Fatalf("List (all): %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("List (all): expected 2, got %d", len(all))
	}

	found, err := svc.List(ctx, true, "ENERGY")
	if err != nil {
		t.Fatalf("List (search): %v", err)
	}
	if len(found) != 1 || found[0].PersonaID != "energetic" {
		t.Fatalf("List (search): unexpected result: %+v", found)
	}

	hidden, err := svc.List(ctx, true, "snoozing")
	if err != nil {
		t.Fatalf("List (search inactive): %v", err)
	}
	if len(hidden) != 0 {
		t.Fatalf("search must skip inactive personas, got %+v", hidden)
	}
}

func TestPersonaServiceDeleteGuardsDefaults(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	svc := NewPersonaService(db, log, repos.NewPersonaRepo(db, log))
	ctx := context.Background()

	testutil.SeedPersona(t, ctx, db, "gentle", true)
	testutil.SeedPersona(t, ctx, db, "custom", false)

	err := svc.Delete(ctx, "gentle")
	apiErr := assertAPIError(t, err, http.StatusBadRequest)
	if apiErr.Code != "conflict" {
		t.Fatalf("expected conflict code, got %q", apiErr.Code)
	}
	if _, err := svc.Get(ctx, "gentle"); err != nil {
		t.Fatalf("default persona must survive delete attempt: %v", err)
	}

	if err := svc.Delete(ctx, "custom"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	_, err = svc.Get(ctx, "custom")
	assertAPIError(t, err, http.StatusNotFound)

	err = svc.Delete(ctx, "ghost")
	assertAPIError(t, err, http.StatusNotFound)
}
