package types

import (
	"strings"
	"time"
)

const (
	DefaultPersonaEmoji = "🙂"
	DefaultPersonaVoice = "nova"
)

// AIPersona is a named voice/behavior profile that can be attached to an
// alarm. Features are stored as a comma-delimited string and exposed on
// the wire as a list.
type AIPersona struct {
	PersonaID    string    `gorm:"primaryKey;column:persona_id" json:"persona_id"`
	Name         string    `gorm:"not null;column:name" json:"name"`
	Description  string    `gorm:"not null;column:description" json:"description"`
	Emoji        string    `gorm:"column:emoji" json:"emoji"`
	SystemPrompt string    `gorm:"column:system_prompt" json:"system_prompt"`
	OpeningLine  string    `gorm:"column:opening_line" json:"opening_line"`
	VoiceID      string    `gorm:"column:voice_id" json:"voice_id"`
	Features     string    `gorm:"column:features" json:"features"`
	IsActive     bool      `gorm:"column:is_active" json:"is_active"`
	IsDefault    bool      `gorm:"column:is_default" json:"is_default"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

func (AIPersona) TableName() string {
	return "ai_personas"
}

type PersonaPayload struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Emoji        string     `json:"emoji"`
	SystemPrompt string     `json:"system_prompt"`
	OpeningLine  string     `json:"opening_line"`
	VoiceID      string     `json:"voice_id"`
	Features     []string   `json:"features"`
	IsActive     *bool      `json:"is_active"`
	IsDefault    bool       `json:"is_default"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// PersonaFromPayload maps a wire payload to an entity, defaulting the
// emoji, voice and active flag when absent.
func PersonaFromPayload(p PersonaPayload) *AIPersona {
	persona := &AIPersona{
		PersonaID:    p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Emoji:        p.Emoji,
		SystemPrompt: p.SystemPrompt,
		OpeningLine:  p.OpeningLine,
		VoiceID:      p.VoiceID,
		Features:     JoinList(p.Features),
		IsActive:     true,
		IsDefault:    p.IsDefault,
	}
	if persona.Emoji == "" {
		persona.Emoji = DefaultPersonaEmoji
	}
	if persona.VoiceID == "" {
		persona.VoiceID = DefaultPersonaVoice
	}
	if p.IsActive != nil {
		persona.IsActive = *p.IsActive
	}
	return persona
}

func (p *AIPersona) Payload() PersonaPayload {
	active := p.IsActive
	out := PersonaPayload{
		ID:           p.PersonaID,
		Name:         p.Name,
		Description:  p.Description,
		Emoji:        p.Emoji,
		SystemPrompt: p.SystemPrompt,
		OpeningLine:  p.OpeningLine,
		VoiceID:      p.VoiceID,
		Features:     SplitList(p.Features),
		IsActive:     &active,
		IsDefault:    p.IsDefault,
	}
	if !p.CreatedAt.IsZero() {
		created := p.CreatedAt
		out.CreatedAt = &created
	}
	if !p.UpdatedAt.IsZero() {
		updated := p.UpdatedAt
		out.UpdatedAt = &updated
	}
	return out
}

type PersonaUpdate struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Emoji        *string  `json:"emoji"`
	SystemPrompt *string  `json:"system_prompt"`
	OpeningLine  *string  `json:"opening_line"`
	VoiceID      *string  `json:"voice_id"`
	Features     []string `json:"features"`
	IsActive     *bool    `json:"is_active"`
	IsDefault    *bool    `json:"is_default"`
}

func (u PersonaUpdate) ApplyTo(p *AIPersona) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Emoji != nil {
		p.Emoji = *u.Emoji
	}
	if u.SystemPrompt != nil {
		p.SystemPrompt = *u.SystemPrompt
	}
	if u.OpeningLine != nil {
		p.OpeningLine = *u.OpeningLine
	}
	if u.VoiceID != nil {
		p.VoiceID = *u.VoiceID
	}
	if u.Features != nil {
		p.Features = JoinList(u.Features)
	}
	if u.IsActive != nil {
		p.IsActive = *u.IsActive
	}
	if u.IsDefault != nil {
		p.IsDefault = *u.IsDefault
	}
}

// SplitList converts a comma-delimited column value into a list,
// preserving order. An empty source yields an empty list, never nil.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// JoinList is the inverse of SplitList.
func JoinList(items []string) string {
	return strings.Join(items, ",")
}
