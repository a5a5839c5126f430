package repos

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/voiceclock/alarm-backend/internal/platform/logger"
	"github.com/voiceclock/alarm-backend/internal/types"
)

type PersonaRepo interface {
	Create(ctx context.Context, tx *gorm.DB, persona *types.AIPersona) error
	GetByID(ctx context.Context, tx *gorm.DB, personaID string) (*types.AIPersona, error)
	Exists(ctx context.Context, tx *gorm.DB, personaID string) (bool, error)
	List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*types.AIPersona, error)
	Search(ctx context.Context, tx *gorm.DB, query string) ([]*types.AIPersona, error)
	Update(ctx context.Context, tx *gorm.DB, persona *types.AIPersona) (bool, error)
	ToggleStatus(ctx context.Context, tx *gorm.DB, personaID string, active bool) (bool, error)
	Delete(ctx context.Context, tx *gorm.DB, personaID string) (bool, error)
}

type personaRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPersonaRepo(db *gorm.DB, baseLog *logger.Logger) PersonaRepo {
	return &personaRepo{db: db, log: baseLog.With("repo", "PersonaRepo")}
}

func (pr *personaRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return pr.db
}

func (pr *personaRepo) Create(ctx context.Context, tx *gorm.DB, persona *types.AIPersona) error {
	return pr.conn(tx).WithContext(ctx).Create(persona).Error
}

func (pr *personaRepo) GetByID(ctx context.Context, tx *gorm.DB, personaID string) (*types.AIPersona, error) {
	var persona types.AIPersona
	err := pr.conn(tx).WithContext(ctx).
		Where("persona_id = ?", personaID).
		First(&persona).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &persona, nil
}

func (pr *personaRepo) Exists(ctx context.Context, tx *gorm.DB, personaID string) (bool, error) {
	var count int64
	if err := pr.conn(tx).WithContext(ctx).
		Model(&types.AIPersona{}).
		Where("persona_id = ?", personaID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// List returns personas with seed defaults first, then oldest first.
func (pr *personaRepo) List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*types.AIPersona, error) {
	q := pr.conn(tx).WithContext(ctx).Model(&types.AIPersona{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var results []*types.AIPersona
	if err := q.Order("is_default DESC, created_at ASC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Search does a case-insensitive substring match across name, description
// and the features text, restricted to active personas. LOWER/LIKE keeps
// the statement portable across postgres and sqlite.
func (pr *personaRepo) Search(ctx context.Context, tx *gorm.DB, query string) ([]*types.AIPersona, error) {
	term := "%" + strings.ToLower(query) + "%"
	var results []*types.AIPersona
	if err := pr.conn(tx).WithContext(ctx).
		Model(&types.AIPersona{}).
		Where("is_active = ?", true).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(features) LIKE ?", term, term, term).
		Order("is_default DESC, created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *personaRepo) Update(ctx context.Context, tx *gorm.DB, persona *types.AIPersona) (bool, error) {
	res := pr.conn(tx).WithContext(ctx).
		Model(&types.AIPersona{}).
		Where("persona_id = ?", persona.PersonaID).
		Updates(map[string]interface{}{
			"name":          persona.Name,
			"description":   persona.Description,
			"emoji":         persona.Emoji,
			"system_prompt": persona.SystemPrompt,
			"opening_line":  persona.OpeningLine,
			"voice_id":      persona.VoiceID,
			"features":      persona.Features,
			"is_active":     persona.IsActive,
			"is_default":    persona.IsDefault,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (pr *personaRepo) ToggleStatus(ctx context.Context, tx *gorm.DB, personaID string, active bool) (bool, error) {
	res := pr.conn(tx).WithContext(ctx).
		Model(&types.AIPersona{}).
		Where("persona_id = ?", personaID).
		Updates(map[string]interface{}{"is_active": active})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (pr *personaRepo) Delete(ctx context.Context, tx *gorm.DB, personaID string) (bool, error) {
	res := pr.conn(tx).WithContext(ctx).
		Where("persona_id = ?", personaID).
		Delete(&types.AIPersona{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
