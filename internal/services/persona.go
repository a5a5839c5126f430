package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/voiceclock/alarm-backend/internal/platform/apierr"
	"github.com/voiceclock/alarm-backend/internal/platform/logger"
	"github.com/voiceclock/alarm-backend/internal/repos"
	"github.com/voiceclock/alarm-backend/internal/types"
)

type PersonaService interface {
	Create(ctx context.Context, payload types.PersonaPayload) (string, error)
	Get(ctx context.Context, personaID string) (*types.AIPersona, error)
	List(ctx context.Context, activeOnly bool, search string) ([]*types.AIPersona, error)
	Update(ctx context.Context, personaID string, update types.PersonaUpdate) error
	Toggle(ctx context.Context, personaID string, active bool) error
	Delete(ctx context.Context, personaID string) error
}

type personaService struct {
	db          *gorm.DB
	log         *logger.Logger
	personaRepo repos.PersonaRepo
}

func NewPersonaService(db *gorm.DB, log *logger.Logger, personaRepo repos.PersonaRepo) PersonaService {
	return &personaService{
		db:          db,
		log:         log.With("service", "PersonaService"),
		personaRepo: personaRepo,
	}
}

// Create rejects duplicate ids with an existence check before the
// insert; the store's primary key backs it up under races.
func (ps *personaService) Create(ctx context.Context, payload types.PersonaPayload) (string, error) {
	if payload.ID == "" {
		return "", apierr.Invalid("missing required field: id")
	}
	if payload.Name == "" {
		return "", apierr.Invalid("missing required field: name")
	}
	if payload.Description == "" {
		return "", apierr.Invalid("missing required field: description")
	}

	persona := types.PersonaFromPayload(payload)

	err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := ps.personaRepo.Exists(ctx, tx, persona.PersonaID)
		if err != nil {
			return err
		}
		if exists {
			return apierr.Conflict("persona id already exists: %s", persona.PersonaID)
		}
		return ps.personaRepo.Create(ctx, tx, persona)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", apierr.Conflict("persona id already exists: %s", persona.PersonaID)
		}
		return "", err
	}
	return persona.PersonaID, nil
}

func (ps *personaService) Get(ctx context.Context, personaID string) (*types.AIPersona, error) {
	var persona *types.AIPersona
	err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := ps.personaRepo.GetByID(ctx, tx, personaID)
		if err != nil {
			return err
		}
		persona = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	if persona == nil {
		return nil, apierr.NotFound("persona not found")
	}
	return persona, nil
}

func (ps *personaService) List(ctx context.Context, activeOnly bool, search string) ([]*types.AIPersona, error) {
	var personas []*types.AIPersona
	err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if strings.TrimSpace(search) != "" {
			personas, err = ps.personaRepo.Search(ctx, tx, strings.TrimSpace(search))
		} else {
			personas, err = ps.personaRepo.List(ctx, tx, activeOnly)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return personas, nil
}

func (ps *personaService) Update(ctx context.Context, personaID string, update types.PersonaUpdate) error {
	return ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := ps.personaRepo.GetByID(ctx, tx, personaID)
		if err != nil {
			return err
		}
		if existing == nil {
			return apierr.NotFound("persona not found")
		}
		update.ApplyTo(existing)
		ok, err := ps.personaRepo.Update(ctx, tx, existing)
		if err != nil {
			return err
		}
		if !ok {
			return apierr.NotFound("persona not found")
		}
		return nil
	})
}

func (ps *personaService) Toggle(ctx context.Context, personaID string, active bool) error {
	return ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := ps.personaRepo.ToggleStatus(ctx, tx, personaID, active)
		if err != nil {
			return err
		}
		if !ok {
			return apierr.NotFound("persona not found")
		}
		return nil
	})
}

// Delete refuses to remove seed personas before the store is touched.
func (ps *personaService) Delete(ctx context.Context, personaID string) error {
	return ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := ps.personaRepo.GetByID(ctx, tx, personaID)
		if err != nil {
			return err
		}
		if existing == nil {
			return apierr.NotFound("persona not found")
		}
		if existing.IsDefault {
			return apierr.Conflict("cannot delete a default persona")
		}
		ok, err := ps.personaRepo.Delete(ctx, tx, personaID)
		if err != nil {
			return err
		}
		if !ok {
			return apierr.NotFound("persona not found")
		}
		return nil
	})
}
