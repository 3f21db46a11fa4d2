package service

import (
	"context"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/repository"
)

// PreferencesService provides owner-preferences business logic. Every
// section (services, vet info, emergency contact, care instructions, share
// settings) saves independently via load-merge-write, so updating one section
// never clobbers another.
type PreferencesService struct {
	prefsRepo repository.PreferencesRepository
	userRepo  repository.UserRepository
}

// NewPreferencesService returns a new PreferencesService.
func NewPreferencesService(prefsRepo repository.PreferencesRepository, userRepo repository.UserRepository) *PreferencesService {
	return &PreferencesService{
		prefsRepo: prefsRepo,
		userRepo:  userRepo,
	}
}

// GetPreferences returns the owner's preferences. Owners without a stored
// row get zero-value preferences with all share flags off.
func (s *PreferencesService) GetPreferences(ctx context.Context, ownerID uint) (*models.OwnerPreferences, error) {
	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	prefs, err := s.prefsRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		return &models.OwnerPreferences{OwnerID: ownerID}, nil
	}
	return prefs, nil
}

// SaveServices replaces the owner's requested services list.
func (s *PreferencesService) SaveServices(ctx context.Context, ownerID uint, services []string, otherServices string) (*models.OwnerPreferences, error) {
	return s.merge(ctx, ownerID, func(p *models.OwnerPreferences) {
		p.Services = services
		p.OtherServices = otherServices
	})
}

// SaveVetInfo replaces the owner's veterinarian block.
func (s *PreferencesService) SaveVetInfo(ctx context.Context, ownerID uint, vet models.VetInfo) (*models.OwnerPreferences, error) {
	return s.merge(ctx, ownerID, func(p *models.OwnerPreferences) {
		p.VetInfo = vet
	})
}

// SaveEmergencyContact replaces the owner's emergency contact.
func (s *PreferencesService) SaveEmergencyContact(ctx context.Context, ownerID uint, contact models.EmergencyContact) (*models.OwnerPreferences, error) {
	return s.merge(ctx, ownerID, func(p *models.OwnerPreferences) {
		p.EmergencyContact = contact
	})
}

// SaveCareInstructions replaces the owner's free-text care instructions.
func (s *PreferencesService) SaveCareInstructions(ctx context.Context, ownerID uint, instructions string) (*models.OwnerPreferences, error) {
	return s.merge(ctx, ownerID, func(p *models.OwnerPreferences) {
		p.CareInstructions = instructions
	})
}

// UpdateShareSettings applies a partial share-settings update. Only the keys
// present in updates change; values arrive in lenient representations and are
// coerced to strict booleans.
func (s *PreferencesService) UpdateShareSettings(ctx context.Context, ownerID uint, updates map[string]any) (*models.OwnerPreferences, error) {
	return s.merge(ctx, ownerID, func(p *models.OwnerPreferences) {
		for key, raw := range updates {
			val := models.CoerceBool(raw)
			switch key {
			case "phoneNumber":
				p.ShareSettings.PhoneNumber = val
			case "email":
				p.ShareSettings.Email = val
			case "address":
				p.ShareSettings.Address = val
			case "vetInfo":
				p.ShareSettings.VetInfo = val
			case "emergencyContact":
				p.ShareSettings.EmergencyContact = val
			case "petDetails":
				p.ShareSettings.PetDetails = val
			case "carePreferences":
				p.ShareSettings.CarePreferences = val
			}
		}
	})
}

// merge loads the owner's row (or starts a fresh one), applies fn, and
// writes it back. The check-then-insert-or-update mirrors the legacy
// behavior of the preferences table.
func (s *PreferencesService) merge(ctx context.Context, ownerID uint, fn func(*models.OwnerPreferences)) (*models.OwnerPreferences, error) {
	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}

	prefs, err := s.prefsRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if prefs == nil {
		fresh := &models.OwnerPreferences{OwnerID: ownerID}
		fn(fresh)
		if err := s.prefsRepo.Create(ctx, fresh); err != nil {
			return nil, err
		}
		return fresh, nil
	}

	fn(prefs)
	if err := s.prefsRepo.Update(ctx, prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}
