package service

import (
	"context"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/repository"
)

// PetService provides pet management business logic. Every mutating
// operation checks that the acting user owns the pet.
type PetService struct {
	petRepo  repository.PetRepository
	userRepo repository.UserRepository
}

// NewPetService returns a new PetService.
func NewPetService(petRepo repository.PetRepository, userRepo repository.UserRepository) *PetService {
	return &PetService{
		petRepo:  petRepo,
		userRepo: userRepo,
	}
}

// AddPet creates a pet for the owner.
func (s *PetService) AddPet(ctx context.Context, ownerID uint, pet *models.Pet) (*models.Pet, error) {
	if pet.Name == "" {
		return nil, models.NewValidationError("Pet name is required")
	}
	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}

	pet.OwnerID = ownerID
	if err := s.petRepo.Create(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

// GetPets returns every pet of the owner in insertion order.
func (s *PetService) GetPets(ctx context.Context, ownerID uint) ([]models.Pet, error) {
	return s.petRepo.GetOwnerPets(ctx, ownerID)
}

// UpdatePet applies a partial update to a pet. Fields not present in the
// update stay untouched; explicitly provided zero values clear the field.
func (s *PetService) UpdatePet(ctx context.Context, ownerID, petID uint, update models.PetUpdate) (*models.Pet, error) {
	pet, err := s.petRepo.GetByID(ctx, petID)
	if err != nil {
		return nil, err
	}
	if pet.OwnerID != ownerID {
		return nil, models.NewUnauthorizedError("You can only edit your own pets")
	}
	if update.Name != nil && *update.Name == "" {
		return nil, models.NewValidationError("Pet name cannot be empty")
	}

	update.Apply(pet)
	if err := s.petRepo.Update(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

// DeletePet removes a pet permanently.
func (s *PetService) DeletePet(ctx context.Context, ownerID, petID uint) error {
	pet, err := s.petRepo.GetByID(ctx, petID)
	if err != nil {
		return err
	}
	if pet.OwnerID != ownerID {
		return models.NewUnauthorizedError("You can only delete your own pets")
	}
	return s.petRepo.Delete(ctx, petID)
}
