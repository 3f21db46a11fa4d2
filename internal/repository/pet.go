package repository

import (
	"context"
	"errors"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"

	"gorm.io/gorm"
)

// PetRepository defines persistence operations for pets.
type PetRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Pet, error)
	GetOwnerPets(ctx context.Context, ownerID uint) ([]models.Pet, error)
	Create(ctx context.Context, pet *models.Pet) error
	Update(ctx context.Context, pet *models.Pet) error
	Delete(ctx context.Context, id uint) error
}

type petRepository struct {
	db *gorm.DB
}

// NewPetRepository returns a new PetRepository implementation.
func NewPetRepository(db *gorm.DB) PetRepository {
	return &petRepository{db: db}
}

func (r *petRepository) GetByID(ctx context.Context, id uint) (*models.Pet, error) {
	var pet models.Pet
	if err := r.db.WithContext(ctx).First(&pet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Pet", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &pet, nil
}

func (r *petRepository) GetOwnerPets(ctx context.Context, ownerID uint) ([]models.Pet, error) {
	var pets []models.Pet
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&pets).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return pets, nil
}

func (r *petRepository) Create(ctx context.Context, pet *models.Pet) error {
	if err := r.db.WithContext(ctx).Create(pet).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *petRepository) Update(ctx context.Context, pet *models.Pet) error {
	if err := r.db.WithContext(ctx).Save(pet).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Delete removes the pet permanently. Pets have no soft delete.
func (r *petRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Pet{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
