package memory

import (
	"context"
	"sort"
	"time"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/repository"
)

type petRepository struct {
	store *Store
}

// NewPetRepository returns an in-memory PetRepository backed by store.
func NewPetRepository(store *Store) repository.PetRepository {
	return &petRepository{store: store}
}

func (r *petRepository) GetByID(_ context.Context, id uint) (*models.Pet, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	pet, ok := r.store.pets[id]
	if !ok {
		return nil, models.NewNotFoundError("Pet", id)
	}
	return &pet, nil
}

func (r *petRepository) GetOwnerPets(_ context.Context, ownerID uint) ([]models.Pet, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var pets []models.Pet
	for _, pet := range r.store.pets {
		if pet.OwnerID == ownerID {
			pets = append(pets, pet)
		}
	}
	sort.Slice(pets, func(i, j int) bool {
		if pets[i].CreatedAt.Equal(pets[j].CreatedAt) {
			return pets[i].ID < pets[j].ID
		}
		return pets[i].CreatedAt.Before(pets[j].CreatedAt)
	})
	return pets, nil
}

func (r *petRepository) Create(_ context.Context, pet *models.Pet) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextPetID++
	pet.ID = r.store.nextPetID
	now := time.Now()
	pet.CreatedAt = now
	pet.UpdatedAt = now
	r.store.pets[pet.ID] = *pet
	return nil
}

func (r *petRepository) Update(_ context.Context, pet *models.Pet) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.pets[pet.ID]; !ok {
		return models.NewNotFoundError("Pet", pet.ID)
	}
	pet.UpdatedAt = time.Now()
	r.store.pets[pet.ID] = *pet
	return nil
}

func (r *petRepository) Delete(_ context.Context, id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.pets, id)
	return nil
}
