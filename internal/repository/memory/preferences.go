package memory

import (
	"context"
	"time"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/repository"
)

type preferencesRepository struct {
	store *Store
}

// NewPreferencesRepository returns an in-memory PreferencesRepository backed by store.
func NewPreferencesRepository(store *Store) repository.PreferencesRepository {
	return &preferencesRepository{store: store}
}

func (r *preferencesRepository) GetByOwner(_ context.Context, ownerID uint) (*models.OwnerPreferences, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	prefs, ok := r.store.preferences[ownerID]
	if !ok {
		return nil, nil
	}
	return &prefs, nil
}

func (r *preferencesRepository) Create(_ context.Context, prefs *models.OwnerPreferences) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextPrefsID++
	prefs.ID = r.store.nextPrefsID
	now := time.Now()
	prefs.CreatedAt = now
	prefs.UpdatedAt = now
	r.store.preferences[prefs.OwnerID] = *prefs
	return nil
}

func (r *preferencesRepository) Update(_ context.Context, prefs *models.OwnerPreferences) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	prefs.UpdatedAt = time.Now()
	r.store.preferences[prefs.OwnerID] = *prefs
	return nil
}
