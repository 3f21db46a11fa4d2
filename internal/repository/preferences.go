package repository

import (
	"context"
	"errors"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"

	"gorm.io/gorm"
)

// PreferencesRepository defines persistence operations for owner preferences.
// GetByOwner returns (nil, nil) when no row exists yet; the service layer
// decides between insert and update, mirroring the legacy check-then-write
// behavior instead of a native upsert.
type PreferencesRepository interface {
	GetByOwner(ctx context.Context, ownerID uint) (*models.OwnerPreferences, error)
	Create(ctx context.Context, prefs *models.OwnerPreferences) error
	Update(ctx context.Context, prefs *models.OwnerPreferences) error
}

type preferencesRepository struct {
	db *gorm.DB
}

// NewPreferencesRepository returns a new PreferencesRepository implementation.
func NewPreferencesRepository(db *gorm.DB) PreferencesRepository {
	return &preferencesRepository{db: db}
}

func (r *preferencesRepository) GetByOwner(ctx context.Context, ownerID uint) (*models.OwnerPreferences, error) {
	var prefs models.OwnerPreferences
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&prefs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &prefs, nil
}

func (r *preferencesRepository) Create(ctx context.Context, prefs *models.OwnerPreferences) error {
	if err := r.db.WithContext(ctx).Create(prefs).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *preferencesRepository) Update(ctx context.Context, prefs *models.OwnerPreferences) error {
	if err := r.db.WithContext(ctx).Save(prefs).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
