package repository

import (
	"context"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/cache"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"

	"gorm.io/gorm"
)

// PLZRepository defines lookup operations for German postal codes.
type PLZRepository interface {
	// CitiesForPLZ returns every city mapped to the given postal code,
	// ordered alphabetically. An unknown code yields an empty slice.
	CitiesForPLZ(ctx context.Context, plz string) ([]string, error)
	Upsert(ctx context.Context, plz, city string) error
}

type plzRepository struct {
	db *gorm.DB
}

// NewPLZRepository returns a new PLZRepository implementation.
func NewPLZRepository(db *gorm.DB) PLZRepository {
	return &plzRepository{db: db}
}

func (r *plzRepository) CitiesForPLZ(ctx context.Context, plz string) ([]string, error) {
	var cities []string
	key := cache.PLZKey(plz)

	err := cache.Aside(ctx, key, &cities, cache.PLZTTL, func() error {
		if err := r.db.WithContext(ctx).
			Model(&models.PostalCode{}).
			Where("plz = ?", plz).
			Order("city ASC").
			Pluck("city", &cities).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *plzRepository) Upsert(ctx context.Context, plz, city string) error {
	var existing models.PostalCode
	err := r.db.WithContext(ctx).Where("plz = ? AND city = ?", plz, city).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return models.NewInternalError(err)
	}
	if err := r.db.WithContext(ctx).Create(&models.PostalCode{PLZ: plz, City: city}).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil
		}
		return models.NewInternalError(err)
	}
	cache.InvalidatePLZ(ctx, plz)
	return nil
}
