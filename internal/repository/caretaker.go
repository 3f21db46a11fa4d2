package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/cache"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"

	"gorm.io/gorm"
)

// CaretakerRepository defines persistence operations for caretaker profiles.
type CaretakerRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.CaretakerProfile, error)
	GetByUserIDs(ctx context.Context, userIDs []uint) ([]models.CaretakerProfile, error)
	Save(ctx context.Context, profile *models.CaretakerProfile) error
	SetVerified(ctx context.Context, userID uint, verifierID uint) error
	// Search applies the database-level filters (caretaker user type,
	// location substring on city or postal code, hourly-rate range,
	// minimum rating) and returns matching profiles with their user rows.
	// Service-set filtering and pagination happen in the service layer.
	Search(ctx context.Context, filter models.SearchFilter) ([]models.CaretakerProfile, error)
}

type caretakerRepository struct {
	db *gorm.DB
}

// NewCaretakerRepository returns a new CaretakerRepository implementation.
func NewCaretakerRepository(db *gorm.DB) CaretakerRepository {
	return &caretakerRepository{db: db}
}

func (r *caretakerRepository) GetByUserID(ctx context.Context, userID uint) (*models.CaretakerProfile, error) {
	var profile models.CaretakerProfile
	key := cache.CaretakerKey(userID)

	err := cache.Aside(ctx, key, &profile, cache.CaretakerTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("User").
			Where("user_id = ?", userID).
			First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Caretaker", userID)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *caretakerRepository) GetByUserIDs(ctx context.Context, userIDs []uint) ([]models.CaretakerProfile, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var profiles []models.CaretakerProfile
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id IN ?", userIDs).
		Find(&profiles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

func (r *caretakerRepository) Save(ctx context.Context, profile *models.CaretakerProfile) error {
	// Check-then-insert-or-update: legacy rows may predate columns a
	// native upsert would require.
	var existing models.CaretakerProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", profile.UserID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
			return models.NewInternalError(err)
		}
	case err != nil:
		return models.NewInternalError(err)
	default:
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
		if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
			return models.NewInternalError(err)
		}
	}
	cache.InvalidateCaretaker(ctx, profile.UserID)
	return nil
}

func (r *caretakerRepository) SetVerified(ctx context.Context, userID uint, verifierID uint) error {
	if err := r.db.WithContext(ctx).
		Model(&models.CaretakerProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{"is_verified": true, "verified_by": verifierID}).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateCaretaker(ctx, userID)
	return nil
}

func (r *caretakerRepository) Search(ctx context.Context, filter models.SearchFilter) ([]models.CaretakerProfile, error) {
	q := r.db.WithContext(ctx).
		Model(&models.CaretakerProfile{}).
		Joins("JOIN users ON users.id = caretaker_profiles.user_id").
		Where("users.user_type = ?", models.UserTypeCaretaker).
		Preload("User")

	if filter.Location != "" {
		// LOWER + LIKE instead of ILIKE so the filter behaves the same on
		// PostgreSQL and on the sqlite test database.
		like := "%" + strings.ToLower(filter.Location) + "%"
		q = q.Where("LOWER(users.city) LIKE ? OR LOWER(users.plz) LIKE ?", like, like)
	}
	if filter.MinPrice != nil {
		q = q.Where("caretaker_profiles.hourly_rate >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("caretaker_profiles.hourly_rate <= ?", *filter.MaxPrice)
	}
	if filter.MinRating != nil {
		q = q.Where("caretaker_profiles.rating >= ?", *filter.MinRating)
	}

	var profiles []models.CaretakerProfile
	if err := q.Order("caretaker_profiles.rating DESC, caretaker_profiles.review_count DESC").
		Find(&profiles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}
