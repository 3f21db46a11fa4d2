package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/repository"
)

type caretakerRepository struct {
	store *Store
}

// NewCaretakerRepository returns an in-memory CaretakerRepository backed by store.
func NewCaretakerRepository(store *Store) repository.CaretakerRepository {
	return &caretakerRepository{store: store}
}

func (r *caretakerRepository) GetByUserID(_ context.Context, userID uint) (*models.CaretakerProfile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	profile, ok := r.store.profiles[userID]
	if !ok {
		return nil, models.NewNotFoundError("Caretaker", userID)
	}
	if user, ok := r.store.users[userID]; ok {
		profile.User = user
	}
	return &profile, nil
}

func (r *caretakerRepository) GetByUserIDs(_ context.Context, userIDs []uint) ([]models.CaretakerProfile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var profiles []models.CaretakerProfile
	for _, id := range userIDs {
		profile, ok := r.store.profiles[id]
		if !ok {
			continue
		}
		if user, ok := r.store.users[id]; ok {
			profile.User = user
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (r *caretakerRepository) Save(_ context.Context, profile *models.CaretakerProfile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now()
	if existing, ok := r.store.profiles[profile.UserID]; ok {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	} else {
		r.store.nextProfileID++
		profile.ID = r.store.nextProfileID
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	r.store.profiles[profile.UserID] = *profile
	return nil
}

func (r *caretakerRepository) SetVerified(_ context.Context, userID uint, verifierID uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	profile, ok := r.store.profiles[userID]
	if !ok {
		return models.NewNotFoundError("Caretaker", userID)
	}
	profile.IsVerified = true
	profile.VerifiedBy = &verifierID
	profile.UpdatedAt = time.Now()
	r.store.profiles[userID] = profile
	return nil
}

func (r *caretakerRepository) Search(_ context.Context, filter models.SearchFilter) ([]models.CaretakerProfile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	location := strings.ToLower(filter.Location)
	var profiles []models.CaretakerProfile
	for userID, profile := range r.store.profiles {
		user, ok := r.store.users[userID]
		if !ok || user.UserType != models.UserTypeCaretaker {
			continue
		}
		if location != "" &&
			!strings.Contains(strings.ToLower(user.City), location) &&
			!strings.Contains(strings.ToLower(user.PLZ), location) {
			continue
		}
		if filter.MinPrice != nil && profile.HourlyRate < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && profile.HourlyRate > *filter.MaxPrice {
			continue
		}
		if filter.MinRating != nil && profile.Rating < *filter.MinRating {
			continue
		}
		profile.User = user
		profiles = append(profiles, profile)
	}

	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].Rating == profiles[j].Rating {
			return profiles[i].ReviewCount > profiles[j].ReviewCount
		}
		return profiles[i].Rating > profiles[j].Rating
	})
	return profiles, nil
}
