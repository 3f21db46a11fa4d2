package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/repository"
)

type userRepository struct {
	store *Store
}

// NewUserRepository returns an in-memory UserRepository backed by store.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) GetByID(_ context.Context, id uint) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, models.NewNotFoundError("User", id)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.users {
		if strings.EqualFold(user.Email, email) {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *userRepository) Create(_ context.Context, user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return models.NewValidationError("User already exists")
		}
	}

	r.store.nextUserID++
	user.ID = r.store.nextUserID
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.store.users[user.ID] = *user
	return nil
}

func (r *userRepository) Update(_ context.Context, user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[user.ID]; !ok {
		return models.NewNotFoundError("User", user.ID)
	}
	user.UpdatedAt = time.Now()
	r.store.users[user.ID] = *user
	return nil
}

func (r *userRepository) DeleteCascade(_ context.Context, id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for petID, pet := range r.store.pets {
		if pet.OwnerID == id {
			delete(r.store.pets, petID)
		}
	}
	delete(r.store.preferences, id)
	for connID, conn := range r.store.connections {
		if conn.OwnerID == id || conn.CaretakerID == id {
			delete(r.store.connections, connID)
		}
	}
	delete(r.store.profiles, id)
	for noteID, note := range r.store.notes {
		if note.UserID == id {
			delete(r.store.notes, noteID)
		}
	}
	delete(r.store.users, id)
	return nil
}

func (r *userRepository) List(_ context.Context, query string, userType models.UserType, limit, offset int) ([]models.User, int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	q := strings.ToLower(query)
	var matched []models.User
	for _, user := range r.store.users {
		if userType != "" && user.UserType != userType {
			continue
		}
		if q != "" && !userMatches(user, q) {
			continue
		}
		matched = append(matched, user)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func userMatches(user models.User, q string) bool {
	return strings.Contains(strings.ToLower(user.Email), q) ||
		strings.Contains(strings.ToLower(user.FirstName), q) ||
		strings.Contains(strings.ToLower(user.LastName), q) ||
		strings.Contains(strings.ToLower(user.City), q)
}
