package service

import (
	"context"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"
)

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	deleteCascadeFn func(context.Context, uint) error
	listFn          func(context.Context, string, models.UserType, int, int) ([]models.User, int64, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) DeleteCascade(ctx context.Context, id uint) error {
	return s.deleteCascadeFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, query string, userType models.UserType, limit, offset int) ([]models.User, int64, error) {
	return s.listFn(ctx, query, userType, limit, offset)
}

// usersByID returns a user repo stub serving the given users and NOT_FOUND
// for everyone else.
func usersByID(users ...*models.User) *userRepoStub {
	byID := make(map[uint]*models.User)
	for _, u := range users {
		byID[u.ID] = u
	}
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			if u, ok := byID[id]; ok {
				return u, nil
			}
			return nil, models.NewNotFoundError("User", id)
		},
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		deleteCascadeFn: func(context.Context, uint) error { return nil },
		listFn: func(context.Context, string, models.UserType, int, int) ([]models.User, int64, error) {
			return nil, 0, nil
		},
	}
}

type petRepoStub struct {
	getByIDFn      func(context.Context, uint) (*models.Pet, error)
	getOwnerPetsFn func(context.Context, uint) ([]models.Pet, error)
	createFn       func(context.Context, *models.Pet) error
	updateFn       func(context.Context, *models.Pet) error
	deleteFn       func(context.Context, uint) error
}

func (s *petRepoStub) GetByID(ctx context.Context, id uint) (*models.Pet, error) {
	return s.getByIDFn(ctx, id)
}
func (s *petRepoStub) GetOwnerPets(ctx context.Context, ownerID uint) ([]models.Pet, error) {
	return s.getOwnerPetsFn(ctx, ownerID)
}
func (s *petRepoStub) Create(ctx context.Context, pet *models.Pet) error {
	return s.createFn(ctx, pet)
}
func (s *petRepoStub) Update(ctx context.Context, pet *models.Pet) error {
	return s.updateFn(ctx, pet)
}
func (s *petRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

type caretakerRepoStub struct {
	getByUserIDFn  func(context.Context, uint) (*models.CaretakerProfile, error)
	getByUserIDsFn func(context.Context, []uint) ([]models.CaretakerProfile, error)
	saveFn         func(context.Context, *models.CaretakerProfile) error
	setVerifiedFn  func(context.Context, uint, uint) error
	searchFn       func(context.Context, models.SearchFilter) ([]models.CaretakerProfile, error)
}

func (s *caretakerRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.CaretakerProfile, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *caretakerRepoStub) GetByUserIDs(ctx context.Context, userIDs []uint) ([]models.CaretakerProfile, error) {
	return s.getByUserIDsFn(ctx, userIDs)
}
func (s *caretakerRepoStub) Save(ctx context.Context, profile *models.CaretakerProfile) error {
	return s.saveFn(ctx, profile)
}
func (s *caretakerRepoStub) SetVerified(ctx context.Context, userID, verifierID uint) error {
	return s.setVerifiedFn(ctx, userID, verifierID)
}
func (s *caretakerRepoStub) Search(ctx context.Context, filter models.SearchFilter) ([]models.CaretakerProfile, error) {
	return s.searchFn(ctx, filter)
}

type prefsRepoStub struct {
	getByOwnerFn func(context.Context, uint) (*models.OwnerPreferences, error)
	createFn     func(context.Context, *models.OwnerPreferences) error
	updateFn     func(context.Context, *models.OwnerPreferences) error
}

func (s *prefsRepoStub) GetByOwner(ctx context.Context, ownerID uint) (*models.OwnerPreferences, error) {
	return s.getByOwnerFn(ctx, ownerID)
}
func (s *prefsRepoStub) Create(ctx context.Context, prefs *models.OwnerPreferences) error {
	return s.createFn(ctx, prefs)
}
func (s *prefsRepoStub) Update(ctx context.Context, prefs *models.OwnerPreferences) error {
	return s.updateFn(ctx, prefs)
}

type connRepoStub struct {
	getBetweenFn      func(context.Context, uint, uint) (*models.Connection, error)
	createFn          func(context.Context, *models.Connection) error
	promoteFn         func(context.Context, uint, uint) error
	deleteFn          func(context.Context, uint, uint) error
	listByOwnerFn     func(context.Context, uint, models.ConnectionType) ([]models.Connection, error)
	listByCaretakerFn func(context.Context, uint) ([]models.Connection, error)
	countByTypeFn     func(context.Context, models.ConnectionType) (int64, error)
}

func (s *connRepoStub) GetBetween(ctx context.Context, ownerID, caretakerID uint) (*models.Connection, error) {
	return s.getBetweenFn(ctx, ownerID, caretakerID)
}
func (s *connRepoStub) Create(ctx context.Context, conn *models.Connection) error {
	return s.createFn(ctx, conn)
}
func (s *connRepoStub) Promote(ctx context.Context, ownerID, caretakerID uint) error {
	return s.promoteFn(ctx, ownerID, caretakerID)
}
func (s *connRepoStub) Delete(ctx context.Context, ownerID, caretakerID uint) error {
	return s.deleteFn(ctx, ownerID, caretakerID)
}
func (s *connRepoStub) ListByOwner(ctx context.Context, ownerID uint, connType models.ConnectionType) ([]models.Connection, error) {
	return s.listByOwnerFn(ctx, ownerID, connType)
}
func (s *connRepoStub) ListByCaretaker(ctx context.Context, caretakerID uint) ([]models.Connection, error) {
	return s.listByCaretakerFn(ctx, caretakerID)
}
func (s *connRepoStub) CountByType(ctx context.Context, connType models.ConnectionType) (int64, error) {
	return s.countByTypeFn(ctx, connType)
}
