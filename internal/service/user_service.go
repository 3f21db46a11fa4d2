// Package service implements the application's business logic layer.
package service

import (
	"context"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/repository"
)

// UserService provides profile business logic for owners and caretakers.
type UserService struct {
	userRepo      repository.UserRepository
	caretakerRepo repository.CaretakerRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, caretakerRepo repository.CaretakerRepository) *UserService {
	return &UserService{
		userRepo:      userRepo,
		caretakerRepo: caretakerRepo,
	}
}

// GetUser returns the user with the given ID.
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// RegisterUser creates a new user. The user type is fixed at registration
// and cannot change afterwards.
func (s *UserService) RegisterUser(ctx context.Context, user *models.User) error {
	if user.Email == "" {
		return models.NewValidationError("Email is required")
	}
	if user.UserType != models.UserTypeOwner && user.UserType != models.UserTypeCaretaker {
		return models.NewValidationError("User type must be owner or caretaker")
	}
	return s.userRepo.Create(ctx, user)
}

// UpdateProfile updates the profile fields of a user. The email, user type
// and admin flags are immutable through this path.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, updated *models.User) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.FirstName = updated.FirstName
	user.LastName = updated.LastName
	user.Phone = updated.Phone
	user.Street = updated.Street
	user.PLZ = updated.PLZ
	user.City = updated.City
	if updated.ProfilePhotoURL != "" {
		user.ProfilePhotoURL = updated.ProfilePhotoURL
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes the user and every dependent row.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.DeleteCascade(ctx, userID)
}

// GetCaretakerProfile returns the public caretaker profile for a user.
func (s *UserService) GetCaretakerProfile(ctx context.Context, userID uint) (*models.CaretakerProfile, error) {
	return s.caretakerRepo.GetByUserID(ctx, userID)
}

// SaveCaretakerProfile creates or replaces the caretaker profile of a user.
// Only users registered as caretakers may have one.
func (s *UserService) SaveCaretakerProfile(ctx context.Context, userID uint, profile *models.CaretakerProfile) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.UserType != models.UserTypeCaretaker {
		return models.NewValidationError("Only caretakers can have a caretaker profile")
	}

	profile.UserID = userID
	// Verification is admin-only; a profile save never changes it.
	if existing, err := s.caretakerRepo.GetByUserID(ctx, userID); err == nil {
		profile.IsVerified = existing.IsVerified
		profile.VerifiedBy = existing.VerifiedBy
		profile.Rating = existing.Rating
		profile.ReviewCount = existing.ReviewCount
	} else {
		profile.IsVerified = false
		profile.VerifiedBy = nil
	}

	return s.caretakerRepo.Save(ctx, profile)
}
