package server

import (
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
)

// RegisterUserRequest is the payload for creating a user profile. Identity
// (login, password) lives with the external auth provider.
type RegisterUserRequest struct {
	Email     string          `json:"email"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	UserType  models.UserType `json:"user_type"`
	Phone     string          `json:"phone"`
	Street    string          `json:"street"`
	PLZ       string          `json:"plz"`
	City      string          `json:"city"`
}

// RegisterUser creates a new user profile row.
func (s *Server) RegisterUser(c *fiber.Ctx) error {
	var req RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user := &models.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		UserType:  req.UserType,
		Phone:     req.Phone,
		Street:    req.Street,
		PLZ:       req.PLZ,
		City:      req.City,
	}
	s.autofillCity(c, user)
	if err := s.userService.RegisterUser(c.UserContext(), user); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// GetMyProfile returns the authenticated user's profile.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetUser(c.UserContext(), s.userID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// UpdateMyProfile updates the authenticated user's profile fields.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req models.User
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	s.autofillCity(c, &req)
	user, err := s.userService.UpdateProfile(c.UserContext(), s.userID(c), &req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// autofillCity resolves the city from the postal code when the client sent a
// PLZ without a city. Best effort: an unknown or malformed code leaves the
// city empty for free-text entry.
func (s *Server) autofillCity(c *fiber.Ctx, user *models.User) {
	if user.City != "" || user.PLZ == "" {
		return
	}
	cities, err := s.plzService.LookupCities(c.UserContext(), user.PLZ)
	if err != nil || len(cities) == 0 {
		return
	}
	user.City = cities[0]
}

// DeleteMyAccount removes the authenticated user and all dependent data.
func (s *Server) DeleteMyAccount(c *fiber.Ctx) error {
	if err := s.userService.DeleteAccount(c.UserContext(), s.userID(c)); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetCaretakerProfile returns the public profile of one caretaker, projected
// through the search summary plus the long-form fields.
func (s *Server) GetCaretakerProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	profile, err := s.userService.GetCaretakerProfile(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"summary":          service.Summarize(profile),
		"long_about":       profile.LongAbout,
		"availability":     profile.Availability,
		"home_photos":      profile.HomePhotos,
		"qualifications":   profile.Qualifications,
		"languages":        profile.Languages,
		"experience_years": profile.ExperienceYears,
		"prices":           profile.Prices,
	})
}

// GetMyCaretakerProfile returns the authenticated caretaker's own profile.
func (s *Server) GetMyCaretakerProfile(c *fiber.Ctx) error {
	profile, err := s.userService.GetCaretakerProfile(c.UserContext(), s.userID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// SaveMyCaretakerProfile creates or replaces the authenticated caretaker's profile.
func (s *Server) SaveMyCaretakerProfile(c *fiber.Ctx) error {
	var req models.CaretakerProfile
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.userService.SaveCaretakerProfile(c.UserContext(), s.userID(c), &req); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(req)
}
