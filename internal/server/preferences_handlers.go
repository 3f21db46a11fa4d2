package server

import (
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetPreferences returns the owner's preferences, defaults when unset.
func (s *Server) GetPreferences(c *fiber.Ctx) error {
	prefs, err := s.preferencesService.GetPreferences(c.UserContext(), s.userID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(prefs)
}

// SaveServicesRequest carries the owner's requested services.
type SaveServicesRequest struct {
	Services      []string `json:"services"`
	OtherServices string   `json:"other_services"`
}

// SaveServices replaces the owner's requested services.
func (s *Server) SaveServices(c *fiber.Ctx) error {
	var req SaveServicesRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	prefs, err := s.preferencesService.SaveServices(c.UserContext(), s.userID(c), req.Services, req.OtherServices)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(prefs)
}

// SaveVetInfo replaces the owner's veterinarian block.
func (s *Server) SaveVetInfo(c *fiber.Ctx) error {
	var req models.VetInfo
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	prefs, err := s.preferencesService.SaveVetInfo(c.UserContext(), s.userID(c), req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(prefs)
}

// SaveEmergencyContact replaces the owner's emergency contact.
func (s *Server) SaveEmergencyContact(c *fiber.Ctx) error {
	var req models.EmergencyContact
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	prefs, err := s.preferencesService.SaveEmergencyContact(c.UserContext(), s.userID(c), req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(prefs)
}

// SaveCareInstructionsRequest carries the free-text care instructions.
type SaveCareInstructionsRequest struct {
	CareInstructions string `json:"care_instructions"`
}

// SaveCareInstructions replaces the owner's care instructions.
func (s *Server) SaveCareInstructions(c *fiber.Ctx) error {
	var req SaveCareInstructionsRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	prefs, err := s.preferencesService.SaveCareInstructions(c.UserContext(), s.userID(c), req.CareInstructions)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(prefs)
}

// UpdateShareSettings applies a partial share-settings update. Values may
// arrive in legacy representations (booleans, "true"/"1" strings, numbers)
// and are coerced; keys not present stay untouched.
func (s *Server) UpdateShareSettings(c *fiber.Ctx) error {
	var req map[string]any
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	prefs, err := s.preferencesService.UpdateShareSettings(c.UserContext(), s.userID(c), req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(prefs)
}
