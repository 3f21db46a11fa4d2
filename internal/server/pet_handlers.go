package server

import (
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetMyPets returns every pet of the authenticated owner.
func (s *Server) GetMyPets(c *fiber.Ctx) error {
	pets, err := s.petService.GetPets(c.UserContext(), s.userID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"pets": pets})
}

// AddPet creates a pet for the authenticated owner.
func (s *Server) AddPet(c *fiber.Ctx) error {
	var req models.Pet
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	pet, err := s.petService.AddPet(c.UserContext(), s.userID(c), &req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(pet)
}

// UpdatePet applies a partial update to one of the owner's pets.
func (s *Server) UpdatePet(c *fiber.Ctx) error {
	petID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req models.PetUpdate
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	pet, err := s.petService.UpdatePet(c.UserContext(), s.userID(c), petID, req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(pet)
}

// DeletePet removes one of the owner's pets permanently.
func (s *Server) DeletePet(c *fiber.Ctx) error {
	petID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.petService.DeletePet(c.UserContext(), s.userID(c), petID); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
