package server

import (
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

// LookupPLZ returns the cities for a postal code.
func (s *Server) LookupPLZ(c *fiber.Ctx) error {
	plz := c.Params("plz")
	cities, err := s.plzService.LookupCities(c.UserContext(), plz)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"plz": plz, "cities": cities})
}

// AddPLZRequest carries one postal-code/city pair.
type AddPLZRequest struct {
	PLZ  string `json:"plz"`
	City string `json:"city"`
}

// AdminAddPLZ registers a postal-code/city mapping.
func (s *Server) AdminAddPLZ(c *fiber.Ctx) error {
	var req AddPLZRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.plzService.AddMapping(c.UserContext(), req.PLZ, req.City); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}
