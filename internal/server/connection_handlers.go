package server

import (
	"github.com/gofiber/fiber/v2"
)

// SaveCaretaker records an engagement with a caretaker (idempotent).
func (s *Server) SaveCaretaker(c *fiber.Ctx) error {
	caretakerID, err := s.parseID(c, "caretakerId")
	if err != nil {
		return nil
	}

	if err := s.connectionService.SaveCaretaker(c.UserContext(), s.userID(c), caretakerID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"saved": true})
}

// RemoveCaretaker deletes the connection to a caretaker regardless of type.
func (s *Server) RemoveCaretaker(c *fiber.Ctx) error {
	caretakerID, err := s.parseID(c, "caretakerId")
	if err != nil {
		return nil
	}

	if err := s.connectionService.RemoveCaretaker(c.UserContext(), s.userID(c), caretakerID); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleFavorite bookmarks or un-bookmarks a caretaker.
func (s *Server) ToggleFavorite(c *fiber.Ctx) error {
	caretakerID, err := s.parseID(c, "caretakerId")
	if err != nil {
		return nil
	}

	favorite, err := s.connectionService.ToggleFavorite(c.UserContext(), s.userID(c), caretakerID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"favorite": favorite})
}

// GetConnectionStatus reports the relationship between the authenticated
// owner and one caretaker.
func (s *Server) GetConnectionStatus(c *fiber.Ctx) error {
	caretakerID, err := s.parseID(c, "caretakerId")
	if err != nil {
		return nil
	}

	ctx := c.UserContext()
	ownerID := s.userID(c)
	favorite, err := s.connectionService.IsFavorite(ctx, ownerID, caretakerID)
	if err != nil {
		return respondServiceError(c, err)
	}
	saved, err := s.connectionService.IsCaretakerSaved(ctx, ownerID, caretakerID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"favorite": favorite, "saved": saved})
}

// GetFavoriteCaretakers lists the owner's bookmarked caretakers.
func (s *Server) GetFavoriteCaretakers(c *fiber.Ctx) error {
	summaries, err := s.connectionService.GetFavoriteCaretakers(c.UserContext(), s.userID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"caretakers": summaries})
}

// GetSavedCaretakers lists the owner's engaged caretakers.
func (s *Server) GetSavedCaretakers(c *fiber.Ctx) error {
	summaries, err := s.connectionService.GetSavedCaretakers(c.UserContext(), s.userID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"caretakers": summaries})
}

// GetMyClients returns the redacted client views for the authenticated
// caretaker's saved owners.
func (s *Server) GetMyClients(c *fiber.Ctx) error {
	views, err := s.connectionService.GetCaretakerClients(c.UserContext(), s.userID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"clients": views})
}
