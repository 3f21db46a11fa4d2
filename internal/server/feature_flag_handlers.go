package server

import "github.com/gofiber/fiber/v2"

// GetFeatureFlags returns the configured flag values plus their evaluation
// for the authenticated user, so the frontend can gate UI in one request.
func (s *Server) GetFeatureFlags(c *fiber.Ctx) error {
	userID := s.userID(c)

	raw := map[string]string{}
	evaluated := map[string]bool{}
	if s.featureFlags != nil {
		raw = s.featureFlags.Raw()
		evaluated = s.featureFlags.Snapshot(userID)
	}

	return c.JSON(fiber.Map{
		"raw":       raw,
		"evaluated": evaluated,
	})
}
