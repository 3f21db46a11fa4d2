package server

import (
	"strconv"
	"strings"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SearchCaretakers runs the public caretaker search. Filters arrive as query
// parameters: location, min_price, max_price, min_rating, services (comma
// separated, OR semantics), page, page_size.
func (s *Server) SearchCaretakers(c *fiber.Ctx) error {
	p := s.parsePagination(c)
	filter := models.SearchFilter{
		Location: strings.TrimSpace(c.Query("location")),
		Page:     p.Page,
		PageSize: p.PageSize,
	}

	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid min_price"))
		}
		filter.MinPrice = &v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid max_price"))
		}
		filter.MaxPrice = &v
	}
	if raw := c.Query("min_rating"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid min_rating"))
		}
		filter.MinRating = &v
	}
	if raw := c.Query("services"); raw != "" {
		for _, svc := range strings.Split(raw, ",") {
			if svc = strings.TrimSpace(svc); svc != "" {
				filter.Services = append(filter.Services, svc)
			}
		}
	}

	result, err := s.searchService.Search(c.UserContext(), filter)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(result)
}
