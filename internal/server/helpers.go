package server

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// Pagination holds parsed page/page_size query parameters. Pages are
// 1-indexed to match the UI.
type Pagination struct {
	Page     int
	PageSize int
}

const maxPageSize = 100

// parsePagination extracts page and page_size query parameters.
func (s *Server) parsePagination(c *fiber.Ctx) Pagination {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	size := c.QueryInt("page_size", s.config.PageSize)
	if size <= 0 {
		size = s.config.PageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	return Pagination{Page: page, PageSize: size}
}

// parseID extracts a route parameter by name as a positive uint. On failure
// it writes a 400 JSON response and returns errResponseWritten; callers
// should check: if err != nil { return nil }.
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// humanizeParam converts a route param name into a human-readable label.
// Examples: "id" -> "ID", "caretakerId" -> "caretaker ID".
func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	if strings.HasSuffix(param, "Id") {
		return strings.ToLower(param[:len(param)-2]) + " ID"
	}
	return param
}

// parseUint parses a positive uint from a query parameter value.
func parseUint(raw string) (uint, error) {
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		return 0, errors.New("invalid unsigned integer")
	}
	return uint(v), nil
}

// userID returns the authenticated user ID placed in locals by AuthRequired.
func (s *Server) userID(c *fiber.Ctx) uint {
	return c.Locals("userID").(uint)
}

// isAdminByUserID checks whether the given user has admin privileges. It
// goes through the user repository so offline mode works the same way.
func (s *Server) isAdminByUserID(ctx context.Context, userID uint) (bool, error) {
	user, err := s.repos.Users.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.IsAdmin, nil
}

// respondServiceError maps an AppError code to the matching HTTP status.
func respondServiceError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "NOT_FOUND":
			status = fiber.StatusNotFound
		case "VALIDATION_ERROR":
			status = fiber.StatusBadRequest
		case "UNAUTHORIZED":
			status = fiber.StatusForbidden
		case "CONFLICT":
			status = fiber.StatusConflict
		}
	}
	return models.RespondWithError(c, status, err)
}
