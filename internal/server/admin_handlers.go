package server

import (
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardStats returns the admin dashboard rollup.
func (s *Server) GetDashboardStats(c *fiber.Ctx) error {
	return c.JSON(s.adminService.GetDashboardStats(c.UserContext()))
}

// AdminListUsers returns a page of users. Supports q (name/email search) and
// type (owner|caretaker) query parameters.
func (s *Server) AdminListUsers(c *fiber.Ctx) error {
	p := s.parsePagination(c)
	userType := models.UserType(c.Query("type"))
	if userType != "" && userType != models.UserTypeOwner && userType != models.UserTypeCaretaker {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid user type filter"))
	}

	users, total, err := s.adminService.ListUsers(c.UserContext(), c.Query("q"), userType, p.Page, p.PageSize)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"users":     users,
		"total":     total,
		"page":      p.Page,
		"page_size": p.PageSize,
	})
}

// AdminGetUser returns a user with their admin notes.
func (s *Server) AdminGetUser(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, notes, err := s.adminService.GetUserDetail(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"user": user, "notes": notes})
}

// DeleteUserRequest carries the reason for an admin account deletion.
type DeleteUserRequest struct {
	Reason string `json:"reason"`
}

// AdminDeleteUser removes a user account and all dependent data.
func (s *Server) AdminDeleteUser(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req DeleteUserRequest
	// Body is optional; a missing reason is recorded as empty.
	_ = c.BodyParser(&req)

	if err := s.adminService.DeleteUser(c.UserContext(), s.userID(c), userID, req.Reason, c.IP()); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddNoteRequest carries an admin note.
type AddNoteRequest struct {
	Category string `json:"category"`
	Content  string `json:"content"`
}

// AdminAddNote attaches a note to a user's admin record.
func (s *Server) AdminAddNote(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req AddNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	note, err := s.adminService.AddNote(c.UserContext(), s.userID(c), userID, req.Category, req.Content)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}

// AdminVerifyCaretaker marks a caretaker profile as verified.
func (s *Server) AdminVerifyCaretaker(c *fiber.Ctx) error {
	caretakerID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.adminService.VerifyCaretaker(c.UserContext(), s.userID(c), caretakerID, c.IP()); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"verified": true})
}

// SubmitReportRequest carries a moderation report from a user.
type SubmitReportRequest struct {
	ReportedUserID uint   `json:"reported_user_id"`
	Category       string `json:"category"`
	Content        string `json:"content"`
}

// SubmitReport files a moderation report against another user.
func (s *Server) SubmitReport(c *fiber.Ctx) error {
	var req SubmitReportRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	report, err := s.adminService.SubmitReport(c.UserContext(), s.userID(c), req.ReportedUserID, req.Category, req.Content)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(report)
}

// AdminListReports returns a page of moderation reports. The status query
// parameter filters by open, resolved or dismissed.
func (s *Server) AdminListReports(c *fiber.Ctx) error {
	p := s.parsePagination(c)
	status := models.ReportStatus(c.Query("status"))
	switch status {
	case "", models.ReportStatusOpen, models.ReportStatusResolved, models.ReportStatusDismissed:
	default:
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid report status filter"))
	}

	reports, total, err := s.adminService.ListReports(c.UserContext(), status, p.Page, p.PageSize)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"reports":   reports,
		"total":     total,
		"page":      p.Page,
		"page_size": p.PageSize,
	})
}

// ResolveReportRequest carries the closing status for a report.
type ResolveReportRequest struct {
	Status models.ReportStatus `json:"status"`
}

// AdminResolveReport closes an open report as resolved or dismissed.
func (s *Server) AdminResolveReport(c *fiber.Ctx) error {
	reportID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req ResolveReportRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	report, err := s.adminService.ResolveReport(c.UserContext(), s.userID(c), reportID, req.Status, c.IP())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(report)
}

// AdminListAuditLog returns a page of audit entries. The admin_id query
// parameter restricts the log to one actor.
func (s *Server) AdminListAuditLog(c *fiber.Ctx) error {
	p := s.parsePagination(c)
	var adminID uint
	if raw := c.Query("admin_id"); raw != "" {
		id, err := parseUint(raw)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid admin_id"))
		}
		adminID = id
	}

	entries, total, err := s.adminService.ListAuditLog(c.UserContext(), adminID, p.Page, p.PageSize)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"entries":   entries,
		"total":     total,
		"page":      p.Page,
		"page_size": p.PageSize,
	})
}
