package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/geoip"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/middleware"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminService provides moderation and platform administration. Dashboard
// stats degrade to zeros when a count fails; admin UIs render partial data
// rather than erroring out. All other operations report errors normally and
// leave an audit trail.
type AdminService struct {
	db             *gorm.DB
	userRepo       repository.UserRepository
	caretakerRepo  repository.CaretakerRepository
	connRepo       repository.ConnectionRepository
	moderationRepo repository.ModerationRepository
	resolver       *geoip.Resolver
}

// NewAdminService returns a new AdminService. db may be nil in offline mode;
// dashboard stats then report zeros for the table counts.
func NewAdminService(
	db *gorm.DB,
	userRepo repository.UserRepository,
	caretakerRepo repository.CaretakerRepository,
	connRepo repository.ConnectionRepository,
	moderationRepo repository.ModerationRepository,
	resolver *geoip.Resolver,
) *AdminService {
	return &AdminService{
		db:             db,
		userRepo:       userRepo,
		caretakerRepo:  caretakerRepo,
		connRepo:       connRepo,
		moderationRepo: moderationRepo,
		resolver:       resolver,
	}
}

// ListUsers returns a page of users for the admin user browser.
func (s *AdminService) ListUsers(ctx context.Context, query string, userType models.UserType, page, pageSize int) ([]models.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	offset := (page - 1) * pageSize
	return s.userRepo.List(ctx, query, userType, pageSize, offset)
}

// GetUserDetail returns a user together with their admin notes.
func (s *AdminService) GetUserDetail(ctx context.Context, userID uint) (*models.User, []models.AdminNote, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	notes, err := s.moderationRepo.GetNotesForUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return user, notes, nil
}

// AddNote attaches an admin note to a user. Notes are append-only.
func (s *AdminService) AddNote(ctx context.Context, actorID, userID uint, category, content string) (*models.AdminNote, error) {
	if content == "" {
		return nil, models.NewValidationError("Note content is required")
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	note := &models.AdminNote{
		UserID:   userID,
		ActorID:  actorID,
		Category: category,
		Content:  content,
	}
	if err := s.moderationRepo.CreateNote(ctx, note); err != nil {
		return nil, err
	}
	s.audit(ctx, actorID, "add_note", &userID, category, content, "")
	return note, nil
}

// DeleteUser removes a user and every dependent row, with an audit entry.
func (s *AdminService) DeleteUser(ctx context.Context, actorID, userID uint, reason, ip string) error {
	if actorID == userID {
		return models.NewValidationError("Admins cannot delete their own account")
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	if err := s.userRepo.DeleteCascade(ctx, userID); err != nil {
		return err
	}
	s.audit(ctx, actorID, "delete_user", &userID, "account", reason, ip)
	return nil
}

// VerifyCaretaker marks a caretaker profile as verified by the acting admin.
func (s *AdminService) VerifyCaretaker(ctx context.Context, actorID, caretakerID uint, ip string) error {
	if _, err := s.caretakerRepo.GetByUserID(ctx, caretakerID); err != nil {
		return err
	}
	if err := s.caretakerRepo.SetVerified(ctx, caretakerID, actorID); err != nil {
		return err
	}
	s.audit(ctx, actorID, "verify_caretaker", &caretakerID, "verification", "", ip)
	return nil
}

// SubmitReport files a moderation report against a user.
func (s *AdminService) SubmitReport(ctx context.Context, reporterID, reportedUserID uint, category, content string) (*models.ModerationReport, error) {
	if reporterID == reportedUserID {
		return nil, models.NewValidationError("Cannot report yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, reportedUserID); err != nil {
		return nil, err
	}

	report := &models.ModerationReport{
		ReporterID:     reporterID,
		ReportedUserID: reportedUserID,
		Category:       category,
		Content:        content,
		Status:         models.ReportStatusOpen,
	}
	if err := s.moderationRepo.CreateReport(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// ListReports returns a page of moderation reports, optionally filtered by status.
func (s *AdminService) ListReports(ctx context.Context, status models.ReportStatus, page, pageSize int) ([]models.ModerationReport, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	offset := (page - 1) * pageSize
	return s.moderationRepo.ListReports(ctx, status, pageSize, offset)
}

// ResolveReport closes an open report as resolved or dismissed.
func (s *AdminService) ResolveReport(ctx context.Context, actorID, reportID uint, status models.ReportStatus, ip string) (*models.ModerationReport, error) {
	if status != models.ReportStatusResolved && status != models.ReportStatusDismissed {
		return nil, models.NewValidationError("Status must be resolved or dismissed")
	}

	report, err := s.moderationRepo.GetReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report.Status != models.ReportStatusOpen {
		return nil, models.NewConflictError("Report is already closed")
	}

	now := time.Now()
	report.Status = status
	report.ResolvedBy = &actorID
	report.ResolvedAt = &now
	if err := s.moderationRepo.UpdateReport(ctx, report); err != nil {
		return nil, err
	}
	s.audit(ctx, actorID, "resolve_report", &reportID, "moderation", string(status), ip)
	return report, nil
}

// ListAuditLog returns a page of audit entries, optionally for one admin.
func (s *AdminService) ListAuditLog(ctx context.Context, adminID uint, page, pageSize int) ([]models.AuditLogEntry, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	offset := (page - 1) * pageSize
	return s.moderationRepo.ListAuditEntries(ctx, adminID, pageSize, offset)
}

// GetDashboardStats returns the admin dashboard rollup. Failing counts log
// and report zero instead of failing the dashboard.
func (s *AdminService) GetDashboardStats(ctx context.Context) models.DashboardStats {
	stats := models.DashboardStats{}

	stats.TotalUsers = s.count(ctx, &models.User{}, "", nil)
	stats.TotalOwners = s.count(ctx, &models.User{}, "user_type = ?", models.UserTypeOwner)
	stats.TotalCaretakers = s.count(ctx, &models.User{}, "user_type = ?", models.UserTypeCaretaker)
	stats.TotalPets = s.count(ctx, &models.Pet{}, "", nil)
	stats.NewUsersThisWeek = s.count(ctx, &models.User{}, "created_at > ?", time.Now().AddDate(0, 0, -7))

	if favorites, err := s.connRepo.CountByType(ctx, models.ConnectionTypeFavorite); err == nil {
		stats.TotalConnections += favorites
	}
	if saved, err := s.connRepo.CountByType(ctx, models.ConnectionTypeCaretaker); err == nil {
		stats.TotalConnections += saved
	}
	if _, open, err := s.moderationRepo.ListReports(ctx, models.ReportStatusOpen, 1, 0); err == nil {
		stats.OpenReports = open
	}

	return stats
}

func (s *AdminService) count(ctx context.Context, model any, cond string, arg any) int64 {
	if s.db == nil {
		return 0
	}
	q := s.db.WithContext(ctx).Model(model)
	if cond != "" {
		q = q.Where(cond, arg)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		middleware.Logger.WarnContext(ctx, "Dashboard count failed",
			slog.String("error", err.Error()),
		)
		return 0
	}
	return n
}

// audit appends an audit entry and kicks off a best-effort IP geolocation
// purely for the admin activity log. Neither failure reaches the caller.
func (s *AdminService) audit(ctx context.Context, actorID uint, action string, targetID *uint, category, content, ip string) {
	entry := &models.AuditLogEntry{
		EntryID:  uuid.NewString(),
		ActorID:  actorID,
		Action:   action,
		TargetID: targetID,
		Category: category,
		Content:  content,
	}
	if ip != "" {
		entry.IPAddress = &ip
	}
	if err := s.moderationRepo.AppendAuditEntry(ctx, entry); err != nil {
		middleware.Logger.ErrorContext(ctx, "Audit entry write failed",
			slog.String("action", action),
			slog.String("error", err.Error()),
		)
	}

	if s.resolver != nil && ip != "" {
		go func() {
			lookupCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if loc, err := s.resolver.Lookup(lookupCtx, ip); err == nil {
				middleware.Logger.Info("Admin action location",
					slog.String("action", action),
					slog.String("city", loc.City),
					slog.String("country", loc.Country),
				)
			}
		}()
	}
}
