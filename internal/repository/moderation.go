package repository

import (
	"context"
	"errors"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"

	"gorm.io/gorm"
)

// ModerationRepository defines persistence operations for admin notes,
// moderation reports and the append-only audit log.
type ModerationRepository interface {
	CreateNote(ctx context.Context, note *models.AdminNote) error
	GetNotesForUser(ctx context.Context, userID uint) ([]models.AdminNote, error)

	CreateReport(ctx context.Context, report *models.ModerationReport) error
	GetReport(ctx context.Context, id uint) (*models.ModerationReport, error)
	ListReports(ctx context.Context, status models.ReportStatus, limit, offset int) ([]models.ModerationReport, int64, error)
	UpdateReport(ctx context.Context, report *models.ModerationReport) error

	AppendAuditEntry(ctx context.Context, entry *models.AuditLogEntry) error
	ListAuditEntries(ctx context.Context, adminID uint, limit, offset int) ([]models.AuditLogEntry, int64, error)
}

type moderationRepository struct {
	db *gorm.DB
}

// NewModerationRepository returns a new ModerationRepository implementation.
func NewModerationRepository(db *gorm.DB) ModerationRepository {
	return &moderationRepository{db: db}
}

func (r *moderationRepository) CreateNote(ctx context.Context, note *models.AdminNote) error {
	if err := r.db.WithContext(ctx).Create(note).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *moderationRepository) GetNotesForUser(ctx context.Context, userID uint) ([]models.AdminNote, error) {
	var notes []models.AdminNote
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return notes, nil
}

func (r *moderationRepository) CreateReport(ctx context.Context, report *models.ModerationReport) error {
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *moderationRepository) GetReport(ctx context.Context, id uint) (*models.ModerationReport, error) {
	var report models.ModerationReport
	if err := r.db.WithContext(ctx).First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Report", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &report, nil
}

func (r *moderationRepository) ListReports(ctx context.Context, status models.ReportStatus, limit, offset int) ([]models.ModerationReport, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.ModerationReport{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var reports []models.ModerationReport
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&reports).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return reports, total, nil
}

func (r *moderationRepository) UpdateReport(ctx context.Context, report *models.ModerationReport) error {
	if err := r.db.WithContext(ctx).Save(report).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// AppendAuditEntry writes a new audit row. Entries are never updated or
// deleted afterwards.
func (r *moderationRepository) AppendAuditEntry(ctx context.Context, entry *models.AuditLogEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *moderationRepository) ListAuditEntries(ctx context.Context, adminID uint, limit, offset int) ([]models.AuditLogEntry, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.AuditLogEntry{})
	if adminID != 0 {
		q = q.Where("admin_id = ?", adminID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var entries []models.AuditLogEntry
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return entries, total, nil
}
