package memory

import (
	"context"
	"sort"
	"time"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/repository"
)

type moderationRepository struct {
	store *Store
}

// NewModerationRepository returns an in-memory ModerationRepository backed by store.
func NewModerationRepository(store *Store) repository.ModerationRepository {
	return &moderationRepository{store: store}
}

func (r *moderationRepository) CreateNote(_ context.Context, note *models.AdminNote) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextNoteID++
	note.ID = r.store.nextNoteID
	note.CreatedAt = time.Now()
	r.store.notes[note.ID] = *note
	return nil
}

func (r *moderationRepository) GetNotesForUser(_ context.Context, userID uint) ([]models.AdminNote, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var notes []models.AdminNote
	for _, note := range r.store.notes {
		if note.UserID == userID {
			notes = append(notes, note)
		}
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})
	return notes, nil
}

func (r *moderationRepository) CreateReport(_ context.Context, report *models.ModerationReport) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextReportID++
	report.ID = r.store.nextReportID
	if report.Status == "" {
		report.Status = models.ReportStatusOpen
	}
	report.CreatedAt = time.Now()
	r.store.reports[report.ID] = *report
	return nil
}

func (r *moderationRepository) GetReport(_ context.Context, id uint) (*models.ModerationReport, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	report, ok := r.store.reports[id]
	if !ok {
		return nil, models.NewNotFoundError("Report", id)
	}
	return &report, nil
}

func (r *moderationRepository) ListReports(_ context.Context, status models.ReportStatus, limit, offset int) ([]models.ModerationReport, int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var reports []models.ModerationReport
	for _, report := range r.store.reports {
		if status != "" && report.Status != status {
			continue
		}
		reports = append(reports, report)
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})

	total := int64(len(reports))
	if offset >= len(reports) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(reports) {
		end = len(reports)
	}
	return reports[offset:end], total, nil
}

func (r *moderationRepository) UpdateReport(_ context.Context, report *models.ModerationReport) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.reports[report.ID]; !ok {
		return models.NewNotFoundError("Report", report.ID)
	}
	r.store.reports[report.ID] = *report
	return nil
}

func (r *moderationRepository) AppendAuditEntry(_ context.Context, entry *models.AuditLogEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextAuditID++
	entry.ID = r.store.nextAuditID
	entry.CreatedAt = time.Now()
	r.store.auditLog = append(r.store.auditLog, *entry)
	return nil
}

func (r *moderationRepository) ListAuditEntries(_ context.Context, adminID uint, limit, offset int) ([]models.AuditLogEntry, int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var entries []models.AuditLogEntry
	for _, entry := range r.store.auditLog {
		if adminID != 0 && entry.ActorID != adminID {
			continue
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	total := int64(len(entries))
	if offset >= len(entries) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(entries) {
		end = len(entries)
	}
	return entries[offset:end], total, nil
}
