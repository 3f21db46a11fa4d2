package models

import (
	"time"
)

// ReportStatus is the lifecycle state of a moderation report.
type ReportStatus string

const (
	ReportStatusOpen      ReportStatus = "open"
	ReportStatusResolved  ReportStatus = "resolved"
	ReportStatusDismissed ReportStatus = "dismissed"
)

// AdminNote is an append-only note an admin attaches to a user. Notes are
// never edited or deleted after creation.
type AdminNote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	ActorID   uint      `gorm:"not null" json:"actor_id"`
	Category  string    `json:"category"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ModerationReport is a user-submitted report about another user or a piece
// of content.
type ModerationReport struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	ReporterID     uint         `gorm:"not null;index" json:"reporter_id"`
	ReportedUserID uint         `gorm:"not null;index" json:"reported_user_id"`
	Category       string       `json:"category"`
	Content        string       `gorm:"type:text" json:"content"`
	Status         ReportStatus `gorm:"type:varchar(20);default:'open';index" json:"status"`
	ResolvedBy     *uint        `json:"resolved_by,omitempty"`
	ResolvedAt     *time.Time   `json:"resolved_at,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
}

// AuditLogEntry records an admin action. Entries are append-only; the IP is
// filled in best-effort by the geoip helper and stays nil when lookup fails.
type AuditLogEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EntryID   string    `gorm:"type:varchar(36);uniqueIndex" json:"entry_id"`
	ActorID   uint      `gorm:"not null;index" json:"actor_id"`
	Action    string    `gorm:"not null" json:"action"`
	TargetID  *uint     `json:"target_id,omitempty"`
	Category  string    `json:"category"`
	Content   string    `gorm:"type:text" json:"content"`
	IPAddress *string   `json:"ip_address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (AuditLogEntry) TableName() string {
	return "audit_log_entries"
}

// DashboardStats is the admin dashboard rollup. Loading failures degrade to
// zero values instead of errors; callers never see an error path.
type DashboardStats struct {
	TotalUsers       int64 `json:"total_users"`
	TotalOwners      int64 `json:"total_owners"`
	TotalCaretakers  int64 `json:"total_caretakers"`
	TotalPets        int64 `json:"total_pets"`
	TotalConnections int64 `json:"total_connections"`
	NewUsersThisWeek int64 `json:"new_users_this_week"`
	OpenReports      int64 `json:"open_reports"`
}
