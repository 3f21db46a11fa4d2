package repository

import (
	"context"
	"errors"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/observability"

	"gorm.io/gorm"
)

// ConnectionRepository defines persistence operations for the
// owner/caretaker connection graph. At most one row exists per
// (owner, caretaker) pair; the composite unique index enforces it.
type ConnectionRepository interface {
	// GetBetween returns the connection between owner and caretaker,
	// or (nil, nil) when none exists.
	GetBetween(ctx context.Context, ownerID, caretakerID uint) (*models.Connection, error)
	Create(ctx context.Context, conn *models.Connection) error
	// Promote upgrades an existing row to the caretaker type. A caretaker
	// connection is never downgraded back to favorite through this API.
	Promote(ctx context.Context, ownerID, caretakerID uint) error
	Delete(ctx context.Context, ownerID, caretakerID uint) error
	ListByOwner(ctx context.Context, ownerID uint, connType models.ConnectionType) ([]models.Connection, error)
	ListByCaretaker(ctx context.Context, caretakerID uint) ([]models.Connection, error)
	CountByType(ctx context.Context, connType models.ConnectionType) (int64, error)
}

type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository returns a new ConnectionRepository implementation.
func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

func (r *connectionRepository) GetBetween(ctx context.Context, ownerID, caretakerID uint) (*models.Connection, error) {
	var conn models.Connection
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND caretaker_id = ?", ownerID, caretakerID).
		First(&conn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &conn, nil
}

func (r *connectionRepository) Create(ctx context.Context, conn *models.Connection) error {
	if err := r.db.WithContext(ctx).Create(conn).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Connection already exists")
		}
		return models.NewInternalError(err)
	}
	observability.ConnectionOps.WithLabelValues("create", string(conn.Type)).Inc()
	return nil
}

func (r *connectionRepository) Promote(ctx context.Context, ownerID, caretakerID uint) error {
	res := r.db.WithContext(ctx).
		Model(&models.Connection{}).
		Where("owner_id = ? AND caretaker_id = ?", ownerID, caretakerID).
		Update("connection_type", models.ConnectionTypeCaretaker)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Connection", ownerID)
	}
	observability.ConnectionOps.WithLabelValues("promote", string(models.ConnectionTypeCaretaker)).Inc()
	return nil
}

func (r *connectionRepository) Delete(ctx context.Context, ownerID, caretakerID uint) error {
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND caretaker_id = ?", ownerID, caretakerID).
		Delete(&models.Connection{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	observability.ConnectionOps.WithLabelValues("delete", "").Inc()
	return nil
}

func (r *connectionRepository) ListByOwner(ctx context.Context, ownerID uint, connType models.ConnectionType) ([]models.Connection, error) {
	q := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if connType != "" {
		q = q.Where("connection_type = ?", connType)
	}
	var conns []models.Connection
	if err := q.Order("created_at DESC").Find(&conns).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return conns, nil
}

func (r *connectionRepository) ListByCaretaker(ctx context.Context, caretakerID uint) ([]models.Connection, error) {
	var conns []models.Connection
	if err := r.db.WithContext(ctx).
		Where("caretaker_id = ?", caretakerID).
		Order("created_at DESC").
		Find(&conns).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return conns, nil
}

func (r *connectionRepository) CountByType(ctx context.Context, connType models.ConnectionType) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Connection{}).
		Where("connection_type = ?", connType).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
