package models

import (
	"time"
)

// ConnectionType is the relationship state between an owner and a caretaker.
type ConnectionType string

const (
	// ConnectionTypeFavorite marks a bookmarked caretaker.
	ConnectionTypeFavorite ConnectionType = "favorite"
	// ConnectionTypeCaretaker marks an engaged caretaker (saved from chat).
	// Once a pair reaches this state it can never go back to favorite.
	ConnectionTypeCaretaker ConnectionType = "caretaker"
)

// Connection is the single relationship row between one owner and one
// caretaker. The composite unique index guarantees at most one row per pair;
// the favorite/caretaker exclusivity is enforced in ConnectionService and by
// the repository's refusal to downgrade an existing row to favorite.
type Connection struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	OwnerID     uint           `gorm:"not null;uniqueIndex:idx_owner_caretaker" json:"owner_id"`
	CaretakerID uint           `gorm:"not null;uniqueIndex:idx_owner_caretaker" json:"caretaker_id"`
	Type        ConnectionType `gorm:"column:connection_type;type:varchar(20);not null;index" json:"connection_type"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`

	Owner     User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Caretaker User `gorm:"foreignKey:CaretakerID" json:"caretaker,omitempty"`
}

// TableName specifies the table name for GORM
func (Connection) TableName() string {
	return "owner_caretaker_connections"
}
