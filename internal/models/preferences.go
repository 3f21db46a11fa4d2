package models

import (
	"time"
)

// VetInfo is the owner's veterinarian contact block, persisted as one JSON
// blob the way the legacy schema stored it.
type VetInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// EmergencyContact is the person to call when the owner is unreachable.
type EmergencyContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// OwnerPreferences is the one-to-one preferences row of an owner: which
// services they are looking for, vet and emergency data, free-text care
// instructions, and the share settings gating all of it.
type OwnerPreferences struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OwnerID uint `gorm:"not null;uniqueIndex" json:"owner_id"`

	Services         []string         `gorm:"serializer:json" json:"services"`
	OtherServices    string           `json:"other_services"`
	VetInfo          VetInfo          `gorm:"serializer:json" json:"vet_info"`
	EmergencyContact EmergencyContact `gorm:"serializer:json" json:"emergency_contact"`
	CareInstructions string           `gorm:"type:text" json:"care_instructions"`
	ShareSettings    ShareSettings    `gorm:"type:text" json:"share_settings"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (OwnerPreferences) TableName() string {
	return "owner_preferences"
}
