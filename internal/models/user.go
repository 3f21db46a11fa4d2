// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// UserType distinguishes pet owners from caretakers.
type UserType string

const (
	// UserTypeOwner is a user who owns pets and books care services.
	UserTypeOwner UserType = "owner"
	// UserTypeCaretaker is a user who offers care services.
	UserTypeCaretaker UserType = "caretaker"
)

// User represents a registered user of the marketplace. Identity (login,
// password) lives with the external auth provider; this row only mirrors the
// profile data the application owns.
type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Email           string    `gorm:"unique;not null" json:"email"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	UserType        UserType  `gorm:"type:varchar(20);not null;index" json:"user_type"`
	Phone           string    `json:"phone"`
	Street          string    `json:"street"`
	PLZ             string    `gorm:"column:plz;index" json:"plz"`
	City            string    `gorm:"index" json:"city"`
	ProfilePhotoURL string    `json:"profile_photo_url"`
	IsAdmin         bool      `gorm:"default:false" json:"is_admin"`
	AdminRole       string    `json:"admin_role,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Pets             []Pet             `gorm:"foreignKey:OwnerID" json:"pets,omitempty"`
	CaretakerProfile *CaretakerProfile `gorm:"foreignKey:UserID" json:"caretaker_profile,omitempty"`
}

// DisplayName returns the public short form of a user's name: first name plus
// last-name initial. Full last names are never exposed in list or search
// contexts.
func (u *User) DisplayName() string {
	first := u.FirstName
	last := []rune(u.LastName)
	switch {
	case first != "" && len(last) > 0:
		return first + " " + string(last[0]) + "."
	case first != "":
		return first
	default:
		return "Unbekannt"
	}
}
