package models

import (
	"time"
)

// Pet represents a pet record owned by exactly one owner. Deletion is
// immediate and permanent; there is no soft delete for pets.
type Pet struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	OwnerID  uint    `gorm:"not null;index" json:"owner_id"`
	Name     string  `gorm:"not null" json:"name"`
	Type     string  `json:"type"`
	Breed    string  `json:"breed"`
	Age      int     `json:"age"`
	Weight   float64 `json:"weight"`
	PhotoURL string  `json:"photo_url"`
	Gender   string  `json:"gender"`
	Neutered bool    `json:"neutered"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PetUpdate carries a partial pet update. Nil pointers mean "field not
// provided" and leave the stored value untouched; a non-nil pointer to a zero
// value clears the field. The distinction matters for optional fields like
// breed and photo.
type PetUpdate struct {
	Name     *string  `json:"name"`
	Type     *string  `json:"type"`
	Breed    *string  `json:"breed"`
	Age      *int     `json:"age"`
	Weight   *float64 `json:"weight"`
	PhotoURL *string  `json:"photo_url"`
	Gender   *string  `json:"gender"`
	Neutered *bool    `json:"neutered"`
}

// Apply merges the update into the pet in place.
func (u PetUpdate) Apply(p *Pet) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Type != nil {
		p.Type = *u.Type
	}
	if u.Breed != nil {
		p.Breed = *u.Breed
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.Weight != nil {
		p.Weight = *u.Weight
	}
	if u.PhotoURL != nil {
		p.PhotoURL = *u.PhotoURL
	}
	if u.Gender != nil {
		p.Gender = *u.Gender
	}
	if u.Neutered != nil {
		p.Neutered = *u.Neutered
	}
}
