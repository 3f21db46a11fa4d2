package models

import (
	"time"
)

// CaretakerProfile is the one-to-one extension of a caretaker user. The
// per-service price map is stored as it arrives from clients: values may be
// numbers, numeric strings, or empty strings. Price resolution is performed at
// read time (see service.ResolveBestPrice), never on write.
type CaretakerProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex" json:"user_id"`

	Services       []string            `gorm:"serializer:json" json:"services"`
	Prices         map[string]any      `gorm:"serializer:json" json:"prices"`
	HourlyRate     float64             `json:"hourly_rate"`
	ServiceRadius  int                 `json:"service_radius"`
	Availability   map[string][]string `gorm:"serializer:json" json:"availability"`
	HomePhotos     []string            `gorm:"serializer:json" json:"home_photos"`
	Qualifications []string            `gorm:"serializer:json" json:"qualifications"`
	Languages      []string            `gorm:"serializer:json" json:"languages"`
	ShortAbout     string              `json:"short_about"`
	LongAbout      string              `gorm:"type:text" json:"long_about"`
	ExperienceYears int                `json:"experience_years"`

	IsVerified  bool    `gorm:"default:false" json:"is_verified"`
	VerifiedBy  *uint   `json:"verified_by,omitempty"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

// TableName specifies the table name for GORM
func (CaretakerProfile) TableName() string {
	return "caretaker_profiles"
}

// CaretakerSummary is the search-result projection of a caretaker. Only the
// shortened display name is exposed, and DisplayRate carries the resolved
// best price.
type CaretakerSummary struct {
	ID            uint     `json:"id"`
	UserID        uint     `json:"user_id"`
	Name          string   `json:"name"`
	City          string   `json:"city"`
	PLZ           string   `json:"plz"`
	PhotoURL      string   `json:"photo_url"`
	Services      []string `json:"services"`
	DisplayRate   float64  `json:"display_rate"`
	ServiceRadius int      `json:"service_radius"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	IsVerified    bool     `json:"is_verified"`
	ShortAbout    string   `json:"short_about"`
}

// SearchFilter holds the supported caretaker search filters. Location matches
// city or postal code case-insensitively; Services uses OR semantics (at least
// one requested service must be offered).
type SearchFilter struct {
	Location  string   `json:"location"`
	MinPrice  *float64 `json:"min_price"`
	MaxPrice  *float64 `json:"max_price"`
	Services  []string `json:"services"`
	MinRating *float64 `json:"min_rating"`
	Page      int      `json:"page"`
	PageSize  int      `json:"page_size"`
}

// SearchResult is a page of caretaker summaries with pagination metadata for
// UI rendering. Page numbers are 1-indexed.
type SearchResult struct {
	Caretakers []CaretakerSummary `json:"caretakers"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}
