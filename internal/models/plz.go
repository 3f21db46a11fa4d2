package models

// PostalCode maps a German postal code to a city. A PLZ can map to multiple
// cities, so (plz, city) is the unique pair.
type PostalCode struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	PLZ  string `gorm:"column:plz;not null;uniqueIndex:idx_plz_city" json:"plz"`
	City string `gorm:"not null;uniqueIndex:idx_plz_city" json:"city"`
}

// TableName specifies the table name for GORM
func (PostalCode) TableName() string {
	return "postal_codes"
}
