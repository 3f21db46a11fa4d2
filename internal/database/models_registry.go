package database

import "github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Pet{},
		&models.CaretakerProfile{},
		&models.OwnerPreferences{},
		&models.Connection{},
		&models.AdminNote{},
		&models.ModerationReport{},
		&models.AuditLogEntry{},
		&models.PostalCode{},
	}
}
