// Package memory provides in-memory repository implementations. They back
// the offline development mode and the handler tests, and honor the same
// contracts as the database-backed repositories.
package memory

import (
	"sync"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"
)

// Store holds all in-memory tables behind a single lock. The repositories
// share one store so cascading deletes stay consistent.
type Store struct {
	mu sync.RWMutex

	users       map[uint]models.User
	pets        map[uint]models.Pet
	profiles    map[uint]models.CaretakerProfile // keyed by user ID
	preferences map[uint]models.OwnerPreferences // keyed by owner ID
	connections map[uint]models.Connection
	notes       map[uint]models.AdminNote
	reports     map[uint]models.ModerationReport
	auditLog    []models.AuditLogEntry
	postalCodes map[string][]string // PLZ -> cities

	nextUserID       uint
	nextPetID        uint
	nextProfileID    uint
	nextPrefsID      uint
	nextConnectionID uint
	nextNoteID       uint
	nextReportID     uint
	nextAuditID      uint
}

// NewStore returns an empty in-memory store.
func NewStore() *Store {
	return &Store{
		users:       make(map[uint]models.User),
		pets:        make(map[uint]models.Pet),
		profiles:    make(map[uint]models.CaretakerProfile),
		preferences: make(map[uint]models.OwnerPreferences),
		connections: make(map[uint]models.Connection),
		notes:       make(map[uint]models.AdminNote),
		reports:     make(map[uint]models.ModerationReport),
		postalCodes: make(map[string][]string),
	}
}
