package seed

import (
	"fmt"
	"log"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder.
type Options struct {
	NumOwners     int
	NumCaretakers int
	ShouldClean   bool
	DryRun        bool
	// MaxDays spreads created_at timestamps over this many past days.
	MaxDays int
}

// Seed populates the database with test data: owners with pets and
// preferences, caretakers with profiles, a connection mesh between them, and
// the PLZ directory.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d owners and %d caretakers...", opts.NumOwners, opts.NumCaretakers)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	factory := NewFactory(db, opts)

	if err := factory.CreatePostalCodes(); err != nil {
		return fmt.Errorf("failed to seed postal codes: %w", err)
	}

	owners := make([]*models.User, 0, opts.NumOwners)
	for i := 0; i < opts.NumOwners; i++ {
		owner, err := factory.CreateOwner()
		if err != nil {
			return fmt.Errorf("failed to create owner: %w", err)
		}
		owners = append(owners, owner)

		numPets := 1 + factory.rng.Intn(3)
		for p := 0; p < numPets; p++ {
			if _, err := factory.CreatePet(owner); err != nil {
				return fmt.Errorf("failed to create pet: %w", err)
			}
		}
		if _, err := factory.CreatePreferences(owner); err != nil {
			return fmt.Errorf("failed to create preferences: %w", err)
		}
	}
	log.Printf("✓ %d owners created with pets and preferences", len(owners))

	caretakers := make([]*models.User, 0, opts.NumCaretakers)
	for i := 0; i < opts.NumCaretakers; i++ {
		caretaker, err := factory.CreateCaretaker()
		if err != nil {
			return fmt.Errorf("failed to create caretaker: %w", err)
		}
		caretakers = append(caretakers, caretaker)
	}
	log.Printf("✓ %d caretakers created", len(caretakers))

	connected := 0
	for _, owner := range owners {
		if len(caretakers) == 0 {
			break
		}
		// Each owner bookmarks or engages up to three caretakers.
		n := factory.rng.Intn(4)
		seen := map[uint]bool{}
		for c := 0; c < n; c++ {
			caretaker := caretakers[factory.rng.Intn(len(caretakers))]
			if seen[caretaker.ID] {
				continue
			}
			seen[caretaker.ID] = true

			connType := models.ConnectionTypeFavorite
			if factory.rng.Intn(2) == 0 {
				connType = models.ConnectionTypeCaretaker
			}
			if err := factory.CreateConnection(owner, caretaker, connType); err != nil {
				return fmt.Errorf("failed to create connection: %w", err)
			}
			connected++
		}
	}
	log.Printf("✓ %d connections created", connected)

	log.Println("🌱 Seeding complete")
	return nil
}

// clearData removes all seedable rows. Order matters for foreign keys.
func clearData(db *gorm.DB) error {
	tables := []any{
		&models.Connection{},
		&models.Pet{},
		&models.OwnerPreferences{},
		&models.CaretakerProfile{},
		&models.AdminNote{},
		&models.ModerationReport{},
		&models.AuditLogEntry{},
		&models.User{},
		&models.PostalCode{},
	}
	for _, table := range tables {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return err
		}
	}
	return nil
}
