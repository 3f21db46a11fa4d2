// Command main runs the database seeder.
package main

import (
	"flag"
	"log"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/config"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/database"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/seed"
)

func main() {
	numOwners := flag.Int("owners", 30, "Number of pet owners to create")
	numCaretakers := flag.Int("caretakers", 15, "Number of caretakers to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	dryRun := flag.Bool("dry-run", false, "Log what would be created without writing")
	maxDays := flag.Int("max-days", 90, "Spread created_at over this many past days")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d owners, %d caretakers, clean=%v, dry-run=%v\n",
		*numOwners, *numCaretakers, *shouldClean, *dryRun)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumOwners:     *numOwners,
		NumCaretakers: *numCaretakers,
		ShouldClean:   *shouldClean,
		DryRun:        *dryRun,
		MaxDays:       *maxDays,
	}); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
}
