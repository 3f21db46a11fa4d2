// Package main provides admin management utilities.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/config"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/database"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/repository"

	"gorm.io/gorm"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  go run ./cmd/admin promote <user_id|email> [role]  - Promote user to admin")
		fmt.Println("  go run ./cmd/admin demote <user_id|email>          - Demote user from admin")
		fmt.Println("  go run ./cmd/admin list-admins                     - List all admins")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	command := os.Args[1]

	switch command {
	case "promote":
		if len(os.Args) < 3 {
			fmt.Println("Usage: go run ./cmd/admin promote <user_id|email> [role]")
			os.Exit(1)
		}
		role := "moderator"
		if len(os.Args) > 3 {
			role = os.Args[3]
		}
		promoteToAdmin(db, os.Args[2], role)

	case "demote":
		if len(os.Args) < 3 {
			fmt.Println("Usage: go run ./cmd/admin demote <user_id|email>")
			os.Exit(1)
		}
		demoteFromAdmin(db, os.Args[2])

	case "list-admins":
		listAdmins(db)

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}

// findUser resolves a user by numeric ID or, when the argument contains an
// "@", by email address.
func findUser(db *gorm.DB, ref string) (*models.User, error) {
	if strings.Contains(ref, "@") {
		user, err := repository.NewUserRepository(db).GetByEmail(context.Background(), ref)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, gorm.ErrRecordNotFound
		}
		return user, nil
	}
	var user models.User
	if err := db.First(&user, ref).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func promoteToAdmin(db *gorm.DB, ref, role string) {
	user, err := findUser(db, ref)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fmt.Printf("User %s not found\n", ref)
		} else {
			log.Fatalf("Database error: %v", err)
		}
		os.Exit(1)
	}

	if user.IsAdmin {
		fmt.Printf("User %s (ID: %d) is already an admin\n", user.Email, user.ID)
		return
	}

	user.IsAdmin = true
	user.AdminRole = role
	if err := db.Save(user).Error; err != nil {
		log.Fatalf("Failed to promote user: %v", err)
	}

	fmt.Printf("✅ Successfully promoted %s (ID: %d) to admin with role %s\n", user.Email, user.ID, role)
}

func demoteFromAdmin(db *gorm.DB, ref string) {
	user, err := findUser(db, ref)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fmt.Printf("User %s not found\n", ref)
		} else {
			log.Fatalf("Database error: %v", err)
		}
		os.Exit(1)
	}

	if !user.IsAdmin {
		fmt.Printf("User %s (ID: %d) is not an admin\n", user.Email, user.ID)
		return
	}

	user.IsAdmin = false
	user.AdminRole = ""
	if err := db.Save(user).Error; err != nil {
		log.Fatalf("Failed to demote user: %v", err)
	}

	fmt.Printf("✅ Successfully demoted %s (ID: %d) from admin\n", user.Email, user.ID)
}

func listAdmins(db *gorm.DB) {
	var admins []models.User
	if err := db.Where("is_admin = ?", true).Find(&admins).Error; err != nil {
		log.Fatalf("Failed to fetch admins: %v", err)
	}

	if len(admins) == 0 {
		fmt.Println("No admins found in the system")
		return
	}

	fmt.Println("\n📋 Current Admins:")
	fmt.Println("─────────────────────────────────────")
	for _, admin := range admins {
		fmt.Printf("ID: %d | Email: %s | Role: %s\n", admin.ID, admin.Email, admin.AdminRole)
	}
	fmt.Println("─────────────────────────────────────")
}
