package main

import (
	"context"
	"fmt"
	"log"

	"github.com/you/attendsvc/domain"
	"github.com/you/attendsvc/internal/config"
	"github.com/you/attendsvc/internal/infrastructure/auth"
	"github.com/you/attendsvc/internal/infrastructure/database"
	"github.com/you/attendsvc/internal/infrastructure/repositories"
)

// Seeds the database with a default admin, two demo users and a handful
// of parties so a fresh install is usable immediately. Safe to run more
// than once: existing usernames and party names are skipped.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.AutoMigrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	ctx := context.Background()
	passwordSvc := auth.NewPasswordService()
	userRepo := repositories.NewUserRepository(gdb)
	partyRepo := repositories.NewPartyRepository(gdb)

	users := []struct {
		Username string
		Password string
		Name     string
		Email    string
		Role     string
	}{
		{"admin", "admin123", "Administrator", "admin@example.com", domain.RoleAdmin},
		{"john", "john123", "John Doe", "john@example.com", domain.RoleUser},
		{"jane", "jane123", "Jane Smith", "jane@example.com", domain.RoleUser},
	}

	var adminID uint
	for _, u := range users {
		if existing, err := userRepo.FindByUsername(ctx, u.Username); err == nil {
			fmt.Printf("user %q already exists, skipping\n", u.Username)
			if u.Role == domain.RoleAdmin {
				adminID = existing.ID
			}
			continue
		}
		hash, err := passwordSvc.Hash(u.Password)
		if err != nil {
			log.Fatalf("hash password for %q: %v", u.Username, err)
		}
		user := &domain.User{
			Username:     u.Username,
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: hash,
			Role:         u.Role,
			IsActive:     true,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("create user %q: %v", u.Username, err)
		}
		if u.Role == domain.RoleAdmin {
			adminID = user.ID
		}
		fmt.Printf("created user %q (%s)\n", u.Username, u.Role)
	}

	parties := []struct {
		Name        string
		Description string
	}{
		{"Acme Corp", "Primary client engagement"},
		{"Internal", "Internal company work"},
		{"Globex", "Globex migration project"},
		{"Initech", "Initech support retainer"},
	}

	for _, p := range parties {
		if _, err := partyRepo.FindActiveByName(ctx, p.Name); err == nil {
			fmt.Printf("party %q already exists, skipping\n", p.Name)
			continue
		}
		party := &domain.Party{
			Name:        p.Name,
			Description: p.Description,
			IsActive:    true,
			CreatedBy:   adminID,
		}
		if err := partyRepo.Create(ctx, party); err != nil {
			log.Fatalf("create party %q: %v", p.Name, err)
		}
		fmt.Printf("created party %q\n", p.Name)
	}

	fmt.Println("seed complete")
}
