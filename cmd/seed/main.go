package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"userbase/internal/auth"
	"userbase/internal/config"
	"userbase/internal/db"
	"userbase/internal/model"
	"userbase/internal/repository"
)

// seedUser is one demo account provisioned by this binary.
type seedUser struct {
	Email    string
	FullName string
	Password string
}

var demoUsers = []seedUser{
	{Email: "admin@example.com", FullName: "Admin", Password: "admin-password"},
	{Email: "alice@example.com", FullName: "Alice Doe", Password: "alice-password"},
	{Email: "bob@example.com", FullName: "Bob Doe", Password: "bob-password"},
}

func main() {
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	userRepo := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	log.Println("Seeding demo users...")
	created, skipped, err := seedUsers(ctx, userRepo, demoUsers)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seed completed: %d created, %d already existed", created, skipped)
}

// seedUsers inserts users that do not exist yet, leaving existing ones untouched.
func seedUsers(ctx context.Context, repo repository.UserRepository, users []seedUser) (created int, skipped int, err error) {
	for _, u := range users {
		existing, err := repo.FindByEmail(ctx, u.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, skipped, fmt.Errorf("error checking user %s: %w", u.Email, err)
		}
		if existing != nil {
			skipped++
			continue
		}

		hashed, err := auth.HashPassword(u.Password)
		if err != nil {
			return created, skipped, fmt.Errorf("error hashing password for %s: %w", u.Email, err)
		}

		user := &model.User{
			Email:          u.Email,
			FullName:       u.FullName,
			HashedPassword: hashed,
			IsActive:       true,
		}
		if err := repo.Create(ctx, user); err != nil {
			return created, skipped, fmt.Errorf("error creating user %s: %w", u.Email, err)
		}
		created++
	}

	return created, skipped, nil
}
