// seed creates the initial admin operator for local development.
// Idempotent: exits cleanly when the admin user already exists.
package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"admin-command-console/internal/config"
	"admin-command-console/internal/db"
	"admin-command-console/internal/security"
	userdomain "admin-command-console/internal/user/domain"
	userrepo "admin-command-console/internal/user/repository"
)

const (
	adminUsername = "admin"
	adminPassword = "password123"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set; create a .env from .env.example or set DATABASE_URL")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	users := userrepo.NewPostgresRepository(conn)
	ctx := context.Background()

	existing, err := users.GetByUsername(ctx, adminUsername)
	if err != nil {
		log.Fatalf("seed check: %v", err)
	}
	if existing != nil {
		log.Println("Seed already applied (admin exists). Skipping.")
		return
	}

	hasher := security.NewHasher(cfg.BcryptCost)
	hash, err := hasher.Hash([]byte(adminPassword))
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	admin := &userdomain.User{
		ID:           uuid.New().String(),
		Username:     adminUsername,
		FullName:     "Console Admin",
		PasswordHash: hash,
		Permissions: []userdomain.Permission{
			userdomain.PermRunCommands,
			userdomain.PermViewHistory,
		},
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatalf("create admin: %v", err)
	}
	log.Printf("created admin user %q (password %q); change the password before exposing the console", adminUsername, adminPassword)
}
