// seed_admin creates a superadmin account. Superadmins cannot be created
// through the public registration endpoint; this is the only way in.
//
// Usage: go run ./cmd/seed_admin -email admin@dgmlogistikk.no -name "Ola Admin"
// The password is read from SEED_ADMIN_PASSWORD or generated when unset.
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dgm-logistikk/frakt-api/internal/domain/entity"
	"github.com/dgm-logistikk/frakt-api/internal/infrastructure/postgres"
	"github.com/dgm-logistikk/frakt-api/pkg/config"
)

func main() {
	email := flag.String("email", "", "superadmin email (required)")
	name := flag.String("name", "Superadmin", "full name")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "usage: seed_admin -email <email> [-name <name>]")
		os.Exit(1)
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	generated := false
	if password == "" {
		buf := make([]byte, 12)
		if _, err := rand.Read(buf); err != nil {
			fmt.Fprintf(os.Stderr, "generate password: %v\n", err)
			os.Exit(1)
		}
		password = hex.EncodeToString(buf)
		generated = true
	}
	if len(password) < 8 {
		fmt.Fprintln(os.Stderr, "SEED_ADMIN_PASSWORD must be at least 8 characters")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "PostgreSQL connection: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)

	existing, err := users.GetByEmail(ctx, *email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lookup user: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Fprintf(os.Stderr, "user %s already exists (role %s)\n", *email, existing.Role)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash password: %v\n", err)
		os.Exit(1)
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.NewString(),
		Email:        *email,
		PasswordHash: string(hash),
		FullName:     *name,
		Role:         entity.RoleSuperadmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(ctx, user); err != nil {
		fmt.Fprintf(os.Stderr, "create superadmin: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("superadmin created: %s (%s)\n", *email, user.ID)
	if generated {
		fmt.Printf("generated password: %s\n", password)
	}
}
