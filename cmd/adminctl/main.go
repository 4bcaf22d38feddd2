// Command adminctl seeds an initial admin user into the credential store.
// It prompts for the password on the terminal without echo, so the plaintext
// never lands in shell history or process listings.
//
// Usage:
//
//	adminctl -n "Jane Doe" -e jane@example.com [-r admin]
//
// Connection settings come from the same configuration chain as the server
// (.env file, environment, flags).
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/pharmadmin/internal/flagx"
	"github.com/dmitrijs2005/pharmadmin/internal/server/config"
	"github.com/dmitrijs2005/pharmadmin/internal/server/hashing"
	"github.com/dmitrijs2005/pharmadmin/internal/server/models"
	"github.com/dmitrijs2005/pharmadmin/internal/server/repositories/users"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/term"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {

	_ = godotenv.Load()
	cfg := config.LoadConfig()

	args := flagx.FilterArgs(os.Args[1:], []string{"-n", "-e", "-r"})

	fs := flag.NewFlagSet("adminctl", flag.ContinueOnError)
	name := fs.String("n", "", "display name")
	email := fs.String("e", "", "email address")
	role := fs.String("r", models.RoleAdmin, "role (editor or admin)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *name == "" || *email == "" {
		return fmt.Errorf("both -n and -e are required")
	}
	if *role != models.RoleAdmin && *role != models.RoleEditor {
		return fmt.Errorf("unknown role %q", *role)
	}

	fmt.Print("Enter password: ")
	password, err := readPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return err
	}
	if len(password) == 0 {
		return fmt.Errorf("password must not be empty")
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db open error: %w", err)
	}
	defer db.Close()

	hasher := hashing.NewBcryptHasher(cfg.BcryptCost)
	passwordHash, err := hasher.Hash(string(password))
	if err != nil {
		return err
	}

	repo := users.NewPostgresRepository(db)
	user := &models.User{
		ID:           uuid.NewString(),
		Name:         *name,
		Email:        *email,
		PasswordHash: passwordHash,
		Role:         *role,
	}

	created, err := repo.Create(context.Background(), user)
	if err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}

	fmt.Printf("created user %s (%s) with role %s\n", created.Email, created.ID, created.Role)
	return nil
}
