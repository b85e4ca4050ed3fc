// Command seed-admin creates an admin user, or promotes an existing user
// with the same username to admin. It is used to bootstrap the first
// admin account.
//
// Usage:
//
//	seed-admin --username=admin --email=admin@example.com --password=secret
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	username := flag.String("username", "admin", "admin username")
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "Usage: seed-admin --username=admin --email=admin@example.com --password=secret")
		os.Exit(1)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	// Promote if the username already exists, otherwise create.
	tag, err := pool.Exec(ctx,
		"UPDATE users SET role = 'admin', updated_at = now() WHERE username = $1",
		*username,
	)
	if err != nil {
		log.Fatalf("update role: %v", err)
	}
	if tag.RowsAffected() > 0 {
		fmt.Printf("User %q promoted to admin.\n", *username)
		return
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO users (id, username, email, password_hash, role)
		 VALUES (gen_random_uuid(), $1, $2, $3, 'admin')`,
		*username, *email, string(hash),
	)
	if err != nil {
		log.Fatalf("create admin user: %v", err)
	}

	fmt.Printf("Admin user %q created.\n", *username)
}
