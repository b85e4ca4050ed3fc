package testhelper

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sweetlab/sweetshop-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with role "user" and a fixed bcrypt hash.
// Returns the filled domain.User as persisted (timestamps come from the DB).
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUserWithRole(t, pool, domain.UserRoleUser)
}

// SeedAdmin creates a user with role "admin".
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUserWithRole(t, pool, domain.UserRoleAdmin)
}

func seedUserWithRole(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:       uuid.New(),
		Username: "testuser-" + suffix,
		Email:    "testuser-" + suffix + "@example.com",
		// bcrypt hash of "password123" at cost 4, precomputed so seeding stays fast.
		PasswordHash: "$2a$04$C6UzMDM.H6dfI/f/IKcEeO7plJ1BubYhrjzqSzicyViWjjVAfsIO6",
		Role:         role,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO users (id, username, email, password_hash, role)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at`,
		user.ID, user.Username, user.Email, user.PasswordHash, string(user.Role),
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SweetOpt mutates a sweet before it is inserted.
type SweetOpt func(*domain.Sweet)

// WithCategory sets the sweet's category.
func WithCategory(c domain.Category) SweetOpt {
	return func(s *domain.Sweet) { s.Category = c }
}

// WithPrice sets the sweet's price.
func WithPrice(p float64) SweetOpt {
	return func(s *domain.Sweet) { s.Price = p }
}

// WithQuantity sets the sweet's stock quantity.
func WithQuantity(q int) SweetOpt {
	return func(s *domain.Sweet) { s.Quantity = q }
}

// WithName sets the sweet's name verbatim (no unique suffix).
func WithName(name string) SweetOpt {
	return func(s *domain.Sweet) { s.Name = name }
}

// WithDescription sets the sweet's description.
func WithDescription(d string) SweetOpt {
	return func(s *domain.Sweet) { s.Description = &d }
}

// SeedSweet creates a sweet with sensible defaults (category chocolate,
// price 9.99, quantity 50) overridable via opts. Returns the persisted record.
func SeedSweet(t *testing.T, pool *pgxpool.Pool, opts ...SweetOpt) domain.Sweet {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	description := "Seeded sweet " + suffix
	sweet := domain.Sweet{
		ID:          uuid.New(),
		Name:        "Sweet " + suffix,
		Category:    domain.CategoryChocolate,
		Price:       9.99,
		Quantity:    50,
		Description: &description,
	}

	for _, opt := range opts {
		opt(&sweet)
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO sweets (id, name, category, price, quantity, description, image_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at`,
		sweet.ID, sweet.Name, string(sweet.Category), sweet.Price, sweet.Quantity,
		sweet.Description, sweet.ImageURL,
	).Scan(&sweet.CreatedAt, &sweet.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedSweet insert sweet: %v", err)
	}

	return sweet
}

// CleanSweets removes all sweets. List and aggregate tests call this to get
// a deterministic catalog.
func CleanSweets(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), `DELETE FROM sweets`); err != nil {
		t.Fatalf("testhelper: CleanSweets: %v", err)
	}
}

// UniqueName returns a catalog name guaranteed not to collide across tests.
func UniqueName(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uniqueSuffix())
}
