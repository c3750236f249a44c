package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"millet-market/internal/database"
	"millet-market/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	if err := database.Migrate(ctx, pool, zerolog.Nop()); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// SeedUser inserts a user row directly and returns it. The stored password is
// a fixed bcrypt hash; repository tests never verify it.
func SeedUser(t *testing.T, pool *pgxpool.Pool, email, city string) *model.User {
	t.Helper()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	user := &model.User{
		ID:        uuid.New(),
		Name:      "Seed User",
		Email:     email,
		Password:  "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Photo:     model.DefaultUserPhoto,
		City:      city,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password, photo, phone, whatsapp, address, city, bio, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, '', '', '', $6, '', $7, $7)`,
		user.ID, user.Name, user.Email, user.Password, user.Photo, user.City, now,
	)
	if err != nil {
		t.Fatalf("failed to seed user %s: %v", email, err)
	}

	return user
}

// SeedProduct inserts a product row owned by the given user and returns it.
func SeedProduct(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string) *model.Product {
	t.Helper()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	product := &model.Product{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            name,
		SKU:             "SKU-" + name,
		Category:        "Millets",
		Quantity:        "10",
		PackSize:        "1",
		Unit:            "kg",
		Price:           "100",
		Discount:        "10",
		DiscountedPrice: "90",
		Description:     "Seeded for testing",
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO products (id, user_id, name, sku, category, quantity, pack_size, unit, price, discount, discounted_price, description, image, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)`,
		product.ID, product.UserID, product.Name, product.SKU, product.Category,
		product.Quantity, product.PackSize, product.Unit, product.Price,
		product.Discount, product.DiscountedPrice, product.Description, product.Image, now,
	)
	if err != nil {
		t.Fatalf("failed to seed product %s: %v", name, err)
	}

	return product
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"products", "users"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
