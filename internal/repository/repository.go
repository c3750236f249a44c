package repository

import (
	"context"

	"millet-market/internal/model"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// Create inserts a new user. Returns model.ErrEmailTaken when the email
	// is already registered.
	Create(ctx context.Context, user *model.User) error

	// GetByID retrieves a user by id. Returns (nil, nil) when not found.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// GetByEmail retrieves a user by email. Returns (nil, nil) when not found.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// Update replaces the mutable profile fields of an existing user.
	Update(ctx context.Context, user *model.User) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// FindByCity retrieves users whose city matches case-insensitively,
	// newest first.
	FindByCity(ctx context.Context, city string) ([]model.User, error)
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// Create inserts a new product.
	Create(ctx context.Context, product *model.Product) error

	// GetByID retrieves a product by id. Returns (nil, nil) when not found.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// GetByUser retrieves all products owned by a user, newest first.
	GetByUser(ctx context.Context, userID uuid.UUID) ([]model.Product, error)

	// Update replaces an existing product record.
	Update(ctx context.Context, product *model.Product) error

	// Delete removes a product permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
