package service

import (
	"context"

	"millet-market/internal/model"

	"github.com/google/uuid"
)

// UserService defines operations for account management.
type UserService interface {
	// Register creates a new account and returns the stored user.
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)

	// Login authenticates by email and password and returns the user.
	Login(ctx context.Context, req *model.LoginRequest) (*model.User, error)

	// GetByID retrieves a user for an authenticated session.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// UpdateProfile replaces each profile field present in the request and
	// keeps the rest. Email is immutable on this path.
	UpdateProfile(ctx context.Context, id uuid.UUID, req *model.UpdateProfileRequest) (*model.User, error)

	// ChangePassword verifies the old password and stores a new hash.
	ChangePassword(ctx context.Context, id uuid.UUID, req *model.ChangePasswordRequest) error

	// GetShopsByCity searches shops by city, case-insensitive exact match,
	// newest first.
	GetShopsByCity(ctx context.Context, city string) ([]model.User, error)
}

// ProductService defines operations for inventory management. Every read or
// write of an existing product verifies the caller owns it.
type ProductService interface {
	// Create persists a new product owned by the caller.
	Create(ctx context.Context, userID uuid.UUID, input *model.ProductInput) (*model.Product, error)

	// List retrieves the caller's products, newest first.
	List(ctx context.Context, userID uuid.UUID) ([]model.Product, error)

	// Get retrieves one product after the owner check.
	Get(ctx context.Context, userID, productID uuid.UUID) (*model.Product, error)

	// Update replaces each field present in the input and keeps the rest,
	// then recomputes the discounted price.
	Update(ctx context.Context, userID, productID uuid.UUID, input *model.ProductInput) (*model.Product, error)

	// Delete hard-deletes a product and returns the removed record.
	Delete(ctx context.Context, userID, productID uuid.UUID) (*model.Product, error)
}
