package service

import (
	"context"
	"time"

	"millet-market/internal/model"
	"millet-market/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// Create persists a new product owned by the caller. The discounted price is
// derived before the record hits the database.
func (s *productService) Create(ctx context.Context, userID uuid.UUID, input *model.ProductInput) (*model.Product, error) {
	if input.Name == "" || input.SKU == "" || input.Category == "" ||
		input.Quantity == "" || input.Price == "" || input.Description == "" ||
		input.PackSize == "" || input.Unit == "" {
		return nil, model.ErrMissingProductFields
	}

	now := time.Now()
	product := &model.Product{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        input.Name,
		SKU:         input.SKU,
		Category:    input.Category,
		Quantity:    input.Quantity,
		PackSize:    input.PackSize,
		Unit:        input.Unit,
		Price:       input.Price,
		Discount:    input.Discount,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Image != nil {
		product.Image = *input.Image
	}
	product.ComputeDiscountedPrice()

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("product_id", product.ID.String()).
		Str("user_id", userID.String()).
		Str("sku", product.SKU).
		Msg("product created")

	return product, nil
}

// List retrieves the caller's products, newest first.
func (s *productService) List(ctx context.Context, userID uuid.UUID) ([]model.Product, error) {
	products, err := s.productRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("user_id", userID.String()).
		Int("count", len(products)).
		Msg("listed products")

	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

// ownedProduct loads a product and enforces the owner check. A nonexistent id
// is not-found; an id owned by someone else is an authorization error, never
// not-found.
func (s *productService) ownedProduct(ctx context.Context, userID, productID uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}
	if product.UserID != userID {
		s.logger.Warn().
			Str("product_id", productID.String()).
			Str("owner_id", product.UserID.String()).
			Str("caller_id", userID.String()).
			Msg("owner check failed")
		return nil, model.ErrNotProductOwner
	}
	return product, nil
}

// Get retrieves one product after the owner check.
func (s *productService) Get(ctx context.Context, userID, productID uuid.UUID) (*model.Product, error) {
	return s.ownedProduct(ctx, userID, productID)
}

// Update replaces each field present in the input and keeps the rest, then
// recomputes the discounted price. The name field is not updatable on this
// path; a new image replaces the stored one, otherwise it is preserved.
func (s *productService) Update(ctx context.Context, userID, productID uuid.UUID, input *model.ProductInput) (*model.Product, error) {
	product, err := s.ownedProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	if input.SKU != "" {
		product.SKU = input.SKU
	}
	if input.Category != "" {
		product.Category = input.Category
	}
	if input.Quantity != "" {
		product.Quantity = input.Quantity
	}
	if input.PackSize != "" {
		product.PackSize = input.PackSize
	}
	if input.Unit != "" {
		product.Unit = input.Unit
	}
	if input.Price != "" {
		product.Price = input.Price
	}
	if input.Discount != "" {
		product.Discount = input.Discount
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	if input.Image != nil {
		product.Image = *input.Image
	}
	product.UpdatedAt = time.Now()
	product.ComputeDiscountedPrice()

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("product_id", product.ID.String()).
		Str("user_id", userID.String()).
		Msg("product updated")

	return product, nil
}

// Delete hard-deletes a product and returns the removed record.
func (s *productService) Delete(ctx context.Context, userID, productID uuid.UUID) (*model.Product, error) {
	product, err := s.ownedProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Delete(ctx, productID); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("product_id", productID.String()).
		Str("user_id", userID.String()).
		Msg("product deleted")

	return product, nil
}
