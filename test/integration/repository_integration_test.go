package integration

import (
	"context"
	"testing"
	"time"

	"millet-market/internal/model"
	"millet-market/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewUserRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("Create and GetByEmail roundtrip", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		seeded := SeedUser(t, testDB.Pool, "asha@example.com", "Pune")

		user, err := repo.GetByEmail(ctx, "asha@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, seeded.ID, user.ID)
		assert.Equal(t, seeded.Password, user.Password)
	})

	t.Run("Create rejects a duplicate email", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		seeded := SeedUser(t, testDB.Pool, "asha@example.com", "Pune")

		dup := *seeded
		dup.ID = uuid.New()
		err := repo.Create(ctx, &dup)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrEmailTaken)
	})

	t.Run("GetByID returns nil for non-existent user", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		user, err := repo.GetByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("FindByCity matches case-insensitively, newest first", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedUser(t, testDB.Pool, "first@example.com", "Pune")
		time.Sleep(time.Millisecond)
		newest := SeedUser(t, testDB.Pool, "second@example.com", "PUNE")
		SeedUser(t, testDB.Pool, "elsewhere@example.com", "Chennai")

		shops, err := repo.FindByCity(ctx, "pune")
		require.NoError(t, err)
		require.Len(t, shops, 2)
		assert.Equal(t, newest.ID, shops[0].ID)
	})

	t.Run("Update changes profile fields only", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		seeded := SeedUser(t, testDB.Pool, "asha@example.com", "Pune")

		seeded.Phone = "9999999999"
		seeded.City = "Mumbai"
		require.NoError(t, repo.Update(ctx, seeded))

		user, err := repo.GetByID(ctx, seeded.ID)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "9999999999", user.Phone)
		assert.Equal(t, "Mumbai", user.City)
		assert.Equal(t, "asha@example.com", user.Email)
	})

	t.Run("UpdatePassword replaces the stored hash", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		seeded := SeedUser(t, testDB.Pool, "asha@example.com", "Pune")

		require.NoError(t, repo.UpdatePassword(ctx, seeded.ID, "new-hash"))

		user, err := repo.GetByID(ctx, seeded.ID)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "new-hash", user.Password)
	})
}

func TestProductRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewProductRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("Create and GetByID roundtrip preserves the image object", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		owner := SeedUser(t, testDB.Pool, "asha@example.com", "Pune")

		product := SeedProduct(t, testDB.Pool, owner.ID, "Kodo Millet")
		withImage := *product
		withImage.ID = uuid.New()
		withImage.Image = model.Image{
			FileName: "millet.jpg",
			FilePath: "https://cdn.example.com/millet.jpg",
			FileType: "image/jpeg",
			FileSize: "12.34 KB",
		}
		require.NoError(t, repo.Create(ctx, &withImage))

		stored, err := repo.GetByID(ctx, withImage.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, withImage.Image, stored.Image)
		assert.Equal(t, "90", stored.DiscountedPrice)
	})

	t.Run("GetByID roundtrip keeps an absent image zero", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		owner := SeedUser(t, testDB.Pool, "asha@example.com", "Pune")
		product := SeedProduct(t, testDB.Pool, owner.ID, "Kodo Millet")

		stored, err := repo.GetByID(ctx, product.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.True(t, stored.Image.IsZero())
	})

	t.Run("GetByID returns nil for non-existent product", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		product, err := repo.GetByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, product)
	})

	t.Run("GetByUser returns only the owner's products, newest first", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		owner := SeedUser(t, testDB.Pool, "asha@example.com", "Pune")
		other := SeedUser(t, testDB.Pool, "ravi@example.com", "Chennai")

		SeedProduct(t, testDB.Pool, owner.ID, "Kodo Millet")
		time.Sleep(time.Millisecond)
		newest := SeedProduct(t, testDB.Pool, owner.ID, "Foxtail Millet")
		SeedProduct(t, testDB.Pool, other.ID, "Barnyard Millet")

		products, err := repo.GetByUser(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, newest.ID, products[0].ID)
	})

	t.Run("Update replaces the record", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		owner := SeedUser(t, testDB.Pool, "asha@example.com", "Pune")
		product := SeedProduct(t, testDB.Pool, owner.ID, "Kodo Millet")

		product.Price = "200"
		product.Discount = "25"
		product.ComputeDiscountedPrice()
		require.NoError(t, repo.Update(ctx, product))

		stored, err := repo.GetByID(ctx, product.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "200", stored.Price)
		assert.Equal(t, "150", stored.DiscountedPrice)
	})

	t.Run("Delete removes the record", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		owner := SeedUser(t, testDB.Pool, "asha@example.com", "Pune")
		product := SeedProduct(t, testDB.Pool, owner.ID, "Kodo Millet")

		require.NoError(t, repo.Delete(ctx, product.ID))

		stored, err := repo.GetByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Nil(t, stored)
	})
}
