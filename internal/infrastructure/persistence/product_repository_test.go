package persistence

import (
	"context"
	"testing"

	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormProductRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	category := mustCreateCategory(t, db, "Drinks")
	created := mustCreateProduct(t, db, "Cola", "2001234567893", category.ID)
	require.NotZero(t, created.ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cola", found.Name)
	assert.Equal(t, "2001234567893", found.BarcodeValue())
	assert.Equal(t, "Drinks", found.CategoryName())
	assert.False(t, found.CreatedAt.IsZero())

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormProductRepository_FindByBarcode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	category := mustCreateCategory(t, db, "Drinks")
	mustCreateProduct(t, db, "Cola", "2001234567893", category.ID)

	found, err := repo.FindByBarcode(ctx, "2001234567893")
	require.NoError(t, err)
	assert.Equal(t, "Cola", found.Name)

	_, err = repo.FindByBarcode(ctx, "0000000000000")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormProductRepository_FindByName_CaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	category := mustCreateCategory(t, db, "Drinks")
	mustCreateProduct(t, db, "Cola", "", category.ID)

	found, err := repo.FindByName(ctx, "COLA")
	require.NoError(t, err)
	assert.Equal(t, "Cola", found.Name)
	assert.Equal(t, "Drinks", found.CategoryName())
}

func TestGormProductRepository_BlankBarcodesCoexist(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	category := mustCreateCategory(t, db, "Drinks")

	// a NULL barcode never collides with another NULL barcode
	mustCreateProduct(t, db, "Cola", "", category.ID)
	mustCreateProduct(t, db, "Pepsi", "", category.ID)

	repo := NewGormProductRepository(db)
	products, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestGormProductRepository_BarcodeUniqueConstraintBackstop(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	category := mustCreateCategory(t, db, "Drinks")
	mustCreateProduct(t, db, "Cola", "2001234567893", category.ID)

	duplicate, err := catalog.NewProduct(catalog.ProductFields{
		Name:        "Fake Cola",
		Barcode:     "2001234567893",
		RetailPrice: decimal.NewFromInt(9000),
		CategoryID:  category.ID,
	})
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Save(ctx, duplicate), shared.ErrAlreadyExists)
}

func TestGormProductRepository_ExistsChecks(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	category := mustCreateCategory(t, db, "Drinks")
	created := mustCreateProduct(t, db, "Cola", "2001234567893", category.ID)

	exists, err := repo.ExistsByName(ctx, "COLA", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(ctx, "cola", created.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsByBarcode(ctx, "2001234567893", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByBarcode(ctx, "2001234567893", created.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsByBarcode(ctx, "", 0)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormProductRepository_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	drinks := mustCreateCategory(t, db, "Drinks")
	snacks := mustCreateCategory(t, db, "Snacks")
	mustCreateProduct(t, db, "Cola", "2001234567893", drinks.ID)
	mustCreateProduct(t, db, "Chocolate Cookie", "", snacks.ID)
	mustCreateProduct(t, db, "Mineral Water", "", drinks.ID)

	t.Run("matches by name substring", func(t *testing.T) {
		results, err := repo.Search(ctx, "cola", 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Cola", results[0].Name)
	})

	t.Run("matches by barcode", func(t *testing.T) {
		results, err := repo.Search(ctx, "2001234567893", 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Cola", results[0].Name)
	})

	t.Run("matches by category name", func(t *testing.T) {
		results, err := repo.Search(ctx, "drinks", 10)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("name prefix ranks before category match", func(t *testing.T) {
		mustCreateProduct(t, db, "Snack Mix", "", drinks.ID)

		results, err := repo.Search(ctx, "snack", 10)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "Snack Mix", results[0].Name)
		assert.Equal(t, "Chocolate Cookie", results[1].Name)
	})

	t.Run("respects the limit", func(t *testing.T) {
		results, err := repo.Search(ctx, "o", 1)
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})
}

func TestGormProductRepository_CountByCategory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	drinks := mustCreateCategory(t, db, "Drinks")
	snacks := mustCreateCategory(t, db, "Snacks")
	mustCreateProduct(t, db, "Cola", "", drinks.ID)
	mustCreateProduct(t, db, "Pepsi", "", drinks.ID)

	count, err := repo.CountByCategory(ctx, drinks.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountByCategory(ctx, snacks.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestGormProductRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	category := mustCreateCategory(t, db, "Drinks")
	created := mustCreateProduct(t, db, "Cola", "", category.ID)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err := repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, created.ID), shared.ErrNotFound)
}
