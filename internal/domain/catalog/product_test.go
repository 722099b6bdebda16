package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProductFields() ProductFields {
	return ProductFields{
		Name:        "Cola",
		RetailPrice: decimal.NewFromInt(10000),
		CategoryID:  1,
	}
}

func TestNewProduct(t *testing.T) {
	t.Run("creates product with required fields", func(t *testing.T) {
		product, err := NewProduct(validProductFields())
		require.NoError(t, err)
		require.NotNil(t, product)

		assert.Equal(t, "Cola", product.Name)
		assert.True(t, decimal.NewFromInt(10000).Equal(product.RetailPrice))
		assert.Equal(t, uint(1), product.CategoryID)
		assert.False(t, product.HasBarcode())
		assert.Empty(t, product.BarcodeValue())
	})

	t.Run("trims the name", func(t *testing.T) {
		fields := validProductFields()
		fields.Name = "  Cola  "
		product, err := NewProduct(fields)
		require.NoError(t, err)
		assert.Equal(t, "Cola", product.Name)
	})

	t.Run("keeps a provided barcode", func(t *testing.T) {
		fields := validProductFields()
		fields.Barcode = "8934588012345"
		product, err := NewProduct(fields)
		require.NoError(t, err)
		assert.True(t, product.HasBarcode())
		assert.Equal(t, "8934588012345", product.BarcodeValue())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		fields := validProductFields()
		fields.Name = "   "
		_, err := NewProduct(fields)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("fails with negative retail price", func(t *testing.T) {
		fields := validProductFields()
		fields.RetailPrice = decimal.NewFromInt(-1)
		_, err := NewProduct(fields)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Retail price cannot be negative")
	})

	t.Run("fails with negative wholesale price", func(t *testing.T) {
		fields := validProductFields()
		negative := decimal.NewFromInt(-500)
		fields.WholesalePrice = &negative
		_, err := NewProduct(fields)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Wholesale price cannot be negative")
	})

	t.Run("fails without category", func(t *testing.T) {
		fields := validProductFields()
		fields.CategoryID = 0
		_, err := NewProduct(fields)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Category is required")
	})

	t.Run("accepts zero retail price", func(t *testing.T) {
		fields := validProductFields()
		fields.RetailPrice = decimal.Zero
		_, err := NewProduct(fields)
		require.NoError(t, err)
	})
}

func TestProductApply(t *testing.T) {
	product, err := NewProduct(validProductFields())
	require.NoError(t, err)
	created := product.CreatedAt

	fields := validProductFields()
	fields.Name = "Pepsi"
	fields.Barcode = "2001234567893"
	fields.CategoryID = 2
	wholesale := decimal.NewFromInt(9000)
	fields.WholesalePrice = &wholesale

	require.NoError(t, product.Apply(fields))
	assert.Equal(t, "Pepsi", product.Name)
	assert.Equal(t, "2001234567893", product.BarcodeValue())
	assert.Equal(t, uint(2), product.CategoryID)
	assert.Equal(t, created, product.CreatedAt)

	t.Run("clearing the barcode stores nil", func(t *testing.T) {
		fields.Barcode = "  "
		require.NoError(t, product.Apply(fields))
		assert.Nil(t, product.Barcode)
	})

	t.Run("invalid fields leave the product unchanged name-wise", func(t *testing.T) {
		bad := fields
		bad.Name = ""
		require.Error(t, product.Apply(bad))
		assert.Equal(t, "Pepsi", product.Name)
	})
}
