package product_test

import (
	"testing"

	"orderentry/internal/core/domain/model/kernel"
	"orderentry/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	validSKU, _ := kernel.NewSKU("WIDGET-42")
	validPrice, _ := kernel.NewMoney(5.00)

	t.Run("should create valid product", func(t *testing.T) {
		p, err := product.NewProduct(validSKU, "Widget", validPrice)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.SKU().IsEqual(validSKU))
		assert.Equal(t, "Widget", p.Name())
		assert.True(t, p.Price().IsEqual(validPrice))
	})

	t.Run("should fail with unconstructed SKU", func(t *testing.T) {
		var invalidSKU kernel.SKU

		_, err := product.NewProduct(invalidSKU, "Widget", validPrice)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "SKU must be created")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := product.NewProduct(validSKU, "", validPrice)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with unconstructed price", func(t *testing.T) {
		var invalidPrice kernel.Money

		_, err := product.NewProduct(validSKU, "Widget", invalidPrice)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Money must be created")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidSKU kernel.SKU
		var invalidPrice kernel.Money

		_, err := product.NewProduct(invalidSKU, "", invalidPrice)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "SKU must be created")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "Money must be created")
	})

	t.Run("should accept zero price", func(t *testing.T) {
		freePrice, _ := kernel.NewMoney(0)

		p, err := product.NewProduct(validSKU, "Sample", freePrice)

		require.NoError(t, err)
		assert.InDelta(t, 0, p.Price().Amount(), 0)
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var p product.Product

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})
}

func TestProduct_IsEqual(t *testing.T) {
	sku, _ := kernel.NewSKU("WIDGET-42")
	otherSKU, _ := kernel.NewSKU("GADGET-7")
	priceA, _ := kernel.NewMoney(5.00)
	priceB, _ := kernel.NewMoney(9.99)

	t.Run("equal when SKUs match regardless of other fields", func(t *testing.T) {
		a, _ := product.NewProduct(sku, "Widget", priceA)
		b, _ := product.NewProduct(sku, "Widget v2", priceB)

		assert.True(t, a.IsEqual(b))
	})

	t.Run("not equal when SKUs differ", func(t *testing.T) {
		a, _ := product.NewProduct(sku, "Widget", priceA)
		b, _ := product.NewProduct(otherSKU, "Widget", priceA)

		assert.False(t, a.IsEqual(b))
	})
}
