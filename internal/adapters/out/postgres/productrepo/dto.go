// Package productrepo persists the product catalog. It backs both the
// catalog lookup and the stock availability checks consulted during order
// validation.
package productrepo

import (
	"orderentry/internal/core/domain/model/kernel"
	"orderentry/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for catalog products.
type ProductDTO struct {
	SKU           string `gorm:"primaryKey"`
	Name          string
	Price         float64
	StockQuantity int `gorm:"index"`
}

// TableName specifies the database table name for catalog products.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p product.Product, stockQuantity int) ProductDTO {
	return ProductDTO{
		SKU:           p.SKU().String(),
		Name:          p.Name(),
		Price:         p.Price().Amount(),
		StockQuantity: stockQuantity,
	}
}

func toDomain(dto ProductDTO) (product.Product, error) {
	sku, err := kernel.NewSKU(dto.SKU)
	if err != nil {
		return product.Product{}, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return product.Product{}, err
	}

	return product.NewProduct(sku, dto.Name, price)
}
