package productrepo

import (
	"context"
	"errors"

	"orderentry/internal/core/domain/model/kernel"
	"orderentry/internal/core/domain/model/product"
	"orderentry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ProductCatalog and ProductAvailability
// using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add saves a new catalog product with its current stock quantity.
func (r *GormProductRepository) Add(ctx context.Context, p product.Product, stockQuantity int) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p, stockQuantity)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetBySKU retrieves the catalog product for the given SKU.
func (r *GormProductRepository) GetBySKU(ctx context.Context, sku kernel.SKU) (product.Product, error) {
	if err := sku.Validate(); err != nil {
		return product.Product{}, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "sku = ?", sku.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return product.Product{}, errs.NewObjectNotFoundError("product", sku.String())
		}
		return product.Product{}, err
	}

	return toDomain(dto)
}

// IsInStock reports whether the product can currently be sold.
// Unknown SKUs report false rather than an error.
func (r *GormProductRepository) IsInStock(ctx context.Context, sku kernel.SKU) (bool, error) {
	if err := sku.Validate(); err != nil {
		return false, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "sku = ?", sku.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	return dto.StockQuantity > 0, nil
}

// AdjustStock changes a product's stock quantity by delta.
func (r *GormProductRepository) AdjustStock(ctx context.Context, sku kernel.SKU, delta int) error {
	if err := sku.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("sku = ?", sku.String()).
		Update("stock_quantity", gorm.Expr("stock_quantity + ?", delta))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", sku.String())
	}

	return nil
}
