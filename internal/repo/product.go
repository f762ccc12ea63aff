package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/catalog_admin/internal/models"
)

// withRefs loads category and brand in the same statement through LEFT JOINs.
func (r *GormRepo) withRefs(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).Joins("Category").Joins("Brand")
}

func (r *GormRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	items := make([]models.Product, 0)
	if err := r.withRefs(ctx).Order("products.created_at DESC").Find(&items).Error; err != nil {
		return nil, classify(err)
	}
	return items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := r.withRefs(ctx).Where("products.id = ?", id).First(&product).Error; err != nil {
		return nil, classify(err)
	}
	return &product, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) (*models.Product, error) {
	prod.Category, prod.Brand = nil, nil
	if err := r.DB.WithContext(ctx).Omit("Category", "Brand").Create(prod).Error; err != nil {
		return nil, classify(err)
	}
	return r.GetProduct(ctx, prod.ID)
}

// UpdateProduct replaces every mutable column, so omitted discount and brand
// are cleared rather than kept from the previous row.
func (r *GormRepo) UpdateProduct(ctx context.Context, prod *models.Product) (*models.Product, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", prod.ID).
		Updates(map[string]any{
			"pro_name":    prod.ProName,
			"price":       prod.Price,
			"discount":    prod.Discount,
			"category_id": prod.CategoryID,
			"brand_id":    prod.BrandID,
		})
	if res.Error != nil {
		return nil, classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetProduct(ctx, prod.ID)
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{})
	if res.Error != nil {
		return classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepo) CountProducts(ctx context.Context) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return 0, classify(err)
	}
	return total, nil
}
