package repo

import (
	"context"

	"github.com/Skotchmaster/catalog_admin/internal/models"
)

func (r *GormRepo) ListBrands(ctx context.Context) ([]models.Brand, error) {
	items := make([]models.Brand, 0)
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, classify(err)
	}
	return items, nil
}

func (r *GormRepo) GetBrand(ctx context.Context, id string) (*models.Brand, error) {
	var brand models.Brand
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&brand).Error; err != nil {
		return nil, classify(err)
	}
	return &brand, nil
}

func (r *GormRepo) CreateBrand(ctx context.Context, brand *models.Brand) (*models.Brand, error) {
	if err := r.DB.WithContext(ctx).Create(brand).Error; err != nil {
		return nil, classify(err)
	}
	return brand, nil
}

// UpdateBrand replaces every mutable column; a nil logo clears it.
func (r *GormRepo) UpdateBrand(ctx context.Context, brand *models.Brand) (*models.Brand, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.Brand{}).
		Where("id = ?", brand.ID).
		Updates(map[string]any{
			"name": brand.Name,
			"logo": brand.Logo,
		})
	if res.Error != nil {
		return nil, classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetBrand(ctx, brand.ID)
}

func (r *GormRepo) DeleteBrand(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Brand{})
	if res.Error != nil {
		return classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
