package repo

import (
	"context"

	"github.com/Skotchmaster/catalog_admin/internal/models"
)

func (r *GormRepo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

// CreateUser relies on the unique index on email; a concurrent duplicate
// surfaces as ErrDuplicate.
func (r *GormRepo) CreateUser(ctx context.Context, u *models.User) error {
	if err := r.DB.WithContext(ctx).Create(u).Error; err != nil {
		return classify(err)
	}
	return nil
}

func (r *GormRepo) CountUsersByEmail(ctx context.Context, email string) (int64, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return 0, classify(err)
	}
	return n, nil
}
