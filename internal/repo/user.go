package repo

import (
	"context"

	"github.com/crumbline/bakeshop/internal/models"
)

func (r *GormRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if err := r.DB.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *GormRepo) GetUserByMobile(ctx context.Context, mobile string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("mobile_number = ?", mobile).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Preload("Wishlist").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) AddWishlistProduct(ctx context.Context, user *models.User, product *models.Product) error {
	return r.DB.WithContext(ctx).Model(user).Association("Wishlist").Append(product)
}

func (r *GormRepo) RemoveWishlistProduct(ctx context.Context, user *models.User, product *models.Product) error {
	return r.DB.WithContext(ctx).Model(user).Association("Wishlist").Delete(product)
}
