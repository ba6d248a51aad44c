package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/crumbline/bakeshop/internal/models"
	"github.com/crumbline/bakeshop/internal/repo"
)

type WishlistService struct {
	Repo *repo.GormRepo
}

func (s *WishlistService) List(ctx context.Context, userID uint) ([]models.Product, error) {
	user, err := s.Repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Wishlist == nil {
		return []models.Product{}, nil
	}
	return user.Wishlist, nil
}

func (s *WishlistService) Add(ctx context.Context, userID, productID uint) ([]models.Product, error) {
	user, err := s.Repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	prod, err := s.Repo.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	for _, p := range user.Wishlist {
		if p.ID == productID {
			return nil, fmt.Errorf("%w: product already in wishlist", ErrConflict)
		}
	}

	if err := s.Repo.AddWishlistProduct(ctx, user, prod); err != nil {
		return nil, err
	}
	return append(user.Wishlist, *prod), nil
}

func (s *WishlistService) Remove(ctx context.Context, userID, productID uint) ([]models.Product, error) {
	user, err := s.Repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	prod, err := s.Repo.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if err := s.Repo.RemoveWishlistProduct(ctx, user, prod); err != nil {
		return nil, err
	}

	remaining := make([]models.Product, 0, len(user.Wishlist))
	for _, p := range user.Wishlist {
		if p.ID != productID {
			remaining = append(remaining, p)
		}
	}
	return remaining, nil
}
