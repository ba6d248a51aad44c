package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/crumbline/bakeshop/internal/models"
	"github.com/crumbline/bakeshop/internal/repo"
	"github.com/crumbline/bakeshop/internal/transport"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	prod, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return prod, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, filter transport.ProductFilter) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx, filter)
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest, imageURL string) (*models.Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: please provide product name", ErrValidation)
	}
	if req.Description == "" {
		return nil, fmt.Errorf("%w: please provide product description", ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if !models.ValidCategory(req.Category) {
		return nil, fmt.Errorf("%w: invalid category", ErrValidation)
	}
	if imageURL == "" {
		return nil, fmt.Errorf("%w: please upload an image", ErrValidation)
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	prod := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    imageURL,
		IsAvailable: available,
	}
	return s.Repo.CreateProduct(ctx, prod)
}

func (s *CatalogService) PatchProduct(ctx context.Context, req transport.PatchProductRequest, id uint) (*models.Product, error) {
	if req.Price != nil && *req.Price < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if req.Category != nil && !models.ValidCategory(*req.Category) {
		return nil, fmt.Errorf("%w: invalid category", ErrValidation)
	}

	prod, err := s.Repo.PatchProduct(ctx, req, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return prod, nil
}

func (s *CatalogService) SetProductImage(ctx context.Context, id uint, imageURL string) (*models.Product, error) {
	prod, err := s.Repo.SetProductImage(ctx, id, imageURL)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return prod, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return nil
}
