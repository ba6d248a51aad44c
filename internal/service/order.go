package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"gorm.io/gorm"

	"github.com/crumbline/bakeshop/internal/logging"
	"github.com/crumbline/bakeshop/internal/models"
	"github.com/crumbline/bakeshop/internal/repo"
	"github.com/crumbline/bakeshop/internal/transport"
)

var (
	pincodeRe = regexp.MustCompile(`^[0-9]{6}$`)
	mobileRe  = regexp.MustCompile(`^[0-9]{10}$`)
)

type OrderService struct {
	Repo *repo.GormRepo
}

// ValidateShipping reports the first failing field.
func ValidateShipping(s models.ShippingInfo) error {
	if s.FullName == "" {
		return invalidShipping("please provide full name")
	}
	if s.AddressLine == "" {
		return invalidShipping("please provide address")
	}
	if !pincodeRe.MatchString(s.Pincode) {
		return invalidShipping("please provide a valid 6-digit pincode")
	}
	if s.City == "" {
		return invalidShipping("please provide city")
	}
	if !mobileRe.MatchString(s.ContactMobileNumber) {
		return invalidShipping("please provide a valid 10-digit mobile number")
	}
	return nil
}

// PlaceOrder converts submitted cart lines into a durable order. Item prices
// and the total are taken as submitted; quantities and prices are checked for
// shape only, never recomputed against the live catalog.
func (s *OrderService) PlaceOrder(ctx context.Context, userID uint, req transport.CreateOrderRequest) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "order.place_order", "user_id", userID)

	if len(req.OrderItems) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]models.OrderItem, 0, len(req.OrderItems))
	for i := range req.OrderItems {
		it := req.OrderItems[i]
		if it.Product == 0 {
			return nil, fmt.Errorf("%w: product required", ErrValidation)
		}
		if it.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be >= 1", ErrValidation)
		}
		if it.Price < 0 {
			return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
		}
		items = append(items, models.OrderItem{
			ProductID: it.Product,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	if err := ValidateShipping(req.ShippingInfo); err != nil {
		return nil, err
	}
	if req.TotalAmount < 0 {
		return nil, fmt.Errorf("%w: total amount must be >= 0", ErrValidation)
	}

	order := &models.Order{
		UserID:      userID,
		Items:       items,
		Shipping:    req.ShippingInfo,
		Status:      models.StatusPending,
		TotalAmount: req.TotalAmount,
	}

	created, err := s.Repo.CreateOrder(ctx, order)
	if err != nil {
		l.Error("place_order_error", "status", 500, "error", err)
		return nil, err
	}

	l.Info("place_order_success", "order_id", created.ID, "total", created.TotalAmount)
	return created, nil
}

func (s *OrderService) MyOrders(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.Repo.ListOrdersByUser(ctx, userID)
}

func (s *OrderService) AllOrders(ctx context.Context) ([]models.Order, error) {
	return s.Repo.ListAllOrders(ctx)
}

func (s *OrderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// UpdateStatus sets any of the enumerated statuses from any current status;
// there is no transition-adjacency restriction and the write is idempotent.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "order.update_status", "order_id", id)

	if !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	order, err := s.Repo.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		l.Error("update_status_error", "status", 500, "error", err)
		return nil, err
	}

	l.Info("update_status_success", "new_status", status)
	return order, nil
}
