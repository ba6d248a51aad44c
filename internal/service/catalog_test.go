package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crumbline/bakeshop/internal/models"
	"github.com/crumbline/bakeshop/internal/repo"
	"github.com/crumbline/bakeshop/internal/transport"
)

func newCatalogService(t *testing.T) (*CatalogService, *repo.GormRepo) {
	r := &repo.GormRepo{DB: initTestDB(t)}
	return &CatalogService{Repo: r}, r
}

func TestDeleteProductReferencedByOrder(t *testing.T) {
	cat, r := newCatalogService(t)
	orders := &OrderService{Repo: r}

	prod, err := cat.CreateProduct(context.Background(), transport.CreateProductRequest{
		Name:        "Chocolate Truffle Cake",
		Description: "rich",
		Price:       599,
		Category:    "Cakes",
	}, "/uploads/a.jpg")
	require.NoError(t, err)

	order, err := orders.PlaceOrder(context.Background(), 1, transport.CreateOrderRequest{
		OrderItems:   []transport.OrderItemRequest{{Product: prod.ID, Quantity: 1, Price: 599}},
		ShippingInfo: validShipping(),
		TotalAmount:  599,
	})
	require.NoError(t, err)

	// deleting the catalog entry must not be blocked by the order reference
	require.NoError(t, cat.DeleteProduct(context.Background(), prod.ID))

	got, err := orders.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	require.Equal(t, prod.ID, got.Items[0].ProductID)
	require.Equal(t, float64(599), got.Items[0].Price)
	require.Nil(t, got.Items[0].Product)
}

func TestDeleteProductReferencedByWishlist(t *testing.T) {
	cat, r := newCatalogService(t)
	wl := &WishlistService{Repo: r}

	user := models.User{MobileNumber: "9876543210", PasswordHash: "x", Role: models.RoleUser}
	require.NoError(t, r.DB.Create(&user).Error)

	prod, err := cat.CreateProduct(context.Background(), transport.CreateProductRequest{
		Name:        "Butter Croissant",
		Description: "flaky",
		Price:       89,
		Category:    "Pastries",
	}, "/uploads/b.jpg")
	require.NoError(t, err)

	_, err = wl.Add(context.Background(), user.ID, prod.ID)
	require.NoError(t, err)

	require.NoError(t, cat.DeleteProduct(context.Background(), prod.ID))

	// the wishlist simply no longer resolves the deleted product
	products, err := wl.List(context.Background(), user.ID)
	require.NoError(t, err)
	require.Empty(t, products)
}
