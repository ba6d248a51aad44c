package transport

import "github.com/crumbline/bakeshop/internal/models"

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

type RegisterRequest struct {
	MobileNumber string `json:"mobileNumber"`
	Password     string `json:"password"`
}

type LoginRequest struct {
	MobileNumber string `json:"mobileNumber"`
	Password     string `json:"password"`
}

type AuthData struct {
	ID           uint   `json:"id"`
	MobileNumber string `json:"mobileNumber"`
	Role         string `json:"role"`
	Token        string `json:"token"`
}

type OrderItemRequest struct {
	Product  uint    `json:"product"`
	Quantity uint    `json:"quantity"`
	Price    float64 `json:"price"`
}

type CreateOrderRequest struct {
	OrderItems   []OrderItemRequest  `json:"orderItems"`
	ShippingInfo models.ShippingInfo `json:"shippingInfo"`
	TotalAmount  float64             `json:"totalAmount"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ProductFilter narrows the catalog listing. Search is a case-insensitive
// substring match on the product name.
type ProductFilter struct {
	Category      string
	Search        string
	AvailableOnly bool
}

type CreateProductRequest struct {
	Name        string  `json:"name" form:"name"`
	Description string  `json:"description" form:"description"`
	Price       float64 `json:"price" form:"price"`
	Category    string  `json:"category" form:"category"`
	IsAvailable *bool   `json:"isAvailable" form:"isAvailable"`
}

type PatchProductRequest struct {
	Name        *string  `json:"name" form:"name"`
	Description *string  `json:"description" form:"description"`
	Price       *float64 `json:"price" form:"price"`
	Category    *string  `json:"category" form:"category"`
	IsAvailable *bool    `json:"isAvailable" form:"isAvailable"`
}
