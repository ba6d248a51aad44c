package models

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusDelivered  = "Delivered"
	StatusCancelled  = "Cancelled"
)

// OrderStatuses is the closed set accepted by the status update endpoint.
var OrderStatuses = []string{StatusPending, StatusProcessing, StatusDelivered, StatusCancelled}

func ValidStatus(s string) bool {
	for _, st := range OrderStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// Categories the catalog accepts for a product.
var Categories = []string{"Cakes", "Pastries", "Cookies", "Breads", "Cupcakes", "Desserts", "Special"}

func ValidCategory(c string) bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null"                 json:"name"`
	Description string    `gorm:"not null"                 json:"description"`
	Price       float64   `gorm:"not null"                 json:"price"`
	Category    string    `gorm:"not null;index"           json:"category"`
	ImageURL    string    `gorm:"not null"                 json:"imageURL"`
	IsAvailable bool      `gorm:"default:true"             json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	MobileNumber string    `gorm:"unique;not null"          json:"mobileNumber"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	Role         string    `gorm:"not null;default:user"    json:"role"`
	Wishlist     []Product `gorm:"many2many:user_wishlist"  json:"wishlist,omitempty"`
}

type ShippingInfo struct {
	FullName            string `gorm:"not null" json:"fullName"`
	AddressLine         string `gorm:"not null" json:"addressLine"`
	Pincode             string `gorm:"not null" json:"pincode"`
	City                string `gorm:"not null" json:"city"`
	ContactMobileNumber string `gorm:"not null" json:"contactMobileNumber"`
}

// Order items and shipping info are written once at checkout; only Status
// mutates afterwards.
type Order struct {
	ID          uint         `gorm:"primaryKey"               json:"id"`
	UserID      uint         `gorm:"index;not null"           json:"userId"`
	User        *User        `json:"user,omitempty"`
	Items       []OrderItem  `json:"orderItems"`
	Shipping    ShippingInfo `gorm:"embedded;embeddedPrefix:shipping_" json:"shippingInfo"`
	Status      string       `gorm:"not null;default:Pending" json:"status"`
	TotalAmount float64      `gorm:"not null"                 json:"totalAmount"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// Price is the snapshot taken when the order was placed, never a live lookup
// of the catalog price.
type OrderItem struct {
	ID        uint     `gorm:"primaryKey"                  json:"id"`
	OrderID   uint     `gorm:"index;not null"              json:"orderId"`
	ProductID uint     `gorm:"not null"                    json:"productId"`
	Product   *Product `json:"product,omitempty"`
	Quantity  uint     `gorm:"not null;check:quantity > 0" json:"quantity"`
	Price     float64  `gorm:"not null"                    json:"price"`
}
