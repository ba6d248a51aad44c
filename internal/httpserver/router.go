package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	mwauth "github.com/crumbline/bakeshop/internal/middleware/auth"
)

type Deps struct {
	AuthHandler     *AuthHandler
	ProductHandler  *ProductHandler
	OrderHandler    *OrderHandler
	WishlistHandler *WishlistHandler
	SearchHandler   *SearchHandler
	JWTSecret       []byte
	UploadDir       string
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = ErrorHandler

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.Static("/uploads", d.UploadDir)

	api := e.Group("/api")

	requireLogin := mwauth.RequireLogin(d.JWTSecret)

	auth := api.Group("/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)
	auth.GET("/me", d.AuthHandler.Me, requireLogin)

	products := api.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	if d.SearchHandler != nil && d.SearchHandler.ES != nil {
		products.GET("/search", d.SearchHandler.Search)
	}
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.POST("", d.ProductHandler.CreateProduct, requireLogin, mwauth.RequireAdmin)
	products.PUT("/:id", d.ProductHandler.UpdateProduct, requireLogin, mwauth.RequireAdmin)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct, requireLogin, mwauth.RequireAdmin)

	orders := api.Group("/orders", requireLogin)
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.GET("/myorders", d.OrderHandler.MyOrders)
	orders.GET("", d.OrderHandler.AllOrders, mwauth.RequireAdmin)
	orders.GET("/:id", d.OrderHandler.GetOrder, mwauth.RequireAdmin)
	orders.PUT("/:id/status", d.OrderHandler.UpdateStatus, mwauth.RequireAdmin)

	users := api.Group("/users", requireLogin)
	users.GET("/wishlist", d.WishlistHandler.GetWishlist)
	users.POST("/wishlist/:productId", d.WishlistHandler.AddToWishlist)
	users.DELETE("/wishlist/:productId", d.WishlistHandler.RemoveFromWishlist)
}
