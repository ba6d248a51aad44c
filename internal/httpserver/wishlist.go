package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	mwauth "github.com/crumbline/bakeshop/internal/middleware/auth"
	"github.com/crumbline/bakeshop/internal/service"
)

type WishlistHandler struct {
	Svc *service.WishlistService
}

func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	p, ok := mwauth.PrincipalFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
	}

	products, err := h.Svc.List(c.Request().Context(), p.ID)
	if err != nil {
		return httpError(err)
	}
	return respondData(c, http.StatusOK, products)
}

func (h *WishlistHandler) AddToWishlist(c echo.Context) error {
	p, ok := mwauth.PrincipalFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
	}

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil || productID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "productId is not an integer")
	}

	wishlist, err := h.Svc.Add(c.Request().Context(), p.ID, uint(productID))
	if err != nil {
		return httpError(err)
	}
	return respondMessage(c, http.StatusOK, "product added to wishlist", wishlist)
}

func (h *WishlistHandler) RemoveFromWishlist(c echo.Context) error {
	p, ok := mwauth.PrincipalFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
	}

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil || productID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "productId is not an integer")
	}

	wishlist, err := h.Svc.Remove(c.Request().Context(), p.ID, uint(productID))
	if err != nil {
		return httpError(err)
	}
	return respondMessage(c, http.StatusOK, "product removed from wishlist", wishlist)
}
