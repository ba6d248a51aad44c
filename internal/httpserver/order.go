package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/crumbline/bakeshop/internal/events"
	"github.com/crumbline/bakeshop/internal/logging"
	mwauth "github.com/crumbline/bakeshop/internal/middleware/auth"
	"github.com/crumbline/bakeshop/internal/service"
	"github.com/crumbline/bakeshop/internal/transport"
)

type OrderHandler struct {
	Svc      *service.OrderService
	Producer *events.Producer
}

func (h *OrderHandler) publish(c echo.Context, event map[string]interface{}) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, events.TopicOrderEvents, fmt.Sprint(event["orderID"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	p, ok := mwauth.PrincipalFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
	}

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.PlaceOrder(ctx, p.ID, req)
	if err != nil {
		return httpError(err)
	}

	h.publish(c, map[string]interface{}{
		"type":    "order_created",
		"orderID": order.ID,
		"userID":  order.UserID,
		"total":   order.TotalAmount,
	})

	return respondData(c, http.StatusCreated, order)
}

func (h *OrderHandler) MyOrders(c echo.Context) error {
	p, ok := mwauth.PrincipalFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
	}

	orders, err := h.Svc.MyOrders(c.Request().Context(), p.ID)
	if err != nil {
		return httpError(err)
	}
	return respondList(c, http.StatusOK, orders, len(orders))
}

func (h *OrderHandler) AllOrders(c echo.Context) error {
	orders, err := h.Svc.AllOrders(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return respondList(c, http.StatusOK, orders, len(orders))
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	order, err := h.Svc.GetOrder(c.Request().Context(), uint(id))
	if err != nil {
		return httpError(err)
	}
	return respondData(c, http.StatusOK, order)
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_status")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	var req transport.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_status_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.UpdateStatus(ctx, uint(id), req.Status)
	if err != nil {
		return httpError(err)
	}

	h.publish(c, map[string]interface{}{
		"type":    "order_status_updated",
		"orderID": order.ID,
		"status":  order.Status,
	})

	return respondData(c, http.StatusOK, order)
}
