package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/crumbline/bakeshop/internal/events"
	"github.com/crumbline/bakeshop/internal/logging"
	mwauth "github.com/crumbline/bakeshop/internal/middleware/auth"
	"github.com/crumbline/bakeshop/internal/service"
	"github.com/crumbline/bakeshop/internal/transport"
)

type AuthHandler struct {
	Svc      *service.AuthService
	Producer *events.Producer
}

func (h *AuthHandler) publish(c echo.Context, event map[string]interface{}) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, events.TopicUserEvents, fmt.Sprint(event["userID"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, token, err := h.Svc.Register(ctx, req.MobileNumber, req.Password)
	if err != nil {
		return httpError(err)
	}

	h.publish(c, map[string]interface{}{
		"type":   "user_registered",
		"userID": user.ID,
		"mobile": user.MobileNumber,
	})

	return respondData(c, http.StatusCreated, transport.AuthData{
		ID:           user.ID,
		MobileNumber: user.MobileNumber,
		Role:         user.Role,
		Token:        token,
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, token, err := h.Svc.Login(ctx, req.MobileNumber, req.Password)
	if err != nil {
		return httpError(err)
	}

	h.publish(c, map[string]interface{}{
		"type":   "user_logged_in",
		"userID": user.ID,
		"mobile": user.MobileNumber,
	})

	return respondData(c, http.StatusOK, transport.AuthData{
		ID:           user.ID,
		MobileNumber: user.MobileNumber,
		Role:         user.Role,
		Token:        token,
	})
}

func (h *AuthHandler) Me(c echo.Context) error {
	p, ok := mwauth.PrincipalFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
	}

	user, err := h.Svc.Me(c.Request().Context(), p.ID)
	if err != nil {
		return httpError(err)
	}
	return respondData(c, http.StatusOK, user)
}
