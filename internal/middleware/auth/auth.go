package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/crumbline/bakeshop/internal/models"
)

type Principal struct {
	ID   uint
	Role string
}

// RequireLogin resolves the bearer credential into a Principal stored on the
// echo context.
func RequireLogin(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, err := parseBearer(c, secret)
			if err != nil {
				return err
			}
			setUserContext(c, p)
			return next(c)
		}
	}
}

// RequireAdmin must be mounted after RequireLogin.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, ok := PrincipalFrom(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
		}
		if p.Role != models.RoleAdmin {
			return echo.NewHTTPError(http.StatusUnauthorized, "admin access required")
		}
		return next(c)
	}
}

func PrincipalFrom(c echo.Context) (Principal, bool) {
	id, ok1 := c.Get("userID").(uint)
	role, ok2 := c.Get("role").(string)
	if !ok1 || !ok2 {
		return Principal{}, false
	}
	return Principal{ID: id, Role: role}, true
}

func setUserContext(c echo.Context, p Principal) {
	c.Set("userID", p.ID)
	c.Set("role", p.Role)
}

func parseBearer(c echo.Context, secret []byte) (Principal, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		return Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}
	subRaw, ok := claims["sub"].(float64)
	if !ok {
		return Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid subject claim")
	}
	role, ok := claims["role"].(string)
	if !ok {
		return Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid role claim")
	}

	return Principal{ID: uint(subRaw), Role: role}, nil
}
