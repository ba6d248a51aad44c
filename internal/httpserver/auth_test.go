package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/crumbline/bakeshop/internal/models"
	"github.com/crumbline/bakeshop/internal/transport"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	body := transport.RegisterRequest{MobileNumber: "9876543210", Password: "password"}

	rec, c := env.doJSONRequest(t, http.MethodPost, "/api/auth/register", body)
	require.NoError(t, env.Auth.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool               `json:"success"`
		Data    transport.AuthData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "9876543210", resp.Data.MobileNumber)
	require.Equal(t, models.RoleUser, resp.Data.Role)
	require.NotEmpty(t, resp.Data.Token)

	var stored models.User
	require.NoError(t, env.DB.Where("mobile_number = ?", "9876543210").First(&stored).Error)
	require.NotEqual(t, "password", stored.PasswordHash)

	// same mobile number registers only once
	_, c2 := env.doJSONRequest(t, http.MethodPost, "/api/auth/register", body)
	err := env.Auth.Register(c2)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestRegisterRejectsBadMobile(t *testing.T) {
	env := newTestEnv(t)

	body := transport.RegisterRequest{MobileNumber: "98765432", Password: "password"}

	_, c := env.doJSONRequest(t, http.MethodPost, "/api/auth/register", body)
	err := env.Auth.Register(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(t, http.MethodPost, "/api/auth/register",
		transport.RegisterRequest{MobileNumber: "9876543210", Password: "password"})
	require.NoError(t, env.Auth.Register(c))

	rec, c2 := env.doJSONRequest(t, http.MethodPost, "/api/auth/login",
		transport.LoginRequest{MobileNumber: "9876543210", Password: "password"})
	require.NoError(t, env.Auth.Login(c2))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool               `json:"success"`
		Data    transport.AuthData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)

	_, c3 := env.doJSONRequest(t, http.MethodPost, "/api/auth/login",
		transport.LoginRequest{MobileNumber: "9876543210", Password: "wrong"})
	err := env.Auth.Login(c3)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)

	user := models.User{MobileNumber: "9876543210", PasswordHash: "x", Role: models.RoleUser}
	require.NoError(t, env.DB.Create(&user).Error)

	rec, c := env.doJSONRequest(t, http.MethodGet, "/api/auth/me", nil)
	asPrincipal(c, user.ID, user.Role)
	require.NoError(t, env.Auth.Me(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool        `json:"success"`
		Data    models.User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "9876543210", resp.Data.MobileNumber)
}
