package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/crumbline/bakeshop/internal/models"
)

var testSecret = []byte("test-secret")

func signedToken(t *testing.T, id uint, role string, ttl time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  float64(id),
		"role": role,
		"exp":  time.Now().Add(ttl).Unix(),
	})
	s, err := token.SignedString(testSecret)
	require.NoError(t, err)
	return s
}

func callWithAuth(t *testing.T, header string, handler echo.HandlerFunc) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	c := e.NewContext(req, httptest.NewRecorder())
	return RequireLogin(testSecret)(handler)(c)
}

func TestRequireLoginSetsPrincipal(t *testing.T) {
	token := signedToken(t, 7, models.RoleUser, time.Hour)

	err := callWithAuth(t, "Bearer "+token, func(c echo.Context) error {
		p, ok := PrincipalFrom(c)
		require.True(t, ok)
		require.Equal(t, uint(7), p.ID)
		require.Equal(t, models.RoleUser, p.Role)
		return nil
	})
	require.NoError(t, err)
}

func TestRequireLoginRejects(t *testing.T) {
	pass := func(c echo.Context) error { return nil }

	cases := map[string]string{
		"missing header": "",
		"not bearer":     "Basic abc",
		"garbage token":  "Bearer not.a.token",
		"expired":        "Bearer " + signedToken(t, 7, models.RoleUser, -time.Hour),
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			err := callWithAuth(t, header, pass)
			he, ok := err.(*echo.HTTPError)
			require.True(t, ok, "expected HTTPError")
			require.Equal(t, http.StatusUnauthorized, he.Code)
		})
	}
}

func TestRequireLoginRejectsWrongSecret(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  float64(7),
		"role": models.RoleUser,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	herr := callWithAuth(t, "Bearer "+s, func(c echo.Context) error { return nil })
	he, ok := herr.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestRequireAdmin(t *testing.T) {
	pass := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	setUserContext(c, Principal{ID: 1, Role: models.RoleAdmin})
	require.NoError(t, RequireAdmin(pass)(c))

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	setUserContext(c, Principal{ID: 2, Role: models.RoleUser})
	err := RequireAdmin(pass)(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusUnauthorized, he.Code)

	// no principal at all
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	err = RequireAdmin(pass)(c)
	he, ok = err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusUnauthorized, he.Code)
}
