package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/crumbline/bakeshop/internal/events"
	"github.com/crumbline/bakeshop/internal/models"
	"github.com/crumbline/bakeshop/internal/repo"
	"github.com/crumbline/bakeshop/internal/service"
)

type testEnv struct {
	E        *echo.Echo
	DB       *gorm.DB
	Auth     *AuthHandler
	Product  *ProductHandler
	Order    *OrderHandler
	Wishlist *WishlistHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.User{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	r := &repo.GormRepo{DB: db}
	prod := &events.Producer{}

	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler

	return &testEnv{
		E:        e,
		DB:       db,
		Auth:     &AuthHandler{Svc: &service.AuthService{Repo: r, JWTSecret: []byte("test_secret")}, Producer: prod},
		Product:  &ProductHandler{Svc: &service.CatalogService{Repo: r}, Producer: prod, UploadDir: t.TempDir()},
		Order:    &OrderHandler{Svc: &service.OrderService{Repo: r}, Producer: prod},
		Wishlist: &WishlistHandler{Svc: &service.WishlistService{Repo: r}},
	}
}

// doJSONRequest builds an echo context for a handler-level call.
func (env *testEnv) doJSONRequest(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func asPrincipal(c echo.Context, id uint, role string) {
	c.Set("userID", id)
	c.Set("role", role)
}

func validShipping() models.ShippingInfo {
	return models.ShippingInfo{
		FullName:            "Asha Kulkarni",
		AddressLine:         "14 Hill Road",
		Pincode:             "400001",
		City:                "Mumbai",
		ContactMobileNumber: "9876543210",
	}
}
