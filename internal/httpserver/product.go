package httpserver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/crumbline/bakeshop/internal/events"
	"github.com/crumbline/bakeshop/internal/logging"
	"github.com/crumbline/bakeshop/internal/service"
	"github.com/crumbline/bakeshop/internal/transport"
)

type ProductHandler struct {
	Svc       *service.CatalogService
	Producer  *events.Producer
	UploadDir string
}

func (h *ProductHandler) publish(c echo.Context, event map[string]interface{}) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, events.TopicProductEvents, fmt.Sprint(event["productID"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	filter := transport.ProductFilter{
		Category:      c.QueryParam("category"),
		Search:        c.QueryParam("search"),
		AvailableOnly: c.QueryParam("available") == "true",
	}

	products, err := h.Svc.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	return respondList(c, http.StatusOK, products, len(products))
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	product, err := h.Svc.GetProduct(c.Request().Context(), uint(id))
	if err != nil {
		return httpError(err)
	}
	return respondData(c, http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("product_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	imageURL, err := h.saveImage(c)
	if err != nil {
		l.Warn("product_create_error", "status", 400, "reason", "image upload", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "please upload an image")
	}

	prod, err := h.Svc.CreateProduct(ctx, req, imageURL)
	if err != nil {
		h.removeImage(ctx, imageURL)
		return httpError(err)
	}

	h.publish(c, map[string]interface{}{
		"type":      "product_created",
		"productID": prod.ID,
		"name":      prod.Name,
	})

	return respondData(c, http.StatusCreated, prod)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update_product")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	var req transport.PatchProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("product_update_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	// The replacement image is stored before any field write so a failed
	// upload or rejected patch leaves the record untouched.
	var newImage string
	if _, ferr := c.FormFile("image"); ferr == nil {
		newImage, err = h.saveImage(c)
		if err != nil {
			l.Warn("product_update_error", "status", 400, "reason", "image upload", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "image upload failed")
		}
	}

	prod, err := h.Svc.PatchProduct(ctx, req, uint(id))
	if err != nil {
		h.removeImage(ctx, newImage)
		return httpError(err)
	}

	if newImage != "" {
		old := prod.ImageURL
		prod, err = h.Svc.SetProductImage(ctx, uint(id), newImage)
		if err != nil {
			h.removeImage(ctx, newImage)
			return httpError(err)
		}
		h.removeImage(ctx, old)
	}

	h.publish(c, map[string]interface{}{
		"type":      "product_updated",
		"productID": prod.ID,
		"name":      prod.Name,
	})

	return respondData(c, http.StatusOK, prod)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	prod, err := h.Svc.GetProduct(ctx, uint(id))
	if err != nil {
		return httpError(err)
	}

	if err := h.Svc.DeleteProduct(ctx, uint(id)); err != nil {
		return httpError(err)
	}
	h.removeImage(ctx, prod.ImageURL)

	h.publish(c, map[string]interface{}{
		"type":      "product_deleted",
		"productID": uint(id),
	})

	return respondMessage(c, http.StatusOK, "product deleted successfully", nil)
}

func (h *ProductHandler) saveImage(c echo.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	dst, err := os.Create(filepath.Join(h.UploadDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

// removeImage deletes local upload assets only; external URLs are left alone.
func (h *ProductHandler) removeImage(ctx context.Context, imageURL string) {
	if !strings.HasPrefix(imageURL, "/uploads/") {
		return
	}
	path := filepath.Join(h.UploadDir, filepath.Base(imageURL))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logging.FromContext(ctx).Warn("remove image failed", "path", path, "error", err)
	}
}
