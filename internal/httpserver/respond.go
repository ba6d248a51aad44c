package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crumbline/bakeshop/internal/service"
	"github.com/crumbline/bakeshop/internal/transport"
)

func respondData(c echo.Context, code int, data interface{}) error {
	return c.JSON(code, transport.Response{Success: true, Data: data})
}

func respondList(c echo.Context, code int, data interface{}, count int) error {
	return c.JSON(code, transport.Response{Success: true, Count: &count, Data: data})
}

func respondMessage(c echo.Context, code int, message string, data interface{}) error {
	return c.JSON(code, transport.Response{Success: true, Message: message, Data: data})
}

// ErrorHandler converts every error reaching echo into the
// {success:false, message} envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	message := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprintf("%v", he.Message)
	}
	_ = c.JSON(code, transport.Response{Success: false, Message: message})
}

// httpError maps service sentinels onto the error taxonomy: validation and
// conflicts are 400, auth 401, missing records 404, the rest 500 with the
// underlying message surfaced.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrConflict):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAuth):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
