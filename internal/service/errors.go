package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation") // 400
	ErrConflict   = errors.New("conflict")   // 400 (matches the envelope the frontend expects)
	ErrAuth       = errors.New("auth")       // 401
	ErrNotFound   = errors.New("not found")  // 404
)

var (
	ErrEmptyCart          = fmt.Errorf("%w: no order items", ErrValidation)
	ErrInvalidStatus      = fmt.Errorf("%w: invalid order status", ErrValidation)
	ErrOrderNotFound      = fmt.Errorf("%w: order not found", ErrNotFound)
	ErrProductNotFound    = fmt.Errorf("%w: product not found", ErrNotFound)
	ErrUserExists         = fmt.Errorf("%w: user already exists with this mobile number", ErrConflict)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrAuth)
)

func invalidShipping(field string) error {
	return fmt.Errorf("%w: shipping info: %s", ErrValidation, field)
}
