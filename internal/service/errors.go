package service

import (
	"errors"
	"fmt"

	"github.com/EliseyAgustin/Sistema-de-Inventario/pkg/validator"
)

// Domain errors. Handlers map these to HTTP statuses; anything else is
// treated as an internal failure.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrProductNotFound    = errors.New("product not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInsufficientStock  = errors.New("not enough stock available")
	ErrCategoryExists     = errors.New("category name already exists")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// validateStruct runs tag validation and folds the first failure into an
// ErrInvalidInput so handlers can map it to a 400.
func validateStruct(data interface{}) error {
	if errs := validator.ValidateStruct(data); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' failed on '%s'", ErrInvalidInput, first.FailedField, first.Tag)
	}
	return nil
}
