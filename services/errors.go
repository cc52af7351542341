package services

import (
	"errors"
	"fmt"
	"strings"

	"sweet-shop/constants"
)

// validationError marks input errors that map to a 400 response at the boundary.
type validationError struct {
	msg string
}

func (e *validationError) Error() string {
	return e.msg
}

func newValidationError(msg string) error {
	return &validationError{msg: msg}
}

// IsValidationError reports whether err belongs to the validation class.
func IsValidationError(err error) bool {
	var v *validationError
	return errors.As(err, &v)
}

var (
	ErrInvalidCredentials = errors.New(constants.ErrInvalidCredentials)
	ErrSweetNotFound      = errors.New(constants.ErrSweetNotFound)

	ErrDuplicateEmail      = newValidationError(constants.ErrDuplicateEmail)
	ErrInvalidEmail        = newValidationError(constants.ErrInvalidEmail)
	ErrWeakPassword        = newValidationError(constants.ErrWeakPassword)
	ErrInvalidRole         = newValidationError(constants.ErrInvalidRole)
	ErrDuplicateName       = newValidationError(constants.ErrDuplicateName)
	ErrInvalidPrice        = newValidationError(constants.ErrInvalidPrice)
	ErrNegativeQuantity    = newValidationError(constants.ErrNegativeQuantity)
	ErrNonPositiveQuantity = newValidationError(constants.ErrNonPositiveQuantity)
	ErrNegativeMinPrice    = newValidationError(constants.ErrNegativeMinPrice)
	ErrNegativeMaxPrice    = newValidationError(constants.ErrNegativeMaxPrice)
	ErrInvalidPriceRange   = newValidationError(constants.ErrInvalidPriceRange)
)

// isDuplicateKeyError matches unique-constraint violations from either driver:
// Postgres reports "duplicate key", SQLite "UNIQUE constraint failed".
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

func errMissingFields(fields []string) error {
	return newValidationError("Missing required fields: " + strings.Join(fields, ", "))
}

func errMissingField(field string) error {
	return newValidationError("Missing required field: " + field)
}

func errInsufficientStock(available int) error {
	return newValidationError(fmt.Sprintf(constants.ErrInsufficientStockFmt, available))
}
