package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds surfaced to API clients so they can decide whether to retry
// or show the failure to the end user.
const (
	KindNotFound          = "not_found"
	KindValidation        = "validation_error"
	KindAlreadyExists     = "already_exists"
	KindEmptyCart         = "empty_cart"
	KindInsufficientStock = "insufficient_stock"
	KindNegativeStock     = "negative_stock"
	KindTransactionFailed = "transaction_failed"
	KindUnauthorized      = "unauthorized"
	KindRateLimited       = "rate_limited"
	KindForbidden         = "forbidden"
	KindInternal          = "internal_error"
)

// StockConflict carries the details of a failed stock check.
type StockConflict struct {
	Product   string `json:"product"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int            `json:"-"`
	Kind    string         `json:"error"`
	Message string         `json:"message"`
	Stock   *StockConflict `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound           = &AppError{Code: http.StatusNotFound, Kind: KindNotFound, Message: "Resource not found"}
	ErrUnauthorized       = &AppError{Code: http.StatusUnauthorized, Kind: KindUnauthorized, Message: "Unauthorized"}
	ErrForbidden          = &AppError{Code: http.StatusForbidden, Kind: KindForbidden, Message: "Forbidden"}
	ErrInvalidCredentials = &AppError{Code: http.StatusUnauthorized, Kind: KindUnauthorized, Message: "Invalid username or password"}
	ErrInvalidToken       = &AppError{Code: http.StatusUnauthorized, Kind: KindUnauthorized, Message: "Invalid token"}
	ErrEmptyCart          = &AppError{Code: http.StatusBadRequest, Kind: KindEmptyCart, Message: "Cart is empty"}
	ErrInternalServer     = &AppError{Code: http.StatusInternalServerError, Kind: KindInternal, Message: "Internal server error"}
)

// NewNotFoundError creates a not found error for a named resource
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: resource + " not found",
	}
}

// NewValidationError creates a validation error with a custom message
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: message,
	}
}

// NewConflictError creates an already-exists error with a custom message
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Kind:    KindAlreadyExists,
		Message: message,
	}
}

// NewInsufficientStockError reports a checkout stock check failure.
func NewInsufficientStockError(product string, requested, available int) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindInsufficientStock,
		Message: fmt.Sprintf("Insufficient stock for %q: requested %d, available %d", product, requested, available),
		Stock: &StockConflict{
			Product:   product,
			Requested: requested,
			Available: available,
		},
	}
}

// NewNegativeStockError reports a manual adjustment that would drive stock below zero.
func NewNegativeStockError(product string, current, delta int) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindNegativeStock,
		Message: fmt.Sprintf("Stock of %q cannot go negative: current %d, delta %d", product, current, delta),
	}
}

// NewTransactionFailedError wraps an unexpected failure inside the atomic
// checkout unit. The unit has already been rolled back by the time this is
// returned.
func NewTransactionFailedError(err error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindTransactionFailed,
		Message: "Checkout failed and was rolled back: " + err.Error(),
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindInternal,
		Message: err.Error(),
	}
}
