package errors

import (
	"fmt"
	"net/http"
	"reflect"

	"github.com/sirupsen/logrus"
)

// Error codes surfaced to clients so they can act on failures programmatically.
const (
	CodeValidation          = "VALIDATION_ERROR"
	CodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	CodeGenerationExhausted = "CODE_GENERATION_ERROR"
	CodeStorage             = "STORAGE_ERROR"
	CodeConcurrencyConflict = "CONCURRENCY_CONFLICT"
	CodeNotFound            = "NOT_FOUND"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeInternal            = "INTERNAL_ERROR"
)

type AppError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(statusCode int, code, message string) *AppError {
	return &AppError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
	}
}

func NewValidationError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeValidation, message)
}

func NewUnauthorizedError(message ...string) *AppError {
	if len(message) > 0 {
		return NewAppError(http.StatusUnauthorized, CodeUnauthorized, message[0])
	}
	return NewAppError(http.StatusUnauthorized, CodeUnauthorized, "Unauthorized")
}

func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message)
}

func NewInternalServerError(originalError error, message string) *AppError {
	logrus.Errorf("[%s] %s", reflect.TypeOf(originalError).String(), originalError)
	return NewAppError(http.StatusInternalServerError, CodeInternal, message)
}

// NewStorageError marks a transient persistence failure. The services retry
// these a bounded number of times before surfacing them.
func NewStorageError(originalError error, message string) *AppError {
	logrus.Errorf("[%s] %s", reflect.TypeOf(originalError).String(), originalError)
	return NewAppError(http.StatusServiceUnavailable, CodeStorage, message)
}

func NewConcurrencyConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeConcurrencyConflict, message)
}

// NewCodeGenerationError is returned after voucher code generation exhausted
// its collision retries.
func NewCodeGenerationError(attempts int) *AppError {
	return NewAppError(
		http.StatusInternalServerError,
		CodeGenerationExhausted,
		fmt.Sprintf("Failed to generate a unique voucher code after %d attempts", attempts),
	)
}

// InsufficientBalanceError carries the actual balance alongside the requested
// amount so the caller can render an actionable message.
type InsufficientBalanceError struct {
	*AppError
	Balance   int64
	Requested int64
}

func (e *InsufficientBalanceError) Unwrap() error {
	return e.AppError
}

func NewInsufficientBalanceError(balance, requested int64) *InsufficientBalanceError {
	return &InsufficientBalanceError{
		AppError: NewAppError(
			http.StatusUnprocessableEntity,
			CodeInsufficientBalance,
			fmt.Sprintf("Insufficient points balance: have %d, requested %d", balance, requested),
		),
		Balance:   balance,
		Requested: requested,
	}
}
