package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Endpoint Configuration (CFG) ----
// Rejected synchronously at registration; never stored.

func ErrInvalidURL() *AppError {
	return New("CFG_001", "Webhook URL must be a well-formed absolute URL", http.StatusBadRequest)
}

func ErrNoEvents() *AppError {
	return New("CFG_002", "At least one subscribed event is required", http.StatusBadRequest)
}

func ErrUnknownEvent(event string) *AppError {
	return New("CFG_003", fmt.Sprintf("Unknown event kind: %s", event), http.StatusBadRequest)
}

func ErrTimeoutOutOfRange() *AppError {
	return New("CFG_004", "Timeout must be between 1000 and 30000 milliseconds", http.StatusBadRequest)
}

func ErrRetryAttemptsOutOfRange() *AppError {
	return New("CFG_005", "Retry attempts must be between 0 and 5", http.StatusBadRequest)
}

func ErrMissingName() *AppError {
	return New("CFG_006", "Endpoint name is required", http.StatusBadRequest)
}

// ---- Webhook Operations (WH) ----

func ErrEndpointNotFound() *AppError {
	return New("WH_001", "Webhook endpoint not found", http.StatusNotFound)
}

func ErrDeliveryNotFound() *AppError {
	return New("WH_002", "Webhook delivery not found", http.StatusNotFound)
}

func ErrDeliveryAlreadyDelivered() *AppError {
	return New("WH_003", "Webhook delivery was already delivered", http.StatusConflict)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrSecretGeneration(err error) *AppError {
	return Wrap("SYS_002", "Failed to generate endpoint secret", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a generic CFG validation error.
func Validation(message string) *AppError {
	return New("CFG_000", message, http.StatusBadRequest)
}
