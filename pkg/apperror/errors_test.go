package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	e := New("CFG_001", "bad url", http.StatusBadRequest)
	assert.Equal(t, "[CFG_001] bad url", e.Error())
}

func TestAppError_ErrorWithWrapped(t *testing.T) {
	inner := errors.New("connection refused")
	e := Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, inner)
	assert.Equal(t, "[SYS_001] Internal database error: connection refused", e.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	e := ErrDatabaseError(inner)
	assert.True(t, errors.Is(e, inner))
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"invalid url", ErrInvalidURL(), "CFG_001", http.StatusBadRequest},
		{"no events", ErrNoEvents(), "CFG_002", http.StatusBadRequest},
		{"unknown event", ErrUnknownEvent("billing.created"), "CFG_003", http.StatusBadRequest},
		{"timeout range", ErrTimeoutOutOfRange(), "CFG_004", http.StatusBadRequest},
		{"retry range", ErrRetryAttemptsOutOfRange(), "CFG_005", http.StatusBadRequest},
		{"endpoint not found", ErrEndpointNotFound(), "WH_001", http.StatusNotFound},
		{"delivery not found", ErrDeliveryNotFound(), "WH_002", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestErrUnknownEvent_IncludesKind(t *testing.T) {
	e := ErrUnknownEvent("invoice.created")
	assert.Contains(t, e.Message, "invoice.created")
}
