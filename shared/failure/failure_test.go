package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"innkeep/shared/failure"
)

func TestFailureConstructors(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedMsg  string
	}{
		{
			name:         "bad request from error",
			err:          failure.BadRequest(errors.New("broken payload")),
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "broken payload",
		},
		{
			name:         "bad request from string",
			err:          failure.BadRequestFromString("invalid date"),
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "invalid date",
		},
		{
			name:         "unauthorized",
			err:          failure.Unauthorized("missing token"),
			expectedCode: http.StatusUnauthorized,
			expectedMsg:  "missing token",
		},
		{
			name:         "forbidden",
			err:          failure.Forbidden("admins only"),
			expectedCode: http.StatusForbidden,
			expectedMsg:  "admins only",
		},
		{
			name:         "not found",
			err:          failure.NotFound("hotel not found"),
			expectedCode: http.StatusNotFound,
			expectedMsg:  "hotel not found",
		},
		{
			name:         "conflict",
			err:          failure.Conflict("application not found or already processed"),
			expectedCode: http.StatusConflict,
			expectedMsg:  "application not found or already processed",
		},
		{
			name:         "internal error",
			err:          failure.InternalError(errors.New("db exploded")),
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "db exploded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.expectedCode {
				t.Errorf("expected code %d, got %d", tt.expectedCode, got)
			}
			if got := tt.err.Error(); got != tt.expectedMsg {
				t.Errorf("expected message %q, got %q", tt.expectedMsg, got)
			}
		})
	}
}

func TestBadRequestNilError(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestInternalErrorNilError(t *testing.T) {
	if err := failure.InternalError(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestGetCodeWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("service layer: %w", failure.NotFound("room type not found"))

	if got := failure.GetCode(wrapped); got != http.StatusNotFound {
		t.Errorf("expected code %d, got %d", http.StatusNotFound, got)
	}
}

func TestGetCodePlainError(t *testing.T) {
	if got := failure.GetCode(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("expected code %d, got %d", http.StatusInternalServerError, got)
	}
}
