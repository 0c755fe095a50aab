package platform

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAuthError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{
			name: "401 status",
			err:  &APIError{StatusCode: http.StatusUnauthorized, Message: "nope"},
			want: true,
		},
		{
			name: "wrapped 401",
			err:  fmt.Errorf("delivery request failed: %w", &APIError{StatusCode: http.StatusUnauthorized, Message: "nope"}),
			want: true,
		},
		{
			name: "403 with token expired message",
			err:  &APIError{StatusCode: http.StatusForbidden, Message: "Token expired, please re-authenticate"},
			want: true,
		},
		{
			name: "plain error with invalid credentials message",
			err:  errors.New("platform said: invalid credentials"),
			want: true,
		},
		{
			name: "500 status",
			err:  &APIError{StatusCode: http.StatusInternalServerError, Message: "boom"},
			want: false,
		},
		{
			name: "network error",
			err:  errors.New("dial tcp: connection refused"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAuthError(tt.err))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{
			name: "500",
			err:  &APIError{StatusCode: http.StatusInternalServerError, Message: "boom"},
			want: true,
		},
		{
			name: "503",
			err:  &APIError{StatusCode: http.StatusServiceUnavailable, Message: "maintenance"},
			want: true,
		},
		{
			name: "429 rate limited",
			err:  &APIError{StatusCode: http.StatusTooManyRequests, Message: "slow down"},
			want: true,
		},
		{
			name: "408 request timeout",
			err:  &APIError{StatusCode: http.StatusRequestTimeout, Message: "timeout"},
			want: true,
		},
		{
			name: "400 bad request",
			err:  &APIError{StatusCode: http.StatusBadRequest, Message: "malformed"},
			want: false,
		},
		{
			name: "401 after spent refresh",
			err:  &APIError{StatusCode: http.StatusUnauthorized, Message: "revoked"},
			want: false,
		},
		{
			name: "422 validation",
			err:  &APIError{StatusCode: http.StatusUnprocessableEntity, Message: "bad sku"},
			want: false,
		},
		{
			name: "local validation failure",
			err:  fmt.Errorf("%w: order has no line items", ErrInvalid),
			want: false,
		},
		{
			name: "deadline exceeded",
			err:  fmt.Errorf("request failed: %w", context.DeadlineExceeded),
			want: true,
		},
		{
			name: "net timeout",
			err:  fmt.Errorf("request failed: %w", &net.DNSError{Err: "timeout", IsTimeout: true}),
			want: true,
		},
		{
			name: "bare transport error",
			err:  errors.New("connection reset by peer"),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{StatusCode: 502, Message: "bad gateway"}
	assert.Equal(t, "platform error (502): bad gateway", err.Error())
}
