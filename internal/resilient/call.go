// Package resilient wraps authenticated platform calls with a single
// forced-refresh retry: when a call fails with an authentication error,
// the token is refreshed once and the call repeated with the new token.
package resilient

import (
	"context"
	"errors"
	"fmt"

	"github.com/retailpoint/possync/internal/models"
	"github.com/retailpoint/possync/internal/platform"
)

//go:generate moq -out tokensource_mock.go . TokenSource

// ErrNoToken indicates no usable token could be obtained for the call
var ErrNoToken = errors.New("no token available for platform")

// TokenSource provides tokens for authenticated calls. Implemented by
// the token service.
type TokenSource interface {
	GetToken(ctx context.Context, platform, tokenType string, forceRefresh bool) (*models.TokenRecord, error)
}

// CallFunc performs one authenticated attempt with the given token
type CallFunc func(ctx context.Context, token string) error

// WithTokenRefresh runs fn with a token for platformName and retries
// exactly once on an authentication failure, after forcing a refresh.
// A second authentication failure propagates: retrying further with the
// same credentials cannot succeed. Non-auth errors propagate untouched.
func WithTokenRefresh(ctx context.Context, tokens TokenSource, platformName string, fn CallFunc) error {
	record, err := tokens.GetToken(ctx, platformName, models.TokenTypeAccess, false)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoToken, err)
	}

	err = fn(ctx, record.Value)
	if err == nil || !platform.IsAuthError(err) {
		return err
	}

	record, refreshErr := tokens.GetToken(ctx, platformName, models.TokenTypeAccess, true)
	if refreshErr != nil {
		// refresh failed, surface the original rejection with the cause
		return fmt.Errorf("token refresh failed after auth error (%v): %w", refreshErr, err)
	}

	return fn(ctx, record.Value)
}
