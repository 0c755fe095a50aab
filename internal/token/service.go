// Package token owns the credential lifecycle for all platforms: reads,
// refreshes, and clears pass through one service so concurrent callers
// can never race each other into duplicate refreshes.
package token

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/retailpoint/possync/internal/models"
	"github.com/retailpoint/possync/internal/storage"
)

// DefaultExpiryMargin is the safety margin before expiry at which a
// stored token is refreshed rather than handed out.
const DefaultExpiryMargin = 60 * time.Second

// refreshCall is one in-flight refresh. Callers that arrive while it
// runs wait on done and share its outcome instead of starting a second
// refresh for the same key.
type refreshCall struct {
	done  chan struct{}
	token *models.TokenRecord
	err   error
}

func (c *refreshCall) wait(ctx context.Context) (*models.TokenRecord, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-c.done:
		return c.token, c.err
	}
}

// Service is the single source of truth for platform credentials
type Service struct {
	storage   storage.TokenStorage
	logger    *slog.Logger
	margin    time.Duration
	now       func() time.Time
	mu        sync.Mutex
	providers map[string]RefreshProvider
	inflight  map[models.TokenKey]*refreshCall
}

// NewService creates a new token service over the given storage
func NewService(tokenStorage storage.TokenStorage, logger *slog.Logger) *Service {
	return &Service{
		storage:   tokenStorage,
		logger:    logger,
		margin:    DefaultExpiryMargin,
		now:       time.Now,
		providers: make(map[string]RefreshProvider),
		inflight:  make(map[models.TokenKey]*refreshCall),
	}
}

// RegisterProvider associates a refresh strategy with a platform.
// The last registration for a platform wins.
func (s *Service) RegisterProvider(platform string, provider RefreshProvider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.providers[platform] = provider
}

// GetToken returns a usable token for the (platform, tokenType) key.
//
// If a refresh for the key is already in flight, the caller joins it
// rather than starting a second one. A stored token outside the expiry
// margin is returned as-is unless forceRefresh is set. When a refresh is
// needed and a provider is registered, exactly one refresh runs and its
// result is persisted; without a provider the stored value is returned
// even when stale, as a last resort.
func (s *Service) GetToken(ctx context.Context, platform, tokenType string, forceRefresh bool) (*models.TokenRecord, error) {
	key := models.TokenKey{Platform: platform, Type: tokenType}

	// the mutex guards only the registry and provider maps; the storage
	// read runs outside it so a slow read for one platform never blocks
	// callers for another
	s.mu.Lock()
	if call, ok := s.inflight[key]; ok {
		s.mu.Unlock()
		return call.wait(ctx)
	}
	provider, hasProvider := s.providers[platform]
	s.mu.Unlock()

	stored, err := s.storage.GetToken(ctx, key)
	if err != nil && !errors.Is(err, storage.ErrTokenNotFound) {
		return nil, fmt.Errorf("failed to read token: %w", err)
	}

	if stored != nil && !forceRefresh && !stored.ExpiresWithin(s.now(), s.margin) {
		return stored, nil
	}

	if !hasProvider {
		if stored == nil {
			return nil, storage.ErrTokenNotFound
		}
		// no refresh strategy: hand back whatever we have, stale or not
		if stored.Expired(s.now()) {
			s.logger.Warn("returning expired token, no refresh provider registered",
				"platform", platform, "type", tokenType)
		}
		return stored, nil
	}

	// another caller may have registered a refresh while we were reading,
	// so check the registry again before claiming the key
	s.mu.Lock()
	if call, ok := s.inflight[key]; ok {
		s.mu.Unlock()
		return call.wait(ctx)
	}
	call := &refreshCall{done: make(chan struct{})}
	s.inflight[key] = call
	s.mu.Unlock()

	fresh, refreshErr := s.refresh(ctx, key, provider)

	switch {
	case refreshErr == nil:
		call.token = fresh
	case !forceRefresh && stored != nil:
		// routine refresh failed but a stored record remains: fall back
		// to the stale value rather than failing the caller outright
		s.logger.Warn("token refresh failed, falling back to stored token",
			"platform", platform, "type", tokenType, "error", refreshErr)
		call.token = stored
	default:
		// a forced refresh exists to replace a rejected token; the stale
		// value is useless to that caller, so the error propagates
		call.err = refreshErr
	}

	s.mu.Lock()
	delete(s.inflight, key)
	s.mu.Unlock()
	close(call.done)

	return call.token, call.err
}

// refresh runs the provider exchange and persists what it minted
func (s *Service) refresh(ctx context.Context, key models.TokenKey, provider RefreshProvider) (*models.TokenRecord, error) {
	credential, err := s.storage.GetToken(ctx, models.TokenKey{
		Platform: key.Platform,
		Type:     models.TokenTypeRefresh,
	})
	if err != nil && !errors.Is(err, storage.ErrTokenNotFound) {
		return nil, fmt.Errorf("failed to read refresh credential: %w", err)
	}

	result, err := provider.Refresh(ctx, credential)
	if err != nil {
		return nil, fmt.Errorf("provider refresh failed: %w", err)
	}
	if result == nil || result.Access == nil {
		return nil, fmt.Errorf("provider returned no access token")
	}

	access := result.Access
	if access.ExpiresAt == nil {
		access.ExpiresAt = expiryFromJWT(access.Value)
	}

	if err := s.storage.SaveToken(ctx, access); err != nil {
		return nil, fmt.Errorf("failed to persist refreshed token: %w", err)
	}

	if result.Refresh != nil {
		// platform rotated the refresh credential
		if err := s.storage.SaveToken(ctx, result.Refresh); err != nil {
			return nil, fmt.Errorf("failed to persist rotated refresh token: %w", err)
		}
	}

	s.logger.Info("token refreshed", "platform", key.Platform, "type", key.Type)

	if key.Type == models.TokenTypeRefresh {
		if result.Refresh == nil {
			return nil, fmt.Errorf("provider did not rotate refresh token")
		}
		return result.Refresh, nil
	}
	return access, nil
}

// HasValidToken reports whether a non-expired record exists for the key.
// It never triggers a refresh.
func (s *Service) HasValidToken(ctx context.Context, platform, tokenType string) (bool, error) {
	stored, err := s.storage.GetToken(ctx, models.TokenKey{Platform: platform, Type: tokenType})
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read token: %w", err)
	}
	return !stored.Expired(s.now()), nil
}

// StoreToken persists a token record directly (e.g. after onboarding)
func (s *Service) StoreToken(ctx context.Context, record *models.TokenRecord) error {
	if record == nil {
		return fmt.Errorf("token record is nil")
	}
	if record.ExpiresAt == nil {
		record.ExpiresAt = expiryFromJWT(record.Value)
	}
	if err := s.storage.SaveToken(ctx, record); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	return nil
}

// ClearToken removes the record for one (platform, tokenType) key
func (s *Service) ClearToken(ctx context.Context, platform, tokenType string) error {
	err := s.storage.DeleteToken(ctx, models.TokenKey{Platform: platform, Type: tokenType})
	if err != nil && !errors.Is(err, storage.ErrTokenNotFound) {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}

// ClearPlatformTokens removes all records for a platform (logout)
func (s *Service) ClearPlatformTokens(ctx context.Context, platform string) error {
	if err := s.storage.DeletePlatformTokens(ctx, platform); err != nil {
		return fmt.Errorf("failed to clear platform tokens: %w", err)
	}
	s.logger.Info("platform tokens cleared", "platform", platform)
	return nil
}
