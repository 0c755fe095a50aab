package storage

import (
	"context"

	"github.com/retailpoint/possync/internal/models"
)

//go:generate moq -out token_mock.go . TokenStorage

// TokenStorage defines the durable store for platform credentials.
// This is the lowest storage layer - it works with raw record values
// (possibly already encrypted) and performs no encryption itself.
// All mutation goes through the token service, which serializes access.
type TokenStorage interface {
	// SaveToken creates or overwrites the record for the token's key.
	// At most one authoritative record exists per key.
	SaveToken(ctx context.Context, token *models.TokenRecord) error

	// GetToken returns the record for the given key
	// Returns ErrTokenNotFound if no record exists
	GetToken(ctx context.Context, key models.TokenKey) (*models.TokenRecord, error)

	// DeleteToken removes the record for the given key
	DeleteToken(ctx context.Context, key models.TokenKey) error

	// DeletePlatformTokens removes all records for the platform (logout)
	DeletePlatformTokens(ctx context.Context, platform string) error
}
