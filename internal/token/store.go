package token

import (
	"context"
	"fmt"

	"github.com/retailpoint/possync/internal/crypto"
	"github.com/retailpoint/possync/internal/models"
	"github.com/retailpoint/possync/internal/storage"
)

// EncryptedStorage wraps a TokenStorage and encrypts token values before
// they reach the underlying store. Keys, platforms, and expiry stay in
// the clear so lookups and expiry checks work without the device key.
type EncryptedStorage struct {
	inner storage.TokenStorage
	key   []byte
}

// Compile-time check that EncryptedStorage implements TokenStorage
var _ storage.TokenStorage = (*EncryptedStorage)(nil)

// NewEncryptedStorage creates the encryption layer over inner.
// key must be exactly 32 bytes (derived from the device passphrase).
func NewEncryptedStorage(inner storage.TokenStorage, key []byte) (*EncryptedStorage, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("encryption key must be 32 bytes, got %d", len(key))
	}
	return &EncryptedStorage{inner: inner, key: key}, nil
}

// SaveToken encrypts the token value and stores the record
func (s *EncryptedStorage) SaveToken(ctx context.Context, token *models.TokenRecord) error {
	if token == nil {
		return fmt.Errorf("token record is nil")
	}

	encrypted, err := crypto.EncryptToBase64([]byte(token.Value), s.key)
	if err != nil {
		return fmt.Errorf("failed to encrypt token value: %w", err)
	}

	// copy so the caller's record keeps its plaintext value
	record := *token
	record.Value = encrypted

	return s.inner.SaveToken(ctx, &record)
}

// GetToken retrieves the record and decrypts its value
func (s *EncryptedStorage) GetToken(ctx context.Context, key models.TokenKey) (*models.TokenRecord, error) {
	stored, err := s.inner.GetToken(ctx, key)
	if err != nil {
		return nil, err
	}

	plaintext, err := crypto.DecryptFromBase64(stored.Value, s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt token value: %w", err)
	}

	record := *stored
	record.Value = string(plaintext)

	return &record, nil
}

// DeleteToken removes the record for the given key
func (s *EncryptedStorage) DeleteToken(ctx context.Context, key models.TokenKey) error {
	return s.inner.DeleteToken(ctx, key)
}

// DeletePlatformTokens removes all records for the platform
func (s *EncryptedStorage) DeletePlatformTokens(ctx context.Context, platform string) error {
	return s.inner.DeletePlatformTokens(ctx, platform)
}
