package boltdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/retailpoint/possync/internal/models"
	"github.com/retailpoint/possync/internal/storage"
)

// tokenKey builds the bucket key for a (platform, token type) pair
func tokenKey(key models.TokenKey) []byte {
	return []byte(key.Platform + "/" + key.Type)
}

// SaveToken stores a token record, overwriting any existing record for
// the same (platform, token type) key
func (s *Storage) SaveToken(ctx context.Context, token *models.TokenRecord) error {
	if token == nil || token.Platform == "" || token.Type == "" {
		return fmt.Errorf("token record must have platform and type")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTokens)
		if bucket == nil {
			return fmt.Errorf("tokens bucket not found")
		}

		data, err := json.Marshal(token)
		if err != nil {
			return fmt.Errorf("failed to marshal token: %w", err)
		}

		if err := bucket.Put(tokenKey(token.Key()), data); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}

		return nil
	})
}

// GetToken retrieves a token record by key
func (s *Storage) GetToken(ctx context.Context, key models.TokenKey) (*models.TokenRecord, error) {
	var token *models.TokenRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTokens)
		if bucket == nil {
			return fmt.Errorf("tokens bucket not found")
		}

		data := bucket.Get(tokenKey(key))
		if data == nil {
			return storage.ErrTokenNotFound
		}

		token = &models.TokenRecord{}
		if err := json.Unmarshal(data, token); err != nil {
			return fmt.Errorf("failed to unmarshal token: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return token, nil
}

// DeleteToken removes the record for the given key
func (s *Storage) DeleteToken(ctx context.Context, key models.TokenKey) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTokens)
		if bucket == nil {
			return fmt.Errorf("tokens bucket not found")
		}

		if bucket.Get(tokenKey(key)) == nil {
			return storage.ErrTokenNotFound
		}

		if err := bucket.Delete(tokenKey(key)); err != nil {
			return fmt.Errorf("failed to delete token: %w", err)
		}

		return nil
	})
}

// DeletePlatformTokens removes all token records for a platform (logout)
func (s *Storage) DeletePlatformTokens(ctx context.Context, platform string) error {
	prefix := []byte(platform + "/")

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTokens)
		if bucket == nil {
			return fmt.Errorf("tokens bucket not found")
		}

		c := bucket.Cursor()
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			if err := c.Delete(); err != nil {
				return fmt.Errorf("failed to delete token %s: %w", k, err)
			}
		}

		return nil
	})
}
