package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

var saltKey = []byte("device_salt")

// DeviceSalt returns the stored salt for device-key derivation, or nil
// when none has been generated yet
func (s *Storage) DeviceSalt(ctx context.Context) ([]byte, error) {
	var salt []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMeta)
		if bucket == nil {
			return fmt.Errorf("meta bucket not found")
		}

		if data := bucket.Get(saltKey); data != nil {
			salt = append([]byte(nil), data...)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return salt, nil
}

// SaveDeviceSalt persists the salt for device-key derivation
func (s *Storage) SaveDeviceSalt(ctx context.Context, salt []byte) error {
	if len(salt) == 0 {
		return fmt.Errorf("salt cannot be empty")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMeta)
		if bucket == nil {
			return fmt.Errorf("meta bucket not found")
		}

		if err := bucket.Put(saltKey, salt); err != nil {
			return fmt.Errorf("failed to save device salt: %w", err)
		}

		return nil
	})
}
