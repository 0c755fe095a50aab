package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/retailpoint/possync/internal/models"
	"github.com/retailpoint/possync/internal/storage"
)

// SaveOrder stores an order keyed by its local ID
func (s *Storage) SaveOrder(ctx context.Context, order *models.Order) error {
	if order == nil || order.LocalID == "" {
		return fmt.Errorf("order must have a local ID")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOrders)
		if bucket == nil {
			return fmt.Errorf("orders bucket not found")
		}

		data, err := json.Marshal(order)
		if err != nil {
			return fmt.Errorf("failed to marshal order: %w", err)
		}

		if err := bucket.Put([]byte(order.LocalID), data); err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}

		return nil
	})
}

// GetOrder retrieves an order by local ID
func (s *Storage) GetOrder(ctx context.Context, localID string) (*models.Order, error) {
	var order *models.Order

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOrders)
		if bucket == nil {
			return fmt.Errorf("orders bucket not found")
		}

		data := bucket.Get([]byte(localID))
		if data == nil {
			return storage.ErrOrderNotFound
		}

		order = &models.Order{}
		if err := json.Unmarshal(data, order); err != nil {
			return fmt.Errorf("failed to unmarshal order: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return order, nil
}

// ListOrdersByStatus returns all orders with the given sync status ordered
// by creation time ascending
func (s *Storage) ListOrdersByStatus(ctx context.Context, status string) ([]*models.Order, error) {
	var orders []*models.Order

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOrders)
		if bucket == nil {
			return fmt.Errorf("orders bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			order := &models.Order{}
			if err := json.Unmarshal(v, order); err != nil {
				return fmt.Errorf("failed to unmarshal order %s: %w", k, err)
			}
			if order.SyncStatus == status {
				orders = append(orders, order)
			}
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.Before(orders[j].CreatedAt)
	})

	return orders, nil
}
