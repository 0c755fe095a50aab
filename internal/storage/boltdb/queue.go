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

// SaveRequest stores a queued request keyed by its ID
func (s *Storage) SaveRequest(ctx context.Context, req *models.QueuedRequest) error {
	if req == nil || req.ID == "" {
		return fmt.Errorf("queued request must have an ID")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		data, err := json.Marshal(req)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}

		if err := bucket.Put([]byte(req.ID), data); err != nil {
			return fmt.Errorf("failed to save request: %w", err)
		}

		return nil
	})
}

// GetRequest retrieves a queued request by ID
func (s *Storage) GetRequest(ctx context.Context, id string) (*models.QueuedRequest, error) {
	var req *models.QueuedRequest

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrRequestNotFound
		}

		req = &models.QueuedRequest{}
		if err := json.Unmarshal(data, req); err != nil {
			return fmt.Errorf("failed to unmarshal request: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return req, nil
}

// DeleteRequest removes a queued request by ID
func (s *Storage) DeleteRequest(ctx context.Context, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		if bucket.Get([]byte(id)) == nil {
			return storage.ErrRequestNotFound
		}

		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete request: %w", err)
		}

		return nil
	})
}

// ListRequestsByStatus returns all requests with the given status ordered
// by creation time ascending, so a sweep attempts the oldest first
func (s *Storage) ListRequestsByStatus(ctx context.Context, status string) ([]*models.QueuedRequest, error) {
	var requests []*models.QueuedRequest

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			req := &models.QueuedRequest{}
			if err := json.Unmarshal(v, req); err != nil {
				return fmt.Errorf("failed to unmarshal request %s: %w", k, err)
			}
			if req.Status == status {
				requests = append(requests, req)
			}
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	// bucket iteration is ordered by ID, not by age
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.Before(requests[j].CreatedAt)
	})

	return requests, nil
}
