package storage

import (
	"context"

	"github.com/retailpoint/possync/internal/models"
)

//go:generate moq -out queue_mock.go . QueueStorage

// QueueStorage defines the durable store for queued write requests.
// It must survive process restarts: an in-memory implementation would
// silently lose queued requests on crash.
type QueueStorage interface {
	// SaveRequest creates or overwrites a queued request by ID
	SaveRequest(ctx context.Context, req *models.QueuedRequest) error

	// GetRequest returns the request with the given ID
	// Returns ErrRequestNotFound if no such request exists
	GetRequest(ctx context.Context, id string) (*models.QueuedRequest, error)

	// DeleteRequest removes the request with the given ID
	DeleteRequest(ctx context.Context, id string) error

	// ListRequestsByStatus returns all requests with the given status,
	// ordered by creation time ascending (oldest first)
	ListRequestsByStatus(ctx context.Context, status string) ([]*models.QueuedRequest, error)
}
