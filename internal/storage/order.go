package storage

import (
	"context"

	"github.com/retailpoint/possync/internal/models"
)

//go:generate moq -out order_mock.go . OrderStorage

// OrderStorage defines the durable store for locally captured orders.
type OrderStorage interface {
	// SaveOrder creates or overwrites the order by local ID
	SaveOrder(ctx context.Context, order *models.Order) error

	// GetOrder returns the order with the given local ID
	// Returns ErrOrderNotFound if no such order exists
	GetOrder(ctx context.Context, localID string) (*models.Order, error)

	// ListOrdersByStatus returns all orders with the given sync status,
	// ordered by creation time ascending
	ListOrdersByStatus(ctx context.Context, status string) ([]*models.Order, error)
}
