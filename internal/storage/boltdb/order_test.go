package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailpoint/possync/internal/models"
	"github.com/retailpoint/possync/internal/storage"
)

func TestStorage_SaveGetOrder(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	order := &models.Order{
		LocalID:       "order-1",
		Platform:      "shopify",
		ReceiptNumber: "R-0042",
		TotalCents:    1999,
		Currency:      "USD",
		CreatedAt:     time.Now().UTC().Truncate(time.Second),
		SyncStatus:    models.OrderSyncPending,
	}

	_, err := store.GetOrder(ctx, "order-1")
	assert.ErrorIs(t, err, storage.ErrOrderNotFound)

	require.NoError(t, store.SaveOrder(ctx, order))

	got, err := store.GetOrder(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, order, got)

	// overwrite with updated sync state
	order.SyncStatus = models.OrderSyncSynced
	order.PlatformID = "platform-77"
	require.NoError(t, store.SaveOrder(ctx, order))

	got, err = store.GetOrder(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderSyncSynced, got.SyncStatus)
	assert.Equal(t, "platform-77", got.PlatformID)
}

func TestStorage_ListOrdersByStatus(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	base := time.Now().UTC().Truncate(time.Second)
	orders := []*models.Order{
		{LocalID: "o-2", SyncStatus: models.OrderSyncPending, CreatedAt: base.Add(time.Second)},
		{LocalID: "o-1", SyncStatus: models.OrderSyncPending, CreatedAt: base},
		{LocalID: "o-3", SyncStatus: models.OrderSyncFailed, CreatedAt: base},
	}
	for _, o := range orders {
		require.NoError(t, store.SaveOrder(ctx, o))
	}

	pending, err := store.ListOrdersByStatus(ctx, models.OrderSyncPending)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "o-1", pending[0].LocalID)
	assert.Equal(t, "o-2", pending[1].LocalID)

	failed, err := store.ListOrdersByStatus(ctx, models.OrderSyncFailed)
	require.NoError(t, err)
	require.Len(t, failed, 1)

	synced, err := store.ListOrdersByStatus(ctx, models.OrderSyncSynced)
	require.NoError(t, err)
	assert.Empty(t, synced)
}

func TestStorage_SaveOrder_RequiresLocalID(t *testing.T) {
	store := createTestStorage(t)
	assert.Error(t, store.SaveOrder(context.Background(), &models.Order{}))
}
