package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailpoint/possync/internal/storage"
)

func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	store, err := New(context.Background(), ":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestStorage_RecordAndListEvents(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	events, err := store.ListEvents(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, events)

	first := &storage.AuditEvent{
		RequestID: "req-1",
		Platform:  "shopify",
		Target:    "orders",
		Status:    storage.AuditStatusSucceeded,
		Attempts:  0,
		CreatedAt: time.Now().UTC(),
	}
	second := &storage.AuditEvent{
		RequestID: "req-2",
		Platform:  "square",
		Target:    "orders",
		Status:    storage.AuditStatusFailed,
		Attempts:  3,
		Detail:    "422 unprocessable entity",
		CreatedAt: time.Now().UTC(),
	}

	require.NoError(t, store.RecordDelivery(ctx, first))
	require.NoError(t, store.RecordDelivery(ctx, second))

	events, err = store.ListEvents(ctx, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// newest first
	assert.Equal(t, "req-2", events[0].RequestID)
	assert.Equal(t, storage.AuditStatusFailed, events[0].Status)
	assert.Equal(t, 3, events[0].Attempts)
	assert.Equal(t, "422 unprocessable entity", events[0].Detail)
	assert.Equal(t, "req-1", events[1].RequestID)
}

func TestStorage_ListEvents_Limit(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.RecordDelivery(ctx, &storage.AuditEvent{
			RequestID: "req",
			Platform:  "shopify",
			Target:    "orders",
			Status:    storage.AuditStatusSucceeded,
			CreatedAt: time.Now().UTC(),
		}))
	}

	events, err := store.ListEvents(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestStorage_RecordDelivery_NilEvent(t *testing.T) {
	store := createTestStorage(t)
	assert.Error(t, store.RecordDelivery(context.Background(), nil))
}
