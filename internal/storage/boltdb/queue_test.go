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

func TestStorage_SaveGetDeleteRequest(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	retryAt := time.Now().Add(time.Minute).UTC().Truncate(time.Second)
	req := &models.QueuedRequest{
		ID:           "req-1",
		Platform:     "shopify",
		Method:       "POST",
		Target:       "orders",
		Payload:      []byte(`{"total":100}`),
		Status:       models.RequestStatusPending,
		AttemptCount: 2,
		NextRetryAt:  &retryAt,
		LastError:    "timeout",
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}

	// GetRequest before save returns ErrRequestNotFound
	_, err := store.GetRequest(ctx, "req-1")
	assert.ErrorIs(t, err, storage.ErrRequestNotFound)

	require.NoError(t, store.SaveRequest(ctx, req))

	got, err := store.GetRequest(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, req, got)

	require.NoError(t, store.DeleteRequest(ctx, "req-1"))

	_, err = store.GetRequest(ctx, "req-1")
	assert.ErrorIs(t, err, storage.ErrRequestNotFound)

	// deleting again reports not found
	assert.ErrorIs(t, store.DeleteRequest(ctx, "req-1"), storage.ErrRequestNotFound)
}

func TestStorage_SaveRequestWithoutID(t *testing.T) {
	store := createTestStorage(t)
	assert.Error(t, store.SaveRequest(context.Background(), &models.QueuedRequest{}))
}

func TestStorage_ListRequestsByStatus_OrderedByCreation(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	base := time.Now().UTC().Truncate(time.Second)

	// insert out of chronological order; IDs sort differently from age
	reqs := []*models.QueuedRequest{
		{ID: "a-newest", Status: models.RequestStatusPending, CreatedAt: base.Add(2 * time.Second)},
		{ID: "z-oldest", Status: models.RequestStatusPending, CreatedAt: base},
		{ID: "m-middle", Status: models.RequestStatusPending, CreatedAt: base.Add(time.Second)},
		{ID: "b-failed", Status: models.RequestStatusFailed, CreatedAt: base},
	}
	for _, req := range reqs {
		require.NoError(t, store.SaveRequest(ctx, req))
	}

	pending, err := store.ListRequestsByStatus(ctx, models.RequestStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, "z-oldest", pending[0].ID)
	assert.Equal(t, "m-middle", pending[1].ID)
	assert.Equal(t, "a-newest", pending[2].ID)

	failed, err := store.ListRequestsByStatus(ctx, models.RequestStatusFailed)
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, "b-failed", failed[0].ID)
}
