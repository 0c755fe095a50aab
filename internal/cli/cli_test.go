package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailpoint/possync/internal/models"
	"github.com/retailpoint/possync/internal/storage"
	"github.com/retailpoint/possync/internal/sync"
	"github.com/retailpoint/possync/internal/token"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixtures(t *testing.T) (*Cli, *bytes.Buffer, map[string]*models.QueuedRequest, map[string]*models.Order) {
	t.Helper()

	requests := make(map[string]*models.QueuedRequest)
	queueStore := &storage.QueueStorageMock{
		SaveRequestFunc: func(ctx context.Context, req *models.QueuedRequest) error {
			clone := *req
			requests[req.ID] = &clone
			return nil
		},
		GetRequestFunc: func(ctx context.Context, id string) (*models.QueuedRequest, error) {
			if req, ok := requests[id]; ok {
				clone := *req
				return &clone, nil
			}
			return nil, storage.ErrRequestNotFound
		},
		DeleteRequestFunc: func(ctx context.Context, id string) error {
			delete(requests, id)
			return nil
		},
		ListRequestsByStatusFunc: func(ctx context.Context, status string) ([]*models.QueuedRequest, error) {
			var out []*models.QueuedRequest
			for _, req := range requests {
				if req.Status == status {
					clone := *req
					out = append(out, &clone)
				}
			}
			return out, nil
		},
	}

	orderRecords := make(map[string]*models.Order)
	orderStore := &storage.OrderStorageMock{
		SaveOrderFunc: func(ctx context.Context, order *models.Order) error {
			clone := *order
			orderRecords[order.LocalID] = &clone
			return nil
		},
		GetOrderFunc: func(ctx context.Context, localID string) (*models.Order, error) {
			if order, ok := orderRecords[localID]; ok {
				clone := *order
				return &clone, nil
			}
			return nil, storage.ErrOrderNotFound
		},
		ListOrdersByStatusFunc: func(ctx context.Context, status string) ([]*models.Order, error) {
			var out []*models.Order
			for _, order := range orderRecords {
				if order.SyncStatus == status {
					clone := *order
					out = append(out, &clone)
				}
			}
			return out, nil
		},
	}

	tokenStore := &storage.TokenStorageMock{
		SaveTokenFunc: func(ctx context.Context, tok *models.TokenRecord) error { return nil },
		GetTokenFunc: func(ctx context.Context, key models.TokenKey) (*models.TokenRecord, error) {
			return nil, storage.ErrTokenNotFound
		},
		DeleteTokenFunc:          func(ctx context.Context, key models.TokenKey) error { return nil },
		DeletePlatformTokensFunc: func(ctx context.Context, platform string) error { return nil },
	}

	logger := testLogger()
	tokens := token.NewService(tokenStore, logger)
	queue := sync.NewQueue(queueStore, nil, sync.DefaultConfig(), logger)
	orders := sync.NewOrders(orderStore, queue, &sync.PlatformClientMock{}, nil, sync.DefaultConfig(), logger)

	out := &bytes.Buffer{}
	return New(queue, orders, tokens, out), out, requests, orderRecords
}

func TestRunStatus(t *testing.T) {
	c, out, requests, orderRecords := fixtures(t)

	requests["r-1"] = &models.QueuedRequest{
		ID: "r-1", Platform: "shopify", Method: http.MethodPost,
		Target: sync.TargetOrders, Status: models.RequestStatusPending,
		CreatedAt: time.Now(),
	}
	orderRecords["o-1"] = &models.Order{
		LocalID: "o-1", Platform: "shopify", ReceiptNumber: "R-1",
		SyncStatus: models.OrderSyncFailed, SyncAttempts: 3,
	}

	require.NoError(t, c.RunStatus(context.Background()))

	assert.Contains(t, out.String(), "pending requests:  1")
	assert.Contains(t, out.String(), "frozen:            1")
	assert.Contains(t, out.String(), "possync failed")
}

func TestRunQueue_Empty(t *testing.T) {
	c, out, _, _ := fixtures(t)

	require.NoError(t, c.RunQueue(context.Background()))
	assert.Contains(t, out.String(), "Queue is empty.")
}

func TestRunQueue_ListsRequests(t *testing.T) {
	c, out, requests, _ := fixtures(t)

	next := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	requests["r-1"] = &models.QueuedRequest{
		ID: "r-1", Platform: "shopify", Method: http.MethodPost,
		Target: sync.TargetOrders, Status: models.RequestStatusPending,
		AttemptCount: 2, NextRetryAt: &next, LastError: "maintenance",
		CreatedAt: time.Now(),
	}

	require.NoError(t, c.RunQueue(context.Background()))
	assert.Contains(t, out.String(), "r-1")
	assert.Contains(t, out.String(), "shopify")
	assert.Contains(t, out.String(), "maintenance")
}

func TestRunOrders(t *testing.T) {
	c, out, _, orderRecords := fixtures(t)

	require.NoError(t, c.RunOrders(context.Background()))
	assert.Contains(t, out.String(), "No orders awaiting sync.")

	out.Reset()
	orderRecords["o-1"] = &models.Order{
		LocalID: "o-1", Platform: "shopify", ReceiptNumber: "R-42",
		TotalCents: 12550, Currency: "EUR", CreatedAt: time.Now(),
		SyncStatus: models.OrderSyncPending, SyncAttempts: 1,
	}

	require.NoError(t, c.RunOrders(context.Background()))
	assert.Contains(t, out.String(), "R-42")
	assert.Contains(t, out.String(), "EUR 125.50")
}

func TestRunFailed(t *testing.T) {
	c, out, requests, orderRecords := fixtures(t)

	require.NoError(t, c.RunFailed(context.Background()))
	assert.Contains(t, out.String(), "All clear")

	out.Reset()
	requests["r-1"] = &models.QueuedRequest{
		ID: "r-1", Platform: "shopify", Method: http.MethodPost,
		Target: sync.TargetOrders, Status: models.RequestStatusFailed,
		AttemptCount: 4, LastError: "bad sku", CreatedAt: time.Now(),
	}
	orderRecords["o-1"] = &models.Order{
		LocalID: "o-1", Platform: "shopify", ReceiptNumber: "R-9",
		SyncStatus: models.OrderSyncFailed, SyncAttempts: 3,
		LastSyncError: "retry ceiling exhausted",
	}

	require.NoError(t, c.RunFailed(context.Background()))
	assert.Contains(t, out.String(), "Failed requests:")
	assert.Contains(t, out.String(), "bad sku")
	assert.Contains(t, out.String(), "Frozen orders:")
	assert.Contains(t, out.String(), "R-9")
}

func TestRunRetry(t *testing.T) {
	c, out, requests, _ := fixtures(t)

	err := c.RunRetry(context.Background(), nil)
	assert.Error(t, err)

	requests["r-1"] = &models.QueuedRequest{
		ID: "r-1", Platform: "shopify", Method: http.MethodPost,
		Target: sync.TargetOrders, Status: models.RequestStatusFailed,
		AttemptCount: 4, CreatedAt: time.Now(),
	}

	require.NoError(t, c.RunRetry(context.Background(), []string{"r-1"}))
	assert.Contains(t, out.String(), "re-armed")
	assert.Equal(t, models.RequestStatusPending, requests["r-1"].Status)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly-10", truncate("exactly-10", 10))
	assert.Equal(t, "a-much-...", truncate("a-much-longer-string", 10))
}
