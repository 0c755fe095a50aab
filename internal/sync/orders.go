package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/retailpoint/possync/internal/models"
	"github.com/retailpoint/possync/internal/platform"
	"github.com/retailpoint/possync/internal/resilient"
	"github.com/retailpoint/possync/internal/storage"
)

//go:generate moq -out platformclient_mock.go . PlatformClient
//go:generate moq -out enqueuer_mock.go . Enqueuer

// TargetOrders is the queue target handled by the order sync service
const TargetOrders = "orders"

// PlatformClient is the delivery surface of the platform HTTP client
type PlatformClient interface {
	Deliver(ctx context.Context, token string, req *models.QueuedRequest) (*platform.DeliveryResult, error)
}

// Enqueuer accepts requests for deferred background delivery
type Enqueuer interface {
	Enqueue(ctx context.Context, req *models.QueuedRequest) error
}

// Orders pushes locally captured orders to the commerce platform. Each
// order gets a bounded number of delivery attempts; once the ceiling is
// spent the order freezes and waits for an operator.
type Orders struct {
	orders     storage.OrderStorage
	queue      Enqueuer
	client     PlatformClient
	tokens     resilient.TokenSource
	logger     *slog.Logger
	maxRetries int
}

// Compile-time check that Orders can be registered on the queue
var _ Handler = (*Orders)(nil)

// NewOrders creates the order sync service
func NewOrders(orderStorage storage.OrderStorage, queue Enqueuer, client PlatformClient, tokens resilient.TokenSource, cfg Config, logger *slog.Logger) *Orders {
	return &Orders{
		orders:     orderStorage,
		queue:      queue,
		client:     client,
		tokens:     tokens,
		logger:     logger,
		maxRetries: cfg.withDefaults().MaxSyncRetries,
	}
}

// Capture persists a new local order awaiting sync. A missing LocalID is
// filled with a fresh UUID.
func (s *Orders) Capture(ctx context.Context, order *models.Order) error {
	if order == nil {
		return fmt.Errorf("%w: order is nil", platform.ErrInvalid)
	}
	if order.Platform == "" || order.ReceiptNumber == "" {
		return fmt.Errorf("%w: order must have platform and receipt number", platform.ErrInvalid)
	}

	if order.LocalID == "" {
		order.LocalID = uuid.New().String()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	order.SyncStatus = models.OrderSyncPending
	order.SyncAttempts = 0

	if err := s.orders.SaveOrder(ctx, order); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	s.logger.Info("order captured",
		"local_id", order.LocalID, "platform", order.Platform,
		"receipt", order.ReceiptNumber)
	return nil
}

// SyncOrder tries to deliver the order immediately. On a transient
// failure the order is queued for background delivery and SyncOrder
// returns nil: the caller's sale is safe, sync happens later. Terminal
// failures propagate.
func (s *Orders) SyncOrder(ctx context.Context, localID string) error {
	order, err := s.orders.GetOrder(ctx, localID)
	if err != nil {
		return fmt.Errorf("failed to load order: %w", err)
	}
	if order.Synced() {
		return nil
	}
	if order.Frozen() {
		return fmt.Errorf("%w: order %s", ErrRetryExhausted, localID)
	}

	err = s.attempt(ctx, order)
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrRetryExhausted) || !platform.IsRetryable(err) {
		return err
	}

	payload, marshalErr := json.Marshal(order)
	if marshalErr != nil {
		return fmt.Errorf("failed to marshal order for queueing: %w", marshalErr)
	}
	queueErr := s.queue.Enqueue(ctx, &models.QueuedRequest{
		Platform: order.Platform,
		Method:   http.MethodPost,
		Target:   TargetOrders,
		Payload:  payload,
	})
	if queueErr != nil {
		return fmt.Errorf("delivery failed and queueing failed: %w", queueErr)
	}

	s.logger.Warn("order delivery deferred to queue",
		"local_id", order.LocalID, "platform", order.Platform, "error", err)
	return nil
}

// Deliver implements Handler for queued order requests. The payload only
// identifies the order; the current stored state is what gets delivered,
// so edits made while the order waited in the queue are not lost.
func (s *Orders) Deliver(ctx context.Context, req *models.QueuedRequest) error {
	var queued models.Order
	if err := json.Unmarshal(req.Payload, &queued); err != nil {
		return fmt.Errorf("%w: undecodable order payload: %v", platform.ErrInvalid, err)
	}
	if queued.LocalID == "" {
		return fmt.Errorf("%w: order payload has no local ID", platform.ErrInvalid)
	}

	order, err := s.orders.GetOrder(ctx, queued.LocalID)
	if err != nil {
		if errors.Is(err, storage.ErrOrderNotFound) {
			// order deleted locally while queued, nothing left to sync
			s.logger.Warn("queued order no longer exists", "local_id", queued.LocalID)
			return nil
		}
		return fmt.Errorf("failed to load order: %w", err)
	}

	if order.Synced() {
		return nil
	}
	if order.Frozen() {
		return fmt.Errorf("%w: order %s", ErrRetryExhausted, order.LocalID)
	}

	return s.attempt(ctx, order)
}

// attempt runs exactly one delivery attempt against the platform and
// persists the resulting order state
func (s *Orders) attempt(ctx context.Context, order *models.Order) error {
	if order.SyncAttempts >= s.maxRetries {
		return s.freeze(ctx, order)
	}

	order.SyncAttempts++

	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal order: %v", platform.ErrInvalid, err)
	}

	var result *platform.DeliveryResult
	deliverErr := resilient.WithTokenRefresh(ctx, s.tokens, order.Platform, func(ctx context.Context, token string) error {
		var callErr error
		result, callErr = s.client.Deliver(ctx, token, &models.QueuedRequest{
			Platform: order.Platform,
			Method:   http.MethodPost,
			Target:   TargetOrders,
			Payload:  payload,
		})
		return callErr
	})

	if deliverErr == nil {
		order.SyncStatus = models.OrderSyncSynced
		order.LastSyncError = ""
		if result != nil {
			order.PlatformID = result.PlatformID
		}
		if err := s.orders.SaveOrder(ctx, order); err != nil {
			return fmt.Errorf("order delivered but state save failed: %w", err)
		}
		s.logger.Info("order synced",
			"local_id", order.LocalID, "platform", order.Platform,
			"platform_id", order.PlatformID, "attempts", order.SyncAttempts)
		return nil
	}

	order.LastSyncError = deliverErr.Error()

	if !platform.IsRetryable(deliverErr) {
		order.SyncStatus = models.OrderSyncFailed
		if err := s.orders.SaveOrder(ctx, order); err != nil {
			s.logger.Error("failed to persist terminal order state",
				"local_id", order.LocalID, "error", err)
		}
		s.logger.Error("order sync failed terminally",
			"local_id", order.LocalID, "platform", order.Platform,
			"attempts", order.SyncAttempts, "error", deliverErr)
		return deliverErr
	}

	if order.SyncAttempts >= s.maxRetries {
		if err := s.freeze(ctx, order); err != nil {
			return err
		}
	} else if err := s.orders.SaveOrder(ctx, order); err != nil {
		s.logger.Error("failed to persist order attempt state",
			"local_id", order.LocalID, "error", err)
	}

	return deliverErr
}

// freeze marks the order terminally failed and reports the spent ceiling
func (s *Orders) freeze(ctx context.Context, order *models.Order) error {
	order.SyncStatus = models.OrderSyncFailed
	if order.LastSyncError == "" {
		order.LastSyncError = "retry ceiling exhausted"
	}
	if err := s.orders.SaveOrder(ctx, order); err != nil {
		s.logger.Error("failed to freeze order",
			"local_id", order.LocalID, "error", err)
	}

	s.logger.Error("order frozen after exhausting retries",
		"local_id", order.LocalID, "platform", order.Platform,
		"attempts", order.SyncAttempts)
	return fmt.Errorf("%w: order %s after %d attempts",
		ErrRetryExhausted, order.LocalID, order.SyncAttempts)
}

// FailedOrders lists orders frozen by the retry ceiling, oldest first
func (s *Orders) FailedOrders(ctx context.Context) ([]*models.Order, error) {
	return s.orders.ListOrdersByStatus(ctx, models.OrderSyncFailed)
}

// PendingOrders lists orders still awaiting sync, oldest first
func (s *Orders) PendingOrders(ctx context.Context) ([]*models.Order, error) {
	return s.orders.ListOrdersByStatus(ctx, models.OrderSyncPending)
}

// RetryOrder re-arms a frozen order after operator intervention: the
// attempt counter restarts and the order is queued for delivery.
func (s *Orders) RetryOrder(ctx context.Context, localID string) error {
	order, err := s.orders.GetOrder(ctx, localID)
	if err != nil {
		return fmt.Errorf("failed to load order: %w", err)
	}
	if !order.Frozen() {
		return fmt.Errorf("%w: order %s is %s, only failed orders can be retried",
			platform.ErrInvalid, localID, order.SyncStatus)
	}

	order.SyncStatus = models.OrderSyncPending
	order.SyncAttempts = 0
	order.LastSyncError = ""
	if err := s.orders.SaveOrder(ctx, order); err != nil {
		return fmt.Errorf("failed to re-arm order: %w", err)
	}

	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order for queueing: %w", err)
	}
	if err := s.queue.Enqueue(ctx, &models.QueuedRequest{
		Platform: order.Platform,
		Method:   http.MethodPost,
		Target:   TargetOrders,
		Payload:  payload,
	}); err != nil {
		return fmt.Errorf("failed to queue re-armed order: %w", err)
	}

	s.logger.Info("frozen order re-armed", "local_id", localID)
	return nil
}
