package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/retailpoint/possync/internal/backoff"
	"github.com/retailpoint/possync/internal/models"
	"github.com/retailpoint/possync/internal/platform"
	"github.com/retailpoint/possync/internal/storage"
)

//go:generate moq -out handler_mock.go . Handler

// ErrSweepInProgress is returned by Process when another sweep already
// holds the queue. Callers treat it as "nothing to do", not a failure.
var ErrSweepInProgress = errors.New("queue sweep already in progress")

// ErrRetryExhausted marks a request whose domain retry ceiling is spent.
// The queue treats it as terminal regardless of the transport error
// underneath.
var ErrRetryExhausted = errors.New("retry ceiling exhausted")

// Handler delivers one queued request to its destination
type Handler interface {
	Deliver(ctx context.Context, req *models.QueuedRequest) error
}

// Report summarizes one queue sweep
type Report struct {
	Attempted   int
	Succeeded   int
	Failed      int
	Rescheduled int
}

// Queue drains durable queued requests oldest-first with exponential
// backoff per request. At most one sweep runs at a time.
type Queue struct {
	storage  storage.QueueStorage
	audit    storage.AuditStorage
	logger   *slog.Logger
	cfg      Config
	now      func() time.Time
	sweeping atomic.Bool

	mu       sync.Mutex
	handlers map[string]Handler
}

// NewQueue creates a queue manager over the durable store. audit may be
// nil when no audit trail is configured.
func NewQueue(queueStorage storage.QueueStorage, audit storage.AuditStorage, cfg Config, logger *slog.Logger) *Queue {
	return &Queue{
		storage:  queueStorage,
		audit:    audit,
		logger:   logger,
		cfg:      cfg.withDefaults(),
		now:      time.Now,
		handlers: make(map[string]Handler),
	}
}

// RegisterHandler associates a delivery handler with a request target.
// The last registration for a target wins.
func (q *Queue) RegisterHandler(target string, handler Handler) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers[target] = handler
}

// Enqueue persists a request for later delivery. A missing ID is filled
// with a fresh UUID; the request always enters the queue as pending with
// no retry delay, so the next sweep picks it up.
func (q *Queue) Enqueue(ctx context.Context, req *models.QueuedRequest) error {
	if req.Method == "" || req.Target == "" {
		return fmt.Errorf("%w: queued request must have method and target", platform.ErrInvalid)
	}

	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = q.now()
	}
	req.Status = models.RequestStatusPending
	req.NextRetryAt = nil

	if err := q.storage.SaveRequest(ctx, req); err != nil {
		return fmt.Errorf("failed to enqueue request: %w", err)
	}

	q.logger.Info("request enqueued",
		"request_id", req.ID, "platform", req.Platform, "target", req.Target)
	return nil
}

// Process sweeps the queue once: every eligible pending request is
// attempted oldest-first. Returns ErrSweepInProgress when a sweep is
// already running. A context cancellation stops the sweep between
// requests and returns the partial report.
func (q *Queue) Process(ctx context.Context) (*Report, error) {
	if !q.sweeping.CompareAndSwap(false, true) {
		return nil, ErrSweepInProgress
	}
	defer q.sweeping.Store(false)

	// sweeps are exclusive, so an in-flight request at this point can
	// only be the residue of a crash mid-delivery: put it back in line
	if err := q.recoverInFlight(ctx); err != nil {
		return nil, err
	}

	pending, err := q.storage.ListRequestsByStatus(ctx, models.RequestStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}

	report := &Report{}
	now := q.now()

	for _, req := range pending {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if !req.Eligible(now) {
			continue
		}

		report.Attempted++
		q.attempt(ctx, req, report)
	}

	if report.Attempted > 0 {
		q.logger.Info("queue sweep finished",
			"attempted", report.Attempted,
			"succeeded", report.Succeeded,
			"failed", report.Failed,
			"rescheduled", report.Rescheduled)
	}

	return report, nil
}

// recoverInFlight resets crash-orphaned in-flight requests to pending
func (q *Queue) recoverInFlight(ctx context.Context) error {
	orphaned, err := q.storage.ListRequestsByStatus(ctx, models.RequestStatusInFlight)
	if err != nil {
		return fmt.Errorf("failed to list in-flight requests: %w", err)
	}

	for _, req := range orphaned {
		req.Status = models.RequestStatusPending
		if err := q.storage.SaveRequest(ctx, req); err != nil {
			return fmt.Errorf("failed to recover in-flight request %s: %w", req.ID, err)
		}
		q.logger.Warn("recovered in-flight request after restart", "request_id", req.ID)
	}

	return nil
}

// attempt runs one delivery and applies the outcome to the stored request
func (q *Queue) attempt(ctx context.Context, req *models.QueuedRequest, report *Report) {
	handler := q.handlerFor(req.Target)
	if handler == nil {
		q.logger.Error("no handler for queued request",
			"request_id", req.ID, "target", req.Target)
		q.markFailed(ctx, req, fmt.Errorf("no handler registered for target %q", req.Target))
		report.Failed++
		return
	}

	req.Status = models.RequestStatusInFlight
	if err := q.storage.SaveRequest(ctx, req); err != nil {
		q.logger.Error("failed to mark request in flight",
			"request_id", req.ID, "error", err)
		report.Rescheduled++
		return
	}

	err := handler.Deliver(ctx, req)

	switch {
	case err == nil:
		q.markSucceeded(ctx, req)
		report.Succeeded++
	case errors.Is(err, ErrRetryExhausted) || !platform.IsRetryable(err):
		q.markFailed(ctx, req, err)
		report.Failed++
	default:
		q.reschedule(ctx, req, err)
		report.Rescheduled++
	}
}

func (q *Queue) handlerFor(target string) Handler {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.handlers[target]
}

// markSucceeded removes the delivered request and archives it to the
// audit trail
func (q *Queue) markSucceeded(ctx context.Context, req *models.QueuedRequest) {
	req.AttemptCount++

	if err := q.storage.DeleteRequest(ctx, req.ID); err != nil {
		q.logger.Error("failed to remove delivered request",
			"request_id", req.ID, "error", err)
	}

	q.recordAudit(ctx, req, storage.AuditStatusSucceeded, "")
	q.logger.Info("queued request delivered",
		"request_id", req.ID, "platform", req.Platform,
		"target", req.Target, "attempts", req.AttemptCount)
}

// markFailed freezes a request that will never succeed. It stays in the
// store for operator inspection and lands in the audit trail.
func (q *Queue) markFailed(ctx context.Context, req *models.QueuedRequest, cause error) {
	req.Status = models.RequestStatusFailed
	req.AttemptCount++
	req.LastError = cause.Error()
	req.NextRetryAt = nil

	if err := q.storage.SaveRequest(ctx, req); err != nil {
		q.logger.Error("failed to persist terminal request state",
			"request_id", req.ID, "error", err)
	}

	q.recordAudit(ctx, req, storage.AuditStatusFailed, cause.Error())
	q.logger.Error("queued request failed terminally",
		"request_id", req.ID, "platform", req.Platform,
		"target", req.Target, "attempts", req.AttemptCount, "error", cause)
}

// reschedule returns a transiently failed request to pending with an
// exponentially backed-off retry time
func (q *Queue) reschedule(ctx context.Context, req *models.QueuedRequest, cause error) {
	req.Status = models.RequestStatusPending
	req.AttemptCount++
	req.LastError = cause.Error()

	delay := backoff.Delay(q.cfg.BackoffBase, q.cfg.BackoffCap, req.AttemptCount-1)
	next := q.now().Add(delay)
	req.NextRetryAt = &next

	if err := q.storage.SaveRequest(ctx, req); err != nil {
		q.logger.Error("failed to reschedule request",
			"request_id", req.ID, "error", err)
		return
	}

	q.logger.Warn("queued request rescheduled",
		"request_id", req.ID, "platform", req.Platform,
		"attempt", req.AttemptCount, "retry_in", delay, "error", cause)
}

func (q *Queue) recordAudit(ctx context.Context, req *models.QueuedRequest, status, detail string) {
	if q.audit == nil {
		return
	}
	err := q.audit.RecordDelivery(ctx, &storage.AuditEvent{
		RequestID: req.ID,
		Platform:  req.Platform,
		Target:    req.Target,
		Status:    status,
		Attempts:  req.AttemptCount,
		Detail:    detail,
		CreatedAt: q.now(),
	})
	if err != nil {
		q.logger.Warn("failed to record audit event",
			"request_id", req.ID, "error", err)
	}
}

// Pending returns the requests still waiting for delivery, oldest first
func (q *Queue) Pending(ctx context.Context) ([]*models.QueuedRequest, error) {
	return q.storage.ListRequestsByStatus(ctx, models.RequestStatusPending)
}

// Failed returns the terminally failed requests, oldest first
func (q *Queue) Failed(ctx context.Context) ([]*models.QueuedRequest, error) {
	return q.storage.ListRequestsByStatus(ctx, models.RequestStatusFailed)
}

// Retry re-arms a terminally failed request after operator intervention.
// This is the one sanctioned exit from the failed state: the queue itself
// never moves failed back to pending and never decrements AttemptCount,
// but an operator who has fixed the underlying cause gets a clean slate.
// The counter restarts so the backoff ladder begins from base again.
func (q *Queue) Retry(ctx context.Context, id string) error {
	req, err := q.storage.GetRequest(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load request: %w", err)
	}
	if req.Status != models.RequestStatusFailed {
		return fmt.Errorf("%w: request %s is %s, only failed requests can be retried",
			platform.ErrInvalid, id, req.Status)
	}

	req.Status = models.RequestStatusPending
	req.AttemptCount = 0
	req.NextRetryAt = nil
	req.LastError = ""

	if err := q.storage.SaveRequest(ctx, req); err != nil {
		return fmt.Errorf("failed to re-arm request: %w", err)
	}

	q.logger.Info("failed request re-armed", "request_id", id)
	return nil
}
