package models

import "time"

// Queued request status values persisted in the queue store.
const (
	RequestStatusPending   = "pending"
	RequestStatusInFlight  = "in_flight"
	RequestStatusFailed    = "failed"
	RequestStatusSucceeded = "succeeded"
)

// QueuedRequest is an outbound write operation that could not complete
// synchronously and waits in the durable queue for delivery.
type QueuedRequest struct {
	ID           string     `json:"id"`
	Platform     string     `json:"platform"`
	Method       string     `json:"method"`
	Target       string     `json:"target"`
	Payload      []byte     `json:"payload,omitempty"`
	Status       string     `json:"status"`
	AttemptCount int        `json:"attempt_count"`
	NextRetryAt  *time.Time `json:"next_retry_at,omitempty"`
	LastError    string     `json:"last_error,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Eligible reports whether the request may be attempted at the given time.
// Only pending requests whose retry delay has elapsed are eligible.
func (r *QueuedRequest) Eligible(now time.Time) bool {
	if r.Status != RequestStatusPending {
		return false
	}
	return r.NextRetryAt == nil || !r.NextRetryAt.After(now)
}

// Terminal reports whether the request has left the retry lifecycle.
// A terminal request never transitions back to pending.
func (r *QueuedRequest) Terminal() bool {
	return r.Status == RequestStatusFailed || r.Status == RequestStatusSucceeded
}
