package storage

import (
	"context"
	"time"
)

//go:generate moq -out audit_mock.go . AuditStorage

// Audit event status values.
const (
	AuditStatusSucceeded = "succeeded"
	AuditStatusFailed    = "failed"
)

// AuditEvent is the operator-visible record of a finished delivery:
// either the archive row of a succeeded request or the frozen record
// of a terminal failure.
type AuditEvent struct {
	ID        int64
	RequestID string
	Platform  string
	Target    string
	Status    string
	Attempts  int
	Detail    string
	CreatedAt time.Time
}

// AuditStorage records finished deliveries. Terminal failures land here
// so they are surfaced instead of silently discarded.
type AuditStorage interface {
	// RecordDelivery appends an audit event
	RecordDelivery(ctx context.Context, event *AuditEvent) error

	// ListEvents returns the most recent events, newest first,
	// limited to limit rows (0 means no limit)
	ListEvents(ctx context.Context, limit int) ([]*AuditEvent, error)
}
