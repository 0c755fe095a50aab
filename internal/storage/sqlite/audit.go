package sqlite

import (
	"context"
	"fmt"

	"github.com/retailpoint/possync/internal/storage"
)

// RecordDelivery appends an audit event for a finished delivery
func (s *Storage) RecordDelivery(ctx context.Context, event *storage.AuditEvent) error {
	if event == nil {
		return fmt.Errorf("audit event is nil")
	}

	query := `
		INSERT INTO sync_audit (request_id, platform, target, status, attempts, detail, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		event.RequestID,
		event.Platform,
		event.Target,
		event.Status,
		event.Attempts,
		event.Detail,
		event.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to record delivery: %w", err)
	}

	return nil
}

// ListEvents returns the most recent audit events, newest first.
// limit 0 means no limit.
func (s *Storage) ListEvents(ctx context.Context, limit int) ([]*storage.AuditEvent, error) {
	query := `
		SELECT id, request_id, platform, target, status, attempts, detail, created_at
		FROM sync_audit
		ORDER BY id DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit events: %w", err)
	}
	defer rows.Close()

	var events []*storage.AuditEvent
	for rows.Next() {
		event := &storage.AuditEvent{}
		if err := rows.Scan(
			&event.ID,
			&event.RequestID,
			&event.Platform,
			&event.Target,
			&event.Status,
			&event.Attempts,
			&event.Detail,
			&event.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan audit event: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate audit events: %w", err)
	}

	return events, nil
}
