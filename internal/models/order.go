package models

import "time"

// Order sync status values.
const (
	OrderSyncPending = "pending"
	OrderSyncSynced  = "synced"
	OrderSyncFailed  = "failed"
)

// Order is a locally captured sale that must eventually exist, in
// equivalent form, on the remote commerce platform.
type Order struct {
	LocalID       string    `json:"local_id"`
	Platform      string    `json:"platform"`
	PlatformID    string    `json:"platform_id,omitempty"`
	ReceiptNumber string    `json:"receipt_number"`
	TotalCents    int64     `json:"total_cents"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"created_at"`
	SyncStatus    string    `json:"sync_status"`
	SyncAttempts  int       `json:"sync_attempts"`
	LastSyncError string    `json:"last_sync_error,omitempty"`
}

// Synced reports whether the order already exists on the platform.
func (o *Order) Synced() bool {
	return o.SyncStatus == OrderSyncSynced
}

// Frozen reports whether the order has exhausted its retry ceiling and
// requires operator intervention. Frozen orders are never auto-retried.
func (o *Order) Frozen() bool {
	return o.SyncStatus == OrderSyncFailed
}
