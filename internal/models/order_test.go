package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrder_StatusHelpers(t *testing.T) {
	assert.True(t, (&Order{SyncStatus: OrderSyncSynced}).Synced())
	assert.False(t, (&Order{SyncStatus: OrderSyncPending}).Synced())

	assert.True(t, (&Order{SyncStatus: OrderSyncFailed}).Frozen())
	assert.False(t, (&Order{SyncStatus: OrderSyncPending}).Frozen())
	assert.False(t, (&Order{SyncStatus: OrderSyncSynced}).Frozen())
}
