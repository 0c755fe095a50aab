package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// createTestStorage opens a fresh BoltDB database in a temp dir
func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "possync_test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestStorage_Reopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "possync_test.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.SaveDeviceSalt(ctx, []byte("salt-value")))
	require.NoError(t, store.Close())

	// data must survive a process restart
	store, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer store.Close()

	salt, err := store.DeviceSalt(ctx)
	require.NoError(t, err)
	require.Equal(t, []byte("salt-value"), salt)
}

func TestStorage_DeviceSaltEmpty(t *testing.T) {
	store := createTestStorage(t)

	salt, err := store.DeviceSalt(context.Background())
	require.NoError(t, err)
	require.Nil(t, salt)

	require.Error(t, store.SaveDeviceSalt(context.Background(), nil))
}
