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

func TestStorage_SaveGetDeleteToken(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	token := &models.TokenRecord{
		Platform:  "shopify",
		Type:      models.TokenTypeAccess,
		Value:     "access-token-value",
		ExpiresAt: &expiresAt,
	}

	_, err := store.GetToken(ctx, token.Key())
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	require.NoError(t, store.SaveToken(ctx, token))

	got, err := store.GetToken(ctx, token.Key())
	require.NoError(t, err)
	assert.Equal(t, token, got)

	require.NoError(t, store.DeleteToken(ctx, token.Key()))

	_, err = store.GetToken(ctx, token.Key())
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestStorage_SaveToken_OverwritesSameKey(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	key := models.TokenKey{Platform: "square", Type: models.TokenTypeAccess}

	require.NoError(t, store.SaveToken(ctx, &models.TokenRecord{
		Platform: "square", Type: models.TokenTypeAccess, Value: "old",
	}))
	require.NoError(t, store.SaveToken(ctx, &models.TokenRecord{
		Platform: "square", Type: models.TokenTypeAccess, Value: "new",
	}))

	// at most one authoritative record per key
	got, err := store.GetToken(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Value)
}

func TestStorage_DeletePlatformTokens(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	records := []*models.TokenRecord{
		{Platform: "shopify", Type: models.TokenTypeAccess, Value: "a"},
		{Platform: "shopify", Type: models.TokenTypeRefresh, Value: "r"},
		{Platform: "square", Type: models.TokenTypeAccess, Value: "keep"},
	}
	for _, rec := range records {
		require.NoError(t, store.SaveToken(ctx, rec))
	}

	require.NoError(t, store.DeletePlatformTokens(ctx, "shopify"))

	_, err := store.GetToken(ctx, models.TokenKey{Platform: "shopify", Type: models.TokenTypeAccess})
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
	_, err = store.GetToken(ctx, models.TokenKey{Platform: "shopify", Type: models.TokenTypeRefresh})
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	// other platforms untouched
	got, err := store.GetToken(ctx, models.TokenKey{Platform: "square", Type: models.TokenTypeAccess})
	require.NoError(t, err)
	assert.Equal(t, "keep", got.Value)
}

func TestStorage_SaveToken_RequiresKey(t *testing.T) {
	store := createTestStorage(t)
	assert.Error(t, store.SaveToken(context.Background(), &models.TokenRecord{Value: "v"}))
}
