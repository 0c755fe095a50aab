package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailpoint/possync/internal/models"
	"github.com/retailpoint/possync/pkg/api"
)

func TestOAuthProvider_Refresh(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req api.RefreshRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "refresh_token", req.GrantType)
		assert.Equal(t, "stored-refresh", req.RefreshToken)
		assert.Equal(t, "pos-terminal", req.ClientID)
		assert.Equal(t, "s3cret", req.ClientSecret)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.TokenResponse{
			AccessToken:  "minted-access",
			RefreshToken: "minted-refresh",
			ExpiresIn:    1800,
		})
	}))
	defer server.Close()

	provider := NewOAuthProvider(NewClient(server.URL), "shopify", "pos-terminal", "s3cret")

	before := time.Now()
	result, err := provider.Refresh(context.Background(), &models.TokenRecord{
		Platform: "shopify", Type: models.TokenTypeRefresh, Value: "stored-refresh",
	})
	require.NoError(t, err)

	require.NotNil(t, result.Access)
	assert.Equal(t, "shopify", result.Access.Platform)
	assert.Equal(t, models.TokenTypeAccess, result.Access.Type)
	assert.Equal(t, "minted-access", result.Access.Value)
	require.NotNil(t, result.Access.ExpiresAt)
	assert.WithinDuration(t, before.Add(30*time.Minute), *result.Access.ExpiresAt, 5*time.Second)

	require.NotNil(t, result.Refresh)
	assert.Equal(t, models.TokenTypeRefresh, result.Refresh.Type)
	assert.Equal(t, "minted-refresh", result.Refresh.Value)
}

func TestOAuthProvider_RefreshWithoutRotation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.TokenResponse{AccessToken: "minted-access"})
	}))
	defer server.Close()

	provider := NewOAuthProvider(NewClient(server.URL), "woo", "pos-terminal", "")

	result, err := provider.Refresh(context.Background(), &models.TokenRecord{
		Platform: "woo", Type: models.TokenTypeRefresh, Value: "stored-refresh",
	})
	require.NoError(t, err)
	assert.Nil(t, result.Refresh)
	assert.Nil(t, result.Access.ExpiresAt, "no expires_in means unknown expiry")
}

func TestOAuthProvider_RefreshNoCredential(t *testing.T) {
	provider := NewOAuthProvider(NewClient("http://localhost:0"), "shopify", "id", "")

	_, err := provider.Refresh(context.Background(), nil)
	assert.Error(t, err)
}

func TestOAuthProvider_RefreshEmptyAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.TokenResponse{})
	}))
	defer server.Close()

	provider := NewOAuthProvider(NewClient(server.URL), "shopify", "id", "")

	_, err := provider.Refresh(context.Background(), &models.TokenRecord{
		Platform: "shopify", Type: models.TokenTypeRefresh, Value: "r",
	})
	assert.Error(t, err)
}
