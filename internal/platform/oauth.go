package platform

import (
	"context"
	"fmt"
	"time"

	"github.com/retailpoint/possync/internal/models"
	"github.com/retailpoint/possync/internal/token"
	"github.com/retailpoint/possync/pkg/api"
)

// OAuthProvider mints tokens for one platform through its OAuth token
// endpoint. It implements token.RefreshProvider.
type OAuthProvider struct {
	client       *Client
	platform     string
	clientID     string
	clientSecret string
}

// Compile-time check that OAuthProvider satisfies the refresh contract
var _ token.RefreshProvider = (*OAuthProvider)(nil)

// NewOAuthProvider creates a refresh provider for the given platform
func NewOAuthProvider(client *Client, platformName, clientID, clientSecret string) *OAuthProvider {
	return &OAuthProvider{
		client:       client,
		platform:     platformName,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// Refresh exchanges the stored refresh credential for fresh tokens
func (p *OAuthProvider) Refresh(ctx context.Context, credential *models.TokenRecord) (*token.RefreshResult, error) {
	if credential == nil {
		return nil, fmt.Errorf("no refresh credential stored for platform %q", p.platform)
	}

	resp, err := p.client.RefreshToken(ctx, api.RefreshRequest{
		GrantType:    "refresh_token",
		RefreshToken: credential.Value,
		ClientID:     p.clientID,
		ClientSecret: p.clientSecret,
	})
	if err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, fmt.Errorf("token endpoint returned no access token")
	}

	access := &models.TokenRecord{
		Platform: p.platform,
		Type:     models.TokenTypeAccess,
		Value:    resp.AccessToken,
	}
	if resp.ExpiresIn > 0 {
		expiresAt := time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second)
		access.ExpiresAt = &expiresAt
	}

	result := &token.RefreshResult{Access: access}
	if resp.RefreshToken != "" {
		result.Refresh = &models.TokenRecord{
			Platform: p.platform,
			Type:     models.TokenTypeRefresh,
			Value:    resp.RefreshToken,
		}
	}

	return result, nil
}
