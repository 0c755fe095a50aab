package token

import (
	"context"

	"github.com/retailpoint/possync/internal/models"
)

//go:generate moq -out provider_mock.go . RefreshProvider

// RefreshResult is what a provider minted. Refresh is non-nil only when
// the platform rotated the refresh credential as part of the exchange.
type RefreshResult struct {
	Access  *models.TokenRecord
	Refresh *models.TokenRecord
}

// RefreshProvider knows how to mint a fresh token for one platform given
// the stored refresh credential. Implementations perform the network
// exchange only; persisting the result is the token service's job.
type RefreshProvider interface {
	// Refresh mints fresh tokens. credential is the stored refresh-token
	// record for the platform, nil when none exists.
	Refresh(ctx context.Context, credential *models.TokenRecord) (*RefreshResult, error)
}
