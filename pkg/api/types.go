// Package api holds the wire types shared with commerce platform
// endpoints. Individual platforms differ in their full payload schemas;
// these are the minimal shapes the sync core itself depends on.
package api

// RefreshRequest is the token endpoint request body
type RefreshRequest struct {
	GrantType    string `json:"grant_type"`
	RefreshToken string `json:"refresh_token"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret,omitempty"`
}

// TokenResponse is the token endpoint response body.
// ExpiresIn is in seconds; zero means the platform did not report expiry.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
	ExpiresIn    int64  `json:"expires_in,omitempty"`
}

// DeliveryResponse is the envelope platforms return for accepted writes.
// Not every platform echoes the created resource ID.
type DeliveryResponse struct {
	ID string `json:"id,omitempty"`
}

// ErrorResponse represents an error from a platform endpoint
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
