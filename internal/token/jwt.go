package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// expiryFromJWT extracts the exp claim from a JWT access token without
// verifying the signature. The platform signed it for itself, we only
// need to know when to stop using it. Returns nil when the value is not
// a JWT or carries no expiry.
func expiryFromJWT(value string) *time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(value, claims); err != nil {
		return nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}

	t := exp.Time
	return &t
}
