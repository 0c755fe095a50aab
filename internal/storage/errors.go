package storage

import "errors"

// Common storage errors
var (
	// ErrRequestNotFound indicates that no queued request exists with the given ID
	ErrRequestNotFound = errors.New("queued request not found")

	// ErrTokenNotFound indicates that no token record exists for the key
	ErrTokenNotFound = errors.New("token record not found")

	// ErrOrderNotFound indicates that the order was not found
	ErrOrderNotFound = errors.New("order not found")
)
