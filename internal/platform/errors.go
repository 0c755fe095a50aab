package platform

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// APIError represents a response the platform actually produced: the
// request got through, the platform said no.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("platform error (%d): %s", e.StatusCode, e.Message)
}

// ErrInvalid marks a locally detected validation failure. It never clears
// up on retry, so the classifier treats it as terminal.
var ErrInvalid = errors.New("invalid request")

// message fragments platforms use for credential problems that arrive
// without a clean 401 status
var authMessagePatterns = []string{
	"invalid token",
	"token expired",
	"expired token",
	"invalid credentials",
	"unauthorized",
	"authentication failed",
}

// IsAuthError reports whether the error indicates an invalid or expired
// credential. The resilient call wrapper recovers from exactly this class
// with a single forced refresh.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range authMessagePatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}

	return false
}

// IsRetryable classifies an error as transient. Timeouts, network
// failures, and 5xx-class responses warrant a backed-off retry;
// 4xx-class responses are terminal. A 401 counts as terminal here: it
// only reaches this classifier after the resilient wrapper has already
// spent its forced-refresh retry, which means the credential is revoked.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrInvalid) {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusRequestTimeout, http.StatusTooManyRequests:
			return true
		}
		return apiErr.StatusCode >= http.StatusInternalServerError
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	// No HTTP status on the error means the request never produced a
	// platform response: unreachable host, reset connection, DNS failure.
	// All of those clear up on their own.
	return true
}
