// Package backoff computes retry delays for the sync queue and the
// background scheduler.
package backoff

import "time"

// DefaultCap bounds delay growth so repeated retries never wait longer
// than 15 minutes against a possibly still-degraded platform.
const DefaultCap = 15 * time.Minute

// Delay returns min(base * 2^attempt, limit). The result is non-decreasing
// in attempt and safe against shift overflow. A non-positive limit falls
// back to DefaultCap.
func Delay(base, limit time.Duration, attempt int) time.Duration {
	if limit <= 0 {
		limit = DefaultCap
	}
	if base <= 0 {
		return 0
	}
	d := base
	for i := 0; i < attempt; i++ {
		d <<= 1
		// overflow shows up as a non-positive duration
		if d >= limit || d <= 0 {
			return limit
		}
	}
	if d > limit {
		return limit
	}
	return d
}
