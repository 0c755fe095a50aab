// Package sync implements the offline-resilience core: the durable
// queue of outbound writes, the order sync service with its retry
// ceiling, and the background scheduler that drains the queue when
// connectivity and lifecycle signals allow.
package sync

import "time"

// Config tunes the retry and scheduling behaviour of the sync core
type Config struct {
	// MaxSyncRetries caps delivery attempts per order before it is
	// frozen for operator review
	MaxSyncRetries int

	// BackoffBase is the delay after the first failed queue attempt;
	// it doubles per attempt up to BackoffCap
	BackoffBase time.Duration

	// BackoffCap bounds both queue retry delays and scheduler decay
	BackoffCap time.Duration

	// SweepInterval is the scheduler's base period between queue sweeps
	SweepInterval time.Duration
}

// DefaultConfig returns the production defaults
func DefaultConfig() Config {
	return Config{
		MaxSyncRetries: 3,
		BackoffBase:    time.Second,
		BackoffCap:     15 * time.Minute,
		SweepInterval:  30 * time.Second,
	}
}

// withDefaults fills zero fields so a partially built Config stays usable
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.MaxSyncRetries <= 0 {
		c.MaxSyncRetries = def.MaxSyncRetries
	}
	if c.BackoffBase <= 0 {
		c.BackoffBase = def.BackoffBase
	}
	if c.BackoffCap <= 0 {
		c.BackoffCap = def.BackoffCap
	}
	if c.SweepInterval <= 0 {
		c.SweepInterval = def.SweepInterval
	}
	return c
}
