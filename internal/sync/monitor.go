package sync

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// DefaultProbeInterval is how often the monitor checks reachability
const DefaultProbeInterval = 15 * time.Second

// Monitor probes a platform endpoint and feeds reachability transitions
// into a Broadcaster. Only transitions are published: a terminal that
// stays online produces no signal traffic.
type Monitor struct {
	client   *http.Client
	url      string
	interval time.Duration
	signals  *Broadcaster
	logger   *slog.Logger

	// online is the last observed state, touched only by Run
	online bool
	seeded bool
}

// NewMonitor creates a connectivity monitor probing url every interval
func NewMonitor(url string, interval time.Duration, signals *Broadcaster, logger *slog.Logger) *Monitor {
	if interval <= 0 {
		interval = DefaultProbeInterval
	}
	return &Monitor{
		client:   &http.Client{Timeout: 5 * time.Second},
		url:      url,
		interval: interval,
		signals:  signals,
		logger:   logger,
	}
}

// Run probes until ctx is cancelled. It blocks; run it on its own
// goroutine.
func (m *Monitor) Run(ctx context.Context) {
	m.probe(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.probe(ctx)
		}
	}
}

// probe checks reachability once and publishes a transition if the
// state changed
func (m *Monitor) probe(ctx context.Context) {
	online := m.check(ctx)
	if m.seeded && online == m.online {
		return
	}

	m.online = online
	m.seeded = true

	if online {
		m.logger.Info("platform reachable", "url", m.url)
	} else {
		m.logger.Warn("platform unreachable", "url", m.url)
	}
	m.signals.SetOnline(online)
}

// check reports whether the probe endpoint answered at all. Any HTTP
// response counts as reachable, including error statuses: the network
// path works, only the transport failure below it means offline.
func (m *Monitor) check(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, m.url, nil)
	if err != nil {
		return false
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return false
	}
	_ = resp.Body.Close()

	return true
}
