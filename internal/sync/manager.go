package sync

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Manager owns the scheduler goroutine and wires external signals into
// it: connectivity transitions pause and resume sweeping, lifecycle
// foreground transitions trigger an immediate sweep. It also runs a
// fixed-interval catch-up ticker alongside the scheduler's decaying
// timer, so a request whose retry delay elapses during a quiet stretch
// never waits for the decayed interval.
type Manager struct {
	scheduler *Scheduler
	logger    *slog.Logger
	interval  time.Duration

	mu     sync.Mutex
	unsubs []Unsubscribe
	cancel context.CancelFunc
	wg     sync.WaitGroup

	closeOnce sync.Once
}

// NewManager creates a manager over the scheduler
func NewManager(scheduler *Scheduler, cfg Config, logger *slog.Logger) *Manager {
	return &Manager{
		scheduler: scheduler,
		logger:    logger,
		interval:  cfg.withDefaults().SweepInterval,
	}
}

// Start launches the scheduler loop and the catch-up ticker. It returns
// immediately; Close stops both and waits for them.
func (m *Manager) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)

	m.mu.Lock()
	m.cancel = cancel
	m.mu.Unlock()

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		m.scheduler.Run(runCtx)
	}()

	// the ticker never decays: it exists to catch requests whose
	// NextRetryAt elapsed while no signal fired, not to drive backoff.
	// A kick while paused is still suppressed by the scheduler.
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C:
				m.scheduler.Kick()
			}
		}
	}()

	m.logger.Info("sync manager started")
}

// WatchConnectivity pauses sweeping while offline and resumes it, with
// an immediate sweep, when the platform becomes reachable again
func (m *Manager) WatchConnectivity(source ConnectivitySource) {
	unsub := source.OnConnectivityChanged(func(online bool) {
		if online {
			m.scheduler.Resume()
		} else {
			m.scheduler.Pause()
		}
	})

	m.mu.Lock()
	m.unsubs = append(m.unsubs, unsub)
	m.mu.Unlock()
}

// WatchLifecycle pauses sweeping while the terminal app is in the
// background and resumes, with an immediate sweep, on foreground
func (m *Manager) WatchLifecycle(source LifecycleSource) {
	fgUnsub := source.OnForeground(func() {
		m.scheduler.Resume()
	})
	bgUnsub := source.OnBackground(func() {
		m.scheduler.Pause()
	})

	m.mu.Lock()
	m.unsubs = append(m.unsubs, fgUnsub, bgUnsub)
	m.mu.Unlock()
}

// Close detaches all signal subscriptions, stops the scheduler, and
// waits for it to exit. Safe to call more than once.
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		m.mu.Lock()
		unsubs := m.unsubs
		m.unsubs = nil
		cancel := m.cancel
		m.mu.Unlock()

		for _, unsub := range unsubs {
			unsub()
		}
		if cancel != nil {
			cancel()
		}
		m.wg.Wait()

		m.logger.Info("sync manager stopped")
	})
}
