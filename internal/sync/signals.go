package sync

import "sync"

// Unsubscribe detaches a previously registered callback. Safe to call
// more than once.
type Unsubscribe func()

// ConnectivitySource emits network reachability transitions. The
// callback fires with true when the platform becomes reachable and
// false when it stops being reachable.
type ConnectivitySource interface {
	OnConnectivityChanged(fn func(online bool)) Unsubscribe
}

// LifecycleSource emits terminal lifecycle transitions: the POS app
// moving to the background and returning to the foreground.
type LifecycleSource interface {
	OnForeground(fn func()) Unsubscribe
	OnBackground(fn func()) Unsubscribe
}

// Broadcaster is a fan-out implementation of both signal sources.
// Probes and platform hooks push transitions in, subscribers are
// called synchronously on the pushing goroutine.
type Broadcaster struct {
	mu       sync.Mutex
	nextID   int
	connSubs map[int]func(online bool)
	fgSubs   map[int]func()
	bgSubs   map[int]func()
}

var (
	_ ConnectivitySource = (*Broadcaster)(nil)
	_ LifecycleSource    = (*Broadcaster)(nil)
)

// NewBroadcaster creates an empty signal fan-out
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		connSubs: make(map[int]func(online bool)),
		fgSubs:   make(map[int]func()),
		bgSubs:   make(map[int]func()),
	}
}

// OnConnectivityChanged registers fn for reachability transitions
func (b *Broadcaster) OnConnectivityChanged(fn func(online bool)) Unsubscribe {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.connSubs[id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.connSubs, id)
	}
}

// OnForeground registers fn for foreground transitions
func (b *Broadcaster) OnForeground(fn func()) Unsubscribe {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.fgSubs[id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.fgSubs, id)
	}
}

// OnBackground registers fn for background transitions
func (b *Broadcaster) OnBackground(fn func()) Unsubscribe {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.bgSubs[id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.bgSubs, id)
	}
}

// SetOnline pushes a reachability transition to all subscribers
func (b *Broadcaster) SetOnline(online bool) {
	b.mu.Lock()
	subs := make([]func(online bool), 0, len(b.connSubs))
	for _, fn := range b.connSubs {
		subs = append(subs, fn)
	}
	b.mu.Unlock()

	for _, fn := range subs {
		fn(online)
	}
}

// NotifyForeground pushes a foreground transition to all subscribers
func (b *Broadcaster) NotifyForeground() {
	b.mu.Lock()
	subs := make([]func(), 0, len(b.fgSubs))
	for _, fn := range b.fgSubs {
		subs = append(subs, fn)
	}
	b.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// NotifyBackground pushes a background transition to all subscribers
func (b *Broadcaster) NotifyBackground() {
	b.mu.Lock()
	subs := make([]func(), 0, len(b.bgSubs))
	for _, fn := range b.bgSubs {
		subs = append(subs, fn)
	}
	b.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}
