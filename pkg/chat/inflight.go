package chat

import (
	"context"
	"sync"
	"time"
)

type inflightState int

const (
	stateActive inflightState = iota
	stateDone
)

type inflightEntry struct {
	state   inflightState
	touched time.Time
}

// InflightRegistry deduplicates streaming requests by request_id. An id is
// rejected while a stream with the same id is active; completed ids stay
// cached for the window so client retries can be recognised.
type InflightRegistry struct {
	mu      sync.Mutex
	entries map[string]*inflightEntry
	window  time.Duration
	stop    chan struct{}
	once    sync.Once
}

// NewInflightRegistry creates a registry whose entries expire after window.
func NewInflightRegistry(window time.Duration) *InflightRegistry {
	if window <= 0 {
		window = 10 * time.Minute
	}
	return &InflightRegistry{
		entries: make(map[string]*inflightEntry),
		window:  window,
		stop:    make(chan struct{}),
	}
}

// Begin registers a request id. Returns false if a stream with the same id
// is already active.
func (r *InflightRegistry) Begin(requestID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok := r.entries[requestID]; ok && entry.state == stateActive {
		return false
	}
	r.entries[requestID] = &inflightEntry{state: stateActive, touched: time.Now()}
	return true
}

// Finish marks a request id completed. The entry stays until the window
// expires.
func (r *InflightRegistry) Finish(requestID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok := r.entries[requestID]; ok {
		entry.state = stateDone
		entry.touched = time.Now()
	}
}

// Seen reports whether a request id completed within the window.
func (r *InflightRegistry) Seen(requestID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[requestID]
	return ok && entry.state == stateDone
}

// StartJanitor evicts expired entries periodically until ctx is cancelled.
func (r *InflightRegistry) StartJanitor(ctx context.Context) {
	interval := r.window / 4
	if interval < time.Second {
		interval = time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-r.stop:
				return
			case <-ticker.C:
				r.evict(time.Now())
			}
		}
	}()
}

// Close stops the janitor.
func (r *InflightRegistry) Close() {
	r.once.Do(func() { close(r.stop) })
}

func (r *InflightRegistry) evict(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, entry := range r.entries {
		// Active entries are never evicted; their stream owns the cleanup.
		if entry.state == stateDone && now.Sub(entry.touched) > r.window {
			delete(r.entries, id)
		}
	}
}
