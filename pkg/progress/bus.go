// Package progress is the in-process publish/subscribe bus for render-job
// progress events, fanned out to WebSocket subscribers.
package progress

import (
	"log/slog"
	"sync"
	"time"
)

// Event is one progress update for a job.
type Event struct {
	JobID     string    `json:"job_id"`
	VideoID   string    `json:"video_id"`
	Status    string    `json:"status"`
	Step      string    `json:"step,omitempty"`
	Progress  int       `json:"progress"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// subscriberBuffer bounds each subscription's backlog. A subscriber that
// falls further behind loses its oldest events; publish never blocks on a
// slow consumer.
const subscriberBuffer = 64

// Subscription receives events for one job in publish order.
type Subscription struct {
	C     chan Event
	jobID string
}

// Bus fans progress events out to per-job subscribers.
type Bus struct {
	mu     sync.RWMutex
	subs   map[string]map[*Subscription]struct{}
	logger *slog.Logger
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		subs:   make(map[string]map[*Subscription]struct{}),
		logger: slog.With("component", "progress"),
	}
}

// Subscribe registers for a job's events. Late subscribers do not replay
// history.
func (b *Bus) Subscribe(jobID string) *Subscription {
	sub := &Subscription{C: make(chan Event, subscriberBuffer), jobID: jobID}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs[jobID] == nil {
		b.subs[jobID] = make(map[*Subscription]struct{})
	}
	b.subs[jobID][sub] = struct{}{}
	return sub
}

// Unsubscribe removes a subscription and closes its channel.
func (b *Bus) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if set, ok := b.subs[sub.jobID]; ok {
		if _, ok := set[sub]; ok {
			delete(set, sub)
			close(sub.C)
		}
		if len(set) == 0 {
			delete(b.subs, sub.jobID)
		}
	}
}

// Publish delivers an event to every subscriber of its job. Events within a
// subscription preserve publish order; a full backlog drops the oldest event.
func (b *Bus) Publish(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	for sub := range b.subs[event.JobID] {
		select {
		case sub.C <- event:
		default:
			select {
			case <-sub.C:
				b.logger.Debug("Dropping oldest progress event for slow subscriber",
					"job_id", event.JobID)
			default:
			}
			select {
			case sub.C <- event:
			default:
			}
		}
	}
}
