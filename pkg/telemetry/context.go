// Package telemetry collects per-request analytics events and forwards them
// to the backend in batches. Emission is best-effort: failures are logged and
// dropped so telemetry can never delay or fail the user path.
package telemetry

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/saramhq/aegis/pkg/models"
)

type contextKey struct{}

// RequestContext accumulates the identifiers and events of one in-flight
// request. Each request gets its own instance, so concurrent turns cannot
// leak IDs into each other.
type RequestContext struct {
	mu sync.Mutex

	TraceID        string
	ConversationID string
	TurnID         string
	UserID         string
	DeptID         string

	emitted map[string]bool
	queued  []models.TelemetryEvent
}

// NewRequestContext creates a request context with a fresh trace and turn id.
func NewRequestContext(conversationID, userID, deptID string) *RequestContext {
	return &RequestContext{
		TraceID:        uuid.NewString(),
		ConversationID: conversationID,
		TurnID:         uuid.NewString(),
		UserID:         userID,
		DeptID:         deptID,
		emitted:        make(map[string]bool),
	}
}

// WithContext attaches the request context to ctx.
func WithContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, rc)
}

// FromContext returns the request context attached to ctx, or nil.
func FromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(contextKey{}).(*RequestContext)
	return rc
}

// Queue records an event of the given type. Event types are at-most-once per
// request: a second CHAT_TURN queue attempt is a no-op. A nil receiver is a
// no-op so call sites need no guards.
func (rc *RequestContext) Queue(eventType string, payload map[string]interface{}) {
	if rc == nil {
		return
	}
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.emitted[eventType] {
		return
	}
	rc.emitted[eventType] = true
	rc.queued = append(rc.queued, models.TelemetryEvent{
		EventID:        uuid.NewString(),
		EventType:      eventType,
		TraceID:        rc.TraceID,
		ConversationID: rc.ConversationID,
		TurnID:         rc.TurnID,
		UserID:         rc.UserID,
		DeptID:         rc.DeptID,
		OccurredAt:     time.Now().UTC(),
		Payload:        payload,
	})
}

// Drain returns the queued events and clears the queue. The emitted flags are
// kept so a drained type cannot be queued again within the same request.
func (rc *RequestContext) Drain() []models.TelemetryEvent {
	if rc == nil {
		return nil
	}
	rc.mu.Lock()
	defer rc.mu.Unlock()
	events := rc.queued
	rc.queued = nil
	return events
}
