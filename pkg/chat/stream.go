package chat

import (
	"context"
	"errors"
	"time"

	"github.com/saramhq/aegis/pkg/intent"
	"github.com/saramhq/aegis/pkg/llm"
	"github.com/saramhq/aegis/pkg/metrics"
	"github.com/saramhq/aegis/pkg/models"
	"github.com/saramhq/aegis/pkg/telemetry"
)

// Stream event types. One JSON object per NDJSON line.
const (
	EventMeta  = "meta"
	EventToken = "token"
	EventDone  = "done"
	EventError = "error"
)

// StreamEvent is one NDJSON line of a streaming chat response.
type StreamEvent struct {
	Type         string `json:"type"`
	RequestID    string `json:"request_id,omitempty"`
	Model        string `json:"model,omitempty"`
	Timestamp    string `json:"timestamp,omitempty"`
	Text         string `json:"text,omitempty"`
	FinishReason string `json:"finish_reason,omitempty"`
	TotalTokens  int    `json:"total_tokens,omitempty"`
	ElapsedMs    int64  `json:"elapsed_ms,omitempty"`
	TTFBMs       int64  `json:"ttfb_ms,omitempty"`
	Code         string `json:"code,omitempty"`
	Message      string `json:"message,omitempty"`
}

// Stream runs the pipeline and emits NDJSON events on the returned channel.
// The channel is unbuffered: a slow consumer stalls the LLM read, and a
// cancelled ctx aborts the upstream call. The channel is always closed after
// a terminal done or error event.
func (o *Orchestrator) Stream(ctx context.Context, rc *telemetry.RequestContext, requestID string, turn models.Turn) <-chan StreamEvent {
	events := make(chan StreamEvent)
	go o.runStream(ctx, rc, requestID, turn, events)
	return events
}

func (o *Orchestrator) runStream(ctx context.Context, rc *telemetry.RequestContext, requestID string, turn models.Turn, events chan<- StreamEvent) {
	defer close(events)
	started := time.Now()

	if !o.inflight.Begin(requestID) {
		o.emit(ctx, events, StreamEvent{
			Type:      EventError,
			Code:      ErrorCodeDuplicateInflight,
			Message:   "동일한 요청이 이미 처리 중입니다. 잠시 후 다시 시도해 주세요.",
			RequestID: requestID,
		})
		return
	}
	defer o.inflight.Finish(requestID)

	p, err := o.prepare(ctx, rc, turn)
	if err != nil {
		o.streamFailure(ctx, rc, events, requestID, err, started)
		return
	}

	meta := StreamEvent{
		Type:      EventMeta,
		RequestID: requestID,
		Model:     o.llm.Model(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if !o.emit(ctx, events, meta) {
		o.abandon(rc, p, started)
		return
	}

	if p.directAnswer != "" {
		o.emitDirect(ctx, rc, events, p, started)
		return
	}

	llmStarted := time.Now()
	llmEvents, err := o.llm.Stream(ctx, p.messages, llm.Options{})
	if err != nil {
		o.streamFailure(ctx, rc, events, requestID, err, started)
		return
	}

	var answer []byte
	var ttfbMs int64
	done := llm.StreamDone{}
	for ev := range llmEvents {
		switch {
		case ev.Err != nil:
			o.streamFailure(ctx, rc, events, requestID, ev.Err, started)
			return
		case ev.Token != "":
			if ttfbMs == 0 {
				ttfbMs = time.Since(llmStarted).Milliseconds()
			}
			answer = append(answer, ev.Token...)
			if !o.emit(ctx, events, StreamEvent{Type: EventToken, Text: ev.Token}) {
				o.abandon(rc, p, started)
				return
			}
		case ev.Done != nil:
			done = *ev.Done
		}
	}
	metrics.LLMLatency.WithLabelValues("stream").Observe(time.Since(llmStarted).Seconds())
	p.meta.LLMLatencyMs = time.Since(llmStarted).Milliseconds()

	finished := o.emit(ctx, events, StreamEvent{
		Type:         EventDone,
		FinishReason: done.FinishReason,
		TotalTokens:  done.TotalTokens,
		ElapsedMs:    done.ElapsedMs,
		TTFBMs:       ttfbMs,
	})
	if !finished {
		o.abandon(rc, p, started)
		return
	}

	result := &models.ChatAnswer{Answer: string(answer), Sources: p.sources, Meta: p.meta}
	o.finish(rc, result, p.maskedQuery, started)
}

// emitDirect streams a precomputed answer (clarify, facts-only) as a single
// token followed by done.
func (o *Orchestrator) emitDirect(ctx context.Context, rc *telemetry.RequestContext, events chan<- StreamEvent, p *prepared, started time.Time) {
	if !o.emit(ctx, events, StreamEvent{Type: EventToken, Text: p.directAnswer}) {
		o.abandon(rc, p, started)
		return
	}
	if !o.emit(ctx, events, StreamEvent{
		Type:         EventDone,
		FinishReason: "stop",
		ElapsedMs:    time.Since(started).Milliseconds(),
	}) {
		o.abandon(rc, p, started)
		return
	}
	result := &models.ChatAnswer{Answer: p.directAnswer, Sources: p.sources, Meta: p.meta}
	o.finish(rc, result, p.maskedQuery, started)
}

// emit writes one event, honouring cancellation. Returns false when the
// consumer is gone.
func (o *Orchestrator) emit(ctx context.Context, events chan<- StreamEvent, ev StreamEvent) bool {
	select {
	case events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

// abandon records a client disconnect: telemetry is still emitted exactly
// once, with CLIENT_DISCONNECTED in place of a delivered answer.
func (o *Orchestrator) abandon(rc *telemetry.RequestContext, p *prepared, started time.Time) {
	p.meta.ErrorType = ErrorCodeClientDisconnected
	result := &models.ChatAnswer{Meta: p.meta}
	o.finish(rc, result, p.maskedQuery, started)
}

// streamFailure emits a terminal error event and the turn telemetry.
func (o *Orchestrator) streamFailure(ctx context.Context, rc *telemetry.RequestContext, events chan<- StreamEvent, requestID string, err error, started time.Time) {
	code, message := streamErrorCode(err)
	o.emit(ctx, events, StreamEvent{
		Type:      EventError,
		Code:      code,
		Message:   message,
		RequestID: requestID,
	})

	meta := models.ChatMeta{Route: string(intent.RouteError), ErrorType: code}
	o.finish(rc, &models.ChatAnswer{Meta: meta}, "", started)
}

func streamErrorCode(err error) (code, message string) {
	switch {
	case errors.Is(err, ErrEmptyMessage):
		return ErrorCodeInvalidRequest, "메시지 내용이 비어 있습니다."
	case isPIIUnavailable(err):
		return ErrorCodePIIUnavailable, piiFallbackMessage
	case errors.Is(err, context.DeadlineExceeded):
		return ErrorCodeLLMTimeout, llmFallbackMessage
	default:
		if code := ragErrorCode(err); code != "" {
			return code, "사내 문서 검색이 일시적으로 불가합니다. 잠시 후 다시 시도해 주세요."
		}
		return ErrorCodeLLM, llmFallbackMessage
	}
}
