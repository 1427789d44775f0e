package chat

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saramhq/aegis/pkg/llm"
	"github.com/saramhq/aegis/pkg/models"
	"github.com/saramhq/aegis/pkg/retrieval"
)

func collect(events <-chan StreamEvent) []StreamEvent {
	var out []StreamEvent
	for ev := range events {
		out = append(out, ev)
	}
	return out
}

func streamingLLM(tokens ...string) *fakeLLM {
	events := make([]llm.StreamEvent, 0, len(tokens)+2)
	events = append(events, llm.StreamEvent{Meta: &llm.StreamMeta{Model: "test-model"}})
	for _, tok := range tokens {
		events = append(events, llm.StreamEvent{Token: tok})
	}
	events = append(events, llm.StreamEvent{Done: &llm.StreamDone{
		FinishReason: "stop", TotalTokens: len(tokens), ElapsedMs: 12,
	}})
	return &fakeLLM{stream: events}
}

func TestStream_HappyPathEventOrder(t *testing.T) {
	orch := newOrchestrator(deps{llm: streamingLLM("연차는 ", "15일입니다.")})
	rc := newRC()

	events := collect(orch.Stream(context.Background(), rc, "req-1", policyTurn("연차 기준 알려줘")))
	require.GreaterOrEqual(t, len(events), 4)

	assert.Equal(t, EventMeta, events[0].Type)
	assert.Equal(t, "req-1", events[0].RequestID)
	assert.Equal(t, "test-model", events[0].Model)

	var answer strings.Builder
	for _, ev := range events[1 : len(events)-1] {
		assert.Equal(t, EventToken, ev.Type)
		answer.WriteString(ev.Text)
	}
	assert.Equal(t, "연차는 15일입니다.", answer.String())

	last := events[len(events)-1]
	assert.Equal(t, EventDone, last.Type)
	assert.Equal(t, "stop", last.FinishReason)
	assert.Equal(t, 2, last.TotalTokens)

	turnEvents := rc.Drain()
	require.Len(t, turnEvents, 1)
	assert.Equal(t, models.EventTypeChatTurn, turnEvents[0].EventType)
}

func TestStream_DuplicateInflightRejected(t *testing.T) {
	blocker := &fakeLLM{streamFeed: func(events chan<- llm.StreamEvent) {
		time.Sleep(200 * time.Millisecond)
		events <- llm.StreamEvent{Token: "늦은 답변"}
		events <- llm.StreamEvent{Done: &llm.StreamDone{FinishReason: "stop"}}
	}}
	orch := newOrchestrator(deps{llm: blocker})

	first := orch.Stream(context.Background(), newRC(), "req-dup", policyTurn("연차 기준"))
	// Wait for the first stream to pass registration (its meta event).
	ev := <-first
	require.Equal(t, EventMeta, ev.Type)

	second := collect(orch.Stream(context.Background(), newRC(), "req-dup", policyTurn("연차 기준")))
	require.Len(t, second, 1)
	assert.Equal(t, EventError, second[0].Type)
	assert.Equal(t, ErrorCodeDuplicateInflight, second[0].Code)

	collect(first)

	// After completion the id is reusable.
	third := collect(orch.Stream(context.Background(), newRC(), "req-dup", policyTurn("연차 기준")))
	assert.Equal(t, EventDone, third[len(third)-1].Type)
}

func TestStream_ErrorEventTerminal(t *testing.T) {
	failing := &fakeLLM{stream: []llm.StreamEvent{
		{Meta: &llm.StreamMeta{Model: "test-model"}},
		{Token: "부분 "},
		{Err: context.DeadlineExceeded},
	}}
	orch := newOrchestrator(deps{llm: failing})

	events := collect(orch.Stream(context.Background(), newRC(), "req-2", policyTurn("연차 기준")))
	last := events[len(events)-1]
	assert.Equal(t, EventError, last.Type)
	assert.Equal(t, ErrorCodeLLMTimeout, last.Code)
	for _, ev := range events {
		assert.NotEqual(t, EventDone, ev.Type)
	}
}

func TestStream_RetrievalUnavailable(t *testing.T) {
	searcher := &fakeSearcher{err: retrieval.ErrSearchUnavailable}
	orch := newOrchestrator(deps{searcher: searcher})

	events := collect(orch.Stream(context.Background(), newRC(), "req-3", policyTurn("연차 기준")))
	require.Len(t, events, 1)
	assert.Equal(t, EventError, events[0].Type)
	assert.Equal(t, ErrorCodeRAGUnavailable, events[0].Code)
}

func TestStream_PIIFailClosed(t *testing.T) {
	orch := newOrchestrator(deps{masker: &fakeMasker{failInput: true}})
	rc := newRC()

	events := collect(orch.Stream(context.Background(), rc, "req-4", policyTurn("주민번호 900101")))
	require.Len(t, events, 1)
	assert.Equal(t, EventError, events[0].Type)
	assert.Equal(t, ErrorCodePIIUnavailable, events[0].Code)

	turnEvents := rc.Drain()
	types := make([]string, 0, len(turnEvents))
	for _, ev := range turnEvents {
		types = append(types, ev.EventType)
	}
	assert.Contains(t, types, models.EventTypeSecurity)
	assert.Contains(t, types, models.EventTypeChatTurn)
}

func TestStream_ClientDisconnectCancels(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	slow := &fakeLLM{streamFeed: func(events chan<- llm.StreamEvent) {
		events <- llm.StreamEvent{Token: "첫 토큰"}
		time.Sleep(50 * time.Millisecond)
		events <- llm.StreamEvent{Token: "둘째 토큰"}
		events <- llm.StreamEvent{Done: &llm.StreamDone{FinishReason: "stop"}}
	}}
	orch := newOrchestrator(deps{llm: slow})
	rc := newRC()

	events := orch.Stream(ctx, rc, "req-5", policyTurn("연차 기준"))
	require.Equal(t, EventMeta, (<-events).Type)
	require.Equal(t, EventToken, (<-events).Type)
	cancel()

	// Channel closes without a done event; telemetry records the disconnect.
	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				turnEvents := rc.Drain()
				require.Len(t, turnEvents, 1)
				assert.Equal(t, ErrorCodeClientDisconnected, turnEvents[0].Payload["error_code"])
				return
			}
			assert.NotEqual(t, EventDone, ev.Type)
		case <-deadline:
			t.Fatal("stream did not close after cancellation")
		}
	}
}

func TestStream_ClarifyEmitsSingleToken(t *testing.T) {
	orch := newOrchestrator(deps{})
	turn := models.Turn{
		UserID:     "user-1",
		UserRole:   models.RoleEmployee,
		DomainHint: models.DomainGeneral,
		Messages:   []models.Message{{Role: models.RoleUser, Content: "음..."}},
	}

	events := collect(orch.Stream(context.Background(), newRC(), "req-6", turn))
	require.Len(t, events, 3)
	assert.Equal(t, EventMeta, events[0].Type)
	assert.Equal(t, EventToken, events[1].Type)
	assert.NotEmpty(t, events[1].Text)
	assert.Equal(t, EventDone, events[2].Type)
}

func TestInflightRegistry_Window(t *testing.T) {
	reg := NewInflightRegistry(10 * time.Millisecond)
	require.True(t, reg.Begin("r1"))
	require.False(t, reg.Begin("r1"))
	reg.Finish("r1")
	assert.True(t, reg.Seen("r1"))

	reg.evict(time.Now().Add(time.Minute))
	assert.False(t, reg.Seen("r1"))
	assert.True(t, reg.Begin("r1"))
}
