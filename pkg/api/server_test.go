package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saramhq/aegis/ent"
	"github.com/saramhq/aegis/ent/renderjob"
	"github.com/saramhq/aegis/pkg/chat"
	"github.com/saramhq/aegis/pkg/config"
	"github.com/saramhq/aegis/pkg/generators"
	"github.com/saramhq/aegis/pkg/models"
	"github.com/saramhq/aegis/pkg/progress"
	"github.com/saramhq/aegis/pkg/render"
	"github.com/saramhq/aegis/pkg/retrieval"
	"github.com/saramhq/aegis/pkg/sourceset"
	"github.com/saramhq/aegis/pkg/telemetry"
)

type fakeChat struct {
	answer *models.ChatAnswer
	err    error
	events []chat.StreamEvent
}

func (f *fakeChat) Answer(ctx context.Context, rc *telemetry.RequestContext, turn models.Turn) (*models.ChatAnswer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.answer, nil
}

func (f *fakeChat) Stream(ctx context.Context, rc *telemetry.RequestContext, requestID string, turn models.Turn) <-chan chat.StreamEvent {
	out := make(chan chat.StreamEvent)
	go func() {
		defer close(out)
		for _, ev := range f.events {
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

type fakeRender struct {
	jobs    map[string]*ent.RenderJob
	created bool
	err     error
	assets  models.RenderAssets
}

func newFakeRender() *fakeRender {
	return &fakeRender{jobs: map[string]*ent.RenderJob{}, created: true}
}

func (f *fakeRender) job(id, videoID string, status renderjob.Status) *ent.RenderJob {
	job := &ent.RenderJob{
		ID:        id,
		VideoID:   videoID,
		ScriptID:  "script-1",
		Status:    status,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	f.jobs[id] = job
	return job
}

func (f *fakeRender) CreateJob(ctx context.Context, videoID, scriptID, createdBy string) (*ent.RenderJob, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	return f.job("job-1", videoID, renderjob.StatusQueued), f.created, nil
}

func (f *fakeRender) StartJob(ctx context.Context, jobID string) (*ent.RenderJob, error) {
	if f.err != nil {
		return nil, f.err
	}
	job, ok := f.jobs[jobID]
	if !ok {
		return nil, render.ErrJobNotFound
	}
	job.Status = renderjob.StatusProcessing
	return job, nil
}

func (f *fakeRender) RetryJob(ctx context.Context, jobID string) (*ent.RenderJob, error) {
	return f.StartJob(ctx, jobID)
}

func (f *fakeRender) CancelJob(ctx context.Context, jobID string) (*ent.RenderJob, error) {
	if f.err != nil {
		return nil, f.err
	}
	job, ok := f.jobs[jobID]
	if !ok {
		return nil, render.ErrJobNotFound
	}
	job.Status = renderjob.StatusCancelled
	return job, nil
}

func (f *fakeRender) GetJob(ctx context.Context, jobID string) (*ent.RenderJob, error) {
	job, ok := f.jobs[jobID]
	if !ok {
		return nil, render.ErrJobNotFound
	}
	return job, nil
}

func (f *fakeRender) ListJobs(ctx context.Context, videoID string) ([]*ent.RenderJob, error) {
	var out []*ent.RenderJob
	for _, job := range f.jobs {
		if job.VideoID == videoID {
			out = append(out, job)
		}
	}
	return out, nil
}

func (f *fakeRender) GetPublishedAssets(ctx context.Context, videoID string) (models.RenderAssets, error) {
	if f.assets == (models.RenderAssets{}) {
		return models.RenderAssets{}, render.ErrJobNotFound
	}
	return f.assets, nil
}

func (f *fakeRender) LatestProcessingJob(ctx context.Context, videoID string) (*ent.RenderJob, error) {
	for _, job := range f.jobs {
		if job.VideoID == videoID && job.Status == renderjob.StatusProcessing {
			return job, nil
		}
	}
	return nil, render.ErrJobNotFound
}

type fakeFAQ struct {
	result *generators.FAQResult
	err    error
}

func (f *fakeFAQ) Generate(ctx context.Context, req generators.FAQRequest) (*generators.FAQResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeFAQ) GenerateBatch(ctx context.Context, reqs []generators.FAQRequest) []generators.FAQBatchItem {
	out := make([]generators.FAQBatchItem, len(reqs))
	for i, req := range reqs {
		out[i] = generators.FAQBatchItem{Topic: req.Topic, Result: f.result}
	}
	return out
}

type fakeQuiz struct {
	result *generators.QuizResult
	err    error
}

func (f *fakeQuiz) Generate(ctx context.Context, req generators.QuizRequest) (*generators.QuizResult, error) {
	if err := f.err; err != nil {
		return nil, err
	}
	return f.result, nil
}

type fakeGap struct {
	result *generators.GapResult
	err    error
}

func (f *fakeGap) Suggest(ctx context.Context, questions []generators.GapQuestion) (*generators.GapResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeSourceSets struct {
	status   *sourceset.Status
	startErr error
}

func (f *fakeSourceSets) Start(id string, req sourceset.StartRequest) (*sourceset.Status, error) {
	if f.startErr != nil {
		return nil, f.startErr
	}
	return &sourceset.Status{SourceSetID: id, Status: sourceset.StatusQueued}, nil
}

func (f *fakeSourceSets) GetStatus(id string) *sourceset.Status {
	return f.status
}

type harness struct {
	srv    *httptest.Server
	chat   *fakeChat
	render *fakeRender
	faq    *fakeFAQ
	quiz   *fakeQuiz
	gap    *fakeGap
	sets   *fakeSourceSets
	bus    *progress.Bus
	cfg    config.ServerConfig
}

func newHarness(t *testing.T, cfg config.ServerConfig) *harness {
	t.Helper()
	h := &harness{
		chat:   &fakeChat{},
		render: newFakeRender(),
		faq:    &fakeFAQ{},
		quiz:   &fakeQuiz{},
		gap:    &fakeGap{},
		sets:   &fakeSourceSets{},
		bus:    progress.NewBus(),
		cfg:    cfg,
	}
	server := NewServer(cfg, Deps{
		Chat:       h.chat,
		Render:     h.render,
		FAQ:        h.faq,
		Quiz:       h.quiz,
		Gap:        h.gap,
		SourceSets: h.sets,
		Bus:        h.bus,
		Readiness: map[string]ReadyCheck{
			"backend": func(ctx context.Context) error { return nil },
		},
	})
	h.srv = httptest.NewServer(server.Handler())
	t.Cleanup(h.srv.Close)
	return h
}

func (h *harness) request(t *testing.T, method, path string, body interface{}, headers map[string]string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, h.srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, raw
}

func chatBody() map[string]interface{} {
	return map[string]interface{}{
		"session_id": "conv-1",
		"user_id":    "user-1",
		"user_role":  "EMPLOYEE",
		"domain":     "POLICY",
		"channel":    "WEB",
		"messages":   []map[string]string{{"role": "user", "content": "연차는 며칠인가요?"}},
	}
}

func TestRemovedEndpointsReturn410(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})

	for _, path := range []string{"/search", "/ingest", "/ai/rag/process"} {
		resp, raw := h.request(t, http.MethodPost, path, map[string]string{}, nil)
		assert.Equal(t, http.StatusGone, resp.StatusCode, path)
		var body errorResponse
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, ErrorCodeEndpointRemoved, body.ErrorCode)
	}

	resp, _ := h.request(t, http.MethodPost, "/internal/rag/documents", nil, nil)
	assert.Equal(t, http.StatusGone, resp.StatusCode)
}

func TestAPITokenRequired(t *testing.T) {
	h := newHarness(t, config.ServerConfig{APIToken: "secret"})

	resp, raw := h.request(t, http.MethodPost, "/ai/chat/messages", chatBody(), nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var body errorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, ErrorCodeUnauthorized, body.ErrorCode)

	h.chat.answer = &models.ChatAnswer{Answer: "15일입니다."}
	resp, _ = h.request(t, http.MethodPost, "/ai/chat/messages", chatBody(),
		map[string]string{"Authorization": "Bearer secret"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestInternalTokenRequired(t *testing.T) {
	h := newHarness(t, config.ServerConfig{InternalToken: "internal-secret"})

	body := map[string]string{"video_id": "video-1", "script_id": "script-1"}
	resp, _ := h.request(t, http.MethodPost, "/internal/ai/render-jobs", body, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = h.request(t, http.MethodPost, "/internal/ai/render-jobs", body,
		map[string]string{internalTokenHeader: "internal-secret"})
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
}

func TestHealthEndpoints(t *testing.T) {
	h := newHarness(t, config.ServerConfig{APIToken: "secret"})

	// Health and metrics stay reachable without a token.
	resp, _ := h.request(t, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw := h.request(t, http.MethodGet, "/health/ready", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), `"backend"`)

	resp, _ = h.request(t, http.MethodGet, "/metrics", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestReadinessReports503OnFailingDependency(t *testing.T) {
	server := NewServer(config.ServerConfig{}, Deps{
		Readiness: map[string]ReadyCheck{
			"llm":     func(ctx context.Context) error { return nil },
			"backend": func(ctx context.Context) error { return fmt.Errorf("connection refused") },
		},
	})
	srv := httptest.NewServer(server.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health/ready")
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, string(raw), "not_ready")
	assert.Contains(t, string(raw), "connection refused")
	assert.Contains(t, string(raw), `"llm":{"status":"ok"}`)
}

type recordingFlusher struct {
	mu  sync.Mutex
	rcs []*telemetry.RequestContext
}

func (f *recordingFlusher) Flush(ctx context.Context, rc *telemetry.RequestContext) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rcs = append(f.rcs, rc)
}

func TestTelemetryFlushedAfterChatRequest(t *testing.T) {
	flusher := &recordingFlusher{}
	server := NewServer(config.ServerConfig{}, Deps{
		Chat:    &fakeChat{answer: &models.ChatAnswer{Answer: "15일입니다."}},
		Emitter: flusher,
	})
	srv := httptest.NewServer(server.Handler())
	defer srv.Close()

	payload, err := json.Marshal(chatBody())
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/ai/chat/messages", bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Conversation-Id", "conv-1")
	req.Header.Set("X-User-Id", "user-1")
	req.Header.Set("X-Dept-Id", "dept-9")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	flusher.mu.Lock()
	defer flusher.mu.Unlock()
	require.Len(t, flusher.rcs, 1)
	assert.Equal(t, "conv-1", flusher.rcs[0].ConversationID)
	assert.Equal(t, "user-1", flusher.rcs[0].UserID)
	assert.Equal(t, "dept-9", flusher.rcs[0].DeptID)
}

func TestChatSyncReturnsAnswer(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})
	h.chat.answer = &models.ChatAnswer{
		Answer: "연차는 15일입니다.",
		Meta:   models.ChatMeta{Route: "POLICY_QA", RagUsed: true},
	}

	resp, raw := h.request(t, http.MethodPost, "/ai/chat/messages", chatBody(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var answer models.ChatAnswer
	require.NoError(t, json.Unmarshal(raw, &answer))
	assert.Equal(t, "연차는 15일입니다.", answer.Answer)
	assert.True(t, answer.Meta.RagUsed)
}

func TestChatValidation(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})

	tests := []struct {
		name   string
		mutate func(map[string]interface{})
	}{
		{"no messages", func(b map[string]interface{}) { b["messages"] = []map[string]string{} }},
		{"bad role", func(b map[string]interface{}) { b["user_role"] = "WIZARD" }},
		{"bad domain", func(b map[string]interface{}) { b["domain"] = "FINANCE" }},
		{"bad message role", func(b map[string]interface{}) {
			b["messages"] = []map[string]string{{"role": "system", "content": "x"}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := chatBody()
			tt.mutate(body)
			resp, raw := h.request(t, http.MethodPost, "/ai/chat/messages", body, nil)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
			var er errorResponse
			require.NoError(t, json.Unmarshal(raw, &er))
			assert.Equal(t, ErrorCodeInvalidRequest, er.ErrorCode)
		})
	}
}

func TestChatRetrievalUnavailableIs503(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})
	h.chat.err = fmt.Errorf("search: %w", retrieval.ErrSearchUnavailable)

	resp, raw := h.request(t, http.MethodPost, "/ai/chat/messages", chatBody(), nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	var er errorResponse
	require.NoError(t, json.Unmarshal(raw, &er))
	assert.Equal(t, chat.ErrorCodeRAGUnavailable, er.ErrorCode)
}

func TestChatStreamWritesNDJSON(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})
	h.chat.events = []chat.StreamEvent{
		{Type: chat.EventMeta, RequestID: "req-1", Model: "test-model"},
		{Type: chat.EventToken, Text: "연차는 "},
		{Type: chat.EventToken, Text: "15일입니다."},
		{Type: chat.EventDone, FinishReason: "stop"},
	}

	body := chatBody()
	body["request_id"] = "req-1"
	resp, raw := h.request(t, http.MethodPost, "/ai/chat/stream", body, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/x-ndjson", resp.Header.Get("Content-Type"))

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 4)

	var first chat.StreamEvent
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, chat.EventMeta, first.Type)
	assert.Equal(t, "req-1", first.RequestID)

	var last chat.StreamEvent
	require.NoError(t, json.Unmarshal([]byte(lines[3]), &last))
	assert.Equal(t, chat.EventDone, last.Type)
}
