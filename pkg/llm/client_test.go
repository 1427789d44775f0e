package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saramhq/aegis/pkg/config"
	"github.com/saramhq/aegis/pkg/models"
)

func testConfig(baseURL string) config.LLMConfig {
	return config.LLMConfig{
		BaseURL:       baseURL,
		Model:         "test-model",
		Temperature:   0.2,
		MaxTokens:     256,
		Timeout:       5 * time.Second,
		StreamTimeout: 5 * time.Second,
	}
}

func userMessages(content string) []models.Message {
	return []models.Message{{Role: models.RoleUser, Content: content}}
}

func TestComplete_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"model": "test-model",
			"choices": [{"message": {"role": "assistant", "content": "hello there"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 3, "total_tokens": 13}
		}`)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	completion, err := client.Complete(context.Background(), userMessages("hi"), Options{})
	require.NoError(t, err)
	assert.Equal(t, "hello there", completion.Text)
	assert.Equal(t, 13, completion.Usage.TotalTokens)
	assert.Equal(t, "test-model", completion.Model)
}

func TestComplete_RetriesOn5xx(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"model":"test-model","choices":[{"message":{"role":"assistant","content":"ok"},"finish_reason":"stop"}],"usage":{"total_tokens":2}}`)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	completion, err := client.Complete(context.Background(), userMessages("hi"), Options{})
	require.NoError(t, err)
	assert.Equal(t, "ok", completion.Text)
	assert.Equal(t, int32(2), calls.Load())
}

func TestComplete_NoRetryOn4xx(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, err := client.Complete(context.Background(), userMessages("hi"), Options{})
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, int32(1), calls.Load())
}

// sseServer streams the given chunks as an OpenAI-compatible SSE response.
func sseServer(t *testing.T, chunks []string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		flusher, ok := w.(http.Flusher)
		require.True(t, ok)
		for _, chunk := range chunks {
			fmt.Fprintf(w, "data: %s\n\n", chunk)
			flusher.Flush()
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
		flusher.Flush()
	}))
}

func TestStream_HappyPath(t *testing.T) {
	srv := sseServer(t, []string{
		`{"model":"test-model","choices":[{"delta":{"content":"안녕"},"finish_reason":""}]}`,
		`{"model":"test-model","choices":[{"delta":{"content":"하세요"},"finish_reason":""}]}`,
		`{"model":"test-model","choices":[{"delta":{},"finish_reason":"stop"}],"usage":{"total_tokens":7}}`,
	})
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	events, err := client.Stream(context.Background(), userMessages("hi"), Options{})
	require.NoError(t, err)

	var meta *StreamMeta
	var done *StreamDone
	var text string
	for ev := range events {
		require.NoError(t, ev.Err)
		switch {
		case ev.Meta != nil:
			require.Nil(t, meta, "meta must be sent once")
			meta = ev.Meta
		case ev.Done != nil:
			done = ev.Done
		default:
			require.NotNil(t, meta, "meta must precede tokens")
			require.Nil(t, done, "no tokens after done")
			text += ev.Token
		}
	}

	require.NotNil(t, meta)
	require.NotNil(t, done)
	assert.Equal(t, "test-model", meta.Model)
	assert.Equal(t, "안녕하세요", text)
	assert.Equal(t, "stop", done.FinishReason)
	assert.Equal(t, 7, done.TotalTokens)
	assert.GreaterOrEqual(t, done.ElapsedMs, int64(0))
}

func TestStream_CancelAborts(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		fmt.Fprint(w, "data: {\"model\":\"test-model\",\"choices\":[{\"delta\":{\"content\":\"a\"},\"finish_reason\":\"\"}]}\n\n")
		flusher.Flush()
		<-release // hold the stream open
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	client := NewClient(testConfig(srv.URL))
	events, err := client.Stream(ctx, userMessages("hi"), Options{})
	require.NoError(t, err)

	// Consume meta and first token, then cancel mid-stream.
	<-events
	<-events
	cancel()

	sawDone := false
	for ev := range events {
		if ev.Done != nil {
			sawDone = true
		}
	}
	assert.False(t, sawDone, "cancelled stream must not emit done")
}

func TestStream_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, err := client.Stream(context.Background(), userMessages("hi"), Options{})
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
}
