// Package llm provides the OpenAI-compatible chat-completions client used by
// the chat pipeline and the content generators. It supports synchronous and
// streaming invocation with a single retry on transport errors and 5xx.
package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/saramhq/aegis/pkg/config"
	"github.com/saramhq/aegis/pkg/metrics"
	"github.com/saramhq/aegis/pkg/models"
)

// retryDelay is the pause before the single retry attempt.
const retryDelay = 500 * time.Millisecond

// Options tune a single invocation. Zero values fall back to configuration.
type Options struct {
	Model       string
	Temperature *float64
	MaxTokens   int
	Timeout     time.Duration
}

// Usage reports token accounting from the provider.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Completion is the result of a synchronous call.
type Completion struct {
	Text  string
	Usage Usage
	Model string
}

// StreamEvent is one event from a streaming call. Exactly one of the fields
// is meaningful: Meta first, then Token deltas, then Done or Err.
type StreamEvent struct {
	Meta  *StreamMeta
	Token string
	Done  *StreamDone
	Err   error
}

// StreamMeta is sent once when the upstream stream is established.
type StreamMeta struct {
	Model string
}

// StreamDone carries terminal stream metrics.
type StreamDone struct {
	FinishReason string
	TotalTokens  int
	ElapsedMs    int64
}

// APIError is a non-2xx response from the provider.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("llm provider returned HTTP %d: %s", e.Status, truncate(e.Body, 200))
}

// retryable reports whether the error warrants the single retry.
func retryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= 500
	}
	// Transport-level errors (connection refused, reset, etc.) are retryable;
	// context cancellation and deadline expiry are not.
	return err != nil && !isContextErr(err)
}

// Client talks to an OpenAI-compatible /chat/completions endpoint.
type Client struct {
	cfg        config.LLMConfig
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates an LLM client. The HTTP client carries no global timeout;
// per-call deadlines come from the request context.
func NewClient(cfg config.LLMConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
		logger:     slog.With("component", "llm"),
	}
}

// Model returns the configured default model.
func (c *Client) Model() string { return c.cfg.Model }

// Ping checks the provider is reachable. Used by the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/models"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("llm provider unreachable: %w", err)
	}
	resp.Body.Close()
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("llm provider returned %d", resp.StatusCode)
	}
	return nil
}

type chatRequest struct {
	Model       string           `json:"model"`
	Messages    []models.Message `json:"messages"`
	Temperature float64          `json:"temperature"`
	MaxTokens   int              `json:"max_tokens,omitempty"`
	Stream      bool             `json:"stream,omitempty"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message      models.Message `json:"message"`
		FinishReason string         `json:"finish_reason"`
	} `json:"choices"`
	Usage Usage `json:"usage"`
}

type chatStreamChunk struct {
	Model   string `json:"model"`
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage *Usage `json:"usage,omitempty"`
}

// Complete performs a synchronous chat completion. One retry on transport
// error or 5xx after a short delay.
func (c *Client) Complete(ctx context.Context, messages []models.Message, opts Options) (*Completion, error) {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = c.cfg.Timeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	started := time.Now()
	defer func() {
		metrics.LLMLatency.WithLabelValues("sync").Observe(time.Since(started).Seconds())
	}()

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			select {
			case <-callCtx.Done():
				return nil, callCtx.Err()
			case <-time.After(retryDelay):
			}
			c.logger.Warn("Retrying LLM call", "attempt", attempt+1, "error", lastErr)
		}

		completion, err := c.completeOnce(callCtx, messages, opts)
		if err == nil {
			return completion, nil
		}
		lastErr = err
		if !retryable(err) {
			return nil, err
		}
	}
	return nil, lastErr
}

func (c *Client) completeOnce(ctx context.Context, messages []models.Message, opts Options) (*Completion, error) {
	resp, err := c.post(ctx, c.buildRequest(messages, opts, false))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &APIError{Status: resp.StatusCode, Body: string(body)}
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode completion response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("completion response has no choices")
	}

	return &Completion{
		Text:  parsed.Choices[0].Message.Content,
		Usage: parsed.Usage,
		Model: parsed.Model,
	}, nil
}

// Stream performs a streaming chat completion. Events are delivered on an
// unbuffered channel so a slow consumer propagates backpressure to the
// provider read loop. Cancelling ctx aborts the in-flight request; the
// channel is always closed after the terminal event.
func (c *Client) Stream(ctx context.Context, messages []models.Message, opts Options) (<-chan StreamEvent, error) {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = c.cfg.StreamTimeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)

	resp, err := c.post(callCtx, c.buildRequest(messages, opts, true))
	if err != nil {
		cancel()
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		cancel()
		return nil, &APIError{Status: resp.StatusCode, Body: string(body)}
	}

	events := make(chan StreamEvent)
	go func() {
		defer close(events)
		defer cancel()
		defer resp.Body.Close()
		c.readStream(callCtx, resp.Body, events, time.Now())
	}()
	return events, nil
}

// readStream parses the SSE body and forwards events until done or error.
func (c *Client) readStream(ctx context.Context, body io.Reader, events chan<- StreamEvent, started time.Time) {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	metaSent := false
	finishReason := "stop"
	totalTokens := 0

	send := func(ev StreamEvent) bool {
		select {
		case events <- ev:
			return true
		case <-ctx.Done():
			return false
		}
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "[DONE]" {
			break
		}

		var chunk chatStreamChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			c.logger.Warn("Skipping malformed stream chunk", "error", err)
			continue
		}

		if !metaSent {
			if !send(StreamEvent{Meta: &StreamMeta{Model: chunk.Model}}) {
				return
			}
			metaSent = true
		}
		if chunk.Usage != nil {
			totalTokens = chunk.Usage.TotalTokens
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		if fr := chunk.Choices[0].FinishReason; fr != "" {
			finishReason = fr
		}
		if delta := chunk.Choices[0].Delta.Content; delta != "" {
			if !send(StreamEvent{Token: delta}) {
				return
			}
		}
	}

	if err := scanner.Err(); err != nil && !isContextErr(err) {
		send(StreamEvent{Err: fmt.Errorf("read stream: %w", err)})
		return
	}
	if ctx.Err() != nil {
		send(StreamEvent{Err: ctx.Err()})
		return
	}

	metrics.LLMLatency.WithLabelValues("stream").Observe(time.Since(started).Seconds())
	send(StreamEvent{Done: &StreamDone{
		FinishReason: finishReason,
		TotalTokens:  totalTokens,
		ElapsedMs:    time.Since(started).Milliseconds(),
	}})
}

func (c *Client) buildRequest(messages []models.Message, opts Options, stream bool) *chatRequest {
	model := opts.Model
	if model == "" {
		model = c.cfg.Model
	}
	temperature := c.cfg.Temperature
	if opts.Temperature != nil {
		temperature = *opts.Temperature
	}
	maxTokens := opts.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.cfg.MaxTokens
	}
	return &chatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Stream:      stream,
	}
}

func (c *Client) post(ctx context.Context, reqBody *chatRequest) (*http.Response, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call llm provider: %w", err)
	}
	return resp, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) ||
		strings.Contains(err.Error(), "context canceled") ||
		strings.Contains(err.Error(), "context deadline exceeded")
}
