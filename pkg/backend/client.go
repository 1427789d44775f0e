// Package backend is the HTTP client for the web-application backend: render
// specs, script approval state, personalisation facts, and the completion
// callbacks the render runner posts when a job reaches a terminal state.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/saramhq/aegis/pkg/config"
	"github.com/saramhq/aegis/pkg/models"
	"github.com/saramhq/aegis/pkg/version"
)

// Client talks to the backend with the shared internal token.
type Client struct {
	cfg        config.BackendConfig
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a backend client.
func NewClient(cfg config.BackendConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     slog.With("component", "backend"),
	}
}

// ScriptStatus is the approval state of a script on the backend.
type ScriptStatus struct {
	ScriptID string `json:"script_id"`
	Status   string `json:"status"`
}

// Approved reports whether the script may be rendered.
func (s ScriptStatus) Approved() bool { return s.Status == "APPROVED" }

// GetScriptStatus fetches the approval state of a script.
func (c *Client) GetScriptStatus(ctx context.Context, scriptID string) (*ScriptStatus, error) {
	var status ScriptStatus
	path := "/internal/scripts/" + url.PathEscape(scriptID)
	if err := c.do(ctx, http.MethodGet, path, nil, &status); err != nil {
		return nil, fmt.Errorf("get script status: %w", err)
	}
	return &status, nil
}

// GetRenderSpec fetches the render spec for a script. The caller snapshots it
// into the job row so later retries do not depend on the backend's copy.
func (c *Client) GetRenderSpec(ctx context.Context, videoID, scriptID string) (*models.RenderSpec, error) {
	var spec models.RenderSpec
	path := fmt.Sprintf("/internal/videos/%s/scripts/%s/render-spec",
		url.PathEscape(videoID), url.PathEscape(scriptID))
	if err := c.do(ctx, http.MethodGet, path, nil, &spec); err != nil {
		return nil, fmt.Errorf("get render spec: %w", err)
	}
	return &spec, nil
}

// RenderJobResult is posted to the backend when a job terminates.
type RenderJobResult struct {
	JobID       string              `json:"job_id"`
	VideoID     string              `json:"video_id"`
	Status      string              `json:"status"`
	ErrorCode   string              `json:"error_code,omitempty"`
	Assets      models.RenderAssets `json:"assets,omitempty"`
	DurationSec float64             `json:"duration_sec,omitempty"`
}

// NotifyRenderJobComplete posts the terminal-state callback. Failures are
// logged by the caller and never flip the job status.
func (c *Client) NotifyRenderJobComplete(ctx context.Context, result RenderJobResult) error {
	path := "/internal/callbacks/render-jobs/" + url.PathEscape(result.JobID) + "/complete"
	if err := c.do(ctx, http.MethodPost, path, result, nil); err != nil {
		return fmt.Errorf("render-job completion callback: %w", err)
	}
	return nil
}

// SourceSetResult is posted when a source-set pipeline finishes.
type SourceSetResult struct {
	SourceSetID string `json:"source_set_id"`
	Status      string `json:"status"`
	ScriptID    string `json:"script_id,omitempty"`
	ErrorCode   string `json:"error_code,omitempty"`
}

// NotifySourceSetComplete posts the source-set pipeline callback.
func (c *Client) NotifySourceSetComplete(ctx context.Context, result SourceSetResult) error {
	path := "/internal/callbacks/source-sets/" + url.PathEscape(result.SourceSetID) + "/complete"
	if err := c.do(ctx, http.MethodPost, path, result, nil); err != nil {
		return fmt.Errorf("source-set completion callback: %w", err)
	}
	return nil
}

// ResolveRequest asks the backend for personalised facts for one sub-intent.
type ResolveRequest struct {
	SubIntentID  string `json:"sub_intent_id"`
	Period       string `json:"period,omitempty"`
	TargetDeptID string `json:"target_dept_id,omitempty"`
}

// Facts is the canonical personalisation payload: a per-Q metrics map plus
// optional list rows, both passed through to the answer generator untyped.
type Facts struct {
	SubIntentID string                   `json:"sub_intent_id"`
	Period      string                   `json:"period,omitempty"`
	Metrics     map[string]interface{}   `json:"metrics,omitempty"`
	Items       []map[string]interface{} `json:"items,omitempty"`
}

// ResolvePersonalization fetches the facts for a user's sub-intent. The user
// identity travels in a header, not the body.
func (c *Client) ResolvePersonalization(ctx context.Context, userID string, req ResolveRequest) (*Facts, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal personalization request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL()+"/api/personalization/resolve", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create personalization request: %w", err)
	}
	c.setHeaders(httpReq)
	httpReq.Header.Set("X-User-Id", userID)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("resolve personalization: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("personalization endpoint returned HTTP %d: %s", resp.StatusCode, string(body))
	}

	var facts Facts
	if err := json.NewDecoder(resp.Body).Decode(&facts); err != nil {
		return nil, fmt.Errorf("decode personalization response: %w", err)
	}
	return &facts, nil
}

// Ping checks backend reachability for the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	resp.Body.Close()
	if resp.StatusCode >= 500 {
		return fmt.Errorf("backend health returned HTTP %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) baseURL() string {
	return strings.TrimSuffix(c.cfg.BaseURL, "/")
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", version.Full())
	if c.cfg.InternalToken != "" {
		req.Header.Set("X-Internal-Token", c.cfg.InternalToken)
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL()+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("backend returned HTTP %d: %s", resp.StatusCode, string(respBody))
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
