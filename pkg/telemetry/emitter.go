package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/saramhq/aegis/pkg/config"
	"github.com/saramhq/aegis/pkg/metrics"
	"github.com/saramhq/aegis/pkg/models"
)

// Emitter forwards event batches to the backend's telemetry endpoint.
type Emitter struct {
	cfg        config.TelemetryConfig
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewEmitter creates a telemetry emitter. internalToken is sent on every
// batch so the backend can reject third-party posts.
func NewEmitter(cfg config.TelemetryConfig, internalToken string) *Emitter {
	return &Emitter{
		cfg:        cfg,
		token:      internalToken,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     slog.With("component", "telemetry"),
	}
}

// Flush drains the request context and posts its events. Failures are logged
// and the events dropped; there is no retry.
func (e *Emitter) Flush(ctx context.Context, rc *RequestContext) {
	events := rc.Drain()
	if len(events) == 0 || e == nil {
		return
	}
	if !e.cfg.Enabled {
		return
	}

	for start := 0; start < len(events); start += e.batchSize() {
		end := start + e.batchSize()
		if end > len(events) {
			end = len(events)
		}
		if err := e.post(ctx, events[start:end]); err != nil {
			metrics.TelemetryDropped.Add(float64(end - start))
			e.logger.Warn("Dropping telemetry batch", "count", end-start, "error", err)
		}
	}
}

func (e *Emitter) batchSize() int {
	if e.cfg.BatchSize <= 0 {
		return 20
	}
	return e.cfg.BatchSize
}

func (e *Emitter) post(ctx context.Context, events []models.TelemetryEvent) error {
	payload, err := json.Marshal(map[string]interface{}{"events": events})
	if err != nil {
		return fmt.Errorf("marshal telemetry batch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create telemetry request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if e.token != "" {
		req.Header.Set("X-Internal-Token", e.token)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post telemetry batch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telemetry endpoint returned HTTP %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
