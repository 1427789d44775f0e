// Package pii masks personally identifiable information via a remote
// detector. The policy is fail-closed: if the detector cannot be reached at
// the INPUT or OUTPUT stage, the turn is refused rather than risking raw
// user text leaking downstream. The LOG stage degrades to "[REDACTED]" so
// telemetry can always be emitted without original text.
package pii

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/saramhq/aegis/pkg/config"
	"github.com/saramhq/aegis/pkg/metrics"
)

// Stage identifies where in the pipeline the text is being masked.
type Stage string

// Masking stages.
const (
	StageInput  Stage = "INPUT"
	StageOutput Stage = "OUTPUT"
	StageLog    Stage = "LOG"
)

// Redacted replaces text entirely when the LOG stage cannot run the detector.
const Redacted = "[REDACTED]"

// Tag describes one detected entity.
type Tag struct {
	Entity string `json:"entity"`
	Label  string `json:"label"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
}

// MaskResult is the outcome of masking one text.
type MaskResult struct {
	Original string
	Masked   string
	HasPII   bool
	Tags     []Tag
}

// DetectorUnavailableError signals a fail-closed refusal: the detector could
// not give a verdict at a stage where raw text must not pass.
type DetectorUnavailableError struct {
	Stage  Stage
	Reason string
	cause  error
}

func (e *DetectorUnavailableError) Error() string {
	return fmt.Sprintf("pii detector unavailable at %s stage: %s", e.Stage, e.Reason)
}

func (e *DetectorUnavailableError) Unwrap() error { return e.cause }

// Masker delegates detection to the remote PII service. Created once at
// startup; stateless and safe for concurrent use.
type Masker struct {
	cfg        config.PIIConfig
	httpClient *http.Client
	logger     *slog.Logger
}

// NewMasker creates a masker from configuration.
func NewMasker(cfg config.PIIConfig) *Masker {
	return &Masker{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     slog.With("component", "pii"),
	}
}

// Enabled reports whether the detector is configured on.
func (m *Masker) Enabled() bool { return m.cfg.Enabled }

type maskRequest struct {
	Text  string `json:"text"`
	Stage string `json:"stage"`
}

type maskResponse struct {
	OriginalText string `json:"original_text"`
	MaskedText   string `json:"masked_text"`
	HasPII       bool   `json:"has_pii"`
	Tags         []Tag  `json:"tags"`
}

// Mask masks text at the given stage.
//
// Disabled detector: INPUT and OUTPUT pass text through unchanged; LOG
// returns Redacted, because log text without a verdict must not carry
// possible PII. Any detector failure at INPUT or OUTPUT returns
// *DetectorUnavailableError; at LOG the failure degrades to Redacted.
func (m *Masker) Mask(ctx context.Context, text string, stage Stage) (*MaskResult, error) {
	if !m.cfg.Enabled {
		if stage == StageLog {
			return &MaskResult{Original: text, Masked: Redacted}, nil
		}
		return &MaskResult{Original: text, Masked: text}, nil
	}
	if text == "" {
		return &MaskResult{}, nil
	}

	result, err := m.detect(ctx, text, stage)
	if err != nil {
		metrics.PIIBlocks.WithLabelValues(string(stage)).Inc()
		if stage == StageLog {
			m.logger.Warn("PII detector failed at LOG stage, redacting", "error", err)
			return &MaskResult{Original: text, Masked: Redacted, HasPII: true}, nil
		}
		m.logger.Error("PII detector failed, refusing turn (fail-closed)",
			"stage", stage, "error", err)
		return nil, &DetectorUnavailableError{Stage: stage, Reason: err.Error(), cause: err}
	}
	return result, nil
}

func (m *Masker) detect(ctx context.Context, text string, stage Stage) (*MaskResult, error) {
	payload, err := json.Marshal(maskRequest{Text: text, Stage: string(stage)})
	if err != nil {
		return nil, fmt.Errorf("marshal mask request: %w", err)
	}

	url := strings.TrimSuffix(m.cfg.BaseURL, "/") + "/mask"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create mask request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call pii detector: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("pii detector returned HTTP %d: %s", resp.StatusCode, string(body))
	}

	var parsed maskResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode mask response: %w", err)
	}

	return &MaskResult{
		Original: text,
		Masked:   parsed.MaskedText,
		HasPII:   parsed.HasPII,
		Tags:     parsed.Tags,
	}, nil
}
