// Package tts synthesises narration audio through the speech service.
package tts

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/saramhq/aegis/pkg/config"
)

// Client calls the TTS service.
type Client struct {
	cfg        config.TTSConfig
	httpClient *http.Client
}

// NewClient creates a TTS client.
func NewClient(cfg config.TTSConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Synthesis is one synthesised narration.
type Synthesis struct {
	Audio       []byte
	DurationSec float64
}

type synthesizeRequest struct {
	Text   string `json:"text"`
	Voice  string `json:"voice"`
	Format string `json:"format"`
}

type synthesizeResponse struct {
	AudioBase64 string  `json:"audio_base64"`
	DurationSec float64 `json:"duration_sec"`
}

// Synthesize renders text to MP3 audio and reports the spoken duration. The
// duration is authoritative: scene durations are reconciled against it.
func (c *Client) Synthesize(ctx context.Context, text string) (*Synthesis, error) {
	payload, err := json.Marshal(synthesizeRequest{Text: text, Voice: c.cfg.Voice, Format: "mp3"})
	if err != nil {
		return nil, fmt.Errorf("marshal tts request: %w", err)
	}

	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/v1/synthesize"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create tts request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call tts service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("tts service returned HTTP %d: %s", resp.StatusCode, string(body))
	}

	var parsed synthesizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode tts response: %w", err)
	}

	audio, err := base64.StdEncoding.DecodeString(parsed.AudioBase64)
	if err != nil {
		return nil, fmt.Errorf("decode tts audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("tts service returned empty audio")
	}
	return &Synthesis{Audio: audio, DurationSec: parsed.DurationSec}, nil
}
