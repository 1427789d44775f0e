// Package retrieval implements grounded document search over two backends,
// the vector store (Milvus) and the external retrieval engine (RAGFlow),
// with deterministic fallback, query normalisation, and a bounded TTL cache.
package retrieval

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"

	"github.com/saramhq/aegis/pkg/config"
)

// EmbeddingClient fetches query embeddings from the embeddings service.
type EmbeddingClient struct {
	cfg        config.EmbeddingConfig
	httpClient *http.Client
}

// NewEmbeddingClient creates an embedding client.
func NewEmbeddingClient(cfg config.EmbeddingConfig) *EmbeddingClient {
	return &EmbeddingClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Dimension returns the configured embedding dimension.
func (c *EmbeddingClient) Dimension() int { return c.cfg.Dimension }

type embeddingRequest struct {
	Input string `json:"input"`
	Model string `json:"model"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
}

// Embed returns the L2-normalised embedding of the text. The returned vector
// length always equals the configured dimension; a mismatch is an error
// because the vector store's collection was verified against it at startup.
func (c *EmbeddingClient) Embed(ctx context.Context, text string) ([]float64, error) {
	payload, err := json.Marshal(embeddingRequest{Input: text, Model: c.cfg.Model})
	if err != nil {
		return nil, fmt.Errorf("marshal embedding request: %w", err)
	}

	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/embeddings"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create embedding request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call embeddings service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("embeddings service returned HTTP %d: %s", resp.StatusCode, string(body))
	}

	var parsed embeddingResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode embedding response: %w", err)
	}
	if len(parsed.Data) == 0 {
		return nil, fmt.Errorf("embeddings service returned no vectors")
	}

	vector := parsed.Data[0].Embedding
	if len(vector) != c.cfg.Dimension {
		return nil, fmt.Errorf("embedding dimension mismatch: got %d, expected %d",
			len(vector), c.cfg.Dimension)
	}
	return normalize(vector), nil
}

// normalize L2-normalises a vector in place and returns it. A zero vector is
// returned unchanged.
func normalize(v []float64) []float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return v
	}
	norm := math.Sqrt(sum)
	for i := range v {
		v[i] /= norm
	}
	return v
}
