package retrieval

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/saramhq/aegis/pkg/config"
	"github.com/saramhq/aegis/pkg/models"
)

// RagflowBackend searches through the external retrieval engine.
type RagflowBackend struct {
	cfg        config.RagflowConfig
	httpClient *http.Client
}

// NewRagflowBackend creates the retrieval-engine backend.
func NewRagflowBackend(cfg config.RagflowConfig) *RagflowBackend {
	return &RagflowBackend{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Name implements Backend.
func (b *RagflowBackend) Name() string { return RetrieverRagflow }

type ragflowRequest struct {
	Query      string   `json:"query"`
	DatasetIDs []string `json:"dataset_ids,omitempty"`
	TopK       int      `json:"top_k"`
}

// ragflowResult tolerates the engine's field aliases: doc_id/chunk_id,
// title/doc_name, page/page_num, content/text/snippet, similarity/score.
type ragflowResult struct {
	DocID      string  `json:"doc_id"`
	ChunkID    string  `json:"chunk_id"`
	Title      string  `json:"title"`
	DocName    string  `json:"doc_name"`
	Page       int     `json:"page"`
	PageNum    int     `json:"page_num"`
	Content    string  `json:"content"`
	Text       string  `json:"text"`
	Snippet    string  `json:"snippet"`
	Similarity float64 `json:"similarity"`
	Score      float64 `json:"score"`
}

type ragflowResponse struct {
	Results []ragflowResult `json:"results"`
}

// Search implements Backend.
func (b *RagflowBackend) Search(ctx context.Context, query string, domain models.Domain, topK int) ([]models.Source, error) {
	payload, err := json.Marshal(ragflowRequest{
		Query:      query,
		DatasetIDs: b.cfg.DatasetIDs,
		TopK:       topK,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal retrieval request: %w", err)
	}

	url := strings.TrimSuffix(b.cfg.BaseURL, "/") + "/v1/retrieval"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create retrieval request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if b.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+b.cfg.APIKey)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call retrieval engine: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("retrieval engine returned HTTP %d: %s", resp.StatusCode, string(body))
	}

	var parsed ragflowResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode retrieval response: %w", err)
	}

	sources := make([]models.Source, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		sources = append(sources, r.toSource())
	}
	sort.SliceStable(sources, func(i, j int) bool { return sources[i].Score > sources[j].Score })
	if len(sources) > topK {
		sources = sources[:topK]
	}
	return sources, nil
}

func (r ragflowResult) toSource() models.Source {
	s := models.Source{
		DocID:   firstNonEmpty(r.DocID, r.ChunkID),
		Title:   firstNonEmpty(r.Title, r.DocName),
		Page:    r.Page,
		Snippet: firstNonEmpty(r.Content, r.Text, r.Snippet),
		Score:   r.Similarity,
	}
	if s.Page == 0 {
		s.Page = r.PageNum
	}
	if s.Score == 0 {
		s.Score = r.Score
	}
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
