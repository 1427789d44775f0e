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

// MilvusBackend searches the vector store directly over its REST API. The
// query is embedded first; search metric and collection come from config and
// are verified against the embedding model at startup (VerifyContract).
type MilvusBackend struct {
	cfg        config.MilvusConfig
	embedder   *EmbeddingClient
	httpClient *http.Client
}

// NewMilvusBackend creates the vector-store backend.
func NewMilvusBackend(cfg config.MilvusConfig, embedder *EmbeddingClient) *MilvusBackend {
	return &MilvusBackend{
		cfg:        cfg,
		embedder:   embedder,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Name implements Backend.
func (b *MilvusBackend) Name() string { return RetrieverMilvus }

type milvusSearchRequest struct {
	CollectionName string      `json:"collectionName"`
	Data           [][]float64 `json:"data"`
	AnnsField      string      `json:"annsField"`
	Limit          int         `json:"limit"`
	Filter         string      `json:"filter,omitempty"`
	OutputFields   []string    `json:"outputFields"`
}

type milvusSearchResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"message"`
	Data []struct {
		DocID       string  `json:"doc_id"`
		Title       string  `json:"title"`
		Page        int     `json:"page"`
		Text        string  `json:"text"`
		ArticlePath string  `json:"article_path"`
		SourceType  string  `json:"source_type"`
		Distance    float64 `json:"distance"`
	} `json:"data"`
}

// Search implements Backend. The dataset filter is derived from the domain so
// each domain only sees its own chunks.
func (b *MilvusBackend) Search(ctx context.Context, query string, domain models.Domain, topK int) ([]models.Source, error) {
	vector, err := b.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	reqBody := milvusSearchRequest{
		CollectionName: b.cfg.Collection,
		Data:           [][]float64{vector},
		AnnsField:      "embedding",
		Limit:          topK,
		OutputFields:   []string{"doc_id", "title", "page", "text", "article_path", "source_type"},
	}
	if domain != "" {
		reqBody.Filter = fmt.Sprintf(`dataset_id == %q`, strings.ToLower(string(domain)))
	}

	var parsed milvusSearchResponse
	if err := b.post(ctx, "/v2/vectordb/entities/search", reqBody, &parsed); err != nil {
		return nil, err
	}
	if parsed.Code != 0 {
		return nil, fmt.Errorf("milvus search failed: code=%d message=%s", parsed.Code, parsed.Msg)
	}

	sources := make([]models.Source, 0, len(parsed.Data))
	for _, hit := range parsed.Data {
		sources = append(sources, models.Source{
			DocID:       hit.DocID,
			Title:       hit.Title,
			Page:        hit.Page,
			Score:       hit.Distance, // cosine similarity in [0,1] on normalised vectors
			Snippet:     hit.Text,
			ArticlePath: hit.ArticlePath,
			SourceType:  hit.SourceType,
		})
	}
	sort.SliceStable(sources, func(i, j int) bool { return sources[i].Score > sources[j].Score })
	return sources, nil
}

type milvusDescribeResponse struct {
	Code int `json:"code"`
	Data struct {
		Fields []struct {
			Name   string            `json:"name"`
			Type   string            `json:"type"`
			Params map[string]string `json:"params"`
		} `json:"fields"`
		Indexes []struct {
			FieldName  string `json:"fieldName"`
			MetricType string `json:"metricType"`
		} `json:"indexes"`
	} `json:"data"`
}

// Describe returns the collection's vector dimension and metric type.
func (b *MilvusBackend) Describe(ctx context.Context) (dimension int, metric string, err error) {
	reqBody := map[string]string{"collectionName": b.cfg.Collection}
	var parsed milvusDescribeResponse
	if err := b.post(ctx, "/v2/vectordb/collections/describe", reqBody, &parsed); err != nil {
		return 0, "", err
	}
	if parsed.Code != 0 {
		return 0, "", fmt.Errorf("milvus describe failed: code=%d", parsed.Code)
	}

	for _, f := range parsed.Data.Fields {
		if f.Name != "embedding" {
			continue
		}
		if dimStr, ok := f.Params["dim"]; ok {
			if _, err := fmt.Sscanf(dimStr, "%d", &dimension); err != nil {
				return 0, "", fmt.Errorf("parse collection dimension %q: %w", dimStr, err)
			}
		}
	}
	for _, idx := range parsed.Data.Indexes {
		if idx.FieldName == "embedding" {
			metric = idx.MetricType
		}
	}
	if dimension == 0 {
		return 0, "", fmt.Errorf("collection %s has no embedding field dimension", b.cfg.Collection)
	}
	return dimension, metric, nil
}

// Load loads the collection into memory so searches are served immediately.
func (b *MilvusBackend) Load(ctx context.Context) error {
	reqBody := map[string]string{"collectionName": b.cfg.Collection}
	var parsed struct {
		Code int    `json:"code"`
		Msg  string `json:"message"`
	}
	if err := b.post(ctx, "/v2/vectordb/collections/load", reqBody, &parsed); err != nil {
		return err
	}
	if parsed.Code != 0 {
		return fmt.Errorf("milvus load failed: code=%d message=%s", parsed.Code, parsed.Msg)
	}
	return nil
}

func (b *MilvusBackend) post(ctx context.Context, path string, reqBody, out interface{}) error {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal milvus request: %w", err)
	}

	url := strings.TrimSuffix(b.cfg.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create milvus request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if b.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+b.cfg.Token)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call milvus: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("milvus returned HTTP %d: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode milvus response: %w", err)
	}
	return nil
}
