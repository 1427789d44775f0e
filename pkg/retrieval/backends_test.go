package retrieval

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saramhq/aegis/pkg/config"
	"github.com/saramhq/aegis/pkg/models"
)

func embeddingServer(t *testing.T, dimension int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vector := make([]float64, dimension)
		for i := range vector {
			vector[i] = 1
		}
		resp := map[string]interface{}{
			"data": []map[string]interface{}{{"embedding": vector}},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func newTestEmbedder(t *testing.T, baseURL string, dimension int) *EmbeddingClient {
	t.Helper()
	return NewEmbeddingClient(config.EmbeddingConfig{
		BaseURL:   baseURL,
		Model:     "test-embedding",
		Dimension: dimension,
		Timeout:   5 * time.Second,
	})
}

func TestEmbeddingClient_NormalizesVector(t *testing.T) {
	server := embeddingServer(t, 4)
	defer server.Close()

	client := newTestEmbedder(t, server.URL, 4)
	vector, err := client.Embed(context.Background(), "연차 규정")
	require.NoError(t, err)
	require.Len(t, vector, 4)

	var norm float64
	for _, x := range vector {
		norm += x * x
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9)
}

func TestEmbeddingClient_DimensionMismatch(t *testing.T) {
	server := embeddingServer(t, 8)
	defer server.Close()

	client := newTestEmbedder(t, server.URL, 4)
	_, err := client.Embed(context.Background(), "연차 규정")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimension mismatch")
}

func TestMilvusBackend_Search(t *testing.T) {
	var gotSearch milvusSearchRequest
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/vectordb/entities/search", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotSearch))
		fmt.Fprint(w, `{"code":0,"data":[
			{"doc_id":"doc-2","title":"휴가 규정","page":3,"text":"이월 한도","distance":0.71},
			{"doc_id":"doc-1","title":"취업규칙","page":12,"text":"연차 발생 기준","distance":0.93,"article_path":"제3장 > 제12조","source_type":"policy"}
		]}`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	embSrv := embeddingServer(t, 4)
	defer embSrv.Close()

	backend := NewMilvusBackend(config.MilvusConfig{
		BaseURL:    server.URL,
		Collection: "policy_chunks",
		Metric:     "COSINE",
		Timeout:    5 * time.Second,
	}, newTestEmbedder(t, embSrv.URL, 4))

	sources, err := backend.Search(context.Background(), "연차 규정", models.DomainPolicy, 5)
	require.NoError(t, err)
	require.Len(t, sources, 2)

	assert.Equal(t, "policy_chunks", gotSearch.CollectionName)
	assert.Equal(t, `dataset_id == "policy"`, gotSearch.Filter)
	assert.Equal(t, 5, gotSearch.Limit)

	// Sorted by descending score regardless of response order.
	assert.Equal(t, "doc-1", sources[0].DocID)
	assert.Equal(t, 0.93, sources[0].Score)
	assert.Equal(t, "제3장 > 제12조", sources[0].ArticlePath)
}

func TestMilvusBackend_SearchErrorCode(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/vectordb/entities/search", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":1100,"message":"collection not loaded"}`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	embSrv := embeddingServer(t, 4)
	defer embSrv.Close()

	backend := NewMilvusBackend(config.MilvusConfig{
		BaseURL:    server.URL,
		Collection: "policy_chunks",
		Timeout:    5 * time.Second,
	}, newTestEmbedder(t, embSrv.URL, 4))

	_, err := backend.Search(context.Background(), "연차", models.DomainPolicy, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collection not loaded")
}

func TestMilvusBackend_Describe(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/vectordb/collections/describe", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":0,"data":{
			"fields":[{"name":"embedding","type":"FloatVector","params":{"dim":"1536"}}],
			"indexes":[{"fieldName":"embedding","metricType":"COSINE"}]
		}}`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	backend := NewMilvusBackend(config.MilvusConfig{
		BaseURL:    server.URL,
		Collection: "policy_chunks",
		Timeout:    5 * time.Second,
	}, nil)

	dim, metric, err := backend.Describe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1536, dim)
	assert.Equal(t, "COSINE", metric)
}

func TestRagflowBackend_AliasFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ragflowRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"ds-1", "ds-2"}, req.DatasetIDs)
		fmt.Fprint(w, `{"results":[
			{"chunk_id":"c-9","doc_name":"복리후생 안내","page_num":7,"text":"복지포인트 한도","score":0.64},
			{"doc_id":"d-1","title":"취업규칙","page":2,"content":"연차 기준","similarity":0.82}
		]}`)
	}))
	defer server.Close()

	backend := NewRagflowBackend(config.RagflowConfig{
		BaseURL:    server.URL,
		DatasetIDs: []string{"ds-1", "ds-2"},
		Timeout:    5 * time.Second,
	})

	sources, err := backend.Search(context.Background(), "복지포인트", models.DomainPolicy, 5)
	require.NoError(t, err)
	require.Len(t, sources, 2)

	assert.Equal(t, "d-1", sources[0].DocID)
	assert.Equal(t, 0.82, sources[0].Score)
	assert.Equal(t, "c-9", sources[1].DocID)
	assert.Equal(t, "복리후생 안내", sources[1].Title)
	assert.Equal(t, 7, sources[1].Page)
	assert.Equal(t, "복지포인트 한도", sources[1].Snippet)
	assert.Equal(t, 0.64, sources[1].Score)
}

func TestRagflowBackend_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal", http.StatusBadGateway)
	}))
	defer server.Close()

	backend := NewRagflowBackend(config.RagflowConfig{BaseURL: server.URL, Timeout: 5 * time.Second})
	_, err := backend.Search(context.Background(), "연차", models.DomainPolicy, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 502")
}

func TestVerifyContract_Strict(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/vectordb/collections/describe", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":0,"data":{
			"fields":[{"name":"embedding","params":{"dim":"768"}}],
			"indexes":[{"fieldName":"embedding","metricType":"L2"}]
		}}`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	milvusCfg := config.MilvusConfig{BaseURL: server.URL, Collection: "policy_chunks", Metric: "COSINE", Timeout: 5 * time.Second}
	backend := NewMilvusBackend(milvusCfg, nil)

	err := verifyWith(t, backend, milvusCfg, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contract mismatch")

	require.NoError(t, verifyWith(t, backend, milvusCfg, false))
}

func verifyWith(t *testing.T, backend *MilvusBackend, milvusCfg config.MilvusConfig, strict bool) error {
	t.Helper()
	return VerifyContract(context.Background(), backend, config.EmbeddingConfig{
		Dimension:      1536,
		ContractStrict: strict,
	}, milvusCfg)
}
