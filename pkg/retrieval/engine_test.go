package retrieval

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saramhq/aegis/pkg/config"
	"github.com/saramhq/aegis/pkg/models"
)

type fakeBackend struct {
	name    string
	sources []models.Source
	err     error
	calls   int
}

func (f *fakeBackend) Name() string { return f.name }

func (f *fakeBackend) Search(_ context.Context, _ string, _ models.Domain, _ int) ([]models.Source, error) {
	f.calls++
	return f.sources, f.err
}

func sourcesWithScores(scores ...float64) []models.Source {
	out := make([]models.Source, 0, len(scores))
	for i, s := range scores {
		out = append(out, models.Source{DocID: string(rune('a' + i)), Score: s})
	}
	return out
}

func TestEngineSearch_PrimarySucceeds(t *testing.T) {
	milvus := &fakeBackend{name: RetrieverMilvus, sources: sourcesWithScores(0.92, 0.71)}
	ragflow := &fakeBackend{name: RetrieverRagflow}
	engine := NewEngine(config.BackendMilvus, milvus, ragflow, EngineOptions{FallbackOnEmpty: true})

	result, err := engine.Search(context.Background(), "req-1", "연차 이월 규정", models.DomainPolicy, 5)
	require.NoError(t, err)
	assert.Equal(t, RetrieverMilvus, result.Retriever)
	assert.Len(t, result.Sources, 2)
	assert.Equal(t, 1, milvus.calls)
	assert.Equal(t, 0, ragflow.calls)
}

func TestEngineSearch_FallbackOnError(t *testing.T) {
	milvus := &fakeBackend{name: RetrieverMilvus, err: errors.New("connection refused")}
	ragflow := &fakeBackend{name: RetrieverRagflow, sources: sourcesWithScores(0.81)}
	engine := NewEngine(config.BackendMilvus, milvus, ragflow, EngineOptions{})

	result, err := engine.Search(context.Background(), "req-2", "휴가 규정", models.DomainPolicy, 5)
	require.NoError(t, err)
	assert.Equal(t, RetrieverRagflowFallback, result.Retriever)
	assert.Len(t, result.Sources, 1)
}

func TestEngineSearch_FallbackOnEmpty(t *testing.T) {
	milvus := &fakeBackend{name: RetrieverMilvus}
	ragflow := &fakeBackend{name: RetrieverRagflow, sources: sourcesWithScores(0.77)}
	engine := NewEngine(config.BackendMilvus, milvus, ragflow, EngineOptions{FallbackOnEmpty: true})

	result, err := engine.Search(context.Background(), "req-3", "복지포인트", models.DomainPolicy, 5)
	require.NoError(t, err)
	assert.Equal(t, RetrieverRagflowFallback, result.Retriever)
	assert.Len(t, result.Sources, 1)
}

func TestEngineSearch_NoFallbackOnEmptyForGenerators(t *testing.T) {
	milvus := &fakeBackend{name: RetrieverMilvus}
	ragflow := &fakeBackend{name: RetrieverRagflow, sources: sourcesWithScores(0.77)}
	engine := NewEngine(config.BackendMilvus, milvus, ragflow, EngineOptions{FallbackOnEmpty: false})

	result, err := engine.Search(context.Background(), "req-4", "교육 자료", models.DomainEducation, 5)
	require.NoError(t, err)
	assert.Empty(t, result.Sources)
	assert.Equal(t, RetrieverMilvus, result.Retriever)
	assert.Equal(t, 0, ragflow.calls)
}

func TestEngineSearch_AllBackendsFail(t *testing.T) {
	milvus := &fakeBackend{name: RetrieverMilvus, err: errors.New("timeout")}
	ragflow := &fakeBackend{name: RetrieverRagflow, err: errors.New("HTTP 502")}
	engine := NewEngine(config.BackendMilvus, milvus, ragflow, EngineOptions{FallbackOnEmpty: true})

	_, err := engine.Search(context.Background(), "req-5", "규정 문의", models.DomainPolicy, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSearchUnavailable)
}

func TestEngineSearch_RagflowPrimaryFallsBackToMilvus(t *testing.T) {
	milvus := &fakeBackend{name: RetrieverMilvus, sources: sourcesWithScores(0.88)}
	ragflow := &fakeBackend{name: RetrieverRagflow, err: errors.New("unreachable")}
	engine := NewEngine(config.BackendRagflow, milvus, ragflow, EngineOptions{FallbackOnEmpty: true})

	result, err := engine.Search(context.Background(), "req-6", "보안 사고 절차", models.DomainIncident, 5)
	require.NoError(t, err)
	// The vector store is a first-class retriever even when reached second.
	assert.Equal(t, RetrieverMilvus, result.Retriever)
}

func TestEngineSearch_TruncatesToTopK(t *testing.T) {
	milvus := &fakeBackend{name: RetrieverMilvus, sources: sourcesWithScores(0.9, 0.8, 0.7, 0.6)}
	engine := NewEngine(config.BackendMilvus, milvus, &fakeBackend{name: RetrieverRagflow}, EngineOptions{})

	result, err := engine.Search(context.Background(), "req-7", "연차", models.DomainPolicy, 2)
	require.NoError(t, err)
	assert.Len(t, result.Sources, 2)
	assert.Equal(t, 0.9, result.Sources[0].Score)
}

func TestEngineSearch_CacheHitSkipsBackends(t *testing.T) {
	milvus := &fakeBackend{name: RetrieverMilvus, sources: sourcesWithScores(0.95)}
	engine := NewEngine(config.BackendMilvus, milvus, &fakeBackend{name: RetrieverRagflow}, EngineOptions{
		FallbackOnEmpty: true,
		Cache:           NewCache(8, time.Minute),
	})

	_, err := engine.Search(context.Background(), "req-8", "연차 이월", models.DomainPolicy, 5)
	require.NoError(t, err)

	// Same query modulo case and whitespace shares the cache entry.
	result, err := engine.Search(context.Background(), "req-9", "  연차   이월 ", models.DomainPolicy, 5)
	require.NoError(t, err)
	assert.Len(t, result.Sources, 1)
	assert.Equal(t, 1, milvus.calls)
}

func TestEngineSearch_EmptyResultsNotCached(t *testing.T) {
	milvus := &fakeBackend{name: RetrieverMilvus}
	engine := NewEngine(config.BackendMilvus, milvus, &fakeBackend{name: RetrieverRagflow}, EngineOptions{
		Cache: NewCache(8, time.Minute),
	})

	_, err := engine.Search(context.Background(), "req-10", "없는 질문", models.DomainPolicy, 5)
	require.NoError(t, err)
	_, err = engine.Search(context.Background(), "req-11", "없는 질문", models.DomainPolicy, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, milvus.calls)
}

func TestCacheKey_Normalization(t *testing.T) {
	assert.Equal(t,
		CacheKey("연차  이월", models.DomainPolicy, 5),
		CacheKey(" 연차 이월 ", models.DomainPolicy, 5))
	assert.NotEqual(t,
		CacheKey("연차 이월", models.DomainPolicy, 5),
		CacheKey("연차 이월", models.DomainEducation, 5))
	assert.NotEqual(t,
		CacheKey("연차 이월", models.DomainPolicy, 5),
		CacheKey("연차 이월", models.DomainPolicy, 3))
}

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "hello world", NormalizeQuery("  Hello   WORLD "))
	assert.Equal(t, "연차 이월", NormalizeQuery("연차\t이월"))
}
