package retrieval

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/saramhq/aegis/pkg/config"
	"github.com/saramhq/aegis/pkg/metrics"
	"github.com/saramhq/aegis/pkg/models"
)

// Retriever names reported in chat metadata.
const (
	RetrieverMilvus          = "MILVUS"
	RetrieverRagflow         = "RAGFLOW"
	RetrieverRagflowFallback = "RAGFLOW_FALLBACK"
)

// ErrSearchUnavailable is returned when every backend failed for a query
// that must be grounded (chat). Surfaces as HTTP 503; there is no silent
// LLM-only degradation for policy questions.
var ErrSearchUnavailable = errors.New("retrieval unavailable: all backends failed")

// Backend is one concrete search implementation.
type Backend interface {
	Name() string
	Search(ctx context.Context, query string, domain models.Domain, topK int) ([]models.Source, error)
}

// Result is a search outcome with the backend that produced it.
type Result struct {
	Sources   []models.Source
	Retriever string
}

// Engine is the dual-backend searcher used by one service (chat, faq or
// script). Chat engines treat an empty primary result as a reason to try the
// other backend; generators accept empty results as-is.
type Engine struct {
	primary         Backend
	secondary       Backend
	cache           *Cache
	fallbackOnEmpty bool
	logger          *slog.Logger
}

// EngineOptions configure NewEngine.
type EngineOptions struct {
	// FallbackOnEmpty retries the other backend when the primary returns
	// zero results (chat only).
	FallbackOnEmpty bool
	Cache           *Cache
}

// NewEngine builds an engine with primary/secondary resolved from the
// configured backend name.
func NewEngine(backendName string, milvus, ragflow Backend, opts EngineOptions) *Engine {
	primary, secondary := Backend(milvus), Backend(ragflow)
	if backendName == config.BackendRagflow {
		primary, secondary = ragflow, milvus
	}
	return &Engine{
		primary:         primary,
		secondary:       secondary,
		cache:           opts.Cache,
		fallbackOnEmpty: opts.FallbackOnEmpty,
		logger:          slog.With("component", "retrieval"),
	}
}

// Search runs the primary backend and falls back to the secondary exactly
// once on transport error (or on empty results when FallbackOnEmpty). The
// returned sources are sorted by descending score with length <= topK.
func (e *Engine) Search(ctx context.Context, requestID, query string, domain models.Domain, topK int) (*Result, error) {
	key := CacheKey(query, domain, topK)
	if cached, ok := e.cache.Get(key); ok {
		e.logger.Debug("Retrieval cache hit", "request_id", requestID, "domain", domain)
		return &Result{Sources: cached, Retriever: e.primary.Name()}, nil
	}

	sources, err := e.searchBackend(ctx, e.primary, requestID, query, domain, topK)
	retriever := e.primary.Name()

	needFallback := err != nil || (e.fallbackOnEmpty && len(sources) == 0)
	if needFallback {
		reason := "empty"
		if err != nil {
			reason = "error"
			e.logger.Warn("Primary retrieval backend failed, trying fallback",
				"request_id", requestID, "backend", e.primary.Name(), "error", err)
		}
		metrics.RetrievalFallbacks.WithLabelValues(reason).Inc()

		fbSources, fbErr := e.searchBackend(ctx, e.secondary, requestID, query, domain, topK)
		switch {
		case fbErr == nil && (len(fbSources) > 0 || err != nil):
			sources, err = fbSources, nil
			retriever = fallbackName(e.secondary)
		case fbErr != nil && err != nil:
			e.logger.Error("All retrieval backends failed",
				"request_id", requestID, "primary_error", err, "fallback_error", fbErr)
			return nil, fmt.Errorf("%w: %s", ErrSearchUnavailable, fbErr)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSearchUnavailable, err)
	}

	if len(sources) > topK {
		sources = sources[:topK]
	}
	logSimilarityStats(e.logger, requestID, domain, sources)
	if len(sources) > 0 {
		e.cache.Put(key, sources)
	}
	return &Result{Sources: sources, Retriever: retriever}, nil
}

func (e *Engine) searchBackend(ctx context.Context, b Backend, requestID, query string, domain models.Domain, topK int) ([]models.Source, error) {
	started := time.Now()
	sources, err := b.Search(ctx, NormalizeQuery(query), domain, topK)
	metrics.RetrievalLatency.WithLabelValues(b.Name()).Observe(time.Since(started).Seconds())
	return sources, err
}

// fallbackName reports the retriever label for a backend reached via
// fallback. The vector store is always a first-class retriever, so only the
// engine gets the explicit fallback label.
func fallbackName(b Backend) string {
	if b.Name() == RetrieverRagflow {
		return RetrieverRagflowFallback
	}
	return b.Name()
}
