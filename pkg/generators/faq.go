package generators

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/saramhq/aegis/pkg/config"
	"github.com/saramhq/aegis/pkg/models"
)

// FAQRequest asks for one FAQ set about a topic.
type FAQRequest struct {
	Topic  string        `json:"topic"`
	Domain models.Domain `json:"domain"`
	Count  int           `json:"count,omitempty"`
}

// FAQItem is one generated question/answer pair with the documents it was
// grounded on.
type FAQItem struct {
	Question string          `json:"question"`
	Answer   string          `json:"answer"`
	Sources  []models.Source `json:"sources,omitempty"`
}

// FAQResult is one generated FAQ set.
type FAQResult struct {
	Topic         string    `json:"topic"`
	Items         []FAQItem `json:"items"`
	RetrieverUsed string    `json:"retriever_used,omitempty"`
}

// FAQBatchItem is the per-request outcome of a batch run. Exactly one of
// Result and Error is set.
type FAQBatchItem struct {
	Topic  string     `json:"topic"`
	Result *FAQResult `json:"result,omitempty"`
	Error  string     `json:"error,omitempty"`
}

const faqTopK = 5

// FAQGenerator produces grounded FAQ sets from retrieved documents.
type FAQGenerator struct {
	search Searcher
	llm    Completer
	cfg    config.FAQConfig
	logger *slog.Logger
}

// NewFAQGenerator creates the FAQ generator.
func NewFAQGenerator(search Searcher, completer Completer, cfg config.FAQConfig) *FAQGenerator {
	if cfg.BatchConcurrency <= 0 {
		cfg.BatchConcurrency = 1
	}
	if cfg.ItemsPerDoc <= 0 {
		cfg.ItemsPerDoc = 5
	}
	return &FAQGenerator{
		search: search,
		llm:    completer,
		cfg:    cfg,
		logger: slog.With("component", "faq_generator"),
	}
}

type faqRawItem struct {
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	SourceIndex int    `json:"source_index"`
}

// Generate produces one FAQ set. Zero retrieved documents yields an empty
// set without an LLM call; there is nothing to ground the answers on.
func (g *FAQGenerator) Generate(ctx context.Context, req FAQRequest) (*FAQResult, error) {
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return nil, invalidRequestf("faq topic is required")
	}
	count := req.Count
	if count <= 0 {
		count = g.cfg.ItemsPerDoc
	}
	domain := req.Domain
	if domain == "" {
		domain = models.DomainPolicy
	}

	retrieved, err := g.search.Search(ctx, "faq:"+topic, topic, domain, faqTopK)
	if err != nil {
		return nil, fmt.Errorf("retrieve faq context: %w", err)
	}
	if len(retrieved.Sources) == 0 {
		g.logger.Info("No documents for FAQ topic", "topic", topic, "domain", domain)
		return &FAQResult{Topic: topic, Items: []FAQItem{}, RetrieverUsed: retrieved.Retriever}, nil
	}

	messages := []models.Message{
		{Role: models.RoleSystem, Content: faqSystemPrompt(count)},
		{Role: models.RoleUser, Content: fmt.Sprintf("주제: %s\n\n문서 발췌:\n%s", topic, contextFromSources(retrieved.Sources))},
	}
	completion, err := g.llm.Complete(ctx, messages, llmOptions())
	if err != nil {
		return nil, fmt.Errorf("generate faq items: %w", err)
	}

	var raw []faqRawItem
	if err := decodeJSON(completion.Text, &raw); err != nil {
		return nil, fmt.Errorf("parse faq items: %w", err)
	}

	items := make([]FAQItem, 0, len(raw))
	for _, it := range raw {
		if strings.TrimSpace(it.Question) == "" || strings.TrimSpace(it.Answer) == "" {
			continue
		}
		item := FAQItem{Question: it.Question, Answer: it.Answer}
		// source_index is 1-based to match the numbered excerpt block.
		if it.SourceIndex >= 1 && it.SourceIndex <= len(retrieved.Sources) {
			item.Sources = []models.Source{retrieved.Sources[it.SourceIndex-1]}
		}
		items = append(items, item)
	}
	if len(items) > count {
		items = items[:count]
	}

	return &FAQResult{Topic: topic, Items: items, RetrieverUsed: retrieved.Retriever}, nil
}

// GenerateBatch runs the requests with a bounded number of workers and
// returns per-request outcomes in input order. One failed item never fails
// the batch.
func (g *FAQGenerator) GenerateBatch(ctx context.Context, reqs []FAQRequest) []FAQBatchItem {
	out := make([]FAQBatchItem, len(reqs))
	sem := make(chan struct{}, g.cfg.BatchConcurrency)
	var wg sync.WaitGroup

	for i, req := range reqs {
		wg.Add(1)
		go func(i int, req FAQRequest) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				out[i] = FAQBatchItem{Topic: req.Topic, Error: ctx.Err().Error()}
				return
			}

			result, err := g.Generate(ctx, req)
			if err != nil {
				g.logger.Warn("FAQ batch item failed", "topic", req.Topic, "error", err)
				out[i] = FAQBatchItem{Topic: req.Topic, Error: err.Error()}
				return
			}
			out[i] = FAQBatchItem{Topic: req.Topic, Result: result}
		}(i, req)
	}

	wg.Wait()
	return out
}

func faqSystemPrompt(count int) string {
	return fmt.Sprintf(`당신은 사내 규정 FAQ 작성 도우미입니다. 제공된 문서 발췌만 근거로 자주 묻는 질문 %d개를 만드세요.
발췌에 없는 내용은 답변에 포함하지 마세요.
다음 JSON 배열 형식으로만 응답하세요:
[{"question": "...", "answer": "...", "source_index": 1}]
source_index는 근거가 된 발췌 번호입니다.`, count)
}
