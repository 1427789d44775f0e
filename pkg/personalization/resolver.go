package personalization

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/saramhq/aegis/pkg/backend"
	"github.com/saramhq/aegis/pkg/llm"
	"github.com/saramhq/aegis/pkg/models"
)

// FactsClient is the slice of the backend client the resolver needs.
type FactsClient interface {
	ResolvePersonalization(ctx context.Context, userID string, req backend.ResolveRequest) (*backend.Facts, error)
}

// Completer renders facts to prose; nil forces the deterministic templates.
type Completer interface {
	Complete(ctx context.Context, messages []models.Message, opts llm.Options) (*llm.Completion, error)
}

// Resolver fetches personalised facts and renders them to an answer.
type Resolver struct {
	client FactsClient
	llm    Completer
	logger *slog.Logger
}

// NewResolver creates a resolver. completer may be nil.
func NewResolver(client FactsClient, completer Completer) *Resolver {
	return &Resolver{
		client: client,
		llm:    completer,
		logger: slog.With("component", "personalization"),
	}
}

// Resolve fetches facts for a sub-intent on behalf of a user.
func (r *Resolver) Resolve(ctx context.Context, subIntentID, userID, period, targetDeptID string) (Facts, error) {
	raw, err := r.client.ResolvePersonalization(ctx, userID, backend.ResolveRequest{
		SubIntentID:  subIntentID,
		Period:       period,
		TargetDeptID: targetDeptID,
	})
	if err != nil {
		return Facts{}, fmt.Errorf("resolve facts for %s: %w", subIntentID, err)
	}
	return Facts{
		SubIntentID: raw.SubIntentID,
		Period:      raw.Period,
		Metrics:     raw.Metrics,
		Items:       raw.Items,
	}, nil
}

// Render turns facts into a natural-language answer. The LLM is instructed to
// use only the provided facts; on LLM failure the catalogued fallback
// template answers instead, so a facts fetch that succeeded always produces
// an answer.
func (r *Resolver) Render(ctx context.Context, facts Facts) string {
	if r.llm != nil {
		answer, err := r.renderLLM(ctx, facts)
		if err == nil && answer != "" {
			return answer
		}
		r.logger.Warn("Facts rendering via LLM failed, using template",
			"sub_intent", facts.SubIntentID, "error", err)
	}
	return RenderTemplate(facts)
}

func (r *Resolver) renderLLM(ctx context.Context, facts Facts) (string, error) {
	system := "당신은 사내 어시스턴트입니다. 아래 제공된 사실만 사용해 한국어로 간결하게 답변하세요. " +
		"제공되지 않은 수치는 절대 만들어내지 마세요. 조회 기간이 있으면 반드시 기간을 언급하세요."

	completion, err := r.llm.Complete(ctx, []models.Message{
		{Role: models.RoleSystem, Content: system},
		{Role: models.RoleUser, Content: FormatFacts(facts)},
	}, llm.Options{})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(completion.Text), nil
}

// RenderTemplate renders facts with the per-Q fallback template, or a
// generic key/value listing for uncatalogued Qs.
func RenderTemplate(facts Facts) string {
	if q, ok := Lookup(facts.SubIntentID); ok {
		return q.Fallback(facts)
	}
	return withPeriod(facts, "요청하신 현황입니다.\n"+FormatFacts(facts))
}

// FormatFacts renders facts as stable key: value lines for prompts and
// generic answers.
func FormatFacts(facts Facts) string {
	keys := make([]string, 0, len(facts.Metrics))
	for k := range facts.Metrics {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	if facts.Period != "" {
		sb.WriteString("조회 기간: " + facts.Period + "\n")
	}
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("%s: %v\n", k, facts.Metrics[k]))
	}
	for _, item := range facts.Items {
		itemKeys := make([]string, 0, len(item))
		for k := range item {
			itemKeys = append(itemKeys, k)
		}
		sort.Strings(itemKeys)
		parts := make([]string, 0, len(itemKeys))
		for _, k := range itemKeys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, item[k]))
		}
		sb.WriteString("- " + strings.Join(parts, ", ") + "\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func withPeriod(f Facts, body string) string {
	if f.Period == "" {
		return body
	}
	return f.Period + " 기준 " + body
}

// metric formats a metric value, or "-" when absent so templates never
// invent numbers.
func metric(f Facts, key string) string {
	v, ok := f.Metrics[key]
	if !ok {
		return "-"
	}
	switch n := v.(type) {
	case float64:
		if n == float64(int64(n)) {
			return fmt.Sprintf("%d", int64(n))
		}
		return fmt.Sprintf("%.1f", n)
	default:
		return fmt.Sprintf("%v", v)
	}
}
