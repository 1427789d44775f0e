package generators

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/saramhq/aegis/pkg/models"
)

// weakScoreThreshold marks retrieval as weak when the best hit scores below
// it even though some sources came back.
const weakScoreThreshold = 0.5

// GapQuestion is one observed user question with its retrieval outcome,
// reported by the backend's telemetry aggregation.
type GapQuestion struct {
	Question    string        `json:"question"`
	Domain      models.Domain `json:"domain,omitempty"`
	SourceCount int           `json:"source_count"`
	TopScore    float64       `json:"top_score,omitempty"`
	AskCount    int           `json:"ask_count,omitempty"`
}

// Weak reports whether the question's retrieval was a gap candidate.
func (q GapQuestion) Weak() bool {
	return q.SourceCount == 0 || q.TopScore < weakScoreThreshold
}

// GapSuggestion is one proposed documentation or education improvement.
type GapSuggestion struct {
	Topic     string   `json:"topic"`
	Rationale string   `json:"rationale"`
	Questions []string `json:"questions"`
	Priority  string   `json:"priority"`
}

// GapResult is the generated improvement proposal set.
type GapResult struct {
	WeakQuestionCount int             `json:"weak_question_count"`
	Suggestions       []GapSuggestion `json:"suggestions"`
}

// GapAnalyzer clusters weakly-answered questions into concrete proposals for
// new or improved policy and education documents.
type GapAnalyzer struct {
	llm    Completer
	logger *slog.Logger
}

// NewGapAnalyzer creates the gap analyzer.
func NewGapAnalyzer(completer Completer) *GapAnalyzer {
	return &GapAnalyzer{llm: completer, logger: slog.With("component", "gap_analyzer")}
}

// Suggest filters the questions to gap candidates and asks the LLM to group
// them into improvement proposals. No candidates means an empty result, not
// an error.
func (a *GapAnalyzer) Suggest(ctx context.Context, questions []GapQuestion) (*GapResult, error) {
	if len(questions) == 0 {
		return nil, invalidRequestf("gap questions are required")
	}

	weak := make([]GapQuestion, 0, len(questions))
	for _, q := range questions {
		if strings.TrimSpace(q.Question) != "" && q.Weak() {
			weak = append(weak, q)
		}
	}
	if len(weak) == 0 {
		return &GapResult{Suggestions: []GapSuggestion{}}, nil
	}

	var sb strings.Builder
	for _, q := range weak {
		fmt.Fprintf(&sb, "- %s (도메인: %s, 검색 결과: %d건", q.Question, q.Domain, q.SourceCount)
		if q.AskCount > 1 {
			fmt.Fprintf(&sb, ", 질문 횟수: %d회", q.AskCount)
		}
		sb.WriteString(")\n")
	}

	messages := []models.Message{
		{Role: models.RoleSystem, Content: gapSystemPrompt},
		{Role: models.RoleUser, Content: "답변하지 못한 질문 목록:\n" + sb.String()},
	}
	completion, err := a.llm.Complete(ctx, messages, llmOptions())
	if err != nil {
		return nil, fmt.Errorf("generate gap suggestions: %w", err)
	}

	var suggestions []GapSuggestion
	if err := decodeJSON(completion.Text, &suggestions); err != nil {
		return nil, fmt.Errorf("parse gap suggestions: %w", err)
	}

	kept := suggestions[:0]
	for _, s := range suggestions {
		if strings.TrimSpace(s.Topic) == "" {
			continue
		}
		if s.Priority == "" {
			s.Priority = "medium"
		}
		kept = append(kept, s)
	}

	a.logger.Info("Gap suggestions generated",
		"weak_questions", len(weak), "suggestions", len(kept))
	return &GapResult{WeakQuestionCount: len(weak), Suggestions: kept}, nil
}

const gapSystemPrompt = `당신은 사내 지식베이스 운영 담당자입니다. 사내 문서로 답변하지 못한 질문 목록을 주제별로 묶어 문서 보강 제안을 작성하세요.
다음 JSON 배열 형식으로만 응답하세요:
[{"topic": "...", "rationale": "...", "questions": ["..."], "priority": "high|medium|low"}]`
