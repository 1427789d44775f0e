package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saramhq/aegis/pkg/config"
	"github.com/saramhq/aegis/pkg/generators"
	"github.com/saramhq/aegis/pkg/llm"
	"github.com/saramhq/aegis/pkg/sourceset"
)

func TestFAQGenerate(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})
	h.faq.result = &generators.FAQResult{
		Topic: "연차휴가",
		Items: []generators.FAQItem{{Question: "연차는 며칠?", Answer: "15일"}},
	}

	body := map[string]interface{}{"topic": "연차휴가", "domain": "POLICY", "count": 3}
	resp, raw := h.request(t, http.MethodPost, "/ai/faq/generate", body, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result generators.FAQResult
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Equal(t, "연차휴가", result.Topic)
	require.Len(t, result.Items, 1)
}

func TestFAQGenerateInvalidRequestIs422(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})
	h.faq.err = generators.ErrInvalidRequest

	resp, raw := h.request(t, http.MethodPost, "/ai/faq/generate", map[string]string{}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	var er errorResponse
	require.NoError(t, json.Unmarshal(raw, &er))
	assert.Equal(t, ErrorCodeInvalidRequest, er.ErrorCode)
}

func TestFAQBatchEmptyItemsRejected(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})

	resp, _ := h.request(t, http.MethodPost, "/ai/faq/generate/batch",
		map[string]interface{}{"items": []interface{}{}}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestFAQBatchReturnsPerItemResults(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})
	h.faq.result = &generators.FAQResult{Topic: "any"}

	body := map[string]interface{}{"items": []map[string]interface{}{
		{"topic": "연차휴가", "domain": "POLICY"},
		{"topic": "보안사고 신고", "domain": "INCIDENT"},
	}}
	resp, raw := h.request(t, http.MethodPost, "/ai/faq/generate/batch", body, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Items []generators.FAQBatchItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out.Items, 2)
	assert.Equal(t, "연차휴가", out.Items[0].Topic)
	assert.Equal(t, "보안사고 신고", out.Items[1].Topic)
}

func TestQuizGenerate(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})
	h.quiz.result = &generators.QuizResult{Questions: []generators.QuizQuestion{{
		Question:    "연차는 며칠?",
		Options:     []string{"10일", "15일", "20일", "25일"},
		AnswerIndex: 1,
		Difficulty:  generators.DifficultyEasy,
	}}}

	body := map[string]interface{}{
		"blocks": []string{"연차는 15일이다."},
		"count":  1,
	}
	resp, raw := h.request(t, http.MethodPost, "/ai/quiz/generate", body, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result generators.QuizResult
	require.NoError(t, json.Unmarshal(raw, &result))
	require.Len(t, result.Questions, 1)
	assert.Equal(t, 1, result.Questions[0].AnswerIndex)
}

func TestQuizGenerateLLMFailureIs502(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})
	h.quiz.err = &llm.APIError{Status: 500, Body: "upstream blew up"}

	body := map[string]interface{}{"blocks": []string{"x"}, "count": 1}
	resp, raw := h.request(t, http.MethodPost, "/ai/quiz/generate", body, nil)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	var er errorResponse
	require.NoError(t, json.Unmarshal(raw, &er))
	assert.Equal(t, "LLM_ERROR", er.ErrorCode)
}

func TestGapSuggestions(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})
	h.gap.result = &generators.GapResult{
		WeakQuestionCount: 2,
		Suggestions: []generators.GapSuggestion{{
			Topic:    "재택근무 보안 수칙",
			Priority: "high",
		}},
	}

	body := map[string]interface{}{"questions": []map[string]interface{}{
		{"question": "재택 VPN 설정은?", "domain": "POLICY", "source_count": 0, "top_score": 0, "ask_count": 9},
		{"question": "노트북 반출 절차는?", "domain": "POLICY", "source_count": 1, "top_score": 0.3, "ask_count": 4},
	}}
	resp, raw := h.request(t, http.MethodPost, "/ai/gap/policy-edu/suggestions", body, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result generators.GapResult
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Equal(t, 2, result.WeakQuestionCount)
	require.Len(t, result.Suggestions, 1)
	assert.Equal(t, "high", result.Suggestions[0].Priority)
}

func TestSourceSetStart(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})

	body := map[string]interface{}{
		"title": "정보보안 기초",
		"documents": []map[string]string{
			{"doc_id": "doc-1", "title": "비밀번호 정책", "text": "비밀번호는 12자 이상."},
		},
	}
	resp, raw := h.request(t, http.MethodPost, "/internal/ai/source-sets/set-1/start", body, nil)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var status sourceset.Status
	require.NoError(t, json.Unmarshal(raw, &status))
	assert.Equal(t, "set-1", status.SourceSetID)
	assert.Equal(t, sourceset.StatusQueued, status.Status)
}

func TestSourceSetStartAlreadyRunningIs409(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})
	h.sets.startErr = sourceset.ErrAlreadyRunning

	body := map[string]interface{}{
		"documents": []map[string]string{{"doc_id": "doc-1", "text": "내용"}},
	}
	resp, raw := h.request(t, http.MethodPost, "/internal/ai/source-sets/set-1/start", body, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var er errorResponse
	require.NoError(t, json.Unmarshal(raw, &er))
	assert.Equal(t, ErrorCodeConflict, er.ErrorCode)
}

func TestSourceSetStartWithoutDocumentsRejected(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})

	resp, _ := h.request(t, http.MethodPost, "/internal/ai/source-sets/set-1/start",
		map[string]interface{}{"documents": []interface{}{}}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestSourceSetStatusUnknownIs404(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})

	resp, raw := h.request(t, http.MethodGet, "/internal/ai/source-sets/set-9/status", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var er errorResponse
	require.NoError(t, json.Unmarshal(raw, &er))
	assert.Equal(t, "SOURCE_SET_NOT_FOUND", er.ErrorCode)
}

func TestSourceSetStatusFound(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})
	h.sets.status = &sourceset.Status{
		SourceSetID: "set-1",
		Status:      sourceset.StatusCompleted,
		ScriptID:    "script-7",
	}

	resp, raw := h.request(t, http.MethodGet, "/internal/ai/source-sets/set-1/status", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var status sourceset.Status
	require.NoError(t, json.Unmarshal(raw, &status))
	assert.Equal(t, "script-7", status.ScriptID)
}
