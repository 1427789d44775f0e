package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saramhq/aegis/pkg/config"
	"github.com/saramhq/aegis/pkg/intent"
	"github.com/saramhq/aegis/pkg/models"
)

func testBuilder() *Builder {
	return NewBuilder(config.ChatConfig{ContextMaxChars: 8000, ContextMaxSources: 5})
}

func TestBuild_SystemThenUser(t *testing.T) {
	messages := testBuilder().Build(Input{
		Route:       intent.RouteRAGInternal,
		Role:        models.RoleEmployee,
		Domain:      models.DomainPolicy,
		MaskedQuery: "연차 이월이 가능한가요?",
	})

	require.Len(t, messages, 2)
	assert.Equal(t, models.RoleSystem, messages[0].Role)
	assert.Equal(t, models.RoleUser, messages[1].Role)
	assert.Contains(t, messages[0].Content, "한국어로만")
	assert.Contains(t, messages[1].Content, "연차 이월이 가능한가요?")
}

func TestBuild_ContextBlockFormat(t *testing.T) {
	messages := testBuilder().Build(Input{
		Route:       intent.RouteRAGInternal,
		MaskedQuery: "연차 기준은?",
		Sources: []models.Source{
			{Title: "취업규칙", Snippet: "연차는 1년 근속 시 15일 발생한다.", ArticlePath: "제3장 > 제12조"},
			{Title: "휴가 안내", Snippet: "이월은 최대 5일까지 허용된다."},
		},
	})

	user := messages[1].Content
	assert.Contains(t, user, "```context")
	assert.Contains(t, user, "[1] 취업규칙 — 연차는 1년 근속 시 15일 발생한다. (제3장 > 제12조)")
	assert.Contains(t, user, "[2] 휴가 안내 — 이월은 최대 5일까지 허용된다.")
}

func TestBuild_ContextBudgetKeepsHighestScoring(t *testing.T) {
	builder := NewBuilder(config.ChatConfig{ContextMaxChars: 120, ContextMaxSources: 5})
	messages := builder.Build(Input{
		Route:       intent.RouteRAGInternal,
		MaskedQuery: "q",
		Sources: []models.Source{
			{Title: "첫번째", Snippet: strings.Repeat("가", 40), Score: 0.9},
			{Title: "두번째", Snippet: strings.Repeat("나", 40), Score: 0.8},
			{Title: "세번째", Snippet: strings.Repeat("다", 40), Score: 0.7},
		},
	})

	user := messages[1].Content
	assert.Contains(t, user, "첫번째")
	assert.Contains(t, user, "두번째")
	assert.NotContains(t, user, "세번째")
}

func TestBuild_SourceCountCap(t *testing.T) {
	builder := NewBuilder(config.ChatConfig{ContextMaxChars: 8000, ContextMaxSources: 2})
	sources := []models.Source{
		{Title: "a", Snippet: "1"}, {Title: "b", Snippet: "2"}, {Title: "c", Snippet: "3"},
	}
	messages := builder.Build(Input{Route: intent.RouteRAGInternal, MaskedQuery: "q", Sources: sources})

	user := messages[1].Content
	assert.Contains(t, user, "[2] b")
	assert.NotContains(t, user, "[3]")
}

func TestBuild_SoftGuardrailInjectedOnlyWhenSet(t *testing.T) {
	withGuard := testBuilder().Build(Input{
		Route:         intent.RouteRAGInternal,
		MaskedQuery:   "연차 규정?",
		SoftGuardrail: true,
	})
	assert.Contains(t, withGuard[0].Content, "조항 번호를 인용하지 마세요")

	without := testBuilder().Build(Input{
		Route:       intent.RouteRAGInternal,
		MaskedQuery: "연차 규정?",
	})
	assert.NotContains(t, without[0].Content, "조항 번호를 인용하지 마세요")
}

func TestBuild_IncidentRoleGuardrails(t *testing.T) {
	reporter := testBuilder().Build(Input{
		Route:       intent.RouteRAGInternal,
		Role:        models.RoleEmployee,
		Domain:      models.DomainIncident,
		MaskedQuery: "보안 사고를 신고하고 싶어요",
	})
	assert.Contains(t, reporter[0].Content, "신원을 답변에 노출하지 마세요")

	admin := testBuilder().Build(Input{
		Route:       intent.RouteRAGInternal,
		Role:        models.RoleAdmin,
		Domain:      models.DomainIncident,
		MaskedQuery: "이번 주 사고 요약",
	})
	assert.Contains(t, admin[0].Content, "익명화")
}

func TestBuild_BackendFactsSection(t *testing.T) {
	messages := testBuilder().Build(Input{
		Route:        intent.RouteBackendAPI,
		MaskedQuery:  "내 연차 며칠 남았어?",
		BackendFacts: "잔여 연차: 7일",
	})
	assert.Contains(t, messages[1].Content, "[개인화 데이터]")
	assert.Contains(t, messages[1].Content, "잔여 연차: 7일")
}

func TestBuild_UnknownRouteFallsBackToPlainInstruction(t *testing.T) {
	messages := testBuilder().Build(Input{Route: intent.Route("BOGUS"), MaskedQuery: "?"})
	assert.Contains(t, messages[0].Content, "친절한 사내 어시스턴트")
}
