// Package prompt assembles the ordered message list sent to the LLM: layered
// system instructions per route, role/domain guardrails, language enforcement,
// and a budgeted context block built from retrieved sources.
package prompt

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/saramhq/aegis/pkg/config"
	"github.com/saramhq/aegis/pkg/intent"
	"github.com/saramhq/aegis/pkg/models"
)

// Base instructions per route. Answers are always grounded on the provided
// context when one exists; the model must not invent regulation numbers.
var baseInstructions = map[intent.Route]string{
	intent.RouteRAGInternal: "당신은 사내 규정과 교육 자료에 근거해 답변하는 사내 어시스턴트입니다. " +
		"반드시 제공된 컨텍스트에 근거해 답변하고, 근거가 된 문서의 조항 번호를 함께 안내하세요. " +
		"컨텍스트에 없는 내용은 추측하지 마세요.",
	intent.RouteMixedBackendRAG: "당신은 사내 어시스턴트입니다. 제공된 개인화 데이터와 사내 규정 컨텍스트를 결합해 답변하세요. " +
		"개인화 데이터는 사실로 전달하고, 규정 해석은 컨텍스트에 근거하세요.",
	intent.RouteBackendAPI: "당신은 사내 어시스턴트입니다. 제공된 개인화 데이터를 바탕으로 간결하고 정확하게 답변하세요. " +
		"데이터에 없는 수치는 언급하지 마세요.",
	intent.RouteLLMOnly: "당신은 친절한 사내 어시스턴트입니다. 간결하게 답변하세요.",
	intent.RouteSystemHelp: "당신은 이 시스템의 사용법을 안내하는 도우미입니다. " +
		"챗봇으로 규정 질문, 교육 현황 조회, 보안 사고 신고 접수를 할 수 있음을 안내하세요.",
	intent.RouteUnknown: "당신은 사내 어시스턴트입니다. 질문의 의도가 불분명하면 정중하게 되물어 주세요.",
}

// Role/domain guardrail prefixes layered after the base instruction.
var roleGuardrails = map[models.UserRole]map[models.Domain]string{
	models.RoleEmployee: {
		models.DomainIncident: "보안 사고 신고 내용을 다룰 때 신고자의 신원을 답변에 노출하지 마세요.",
	},
	models.RoleIncidentManager: {
		models.DomainIncident: "사고 처리 절차를 안내하되, 신고자 식별 정보는 어떤 경우에도 답변에 포함하지 마세요.",
	},
	models.RoleAdmin: {
		models.DomainIncident: "사고 요약에 등장하는 개인 이름은 익명화하여 표현하세요.",
	},
}

const languageInstruction = "답변은 반드시 한국어로만 작성하세요. 외래어나 전문 용어는 괄호 안에 원어를 병기할 수 있습니다."

const softGuardrailInstruction = "주의: 이 질문과 일치하는 승인된 사내 문서를 찾지 못했습니다. " +
	"단정적인 표현 대신 '일반적으로', '통상적으로'와 같은 완곡한 표현을 사용하고, " +
	"조항 번호를 인용하지 마세요. 답변 마지막에 반드시 담당 부서에 확인을 권유하는 문장으로 마무리하세요."

// Builder produces the message list for one chat turn.
type Builder struct {
	maxContextChars   int
	maxContextSources int
}

// NewBuilder creates a prompt builder with the configured context budget.
func NewBuilder(cfg config.ChatConfig) *Builder {
	return &Builder{
		maxContextChars:   cfg.ContextMaxChars,
		maxContextSources: cfg.ContextMaxSources,
	}
}

// Input collects everything the builder layers into a prompt.
type Input struct {
	Route         intent.Route
	Role          models.UserRole
	Domain        models.Domain
	MaskedQuery   string
	Sources       []models.Source
	BackendFacts  string // preformatted personalisation facts, may be empty
	SoftGuardrail bool
}

// Build assembles the ordered system and user messages.
func (b *Builder) Build(in Input) []models.Message {
	system := b.systemPrompt(in)
	user := b.userPrompt(in)
	return []models.Message{
		{Role: models.RoleSystem, Content: system},
		{Role: models.RoleUser, Content: user},
	}
}

func (b *Builder) systemPrompt(in Input) string {
	parts := make([]string, 0, 4)

	base, ok := baseInstructions[in.Route]
	if !ok {
		base = baseInstructions[intent.RouteLLMOnly]
	}
	parts = append(parts, base)

	if byDomain, ok := roleGuardrails[in.Role]; ok {
		if guard, ok := byDomain[in.Domain]; ok {
			parts = append(parts, guard)
		}
	}

	parts = append(parts, languageInstruction)

	if in.SoftGuardrail {
		parts = append(parts, softGuardrailInstruction)
	}
	return strings.Join(parts, "\n\n")
}

func (b *Builder) userPrompt(in Input) string {
	var sb strings.Builder
	sb.WriteString(in.MaskedQuery)

	if in.BackendFacts != "" {
		sb.WriteString("\n\n[개인화 데이터]\n")
		sb.WriteString(in.BackendFacts)
	}

	if block := b.contextBlock(in.Sources); block != "" {
		sb.WriteString("\n\n")
		sb.WriteString(block)
	}
	return sb.String()
}

// contextBlock renders the retrieved sources inside a fenced block, keeping
// the highest-scoring sources within the character and count budget. Sources
// are assumed to arrive sorted by descending score.
func (b *Builder) contextBlock(sources []models.Source) string {
	if len(sources) == 0 {
		return ""
	}

	// The budget counts runes, not bytes: Korean text is three bytes per
	// rune in UTF-8 and a byte count would cut the budget to a third.
	var sb strings.Builder
	sb.WriteString("```context\n")
	used := 0
	included := 0
	for _, src := range sources {
		if included >= b.maxContextSources {
			break
		}
		line := formatSource(included+1, src)
		lineLen := utf8.RuneCountInString(line)
		if used+lineLen > b.maxContextChars {
			// Partial snippets confuse citation; skip rather than truncate
			// mid-sentence, but always include at least one source.
			if included > 0 {
				break
			}
			if lineLen > b.maxContextChars {
				line = string([]rune(line)[:b.maxContextChars])
				lineLen = b.maxContextChars
			}
		}
		sb.WriteString(line)
		sb.WriteString("\n")
		used += lineLen
		included++
	}
	sb.WriteString("```")
	return sb.String()
}

func formatSource(n int, src models.Source) string {
	line := fmt.Sprintf("[%d] %s — %s", n, src.Title, src.Snippet)
	if src.ArticlePath != "" {
		line += fmt.Sprintf(" (%s)", src.ArticlePath)
	}
	return line
}
