// Package guard validates LLM answers after generation: soft-guardrail
// prefixing when no grounding sources were found, and target-language
// enforcement with a single lower-temperature retry.
package guard

import (
	"context"
	"log/slog"
	"unicode"

	"github.com/saramhq/aegis/pkg/llm"
	"github.com/saramhq/aegis/pkg/models"
)

// SoftGuardrailPrefix is prepended to answers produced without any approved
// internal document. The uncertainty must be visible to the user, not only in
// telemetry.
const SoftGuardrailPrefix = "⚠️ 일치하는 승인된 사내 문서를 찾지 못했습니다. 아래 내용은 일반적인 안내이며, 정확한 기준은 담당 부서에 확인해 주세요.\n\n"

// ErrorCodeLanguage is emitted when the answer stays substantially
// non-Korean even after the retry.
const ErrorCodeLanguage = "LANGUAGE_ERROR"

// Answers below this Hangul ratio are treated as wrong-language output.
const minKoreanRatio = 0.30

// lower temperature for the single language retry.
var retryTemperature = 0.1

// Completer is the slice of the LLM client the guard needs for retries.
type Completer interface {
	Complete(ctx context.Context, messages []models.Message, opts llm.Options) (*llm.Completion, error)
}

// Guard post-processes generated answers.
type Guard struct {
	llm    Completer
	logger *slog.Logger
}

// New creates an answer guard. completer may be nil, which disables the
// language retry (the error code is still emitted).
func New(completer Completer) *Guard {
	return &Guard{llm: completer, logger: slog.With("component", "guard")}
}

// Result describes what the guard did to the answer.
type Result struct {
	Text          string
	SoftGuardrail bool
	ErrorCode     string
	Retried       bool
}

// Check applies the guard policy to a generated answer. messages is the
// prompt that produced it, reused verbatim for the language retry.
func (g *Guard) Check(ctx context.Context, answer string, noSources bool, messages []models.Message) Result {
	result := Result{Text: answer}

	if ratio := koreanRatio(answer); ratio < minKoreanRatio {
		g.logger.Warn("Answer below target-language threshold", "korean_ratio", ratio)
		if retried, ok := g.retryLowerTemperature(ctx, messages); ok {
			result.Retried = true
			if koreanRatio(retried) >= minKoreanRatio {
				result.Text = retried
			} else {
				result.ErrorCode = ErrorCodeLanguage
			}
		} else {
			result.ErrorCode = ErrorCodeLanguage
		}
	}

	if noSources {
		result.SoftGuardrail = true
		result.Text = SoftGuardrailPrefix + result.Text
	}
	return result
}

func (g *Guard) retryLowerTemperature(ctx context.Context, messages []models.Message) (string, bool) {
	if g.llm == nil || len(messages) == 0 {
		return "", false
	}
	temp := retryTemperature
	completion, err := g.llm.Complete(ctx, messages, llm.Options{Temperature: &temp})
	if err != nil {
		g.logger.Warn("Language retry failed", "error", err)
		return "", false
	}
	return completion.Text, true
}

// koreanRatio reports the share of Hangul among letter runes. Digits,
// punctuation and whitespace are ignored so "15일" counts as fully Korean.
func koreanRatio(s string) float64 {
	var letters, hangul int
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.Is(unicode.Hangul, r) {
			hangul++
		}
	}
	if letters == 0 {
		// Numeric or empty answers are not a language violation.
		return 1
	}
	return float64(hangul) / float64(letters)
}
