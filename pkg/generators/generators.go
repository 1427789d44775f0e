// Package generators holds the content generators layered over retrieval and
// the LLM: FAQ sets, multiple-choice quizzes, video scripts, and knowledge-gap
// suggestions. Each generator asks the LLM for strict JSON and validates the
// shape before returning it.
package generators

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/saramhq/aegis/pkg/llm"
	"github.com/saramhq/aegis/pkg/models"
	"github.com/saramhq/aegis/pkg/retrieval"
)

// Searcher is the retrieval slice the generators need.
type Searcher interface {
	Search(ctx context.Context, requestID, query string, domain models.Domain, topK int) (*retrieval.Result, error)
}

// Completer is the LLM slice the generators need.
type Completer interface {
	Complete(ctx context.Context, messages []models.Message, opts llm.Options) (*llm.Completion, error)
}

// ErrInvalidRequest wraps request-shape problems so the HTTP layer can
// report them as validation failures rather than server errors.
var ErrInvalidRequest = errors.New("invalid generation request")

func invalidRequestf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidRequest}, args...)...)
}

// generationTemperature keeps structured outputs stable.
var generationTemperature = 0.2

func llmOptions() llm.Options {
	t := generationTemperature
	return llm.Options{Temperature: &t}
}

// decodeJSON extracts the first JSON value from an LLM answer. Models wrap
// JSON in markdown fences or prose often enough that strict decoding alone
// is not workable.
func decodeJSON(text string, v interface{}) error {
	text = strings.TrimSpace(text)
	if i := strings.Index(text, "```"); i >= 0 {
		text = text[i+3:]
		text = strings.TrimPrefix(text, "json")
		if j := strings.Index(text, "```"); j >= 0 {
			text = text[:j]
		}
	}

	start := strings.IndexAny(text, "[{")
	if start < 0 {
		return fmt.Errorf("no JSON value in response")
	}
	end := strings.LastIndexAny(text, "]}")
	if end < start {
		return fmt.Errorf("unterminated JSON value in response")
	}

	if err := json.Unmarshal([]byte(text[start:end+1]), v); err != nil {
		return fmt.Errorf("decode generated JSON: %w", err)
	}
	return nil
}

// contextFromSources renders retrieved chunks as the numbered excerpt block
// fed to the generation prompts.
func contextFromSources(sources []models.Source) string {
	var sb strings.Builder
	for i, src := range sources {
		fmt.Fprintf(&sb, "[%d] %s\n%s\n\n", i+1, src.Title, src.Snippet)
	}
	return strings.TrimSpace(sb.String())
}
