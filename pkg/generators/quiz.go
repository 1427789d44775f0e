package generators

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/saramhq/aegis/pkg/models"
)

// Quiz difficulties.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// QuizRequest asks for multiple-choice questions over candidate text blocks.
// Difficulty maps difficulty names to question counts and must sum to Count.
type QuizRequest struct {
	Blocks     []string       `json:"blocks"`
	Count      int            `json:"count"`
	Difficulty map[string]int `json:"difficulty"`
	Seed       int64          `json:"seed,omitempty"`
}

// QuizQuestion is one multiple-choice question. AnswerIndex points into
// Options after shuffling.
type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answer_index"`
	Difficulty  string   `json:"difficulty"`
	Explanation string   `json:"explanation,omitempty"`
}

// QuizResult is one generated quiz.
type QuizResult struct {
	Questions []QuizQuestion `json:"questions"`
}

// QuizGenerator produces multiple-choice quizzes from provided text blocks.
type QuizGenerator struct {
	llm    Completer
	logger *slog.Logger
}

// NewQuizGenerator creates the quiz generator.
func NewQuizGenerator(completer Completer) *QuizGenerator {
	return &QuizGenerator{llm: completer, logger: slog.With("component", "quiz_generator")}
}

// quizRawQuestion is the LLM output shape. The first option is always the
// correct one; shuffling happens locally so the answer position is not a
// model artefact.
type quizRawQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Difficulty  string   `json:"difficulty"`
	Explanation string   `json:"explanation"`
}

// Generate produces Count questions honouring the difficulty distribution.
// Options are shuffled deterministically from the request seed.
func (g *QuizGenerator) Generate(ctx context.Context, req QuizRequest) (*QuizResult, error) {
	if err := validateQuizRequest(req); err != nil {
		return nil, err
	}

	messages := []models.Message{
		{Role: models.RoleSystem, Content: quizSystemPrompt(req)},
		{Role: models.RoleUser, Content: "학습 자료:\n\n" + strings.Join(req.Blocks, "\n\n---\n\n")},
	}
	completion, err := g.llm.Complete(ctx, messages, llmOptions())
	if err != nil {
		return nil, fmt.Errorf("generate quiz: %w", err)
	}

	var raw []quizRawQuestion
	if err := decodeJSON(completion.Text, &raw); err != nil {
		return nil, fmt.Errorf("parse quiz: %w", err)
	}

	rng := rand.New(rand.NewSource(req.Seed))
	questions := make([]QuizQuestion, 0, len(raw))
	for _, q := range raw {
		if strings.TrimSpace(q.Question) == "" || len(q.Options) < 2 {
			continue
		}
		questions = append(questions, shuffleOptions(q, rng))
	}
	if len(questions) > req.Count {
		questions = questions[:req.Count]
	}
	if len(questions) < req.Count {
		g.logger.Warn("Quiz came up short", "requested", req.Count, "generated", len(questions))
	}

	return &QuizResult{Questions: questions}, nil
}

func validateQuizRequest(req QuizRequest) error {
	if len(req.Blocks) == 0 {
		return invalidRequestf("quiz blocks are required")
	}
	if req.Count <= 0 {
		return invalidRequestf("quiz count must be positive")
	}
	if len(req.Difficulty) == 0 {
		return nil
	}
	sum := 0
	for name, n := range req.Difficulty {
		switch name {
		case DifficultyEasy, DifficultyMedium, DifficultyHard:
		default:
			return invalidRequestf("unknown difficulty %q", name)
		}
		if n < 0 {
			return invalidRequestf("difficulty %q has negative count", name)
		}
		sum += n
	}
	if sum != req.Count {
		return invalidRequestf("difficulty distribution sums to %d, want %d", sum, req.Count)
	}
	return nil
}

// shuffleOptions permutes the options and tracks where the correct answer
// (always first in the raw output) lands.
func shuffleOptions(q quizRawQuestion, rng *rand.Rand) QuizQuestion {
	options := make([]string, len(q.Options))
	copy(options, q.Options)

	answer := 0
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
		switch answer {
		case i:
			answer = j
		case j:
			answer = i
		}
	})

	difficulty := q.Difficulty
	if difficulty == "" {
		difficulty = DifficultyMedium
	}
	return QuizQuestion{
		Question:    q.Question,
		Options:     options,
		AnswerIndex: answer,
		Difficulty:  difficulty,
		Explanation: q.Explanation,
	}
}

func quizSystemPrompt(req QuizRequest) string {
	var dist strings.Builder
	for _, name := range []string{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		if n := req.Difficulty[name]; n > 0 {
			fmt.Fprintf(&dist, "- %s: %d개\n", name, n)
		}
	}
	prompt := fmt.Sprintf(`당신은 사내 교육용 퀴즈 출제자입니다. 제공된 학습 자료만 근거로 4지선다 문제 %d개를 만드세요.`, req.Count)
	if dist.Len() > 0 {
		prompt += "\n난이도 분포:\n" + dist.String()
	}
	prompt += `다음 JSON 배열 형식으로만 응답하세요. options의 첫 번째 항목이 반드시 정답이어야 합니다:
[{"question": "...", "options": ["정답", "오답1", "오답2", "오답3"], "difficulty": "easy|medium|hard", "explanation": "..."}]`
	return prompt
}
