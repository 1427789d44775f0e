// Package chat runs the staged turn pipeline: PII masking, intent routing,
// grounded retrieval, prompt assembly, LLM invocation, answer guarding and
// telemetry, in both synchronous and streaming form.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/saramhq/aegis/pkg/config"
	"github.com/saramhq/aegis/pkg/guard"
	"github.com/saramhq/aegis/pkg/intent"
	"github.com/saramhq/aegis/pkg/llm"
	"github.com/saramhq/aegis/pkg/metrics"
	"github.com/saramhq/aegis/pkg/models"
	"github.com/saramhq/aegis/pkg/personalization"
	"github.com/saramhq/aegis/pkg/pii"
	"github.com/saramhq/aegis/pkg/prompt"
	"github.com/saramhq/aegis/pkg/retrieval"
	"github.com/saramhq/aegis/pkg/telemetry"
)

// Error codes surfaced in meta.error_type and stream error events.
const (
	ErrorCodeInvalidRequest     = "INVALID_REQUEST"
	ErrorCodePIIUnavailable     = "PII_DETECTOR_UNAVAILABLE"
	ErrorCodeRAGUnavailable     = "RAG_SEARCH_UNAVAILABLE"
	ErrorCodeLLM                = "LLM_ERROR"
	ErrorCodeLLMTimeout         = "LLM_TIMEOUT"
	ErrorCodeDuplicateInflight  = "DUPLICATE_INFLIGHT"
	ErrorCodeClientDisconnected = "CLIENT_DISCONNECTED"
)

// ErrEmptyMessage rejects turns without a user message before any work.
var ErrEmptyMessage = errors.New("turn contains no user message")

// Safe replies used when the pipeline cannot produce a real answer.
const (
	piiFallbackMessage = "보안 검사를 완료할 수 없어 요청을 처리하지 못했습니다. 잠시 후 다시 시도해 주세요."
	llmFallbackMessage = "죄송합니다. 지금은 답변을 생성할 수 없습니다. 잠시 후 다시 시도해 주세요."
)

// Masker is the PII service slice the pipeline needs.
type Masker interface {
	Mask(ctx context.Context, text string, stage pii.Stage) (*pii.MaskResult, error)
}

// Classifier produces the intent and route for a query.
type Classifier interface {
	Classify(message string, role models.UserRole, domainHint models.Domain, department string) intent.Result
}

// Searcher is the retrieval engine slice the pipeline needs.
type Searcher interface {
	Search(ctx context.Context, requestID, query string, domain models.Domain, topK int) (*retrieval.Result, error)
}

// LLMClient covers both invocation modes.
type LLMClient interface {
	Complete(ctx context.Context, messages []models.Message, opts llm.Options) (*llm.Completion, error)
	Stream(ctx context.Context, messages []models.Message, opts llm.Options) (<-chan llm.StreamEvent, error)
	Model() string
}

// AnswerGuard validates generated answers.
type AnswerGuard interface {
	Check(ctx context.Context, answer string, noSources bool, messages []models.Message) guard.Result
}

// Personalizer fetches and renders per-user facts.
type Personalizer interface {
	Resolve(ctx context.Context, subIntentID, userID, period, targetDeptID string) (personalization.Facts, error)
	Render(ctx context.Context, facts personalization.Facts) string
}

// Orchestrator wires the pipeline stages together.
type Orchestrator struct {
	cfg        config.ChatConfig
	masker     Masker
	classifier Classifier
	searcher   Searcher
	llm        LLMClient
	guard      AnswerGuard
	personal   Personalizer
	topK       int
	inflight   *InflightRegistry
	logger     *slog.Logger
}

// NewOrchestrator assembles the chat pipeline.
func NewOrchestrator(cfg config.ChatConfig, topK int, masker Masker, classifier Classifier,
	searcher Searcher, llmClient LLMClient, answerGuard AnswerGuard, personal Personalizer) *Orchestrator {
	return &Orchestrator{
		cfg:        cfg,
		masker:     masker,
		classifier: classifier,
		searcher:   searcher,
		llm:        llmClient,
		guard:      answerGuard,
		personal:   personal,
		topK:       topK,
		inflight:   NewInflightRegistry(cfg.InflightWindow),
		logger:     slog.With("component", "chat"),
	}
}

// Inflight exposes the registry for shutdown.
func (o *Orchestrator) Inflight() *InflightRegistry { return o.inflight }

// prepared is the pipeline state after masking, routing and context
// gathering, shared by the sync and streaming paths.
type prepared struct {
	maskedQuery   string
	intentRes     intent.Result
	sources       []models.Source
	backendFacts  string
	softGuardrail bool
	messages      []models.Message
	// directAnswer short-circuits LLM invocation (clarify prompts).
	directAnswer string
	meta         models.ChatMeta
	ragLatencyMs int64
}

// Answer runs the full synchronous pipeline for one turn.
func (o *Orchestrator) Answer(ctx context.Context, rc *telemetry.RequestContext, turn models.Turn) (*models.ChatAnswer, error) {
	started := time.Now()
	p, err := o.prepare(ctx, rc, turn)
	if err != nil {
		if answer := o.failureAnswer(rc, err, started); answer != nil {
			return answer, nil
		}
		return nil, err
	}

	answer := &models.ChatAnswer{Sources: p.sources, Meta: p.meta}

	if p.directAnswer != "" {
		answer.Answer = p.directAnswer
	} else {
		llmStarted := time.Now()
		completion, err := o.llm.Complete(ctx, p.messages, llm.Options{})
		answer.Meta.LLMLatencyMs = time.Since(llmStarted).Milliseconds()
		metrics.LLMLatency.WithLabelValues("sync").Observe(time.Since(llmStarted).Seconds())
		if err != nil {
			answer.Answer = llmFallbackMessage
			answer.Meta.ErrorType = llmErrorCode(err)
			o.finish(rc, answer, p.maskedQuery, started)
			return answer, nil
		}
		answer.Answer = completion.Text
		answer.Meta.UsedModel = completion.Model

		// OUTPUT masking is fail-closed like INPUT.
		masked, err := o.masker.Mask(ctx, answer.Answer, pii.StageOutput)
		if err != nil {
			o.securityEvent(rc, pii.StageOutput, err)
			answer.Answer = piiFallbackMessage
			answer.Sources = nil
			answer.Meta.ErrorType = ErrorCodePIIUnavailable
			o.finish(rc, answer, p.maskedQuery, started)
			return answer, nil
		}
		answer.Answer = masked.Masked
		answer.Meta.HasPIIOutput = masked.HasPII

		result := o.guard.Check(ctx, answer.Answer, p.softGuardrail, p.messages)
		answer.Answer = result.Text
		if result.ErrorCode != "" {
			answer.Meta.ErrorType = result.ErrorCode
		}
	}

	o.finish(rc, answer, p.maskedQuery, started)
	return answer, nil
}

// prepare runs stages 1-5: validation, INPUT masking, routing, context
// gathering and prompt assembly.
func (o *Orchestrator) prepare(ctx context.Context, rc *telemetry.RequestContext, turn models.Turn) (*prepared, error) {
	query := turn.CurrentQuery()
	if query == "" {
		return nil, ErrEmptyMessage
	}

	masked, err := o.masker.Mask(ctx, query, pii.StageInput)
	if err != nil {
		o.securityEvent(rc, pii.StageInput, err)
		return nil, err
	}

	p := &prepared{maskedQuery: masked.Masked}
	p.intentRes = o.classifier.Classify(masked.Masked, turn.UserRole, turn.DomainHint, turn.Department)
	p.meta = models.ChatMeta{
		Route:       string(p.intentRes.Route),
		Intent:      p.intentRes.Intent,
		Domain:      p.intentRes.Domain,
		HasPIIInput: masked.HasPII,
		Masked:      masked.HasPII,
	}

	if p.intentRes.NeedsClarify {
		p.directAnswer = p.intentRes.ClarifyPrompt
		p.meta.Route = string(intent.RouteClarify)
		return p, nil
	}

	switch p.intentRes.Route {
	case intent.RouteRAGInternal:
		if err := o.gatherSources(ctx, rc, p); err != nil {
			return nil, err
		}
	case intent.RouteMixedBackendRAG:
		// Retrieval and facts fetch run sequentially; the facts fetch is
		// best-effort while retrieval failure is terminal for the turn.
		if err := o.gatherSources(ctx, rc, p); err != nil {
			return nil, err
		}
		o.gatherFacts(ctx, turn, p)
	case intent.RouteBackendAPI:
		o.gatherFacts(ctx, turn, p)
	}

	builder := prompt.NewBuilder(o.cfg)
	p.messages = builder.Build(prompt.Input{
		Route:         p.intentRes.Route,
		Role:          turn.UserRole,
		Domain:        p.intentRes.Domain,
		MaskedQuery:   p.maskedQuery,
		Sources:       p.sources,
		BackendFacts:  p.backendFacts,
		SoftGuardrail: p.softGuardrail,
	})
	return p, nil
}

func (o *Orchestrator) gatherSources(ctx context.Context, rc *telemetry.RequestContext, p *prepared) error {
	ragStarted := time.Now()
	requestID := ""
	if rc != nil {
		requestID = rc.TraceID
	}
	result, err := o.searcher.Search(ctx, requestID, p.maskedQuery, p.intentRes.Domain, o.topK)
	p.ragLatencyMs = time.Since(ragStarted).Milliseconds()
	p.meta.RagLatencyMs = p.ragLatencyMs
	if err != nil {
		p.meta.ErrorType = ErrorCodeRAGUnavailable
		return fmt.Errorf("retrieval for turn: %w", err)
	}

	p.sources = result.Sources
	p.meta.RagUsed = len(result.Sources) > 0
	p.meta.RagSourceCount = len(result.Sources)
	p.meta.RetrieverUsed = result.Retriever
	if len(result.Sources) == 0 {
		p.softGuardrail = true
		p.meta.RagGapCandidate = true
	}
	return nil
}

// gatherFacts fetches personalised facts. Failure degrades to an answer
// without them rather than failing the turn.
func (o *Orchestrator) gatherFacts(ctx context.Context, turn models.Turn, p *prepared) {
	if o.personal == nil || p.intentRes.SubIntentID == "" {
		return
	}
	facts, err := o.personal.Resolve(ctx, p.intentRes.SubIntentID, turn.UserID, "", "")
	if err != nil {
		o.logger.Warn("Personalization fetch failed",
			"sub_intent", p.intentRes.SubIntentID, "error", err)
		return
	}
	p.meta.PersonalizationQ = p.intentRes.SubIntentID
	p.backendFacts = personalization.FormatFacts(facts)

	// Pure backend answers render directly from facts; no second LLM pass
	// over an empty context.
	if p.intentRes.Route == intent.RouteBackendAPI {
		p.directAnswer = o.personal.Render(ctx, facts)
	}
}

// failureAnswer converts pipeline errors that must still yield HTTP 200 into
// a safe ChatAnswer. Returns nil for errors the API surfaces as-is.
func (o *Orchestrator) failureAnswer(rc *telemetry.RequestContext, err error, started time.Time) *models.ChatAnswer {
	var unavailable *pii.DetectorUnavailableError
	if errors.As(err, &unavailable) {
		answer := &models.ChatAnswer{
			Answer: piiFallbackMessage,
			Meta:   models.ChatMeta{Route: string(intent.RouteError), ErrorType: ErrorCodePIIUnavailable},
		}
		o.finish(rc, answer, "", started)
		return answer
	}
	return nil
}

// finish stamps total latency and emits the turn's telemetry exactly once.
func (o *Orchestrator) finish(rc *telemetry.RequestContext, answer *models.ChatAnswer, maskedQuery string, started time.Time) {
	answer.Meta.LatencyMs = time.Since(started).Milliseconds()
	metrics.ChatTurns.WithLabelValues(answer.Meta.Route, errLabel(answer.Meta.ErrorType)).Inc()
	metrics.ChatLatency.WithLabelValues(answer.Meta.Route).Observe(time.Since(started).Seconds())
	rc.Queue(models.EventTypeChatTurn, models.ChatTurnPayload(maskedQuery, answer.Meta))
}

func (o *Orchestrator) securityEvent(rc *telemetry.RequestContext, stage pii.Stage, err error) {
	o.logger.Warn("PII detector unavailable, failing closed", "stage", stage, "error", err)
	metrics.PIIBlocks.WithLabelValues(string(stage)).Inc()
	rc.Queue(models.EventTypeSecurity,
		models.SecurityPayload(models.BlockTypePII, string(stage), "detector unavailable"))
}

func llmErrorCode(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorCodeLLMTimeout
	}
	return ErrorCodeLLM
}

func errLabel(errorType string) string {
	if errorType == "" {
		return "none"
	}
	return errorType
}
