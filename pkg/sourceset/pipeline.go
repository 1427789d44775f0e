// Package sourceset runs the document-to-script pipeline behind the internal
// source-set endpoints. State is in-memory only; the backend owns the durable
// record and learns the outcome through the completion callback.
package sourceset

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/saramhq/aegis/pkg/backend"
	"github.com/saramhq/aegis/pkg/generators"
	"github.com/saramhq/aegis/pkg/models"
)

// Pipeline statuses.
const (
	StatusQueued     = "QUEUED"
	StatusProcessing = "PROCESSING"
	StatusCompleted  = "COMPLETED"
	StatusFailed     = "FAILED"
)

// Pipeline stages.
const (
	StagePrepare  = "PREPARE_DOCUMENTS"
	StageScript   = "GENERATE_SCRIPT"
	StageCallback = "NOTIFY_BACKEND"
)

// Error codes.
const (
	ErrorCodeEmptySourceSet = "EMPTY_SOURCE_SET"
	ErrorCodeScriptFailed   = "SCRIPT_GENERATION_FAILED"
)

// ErrAlreadyRunning rejects a second start while the pipeline is live.
var ErrAlreadyRunning = fmt.Errorf("source-set pipeline already running")

// Document is one input document of a source set.
type Document struct {
	DocID string `json:"doc_id"`
	Title string `json:"title,omitempty"`
	Text  string `json:"text"`
}

// StartRequest begins the pipeline for one source set.
type StartRequest struct {
	Title             string     `json:"title"`
	Documents         []Document `json:"documents"`
	TargetDurationSec float64    `json:"target_duration_sec,omitempty"`
}

// Status is the caller-visible pipeline state.
type Status struct {
	SourceSetID string             `json:"source_set_id"`
	Status      string             `json:"status"`
	Stage       string             `json:"stage,omitempty"`
	ScriptID    string             `json:"script_id,omitempty"`
	Script      *models.RenderSpec `json:"script,omitempty"`
	ErrorCode   string             `json:"error_code,omitempty"`
	ErrorDetail string             `json:"error_detail,omitempty"`
	StartedAt   time.Time          `json:"started_at"`
	FinishedAt  *time.Time         `json:"finished_at,omitempty"`
}

// ScriptGenerator is the generator slice the pipeline needs.
type ScriptGenerator interface {
	Generate(ctx context.Context, req generators.ScriptRequest) (*models.RenderSpec, error)
}

// Notifier posts the completion callback.
type Notifier interface {
	NotifySourceSetComplete(ctx context.Context, result backend.SourceSetResult) error
}

// Tracker runs and tracks source-set pipelines. Completed and failed runs
// stay readable until the same source set is started again.
type Tracker struct {
	scripts  ScriptGenerator
	notifier Notifier
	timeout  time.Duration
	logger   *slog.Logger

	mu   sync.Mutex
	runs map[string]*Status
}

// NewTracker creates the pipeline tracker.
func NewTracker(scripts ScriptGenerator, notifier Notifier, timeout time.Duration) *Tracker {
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	return &Tracker{
		scripts:  scripts,
		notifier: notifier,
		timeout:  timeout,
		logger:   slog.With("component", "sourceset"),
		runs:     make(map[string]*Status),
	}
}

// Start validates the request and launches the pipeline asynchronously. A
// source set with a live run cannot be started twice; terminal runs are
// replaced.
func (t *Tracker) Start(id string, req StartRequest) (*Status, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("source set id is required")
	}
	if len(req.Documents) == 0 {
		return nil, fmt.Errorf("source set has no documents")
	}

	t.mu.Lock()
	if existing, ok := t.runs[id]; ok &&
		(existing.Status == StatusQueued || existing.Status == StatusProcessing) {
		t.mu.Unlock()
		return nil, ErrAlreadyRunning
	}
	status := &Status{SourceSetID: id, Status: StatusQueued, StartedAt: time.Now().UTC()}
	t.runs[id] = status
	t.mu.Unlock()

	go t.run(id, req)

	t.logger.Info("Source-set pipeline started", "source_set_id", id, "documents", len(req.Documents))
	return t.snapshot(id), nil
}

// GetStatus returns the current state of a source set's run, or nil when the
// id was never started.
func (t *Tracker) GetStatus(id string) *Status {
	return t.snapshot(id)
}

func (t *Tracker) run(id string, req StartRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	t.update(id, func(s *Status) {
		s.Status = StatusProcessing
		s.Stage = StagePrepare
	})

	text, err := mergeDocuments(req.Documents)
	if err != nil {
		t.fail(ctx, id, ErrorCodeEmptySourceSet, err)
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = req.Documents[0].Title
	}

	t.update(id, func(s *Status) { s.Stage = StageScript })
	script, err := t.scripts.Generate(ctx, generators.ScriptRequest{
		Title:             title,
		DocumentText:      text,
		TargetDurationSec: req.TargetDurationSec,
	})
	if err != nil {
		t.fail(ctx, id, ErrorCodeScriptFailed, err)
		return
	}

	scriptID := uuid.NewString()
	script.ScriptID = scriptID

	t.update(id, func(s *Status) { s.Stage = StageCallback })
	result := backend.SourceSetResult{SourceSetID: id, Status: StatusCompleted, ScriptID: scriptID}
	if err := t.notifier.NotifySourceSetComplete(ctx, result); err != nil {
		// The script exists; the backend just missed the news. Keep the run
		// COMPLETED and let operators replay from the status endpoint.
		t.logger.Warn("Source-set completion callback failed", "source_set_id", id, "error", err)
	}

	now := time.Now().UTC()
	t.update(id, func(s *Status) {
		s.Status = StatusCompleted
		s.Stage = ""
		s.ScriptID = scriptID
		s.Script = script
		s.FinishedAt = &now
	})
	t.logger.Info("Source-set pipeline completed", "source_set_id", id, "script_id", scriptID)
}

func (t *Tracker) fail(ctx context.Context, id, code string, cause error) {
	now := time.Now().UTC()
	t.update(id, func(s *Status) {
		s.Status = StatusFailed
		s.Stage = ""
		s.ErrorCode = code
		s.ErrorDetail = cause.Error()
		s.FinishedAt = &now
	})

	result := backend.SourceSetResult{SourceSetID: id, Status: StatusFailed, ErrorCode: code}
	if err := t.notifier.NotifySourceSetComplete(ctx, result); err != nil {
		t.logger.Warn("Source-set failure callback failed", "source_set_id", id, "error", err)
	}
	t.logger.Error("Source-set pipeline failed", "source_set_id", id, "error_code", code, "error", cause)
}

func (t *Tracker) update(id string, fn func(*Status)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.runs[id]; ok {
		fn(s)
	}
}

func (t *Tracker) snapshot(id string) *Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.runs[id]
	if !ok {
		return nil
	}
	copied := *s
	return &copied
}

// mergeDocuments joins document texts in input order with titled separators.
func mergeDocuments(docs []Document) (string, error) {
	var sb strings.Builder
	for _, doc := range docs {
		text := strings.TrimSpace(doc.Text)
		if text == "" {
			continue
		}
		if doc.Title != "" {
			fmt.Fprintf(&sb, "## %s\n", doc.Title)
		}
		sb.WriteString(text)
		sb.WriteString("\n\n")
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("all documents are empty")
	}
	return strings.TrimSpace(sb.String()), nil
}
