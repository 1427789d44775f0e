// Package render owns the persistent render-job state machine: idempotent
// creation, guarded transitions, spec snapshotting, retry, cancellation, and
// the staged step runner that produces the video artefacts.
package render

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/saramhq/aegis/ent"
	"github.com/saramhq/aegis/ent/renderjob"
	"github.com/saramhq/aegis/pkg/backend"
	"github.com/saramhq/aegis/pkg/metrics"
	"github.com/saramhq/aegis/pkg/models"
	"github.com/saramhq/aegis/pkg/progress"
)

// SpecFetcher is the backend slice the service needs.
type SpecFetcher interface {
	GetScriptStatus(ctx context.Context, scriptID string) (*backend.ScriptStatus, error)
	GetRenderSpec(ctx context.Context, videoID, scriptID string) (*models.RenderSpec, error)
	NotifyRenderJobComplete(ctx context.Context, result backend.RenderJobResult) error
}

// Service implements the job-store operations. It is the single writer of
// job state; readers always go to the store.
type Service struct {
	client  *ent.Client
	backend SpecFetcher
	bus     *progress.Bus
	runner  *Runner
	logger  *slog.Logger
}

// NewService creates the render-job service. runner may be nil for tests
// that only exercise the state machine.
func NewService(client *ent.Client, specs SpecFetcher, bus *progress.Bus, runner *Runner) *Service {
	return &Service{
		client:  client,
		backend: specs,
		bus:     bus,
		runner:  runner,
		logger:  slog.With("component", "render"),
	}
}

// CreateJob inserts a QUEUED job for the video, or returns the existing
// non-terminal job (idempotent). The script must be approved. The boolean
// reports whether a new row was inserted.
func (s *Service) CreateJob(ctx context.Context, videoID, scriptID, createdBy string) (*ent.RenderJob, bool, error) {
	status, err := s.backend.GetScriptStatus(ctx, scriptID)
	if err != nil {
		return nil, false, fmt.Errorf("check script approval: %w", err)
	}
	if !status.Approved() {
		return nil, false, ErrScriptNotApproved
	}

	// Check-then-insert runs inside one transaction so two concurrent
	// creates for the same video cannot both insert.
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("begin transaction: %w", err)
	}

	existing, err := tx.RenderJob.Query().
		Where(
			renderjob.VideoIDEQ(videoID),
			renderjob.StatusIn(renderjob.StatusQueued, renderjob.StatusProcessing),
		).
		Only(ctx)
	switch {
	case err == nil:
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.Warn("Rollback after idempotent hit failed", "error", rbErr)
		}
		s.logger.Info("Returning existing non-terminal job",
			"video_id", videoID, "job_id", existing.ID, "status", existing.Status)
		return existing, false, nil
	case !ent.IsNotFound(err):
		_ = tx.Rollback()
		return nil, false, fmt.Errorf("query non-terminal job: %w", err)
	}

	job, err := tx.RenderJob.Create().
		SetID(uuid.NewString()).
		SetVideoID(videoID).
		SetScriptID(scriptID).
		SetStatus(renderjob.StatusQueued).
		SetCreatedBy(createdBy).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, false, fmt.Errorf("insert job: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("commit job: %w", err)
	}

	s.logger.Info("Created render job", "job_id", job.ID, "video_id", videoID, "script_id", scriptID)
	return job, true, nil
}

// StartJob fetches the render spec, snapshots it, transitions the job to
// PROCESSING and launches the step loop asynchronously.
func (s *Service) StartJob(ctx context.Context, jobID string) (*ent.RenderJob, error) {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != renderjob.StatusQueued {
		return nil, &TransitionError{JobID: jobID, Status: StatusLabel(job.Status), Op: "start"}
	}

	spec, err := s.backend.GetRenderSpec(ctx, job.VideoID, job.ScriptID)
	if err != nil {
		return nil, fmt.Errorf("fetch render spec: %w", err)
	}
	if len(spec.Scenes) == 0 {
		return nil, ErrEmptyRenderSpec
	}

	snapshot, err := specToSnapshot(spec)
	if err != nil {
		return nil, err
	}

	job, err = s.client.RenderJob.UpdateOneID(jobID).
		SetStatus(renderjob.StatusProcessing).
		SetRenderSpecSnapshot(snapshot).
		SetProgress(0).
		SetStartedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("transition to processing: %w", err)
	}

	s.publish(job, "render started")
	s.launch(job, spec)
	return job, nil
}

// RetryJob restarts a FAILED job from its snapshot without re-fetching the
// spec.
func (s *Service) RetryJob(ctx context.Context, jobID string) (*ent.RenderJob, error) {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != renderjob.StatusFailed {
		return nil, &TransitionError{JobID: jobID, Status: StatusLabel(job.Status), Op: "retry"}
	}
	if len(job.RenderSpecSnapshot) == 0 {
		return nil, ErrNoRenderSpecForRetry
	}

	spec, err := specFromSnapshot(job.RenderSpecSnapshot)
	if err != nil {
		return nil, err
	}

	job, err = s.client.RenderJob.UpdateOneID(jobID).
		SetStatus(renderjob.StatusProcessing).
		SetProgress(0).
		ClearStep().
		ClearErrorCode().
		ClearErrorMessage().
		SetStartedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("transition to processing: %w", err)
	}

	s.publish(job, "render retried")
	s.launch(job, spec)
	return job, nil
}

// CancelJob sets CANCELLED on a non-terminal job. The step loop observes the
// status before each step and exits cleanly.
func (s *Service) CancelJob(ctx context.Context, jobID string) (*ent.RenderJob, error) {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if isTerminal(job.Status) {
		return nil, &TransitionError{JobID: jobID, Status: StatusLabel(job.Status), Op: "cancel"}
	}

	job, err = s.client.RenderJob.UpdateOneID(jobID).
		SetStatus(renderjob.StatusCancelled).
		SetFinishedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("transition to cancelled: %w", err)
	}

	metrics.RenderJobs.WithLabelValues(StatusLabel(job.Status)).Inc()
	s.publish(job, "render cancelled")
	return job, nil
}

// GetJob fetches one job.
func (s *Service) GetJob(ctx context.Context, jobID string) (*ent.RenderJob, error) {
	job, err := s.client.RenderJob.Get(ctx, jobID)
	if ent.IsNotFound(err) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	return job, nil
}

// ListJobs returns a video's jobs, newest first.
func (s *Service) ListJobs(ctx context.Context, videoID string) ([]*ent.RenderJob, error) {
	jobs, err := s.client.RenderJob.Query().
		Where(renderjob.VideoIDEQ(videoID)).
		Order(ent.Desc(renderjob.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

// GetPublishedAssets returns the assets of the most recent COMPLETED job for
// a video.
func (s *Service) GetPublishedAssets(ctx context.Context, videoID string) (models.RenderAssets, error) {
	job, err := s.client.RenderJob.Query().
		Where(
			renderjob.VideoIDEQ(videoID),
			renderjob.StatusEQ(renderjob.StatusCompleted),
		).
		Order(ent.Desc(renderjob.FieldFinishedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return models.RenderAssets{}, ErrJobNotFound
	}
	if err != nil {
		return models.RenderAssets{}, fmt.Errorf("query published assets: %w", err)
	}
	return models.AssetsFromMap(job.Assets), nil
}

// LatestProcessingJob returns the newest PROCESSING job for a video, used by
// the WebSocket handshake to resolve an implicit job id.
func (s *Service) LatestProcessingJob(ctx context.Context, videoID string) (*ent.RenderJob, error) {
	job, err := s.client.RenderJob.Query().
		Where(
			renderjob.VideoIDEQ(videoID),
			renderjob.StatusEQ(renderjob.StatusProcessing),
		).
		Order(ent.Desc(renderjob.FieldCreatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query processing job: %w", err)
	}
	return job, nil
}

// RecoverOrphans marks PROCESSING jobs from a previous process run as FAILED.
// Runs once at boot, before the HTTP server accepts work; the step loop is
// in-process, so a PROCESSING row at boot can have no live runner.
func (s *Service) RecoverOrphans(ctx context.Context) (int, error) {
	n, err := s.client.RenderJob.Update().
		Where(renderjob.StatusEQ(renderjob.StatusProcessing)).
		SetStatus(renderjob.StatusFailed).
		SetErrorCode(ErrorCodeRender).
		SetErrorMessage("interrupted by gateway restart").
		SetFinishedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("recover orphaned jobs: %w", err)
	}
	if n > 0 {
		s.logger.Warn("Marked orphaned render jobs failed", "count", n)
	}
	return n, nil
}

// launch hands the job to the runner. Without a runner (tests) the job stays
// PROCESSING for the test to inspect.
func (s *Service) launch(job *ent.RenderJob, spec *models.RenderSpec) {
	if s.runner == nil {
		return
	}
	go s.runner.Run(job.ID, spec)
}

func (s *Service) publish(job *ent.RenderJob, message string) {
	if s.bus == nil {
		return
	}
	ev := progress.Event{
		JobID:    job.ID,
		VideoID:  job.VideoID,
		Status:   StatusLabel(job.Status),
		Progress: job.Progress,
		Message:  message,
	}
	if job.Step != nil {
		ev.Step = StepLabel(*job.Step)
	}
	s.bus.Publish(ev)
}

func isTerminal(status renderjob.Status) bool {
	switch status {
	case renderjob.StatusCompleted, renderjob.StatusFailed, renderjob.StatusCancelled:
		return true
	}
	return false
}

// specToSnapshot stores the spec as the JSON object shape of the snapshot
// column.
func specToSnapshot(spec *models.RenderSpec) (map[string]interface{}, error) {
	raw, err := json.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("marshal render spec: %w", err)
	}
	var snapshot map[string]interface{}
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("decode render spec snapshot: %w", err)
	}
	return snapshot, nil
}

func specFromSnapshot(snapshot map[string]interface{}) (*models.RenderSpec, error) {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	var spec models.RenderSpec
	if err := json.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if len(spec.Scenes) == 0 {
		return nil, ErrNoRenderSpecForRetry
	}
	return &spec, nil
}
