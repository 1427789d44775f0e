package render

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/saramhq/aegis/ent"
	"github.com/saramhq/aegis/ent/renderjob"
	"github.com/saramhq/aegis/pkg/backend"
	"github.com/saramhq/aegis/pkg/config"
	"github.com/saramhq/aegis/pkg/media"
	"github.com/saramhq/aegis/pkg/metrics"
	"github.com/saramhq/aegis/pkg/models"
	"github.com/saramhq/aegis/pkg/progress"
	"github.com/saramhq/aegis/pkg/storage"
	"github.com/saramhq/aegis/pkg/tts"
)

// Synthesizer is the TTS slice the runner needs.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (*tts.Synthesis, error)
}

// SlideRenderer produces per-scene still images. Optional: visual styles
// without slides compose over a solid background.
type SlideRenderer interface {
	RenderSlides(ctx context.Context, scenes []models.Scene, dir string) ([]string, error)
}

// Composer assembles the final video.
type Composer interface {
	Compose(ctx context.Context, in media.ComposeInput) error
	ExtractThumbnail(ctx context.Context, videoPath, outputPath string) error
}

// Runner executes the step loop of one job. Each step updates the row,
// publishes a progress event, runs, then advances progress to its upper
// bound.
type Runner struct {
	cfg      config.RenderConfig
	client   *ent.Client
	backend  SpecFetcher
	bus      *progress.Bus
	tts      Synthesizer
	slides   SlideRenderer
	composer Composer
	store    storage.Store
	logger   *slog.Logger
}

// NewRunner wires the runner's step dependencies.
func NewRunner(cfg config.RenderConfig, client *ent.Client, specs SpecFetcher, bus *progress.Bus,
	synth Synthesizer, slides SlideRenderer, composer Composer, store storage.Store) *Runner {
	return &Runner{
		cfg:      cfg,
		client:   client,
		backend:  specs,
		bus:      bus,
		tts:      synth,
		slides:   slides,
		composer: composer,
		store:    store,
		logger:   slog.With("component", "render_runner"),
	}
}

// errCancelledMidStep marks a cancellation observed inside a running step.
// The loop stops without touching the job's CANCELLED status.
var errCancelledMidStep = errors.New("job cancelled mid-step")

// step bounds: on success progress advances to the step's upper bound.
var stepBounds = []struct {
	step  renderjob.Step
	bound int
}{
	{renderjob.StepValidateScript, 10},
	{renderjob.StepGenerateTts, 35},
	{renderjob.StepGenerateSubtitle, 45},
	{renderjob.StepRenderSlides, 60},
	{renderjob.StepComposeVideo, 80},
	{renderjob.StepUploadAssets, 95},
	{renderjob.StepFinalize, 100},
}

// runState carries the artefacts between steps of one run.
type runState struct {
	job     *ent.RenderJob
	spec    *models.RenderSpec
	workDir string

	scenes       []models.Scene
	audioPath    string
	audioSec     float64
	subtitlePath string
	slideList    string
	videoPath    string
	thumbPath    string
	assets       models.RenderAssets
}

// Run executes all steps for a PROCESSING job. Blocking; the service
// launches it on its own goroutine.
func (r *Runner) Run(jobID string, spec *models.RenderSpec) {
	ctx := context.Background()

	job, err := r.client.RenderJob.Get(ctx, jobID)
	if err != nil {
		r.logger.Error("Runner could not load job", "job_id", jobID, "error", err)
		return
	}

	workDir := filepath.Join(r.cfg.WorkDir, jobID)
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		r.fail(ctx, job, ErrorCodeRender, fmt.Sprintf("create work dir: %v", err))
		return
	}
	// The runner owns the temp dir on every exit path.
	defer os.RemoveAll(workDir)

	state := &runState{job: job, spec: spec, workDir: workDir, scenes: spec.Scenes}

	for _, sb := range stepBounds {
		if sb.step == renderjob.StepRenderSlides && !wantsSlides(spec) {
			continue
		}

		cancelled, err := r.beginStep(ctx, state, sb.step)
		if err != nil {
			r.logger.Error("Step bookkeeping failed", "job_id", jobID, "step", sb.step, "error", err)
			return
		}
		if cancelled {
			r.logger.Info("Job cancelled, stopping step loop", "job_id", jobID, "step", sb.step)
			return
		}

		stepStarted := time.Now()
		stepCtx, cancel := context.WithTimeout(ctx, r.cfg.StepTimeout)
		err = r.executeStep(stepCtx, state, sb.step)
		cancel()
		metrics.RenderStepDuration.WithLabelValues(string(sb.step)).Observe(time.Since(stepStarted).Seconds())

		if errors.Is(err, errCancelledMidStep) {
			r.logger.Info("Job cancelled mid-step, stopping", "job_id", jobID, "step", sb.step)
			return
		}
		if err != nil {
			r.fail(ctx, state.job, ErrorCodeRender, fmt.Sprintf("%s: %v", StepLabel(sb.step), err))
			return
		}

		if err := r.advance(ctx, state, sb.bound); err != nil {
			r.logger.Error("Progress update failed", "job_id", jobID, "error", err)
			return
		}
	}

	r.complete(ctx, state)
}

// beginStep re-reads the job (cancel check), then records the step start.
func (r *Runner) beginStep(ctx context.Context, state *runState, step renderjob.Step) (cancelled bool, err error) {
	job, err := r.client.RenderJob.Get(ctx, state.job.ID)
	if err != nil {
		return false, err
	}
	if job.Status == renderjob.StatusCancelled {
		return true, nil
	}

	message := stepMessage(step)
	job, err = r.client.RenderJob.UpdateOneID(job.ID).
		SetStep(step).
		SetMessage(message).
		Save(ctx)
	if err != nil {
		return false, err
	}
	state.job = job
	r.publish(job, message)
	return false, nil
}

func (r *Runner) executeStep(ctx context.Context, state *runState, step renderjob.Step) error {
	switch step {
	case renderjob.StepValidateScript:
		return r.validateScript(state)
	case renderjob.StepGenerateTts:
		return r.generateTTS(ctx, state)
	case renderjob.StepGenerateSubtitle:
		return r.generateSubtitle(state)
	case renderjob.StepRenderSlides:
		return r.renderSlides(ctx, state)
	case renderjob.StepComposeVideo:
		return r.composeVideo(ctx, state)
	case renderjob.StepUploadAssets:
		return r.uploadAssets(ctx, state)
	case renderjob.StepFinalize:
		return nil
	default:
		return fmt.Errorf("unknown step %s", step)
	}
}

func (r *Runner) validateScript(state *runState) error {
	if len(state.spec.Scenes) == 0 {
		return ErrEmptyRenderSpec
	}
	for i, scene := range state.spec.Scenes {
		if strings.TrimSpace(scene.Narration) == "" {
			return fmt.Errorf("scene %d has empty narration", i+1)
		}
		if scene.DurationSec <= 0 {
			return fmt.Errorf("scene %d has a non-positive duration", i+1)
		}
		if _, ok := scene.VisualSpec["type"]; len(scene.VisualSpec) > 0 && !ok {
			return fmt.Errorf("scene %d has a visual spec without a type", i+1)
		}
	}
	return nil
}

func (r *Runner) generateTTS(ctx context.Context, state *runState) error {
	narrations := make([]string, 0, len(state.spec.Scenes))
	for _, scene := range state.spec.Scenes {
		narrations = append(narrations, strings.TrimSpace(scene.Narration))
	}

	synthesis, err := r.tts.Synthesize(ctx, strings.Join(narrations, "\n"))
	if err != nil {
		return fmt.Errorf("synthesize narration: %w", err)
	}

	state.audioPath = filepath.Join(state.workDir, "audio.mp3")
	if err := os.WriteFile(state.audioPath, synthesis.Audio, 0o644); err != nil {
		return fmt.Errorf("write audio: %w", err)
	}
	state.audioSec = synthesis.DurationSec
	// The synthesised duration is ground truth for all later timing.
	state.scenes = media.ReconcileDurations(state.spec.Scenes, synthesis.DurationSec)
	return nil
}

func (r *Runner) generateSubtitle(state *runState) error {
	srt := media.BuildSRT(state.scenes)
	state.subtitlePath = filepath.Join(state.workDir, "subtitles.srt")
	if err := os.WriteFile(state.subtitlePath, []byte(srt), 0o644); err != nil {
		return fmt.Errorf("write subtitles: %w", err)
	}
	return nil
}

func (r *Runner) renderSlides(ctx context.Context, state *runState) error {
	if r.slides == nil {
		return nil
	}
	paths, err := r.slides.RenderSlides(ctx, state.scenes, state.workDir)
	if err != nil {
		return fmt.Errorf("render slides: %w", err)
	}
	if len(paths) == 0 {
		return nil
	}

	// ffmpeg concat list: each slide shown for its scene's duration.
	var sb strings.Builder
	for i, p := range paths {
		sb.WriteString(fmt.Sprintf("file '%s'\n", p))
		if i < len(state.scenes) {
			sb.WriteString(fmt.Sprintf("duration %.3f\n", state.scenes[i].DurationSec))
		}
	}
	sb.WriteString(fmt.Sprintf("file '%s'\n", paths[len(paths)-1]))

	state.slideList = filepath.Join(state.workDir, "slides.txt")
	if err := os.WriteFile(state.slideList, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write slide list: %w", err)
	}
	return nil
}

func (r *Runner) composeVideo(ctx context.Context, state *runState) error {
	state.videoPath = filepath.Join(state.workDir, "video.mp4")
	err := r.composer.Compose(ctx, media.ComposeInput{
		AudioPath:     state.audioPath,
		SubtitlePath:  state.subtitlePath,
		SlideListPath: state.slideList,
		DurationSec:   state.audioSec,
		OutputPath:    state.videoPath,
	})
	if err != nil {
		return err
	}

	state.thumbPath = filepath.Join(state.workDir, "thumb.jpg")
	if err := r.composer.ExtractThumbnail(ctx, state.videoPath, state.thumbPath); err != nil {
		return err
	}
	return nil
}

func (r *Runner) uploadAssets(ctx context.Context, state *runState) error {
	uploads := []struct {
		path        string
		filename    string
		contentType string
		target      *string
	}{
		{state.videoPath, "video.mp4", "video/mp4", &state.assets.VideoURL},
		{state.subtitlePath, "subtitles.srt", "text/plain; charset=utf-8", &state.assets.SubtitleURL},
		{state.thumbPath, "thumb.jpg", "image/jpeg", &state.assets.ThumbnailURL},
	}
	for _, u := range uploads {
		if u.path == "" {
			continue
		}
		// Cancellation between uploads: no further external I/O once set.
		job, err := r.client.RenderJob.Get(ctx, state.job.ID)
		if err != nil {
			return err
		}
		if job.Status == renderjob.StatusCancelled {
			return errCancelledMidStep
		}

		data, err := os.ReadFile(u.path)
		if err != nil {
			return fmt.Errorf("read %s: %w", u.filename, err)
		}
		key := storage.AssetKey(state.job.VideoID, state.job.ScriptID, state.job.ID, u.filename)
		url, err := r.store.Put(ctx, key, data, u.contentType)
		if err != nil {
			return err
		}
		*u.target = url
	}
	return nil
}

// advance moves progress to the step's upper bound. Progress never moves
// backwards.
func (r *Runner) advance(ctx context.Context, state *runState, bound int) error {
	if bound < state.job.Progress {
		return nil
	}
	job, err := r.client.RenderJob.UpdateOneID(state.job.ID).
		SetProgress(bound).
		Save(ctx)
	if err != nil {
		return err
	}
	state.job = job
	r.publish(job, "")
	return nil
}

func (r *Runner) complete(ctx context.Context, state *runState) {
	// Conditional on PROCESSING: a cancel that raced the last step keeps
	// its CANCELLED status and suppresses the callback.
	n, err := r.client.RenderJob.Update().
		Where(renderjob.IDEQ(state.job.ID), renderjob.StatusEQ(renderjob.StatusProcessing)).
		SetStatus(renderjob.StatusCompleted).
		SetProgress(100).
		SetAssets(state.assets.ToMap()).
		SetMessage("render completed").
		SetFinishedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.logger.Error("Completion update failed", "job_id", state.job.ID, "error", err)
		return
	}
	if n == 0 {
		r.logger.Info("Job no longer processing, completion skipped", "job_id", state.job.ID)
		return
	}
	job, err := r.client.RenderJob.Get(ctx, state.job.ID)
	if err != nil {
		r.logger.Error("Completed job reload failed", "job_id", state.job.ID, "error", err)
		return
	}

	metrics.RenderJobs.WithLabelValues(StatusLabel(job.Status)).Inc()
	r.publish(job, "render completed")
	r.callback(job, backend.RenderJobResult{
		JobID:       job.ID,
		VideoID:     job.VideoID,
		Status:      StatusLabel(job.Status),
		Assets:      state.assets,
		DurationSec: state.audioSec,
	})
	r.logger.Info("Render job completed", "job_id", job.ID, "video_id", job.VideoID)
}

func (r *Runner) fail(ctx context.Context, job *ent.RenderJob, code, message string) {
	// Conditional on PROCESSING: never overwrite a concurrent cancel.
	n, err := r.client.RenderJob.Update().
		Where(renderjob.IDEQ(job.ID), renderjob.StatusEQ(renderjob.StatusProcessing)).
		SetStatus(renderjob.StatusFailed).
		SetErrorCode(code).
		SetErrorMessage(message).
		SetFinishedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.logger.Error("Failure update failed", "job_id", job.ID, "error", err)
		return
	}
	if n == 0 {
		r.logger.Info("Job no longer processing, failure skipped", "job_id", job.ID, "error_code", code)
		return
	}
	updated, err := r.client.RenderJob.Get(ctx, job.ID)
	if err != nil {
		r.logger.Error("Failed job reload failed", "job_id", job.ID, "error", err)
		return
	}

	metrics.RenderJobs.WithLabelValues(StatusLabel(updated.Status)).Inc()
	r.publish(updated, message)
	r.callback(updated, backend.RenderJobResult{
		JobID:     updated.ID,
		VideoID:   updated.VideoID,
		Status:    StatusLabel(updated.Status),
		ErrorCode: code,
	})
	r.logger.Error("Render job failed", "job_id", job.ID, "error_code", code, "error", message)
}

// callback posts the terminal result to the backend. Failures are logged
// only; the job keeps its terminal status.
func (r *Runner) callback(job *ent.RenderJob, result backend.RenderJobResult) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := r.backend.NotifyRenderJobComplete(ctx, result); err != nil {
		r.logger.Warn("Completion callback failed", "job_id", job.ID, "error", err)
	}
}

func (r *Runner) publish(job *ent.RenderJob, message string) {
	if r.bus == nil {
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
	r.bus.Publish(ev)
}

// wantsSlides reports whether any scene's visual spec asks for slides.
func wantsSlides(spec *models.RenderSpec) bool {
	for _, scene := range spec.Scenes {
		if t, ok := scene.VisualSpec["type"].(string); ok && t == "slide" {
			return true
		}
	}
	return false
}

func stepMessage(step renderjob.Step) string {
	switch step {
	case renderjob.StepValidateScript:
		return "validating script"
	case renderjob.StepGenerateTts:
		return "generating narration audio"
	case renderjob.StepGenerateSubtitle:
		return "generating subtitles"
	case renderjob.StepRenderSlides:
		return "rendering slides"
	case renderjob.StepComposeVideo:
		return "composing video"
	case renderjob.StepUploadAssets:
		return "uploading assets"
	case renderjob.StepFinalize:
		return "finalizing"
	}
	return string(step)
}
