package render

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saramhq/aegis/ent"
	"github.com/saramhq/aegis/ent/renderjob"
	"github.com/saramhq/aegis/pkg/config"
	"github.com/saramhq/aegis/pkg/media"
	"github.com/saramhq/aegis/pkg/models"
	"github.com/saramhq/aegis/pkg/progress"
	"github.com/saramhq/aegis/pkg/tts"
)

type fakeSynth struct {
	err      error
	duration float64
	texts    []string
}

func (f *fakeSynth) Synthesize(ctx context.Context, text string) (*tts.Synthesis, error) {
	f.texts = append(f.texts, text)
	if f.err != nil {
		return nil, f.err
	}
	return &tts.Synthesis{Audio: []byte("mp3-bytes"), DurationSec: f.duration}, nil
}

type fakeComposer struct {
	composeErr error
	inputs     []media.ComposeInput
}

func (f *fakeComposer) Compose(ctx context.Context, in media.ComposeInput) error {
	f.inputs = append(f.inputs, in)
	if f.composeErr != nil {
		return f.composeErr
	}
	return os.WriteFile(in.OutputPath, []byte("mp4-bytes"), 0o644)
}

func (f *fakeComposer) ExtractThumbnail(ctx context.Context, videoPath, outputPath string) error {
	return os.WriteFile(outputPath, []byte("jpg-bytes"), 0o644)
}

type fakeStore struct {
	mu    sync.Mutex
	keys  []string
	err   error
	onPut func(key string)
}

func (f *fakeStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, key)
	if f.onPut != nil {
		f.onPut(key)
	}
	return "https://cdn.example.com/" + key, nil
}

type runnerHarness struct {
	runner *Runner
	client *ent.Client
	specs  *fakeSpecs
	synth  *fakeSynth
	comp   *fakeComposer
	store  *fakeStore
	bus    *progress.Bus
}

func newRunnerHarness(t *testing.T) *runnerHarness {
	t.Helper()
	h := &runnerHarness{
		client: newTestClient(t),
		specs:  &fakeSpecs{},
		synth:  &fakeSynth{duration: 20},
		comp:   &fakeComposer{},
		store:  &fakeStore{},
		bus:    progress.NewBus(),
	}
	cfg := config.RenderConfig{WorkDir: t.TempDir(), StepTimeout: 30 * time.Second}
	h.runner = NewRunner(cfg, h.client, h.specs, h.bus, h.synth, nil, h.comp, h.store)
	return h
}

// processingJob inserts a job already in PROCESSING, the state the service
// leaves it in before handing it to the runner.
func (h *runnerHarness) processingJob(t *testing.T, spec *models.RenderSpec) *ent.RenderJob {
	t.Helper()
	snapshot, err := specToSnapshot(spec)
	require.NoError(t, err)
	return h.client.RenderJob.Create().
		SetID("job-1").
		SetVideoID(spec.VideoID).
		SetScriptID(spec.ScriptID).
		SetStatus(renderjob.StatusProcessing).
		SetRenderSpecSnapshot(snapshot).
		SetStartedAt(time.Now().UTC()).
		SaveX(context.Background())
}

func drainEvents(sub *progress.Subscription) []progress.Event {
	var events []progress.Event
	for {
		select {
		case ev := <-sub.C:
			events = append(events, ev)
		default:
			return events
		}
	}
}

func TestRunnerCompletesJob(t *testing.T) {
	h := newRunnerHarness(t)
	spec := testSpec()
	job := h.processingJob(t, spec)

	sub := h.bus.Subscribe(job.ID)
	defer h.bus.Unsubscribe(sub)

	h.runner.Run(job.ID, spec)

	done := h.client.RenderJob.GetX(context.Background(), job.ID)
	assert.Equal(t, renderjob.StatusCompleted, done.Status)
	assert.Equal(t, 100, done.Progress)
	require.NotNil(t, done.FinishedAt)
	assert.Equal(t, "https://cdn.example.com/videos/video-1/script-1/job-1/video.mp4", done.Assets["video_url"])
	assert.Equal(t, "https://cdn.example.com/videos/video-1/script-1/job-1/subtitles.srt", done.Assets["subtitle_url"])
	assert.Equal(t, "https://cdn.example.com/videos/video-1/script-1/job-1/thumb.jpg", done.Assets["thumbnail_url"])

	// Both narrations go to TTS in scene order.
	require.Len(t, h.synth.texts, 1)
	assert.Contains(t, h.synth.texts[0], spec.Scenes[0].Narration)
	assert.Contains(t, h.synth.texts[0], spec.Scenes[1].Narration)

	// No slide scenes: the composer falls back to the solid background.
	require.Len(t, h.comp.inputs, 1)
	assert.Empty(t, h.comp.inputs[0].SlideListPath)
	assert.NotEmpty(t, h.comp.inputs[0].AudioPath)
	assert.NotEmpty(t, h.comp.inputs[0].SubtitlePath)

	results := h.specs.callbacks()
	require.Len(t, results, 1)
	assert.Equal(t, "COMPLETED", results[0].Status)
	assert.Equal(t, job.ID, results[0].JobID)
	assert.Equal(t, "video-1", results[0].VideoID)
	assert.Equal(t, 20.0, results[0].DurationSec)
	assert.NotEmpty(t, results[0].Assets.VideoURL)
}

func TestRunnerProgressIsMonotonic(t *testing.T) {
	h := newRunnerHarness(t)
	spec := testSpec()
	job := h.processingJob(t, spec)

	sub := h.bus.Subscribe(job.ID)
	defer h.bus.Unsubscribe(sub)

	h.runner.Run(job.ID, spec)

	events := drainEvents(sub)
	require.NotEmpty(t, events)

	last := -1
	var steps []string
	for _, ev := range events {
		assert.GreaterOrEqual(t, ev.Progress, last, "progress went backwards at step %s", ev.Step)
		last = ev.Progress
		if ev.Step != "" && (len(steps) == 0 || steps[len(steps)-1] != ev.Step) {
			steps = append(steps, ev.Step)
		}
	}
	assert.Equal(t, 100, events[len(events)-1].Progress)
	assert.Equal(t, "COMPLETED", events[len(events)-1].Status)

	// render_slides is skipped when no scene asks for slides.
	assert.Equal(t, []string{
		"VALIDATE_SCRIPT", "GENERATE_TTS", "GENERATE_SUBTITLE",
		"COMPOSE_VIDEO", "UPLOAD_ASSETS", "FINALIZE",
	}, steps)
}

func TestRunnerFailsOnEmptyNarration(t *testing.T) {
	h := newRunnerHarness(t)
	spec := testSpec()
	spec.Scenes[1].Narration = "   "
	job := h.processingJob(t, spec)

	h.runner.Run(job.ID, spec)

	failed := h.client.RenderJob.GetX(context.Background(), job.ID)
	assert.Equal(t, renderjob.StatusFailed, failed.Status)
	require.NotNil(t, failed.ErrorCode)
	assert.Equal(t, ErrorCodeRender, *failed.ErrorCode)
	require.NotNil(t, failed.ErrorMessage)
	assert.Contains(t, *failed.ErrorMessage, "scene 2")

	results := h.specs.callbacks()
	require.Len(t, results, 1)
	assert.Equal(t, "FAILED", results[0].Status)
	assert.Equal(t, ErrorCodeRender, results[0].ErrorCode)

	// The pipeline never reached TTS.
	assert.Empty(t, h.synth.texts)
}

func TestRunnerFailsWhenTTSUnavailable(t *testing.T) {
	h := newRunnerHarness(t)
	h.synth.err = errors.New("tts service returned HTTP 503")
	spec := testSpec()
	job := h.processingJob(t, spec)

	h.runner.Run(job.ID, spec)

	failed := h.client.RenderJob.GetX(context.Background(), job.ID)
	assert.Equal(t, renderjob.StatusFailed, failed.Status)
	require.NotNil(t, failed.ErrorMessage)
	assert.Contains(t, *failed.ErrorMessage, "GENERATE_TTS")
}

func TestRunnerFailsWhenComposeFails(t *testing.T) {
	h := newRunnerHarness(t)
	h.comp.composeErr = errors.New("ffmpeg compose failed")
	spec := testSpec()
	job := h.processingJob(t, spec)

	h.runner.Run(job.ID, spec)

	failed := h.client.RenderJob.GetX(context.Background(), job.ID)
	assert.Equal(t, renderjob.StatusFailed, failed.Status)
	assert.Empty(t, h.store.keys, "failed compose must not upload anything")
}

func TestRunnerStopsOnCancelledJob(t *testing.T) {
	h := newRunnerHarness(t)
	spec := testSpec()
	job := h.processingJob(t, spec)

	_, err := h.client.RenderJob.UpdateOneID(job.ID).
		SetStatus(renderjob.StatusCancelled).
		Save(context.Background())
	require.NoError(t, err)

	h.runner.Run(job.ID, spec)

	after := h.client.RenderJob.GetX(context.Background(), job.ID)
	assert.Equal(t, renderjob.StatusCancelled, after.Status)
	assert.Empty(t, h.synth.texts)
	assert.Empty(t, h.specs.callbacks(), "cancelled jobs send no completion callback")
}

func TestRunnerCancelDuringUploadStaysCancelled(t *testing.T) {
	h := newRunnerHarness(t)
	spec := testSpec()
	job := h.processingJob(t, spec)

	// Cancel lands after the first asset is uploaded.
	h.store.onPut = func(string) {
		h.client.RenderJob.UpdateOneID(job.ID).
			SetStatus(renderjob.StatusCancelled).
			SaveX(context.Background())
	}

	h.runner.Run(job.ID, spec)

	after := h.client.RenderJob.GetX(context.Background(), job.ID)
	assert.Equal(t, renderjob.StatusCancelled, after.Status)
	assert.Nil(t, after.ErrorCode)
	assert.Len(t, h.store.keys, 1, "no further uploads after the cancel")
	assert.Empty(t, h.specs.callbacks(), "cancelled jobs send no completion callback")
}

func TestRunnerFailsOnZeroDurationScene(t *testing.T) {
	h := newRunnerHarness(t)
	spec := testSpec()
	spec.Scenes[0].DurationSec = 0
	job := h.processingJob(t, spec)

	h.runner.Run(job.ID, spec)

	failed := h.client.RenderJob.GetX(context.Background(), job.ID)
	assert.Equal(t, renderjob.StatusFailed, failed.Status)
	require.NotNil(t, failed.ErrorMessage)
	assert.Contains(t, *failed.ErrorMessage, "non-positive duration")
	assert.Empty(t, h.synth.texts)
}

func TestRunnerCleansWorkDir(t *testing.T) {
	h := newRunnerHarness(t)
	spec := testSpec()
	job := h.processingJob(t, spec)

	h.runner.Run(job.ID, spec)

	workDir := filepath.Join(h.runner.cfg.WorkDir, job.ID)
	_, err := os.Stat(workDir)
	assert.True(t, os.IsNotExist(err))
}

func TestRunnerSlideStepBuildsConcatList(t *testing.T) {
	h := newRunnerHarness(t)
	h.runner.slides = slideRendererFunc(func(ctx context.Context, scenes []models.Scene, dir string) ([]string, error) {
		paths := make([]string, len(scenes))
		for i := range scenes {
			p := filepath.Join(dir, "slide"+string(rune('1'+i))+".png")
			if err := os.WriteFile(p, []byte("png"), 0o644); err != nil {
				return nil, err
			}
			paths[i] = p
		}
		return paths, nil
	})

	spec := testSpec()
	for i := range spec.Scenes {
		spec.Scenes[i].VisualSpec = map[string]interface{}{"type": "slide"}
	}
	job := h.processingJob(t, spec)

	h.runner.Run(job.ID, spec)

	done := h.client.RenderJob.GetX(context.Background(), job.ID)
	require.Equal(t, renderjob.StatusCompleted, done.Status)
	require.Len(t, h.comp.inputs, 1)
	assert.True(t, strings.HasSuffix(h.comp.inputs[0].SlideListPath, "slides.txt"))
}

type slideRendererFunc func(ctx context.Context, scenes []models.Scene, dir string) ([]string, error)

func (f slideRendererFunc) RenderSlides(ctx context.Context, scenes []models.Scene, dir string) ([]string, error) {
	return f(ctx, scenes, dir)
}

func TestRunnerRetryAfterFailureCompletes(t *testing.T) {
	h := newRunnerHarness(t)
	spec := testSpec()
	job := h.processingJob(t, spec)

	h.synth.err = errors.New("tts down")
	h.runner.Run(job.ID, spec)
	require.Equal(t, renderjob.StatusFailed, h.client.RenderJob.GetX(context.Background(), job.ID).Status)

	// Retry through the service: it restores the snapshot and relaunches.
	h.synth.err = nil
	svc := NewService(h.client, h.specs, h.bus, nil)
	retried, err := svc.RetryJob(context.Background(), job.ID)
	require.NoError(t, err)

	restored, err := specFromSnapshot(retried.RenderSpecSnapshot)
	require.NoError(t, err)
	h.runner.Run(job.ID, restored)

	done := h.client.RenderJob.GetX(context.Background(), job.ID)
	assert.Equal(t, renderjob.StatusCompleted, done.Status)
	assert.Equal(t, 100, done.Progress)
}
