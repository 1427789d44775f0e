package sourceset

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saramhq/aegis/pkg/backend"
	"github.com/saramhq/aegis/pkg/generators"
	"github.com/saramhq/aegis/pkg/models"
)

type fakeScripts struct {
	mu       sync.Mutex
	err      error
	requests []generators.ScriptRequest
	block    chan struct{}
}

func (f *fakeScripts) Generate(ctx context.Context, req generators.ScriptRequest) (*models.RenderSpec, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return nil, f.err
	}
	return &models.RenderSpec{
		Title:            req.Title,
		TotalDurationSec: 60,
		Scenes:           []models.Scene{{SceneID: "scene-1", Narration: "내레이션", DurationSec: 60}},
	}, nil
}

type fakeNotifier struct {
	mu      sync.Mutex
	err     error
	results []backend.SourceSetResult
}

func (f *fakeNotifier) NotifySourceSetComplete(ctx context.Context, result backend.SourceSetResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results = append(f.results, result)
	return f.err
}

func (f *fakeNotifier) callbacks() []backend.SourceSetResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]backend.SourceSetResult, len(f.results))
	copy(out, f.results)
	return out
}

func startRequest() StartRequest {
	return StartRequest{
		Title: "연차 제도 안내",
		Documents: []Document{
			{DocID: "doc-1", Title: "연차 규정", Text: "연차는 15일."},
			{DocID: "doc-2", Text: "이월은 불가."},
		},
	}
}

func waitForTerminal(t *testing.T, tr *Tracker, id string) *Status {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s := tr.GetStatus(id); s != nil &&
			(s.Status == StatusCompleted || s.Status == StatusFailed) {
			return s
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("pipeline for %s never reached a terminal status", id)
	return nil
}

func TestPipelineCompletesAndNotifies(t *testing.T) {
	scripts := &fakeScripts{}
	notifier := &fakeNotifier{}
	tr := NewTracker(scripts, notifier, time.Minute)

	status, err := tr.Start("set-1", startRequest())
	require.NoError(t, err)
	assert.Equal(t, "set-1", status.SourceSetID)

	final := waitForTerminal(t, tr, "set-1")
	assert.Equal(t, StatusCompleted, final.Status)
	assert.NotEmpty(t, final.ScriptID)
	require.NotNil(t, final.Script)
	assert.Equal(t, final.ScriptID, final.Script.ScriptID)
	assert.NotNil(t, final.FinishedAt)

	// Both documents reach the generator, newest title wins.
	require.Len(t, scripts.requests, 1)
	assert.Equal(t, "연차 제도 안내", scripts.requests[0].Title)
	assert.Contains(t, scripts.requests[0].DocumentText, "연차는 15일.")
	assert.Contains(t, scripts.requests[0].DocumentText, "이월은 불가.")

	results := notifier.callbacks()
	require.Len(t, results, 1)
	assert.Equal(t, StatusCompleted, results[0].Status)
	assert.Equal(t, final.ScriptID, results[0].ScriptID)
}

func TestPipelineFailureNotifiesWithErrorCode(t *testing.T) {
	scripts := &fakeScripts{err: errors.New("llm down")}
	notifier := &fakeNotifier{}
	tr := NewTracker(scripts, notifier, time.Minute)

	_, err := tr.Start("set-1", startRequest())
	require.NoError(t, err)

	final := waitForTerminal(t, tr, "set-1")
	assert.Equal(t, StatusFailed, final.Status)
	assert.Equal(t, ErrorCodeScriptFailed, final.ErrorCode)
	assert.Contains(t, final.ErrorDetail, "llm down")

	results := notifier.callbacks()
	require.Len(t, results, 1)
	assert.Equal(t, StatusFailed, results[0].Status)
	assert.Equal(t, ErrorCodeScriptFailed, results[0].ErrorCode)
}

func TestPipelineEmptyDocumentsFails(t *testing.T) {
	tr := NewTracker(&fakeScripts{}, &fakeNotifier{}, time.Minute)

	_, err := tr.Start("set-1", StartRequest{Title: "t"})
	assert.Error(t, err, "no documents rejected synchronously")

	_, err = tr.Start("set-2", StartRequest{
		Documents: []Document{{DocID: "d", Text: "   "}},
	})
	require.NoError(t, err)
	final := waitForTerminal(t, tr, "set-2")
	assert.Equal(t, StatusFailed, final.Status)
	assert.Equal(t, ErrorCodeEmptySourceSet, final.ErrorCode)
}

func TestPipelineRejectsConcurrentStart(t *testing.T) {
	scripts := &fakeScripts{block: make(chan struct{})}
	tr := NewTracker(scripts, &fakeNotifier{}, time.Minute)

	_, err := tr.Start("set-1", startRequest())
	require.NoError(t, err)

	_, err = tr.Start("set-1", startRequest())
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	close(scripts.block)
	waitForTerminal(t, tr, "set-1")

	// Terminal runs can be restarted.
	scripts.block = nil
	_, err = tr.Start("set-1", startRequest())
	assert.NoError(t, err)
}

func TestPipelineCallbackFailureKeepsCompleted(t *testing.T) {
	tr := NewTracker(&fakeScripts{}, &fakeNotifier{err: errors.New("backend down")}, time.Minute)

	_, err := tr.Start("set-1", startRequest())
	require.NoError(t, err)

	final := waitForTerminal(t, tr, "set-1")
	assert.Equal(t, StatusCompleted, final.Status)
	assert.NotEmpty(t, final.ScriptID)
}

func TestGetStatusUnknownID(t *testing.T) {
	tr := NewTracker(&fakeScripts{}, &fakeNotifier{}, time.Minute)
	assert.Nil(t, tr.GetStatus("missing"))
}
