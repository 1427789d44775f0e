package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saramhq/aegis/ent/renderjob"
	"github.com/saramhq/aegis/pkg/config"
	"github.com/saramhq/aegis/pkg/models"
	"github.com/saramhq/aegis/pkg/render"
)

func TestCreateRenderJob(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})
	body := map[string]string{"video_id": "video-1", "script_id": "script-1", "created_by": "user-1"}

	resp, raw := h.request(t, http.MethodPost, "/internal/ai/render-jobs", body, nil)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var job createJobResponse
	require.NoError(t, json.Unmarshal(raw, &job))
	assert.Equal(t, "job-1", job.JobID)
	assert.Equal(t, "video-1", job.VideoID)
	assert.Equal(t, "QUEUED", job.Status)
	assert.True(t, job.Created)
}

func TestCreateRenderJobIdempotentReturns200(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})
	h.render.created = false

	body := map[string]string{"video_id": "video-1", "script_id": "script-1"}
	resp, raw := h.request(t, http.MethodPost, "/internal/ai/render-jobs", body, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var job createJobResponse
	require.NoError(t, json.Unmarshal(raw, &job))
	assert.False(t, job.Created)
}

func TestCreateRenderJobValidation(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})

	resp, raw := h.request(t, http.MethodPost, "/internal/ai/render-jobs", map[string]string{"video_id": "video-1"}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	var er errorResponse
	require.NoError(t, json.Unmarshal(raw, &er))
	assert.Equal(t, ErrorCodeInvalidRequest, er.ErrorCode)
}

func TestCreateRenderJobScriptNotApproved(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})
	h.render.err = render.ErrScriptNotApproved

	body := map[string]string{"video_id": "video-1", "script_id": "script-1"}
	resp, raw := h.request(t, http.MethodPost, "/internal/ai/render-jobs", body, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var er errorResponse
	require.NoError(t, json.Unmarshal(raw, &er))
	assert.Equal(t, render.ErrorCodeScriptNotApproved, er.ErrorCode)
}

func TestStartRenderJobAccepted(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})
	h.render.job("job-9", "video-1", renderjob.StatusQueued)

	resp, raw := h.request(t, http.MethodPost, "/ai/video/job/job-9/start", nil, nil)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var job jobResponse
	require.NoError(t, json.Unmarshal(raw, &job))
	assert.Equal(t, "PROCESSING", job.Status)
}

func TestStartRenderJobConflictOnBadTransition(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})
	h.render.err = &render.TransitionError{JobID: "job-9", Status: "COMPLETED", Op: "start"}

	resp, raw := h.request(t, http.MethodPost, "/ai/video/job/job-9/start", nil, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var er errorResponse
	require.NoError(t, json.Unmarshal(raw, &er))
	assert.Equal(t, render.ErrorCodeRender, er.ErrorCode)
}

func TestRetryRenderJobWithoutSnapshotConflicts(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})
	h.render.err = render.ErrNoRenderSpecForRetry

	resp, raw := h.request(t, http.MethodPost, "/ai/video/job/job-9/retry", nil, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var er errorResponse
	require.NoError(t, json.Unmarshal(raw, &er))
	assert.Equal(t, render.ErrorCodeNoRenderSpecForRetry, er.ErrorCode)
}

func TestCancelRenderJob(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})
	h.render.job("job-3", "video-1", renderjob.StatusProcessing)

	resp, raw := h.request(t, http.MethodPost, "/api/v2/videos/video-1/render-jobs/job-3/cancel", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var job jobResponse
	require.NoError(t, json.Unmarshal(raw, &job))
	assert.Equal(t, "CANCELLED", job.Status)
}

func TestGetRenderJobNotFound(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})

	resp, raw := h.request(t, http.MethodGet, "/api/v2/videos/video-1/render-jobs/missing", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var er errorResponse
	require.NoError(t, json.Unmarshal(raw, &er))
	assert.Equal(t, render.ErrorCodeJobNotFound, er.ErrorCode)
}

func TestGetRenderJobVideoMismatchIs404(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})
	h.render.job("job-5", "video-other", renderjob.StatusQueued)

	resp, _ := h.request(t, http.MethodGet, "/api/v2/videos/video-1/render-jobs/job-5", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListRenderJobs(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})
	h.render.job("job-1", "video-1", renderjob.StatusCompleted)
	h.render.job("job-2", "video-1", renderjob.StatusQueued)
	h.render.job("job-x", "video-2", renderjob.StatusQueued)

	resp, raw := h.request(t, http.MethodGet, "/api/v2/videos/video-1/render-jobs", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Jobs []jobResponse `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Len(t, body.Jobs, 2)
}

func TestPublishedAssets(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})
	h.render.assets = models.RenderAssets{
		VideoURL:     "https://cdn.example.com/videos/video-1/video.mp4",
		SubtitleURL:  "https://cdn.example.com/videos/video-1/subtitles.srt",
		ThumbnailURL: "https://cdn.example.com/videos/video-1/thumb.jpg",
	}

	resp, raw := h.request(t, http.MethodGet, "/api/v2/videos/video-1/assets/published", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body publishedAssetsResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "video-1", body.VideoID)
	assert.Equal(t, "https://cdn.example.com/videos/video-1/video.mp4", body.Assets.VideoURL)
}

func TestPublishedAssetsNoneIs404(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})

	resp, _ := h.request(t, http.MethodGet, "/api/v2/videos/video-1/assets/published", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
