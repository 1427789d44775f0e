package api

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saramhq/aegis/ent/renderjob"
	"github.com/saramhq/aegis/pkg/config"
	"github.com/saramhq/aegis/pkg/progress"
)

func wsURL(httpURL, path string) string {
	return strings.Replace(httpURL, "http://", "ws://", 1) + path
}

func dialProgress(t *testing.T, h *harness, path string) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	conn, _, err := websocket.Dial(ctx, wsURL(h.srv.URL, path), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func TestRenderProgressWS(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})
	h.render.job("job-1", "video-1", renderjob.StatusProcessing)

	conn := dialProgress(t, h, "/ws/videos/video-1/render-progress?job_id=job-1")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var hello wsConnectedEvent
	require.NoError(t, wsjson.Read(ctx, conn, &hello))
	assert.Equal(t, "connected", hello.Type)
	assert.Equal(t, "video-1", hello.VideoID)
	assert.Equal(t, "job-1", hello.JobID)

	// Subscription is established after the handshake frame.
	time.Sleep(100 * time.Millisecond)
	h.bus.Publish(progress.Event{
		JobID:    "job-1",
		VideoID:  "video-1",
		Status:   "PROCESSING",
		Step:     "GENERATE_TTS",
		Progress: 35,
	})

	var ev progress.Event
	require.NoError(t, wsjson.Read(ctx, conn, &ev))
	assert.Equal(t, "GENERATE_TTS", ev.Step)
	assert.Equal(t, 35, ev.Progress)

	h.bus.Publish(progress.Event{
		JobID:    "job-1",
		VideoID:  "video-1",
		Status:   "COMPLETED",
		Progress: 100,
	})
	require.NoError(t, wsjson.Read(ctx, conn, &ev))
	assert.Equal(t, "COMPLETED", ev.Status)

	// Terminal event closes the stream from the server side.
	err := wsjson.Read(ctx, conn, &ev)
	require.Error(t, err)
	assert.Equal(t, websocket.StatusNormalClosure, websocket.CloseStatus(err))
}

func TestRenderProgressWSFallsBackToLatestProcessingJob(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})
	h.render.job("job-7", "video-1", renderjob.StatusProcessing)

	conn := dialProgress(t, h, "/ws/videos/video-1/render-progress")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var hello wsConnectedEvent
	require.NoError(t, wsjson.Read(ctx, conn, &hello))
	assert.Equal(t, "job-7", hello.JobID)
}

func TestRenderProgressWSRequiresToken(t *testing.T) {
	h := newHarness(t, config.ServerConfig{APIToken: "secret"})
	h.render.job("job-1", "video-1", renderjob.StatusProcessing)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, resp, err := websocket.Dial(ctx, wsURL(h.srv.URL, "/ws/videos/video-1/render-progress?job_id=job-1"), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	conn, _, err := websocket.Dial(ctx, wsURL(h.srv.URL, "/ws/videos/video-1/render-progress?job_id=job-1"),
		&websocket.DialOptions{HTTPHeader: http.Header{"Authorization": []string{"Bearer secret"}}})
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	var hello wsConnectedEvent
	require.NoError(t, wsjson.Read(ctx, conn, &hello))
	assert.Equal(t, "connected", hello.Type)
}

func TestRenderProgressWSNoLiveJob(t *testing.T) {
	h := newHarness(t, config.ServerConfig{})

	conn := dialProgress(t, h, "/ws/videos/video-1/render-progress")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var hello wsConnectedEvent
	require.NoError(t, wsjson.Read(ctx, conn, &hello))
	assert.Equal(t, "connected", hello.Type)
	assert.Empty(t, hello.JobID)
}
