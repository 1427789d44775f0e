package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/saramhq/aegis/pkg/render"
)

// wsConnectedEvent is the handshake frame sent right after the upgrade.
type wsConnectedEvent struct {
	Type    string `json:"type"`
	VideoID string `json:"video_id"`
	JobID   string `json:"job_id,omitempty"`
}

// wsPingInterval keeps idle progress connections alive through proxies.
const wsPingInterval = 30 * time.Second

// handleRenderProgressWS serves GET /ws/videos/{video_id}/render-progress.
// It runs on the plain ResponseWriter, outside the gin chain: gin's wrapped
// writer marks the response written during the 101 upgrade and then refuses
// the hijack the websocket library needs. The job id comes from the query
// string, or falls back to the video's latest PROCESSING job. Progress events
// are forwarded until the connection closes; terminal events close the stream
// from our side.
func (s *Server) handleRenderProgressWS(w http.ResponseWriter, r *http.Request) {
	if !s.authorizeWS(w, r) {
		return
	}
	videoID := r.PathValue("video_id")

	jobID := r.URL.Query().Get("job_id")
	if jobID == "" {
		job, err := s.deps.Render.LatestProcessingJob(r.Context(), videoID)
		switch {
		case err == nil:
			jobID = job.ID
		case errors.Is(err, render.ErrJobNotFound):
			// No live job: the handshake reports an empty job_id and the
			// connection stays open for nothing to arrive.
		default:
			writeJSONError(w, http.StatusInternalServerError, ErrorCodeInternal, "internal error")
			return
		}
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	ctx := r.Context()
	if err := wsjson.Write(ctx, conn, wsConnectedEvent{
		Type:    "connected",
		VideoID: videoID,
		JobID:   jobID,
	}); err != nil {
		return
	}
	if jobID == "" {
		// Nothing to subscribe to; hold the connection until the client
		// leaves so it can observe the handshake.
		readUntilClosed(ctx, conn)
		return
	}

	sub := s.deps.Bus.Subscribe(jobID)
	defer s.deps.Bus.Unsubscribe(sub)

	// Reads only surface client closure; incoming frames are ignored.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		readUntilClosed(ctx, conn)
	}()

	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-sub.C:
			if !ok {
				return
			}
			if err := wsjson.Write(ctx, conn, ev); err != nil {
				return
			}
			if isTerminalStatus(ev.Status) {
				conn.Close(websocket.StatusNormalClosure, "job finished")
				return
			}
		case <-ticker.C:
			if err := conn.Ping(ctx); err != nil {
				return
			}
		case <-closed:
			return
		case <-ctx.Done():
			return
		}
	}
}

// authorizeWS mirrors requireAPIToken for the raw websocket route. An empty
// configured token disables the check.
func (s *Server) authorizeWS(w http.ResponseWriter, r *http.Request) bool {
	if s.cfg.APIToken == "" {
		return true
	}
	presented, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || presented != s.cfg.APIToken {
		writeJSONError(w, http.StatusUnauthorized, ErrorCodeUnauthorized, "missing or invalid API token")
		return false
	}
	return true
}

func writeJSONError(w http.ResponseWriter, status int, code, detail string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Detail: detail, ErrorCode: code})
}

func readUntilClosed(ctx context.Context, conn *websocket.Conn) {
	for {
		if _, _, err := conn.Read(ctx); err != nil {
			return
		}
	}
}

func isTerminalStatus(status string) bool {
	switch status {
	case "COMPLETED", "FAILED", "CANCELLED":
		return true
	}
	return false
}
