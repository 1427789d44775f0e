package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/saramhq/aegis/pkg/telemetry"
)

// handleChat serves POST /ai/chat/messages.
func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, "invalid JSON body: "+err.Error())
		return
	}
	turn, err := req.toTurn()
	if err != nil {
		failValidation(c, err.Error())
		return
	}

	rc := telemetry.FromContext(c.Request.Context())
	answer, err := s.deps.Chat.Answer(c.Request.Context(), rc, turn)
	if err != nil {
		failFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, answer)
}

// handleChatStream serves POST /ai/chat/stream as NDJSON. Events are written
// one JSON object per line and flushed immediately; the LLM read stalls while
// a line is unwritten, which is the backpressure path.
func (s *Server) handleChatStream(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, "invalid JSON body: "+err.Error())
		return
	}
	turn, err := req.toTurn()
	if err != nil {
		failValidation(c, err.Error())
		return
	}
	requestID := strings.TrimSpace(req.RequestID)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	c.Header("Content-Type", "application/x-ndjson")
	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	flusher, _ := c.Writer.(http.Flusher)
	encoder := json.NewEncoder(c.Writer)

	rc := telemetry.FromContext(c.Request.Context())
	events := s.deps.Chat.Stream(c.Request.Context(), rc, requestID, turn)
	for ev := range events {
		// Encode appends the newline that terminates the NDJSON line.
		if err := encoder.Encode(ev); err != nil {
			// Client is gone; the request context cancellation stops the
			// pipeline, here we just drain the channel.
			for range events {
			}
			return
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
}
