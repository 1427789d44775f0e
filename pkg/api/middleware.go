package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/saramhq/aegis/pkg/telemetry"
)

// internalTokenHeader carries the service-to-service token on /internal/*.
const internalTokenHeader = "X-Internal-Token"

// requireAPIToken authenticates public endpoints with a bearer token. An
// empty configured token disables the check (local development).
func requireAPIToken(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}
		header := c.GetHeader("Authorization")
		presented, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || presented != token {
			fail(c, http.StatusUnauthorized, ErrorCodeUnauthorized, "missing or invalid API token")
			return
		}
		c.Next()
	}
}

// requireInternalToken authenticates the internal surface.
func requireInternalToken(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}
		if c.GetHeader(internalTokenHeader) != token {
			fail(c, http.StatusUnauthorized, ErrorCodeUnauthorized, "missing or invalid internal token")
			return
		}
		c.Next()
	}
}

// TelemetryFlusher forwards a request's queued events.
type TelemetryFlusher interface {
	Flush(ctx context.Context, rc *telemetry.RequestContext)
}

// telemetryMiddleware gives every request a fresh telemetry context and
// flushes whatever the handlers queued once the response is written. For
// streaming responses the handler returns only after the last byte, so the
// flush runs after stream cleanup either way.
func telemetryMiddleware(emitter TelemetryFlusher) gin.HandlerFunc {
	return func(c *gin.Context) {
		rc := telemetry.NewRequestContext(
			c.GetHeader("X-Conversation-Id"),
			c.GetHeader("X-User-Id"),
			c.GetHeader("X-Dept-Id"),
		)
		c.Request = c.Request.WithContext(telemetry.WithContext(c.Request.Context(), rc))
		c.Next()

		if emitter != nil {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			emitter.Flush(flushCtx, rc)
		}
	}
}

// requestLogger logs one line per request in the structured format used
// across the gateway.
func requestLogger() gin.HandlerFunc {
	logger := slog.With("component", "http")
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		logger.Info("Request handled",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency_ms", time.Since(started).Milliseconds(),
		)
	}
}
