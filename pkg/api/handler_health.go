package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/saramhq/aegis/pkg/version"
)

// readyCheckTimeout bounds each dependency probe.
const readyCheckTimeout = 3 * time.Second

// handleHealth serves GET /health: process liveness only.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "version": version.Full()})
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// handleReady serves GET /health/ready: live reachability of the gateway's
// dependencies. Any failing check turns the probe 503 but every result is
// still reported.
func (s *Server) handleReady(c *gin.Context) {
	results := make(map[string]dependencyStatus, len(s.deps.Readiness))
	var mu sync.Mutex
	var wg sync.WaitGroup
	healthy := true

	for name, check := range s.deps.Readiness {
		wg.Add(1)
		go func(name string, check ReadyCheck) {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(c.Request.Context(), readyCheckTimeout)
			defer cancel()

			status := dependencyStatus{Status: "ok"}
			if err := check(ctx); err != nil {
				status = dependencyStatus{Status: "unreachable", Error: err.Error()}
			}

			mu.Lock()
			results[name] = status
			if status.Status != "ok" {
				healthy = false
			}
			mu.Unlock()
		}(name, check)
	}
	wg.Wait()

	code := http.StatusOK
	overall := "ready"
	if !healthy {
		code = http.StatusServiceUnavailable
		overall = "not_ready"
	}
	c.JSON(code, gin.H{"status": overall, "dependencies": results})
}
