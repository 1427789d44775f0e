package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saramhq/aegis/pkg/sourceset"
)

// handleSourceSetStart serves POST /internal/ai/source-sets/{id}/start. The
// pipeline runs asynchronously; the response is the accepted initial status.
func (s *Server) handleSourceSetStart(c *gin.Context) {
	var req sourceset.StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, "invalid JSON body: "+err.Error())
		return
	}
	if len(req.Documents) == 0 {
		failValidation(c, "documents are required")
		return
	}

	status, err := s.deps.SourceSets.Start(c.Param("id"), req)
	if err != nil {
		failFromError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, status)
}

// handleSourceSetStatus serves GET /internal/ai/source-sets/{id}/status.
func (s *Server) handleSourceSetStatus(c *gin.Context) {
	status := s.deps.SourceSets.GetStatus(c.Param("id"))
	if status == nil {
		fail(c, http.StatusNotFound, "SOURCE_SET_NOT_FOUND", "source set has no pipeline run")
		return
	}
	c.JSON(http.StatusOK, status)
}
