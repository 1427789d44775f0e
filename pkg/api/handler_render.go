package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/saramhq/aegis/ent"
	"github.com/saramhq/aegis/pkg/models"
	"github.com/saramhq/aegis/pkg/render"
)

// jobResponse is the API view of a render job. Enum values are uppercase on
// the wire.
type jobResponse struct {
	JobID        string            `json:"job_id"`
	VideoID      string            `json:"video_id"`
	ScriptID     string            `json:"script_id"`
	Status       string            `json:"status"`
	Step         string            `json:"step,omitempty"`
	Progress     int               `json:"progress"`
	Message      string            `json:"message,omitempty"`
	ErrorCode    string            `json:"error_code,omitempty"`
	ErrorMessage string            `json:"error_message,omitempty"`
	Assets       map[string]string `json:"assets,omitempty"`
	CreatedBy    string            `json:"created_by,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	StartedAt    *time.Time        `json:"started_at,omitempty"`
	FinishedAt   *time.Time        `json:"finished_at,omitempty"`
}

func toJobResponse(job *ent.RenderJob) jobResponse {
	resp := jobResponse{
		JobID:     job.ID,
		VideoID:   job.VideoID,
		ScriptID:  job.ScriptID,
		Status:    render.StatusLabel(job.Status),
		Progress:  job.Progress,
		Assets:    job.Assets,
		CreatedAt: job.CreatedAt,
		UpdatedAt: job.UpdatedAt,
	}
	if job.Step != nil {
		resp.Step = render.StepLabel(*job.Step)
	}
	if job.Message != nil {
		resp.Message = *job.Message
	}
	if job.ErrorCode != nil {
		resp.ErrorCode = *job.ErrorCode
	}
	if job.ErrorMessage != nil {
		resp.ErrorMessage = *job.ErrorMessage
	}
	if job.CreatedBy != nil {
		resp.CreatedBy = *job.CreatedBy
	}
	resp.StartedAt = job.StartedAt
	resp.FinishedAt = job.FinishedAt
	return resp
}

// createJobResponse is the job view plus the idempotency outcome, so callers
// can tell a fresh job from an already-running one.
type createJobResponse struct {
	jobResponse
	Created bool `json:"created"`
}

// handleCreateJob serves POST /internal/ai/render-jobs. Creation is
// idempotent per video: a new job is accepted with 202 and created=true, an
// existing non-terminal job comes back as 200 with created=false.
func (s *Server) handleCreateJob(c *gin.Context) {
	var req createRenderJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, "invalid JSON body: "+err.Error())
		return
	}
	if err := req.validate(); err != nil {
		failValidation(c, err.Error())
		return
	}

	job, created, err := s.deps.Render.CreateJob(c.Request.Context(), req.VideoID, req.ScriptID, req.CreatedBy)
	if err != nil {
		failFromError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusAccepted
	}
	c.JSON(status, createJobResponse{jobResponse: toJobResponse(job), Created: created})
}

// handleStartJob serves POST /ai/video/job/{job_id}/start.
func (s *Server) handleStartJob(c *gin.Context) {
	job, err := s.deps.Render.StartJob(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		failFromError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, toJobResponse(job))
}

// handleRetryJob serves POST /ai/video/job/{job_id}/retry.
func (s *Server) handleRetryJob(c *gin.Context) {
	job, err := s.deps.Render.RetryJob(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		failFromError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, toJobResponse(job))
}

// handleCancelJob serves POST /api/v2/videos/{video_id}/render-jobs/{job_id}/cancel.
func (s *Server) handleCancelJob(c *gin.Context) {
	job, err := s.deps.Render.CancelJob(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		failFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, toJobResponse(job))
}

// handleListJobs serves GET /api/v2/videos/{video_id}/render-jobs.
func (s *Server) handleListJobs(c *gin.Context) {
	jobs, err := s.deps.Render.ListJobs(c.Request.Context(), c.Param("video_id"))
	if err != nil {
		failFromError(c, err)
		return
	}
	out := make([]jobResponse, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, toJobResponse(job))
	}
	c.JSON(http.StatusOK, gin.H{"jobs": out})
}

// handleGetJob serves GET /api/v2/videos/{video_id}/render-jobs/{job_id}.
func (s *Server) handleGetJob(c *gin.Context) {
	job, err := s.deps.Render.GetJob(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		failFromError(c, err)
		return
	}
	if job.VideoID != c.Param("video_id") {
		failFromError(c, render.ErrJobNotFound)
		return
	}
	c.JSON(http.StatusOK, toJobResponse(job))
}

// handlePublishedAssets serves GET /api/v2/videos/{video_id}/assets/published.
func (s *Server) handlePublishedAssets(c *gin.Context) {
	assets, err := s.deps.Render.GetPublishedAssets(c.Request.Context(), c.Param("video_id"))
	if err != nil {
		failFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, publishedAssetsResponse{
		VideoID: c.Param("video_id"),
		Assets:  assets,
	})
}

type publishedAssetsResponse struct {
	VideoID string              `json:"video_id"`
	Assets  models.RenderAssets `json:"assets"`
}
