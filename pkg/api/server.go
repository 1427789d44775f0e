// Package api exposes the gateway's HTTP surface: chat, generators, render
// jobs, source sets, WebSocket progress, and the health/metrics endpoints.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/saramhq/aegis/ent"
	"github.com/saramhq/aegis/pkg/chat"
	"github.com/saramhq/aegis/pkg/config"
	"github.com/saramhq/aegis/pkg/generators"
	"github.com/saramhq/aegis/pkg/models"
	"github.com/saramhq/aegis/pkg/progress"
	"github.com/saramhq/aegis/pkg/sourceset"
	"github.com/saramhq/aegis/pkg/telemetry"
)

// ChatService is the chat pipeline slice the handlers need.
type ChatService interface {
	Answer(ctx context.Context, rc *telemetry.RequestContext, turn models.Turn) (*models.ChatAnswer, error)
	Stream(ctx context.Context, rc *telemetry.RequestContext, requestID string, turn models.Turn) <-chan chat.StreamEvent
}

// RenderJobs is the render-job service slice the handlers need.
type RenderJobs interface {
	CreateJob(ctx context.Context, videoID, scriptID, createdBy string) (*ent.RenderJob, bool, error)
	StartJob(ctx context.Context, jobID string) (*ent.RenderJob, error)
	RetryJob(ctx context.Context, jobID string) (*ent.RenderJob, error)
	CancelJob(ctx context.Context, jobID string) (*ent.RenderJob, error)
	GetJob(ctx context.Context, jobID string) (*ent.RenderJob, error)
	ListJobs(ctx context.Context, videoID string) ([]*ent.RenderJob, error)
	GetPublishedAssets(ctx context.Context, videoID string) (models.RenderAssets, error)
	LatestProcessingJob(ctx context.Context, videoID string) (*ent.RenderJob, error)
}

// FAQService generates FAQ sets.
type FAQService interface {
	Generate(ctx context.Context, req generators.FAQRequest) (*generators.FAQResult, error)
	GenerateBatch(ctx context.Context, reqs []generators.FAQRequest) []generators.FAQBatchItem
}

// QuizService generates quizzes.
type QuizService interface {
	Generate(ctx context.Context, req generators.QuizRequest) (*generators.QuizResult, error)
}

// GapService produces knowledge-gap suggestions.
type GapService interface {
	Suggest(ctx context.Context, questions []generators.GapQuestion) (*generators.GapResult, error)
}

// SourceSets runs the document-to-script pipeline.
type SourceSets interface {
	Start(id string, req sourceset.StartRequest) (*sourceset.Status, error)
	GetStatus(id string) *sourceset.Status
}

// ReadyCheck probes one dependency for the readiness endpoint.
type ReadyCheck func(ctx context.Context) error

// Deps carries everything the server serves. Nil generator or source-set
// services leave their routes responding 503.
type Deps struct {
	Chat       ChatService
	Render     RenderJobs
	FAQ        FAQService
	Quiz       QuizService
	Gap        GapService
	SourceSets SourceSets
	Bus        *progress.Bus
	Emitter    TelemetryFlusher
	Readiness  map[string]ReadyCheck
}

// Server is the gateway HTTP server.
type Server struct {
	cfg    config.ServerConfig
	deps   Deps
	logger *slog.Logger
	http   *http.Server
}

// NewServer creates the server. Call Handler to get the root handler, Run to
// serve.
func NewServer(cfg config.ServerConfig, deps Deps) *Server {
	return &Server{
		cfg:    cfg,
		deps:   deps,
		logger: slog.With("component", "api"),
	}
}

// Router builds the gin engine with all routes and middleware.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	// Unauthenticated infrastructure endpoints.
	router.GET("/health", s.handleHealth)
	router.GET("/health/ready", s.handleReady)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Endpoints removed with the V2 surface; kept routed for an explicit 410.
	router.POST("/search", gone)
	router.POST("/ingest", gone)
	router.POST("/ai/rag/process", gone)
	router.Any("/internal/rag/*path", gone)

	public := router.Group("/", requireAPIToken(s.cfg.APIToken), telemetryMiddleware(s.deps.Emitter))
	{
		public.POST("/ai/chat/messages", s.handleChat)
		public.POST("/ai/chat/stream", s.handleChatStream)

		public.POST("/ai/faq/generate", s.handleFAQGenerate)
		public.POST("/ai/faq/generate/batch", s.handleFAQGenerateBatch)
		public.POST("/ai/quiz/generate", s.handleQuizGenerate)
		public.POST("/ai/gap/policy-edu/suggestions", s.handleGapSuggestions)

		public.POST("/ai/video/job/:job_id/start", s.handleStartJob)
		public.POST("/ai/video/job/:job_id/retry", s.handleRetryJob)

		public.GET("/api/v2/videos/:video_id/render-jobs", s.handleListJobs)
		public.GET("/api/v2/videos/:video_id/render-jobs/:job_id", s.handleGetJob)
		public.POST("/api/v2/videos/:video_id/render-jobs/:job_id/cancel", s.handleCancelJob)
		public.GET("/api/v2/videos/:video_id/assets/published", s.handlePublishedAssets)
	}

	internal := router.Group("/internal", requireInternalToken(s.cfg.InternalToken))
	{
		internal.POST("/ai/source-sets/:id/start", s.handleSourceSetStart)
		internal.GET("/ai/source-sets/:id/status", s.handleSourceSetStatus)
		internal.POST("/ai/render-jobs", s.handleCreateJob)
	}

	return router
}

// Handler wraps the gin engine with the websocket route. The upgrade must
// run on the plain ResponseWriter: gin's wrapper records the 101 as a
// written response and then refuses the hijack the websocket library needs,
// so the progress socket is routed before gin ever sees the request.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws/videos/{video_id}/render-progress", s.handleRenderProgressWS)
	mux.Handle("/", s.Router())
	return mux
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	s.http = &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "port", s.cfg.Port)
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
