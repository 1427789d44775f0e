// Aegis AI gateway server: chat pipeline, content generators, render-job
// orchestration and the source-set script pipeline behind one HTTP surface.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/saramhq/aegis/pkg/api"
	"github.com/saramhq/aegis/pkg/backend"
	"github.com/saramhq/aegis/pkg/chat"
	"github.com/saramhq/aegis/pkg/config"
	"github.com/saramhq/aegis/pkg/database"
	"github.com/saramhq/aegis/pkg/generators"
	"github.com/saramhq/aegis/pkg/guard"
	"github.com/saramhq/aegis/pkg/intent"
	"github.com/saramhq/aegis/pkg/llm"
	"github.com/saramhq/aegis/pkg/media"
	"github.com/saramhq/aegis/pkg/personalization"
	"github.com/saramhq/aegis/pkg/pii"
	"github.com/saramhq/aegis/pkg/progress"
	"github.com/saramhq/aegis/pkg/render"
	"github.com/saramhq/aegis/pkg/retrieval"
	"github.com/saramhq/aegis/pkg/sourceset"
	"github.com/saramhq/aegis/pkg/storage"
	"github.com/saramhq/aegis/pkg/telemetry"
	"github.com/saramhq/aegis/pkg/tts"
	"github.com/saramhq/aegis/pkg/version"
)

func main() {
	envPath := flag.String("env-file", ".env", "Path to the environment file")
	flag.Parse()

	if err := godotenv.Load(*envPath); err != nil {
		slog.Warn("Could not load env file, continuing with existing environment",
			"path", *envPath, "error", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Starting aegis gateway", "version", version.Full(), "port", cfg.Server.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Job store: embedded sqlite with schema migration at boot.
	dbClient, err := database.NewClient(ctx, cfg.Database)
	if err != nil {
		slog.Error("Failed to open job store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing job store", "error", err)
		}
	}()
	slog.Info("Job store ready", "path", cfg.Database.Path)

	// External service clients.
	llmClient := llm.NewClient(cfg.LLM)
	backendClient := backend.NewClient(cfg.Backend)
	ttsClient := tts.NewClient(cfg.TTS)
	masker := pii.NewMasker(cfg.PII)

	store, err := storage.New(cfg.Storage)
	if err != nil {
		slog.Error("Failed to initialize asset storage", "error", err)
		os.Exit(1)
	}

	// Retrieval: shared backends, one engine per service. Only the chat
	// engine falls back to the other backend on empty results.
	embedder := retrieval.NewEmbeddingClient(cfg.Embedding)
	milvus := retrieval.NewMilvusBackend(cfg.Milvus, embedder)
	ragflow := retrieval.NewRagflowBackend(cfg.Ragflow)

	if err := retrieval.VerifyContract(ctx, milvus, cfg.Embedding, cfg.Milvus); err != nil {
		slog.Error("Vector store contract verification failed", "error", err)
		os.Exit(1)
	}
	if err := milvus.Load(ctx); err != nil {
		slog.Warn("Could not load vector store collection", "error", err)
	}

	var cache *retrieval.Cache
	if cfg.Retrieval.CacheEnabled {
		cache = retrieval.NewCache(cfg.Retrieval.CacheSize, cfg.Retrieval.CacheTTL)
	}
	chatEngine := retrieval.NewEngine(cfg.Retrieval.ChatBackend, milvus, ragflow,
		retrieval.EngineOptions{FallbackOnEmpty: true, Cache: cache})
	faqEngine := retrieval.NewEngine(cfg.Retrieval.FAQBackend, milvus, ragflow,
		retrieval.EngineOptions{Cache: cache})

	// Chat pipeline.
	answerGuard := guard.New(llmClient)
	personal := personalization.NewResolver(backendClient, llmClient)
	orchestrator := chat.NewOrchestrator(cfg.Chat, cfg.Retrieval.TopK,
		masker, intent.NewClassifier(), chatEngine, llmClient, answerGuard, personal)
	orchestrator.Inflight().StartJanitor(ctx)
	defer orchestrator.Inflight().Close()

	// Content generators.
	faqGen := generators.NewFAQGenerator(faqEngine, llmClient, cfg.FAQ)
	quizGen := generators.NewQuizGenerator(llmClient)
	gapGen := generators.NewGapAnalyzer(llmClient)
	scriptGen := generators.NewScriptGenerator(llmClient)
	sourceSets := sourceset.NewTracker(scriptGen, backendClient, 0)

	// Render pipeline.
	bus := progress.NewBus()
	composer := media.NewComposer(cfg.Render.FFmpegPath)
	slides := media.NewSlideRenderer(cfg.Render.FFmpegPath)
	runner := render.NewRunner(cfg.Render, dbClient.Client, backendClient, bus,
		ttsClient, slides, composer, store)
	renderSvc := render.NewService(dbClient.Client, backendClient, bus, runner)

	// Jobs left PROCESSING by a previous process run can never finish.
	if n, err := renderSvc.RecoverOrphans(ctx); err != nil {
		slog.Error("Failed to recover orphaned render jobs", "error", err)
	} else if n > 0 {
		slog.Info("Recovered orphaned render jobs", "count", n)
	}

	emitter := telemetry.NewEmitter(cfg.Telemetry, cfg.Backend.InternalToken)

	server := api.NewServer(cfg.Server, api.Deps{
		Chat:       orchestrator,
		Render:     renderSvc,
		FAQ:        faqGen,
		Quiz:       quizGen,
		Gap:        gapGen,
		SourceSets: sourceSets,
		Bus:        bus,
		Emitter:    emitter,
		Readiness: map[string]api.ReadyCheck{
			"database": func(ctx context.Context) error {
				_, err := database.Health(ctx, dbClient.DB())
				return err
			},
			"backend": backendClient.Ping,
			"llm":     llmClient.Ping,
			"retrieval": func(ctx context.Context) error {
				_, _, err := milvus.Describe(ctx)
				return err
			},
		},
	})

	if err := server.Run(ctx); err != nil {
		slog.Error("HTTP server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Gateway stopped")
}
