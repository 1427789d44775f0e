// Package config loads and validates the gateway configuration from
// environment variables. All configuration is read once at process start and
// never mutated afterwards.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config is the umbrella configuration object returned by Load() and passed
// by reference into components.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	LLM       LLMConfig
	Embedding EmbeddingConfig
	Milvus    MilvusConfig
	Ragflow   RagflowConfig
	Retrieval RetrievalConfig
	PII       PIIConfig
	Backend   BackendConfig
	Storage   StorageConfig
	TTS       TTSConfig
	Render    RenderConfig
	Chat      ChatConfig
	FAQ       FAQConfig
	Telemetry TelemetryConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port          string `env:"HTTP_PORT" envDefault:"8080"`
	APIToken      string `env:"API_TOKEN"`
	InternalToken string `env:"INTERNAL_API_TOKEN"`
}

// DatabaseConfig holds the embedded job-store settings.
type DatabaseConfig struct {
	// Path is the sqlite database file. ":memory:" is accepted for tests.
	Path string `env:"DATABASE_PATH" envDefault:"./data/aegis.db"`
}

// LLMConfig holds the OpenAI-compatible chat-completions endpoint settings.
type LLMConfig struct {
	BaseURL       string        `env:"LLM_BASE_URL" envDefault:"http://localhost:8000/v1"`
	APIKey        string        `env:"LLM_API_KEY"`
	Model         string        `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`
	Temperature   float64       `env:"LLM_TEMPERATURE" envDefault:"0.2"`
	MaxTokens     int           `env:"LLM_MAX_TOKENS" envDefault:"1024"`
	Timeout       time.Duration `env:"LLM_TIMEOUT" envDefault:"30s"`
	StreamTimeout time.Duration `env:"LLM_STREAM_TIMEOUT" envDefault:"60s"`
}

// EmbeddingConfig holds the embeddings service settings.
type EmbeddingConfig struct {
	BaseURL        string        `env:"EMBEDDING_BASE_URL" envDefault:"http://localhost:8001"`
	APIKey         string        `env:"EMBEDDING_API_KEY"`
	Model          string        `env:"EMBEDDING_MODEL" envDefault:"text-embedding-3-small"`
	Dimension      int           `env:"EMBEDDING_DIMENSION" envDefault:"1536"`
	Timeout        time.Duration `env:"EMBEDDING_TIMEOUT" envDefault:"10s"`
	ContractStrict bool          `env:"EMBEDDING_CONTRACT_STRICT" envDefault:"true"`
}

// MilvusConfig holds the vector-store settings.
type MilvusConfig struct {
	BaseURL    string        `env:"MILVUS_BASE_URL" envDefault:"http://localhost:19530"`
	Token      string        `env:"MILVUS_TOKEN"`
	Collection string        `env:"MILVUS_COLLECTION" envDefault:"policy_chunks"`
	Metric     string        `env:"MILVUS_METRIC" envDefault:"COSINE"`
	Timeout    time.Duration `env:"MILVUS_TIMEOUT" envDefault:"10s"`
}

// RagflowConfig holds the external retrieval-engine settings.
type RagflowConfig struct {
	BaseURL    string        `env:"RAGFLOW_BASE_URL" envDefault:"http://localhost:9380"`
	APIKey     string        `env:"RAGFLOW_API_KEY"`
	DatasetIDs []string      `env:"RAGFLOW_DATASET_IDS" envSeparator:","`
	Timeout    time.Duration `env:"RAGFLOW_TIMEOUT" envDefault:"10s"`
}

// RetrievalConfig selects retrieval backends per service and cache behavior.
type RetrievalConfig struct {
	// Backend per service: "milvus" or "ragflow". The script generator
	// works from supplied source-set documents and does no retrieval.
	ChatBackend  string        `env:"RETRIEVAL_CHAT_BACKEND" envDefault:"milvus"`
	FAQBackend   string        `env:"RETRIEVAL_FAQ_BACKEND" envDefault:"milvus"`
	TopK         int           `env:"RETRIEVAL_TOP_K" envDefault:"5"`
	CacheEnabled bool          `env:"RETRIEVAL_CACHE_ENABLED" envDefault:"true"`
	CacheSize    int           `env:"RETRIEVAL_CACHE_SIZE" envDefault:"512"`
	CacheTTL     time.Duration `env:"RETRIEVAL_CACHE_TTL" envDefault:"5m"`
}

// PIIConfig holds the remote PII detector settings.
type PIIConfig struct {
	Enabled bool          `env:"PII_ENABLED" envDefault:"true"`
	BaseURL string        `env:"PII_BASE_URL" envDefault:"http://localhost:8200"`
	Timeout time.Duration `env:"PII_TIMEOUT" envDefault:"5s"`
}

// BackendConfig holds the web-application backend settings (callbacks,
// render specs, personalization facts, telemetry ingestion).
type BackendConfig struct {
	BaseURL         string        `env:"BACKEND_BASE_URL" envDefault:"http://localhost:3000"`
	InternalToken   string        `env:"BACKEND_INTERNAL_TOKEN"`
	CallbackTimeout time.Duration `env:"BACKEND_CALLBACK_TIMEOUT" envDefault:"10s"`
	Timeout         time.Duration `env:"BACKEND_TIMEOUT" envDefault:"10s"`
}

// StorageConfig holds object-storage settings.
type StorageConfig struct {
	// Kind selects the adapter: "local", "s3" or "presigned".
	Kind          string        `env:"STORAGE_KIND" envDefault:"local"`
	LocalDir      string        `env:"STORAGE_LOCAL_DIR" envDefault:"./data/assets"`
	PublicBaseURL string        `env:"STORAGE_PUBLIC_BASE_URL" envDefault:"http://localhost:8080/assets"`
	S3Bucket      string        `env:"STORAGE_S3_BUCKET"`
	S3Region      string        `env:"STORAGE_S3_REGION" envDefault:"ap-northeast-2"`
	S3Endpoint    string        `env:"STORAGE_S3_ENDPOINT"`
	S3AccessKey   string        `env:"STORAGE_S3_ACCESS_KEY"`
	S3SecretKey   string        `env:"STORAGE_S3_SECRET_KEY"`
	// Presign* configure the "presigned" adapter, which asks the backend
	// for per-object upload URLs instead of holding credentials.
	PresignBaseURL string        `env:"STORAGE_PRESIGN_BASE_URL" envDefault:"http://localhost:3000"`
	PresignToken   string        `env:"STORAGE_PRESIGN_TOKEN"`
	UploadTimeout  time.Duration `env:"STORAGE_UPLOAD_TIMEOUT" envDefault:"60s"`
	MaxAttempts    int           `env:"STORAGE_MAX_ATTEMPTS" envDefault:"3"`
}

// TTSConfig holds the text-to-speech service settings.
type TTSConfig struct {
	BaseURL string        `env:"TTS_BASE_URL" envDefault:"http://localhost:8300"`
	APIKey  string        `env:"TTS_API_KEY"`
	Voice   string        `env:"TTS_VOICE" envDefault:"ko-female-1"`
	Timeout time.Duration `env:"TTS_TIMEOUT" envDefault:"120s"`
}

// RenderConfig holds render-runner settings.
type RenderConfig struct {
	WorkDir     string        `env:"RENDER_WORK_DIR" envDefault:"./data/render"`
	FFmpegPath  string        `env:"RENDER_FFMPEG_PATH" envDefault:"ffmpeg"`
	StepTimeout time.Duration `env:"RENDER_STEP_TIMEOUT" envDefault:"10m"`
}

// ChatConfig holds chat-pipeline tuning.
type ChatConfig struct {
	ContextMaxChars   int           `env:"CHAT_CONTEXT_MAX_CHARS" envDefault:"8000"`
	ContextMaxSources int           `env:"CHAT_CONTEXT_MAX_SOURCES" envDefault:"5"`
	Timeout           time.Duration `env:"CHAT_TIMEOUT" envDefault:"30s"`
	StreamTimeout     time.Duration `env:"CHAT_STREAM_TIMEOUT" envDefault:"60s"`
	InflightWindow    time.Duration `env:"CHAT_INFLIGHT_WINDOW" envDefault:"10m"`
}

// FAQConfig holds FAQ generation tuning.
type FAQConfig struct {
	BatchConcurrency int `env:"FAQ_BATCH_CONCURRENCY" envDefault:"4"`
	ItemsPerDoc      int `env:"FAQ_ITEMS_PER_DOC" envDefault:"5"`
}

// TelemetryConfig holds the telemetry forwarder settings.
type TelemetryConfig struct {
	Enabled   bool          `env:"TELEMETRY_ENABLED" envDefault:"true"`
	Endpoint  string        `env:"TELEMETRY_ENDPOINT" envDefault:"http://localhost:3000/internal/telemetry/events"`
	Timeout   time.Duration `env:"TELEMETRY_TIMEOUT" envDefault:"5s"`
	BatchSize int           `env:"TELEMETRY_BATCH_SIZE" envDefault:"20"`
}

// Load parses the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	for _, group := range []interface{}{
		&cfg.Server, &cfg.Database, &cfg.LLM, &cfg.Embedding, &cfg.Milvus,
		&cfg.Ragflow, &cfg.Retrieval, &cfg.PII, &cfg.Backend, &cfg.Storage,
		&cfg.TTS, &cfg.Render, &cfg.Chat, &cfg.FAQ, &cfg.Telemetry,
	} {
		if err := env.Parse(group); err != nil {
			return nil, fmt.Errorf("parse environment: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints that env tags cannot express.
func (c *Config) Validate() error {
	switch c.Retrieval.ChatBackend {
	case BackendMilvus, BackendRagflow:
	default:
		return fmt.Errorf("RETRIEVAL_CHAT_BACKEND: unknown backend %q", c.Retrieval.ChatBackend)
	}
	switch c.Storage.Kind {
	case StorageLocal, StorageS3, StoragePresigned:
	default:
		return fmt.Errorf("STORAGE_KIND: unknown kind %q", c.Storage.Kind)
	}
	if c.Storage.Kind == StorageS3 && c.Storage.S3Bucket == "" {
		return fmt.Errorf("STORAGE_S3_BUCKET is required when STORAGE_KIND=s3")
	}
	if c.Embedding.Dimension <= 0 {
		return fmt.Errorf("EMBEDDING_DIMENSION must be positive, got %d", c.Embedding.Dimension)
	}
	if c.Retrieval.TopK <= 0 {
		return fmt.Errorf("RETRIEVAL_TOP_K must be positive, got %d", c.Retrieval.TopK)
	}
	return nil
}

// Retrieval backend names.
const (
	BackendMilvus  = "milvus"
	BackendRagflow = "ragflow"
)

// Storage adapter kinds.
const (
	StorageLocal     = "local"
	StorageS3        = "s3"
	StoragePresigned = "presigned"
)
