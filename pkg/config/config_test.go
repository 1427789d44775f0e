package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, BackendMilvus, cfg.Retrieval.ChatBackend)
	assert.Equal(t, 5, cfg.Retrieval.TopK)
	assert.Equal(t, 8000, cfg.Chat.ContextMaxChars)
	assert.Equal(t, 5, cfg.Chat.ContextMaxSources)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 60*time.Second, cfg.LLM.StreamTimeout)
	assert.True(t, cfg.Embedding.ContractStrict)
	assert.True(t, cfg.PII.Enabled)
	assert.Equal(t, StorageLocal, cfg.Storage.Kind)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RETRIEVAL_CHAT_BACKEND", "ragflow")
	t.Setenv("CHAT_CONTEXT_MAX_CHARS", "4000")
	t.Setenv("RAGFLOW_DATASET_IDS", "ds1,ds2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendRagflow, cfg.Retrieval.ChatBackend)
	assert.Equal(t, 4000, cfg.Chat.ContextMaxChars)
	assert.Equal(t, []string{"ds1", "ds2"}, cfg.Ragflow.DatasetIDs)
}

func TestValidate_UnknownBackend(t *testing.T) {
	t.Setenv("RETRIEVAL_CHAT_BACKEND", "elasticsearch")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RETRIEVAL_CHAT_BACKEND")
}

func TestValidate_S3RequiresBucket(t *testing.T) {
	t.Setenv("STORAGE_KIND", "s3")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE_S3_BUCKET")
}

func TestValidate_BadDimension(t *testing.T) {
	t.Setenv("EMBEDDING_DIMENSION", "0")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EMBEDDING_DIMENSION")
}
