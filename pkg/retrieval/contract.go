package retrieval

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/saramhq/aegis/pkg/config"
)

// VerifyContract checks at startup that the vector store collection matches
// the embedding configuration: same dimension, expected metric type. In
// strict mode a mismatch is fatal; otherwise it is logged and the process
// continues (the collection may still be rebuilding).
func VerifyContract(ctx context.Context, milvus *MilvusBackend, embCfg config.EmbeddingConfig, milvusCfg config.MilvusConfig) error {
	logger := slog.With("component", "retrieval")

	dim, metric, err := milvus.Describe(ctx)
	if err != nil {
		if embCfg.ContractStrict {
			return fmt.Errorf("verify vector store contract: %w", err)
		}
		logger.Warn("Could not verify vector store contract", "error", err)
		return nil
	}

	var problems []string
	if dim != embCfg.Dimension {
		problems = append(problems, fmt.Sprintf("dimension %d != embedding dimension %d", dim, embCfg.Dimension))
	}
	if metric != "" && !strings.EqualFold(metric, milvusCfg.Metric) {
		problems = append(problems, fmt.Sprintf("metric %s != configured %s", metric, milvusCfg.Metric))
	}

	if len(problems) > 0 {
		detail := strings.Join(problems, "; ")
		if embCfg.ContractStrict {
			return fmt.Errorf("vector store contract mismatch: %s", detail)
		}
		logger.Warn("Vector store contract mismatch", "detail", detail)
		return nil
	}

	logger.Info("Vector store contract verified",
		"collection", milvusCfg.Collection, "dimension", dim, "metric", metric)
	return nil
}
