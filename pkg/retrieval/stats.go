package retrieval

import (
	"log/slog"

	"github.com/saramhq/aegis/pkg/models"
)

// logSimilarityStats emits one line per search summarising the score
// distribution of the returned sources, used to tune thresholds and spot
// collection drift without logging document content.
func logSimilarityStats(logger *slog.Logger, requestID string, domain models.Domain, sources []models.Source) {
	if len(sources) == 0 {
		logger.Info("Retrieval similarity stats",
			"request_id", requestID, "domain", domain, "count", 0)
		return
	}

	min, max, sum := sources[0].Score, sources[0].Score, 0.0
	var high, good, fair, low int
	for _, s := range sources {
		if s.Score < min {
			min = s.Score
		}
		if s.Score > max {
			max = s.Score
		}
		sum += s.Score
		switch {
		case s.Score >= 0.9:
			high++
		case s.Score >= 0.7:
			good++
		case s.Score >= 0.5:
			fair++
		default:
			low++
		}
	}

	logger.Info("Retrieval similarity stats",
		"request_id", requestID,
		"domain", domain,
		"count", len(sources),
		"min", min,
		"max", max,
		"mean", sum/float64(len(sources)),
		"bucket_high", high,
		"bucket_good", good,
		"bucket_fair", fair,
		"bucket_low", low)
}
