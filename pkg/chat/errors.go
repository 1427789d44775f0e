package chat

import (
	"errors"

	"github.com/saramhq/aegis/pkg/pii"
	"github.com/saramhq/aegis/pkg/retrieval"
)

// isPIIUnavailable reports whether err is a fail-closed detector refusal.
func isPIIUnavailable(err error) bool {
	var unavailable *pii.DetectorUnavailableError
	return errors.As(err, &unavailable)
}

// ragErrorCode returns RAG_SEARCH_UNAVAILABLE when err stems from retrieval
// exhaustion, "" otherwise.
func ragErrorCode(err error) string {
	if errors.Is(err, retrieval.ErrSearchUnavailable) {
		return ErrorCodeRAGUnavailable
	}
	return ""
}

// IsRetrievalUnavailable reports whether err must surface as HTTP 503.
func IsRetrievalUnavailable(err error) bool {
	return errors.Is(err, retrieval.ErrSearchUnavailable)
}
