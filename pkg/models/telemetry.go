package models

import "time"

// Telemetry event types. At most one CHAT_TURN is emitted per turn.
const (
	EventTypeChatTurn = "CHAT_TURN"
	EventTypeSecurity = "SECURITY"
	EventTypeFeedback = "FEEDBACK"
)

// Security block types.
const (
	BlockTypePII = "PII_BLOCK"
)

// TelemetryEvent is the envelope shared by all telemetry event types.
// Payload shape depends on EventType.
type TelemetryEvent struct {
	EventID        string                 `json:"event_id"`
	EventType      string                 `json:"event_type"`
	TraceID        string                 `json:"trace_id"`
	ConversationID string                 `json:"conversation_id"`
	TurnID         string                 `json:"turn_id"`
	UserID         string                 `json:"user_id"`
	DeptID         string                 `json:"dept_id,omitempty"`
	OccurredAt     time.Time              `json:"occurred_at"`
	Payload        map[string]interface{} `json:"payload"`
}

// ChatTurnPayload builds the CHAT_TURN payload from turn metadata and the
// masked query. The original query text must never appear here.
func ChatTurnPayload(maskedQuery string, meta ChatMeta) map[string]interface{} {
	return map[string]interface{}{
		"masked_query":      maskedQuery,
		"route":             meta.Route,
		"intent":            meta.Intent,
		"domain":            meta.Domain,
		"used_model":        meta.UsedModel,
		"rag_used":          meta.RagUsed,
		"rag_source_count":  meta.RagSourceCount,
		"latency_ms":        meta.LatencyMs,
		"rag_latency_ms":    meta.RagLatencyMs,
		"llm_latency_ms":    meta.LLMLatencyMs,
		"has_pii_input":     meta.HasPIIInput,
		"has_pii_output":    meta.HasPIIOutput,
		"masked":            meta.Masked,
		"rag_gap_candidate": meta.RagGapCandidate,
		"retriever_used":    meta.RetrieverUsed,
		"error_code":        meta.ErrorType,
	}
}

// SecurityPayload builds a SECURITY event payload.
func SecurityPayload(blockType, stage, reason string) map[string]interface{} {
	return map[string]interface{}{
		"block_type": blockType,
		"stage":      stage,
		"reason":     reason,
	}
}
