// Package models defines the domain types shared across the gateway:
// chat turns, retrieval sources, render specs, and telemetry events.
package models

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// UserRole is the caller's role, propagated from the backend.
type UserRole string

// User roles.
const (
	RoleEmployee        UserRole = "EMPLOYEE"
	RoleManager         UserRole = "MANAGER"
	RoleAdmin           UserRole = "ADMIN"
	RoleIncidentManager UserRole = "INCIDENT_MANAGER"
)

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleAdmin, RoleIncidentManager:
		return true
	}
	return false
}

// Channel identifies the client surface.
type Channel string

// Channels.
const (
	ChannelWeb    Channel = "WEB"
	ChannelMobile Channel = "MOBILE"
)

// Domain is the coarse subject area of a conversation.
type Domain string

// Domains.
const (
	DomainPolicy    Domain = "POLICY"
	DomainIncident  Domain = "INCIDENT"
	DomainEducation Domain = "EDUCATION"
	DomainGeneral   Domain = "GENERAL"
)

// Message is a single chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Turn is the gateway-internal view of one chat request. The gateway is
// stateless across turns; everything needed lives here.
type Turn struct {
	ConversationID string
	UserID         string
	UserRole       UserRole
	Department     string
	DomainHint     Domain
	Channel        Channel
	Messages       []Message
}

// CurrentQuery returns the content of the last user message, or "" if the
// turn carries no user message.
func (t *Turn) CurrentQuery() string {
	for i := len(t.Messages) - 1; i >= 0; i-- {
		if t.Messages[i].Role == RoleUser {
			return t.Messages[i].Content
		}
	}
	return ""
}

// Source is one retrieved chunk attributed to a document. Sources are always
// ordered by descending score.
type Source struct {
	DocID        string  `json:"doc_id"`
	Title        string  `json:"title,omitempty"`
	Page         int     `json:"page,omitempty"`
	Score        float64 `json:"score"`
	Snippet      string  `json:"snippet"`
	ArticleLabel string  `json:"article_label,omitempty"`
	ArticlePath  string  `json:"article_path,omitempty"`
	SourceType   string  `json:"source_type,omitempty"`
}

// ChatMeta is the per-turn metadata returned alongside the answer and
// mirrored into the CHAT_TURN telemetry event.
type ChatMeta struct {
	Route            string `json:"route"`
	Intent           string `json:"intent"`
	Domain           Domain `json:"domain"`
	UsedModel        string `json:"used_model,omitempty"`
	RagUsed          bool   `json:"rag_used"`
	RagSourceCount   int    `json:"rag_source_count"`
	LatencyMs        int64  `json:"latency_ms"`
	RagLatencyMs     int64  `json:"rag_latency_ms,omitempty"`
	LLMLatencyMs     int64  `json:"llm_latency_ms,omitempty"`
	HasPIIInput      bool   `json:"has_pii_input"`
	HasPIIOutput     bool   `json:"has_pii_output"`
	Masked           bool   `json:"masked"`
	RagGapCandidate  bool   `json:"rag_gap_candidate"`
	RetrieverUsed    string `json:"retriever_used,omitempty"`
	ErrorType        string `json:"error_type,omitempty"`
	PersonalizationQ string `json:"personalization_q,omitempty"`
}

// ChatAnswer is the final product of a chat turn.
type ChatAnswer struct {
	Answer  string   `json:"answer"`
	Sources []Source `json:"sources"`
	Meta    ChatMeta `json:"meta"`
}
