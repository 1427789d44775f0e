package api

import (
	"fmt"
	"strings"

	"github.com/saramhq/aegis/pkg/models"
)

// chatRequest is the shared body of the sync and streaming chat endpoints.
// The stream endpoint additionally requires request_id for deduplication.
type chatRequest struct {
	SessionID  string           `json:"session_id"`
	UserID     string           `json:"user_id"`
	UserRole   string           `json:"user_role"`
	Department string           `json:"department"`
	Domain     string           `json:"domain"`
	Channel    string           `json:"channel"`
	RequestID  string           `json:"request_id"`
	Messages   []models.Message `json:"messages"`
}

// toTurn validates the request and converts it to the pipeline's turn shape.
func (r chatRequest) toTurn() (models.Turn, error) {
	if len(r.Messages) == 0 {
		return models.Turn{}, fmt.Errorf("messages are required")
	}
	for i, m := range r.Messages {
		if m.Role != models.RoleUser && m.Role != models.RoleAssistant {
			return models.Turn{}, fmt.Errorf("messages[%d] has unknown role %q", i, m.Role)
		}
		if strings.TrimSpace(m.Content) == "" {
			return models.Turn{}, fmt.Errorf("messages[%d] has empty content", i)
		}
	}

	role := models.UserRole(r.UserRole)
	if r.UserRole == "" {
		role = models.RoleEmployee
	}
	if !role.Valid() {
		return models.Turn{}, fmt.Errorf("unknown user_role %q", r.UserRole)
	}

	domain := models.Domain(r.Domain)
	switch domain {
	case "", models.DomainPolicy, models.DomainIncident, models.DomainEducation, models.DomainGeneral:
	default:
		return models.Turn{}, fmt.Errorf("unknown domain %q", r.Domain)
	}

	channel := models.Channel(r.Channel)
	switch channel {
	case "", models.ChannelWeb, models.ChannelMobile:
	default:
		return models.Turn{}, fmt.Errorf("unknown channel %q", r.Channel)
	}

	return models.Turn{
		ConversationID: r.SessionID,
		UserID:         r.UserID,
		UserRole:       role,
		Department:     r.Department,
		DomainHint:     domain,
		Channel:        channel,
		Messages:       r.Messages,
	}, nil
}

// createRenderJobRequest is the internal job-creation body.
type createRenderJobRequest struct {
	VideoID   string `json:"video_id"`
	ScriptID  string `json:"script_id"`
	CreatedBy string `json:"created_by"`
}

func (r createRenderJobRequest) validate() error {
	if strings.TrimSpace(r.VideoID) == "" {
		return fmt.Errorf("video_id is required")
	}
	if strings.TrimSpace(r.ScriptID) == "" {
		return fmt.Errorf("script_id is required")
	}
	return nil
}
